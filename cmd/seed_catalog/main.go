// seed_catalog reemplaza el catálogo guardado ("polytechnic-products") con el contenido de un CSV.
//
// Uso: go run ./cmd/seed_catalog productos.csv [ISO-8859-1]
// Columnas: id,name,price,image,category,description (primera fila = encabezado).
// El segundo argumento indica la codificación del archivo; por defecto UTF-8.
// El backend se toma de STORE_BACKEND como en la API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/campus-store/internal/infrastructure/backend"
	"github.com/jhoicas/campus-store/internal/infrastructure/kvstore"
	"github.com/jhoicas/campus-store/pkg/config"
	"github.com/jhoicas/campus-store/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: seed_catalog productos.csv [ISO-8859-1]")
		os.Exit(2)
	}
	csvPath := os.Args[1]
	charset := ""
	if len(os.Args) > 2 {
		charset = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed_catalog"})

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	products, err := parseCatalog(f, charset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	kv, closeStore, err := backend.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacén: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	if err := kvstore.NewCatalogStore(kv).ReplaceAll(ctx, products); err != nil {
		fmt.Fprintf(os.Stderr, "Guardar catálogo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Catálogo reemplazado: %d productos (backend %s)\n", len(products), cfg.Store.Backend)
}
