package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/campus-store/internal/domain/catalog"
	"github.com/jhoicas/campus-store/internal/domain/entity"
)

var columns = []string{"id", "name", "price", "image", "category", "description"}

// decoder envuelve r según la codificación declarada. Vacío o UTF-8 = sin cambios.
func decoder(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToUpper(strings.TrimSpace(charset)) {
	case "", "UTF-8", "UTF8":
		return r, nil
	case "ISO-8859-1", "ISO8859-1", "LATIN1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "WINDOWS-1252", "CP1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada %q", charset)
	}
}

// parseCatalog lee el CSV y valida cada fila. Un ID vacío toma el número de fila.
func parseCatalog(r io.Reader, charset string) ([]entity.Product, error) {
	in, err := decoder(r, charset)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(in)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("encabezado: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "﻿")))] = i
	}
	for _, c := range columns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("falta la columna %q", c)
		}
	}

	var products []entity.Product
	seen := map[string]bool{}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fila %d: %w", line, err)
		}
		get := func(col string) string { return strings.TrimSpace(rec[idx[col]]) }

		id := get("id")
		if id == "" {
			id = strconv.Itoa(line - 1)
		}
		if seen[id] {
			return nil, fmt.Errorf("fila %d: id duplicado %q", line, id)
		}
		name := get("name")
		if name == "" {
			return nil, fmt.Errorf("fila %d: name vacío", line)
		}
		price, err := decimal.NewFromString(get("price"))
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("fila %d: price inválido %q", line, get("price"))
		}
		category := get("category")
		if !catalog.IsCategory(category) {
			return nil, fmt.Errorf("fila %d: categoría desconocida %q", line, category)
		}
		seen[id] = true
		products = append(products, entity.Product{
			ID:          id,
			Name:        name,
			Price:       price,
			Image:       get("image"),
			Category:    category,
			Description: get("description"),
		})
	}
	if len(products) == 0 {
		return nil, errors.New("el archivo no tiene productos")
	}
	return products, nil
}
