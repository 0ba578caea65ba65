// Package kvstore implementa los repositorios de catálogo, órdenes y sesión sobre el puerto
// KeyValueStore. Cada clave guarda el documento JSON completo y toda mutación reescribe la lista.
package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/campus-store/internal/domain/repository"
)

// loadJSON decodifica el valor de key en dst. found=false si la clave no existe.
func loadJSON(ctx context.Context, kv repository.KeyValueStore, key string, dst any) (bool, error) {
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !found || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decodificar %s: %w", key, err)
	}
	return true, nil
}

// saveJSON codifica v y lo guarda en key.
func saveJSON(ctx context.Context, kv repository.KeyValueStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", key, err)
	}
	return kv.Set(ctx, key, string(raw))
}
