// Package memory implementa el almacén clave-valor en memoria (desarrollo y tests).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/campus-store/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// KVStore mapa protegido por mutex. Los datos se pierden al reiniciar el proceso.
type KVStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewKVStore construye un almacén vacío.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string]string)}
}

// Get devuelve el valor de la clave.
func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set guarda el valor.
func (s *KVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Remove borra la clave.
func (s *KVStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Len número de claves (tests y diagnóstico).
func (s *KVStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
