package kvstore

import (
	"context"

	"github.com/jhoicas/campus-store/internal/domain/entity"
	"github.com/jhoicas/campus-store/internal/domain/repository"
)

var (
	_ repository.SessionRepository   = (*SessionStore)(nil)
	_ repository.AdminFlagRepository = (*AdminFlagStore)(nil)
)

// SessionStore usuario con sesión en "polytechnic-user".
type SessionStore struct {
	kv repository.KeyValueStore
}

// NewSessionStore construye el repositorio.
func NewSessionStore(kv repository.KeyValueStore) *SessionStore {
	return &SessionStore{kv: kv}
}

// Current devuelve nil si no hay usuario guardado.
func (s *SessionStore) Current(ctx context.Context) (*entity.User, error) {
	var u entity.User
	found, err := loadJSON(ctx, s.kv, repository.KeyUser, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

// Save guarda el usuario (reemplaza al anterior).
func (s *SessionStore) Save(ctx context.Context, user entity.User) error {
	return saveJSON(ctx, s.kv, repository.KeyUser, user)
}

// Clear elimina el usuario.
func (s *SessionStore) Clear(ctx context.Context) error {
	return s.kv.Remove(ctx, repository.KeyUser)
}

// AdminFlagStore bandera "admin-authenticated".
type AdminFlagStore struct {
	kv repository.KeyValueStore
}

// NewAdminFlagStore construye el repositorio.
func NewAdminFlagStore(kv repository.KeyValueStore) *AdminFlagStore {
	return &AdminFlagStore{kv: kv}
}

// IsAuthenticated solo el valor exacto "true" habilita el panel.
func (s *AdminFlagStore) IsAuthenticated(ctx context.Context) (bool, error) {
	v, found, err := s.kv.Get(ctx, repository.KeyAdminSession)
	if err != nil {
		return false, err
	}
	return found && v == repository.AdminSessionTrue, nil
}

// SetAuthenticated marca la sesión de administración como activa.
func (s *AdminFlagStore) SetAuthenticated(ctx context.Context) error {
	return s.kv.Set(ctx, repository.KeyAdminSession, repository.AdminSessionTrue)
}

// ClearAuthenticated cierra la sesión de administración.
func (s *AdminFlagStore) ClearAuthenticated(ctx context.Context) error {
	return s.kv.Remove(ctx, repository.KeyAdminSession)
}
