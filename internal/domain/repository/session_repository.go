package repository

import (
	"context"

	"github.com/jhoicas/campus-store/internal/domain/entity"
)

// SessionRepository persiste el usuario con sesión iniciada (cero o uno).
type SessionRepository interface {
	// Current devuelve nil si no hay sesión.
	Current(ctx context.Context) (*entity.User, error)
	Save(ctx context.Context, user entity.User) error
	Clear(ctx context.Context) error
}

// AdminFlagRepository bandera "admin-authenticated" que habilita el panel de administración.
type AdminFlagRepository interface {
	IsAuthenticated(ctx context.Context) (bool, error)
	SetAuthenticated(ctx context.Context) error
	ClearAuthenticated(ctx context.Context) error
}
