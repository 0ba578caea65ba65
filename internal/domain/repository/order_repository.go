package repository

import (
	"context"

	"github.com/jhoicas/campus-store/internal/domain/entity"
)

// OrderRepository puerto de la lista global de órdenes y de la copia del usuario con sesión.
type OrderRepository interface {
	Append(ctx context.Context, order entity.Order) error
	// FindByID búsqueda lineal exacta; ErrOrderNotFound si no existe.
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	// MarkCompleted es idempotente; ErrOrderNotFound si no existe.
	MarkCompleted(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context) ([]entity.Order, error)

	AppendUserOrder(ctx context.Context, order entity.Order) error
	ListUserOrders(ctx context.Context) ([]entity.Order, error)
	ClearUserOrders(ctx context.Context) error
}
