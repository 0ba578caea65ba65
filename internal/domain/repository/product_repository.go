package repository

import (
	"context"

	"github.com/jhoicas/campus-store/internal/domain/entity"
)

// ProductRepository puerto del catálogo (DIP).
type ProductRepository interface {
	// Add asigna un ID nuevo y persiste el producto.
	Add(ctx context.Context, in entity.ProductInput) (*entity.Product, error)
	// Update reemplaza el producto; ErrProductNotFound si no existe.
	Update(ctx context.Context, id string, in entity.ProductInput) (*entity.Product, error)
	// Delete elimina el producto; ErrProductNotFound si no existe.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// List devuelve todos o solo los de la categoría ("" o "All" = todos).
	List(ctx context.Context, category string) ([]entity.Product, error)
	// ReplaceAll sustituye el catálogo completo (importación).
	ReplaceAll(ctx context.Context, products []entity.Product) error
}
