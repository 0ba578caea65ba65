package usecase

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/campus-store/internal/application/dto"
	"github.com/jhoicas/campus-store/internal/domain/cart"
	"github.com/jhoicas/campus-store/internal/domain/entity"
	"github.com/jhoicas/campus-store/internal/domain/repository"
)

// CartUseCase carrito de la única sesión del proceso. Los handlers HTTP corren en goroutines
// distintas, por eso todo acceso al Ledger pasa por el mutex.
type CartUseCase struct {
	mu       sync.Mutex
	ledger   *cart.Ledger
	products repository.ProductRepository
}

// NewCartUseCase construye el caso de uso con un carrito vacío.
func NewCartUseCase(products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{ledger: cart.NewLedger(), products: products}
}

// AddItem resuelve el producto en el catálogo y suma una unidad. ErrProductNotFound si no existe.
func (uc *CartUseCase) AddItem(ctx context.Context, productID string) (*dto.CartResponse, error) {
	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ledger.AddItem(*p)
	return uc.snapshotLocked(), nil
}

// UpdateQuantity fija la cantidad de una línea; <= 0 la elimina.
func (uc *CartUseCase) UpdateQuantity(id string, quantity int) *dto.CartResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ledger.UpdateQuantity(id, quantity)
	return uc.snapshotLocked()
}

// RemoveItem elimina una línea.
func (uc *CartUseCase) RemoveItem(id string) *dto.CartResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ledger.RemoveItem(id)
	return uc.snapshotLocked()
}

// Clear vacía el carrito.
func (uc *CartUseCase) Clear() *dto.CartResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ledger.Clear()
	return uc.snapshotLocked()
}

// Get estado actual del carrito.
func (uc *CartUseCase) Get() *dto.CartResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked()
}

// Checkout ejecuta fn con una copia de las líneas y el total y vacía el carrito solo si fn no falla.
// El carrito queda bloqueado mientras fn corre, así ningún cambio se pierde entre la copia y el vaciado.
func (uc *CartUseCase) Checkout(fn func(items []entity.CartLineItem, total decimal.Decimal) error) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := fn(uc.ledger.Items(), uc.ledger.Total()); err != nil {
		return err
	}
	uc.ledger.Clear()
	return nil
}

func (uc *CartUseCase) snapshotLocked() *dto.CartResponse {
	items := uc.ledger.Items()
	out := make([]dto.CartLineResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.CartLineResponse{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Image:    it.Image,
			Quantity: it.Quantity,
			Subtotal: it.Subtotal(),
		})
	}
	return &dto.CartResponse{Items: out, Count: uc.ledger.Count(), Total: uc.ledger.Total()}
}
