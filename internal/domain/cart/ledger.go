// Package cart implementa el libro del carrito de la sesión: líneas ordenadas por inserción,
// una por producto, y el total derivado.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/campus-store/internal/domain/entity"
)

// Ledger carrito en memoria. No es seguro para uso concurrente; el caso de uso lo protege.
type Ledger struct {
	items []entity.CartLineItem
}

// NewLedger crea un carrito vacío.
func NewLedger() *Ledger {
	return &Ledger{}
}

// AddItem suma 1 a la línea del producto o agrega una nueva con cantidad 1.
func (l *Ledger) AddItem(p entity.Product) {
	if i := l.indexOf(p.ID); i >= 0 {
		l.items[i].Quantity++
		return
	}
	l.items = append(l.items, entity.CartLineItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: 1,
	})
}

// UpdateQuantity fija la cantidad; con quantity <= 0 elimina la línea. Sin efecto si id no existe.
func (l *Ledger) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		l.RemoveItem(id)
		return
	}
	if i := l.indexOf(id); i >= 0 {
		l.items[i].Quantity = quantity
	}
}

// RemoveItem elimina la línea si existe.
func (l *Ledger) RemoveItem(id string) {
	i := l.indexOf(id)
	if i < 0 {
		return
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
}

// Clear vacía el carrito.
func (l *Ledger) Clear() {
	l.items = nil
}

// Total suma price * quantity de todas las líneas.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range l.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Count total de unidades en el carrito.
func (l *Ledger) Count() int {
	n := 0
	for _, it := range l.items {
		n += it.Quantity
	}
	return n
}

// Items copia de las líneas; modificarla no altera el carrito.
func (l *Ledger) Items() []entity.CartLineItem {
	out := make([]entity.CartLineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len número de líneas distintas.
func (l *Ledger) Len() int {
	return len(l.items)
}

func (l *Ledger) indexOf(id string) int {
	for i, it := range l.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
