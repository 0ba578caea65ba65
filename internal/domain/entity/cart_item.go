package entity

import "github.com/shopspring/decimal"

// CartLineItem es una línea del carrito: copia del producto al momento de agregarlo + cantidad.
// ID coincide con Product.ID.
type CartLineItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

// Subtotal devuelve price * quantity.
func (i CartLineItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
