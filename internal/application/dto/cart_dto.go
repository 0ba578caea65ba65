package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest agrega una unidad del producto.
type AddCartItemRequest struct {
	ProductID string `json:"productId"`
}

// UpdateCartItemRequest fija la cantidad (<= 0 elimina la línea).
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse línea del carrito.
type CartLineResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartResponse estado del carrito.
type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Count int                `json:"count"`
	Total decimal.Decimal    `json:"total"`
}
