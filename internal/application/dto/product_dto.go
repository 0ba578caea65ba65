package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada para crear o actualizar un producto (reemplazo completo).
type ProductRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// ProductListResponse catálogo filtrado.
type ProductListResponse struct {
	Category string            `json:"category"`
	Items    []ProductResponse `json:"items"`
}

// CategoryListResponse categorías disponibles (la primera es "All").
type CategoryListResponse struct {
	Items []string `json:"items"`
}
