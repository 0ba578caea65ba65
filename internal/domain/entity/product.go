package entity

import "github.com/shopspring/decimal"

// Product representa un artículo del catálogo de la tienda del campus.
// Los nombres JSON son los del registro persistido "polytechnic-products".
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// ProductInput atributos editables de un producto (todo menos el ID).
type ProductInput struct {
	Name        string
	Price       decimal.Decimal
	Image       string
	Category    string
	Description string
}

// WithID construye el Product a partir de la entrada.
func (in ProductInput) WithID(id string) Product {
	return Product{
		ID:          id,
		Name:        in.Name,
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		Description: in.Description,
	}
}
