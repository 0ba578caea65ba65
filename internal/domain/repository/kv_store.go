package repository

import "context"

// Claves del almacén clave-valor. Son las mismas que usan los datos ya guardados.
const (
	KeyUser          = "polytechnic-user"
	KeyUserOrders    = "polytechnic-user-orders"
	KeyOrders        = "polytechnic-orders"
	KeyProducts      = "polytechnic-products"
	KeyAdminSession  = "admin-authenticated"
	AdminSessionTrue = "true"
)

// KeyValueStore puerto del almacén durable clave -> valor (strings). Sin transacciones ni expiración.
type KeyValueStore interface {
	// Get devuelve found=false si la clave no existe.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	// Remove no falla si la clave no existe.
	Remove(ctx context.Context, key string) error
}
