// Package entity contiene las entidades de la tienda: productos, líneas de carrito, órdenes y usuario.
package entity

import "github.com/shopspring/decimal"

func init() {
	// Precios y totales viajan como número JSON, igual que los datos ya guardados por la tienda.
	decimal.MarshalJSONWithoutQuotes = true
}
