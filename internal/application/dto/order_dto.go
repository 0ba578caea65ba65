package dto

import "github.com/shopspring/decimal"

// CheckoutRequest datos del cliente para generar el comprobante.
// Con sesión iniciada se usan el nombre y email del usuario.
type CheckoutRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	UserAgent     string `json:"-"`
}

// OrderLineResponse línea de una orden.
type OrderLineResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerName  string              `json:"customerName"`
	CustomerEmail string              `json:"customerEmail,omitempty"`
	Items         []OrderLineResponse `json:"items"`
	Total         decimal.Decimal     `json:"total"`
	Timestamp     string              `json:"timestamp"`
	UserAgent     string              `json:"userAgent,omitempty"`
	IsSignedIn    bool                `json:"isSignedIn"`
	Status        string              `json:"status"`
	Fingerprint   string              `json:"fingerprint,omitempty"`
}

// OrderListResponse listado de órdenes.
type OrderListResponse struct {
	Status string          `json:"status,omitempty"`
	Items  []OrderResponse `json:"items"`
	Count  int             `json:"count"`
}

// VerifyOrderResponse resultado de la verificación de un comprobante.
// Found=false significa que el ID no existe: posible comprobante falso.
type VerifyOrderResponse struct {
	OrderID string         `json:"orderId"`
	Found   bool           `json:"found"`
	Order   *OrderResponse `json:"order,omitempty"`
	Message string         `json:"message"`
}

// FingerprintCheckResponse comparación de la huella impresa con la calculada.
type FingerprintCheckResponse struct {
	OrderID  string `json:"orderId"`
	Match    bool   `json:"match"`
	Expected string `json:"expected,omitempty"`
}

// OrderSummaryResponse contadores del panel de administración.
type OrderSummaryResponse struct {
	TotalOrders      int             `json:"totalOrders"`
	PendingOrders    int             `json:"pendingOrders"`
	CompletedOrders  int             `json:"completedOrders"`
	PendingRevenue   decimal.Decimal `json:"pendingRevenue"`
	CompletedRevenue decimal.Decimal `json:"completedRevenue"`
	SignedInOrders   int             `json:"signedInOrders"`
	GuestOrders      int             `json:"guestOrders"`
}
