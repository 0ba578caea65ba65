package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden. pending -> completed es la única transición; completed es terminal.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// TimestampLayout formato ISO-8601 con milisegundos usado en Order.Timestamp.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Order registro inmutable de un checkout ("order slip"). Solo Status cambia después de crearse.
type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail,omitempty"`
	Items         []CartLineItem  `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Timestamp     string          `json:"timestamp"`
	UserAgent     string          `json:"userAgent,omitempty"`
	IsSignedIn    bool            `json:"isSignedIn"`
	Status        string          `json:"status"`
}

// UnmarshalJSON trata como pending las órdenes guardadas sin campo status.
func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = OrderStatusPending
	}
	if p.Items == nil {
		p.Items = []CartLineItem{}
	}
	*o = Order(p)
	return nil
}

// IsCompleted indica si la orden ya fue entregada.
func (o *Order) IsCompleted() bool {
	return o.Status == OrderStatusCompleted
}

// MarkCompleted aplica la transición pending -> completed. Devuelve false si ya estaba completada.
func (o *Order) MarkCompleted() bool {
	if o.IsCompleted() {
		return false
	}
	o.Status = OrderStatusCompleted
	return true
}

// CreatedAt interpreta Timestamp; devuelve el zero time si no es válido.
func (o *Order) CreatedAt() time.Time {
	t, err := time.Parse(time.RFC3339Nano, o.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Clone copia profunda (los items no se comparten).
func (o Order) Clone() Order {
	items := make([]CartLineItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
