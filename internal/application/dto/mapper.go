package dto

import "github.com/jhoicas/campus-store/internal/domain/entity"

// NewOrderResponse mapea una orden a su salida HTTP. fingerprint puede ir vacío.
func NewOrderResponse(o entity.Order, fingerprint string) OrderResponse {
	items := make([]OrderLineResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderLineResponse{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Image:    it.Image,
			Quantity: it.Quantity,
			Subtotal: it.Subtotal(),
		})
	}
	return OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Items:         items,
		Total:         o.Total,
		Timestamp:     o.Timestamp,
		UserAgent:     o.UserAgent,
		IsSignedIn:    o.IsSignedIn,
		Status:        o.Status,
		Fingerprint:   fingerprint,
	}
}

// NewOrderListResponse mapea un listado sin huellas.
func NewOrderListResponse(status string, orders []entity.Order) OrderListResponse {
	items := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, NewOrderResponse(o, ""))
	}
	return OrderListResponse{Status: status, Items: items, Count: len(items)}
}

// NewUserResponse mapea el usuario con sesión.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, ProfileImage: u.ProfileImage}
}
