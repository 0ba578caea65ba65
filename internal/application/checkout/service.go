// Package checkout implementa la fábrica de órdenes: convierte el carrito de la sesión y la
// identidad del cliente en un comprobante ("order slip") persistido.
package checkout

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/campus-store/internal/application/dto"
	"github.com/jhoicas/campus-store/internal/application/slip"
	"github.com/jhoicas/campus-store/internal/domain"
	"github.com/jhoicas/campus-store/internal/domain/entity"
	"github.com/jhoicas/campus-store/internal/domain/orderid"
	"github.com/jhoicas/campus-store/internal/domain/repository"
	"github.com/jhoicas/campus-store/pkg/logger"
	"github.com/jhoicas/campus-store/pkg/money"
)

// Cart carrito desde el que se genera la orden. Checkout vacía el carrito solo si fn no falla.
type Cart interface {
	Checkout(fn func(items []entity.CartLineItem, total decimal.Decimal) error) error
}

// Service fábrica de órdenes.
type Service struct {
	cart     Cart
	orders   repository.OrderRepository
	sessions repository.SessionRepository
	prints   slip.Fingerprinter
	ids      *orderid.Generator
	now      func() time.Time
	log      *logger.Logger
}

// NewService construye la fábrica. prints puede ser nil (la respuesta no lleva huella).
func NewService(
	cart Cart,
	orders repository.OrderRepository,
	sessions repository.SessionRepository,
	prints slip.Fingerprinter,
	log *logger.Logger,
) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		cart:     cart,
		orders:   orders,
		sessions: sessions,
		prints:   prints,
		ids:      orderid.NewGenerator(),
		now:      time.Now,
		log:      log.Component("checkout"),
	}
}

// WithIDs reemplaza el generador de IDs y el reloj (tests).
func (s *Service) WithIDs(ids *orderid.Generator, now func() time.Time) *Service {
	s.ids = ids
	s.now = now
	return s
}

// CreateOrder genera la orden a partir del carrito actual.
//
// Con sesión iniciada se usan el nombre y email del usuario y la orden se copia también al
// historial del usuario; si esa copia falla la orden se devuelve igual. Sin sesión, CustomerName (sin espacios) es obligatorio y se devuelve
// ErrNameRequired antes de tocar el carrito o el almacén. Con éxito el carrito queda vacío.
// Un carrito vacío produce una orden sin líneas y total 0.
func (s *Service) CreateOrder(ctx context.Context, req dto.CheckoutRequest) (*dto.OrderResponse, error) {
	user, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.CustomerName)
	email := strings.TrimSpace(req.CustomerEmail)
	if user != nil {
		name, email = user.Name, user.Email
	} else if name == "" {
		return nil, domain.ErrNameRequired
	}

	var order entity.Order
	err = s.cart.Checkout(func(items []entity.CartLineItem, total decimal.Decimal) error {
		order = entity.Order{
			ID:            s.ids.Next(),
			CustomerName:  name,
			CustomerEmail: email,
			Items:         items,
			Total:         total,
			Timestamp:     s.now().UTC().Format(entity.TimestampLayout),
			UserAgent:     req.UserAgent,
			IsSignedIn:    user != nil,
			Status:        entity.OrderStatusPending,
		}
		return s.orders.Append(ctx, order)
	})
	if err != nil {
		s.log.Error().Err(err).Msg("no se pudo registrar la orden")
		return nil, err
	}

	// La orden ya está en la lista global; la copia del usuario no la revierte.
	if user != nil {
		if err := s.orders.AppendUserOrder(ctx, order); err != nil {
			s.log.Warn().Err(err).Str("order_id", order.ID).Msg("no se pudo copiar la orden al historial del usuario")
		}
	}

	s.log.Info().
		Str("order_id", order.ID).
		Int("items", len(order.Items)).
		Str("total", money.Format(order.Total)).
		Bool("signed_in", order.IsSignedIn).
		Msg("orden creada")

	var fp string
	if s.prints != nil {
		if fp, err = s.prints.Fingerprint(order); err != nil {
			s.log.Warn().Err(err).Str("order_id", order.ID).Msg("huella no disponible")
			fp = ""
		}
	}
	res := dto.NewOrderResponse(order, fp)
	return &res, nil
}
