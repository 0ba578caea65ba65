// Package verification agrupa las operaciones del panel de administración sobre órdenes:
// verificar un comprobante presentado, marcarlo como entregado y consultar el estado.
package verification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/campus-store/internal/application/dto"
	"github.com/jhoicas/campus-store/internal/domain"
	"github.com/jhoicas/campus-store/internal/domain/entity"
	"github.com/jhoicas/campus-store/internal/domain/repository"
	"github.com/jhoicas/campus-store/pkg/logger"
)

// FingerprintMatcher recalcula la huella de una orden y la compara con la presentada.
type FingerprintMatcher interface {
	Fingerprint(order entity.Order) (string, error)
	Match(order entity.Order, presented string) (ok bool, expected string, err error)
}

// RevenueSource calcula los ingresos por estado en el propio almacén (PostgreSQL).
type RevenueSource interface {
	RevenueByStatus(ctx context.Context) (map[string]decimal.Decimal, error)
}

// UseCase verificación y entrega de órdenes.
type UseCase struct {
	orders  repository.OrderRepository
	prints  FingerprintMatcher
	revenue RevenueSource
	log     *logger.Logger
}

// NewUseCase construye el caso de uso. Con prints nil las órdenes no llevan huella y
// CheckFingerprint devuelve error.
func NewUseCase(orders repository.OrderRepository, prints FingerprintMatcher, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{orders: orders, prints: prints, log: log.Component("verification")}
}

// WithRevenue delega en src la suma de ingresos de Summary.
func (uc *UseCase) WithRevenue(src RevenueSource) *UseCase {
	uc.revenue = src
	return uc
}

// Verify busca la orden por ID (sin espacios). Un ID inexistente no es error: Found=false
// indica un posible comprobante falso. ID vacío devuelve ErrValidation.
func (uc *UseCase) Verify(ctx context.Context, rawID string) (*dto.VerifyOrderResponse, error) {
	id := strings.TrimSpace(rawID)
	if id == "" {
		return nil, fmt.Errorf("%w: ID de orden vacío", domain.ErrValidation)
	}
	order, err := uc.orders.FindByID(ctx, id)
	switch {
	case err == nil:
		res := dto.NewOrderResponse(*order, uc.fingerprint(*order))
		return &dto.VerifyOrderResponse{OrderID: id, Found: true, Order: &res, Message: "Order verified"}, nil
	case errors.Is(err, domain.ErrNotFound):
		uc.log.Warn().Str("order_id", id).Msg("comprobante no encontrado")
		return &dto.VerifyOrderResponse{OrderID: id, Found: false, Message: "Order not found. This may be a fraudulent slip."}, nil
	default:
		return nil, err
	}
}

// MarkCompleted marca la orden como entregada. Idempotente; ErrOrderNotFound si no existe.
func (uc *UseCase) MarkCompleted(ctx context.Context, rawID string) (*dto.OrderResponse, error) {
	id := strings.TrimSpace(rawID)
	if id == "" {
		return nil, fmt.Errorf("%w: ID de orden vacío", domain.ErrValidation)
	}
	order, err := uc.orders.MarkCompleted(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("order_id", order.ID).Msg("orden completada")
	res := dto.NewOrderResponse(*order, "")
	return &res, nil
}

// Pending órdenes pendientes de entrega, en orden de creación.
func (uc *UseCase) Pending(ctx context.Context) (*dto.OrderListResponse, error) {
	return uc.byStatus(ctx, entity.OrderStatusPending)
}

// Completed órdenes entregadas.
func (uc *UseCase) Completed(ctx context.Context) (*dto.OrderListResponse, error) {
	return uc.byStatus(ctx, entity.OrderStatusCompleted)
}

// List todas las órdenes o las de un estado ("" = todas).
func (uc *UseCase) List(ctx context.Context, status string) (*dto.OrderListResponse, error) {
	switch status {
	case "":
		orders, err := uc.orders.List(ctx)
		if err != nil {
			return nil, err
		}
		res := dto.NewOrderListResponse("", orders)
		return &res, nil
	case entity.OrderStatusPending, entity.OrderStatusCompleted:
		return uc.byStatus(ctx, status)
	default:
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrValidation, status)
	}
}

func (uc *UseCase) byStatus(ctx context.Context, status string) (*dto.OrderListResponse, error) {
	orders, err := uc.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	res := dto.NewOrderListResponse(status, filtered)
	return &res, nil
}

// Summary contadores del panel.
func (uc *UseCase) Summary(ctx context.Context) (*dto.OrderSummaryResponse, error) {
	orders, err := uc.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	s := &dto.OrderSummaryResponse{
		TotalOrders:      len(orders),
		PendingRevenue:   decimal.Zero,
		CompletedRevenue: decimal.Zero,
	}
	for _, o := range orders {
		if o.IsCompleted() {
			s.CompletedOrders++
			s.CompletedRevenue = s.CompletedRevenue.Add(o.Total)
		} else {
			s.PendingOrders++
			s.PendingRevenue = s.PendingRevenue.Add(o.Total)
		}
		if o.IsSignedIn {
			s.SignedInOrders++
		} else {
			s.GuestOrders++
		}
	}
	if uc.revenue != nil {
		byStatus, err := uc.revenue.RevenueByStatus(ctx)
		if err != nil {
			return nil, err
		}
		s.PendingRevenue = byStatus[entity.OrderStatusPending]
		s.CompletedRevenue = byStatus[entity.OrderStatusCompleted]
	}
	return s, nil
}

// CheckFingerprint compara la huella impresa en el comprobante con la de la orden guardada.
// Un desajuste indica que el comprobante fue alterado.
func (uc *UseCase) CheckFingerprint(ctx context.Context, rawID, fingerprint string) (*dto.FingerprintCheckResponse, error) {
	id := strings.TrimSpace(rawID)
	if id == "" || strings.TrimSpace(fingerprint) == "" {
		return nil, fmt.Errorf("%w: ID y huella son obligatorios", domain.ErrValidation)
	}
	if uc.prints == nil {
		return nil, errors.New("verificación: huella de comprobantes no configurada")
	}
	order, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, expected, err := uc.prints.Match(*order, fingerprint)
	if err != nil {
		return nil, err
	}
	if !ok {
		uc.log.Warn().Str("order_id", id).Msg("huella no coincide")
	}
	return &dto.FingerprintCheckResponse{OrderID: id, Match: ok, Expected: expected}, nil
}

func (uc *UseCase) fingerprint(o entity.Order) string {
	if uc.prints == nil {
		return ""
	}
	fp, err := uc.prints.Fingerprint(o)
	if err != nil {
		uc.log.Warn().Err(err).Str("order_id", o.ID).Msg("huella no disponible")
		return ""
	}
	return fp
}
