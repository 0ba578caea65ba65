package kvstore

import (
	"context"
	"sync"

	"github.com/jhoicas/campus-store/internal/domain"
	"github.com/jhoicas/campus-store/internal/domain/entity"
	"github.com/jhoicas/campus-store/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderStore)(nil)

// OrderStore lista global de órdenes ("polytechnic-orders") y copia del usuario con sesión
// ("polytechnic-user-orders"). Sin límite de tamaño ni índices: la búsqueda es lineal.
type OrderStore struct {
	mu sync.Mutex
	kv repository.KeyValueStore
}

// NewOrderStore construye el repositorio.
func NewOrderStore(kv repository.KeyValueStore) *OrderStore {
	return &OrderStore{kv: kv}
}

func (s *OrderStore) load(ctx context.Context, key string) ([]entity.Order, error) {
	orders := []entity.Order{}
	if _, err := loadJSON(ctx, s.kv, key, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Append agrega la orden al final de la lista global.
func (s *OrderStore) Append(ctx context.Context, order entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendTo(ctx, repository.KeyOrders, order)
}

// AppendUserOrder agrega la orden a la copia del usuario.
func (s *OrderStore) AppendUserOrder(ctx context.Context, order entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendTo(ctx, repository.KeyUserOrders, order)
}

func (s *OrderStore) appendTo(ctx context.Context, key string, order entity.Order) error {
	orders, err := s.load(ctx, key)
	if err != nil {
		return err
	}
	orders = append(orders, order.Clone())
	return saveJSON(ctx, s.kv, key, orders)
}

// FindByID busca por coincidencia exacta del ID.
func (s *OrderStore) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load(ctx, repository.KeyOrders)
	if err != nil {
		return nil, err
	}
	i := indexOfOrder(orders, id)
	if i < 0 {
		return nil, domain.ErrOrderNotFound
	}
	o := orders[i]
	return &o, nil
}

// MarkCompleted pasa la orden a completed. Si ya lo estaba la devuelve sin escribir.
// La copia del usuario, si contiene la orden, se actualiza también.
func (s *OrderStore) MarkCompleted(ctx context.Context, id string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load(ctx, repository.KeyOrders)
	if err != nil {
		return nil, err
	}
	i := indexOfOrder(orders, id)
	if i < 0 {
		return nil, domain.ErrOrderNotFound
	}
	if !orders[i].MarkCompleted() {
		o := orders[i]
		return &o, nil
	}
	if err := saveJSON(ctx, s.kv, repository.KeyOrders, orders); err != nil {
		return nil, err
	}

	mine, err := s.load(ctx, repository.KeyUserOrders)
	if err != nil {
		return nil, err
	}
	if j := indexOfOrder(mine, id); j >= 0 && mine[j].MarkCompleted() {
		if err := saveJSON(ctx, s.kv, repository.KeyUserOrders, mine); err != nil {
			return nil, err
		}
	}
	o := orders[i]
	return &o, nil
}

// List todas las órdenes en orden de creación.
func (s *OrderStore) List(ctx context.Context) ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, repository.KeyOrders)
}

// ListUserOrders órdenes del usuario con sesión.
func (s *OrderStore) ListUserOrders(ctx context.Context) ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, repository.KeyUserOrders)
}

// ClearUserOrders borra la copia del usuario (al cerrar sesión).
func (s *OrderStore) ClearUserOrders(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Remove(ctx, repository.KeyUserOrders)
}

func indexOfOrder(orders []entity.Order, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}
