package kvstore

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/jhoicas/campus-store/internal/domain"
	"github.com/jhoicas/campus-store/internal/domain/catalog"
	"github.com/jhoicas/campus-store/internal/domain/entity"
	"github.com/jhoicas/campus-store/internal/domain/repository"
)

var _ repository.ProductRepository = (*CatalogStore)(nil)

// CatalogStore catálogo guardado en "polytechnic-products". Si la clave no existe se usa el catálogo inicial.
type CatalogStore struct {
	mu  sync.Mutex
	kv  repository.KeyValueStore
	now func() time.Time
}

// NewCatalogStore construye el repositorio.
func NewCatalogStore(kv repository.KeyValueStore) *CatalogStore {
	return &CatalogStore{kv: kv, now: time.Now}
}

// WithClock fija el reloj usado para generar IDs (tests).
func (s *CatalogStore) WithClock(now func() time.Time) *CatalogStore {
	s.now = now
	return s
}

func (s *CatalogStore) load(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	found, err := loadJSON(ctx, s.kv, repository.KeyProducts, &products)
	if err != nil {
		return nil, err
	}
	if !found {
		return catalog.Seed(), nil
	}
	return products, nil
}

func (s *CatalogStore) save(ctx context.Context, products []entity.Product) error {
	if products == nil {
		products = []entity.Product{}
	}
	return saveJSON(ctx, s.kv, repository.KeyProducts, products)
}

// Add asigna un ID basado en epoch-millis (incrementado si ya existe) y persiste la lista completa.
func (s *CatalogStore) Add(ctx context.Context, in entity.ProductInput) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	ms := s.now().UnixMilli()
	id := strconv.FormatInt(ms, 10)
	for indexOfProduct(products, id) >= 0 {
		ms++
		id = strconv.FormatInt(ms, 10)
	}
	p := in.WithID(id)
	products = append(products, p)
	if err := s.save(ctx, products); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update reemplaza el producto en su posición.
func (s *CatalogStore) Update(ctx context.Context, id string, in entity.ProductInput) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOfProduct(products, id)
	if i < 0 {
		return nil, domain.ErrProductNotFound
	}
	products[i] = in.WithID(id)
	if err := s.save(ctx, products); err != nil {
		return nil, err
	}
	p := products[i]
	return &p, nil
}

// Delete elimina el producto.
func (s *CatalogStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexOfProduct(products, id)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	return s.save(ctx, slices.Delete(products, i, i+1))
}

// GetByID obtiene un producto.
func (s *CatalogStore) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOfProduct(products, id)
	if i < 0 {
		return nil, domain.ErrProductNotFound
	}
	p := products[i]
	return &p, nil
}

// List todos los productos o los de una categoría.
func (s *CatalogStore) List(ctx context.Context, category string) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Filter(products, category), nil
}

// ReplaceAll sustituye el catálogo completo.
func (s *CatalogStore) ReplaceAll(ctx context.Context, products []entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, products)
}

func indexOfProduct(products []entity.Product, id string) int {
	return slices.IndexFunc(products, func(p entity.Product) bool { return p.ID == id })
}
