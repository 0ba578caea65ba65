package kvstore_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/campus-store/internal/domain"
	"github.com/jhoicas/campus-store/internal/domain/entity"
	"github.com/jhoicas/campus-store/internal/domain/repository"
	"github.com/jhoicas/campus-store/internal/infrastructure/kvstore"
	"github.com/jhoicas/campus-store/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// countingKV cuenta escrituras por clave y permite simular fallos.
type countingKV struct {
	*memory.KVStore
	sets    map[string]int
	failSet error
	failGet error
}

func newCountingKV() *countingKV {
	return &countingKV{KVStore: memory.NewKVStore(), sets: map[string]int{}}
}

func (c *countingKV) Get(ctx context.Context, key string) (string, bool, error) {
	if c.failGet != nil {
		return "", false, c.failGet
	}
	return c.KVStore.Get(ctx, key)
}

func (c *countingKV) Set(ctx context.Context, key, value string) error {
	if c.failSet != nil {
		return c.failSet
	}
	c.sets[key]++
	return c.KVStore.Set(ctx, key, value)
}

func sampleOrder(id string) entity.Order {
	return entity.Order{
		ID:           id,
		CustomerName: "Ada",
		Items: []entity.CartLineItem{
			{ID: "1", Name: "Engineering Notebook", Price: decimal.NewFromInt(6500), Quantity: 3},
		},
		Total:     decimal.NewFromInt(19500),
		Timestamp: "2024-06-10T08:00:00.000Z",
		Status:    entity.OrderStatusPending,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CatalogStore
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogStore_SinDatosUsaCatalogoInicial(t *testing.T) {
	s := kvstore.NewCatalogStore(memory.NewKVStore())
	products, err := s.List(context.Background(), "All")
	require.NoError(t, err)
	require.Len(t, products, 9)
	assert.Equal(t, "Engineering Notebook", products[0].Name)
}

func TestCatalogStore_ListPorCategoria(t *testing.T) {
	s := kvstore.NewCatalogStore(memory.NewKVStore())
	products, err := s.List(context.Background(), "Electronics")
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "Electronics", p.Category)
	}

	none, err := s.List(context.Background(), "electronics")
	require.NoError(t, err)
	assert.Empty(t, none, "la comparación de categoría es exacta")
}

func TestCatalogStore_AddAsignaIDYPersiste(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	fixed := time.UnixMilli(1718000000000)
	s := kvstore.NewCatalogStore(kv).WithClock(func() time.Time { return fixed })

	in := entity.ProductInput{Name: "Lab Coat", Price: decimal.NewFromInt(15000), Category: "Safety Equipment"}
	a, err := s.Add(ctx, in)
	require.NoError(t, err)
	b, err := s.Add(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, "1718000000000", a.ID)
	assert.Equal(t, "1718000000001", b.ID, "mismo milisegundo: el ID se incrementa")

	raw, found, err := kv.Get(ctx, repository.KeyProducts)
	require.NoError(t, err)
	require.True(t, found)

	var stored []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Len(t, stored, 11, "9 iniciales + 2 nuevos")
	assert.Equal(t, float64(15000), stored[9]["price"], "el precio se guarda como número")
}

func TestCatalogStore_UpdateYDelete(t *testing.T) {
	ctx := context.Background()
	s := kvstore.NewCatalogStore(memory.NewKVStore())

	updated, err := s.Update(ctx, "7", entity.ProductInput{Name: "Energy Drink XL", Price: decimal.NewFromInt(1200), Category: "Food & Snacks"})
	require.NoError(t, err)
	assert.Equal(t, "7", updated.ID)

	got, err := s.GetByID(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "Energy Drink XL", got.Name)

	require.NoError(t, s.Delete(ctx, "7"))
	_, err = s.GetByID(ctx, "7")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 8)
}

func TestCatalogStore_IDInexistente(t *testing.T) {
	ctx := context.Background()
	s := kvstore.NewCatalogStore(memory.NewKVStore())

	_, err := s.Update(ctx, "404", entity.ProductInput{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "404"), domain.ErrProductNotFound)
}

func TestCatalogStore_ListaVaciaNoVuelveAlCatalogoInicial(t *testing.T) {
	ctx := context.Background()
	s := kvstore.NewCatalogStore(memory.NewKVStore())
	require.NoError(t, s.ReplaceAll(ctx, nil))

	products, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogStore_ErrorDeEscritura(t *testing.T) {
	kv := newCountingKV()
	kv.failSet = errors.New("disco lleno")
	s := kvstore.NewCatalogStore(kv)

	_, err := s.Add(context.Background(), entity.ProductInput{Name: "x"})
	assert.ErrorContains(t, err, "disco lleno")
}

// ──────────────────────────────────────────────────────────────────────────────
// OrderStore
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderStore_AppendYFindByID(t *testing.T) {
	ctx := context.Background()
	s := kvstore.NewOrderStore(memory.NewKVStore())

	require.NoError(t, s.Append(ctx, sampleOrder("PS-1-AAAAAAAAA")))
	require.NoError(t, s.Append(ctx, sampleOrder("PS-2-BBBBBBBBB")))

	o, err := s.FindByID(ctx, "PS-2-BBBBBBBBB")
	require.NoError(t, err)
	assert.Equal(t, "PS-2-BBBBBBBBB", o.ID)

	_, err = s.FindByID(ctx, "PS-3-CCCCCCCCC")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "PS-1-AAAAAAAAA", all[0].ID, "orden de inserción")
}

func TestOrderStore_FindByIDSinOrdenes(t *testing.T) {
	s := kvstore.NewOrderStore(memory.NewKVStore())
	_, err := s.FindByID(context.Background(), "PS-1-AAAAAAAAA")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderStore_MarkCompletedIdempotente(t *testing.T) {
	ctx := context.Background()
	kv := newCountingKV()
	s := kvstore.NewOrderStore(kv)
	require.NoError(t, s.Append(ctx, sampleOrder("PS-1-AAAAAAAAA")))
	writes := kv.sets[repository.KeyOrders]

	first, err := s.MarkCompleted(ctx, "PS-1-AAAAAAAAA")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, first.Status)
	assert.Equal(t, writes+1, kv.sets[repository.KeyOrders])

	second, err := s.MarkCompleted(ctx, "PS-1-AAAAAAAAA")
	require.NoError(t, err, "la segunda llamada no es error")
	assert.Equal(t, entity.OrderStatusCompleted, second.Status)
	assert.Equal(t, writes+1, kv.sets[repository.KeyOrders], "sin escritura si ya estaba completada")

	found, err := s.FindByID(ctx, "PS-1-AAAAAAAAA")
	require.NoError(t, err)
	assert.True(t, found.IsCompleted())
}

func TestOrderStore_MarkCompletedInexistente(t *testing.T) {
	s := kvstore.NewOrderStore(memory.NewKVStore())
	_, err := s.MarkCompleted(context.Background(), "PS-9-ZZZZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderStore_MarkCompletedActualizaCopiaDelUsuario(t *testing.T) {
	ctx := context.Background()
	s := kvstore.NewOrderStore(memory.NewKVStore())
	o := sampleOrder("PS-1-AAAAAAAAA")
	require.NoError(t, s.Append(ctx, o))
	require.NoError(t, s.AppendUserOrder(ctx, o))

	_, err := s.MarkCompleted(ctx, o.ID)
	require.NoError(t, err)

	mine, err := s.ListUserOrders(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, entity.OrderStatusCompleted, mine[0].Status)
}

func TestOrderStore_OrdenHeredadaSinStatusEsPending(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	legacy := `[{"id":"PS-1718000000000-K3J9X2ABC","customerName":"Ada","items":[{"id":"1","name":"Engineering Notebook","price":6500,"image":"","quantity":1}],"total":6500,"timestamp":"2024-06-10T08:00:00.000Z","userAgent":"Mozilla/5.0","isSignedIn":false}]`
	require.NoError(t, kv.Set(ctx, repository.KeyOrders, legacy))

	o, err := kvstore.NewOrderStore(kv).FindByID(ctx, "PS-1718000000000-K3J9X2ABC")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, o.Status)
	assert.True(t, decimal.NewFromInt(6500).Equal(o.Total))
	assert.Equal(t, "Mozilla/5.0", o.UserAgent)
}

func TestOrderStore_ClearUserOrders(t *testing.T) {
	ctx := context.Background()
	s := kvstore.NewOrderStore(memory.NewKVStore())
	require.NoError(t, s.AppendUserOrder(ctx, sampleOrder("PS-1-AAAAAAAAA")))
	require.NoError(t, s.ClearUserOrders(ctx))

	mine, err := s.ListUserOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestOrderStore_ErrorDeLectura(t *testing.T) {
	kv := newCountingKV()
	kv.failGet = errors.New("timeout")
	_, err := kvstore.NewOrderStore(kv).FindByID(context.Background(), "PS-1-AAAAAAAAA")
	assert.ErrorContains(t, err, "timeout")
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderStore_JSONCorrupto(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	require.NoError(t, kv.Set(ctx, repository.KeyOrders, "{no es json"))
	_, err := kvstore.NewOrderStore(kv).List(ctx)
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// SessionStore / AdminFlagStore
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionStore_Ciclo(t *testing.T) {
	ctx := context.Background()
	s := kvstore.NewSessionStore(memory.NewKVStore())

	u, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, s.Save(ctx, entity.User{ID: "1718", Name: "Ada", Email: "ada@poly.edu"}))
	u, err = s.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Ada", u.Name)

	require.NoError(t, s.Clear(ctx))
	u, err = s.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestAdminFlagStore(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	s := kvstore.NewAdminFlagStore(kv)

	ok, err := s.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetAuthenticated(ctx))
	v, _, _ := kv.Get(ctx, repository.KeyAdminSession)
	assert.Equal(t, "true", v)
	ok, err = s.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, kv.Set(ctx, repository.KeyAdminSession, "yes"))
	ok, _ = s.IsAuthenticated(ctx)
	assert.False(t, ok, "solo el valor exacto \"true\" habilita el panel")

	require.NoError(t, s.ClearAuthenticated(ctx))
	ok, _ = s.IsAuthenticated(ctx)
	assert.False(t, ok)
}
