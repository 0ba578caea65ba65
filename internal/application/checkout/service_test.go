package checkout_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/campus-store/internal/application/checkout"
	"github.com/jhoicas/campus-store/internal/application/dto"
	"github.com/jhoicas/campus-store/internal/application/usecase"
	"github.com/jhoicas/campus-store/internal/application/verification"
	"github.com/jhoicas/campus-store/internal/domain"
	"github.com/jhoicas/campus-store/internal/domain/entity"
	"github.com/jhoicas/campus-store/internal/domain/orderid"
	"github.com/jhoicas/campus-store/internal/infrastructure/kvstore"
	"github.com/jhoicas/campus-store/internal/infrastructure/memory"
	"github.com/jhoicas/campus-store/internal/infrastructure/slipxml"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	kv       *memory.KVStore
	cart     *usecase.CartUseCase
	products *usecase.ProductUseCase
	orders   *kvstore.OrderStore
	sessions *kvstore.SessionStore
	signer   *slipxml.Signer
	svc      *checkout.Service
}

var fixedNow = time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	kv := memory.NewKVStore()
	catalog := kvstore.NewCatalogStore(kv)
	f := &fixture{
		kv:       kv,
		cart:     usecase.NewCartUseCase(catalog),
		products: usecase.NewProductUseCase(catalog, nil),
		orders:   kvstore.NewOrderStore(kv),
		sessions: kvstore.NewSessionStore(kv),
	}
	signer, err := slipxml.NewSigner("test-slip-secret")
	require.NoError(t, err)
	f.signer = signer
	now := func() time.Time { return fixedNow }
	f.svc = checkout.NewService(f.cart, f.orders, f.sessions, signer, nil).
		WithIDs(orderid.NewGeneratorWith(now, rand.NewPCG(1, 2)), now)
	return f
}

func (f *fixture) add(t *testing.T, ids ...string) {
	t.Helper()
	for _, id := range ids {
		_, err := f.cart.AddItem(context.Background(), id)
		require.NoError(t, err)
	}
}

// failingOrders falla al agregar órdenes.
type failingOrders struct {
	*kvstore.OrderStore
}

func (failingOrders) Append(context.Context, entity.Order) error { return errors.New("kv caído") }

// failingUserOrders solo falla al copiar al historial del usuario.
type failingUserOrders struct {
	*kvstore.OrderStore
}

func (failingUserOrders) AppendUserOrder(context.Context, entity.Order) error {
	return errors.New("kv caído")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Flujo completo: carrito → orden → verificación → entrega.
func TestCreateOrder_FlujoCompleto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.add(t, "1", "2")
	assert.True(t, decimal.NewFromInt(51500).Equal(f.cart.Get().Total))
	f.cart.UpdateQuantity("1", 3)
	assert.True(t, decimal.NewFromInt(64500).Equal(f.cart.Get().Total))

	order, err := f.svc.CreateOrder(ctx, dto.CheckoutRequest{CustomerName: "  Ada ", UserAgent: "test-agent"})
	require.NoError(t, err)
	assert.True(t, orderid.Valid(order.ID), order.ID)
	assert.Equal(t, "Ada", order.CustomerName)
	assert.Len(t, order.Items, 2)
	assert.True(t, decimal.NewFromInt(64500).Equal(order.Total))
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "2024-06-10T08:00:00.000Z", order.Timestamp)
	assert.Equal(t, "test-agent", order.UserAgent)
	assert.False(t, order.IsSignedIn)
	assert.Len(t, order.Fingerprint, slipxml.FingerprintLen)
	assert.Empty(t, f.cart.Get().Items, "el carrito se vacía tras la orden")

	ver := verification.NewUseCase(f.orders, f.signer, nil)
	_, err = ver.MarkCompleted(ctx, order.ID)
	require.NoError(t, err)

	res, err := ver.Verify(ctx, order.ID)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, entity.OrderStatusCompleted, res.Order.Status)
	assert.Equal(t, order.Fingerprint, res.Order.Fingerprint)
}

func TestCreateOrder_SegundaOrdenConCarritoVacio(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.add(t, "7")

	first, err := f.svc.CreateOrder(ctx, dto.CheckoutRequest{CustomerName: "Ada"})
	require.NoError(t, err)
	second, err := f.svc.CreateOrder(ctx, dto.CheckoutRequest{CustomerName: "Ada"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Empty(t, second.Items)
	assert.True(t, second.Total.IsZero())

	all, err := f.orders.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateOrder_NombreObligatorioSinSesion(t *testing.T) {
	f := newFixture(t)
	f.add(t, "1")

	_, err := f.svc.CreateOrder(context.Background(), dto.CheckoutRequest{CustomerName: "   "})
	assert.ErrorIs(t, err, domain.ErrNameRequired)
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Len(t, f.cart.Get().Items, 1, "no se toca el carrito")
	_, found, _ := f.kv.Get(context.Background(), "polytechnic-orders")
	assert.False(t, found, "no se escribe nada")
}

func TestCreateOrder_ConSesionUsaDatosDelUsuario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.sessions.Save(ctx, entity.User{ID: "1", Name: "Grace", Email: "grace@poly.edu"}))
	f.add(t, "4")

	order, err := f.svc.CreateOrder(ctx, dto.CheckoutRequest{CustomerName: "Otro", CustomerEmail: "otro@x"})
	require.NoError(t, err)
	assert.Equal(t, "Grace", order.CustomerName)
	assert.Equal(t, "grace@poly.edu", order.CustomerEmail)
	assert.True(t, order.IsSignedIn)

	mine, err := f.orders.ListUserOrders(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, order.ID, mine[0].ID)
}

func TestCreateOrder_SinSesionNoCopiaAlUsuario(t *testing.T) {
	f := newFixture(t)
	f.add(t, "4")
	_, err := f.svc.CreateOrder(context.Background(), dto.CheckoutRequest{CustomerName: "Ada"})
	require.NoError(t, err)

	mine, err := f.orders.ListUserOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestCreateOrder_BorrarProductoNoAlteraOrdenes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.add(t, "2")

	order, err := f.svc.CreateOrder(ctx, dto.CheckoutRequest{CustomerName: "Ada"})
	require.NoError(t, err)
	require.NoError(t, f.products.Delete(ctx, "2"))

	stored, err := f.orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Scientific Calculator", stored.Items[0].Name)
	assert.True(t, decimal.NewFromInt(45000).Equal(stored.Items[0].Price))
}

func TestCreateOrder_ErrorDeAlmacenConservaCarrito(t *testing.T) {
	f := newFixture(t)
	f.add(t, "3")
	svc := checkout.NewService(f.cart, failingOrders{f.orders}, f.sessions, nil, nil)

	_, err := svc.CreateOrder(context.Background(), dto.CheckoutRequest{CustomerName: "Ada"})
	require.Error(t, err)
	assert.Len(t, f.cart.Get().Items, 1)
}

func TestCreateOrder_FalloEnHistorialNoDuplicaOrdenes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.sessions.Save(ctx, entity.User{ID: "1", Name: "Grace", Email: "grace@poly.edu"}))
	f.add(t, "3")
	svc := checkout.NewService(f.cart, failingUserOrders{f.orders}, f.sessions, nil, nil)

	order, err := svc.CreateOrder(ctx, dto.CheckoutRequest{})
	require.NoError(t, err)
	assert.Empty(t, f.cart.Get().Items, "el carrito se vacía")

	all, err := f.orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, order.ID, all[0].ID)
}
