package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/campus-store/internal/application/dto"
	"github.com/jhoicas/campus-store/internal/application/session"
	"github.com/jhoicas/campus-store/internal/domain"
	"github.com/jhoicas/campus-store/internal/domain/entity"
	"github.com/jhoicas/campus-store/internal/infrastructure/kvstore"
	"github.com/jhoicas/campus-store/internal/infrastructure/memory"
)

func newSession() (*session.UseCase, *kvstore.OrderStore, *memory.KVStore) {
	kv := memory.NewKVStore()
	orders := kvstore.NewOrderStore(kv)
	uc := session.NewUseCase(kvstore.NewSessionStore(kv), orders, nil).
		WithClock(func() time.Time { return time.UnixMilli(1718006400000) })
	return uc, orders, kv
}

func TestSignInYCurrent(t *testing.T) {
	uc, _, kv := newSession()
	ctx := context.Background()

	cur, err := uc.Current(ctx)
	require.NoError(t, err)
	assert.False(t, cur.Authenticated)
	assert.Nil(t, cur.User)

	res, err := uc.SignIn(ctx, dto.SignInRequest{Name: " Ada ", Email: "ada@poly.edu"})
	require.NoError(t, err)
	assert.True(t, res.Authenticated)
	assert.Equal(t, "1718006400000", res.User.ID)
	assert.Equal(t, "Ada", res.User.Name)

	raw, found, err := kv.Get(ctx, "polytechnic-user")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"id":"1718006400000","name":"Ada","email":"ada@poly.edu"}`, raw)

	cur, err = uc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.User, cur.User)
}

func TestSignIn_Validacion(t *testing.T) {
	uc, _, _ := newSession()
	_, err := uc.SignIn(context.Background(), dto.SignInRequest{Name: "", Email: "ada@poly.edu"})
	assert.ErrorIs(t, err, domain.ErrNameRequired)
	_, err = uc.SignIn(context.Background(), dto.SignInRequest{Name: "Ada", Email: "no-es-email"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSignIn_OtroUsuarioNoHeredaHistorial(t *testing.T) {
	uc, orders, _ := newSession()
	ctx := context.Background()

	_, err := uc.SignIn(ctx, dto.SignInRequest{Name: "Ada", Email: "ada@poly.edu"})
	require.NoError(t, err)
	o := entity.Order{ID: "PS-1-AAAAAAAAA", CustomerName: "Ada", Status: entity.OrderStatusPending, Items: []entity.CartLineItem{}}
	require.NoError(t, orders.Append(ctx, o))
	require.NoError(t, orders.AppendUserOrder(ctx, o))

	res, err := uc.SignIn(ctx, dto.SignInRequest{Name: "Bob", Email: "bob@poly.edu"})
	require.NoError(t, err)
	assert.Equal(t, "Bob", res.User.Name)

	mine, err := uc.MyOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, mine.Count)
	assert.Empty(t, mine.Items)

	all, err := orders.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "la lista global no cambia")
}

func TestSignOutBorraHistorialLocal(t *testing.T) {
	uc, orders, kv := newSession()
	ctx := context.Background()

	_, err := uc.SignIn(ctx, dto.SignInRequest{Name: "Ada", Email: "ada@poly.edu"})
	require.NoError(t, err)
	o := entity.Order{ID: "PS-1-AAAAAAAAA", CustomerName: "Ada", Status: entity.OrderStatusPending, Items: []entity.CartLineItem{}}
	require.NoError(t, orders.Append(ctx, o))
	require.NoError(t, orders.AppendUserOrder(ctx, o))

	mine, err := uc.MyOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, mine.Count)

	require.NoError(t, uc.SignOut(ctx))
	_, found, _ := kv.Get(ctx, "polytechnic-user")
	assert.False(t, found)
	_, found, _ = kv.Get(ctx, "polytechnic-user-orders")
	assert.False(t, found)

	all, err := orders.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "la lista global no se toca")

	_, err = uc.MyOrders(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
