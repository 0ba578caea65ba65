package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/campus-store/internal/application/usecase"
	"github.com/jhoicas/campus-store/internal/domain"
	"github.com/jhoicas/campus-store/internal/domain/entity"
	"github.com/jhoicas/campus-store/internal/infrastructure/kvstore"
	"github.com/jhoicas/campus-store/internal/infrastructure/memory"
)

func newCart() *usecase.CartUseCase {
	return usecase.NewCartUseCase(kvstore.NewCatalogStore(memory.NewKVStore()))
}

func TestCartUseCase_AgregarYActualizar(t *testing.T) {
	uc := newCart()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "1") // 6500
	require.NoError(t, err)
	res, err := uc.AddItem(ctx, "2") // 45000
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(51500).Equal(res.Total))
	assert.Equal(t, 2, res.Count)

	res = uc.UpdateQuantity("1", 3)
	assert.True(t, decimal.NewFromInt(64500).Equal(res.Total))
	assert.Equal(t, 4, res.Count)
	require.Len(t, res.Items, 2)
	assert.True(t, decimal.NewFromInt(19500).Equal(res.Items[0].Subtotal))

	res = uc.UpdateQuantity("2", 0)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "1", res.Items[0].ID)

	res = uc.Clear()
	assert.Empty(t, res.Items)
	assert.True(t, res.Total.IsZero())
}

func TestCartUseCase_ProductoInexistente(t *testing.T) {
	uc := newCart()
	_, err := uc.AddItem(context.Background(), "999")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, uc.Get().Items)
}

func TestCartUseCase_CheckoutFallidoConservaCarrito(t *testing.T) {
	uc := newCart()
	_, err := uc.AddItem(context.Background(), "3")
	require.NoError(t, err)

	boom := errors.New("boom")
	err = uc.Checkout(func(items []entity.CartLineItem, total decimal.Decimal) error {
		assert.Len(t, items, 1)
		assert.True(t, decimal.NewFromInt(8500).Equal(total))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Len(t, uc.Get().Items, 1)

	require.NoError(t, uc.Checkout(func([]entity.CartLineItem, decimal.Decimal) error { return nil }))
	assert.Empty(t, uc.Get().Items)
}

func TestCartUseCase_Concurrente(t *testing.T) {
	uc := newCart()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.AddItem(ctx, "7")
		}()
	}
	wg.Wait()

	res := uc.Get()
	require.Len(t, res.Items, 1)
	assert.Equal(t, 50, res.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(40000).Equal(res.Total))
}
