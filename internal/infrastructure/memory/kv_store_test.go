package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/campus-store/internal/infrastructure/memory"
)

func TestKVStore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	s := memory.NewKVStore()

	_, found, err := s.Get(ctx, "admin-authenticated")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "admin-authenticated", "true"))
	v, found, err := s.Get(ctx, "admin-authenticated")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", v)
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Remove(ctx, "admin-authenticated"))
	require.NoError(t, s.Remove(ctx, "admin-authenticated"), "borrar una clave inexistente no falla")
	_, found, err = s.Get(ctx, "admin-authenticated")
	require.NoError(t, err)
	assert.False(t, found)
}
