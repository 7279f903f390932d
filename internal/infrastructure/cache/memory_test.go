package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get round-trips", func(t *testing.T) {
		repo := NewMemoryRepository()

		require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Minute))

		got, err := repo.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("missing key returns ErrKeyNotFound", func(t *testing.T) {
		repo := NewMemoryRepository()

		_, err := repo.Get(ctx, "missing")

		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("expired key behaves as missing", func(t *testing.T) {
		repo := NewMemoryRepository()

		require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		_, err := repo.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrKeyNotFound)

		exists, err := repo.Exists(ctx, "k")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("delete removes the key", func(t *testing.T) {
		repo := NewMemoryRepository()

		require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Minute))
		require.NoError(t, repo.Delete(ctx, "k"))

		exists, err := repo.Exists(ctx, "k")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("set overwrites the previous value", func(t *testing.T) {
		repo := NewMemoryRepository()

		require.NoError(t, repo.Set(ctx, "k", []byte("old"), time.Minute))
		require.NoError(t, repo.Set(ctx, "k", []byte("new"), time.Minute))

		got, err := repo.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), got)
	})
}
