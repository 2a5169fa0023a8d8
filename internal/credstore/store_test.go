package credstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/hawkauth/hawk"
	"github.com/vitalvas/hawkauth/internal/config"
)

func TestStoreResolve(t *testing.T) {
	store := New([]config.Credential{
		{ID: "active", Key: "k1", Algorithm: "sha256", User: "steve"},
		{ID: "legacy", Key: "k2", Algorithm: "sha1", User: "bob", Disabled: true},
	})

	var _ hawk.Resolver = store

	assert.Equal(t, 2, store.Len())

	t.Run("active id is found", func(t *testing.T) {
		l, err := store.Resolve(context.Background(), "active")
		require.NoError(t, err)

		c, ok := l.Credentials()
		require.True(t, ok)
		assert.Equal(t, "k1", c.Key)
		assert.Equal(t, hawk.AlgorithmSHA256, c.Algorithm)
		assert.Equal(t, &User{ID: "active", Name: "steve"}, c.User)
	})

	t.Run("disabled id is not found", func(t *testing.T) {
		l, err := store.Resolve(context.Background(), "legacy")
		require.NoError(t, err)

		_, ok := l.Credentials()
		assert.False(t, ok)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		l, err := store.Resolve(context.Background(), "ghost")
		require.NoError(t, err)

		_, ok := l.Credentials()
		assert.False(t, ok)
	})

	t.Run("cancelled context is an error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := store.Resolve(ctx, "active")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
