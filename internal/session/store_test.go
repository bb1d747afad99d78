package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/internal/models"
)

func TestMemoryStoreUnknownSessionYieldsEmptyCart(t *testing.T) {
	store := NewMemoryStore()

	c := store.GetCart(context.Background(), "sess_missing")

	assert.NotNil(t, c)
	assert.Empty(t, c)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	c := models.Cart{}
	c.Increment(5, 2)
	c.Increment(2, 1)
	require.NoError(t, store.SaveCart(ctx, "sess_a", c))

	got := store.GetCart(ctx, "sess_a")
	assert.Equal(t, c, got)
}

func TestMemoryStoreIsolatesSessions(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.SaveCart(ctx, "sess_a", models.Cart{"5": 2}))
	require.NoError(t, store.SaveCart(ctx, "sess_b", models.Cart{"2": 1}))

	assert.Equal(t, models.Cart{"5": 2}, store.GetCart(ctx, "sess_a"))
	assert.Equal(t, models.Cart{"2": 1}, store.GetCart(ctx, "sess_b"))
}

func TestMemoryStoreCopiesInAndOut(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	c := models.Cart{"5": 2}
	require.NoError(t, store.SaveCart(ctx, "sess_a", c))

	// Mutating the caller's cart after saving must not leak into the store.
	c.Increment(5, 10)
	assert.Equal(t, models.Cart{"5": 2}, store.GetCart(ctx, "sess_a"))

	// Nor may mutating a loaded cart alter the stored copy.
	loaded := store.GetCart(ctx, "sess_a")
	loaded.Clear()
	assert.Equal(t, models.Cart{"5": 2}, store.GetCart(ctx, "sess_a"))
}

func TestMemoryStoreCleansOnLoad(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	// Invalid entries saved by an older client are purged on read.
	require.NoError(t, store.SaveCart(ctx, "sess_a", models.Cart{"5": 2, "junk": 1, "9": 0}))

	assert.Equal(t, models.Cart{"5": 2}, store.GetCart(ctx, "sess_a"))
}
