package session

import (
	"context"
	"testing"

	"cozy-threads/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CartDefaultsEmpty(t *testing.T) {
	store := NewMemoryStore()

	cart, err := store.Cart(context.Background(), "nobody")

	require.NoError(t, err)
	assert.NotNil(t, cart)
	assert.Empty(t, cart)
}

func TestMemoryStore_SetAndGetCart(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	cart := model.Cart{"P001": {Quantity: 2, Size: "M"}}
	require.NoError(t, store.SetCart(ctx, "sid", cart))

	got, err := store.Cart(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, cart, got)
}

func TestMemoryStore_CartIsCopied(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	cart := model.Cart{"P001": {Quantity: 2}}
	require.NoError(t, store.SetCart(ctx, "sid", cart))

	// Mutating the caller's map must not leak into the store.
	cart["P001"] = model.CartEntry{Quantity: 99}

	got, _ := store.Cart(ctx, "sid")
	assert.Equal(t, 2, got["P001"].Quantity)

	// Nor may mutating a returned map.
	got["P002"] = model.CartEntry{Quantity: 1}
	again, _ := store.Cart(ctx, "sid")
	assert.NotContains(t, again, "P002")
}

func TestMemoryStore_ClearCart(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SetCart(ctx, "sid", model.Cart{"P001": {Quantity: 1}}))
	require.NoError(t, store.ClearCart(ctx, "sid"))

	cart, _ := store.Cart(ctx, "sid")
	assert.Empty(t, cart)
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SetCart(ctx, "alice", model.Cart{"P001": {Quantity: 1}}))

	cart, _ := store.Cart(ctx, "bob")
	assert.Empty(t, cart)
}

func TestMemoryStore_FlashesPopOnce(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.AddFlash(ctx, "sid", Flash{Message: "Added to cart", Level: "success"}))
	require.NoError(t, store.AddFlash(ctx, "sid", Flash{Message: "Out of stock", Level: "error"}))

	flashes, err := store.PopFlashes(ctx, "sid")
	require.NoError(t, err)
	require.Len(t, flashes, 2)
	assert.Equal(t, "Added to cart", flashes[0].Message)
	assert.Equal(t, "error", flashes[1].Level)

	again, err := store.PopFlashes(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, again)
}
