// Package session holds per-client state that lives only for the duration of
// a shopping session: the cart and pending flash messages. Nothing here is
// written to the durable store.
package session

import (
	"context"
	"time"

	"cozy-threads/internal/model"
)

// TTL is how long a client's session data survives without activity,
// matching the 7-day session cookie lifetime.
const TTL = 7 * 24 * time.Hour

// Flash is a one-shot message rendered on the client's next page load.
type Flash struct {
	Message string `json:"message"`
	Level   string `json:"level"` // "success" or "error"
}

// Store is the session-scoped key-value store backing the cart and flash
// messages, keyed by session id. Implementations must return an empty cart
// for a session that has none.
type Store interface {
	// Cart returns the session's cart, empty when absent.
	Cart(ctx context.Context, sid string) (model.Cart, error)

	// SetCart overwrites the session's cart.
	SetCart(ctx context.Context, sid string, cart model.Cart) error

	// ClearCart removes the session's cart.
	ClearCart(ctx context.Context, sid string) error

	// AddFlash queues a flash message for the session.
	AddFlash(ctx context.Context, sid string, flash Flash) error

	// PopFlashes returns and removes the session's queued flash messages.
	PopFlashes(ctx context.Context, sid string) ([]Flash, error)
}
