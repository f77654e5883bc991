package session

import (
	"context"
	"sync"

	"cozy-threads/internal/model"
)

// MemoryStore is an in-process Store used in tests and when Redis is
// disabled. Sessions never expire; the data dies with the process.
type MemoryStore struct {
	mu      sync.Mutex
	carts   map[string]model.Cart
	flashes map[string][]Flash
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts:   make(map[string]model.Cart),
		flashes: make(map[string][]Flash),
	}
}

// Cart returns the session's cart, empty when absent.
func (s *MemoryStore) Cart(_ context.Context, sid string) (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := model.Cart{}
	for id, entry := range s.carts[sid] {
		cart[id] = entry
	}
	return cart, nil
}

// SetCart overwrites the session's cart.
func (s *MemoryStore) SetCart(_ context.Context, sid string, cart model.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := model.Cart{}
	for id, entry := range cart {
		copied[id] = entry
	}
	s.carts[sid] = copied
	return nil
}

// ClearCart removes the session's cart.
func (s *MemoryStore) ClearCart(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sid)
	return nil
}

// AddFlash queues a flash message for the session.
func (s *MemoryStore) AddFlash(_ context.Context, sid string, flash Flash) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flashes[sid] = append(s.flashes[sid], flash)
	return nil
}

// PopFlashes returns and removes the session's queued flash messages.
func (s *MemoryStore) PopFlashes(_ context.Context, sid string) ([]Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flashes := s.flashes[sid]
	delete(s.flashes, sid)
	return flashes, nil
}
