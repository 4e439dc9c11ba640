package service

import (
	"sync"

	"github.com/audiophile/storefront/internal/core/domain"
)

// CartStore keeps one cart per session. Carts are created on first access
// and live until the process exits; abandoned selections are simply lost.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*domain.Cart)}
}

// Cart returns the session's cart, creating an empty one if needed.
func (s *CartStore) Cart(sessionID string) *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		cart = domain.NewCart()
		s.carts[sessionID] = cart
	}
	return cart
}
