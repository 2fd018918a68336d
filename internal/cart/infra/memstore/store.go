package memstore

import (
	"context"
	"sync"

	"github.com/prasetya/fulfillment/internal/cart/app"
	"github.com/prasetya/fulfillment/internal/cart/domain"
)

// Store keeps carts in a process-wide map. Carts are cloned on every
// read and write so callers never alias stored state.
type Store struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

func New() *Store {
	return &Store{carts: make(map[string]domain.Cart)}
}

func (s *Store) Get(ctx context.Context, userID string) (domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cart, ok := s.carts[userID]; ok {
		return cart.Clone(), nil
	}
	return domain.Cart{UserID: userID}, nil
}

func (s *Store) GetOrCreate(ctx context.Context, userID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[userID]; ok {
		return cart.Clone(), nil
	}

	cart := domain.Cart{UserID: userID}
	s.carts[userID] = cart
	return cart, nil
}

func (s *Store) Upsert(ctx context.Context, userID string, cart domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[userID] = cart.Clone()
	return nil
}

func (s *Store) RemoveItem(ctx context.Context, userID, productID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return domain.Cart{}, app.ErrCartNotFound
	}

	kept := cart.Items[:0:0]
	for _, it := range cart.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	cart.Items = kept

	s.carts[userID] = cart
	return cart.Clone(), nil
}
