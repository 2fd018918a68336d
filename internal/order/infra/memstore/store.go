package memstore

import (
	"context"
	"sync"

	"github.com/prasetya/fulfillment/internal/order/app"
	"github.com/prasetya/fulfillment/internal/order/domain"
)

type Store struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func New() *Store {
	return &Store{orders: make(map[string]domain.Order)}
}

func (s *Store) Put(ctx context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[order.ID] = order
	return nil
}

func (s *Store) Get(ctx context.Context, orderID string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[orderID]
	if !ok {
		return domain.Order{}, app.ErrOrderNotFound
	}
	return order, nil
}
