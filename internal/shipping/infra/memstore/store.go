package memstore

import (
	"context"
	"sync"

	"github.com/prasetya/fulfillment/internal/shipping/app"
	"github.com/prasetya/fulfillment/internal/shipping/domain"
)

type Store struct {
	mu        sync.RWMutex
	shipments map[string]domain.Shipment
}

func New() *Store {
	return &Store{shipments: make(map[string]domain.Shipment)}
}

func (s *Store) Put(ctx context.Context, shipment domain.Shipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shipments[shipment.TrackingNumber] = shipment
	return nil
}

func (s *Store) Get(ctx context.Context, trackingNumber string) (domain.Shipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shipment, ok := s.shipments[trackingNumber]
	if !ok {
		return domain.Shipment{}, app.ErrShipmentNotFound
	}
	return shipment, nil
}
