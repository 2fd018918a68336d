package app

import (
	"context"

	"github.com/prasetya/fulfillment/internal/shipping/domain"
)

type ShipmentStore interface {
	Put(ctx context.Context, shipment domain.Shipment) error
	// Get fails with ErrShipmentNotFound for an unknown tracking number.
	Get(ctx context.Context, trackingNumber string) (domain.Shipment, error)
}
