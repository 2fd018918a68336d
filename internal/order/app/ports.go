package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/prasetya/fulfillment/internal/order/domain"
)

// CartSnapshot is the cart service's view of a user's cart at order
// time: resolved line items plus the computed total.
type CartSnapshot struct {
	UserID string
	Items  []domain.OrderItem
	Total  decimal.Decimal
}

type CartReader interface {
	GetCart(ctx context.Context, userID string) (CartSnapshot, error)
}

type ShipmentCreator interface {
	CreateShipment(ctx context.Context, orderID, userID string, items []domain.OrderItem) (trackingNumber string, err error)
}

type OrderStore interface {
	Put(ctx context.Context, order domain.Order) error
	Get(ctx context.Context, orderID string) (domain.Order, error)
}

type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order domain.Order) error
}

// NopPublisher drops events; used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(ctx context.Context, order domain.Order) error { return nil }
