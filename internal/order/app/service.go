package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prasetya/fulfillment/internal/order/domain"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrPeerUnavailable = errors.New("peer service unavailable")
)

type Service struct {
	cart     CartReader
	shipping ShipmentCreator
	store    OrderStore
	events   EventPublisher
	log      *slog.Logger

	now   func() time.Time
	newID func() string
}

func NewService(cart CartReader, shipping ShipmentCreator, store OrderStore, events EventPublisher, log *slog.Logger) *Service {
	return &Service{
		cart:     cart,
		shipping: shipping,
		store:    store,
		events:   events,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// PlaceOrder reads the user's cart snapshot, requests a shipment for
// it, and stores the resulting order. The order is only stored once
// the shipment exists; there is no cross-service transaction, so a
// shipment failure fails the request before anything is written.
func (s *Service) PlaceOrder(ctx context.Context, userID string) (domain.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.Order{}, ErrInvalidInput
	}

	snapshot, err := s.cart.GetCart(ctx, userID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("read cart: %w", err)
	}
	if len(snapshot.Items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	order := domain.Order{
		ID:        s.newID(),
		UserID:    userID,
		Items:     snapshot.Items,
		Total:     snapshot.Total,
		Status:    domain.StatusPlaced,
		CreatedAt: s.now(),
	}

	trackingNumber, err := s.shipping.CreateShipment(ctx, order.ID, userID, order.Items)
	if err != nil {
		return domain.Order{}, fmt.Errorf("create shipment: %w", err)
	}
	order.TrackingNumber = trackingNumber

	if err := s.store.Put(ctx, order); err != nil {
		return domain.Order{}, err
	}

	// Event delivery is best effort; a broker outage must not undo a
	// placed order.
	if err := s.events.PublishOrderCreated(ctx, order); err != nil {
		s.log.Warn("publish order.created failed",
			slog.String("order_id", order.ID),
			slog.Any("err", err),
		)
	}

	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return domain.Order{}, ErrInvalidInput
	}
	return s.store.Get(ctx, orderID)
}
