package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/prasetya/fulfillment/internal/order/domain"
)

type fakeCart struct {
	snapshot CartSnapshot
	err      error
}

func (f fakeCart) GetCart(ctx context.Context, userID string) (CartSnapshot, error) {
	if f.err != nil {
		return CartSnapshot{}, f.err
	}
	return f.snapshot, nil
}

type fakeShipping struct {
	trackingNumber string
	err            error
	calls          int
}

func (f *fakeShipping) CreateShipment(ctx context.Context, orderID, userID string, items []domain.OrderItem) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.trackingNumber, nil
}

type fakeStore struct {
	orders map[string]domain.Order
}

func newFakeStore() *fakeStore {
	return &fakeStore{orders: make(map[string]domain.Order)}
}

func (f *fakeStore) Put(ctx context.Context, order domain.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeStore) Get(ctx context.Context, orderID string) (domain.Order, error) {
	order, ok := f.orders[orderID]
	if !ok {
		return domain.Order{}, ErrOrderNotFound
	}
	return order, nil
}

type recordingPublisher struct {
	published []domain.Order
	err       error
}

func (p *recordingPublisher) PublishOrderCreated(ctx context.Context, order domain.Order) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, order)
	return nil
}

func filledSnapshot() CartSnapshot {
	return CartSnapshot{
		UserID: "u1",
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Keyboard", Price: decimal.RequireFromString("19.99"), Quantity: 2},
		},
		Total: decimal.RequireFromString("39.98"),
	}
}

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestPlaceOrder(t *testing.T) {
	store := newFakeStore()
	shipping := &fakeShipping{trackingNumber: "TRACK-1"}
	events := &recordingPublisher{}
	svc := NewService(fakeCart{snapshot: filledSnapshot()}, shipping, store, events, discard())

	placed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return placed }
	svc.newID = func() string { return "o1" }

	order, err := svc.PlaceOrder(context.Background(), "u1")
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	if order.ID != "o1" || order.TrackingNumber != "TRACK-1" || order.Status != domain.StatusPlaced {
		t.Fatalf("unexpected order: %+v", order)
	}
	if !order.Total.Equal(decimal.RequireFromString("39.98")) {
		t.Fatalf("unexpected total: %s", order.Total)
	}
	if !order.CreatedAt.Equal(placed) {
		t.Fatalf("unexpected createdAt: %s", order.CreatedAt)
	}

	stored, err := svc.GetOrder(context.Background(), "o1")
	if err != nil {
		t.Fatalf("GetOrder failed: %v", err)
	}
	if len(stored.Items) != 1 {
		t.Fatalf("unexpected stored order: %+v", stored)
	}

	if len(events.published) != 1 || events.published[0].ID != "o1" {
		t.Fatalf("expected one order.created event, got %+v", events.published)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	shipping := &fakeShipping{trackingNumber: "TRACK-1"}
	svc := NewService(fakeCart{snapshot: CartSnapshot{UserID: "u1"}}, shipping, newFakeStore(), &recordingPublisher{}, discard())

	_, err := svc.PlaceOrder(context.Background(), "u1")
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if shipping.calls != 0 {
		t.Fatal("shipment requested for an empty cart")
	}
}

func TestPlaceOrderShipmentFailureStoresNothing(t *testing.T) {
	store := newFakeStore()
	shipping := &fakeShipping{err: fmt.Errorf("%w: shipping: connection refused", ErrPeerUnavailable)}
	svc := NewService(fakeCart{snapshot: filledSnapshot()}, shipping, store, &recordingPublisher{}, discard())

	_, err := svc.PlaceOrder(context.Background(), "u1")
	if !errors.Is(err, ErrPeerUnavailable) {
		t.Fatalf("expected ErrPeerUnavailable, got %v", err)
	}
	if len(store.orders) != 0 {
		t.Fatalf("order stored despite shipment failure: %+v", store.orders)
	}
}

func TestPlaceOrderPublishFailureDoesNotFail(t *testing.T) {
	store := newFakeStore()
	events := &recordingPublisher{err: errors.New("broker down")}
	svc := NewService(fakeCart{snapshot: filledSnapshot()}, &fakeShipping{trackingNumber: "TRACK-1"}, store, events, discard())

	order, err := svc.PlaceOrder(context.Background(), "u1")
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if _, err := store.Get(context.Background(), order.ID); err != nil {
		t.Fatalf("order not stored: %v", err)
	}
}

func TestPlaceOrderCartUnavailable(t *testing.T) {
	cart := fakeCart{err: fmt.Errorf("%w: cart: connection refused", ErrPeerUnavailable)}
	svc := NewService(cart, &fakeShipping{}, newFakeStore(), &recordingPublisher{}, discard())

	_, err := svc.PlaceOrder(context.Background(), "u1")
	if !errors.Is(err, ErrPeerUnavailable) {
		t.Fatalf("expected ErrPeerUnavailable, got %v", err)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	svc := NewService(fakeCart{}, &fakeShipping{}, newFakeStore(), &recordingPublisher{}, discard())

	_, err := svc.GetOrder(context.Background(), "missing")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
