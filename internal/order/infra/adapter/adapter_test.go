package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/prasetya/fulfillment/internal/order/app"
	"github.com/prasetya/fulfillment/internal/order/domain"
)

func TestCartClientGetCart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cart/u1" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"userId":"u1","items":[{"productId":"p1","name":"Keyboard","price":"19.99","quantity":2}],"total":"39.98"}`))
	}))
	defer srv.Close()

	c := NewCartClient(srv.URL, nil)

	snapshot, err := c.GetCart(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	if snapshot.UserID != "u1" || len(snapshot.Items) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
	if !snapshot.Total.Equal(decimal.RequireFromString("39.98")) {
		t.Fatalf("unexpected total: %s", snapshot.Total)
	}
}

func TestCartClientPeerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewCartClient(srv.URL, nil)

	_, err := c.GetCart(context.Background(), "u1")
	if !errors.Is(err, app.ErrPeerUnavailable) {
		t.Fatalf("expected ErrPeerUnavailable, got %v", err)
	}
}

func TestShippingClientCreateShipment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/shipments" {
			http.NotFound(w, r)
			return
		}
		var payload createShipmentPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if payload.OrderID != "o1" || payload.UserID != "u1" || len(payload.Items) != 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"trackingNumber":"TRACK-42"}`))
	}))
	defer srv.Close()

	c := NewShippingClient(srv.URL, nil)

	items := []domain.OrderItem{{ProductID: "p1", Name: "Keyboard", Price: decimal.RequireFromString("19.99"), Quantity: 2}}
	trackingNumber, err := c.CreateShipment(context.Background(), "o1", "u1", items)
	if err != nil {
		t.Fatalf("CreateShipment failed: %v", err)
	}
	if trackingNumber != "TRACK-42" {
		t.Fatalf("unexpected tracking number: %s", trackingNumber)
	}
}

func TestShippingClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewShippingClient(srv.URL, nil)

	_, err := c.CreateShipment(context.Background(), "o1", "u1", nil)
	if !errors.Is(err, app.ErrPeerUnavailable) {
		t.Fatalf("expected ErrPeerUnavailable, got %v", err)
	}
}
