package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/prasetya/fulfillment/internal/cart/app"
	"github.com/prasetya/fulfillment/internal/cart/domain"
	"github.com/prasetya/fulfillment/internal/cart/infra/memstore"
)

// slowCatalog answers every lookup after a short delay so that
// concurrent adds overlap in the lookup phase.
type slowCatalog struct {
	delay time.Duration
}

func (c slowCatalog) GetProduct(ctx context.Context, productID string) (domain.ProductSnapshot, error) {
	time.Sleep(c.delay)
	return domain.ProductSnapshot{
		ProductID: productID,
		Name:      "Widget",
		Price:     decimal.RequireFromString("2.50"),
	}, nil
}

func TestConcurrentAddItemSameProductNoLostUpdates(t *testing.T) {
	ctx := context.Background()
	svc := app.NewService(memstore.New(), slowCatalog{delay: time.Millisecond})

	userID := uuid.NewString()
	productID := uuid.NewString()

	const n = 100
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := svc.AddItem(ctx, userID, productID, 1)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent AddItem failed: %v", err)
	}

	view, err := svc.GetCart(ctx, userID)
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(view.Items))
	}
	if got := view.Items[0].Quantity; got != n {
		t.Fatalf("expected quantity=%d, got=%d", n, got)
	}
	if want := decimal.RequireFromString("250"); !view.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, view.Total)
	}
}

func TestConcurrentAddItemDistinctUsers(t *testing.T) {
	ctx := context.Background()
	svc := app.NewService(memstore.New(), slowCatalog{delay: time.Millisecond})

	const users = 20
	const addsPerUser = 10

	userIDs := make([]string, users)
	for i := range userIDs {
		userIDs[i] = uuid.NewString()
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, userID := range userIDs {
		for i := 0; i < addsPerUser; i++ {
			g.Go(func() error {
				_, err := svc.AddItem(ctx, userID, "widget", 1)
				return err
			})
		}
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent AddItem failed: %v", err)
	}

	for _, userID := range userIDs {
		view, err := svc.GetCart(ctx, userID)
		if err != nil {
			t.Fatalf("GetCart failed: %v", err)
		}
		if len(view.Items) != 1 || view.Items[0].Quantity != addsPerUser {
			t.Fatalf("user %s: unexpected cart %+v", userID, view.Items)
		}
	}
}
