package app

import (
	"context"

	"github.com/prasetya/fulfillment/internal/cart/domain"
)

type CartStore interface {
	// Get returns the stored cart, or an empty cart for the user if
	// none exists. The empty cart is not inserted.
	Get(ctx context.Context, userID string) (domain.Cart, error)
	// GetOrCreate returns the stored cart, inserting an empty one first
	// if none exists.
	GetOrCreate(ctx context.Context, userID string) (domain.Cart, error)
	Upsert(ctx context.Context, userID string, cart domain.Cart) error
	// RemoveItem drops every line matching productID from the user's
	// cart and stores the result. It fails with ErrCartNotFound when
	// the user has no cart; an absent product is not an error.
	RemoveItem(ctx context.Context, userID string, productID string) (domain.Cart, error)
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (domain.ProductSnapshot, error)
}
