package app

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/prasetya/fulfillment/internal/cart/domain"
	"github.com/prasetya/fulfillment/pkg/keylock"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrCartNotFound       = errors.New("cart not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrIncompleteProduct  = errors.New("incomplete product data")
)

type Service struct {
	store   CartStore
	catalog CatalogReader
	locks   *keylock.KeyedMutex
}

func NewService(store CartStore, catalog CatalogReader) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		locks:   keylock.New(),
	}
}

// AddItem resolves the product against the catalog and merges it into
// the user's cart. The lookup may block for up to the client's bound
// and runs before the per-user lock is taken, so a slow catalog does
// not serialize a user's other adds; the store is only touched after
// the lookup succeeds.
func (s *Service) AddItem(ctx context.Context, userID, productID string, quantity int64) (domain.CartView, error) {
	userID = strings.TrimSpace(userID)
	productID = strings.TrimSpace(productID)
	if userID == "" || productID == "" || quantity <= 0 {
		return domain.CartView{}, ErrInvalidInput
	}

	snapshot, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return domain.CartView{}, err
	}

	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	cart, err := s.store.GetOrCreate(ctx, userID)
	if err != nil {
		return domain.CartView{}, err
	}

	merge(&cart, snapshot, quantity)

	if err := s.store.Upsert(ctx, userID, cart); err != nil {
		return domain.CartView{}, err
	}

	return project(cart), nil
}

// GetCart never fails for a user without a cart: it projects the empty
// cart instead.
func (s *Service) GetCart(ctx context.Context, userID string) (domain.CartView, error) {
	cart, err := s.store.Get(ctx, userID)
	if err != nil {
		return domain.CartView{}, err
	}
	return project(cart), nil
}

func (s *Service) RemoveItem(ctx context.Context, userID, productID string) (domain.CartView, error) {
	userID = strings.TrimSpace(userID)
	productID = strings.TrimSpace(productID)
	if userID == "" || productID == "" {
		return domain.CartView{}, ErrInvalidInput
	}

	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	cart, err := s.store.RemoveItem(ctx, userID, productID)
	if err != nil {
		return domain.CartView{}, err
	}
	return project(cart), nil
}

// merge increments the existing line for the product or appends a new
// one at the end. Name and price on an existing line win over the
// incoming snapshot.
func merge(cart *domain.Cart, snapshot domain.ProductSnapshot, quantity int64) {
	for i := range cart.Items {
		if cart.Items[i].ProductID == snapshot.ProductID {
			cart.Items[i].Quantity += quantity
			return
		}
	}

	cart.Items = append(cart.Items, domain.LineItem{
		ProductID: snapshot.ProductID,
		Name:      snapshot.Name,
		Price:     snapshot.Price,
		Quantity:  quantity,
	})
}

func project(cart domain.Cart) domain.CartView {
	total := decimal.Zero
	for _, it := range cart.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}

	return domain.CartView{
		UserID: cart.UserID,
		Items:  cart.Items,
		Total:  total,
	}
}
