package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/prasetya/fulfillment/internal/order/app"
	"github.com/prasetya/fulfillment/internal/order/domain"
)

const defaultPeerTimeout = 5 * time.Second

// CartClient consumes the cart service's snapshot contract.
type CartClient struct {
	baseURL string
	http    *http.Client
}

func NewCartClient(baseURL string, client *http.Client) *CartClient {
	if client == nil {
		client = &http.Client{Timeout: defaultPeerTimeout}
	}
	return &CartClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    client,
	}
}

type cartItemPayload struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

type cartPayload struct {
	UserID string            `json:"userId"`
	Items  []cartItemPayload `json:"items"`
	Total  decimal.Decimal   `json:"total"`
}

func (c *CartClient) GetCart(ctx context.Context, userID string) (app.CartSnapshot, error) {
	endpoint := fmt.Sprintf("%s/cart/%s", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return app.CartSnapshot{}, fmt.Errorf("build cart request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return app.CartSnapshot{}, fmt.Errorf("%w: cart: %v", app.ErrPeerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return app.CartSnapshot{}, fmt.Errorf("%w: cart returned status %d", app.ErrPeerUnavailable, resp.StatusCode)
	}

	var payload cartPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return app.CartSnapshot{}, fmt.Errorf("%w: cart: %v", app.ErrPeerUnavailable, err)
	}

	items := make([]domain.OrderItem, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	return app.CartSnapshot{
		UserID: payload.UserID,
		Items:  items,
		Total:  payload.Total,
	}, nil
}
