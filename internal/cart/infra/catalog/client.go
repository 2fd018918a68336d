package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/prasetya/fulfillment/internal/cart/app"
	"github.com/prasetya/fulfillment/internal/cart/domain"
)

const defaultTimeout = 3 * time.Second

// Client resolves products against the external catalog service. Every
// lookup is bounded by the configured timeout; there are no retries.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type productPayload struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

func (c *Client) GetProduct(ctx context.Context, productID string) (domain.ProductSnapshot, error) {
	endpoint := fmt.Sprintf("%s/api/products/%s", c.baseURL, url.PathEscape(productID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.ProductSnapshot{}, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.ProductSnapshot{}, fmt.Errorf("%w: %v", app.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ProductSnapshot{}, fmt.Errorf("%w: %s", app.ErrProductNotFound, productID)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return domain.ProductSnapshot{}, fmt.Errorf("%w: catalog returned status %d", app.ErrCatalogUnavailable, resp.StatusCode)
	}

	var p productPayload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return domain.ProductSnapshot{}, fmt.Errorf("%w: %v", app.ErrIncompleteProduct, err)
	}
	if p.Name == "" || p.Price == nil || p.Price.IsNegative() {
		return domain.ProductSnapshot{}, fmt.Errorf("%w: %s", app.ErrIncompleteProduct, productID)
	}

	return domain.ProductSnapshot{
		ProductID: productID,
		Name:      p.Name,
		Price:     *p.Price,
	}, nil
}
