package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/prasetya/fulfillment/internal/order/app"
	"github.com/prasetya/fulfillment/internal/order/domain"
)

// ShippingClient consumes the shipping service's create-shipment
// contract.
type ShippingClient struct {
	baseURL string
	http    *http.Client
}

func NewShippingClient(baseURL string, client *http.Client) *ShippingClient {
	if client == nil {
		client = &http.Client{Timeout: defaultPeerTimeout}
	}
	return &ShippingClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    client,
	}
}

type createShipmentPayload struct {
	OrderID string            `json:"orderId"`
	UserID  string            `json:"userId"`
	Items   []cartItemPayload `json:"items"`
}

type shipmentPayload struct {
	TrackingNumber string `json:"trackingNumber"`
}

func (c *ShippingClient) CreateShipment(ctx context.Context, orderID, userID string, items []domain.OrderItem) (string, error) {
	payload := createShipmentPayload{
		OrderID: orderID,
		UserID:  userID,
		Items:   make([]cartItemPayload, 0, len(items)),
	}
	for _, it := range items {
		payload.Items = append(payload.Items, cartItemPayload{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode shipment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/shipments", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build shipment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: shipping: %v", app.ErrPeerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: shipping returned status %d", app.ErrPeerUnavailable, resp.StatusCode)
	}

	var shipment shipmentPayload
	if err := json.NewDecoder(resp.Body).Decode(&shipment); err != nil {
		return "", fmt.Errorf("%w: shipping: %v", app.ErrPeerUnavailable, err)
	}
	if shipment.TrackingNumber == "" {
		return "", fmt.Errorf("%w: shipping returned no tracking number", app.ErrPeerUnavailable)
	}

	return shipment.TrackingNumber, nil
}
