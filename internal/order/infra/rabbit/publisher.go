package rabbit

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"

	"github.com/prasetya/fulfillment/internal/order/domain"
)

const routingKeyOrderCreated = "order.created"

// Publisher emits order events to a RabbitMQ topic exchange.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func Connect(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

type orderItemEvent struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

type orderCreatedEvent struct {
	OrderID        string           `json:"orderId"`
	UserID         string           `json:"userId"`
	Items          []orderItemEvent `json:"items"`
	Total          decimal.Decimal  `json:"total"`
	TrackingNumber string           `json:"trackingNumber"`
}

func (p *Publisher) PublishOrderCreated(ctx context.Context, order domain.Order) error {
	event := orderCreatedEvent{
		OrderID:        order.ID,
		UserID:         order.UserID,
		Items:          make([]orderItemEvent, 0, len(order.Items)),
		Total:          order.Total,
		TrackingNumber: order.TrackingNumber,
	}
	for _, it := range order.Items {
		event.Items = append(event.Items, orderItemEvent{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(ctx, p.exchange, routingKeyOrderCreated, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}
