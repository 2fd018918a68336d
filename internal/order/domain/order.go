package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const StatusPlaced = "placed"

type OrderItem struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int64
}

type Order struct {
	ID             string
	UserID         string
	Items          []OrderItem
	Total          decimal.Decimal
	Status         string
	TrackingNumber string
	CreatedAt      time.Time
}
