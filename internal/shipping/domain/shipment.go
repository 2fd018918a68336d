package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const StatusProcessing = "processing"

type ShipmentItem struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int64
}

type Shipment struct {
	TrackingNumber    string
	OrderID           string
	UserID            string
	Items             []ShipmentItem
	Status            string
	EstimatedDelivery time.Time
}
