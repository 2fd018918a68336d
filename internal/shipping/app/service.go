package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prasetya/fulfillment/internal/shipping/domain"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrShipmentNotFound = errors.New("shipment not found")
)

const deliveryLeadTime = 5 * 24 * time.Hour

type Service struct {
	store ShipmentStore

	now   func() time.Time
	newID func() string
}

func NewService(store ShipmentStore) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *Service) CreateShipment(ctx context.Context, orderID, userID string, items []domain.ShipmentItem) (domain.Shipment, error) {
	orderID = strings.TrimSpace(orderID)
	userID = strings.TrimSpace(userID)
	if orderID == "" || userID == "" {
		return domain.Shipment{}, ErrInvalidInput
	}

	shipment := domain.Shipment{
		TrackingNumber:    "TRACK-" + s.newID(),
		OrderID:           orderID,
		UserID:            userID,
		Items:             items,
		Status:            domain.StatusProcessing,
		EstimatedDelivery: s.now().Add(deliveryLeadTime),
	}

	if err := s.store.Put(ctx, shipment); err != nil {
		return domain.Shipment{}, err
	}
	return shipment, nil
}

func (s *Service) GetShipment(ctx context.Context, trackingNumber string) (domain.Shipment, error) {
	if strings.TrimSpace(trackingNumber) == "" {
		return domain.Shipment{}, ErrInvalidInput
	}
	return s.store.Get(ctx, trackingNumber)
}
