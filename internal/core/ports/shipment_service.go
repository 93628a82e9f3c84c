package ports

import (
	"context"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
)

// SelectedCarrierInput is the rate the customer picked from a quote.
type SelectedCarrierInput struct {
	CarrierName string
	Price       float64
	Days        int // optional; used for the estimated arrival when > 0
}

// CreateShipmentInput carries all data needed to create a new shipment.
type CreateShipmentInput struct {
	Origin          string
	Destination     string
	GoodsInfo       string
	SelectedCarrier SelectedCarrierInput
}

// ListShipmentsInput carries the raw listing parameters.
type ListShipmentsInput struct {
	Status string
	Query  string
}

// RateRequest asks for carrier quotes between two places.
type RateRequest struct {
	Origin      string
	Destination string
	GoodsInfo   string
}

// ShipmentService defines use-case operations for shipments.
type ShipmentService interface {
	CreateShipment(ctx context.Context, input CreateShipmentInput) (*domain.Shipment, error)
	GetShipment(ctx context.Context, id string) (*domain.Shipment, error)
	ListShipments(ctx context.Context, input ListShipmentsInput) ([]*domain.Shipment, error)
}

// RateQuoter produces carrier offers for a route.
type RateQuoter interface {
	QuoteRates(ctx context.Context, req RateRequest) ([]domain.CarrierRate, error)
}

// RandomSource isolates randomness so simulations and quotes are reproducible.
type RandomSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}
