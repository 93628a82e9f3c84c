package ports

import (
	"context"
	"time"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
)

// TrackingEventInput is the DTO passed from the transport layer to EventService.
type TrackingEventInput struct {
	ShipmentID string
	Status     string
	Timestamp  time.Time
	Source     string
	Location   *domain.Location // optional
}

// EventService processes incoming status events. It is the only way a
// shipment leaves Booked or In Transit.
type EventService interface {
	Process(ctx context.Context, event TrackingEventInput) error
	ListEvents(ctx context.Context, shipmentID string) ([]*domain.TrackingEvent, error)
}
