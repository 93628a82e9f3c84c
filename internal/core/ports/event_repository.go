package ports

import (
	"context"
	"time"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
)

// EventRepository persists the tracking event audit trail.
type EventRepository interface {
	// InsertEvent persists an event to the audit log.
	InsertEvent(ctx context.Context, event *domain.TrackingEvent) error
	// ListEvents returns the events of one shipment, oldest first.
	ListEvents(ctx context.Context, shipmentID string) ([]*domain.TrackingEvent, error)
}

// DedupChecker abstracts the idempotency store for tracking events.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, shipmentID, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, shipmentID, status string, ts time.Time) error
}

// EventPublisher emits shipment notifications to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, n domain.ShipmentNotification) error
}
