package ports

import (
	"context"
	"time"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
)

// TrackingUpdate is one frame of a live tracking subscription.
type TrackingUpdate struct {
	ShipmentID          string
	Status              domain.ShipmentStatus
	Location            domain.Location
	Progress            float64
	EstimatedArrival    *time.Time
	DistanceRemainingKm *float64 // nil when the destination could not be geocoded
	HoursLeft           *int
	UpdatedAt           time.Time
}

// RouteInfo describes the path of a shipment for map rendering.
type RouteInfo struct {
	ShipmentID          string
	Origin              *domain.Location // nil when geocoding failed
	Destination         *domain.Location
	Current             domain.Location
	DistanceRemainingKm *float64
	HoursLeft           *int
}

// Subscription is a caller-owned handle on a running tracking loop.
type Subscription interface {
	// Updates is closed when the loop ends.
	Updates() <-chan TrackingUpdate
	// Cancel stops the loop and returns once it has exited. Safe to call twice.
	Cancel()
}

// TrackingService exposes location simulation to the transport layer.
type TrackingService interface {
	Track(ctx context.Context, id string) (*domain.Location, error)
	Route(ctx context.Context, id string) (*RouteInfo, error)
	Watch(ctx context.Context, id string, interval time.Duration) (Subscription, error)
}

// Serializer runs fn with exclusive access to the work keyed by key.
type Serializer interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context) error) error
}
