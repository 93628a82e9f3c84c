package ports

import (
	"context"
	"time"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
)

// Geocoder resolves place names through an external lookup service.
type Geocoder interface {
	// Search returns candidate places for free text, already filtered to
	// administrative areas and populated places.
	Search(ctx context.Context, query string) ([]domain.City, error)
	// Lookup returns the best match for name, or nil when nothing matches.
	Lookup(ctx context.Context, name string) (*domain.Location, error)
}

// GeocodeCache stores resolved coordinates by place name.
type GeocodeCache interface {
	Get(ctx context.Context, name string) (*domain.Location, bool, error)
	Set(ctx context.Context, name string, loc domain.Location, ttl time.Duration) error
}

// GeocodingService is the degrade-on-failure facade used by the rest of the core.
type GeocodingService interface {
	SearchCities(ctx context.Context, query string) []domain.City
	Coordinates(ctx context.Context, name string) *domain.Location
}
