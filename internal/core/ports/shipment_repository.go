package ports

import (
	"context"
	"strings"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
)

// ListShipmentsFilter carries the query parameters for listing shipments.
type ListShipmentsFilter struct {
	Status domain.ShipmentStatus // optional: exact status match
	Query  string                // optional: case-insensitive substring on id, origin or destination
}

// Matches reports whether s satisfies the filter. Repositories that cannot
// push the filter down to storage apply it in memory with this predicate.
func (f ListShipmentsFilter) Matches(s *domain.Shipment) bool {
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(s.ID), q) ||
		strings.Contains(strings.ToLower(s.Origin), q) ||
		strings.Contains(strings.ToLower(s.Destination), q)
}

// ShipmentRepository defines persistence operations for shipments.
// Implementations hand out copies; mutating a returned shipment has no effect
// until it is passed back through Update.
type ShipmentRepository interface {
	Get(ctx context.Context, id string) (*domain.Shipment, error)
	List(ctx context.Context, filter ListShipmentsFilter) ([]*domain.Shipment, error)
	// Create fails with domain.ErrDuplicateShipment when the ID is taken.
	Create(ctx context.Context, s *domain.Shipment) error
	// Update replaces a stored shipment; domain.ErrShipmentNotFound if absent.
	Update(ctx context.Context, s *domain.Shipment) error
}
