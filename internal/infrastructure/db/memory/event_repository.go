package memory

import (
	"context"
	"sync"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
)

// EventRepository keeps the tracking audit trail in memory.
type EventRepository struct {
	mu     sync.RWMutex
	events map[string][]domain.TrackingEvent
}

func NewEventRepository() *EventRepository {
	return &EventRepository{events: make(map[string][]domain.TrackingEvent)}
}

func (r *EventRepository) InsertEvent(_ context.Context, e *domain.TrackingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *e
	if e.Location != nil {
		loc := *e.Location
		stored.Location = &loc
	}
	r.events[e.ShipmentID] = append(r.events[e.ShipmentID], stored)
	return nil
}

func (r *EventRepository) ListEvents(_ context.Context, shipmentID string) ([]*domain.TrackingEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.events[shipmentID]
	out := make([]*domain.TrackingEvent, len(stored))
	for i := range stored {
		e := stored[i]
		if e.Location != nil {
			loc := *e.Location
			e.Location = &loc
		}
		out[i] = &e
	}
	return out, nil
}
