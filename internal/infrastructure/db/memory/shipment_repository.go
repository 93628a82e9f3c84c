// Package memory holds process-local implementations of the storage ports.
// Each repository is an explicitly constructed value; nothing is shared
// through package state.
package memory

import (
	"context"
	"sync"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

// ShipmentRepository is a thread-safe in-memory ports.ShipmentRepository.
// List returns shipments in insertion order.
type ShipmentRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Shipment
	order []string
}

// NewShipmentRepository returns an empty repository.
func NewShipmentRepository() *ShipmentRepository {
	return &ShipmentRepository{byID: make(map[string]*domain.Shipment)}
}

func (r *ShipmentRepository) Get(_ context.Context, id string) (*domain.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	clone := s.Clone()
	return &clone, nil
}

func (r *ShipmentRepository) List(_ context.Context, filter ports.ListShipmentsFilter) ([]*domain.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*domain.Shipment, 0, len(r.order))
	for _, id := range r.order {
		s := r.byID[id]
		if !filter.Matches(s) {
			continue
		}
		clone := s.Clone()
		items = append(items, &clone)
	}
	return items, nil
}

func (r *ShipmentRepository) Create(_ context.Context, s *domain.Shipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[s.ID]; ok {
		return domain.ErrDuplicateShipment
	}
	clone := s.Clone()
	r.byID[s.ID] = &clone
	r.order = append(r.order, s.ID)
	return nil
}

func (r *ShipmentRepository) Update(_ context.Context, s *domain.Shipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[s.ID]; !ok {
		return domain.ErrShipmentNotFound
	}
	clone := s.Clone()
	r.byID[s.ID] = &clone
	return nil
}
