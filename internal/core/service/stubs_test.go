package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubShipmentRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.Shipment
	order     []string
	createErr error // if set, Create returns this error
	updateErr error // if set, Update returns this error
	updates   int
}

func newStubShipmentRepo() *stubShipmentRepo {
	return &stubShipmentRepo{byID: make(map[string]*domain.Shipment)}
}

func (r *stubShipmentRepo) seed(s domain.Shipment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := s.Clone()
	r.byID[s.ID] = &clone
	r.order = append(r.order, s.ID)
}

func (r *stubShipmentRepo) stored(id string) *domain.Shipment {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return nil
	}
	clone := s.Clone()
	return &clone
}

func (r *stubShipmentRepo) Get(_ context.Context, id string) (*domain.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	clone := s.Clone()
	return &clone, nil
}

func (r *stubShipmentRepo) List(_ context.Context, f ports.ListShipmentsFilter) ([]*domain.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Shipment
	for _, id := range r.order {
		s := r.byID[id]
		if !f.Matches(s) {
			continue
		}
		clone := s.Clone()
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubShipmentRepo) Create(_ context.Context, s *domain.Shipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.byID[s.ID]; ok {
		return domain.ErrDuplicateShipment
	}
	clone := s.Clone()
	r.byID[s.ID] = &clone
	r.order = append(r.order, s.ID)
	return nil
}

func (r *stubShipmentRepo) Update(_ context.Context, s *domain.Shipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[s.ID]; !ok {
		return domain.ErrShipmentNotFound
	}
	clone := s.Clone()
	r.byID[s.ID] = &clone
	r.updates++
	return nil
}

// ---------------------------------------------------------------------------
// Scripted randomness
// ---------------------------------------------------------------------------

// seqRandom replays fixed values, cycling when exhausted.
type seqRandom struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
	fi, ii int
}

func (r *seqRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *seqRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

// ---------------------------------------------------------------------------
// Collaborator stubs
// ---------------------------------------------------------------------------

type stubGeocoding struct {
	mu     sync.Mutex
	coords map[string]domain.Location
	cities []domain.City
	calls  []string
}

func (g *stubGeocoding) SearchCities(_ context.Context, _ string) []domain.City {
	return g.cities
}

func (g *stubGeocoding) Coordinates(_ context.Context, name string) *domain.Location {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, name)
	loc, ok := g.coords[name]
	if !ok {
		return nil
	}
	return &loc
}

type stubPublisher struct {
	mu   sync.Mutex
	err  error
	sent []domain.ShipmentNotification
}

func (p *stubPublisher) Publish(_ context.Context, n domain.ShipmentNotification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, n)
	return nil
}

func (p *stubPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.sent))
	for i, n := range p.sent {
		out[i] = n.Type
	}
	return out
}

// inlineSerializer runs jobs on the calling goroutine under one lock.
type inlineSerializer struct {
	mu sync.Mutex
}

func (s *inlineSerializer) Do(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx)
}

type stubEventRepo struct {
	mu        sync.Mutex
	insertErr error
	inserted  []*domain.TrackingEvent
}

func (r *stubEventRepo) InsertEvent(_ context.Context, e *domain.TrackingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, e)
	return nil
}

func (r *stubEventRepo) ListEvents(_ context.Context, shipmentID string) ([]*domain.TrackingEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.TrackingEvent
	for _, e := range r.inserted {
		if e.ShipmentID == shipmentID {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubDedup struct {
	dupResult bool
	dupErr    error
	markErr   error
	marked    []string
}

func (d *stubDedup) IsDuplicate(_ context.Context, _, _ string, _ time.Time) (bool, error) {
	return d.dupResult, d.dupErr
}

func (d *stubDedup) Mark(_ context.Context, shipmentID, status string, _ time.Time) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.marked = append(d.marked, shipmentID+":"+status)
	return nil
}

// inTransit returns a shipment seeded mid-route.
func inTransit(id string, progress float64) domain.Shipment {
	s := domain.Shipment{
		ID:              id,
		Origin:          "Moscow, Russia",
		Destination:     "Saint Petersburg, Russia",
		Status:          domain.StatusInTransit,
		Carrier:         "Russian Railways",
		CurrentLocation: domain.Location{Lat: 56.8431, Lon: 35.9123},
	}
	s.SetProgress(progress)
	return s
}
