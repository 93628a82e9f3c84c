package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

type stubShipmentService struct {
	createFn func(ctx context.Context, in ports.CreateShipmentInput) (*domain.Shipment, error)
	getFn    func(ctx context.Context, id string) (*domain.Shipment, error)
	listFn   func(ctx context.Context, in ports.ListShipmentsInput) ([]*domain.Shipment, error)
}

func (s *stubShipmentService) CreateShipment(ctx context.Context, in ports.CreateShipmentInput) (*domain.Shipment, error) {
	return s.createFn(ctx, in)
}

func (s *stubShipmentService) GetShipment(ctx context.Context, id string) (*domain.Shipment, error) {
	return s.getFn(ctx, id)
}

func (s *stubShipmentService) ListShipments(ctx context.Context, in ports.ListShipmentsInput) ([]*domain.Shipment, error) {
	return s.listFn(ctx, in)
}

type stubTrackingService struct {
	trackFn func(ctx context.Context, id string) (*domain.Location, error)
	routeFn func(ctx context.Context, id string) (*ports.RouteInfo, error)
	watchFn func(ctx context.Context, id string, interval time.Duration) (ports.Subscription, error)
}

func (s *stubTrackingService) Track(ctx context.Context, id string) (*domain.Location, error) {
	return s.trackFn(ctx, id)
}

func (s *stubTrackingService) Route(ctx context.Context, id string) (*ports.RouteInfo, error) {
	return s.routeFn(ctx, id)
}

func (s *stubTrackingService) Watch(ctx context.Context, id string, interval time.Duration) (ports.Subscription, error) {
	return s.watchFn(ctx, id, interval)
}

// fixedSubscription replays a fixed list of updates and then closes.
type fixedSubscription struct {
	ch        chan ports.TrackingUpdate
	mu        sync.Mutex
	cancelled int
}

func newFixedSubscription(updates ...ports.TrackingUpdate) *fixedSubscription {
	ch := make(chan ports.TrackingUpdate, len(updates))
	for _, u := range updates {
		ch <- u
	}
	close(ch)
	return &fixedSubscription{ch: ch}
}

func (s *fixedSubscription) Updates() <-chan ports.TrackingUpdate { return s.ch }

func (s *fixedSubscription) Cancel() {
	s.mu.Lock()
	s.cancelled++
	s.mu.Unlock()
}

type stubEventService struct {
	listFn func(ctx context.Context, id string) ([]*domain.TrackingEvent, error)
}

func (s *stubEventService) Process(context.Context, ports.TrackingEventInput) error {
	return errors.New("not used by handlers")
}

func (s *stubEventService) ListEvents(ctx context.Context, id string) ([]*domain.TrackingEvent, error) {
	return s.listFn(ctx, id)
}

type stubRateQuoter struct {
	rates []domain.CarrierRate
	err   error
	got   ports.RateRequest
}

func (q *stubRateQuoter) QuoteRates(_ context.Context, req ports.RateRequest) ([]domain.CarrierRate, error) {
	q.got = req
	return q.rates, q.err
}

type stubGeocoding struct {
	cities []domain.City
	loc    *domain.Location
	query  string
}

func (g *stubGeocoding) SearchCities(_ context.Context, q string) []domain.City {
	g.query = q
	if g.cities == nil {
		return []domain.City{}
	}
	return g.cities
}

func (g *stubGeocoding) Coordinates(_ context.Context, name string) *domain.Location {
	g.query = name
	return g.loc
}

type stubDispatcher struct {
	events  []ports.TrackingEventInput
	batches int
}

func (d *stubDispatcher) Enqueue(e ports.TrackingEventInput) {
	d.events = append(d.events, e)
}

func (d *stubDispatcher) EnqueueBatch(events []ports.TrackingEventInput) {
	d.batches++
	d.events = append(d.events, events...)
}

// newContext builds an echo context with the validator installed. body may be empty.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// httpCode returns the status carried by an *echo.HTTPError.
func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

var discardLogger = zerolog.Nop()

func sampleShipment() *domain.Shipment {
	booked := time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC)
	s := &domain.Shipment{
		ID:              "SH-1023",
		Origin:          "Moscow, Russia",
		Destination:     "Saint Petersburg, Russia",
		GoodsInfo:       "Electronics",
		Status:          domain.StatusInTransit,
		Carrier:         "Express Logistics",
		Price:           1500,
		CurrentLocation: domain.Location{Lat: 56.8431, Lon: 35.9123},
		CreatedAt:       booked,
		UpdatedAt:       booked,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusBooked, Timestamp: booked},
			{Status: domain.StatusInTransit, Timestamp: booked.Add(time.Hour), Notes: "driver_app"},
		},
	}
	s.SetProgress(65)
	return s
}
