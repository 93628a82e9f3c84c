package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/99minutos/shipment-tracker/internal/api/metrics"
	"github.com/99minutos/shipment-tracker/internal/core/domain"
	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

// DefaultTrackingInterval is the polling period of a live subscription.
const DefaultTrackingInterval = 5 * time.Second

type TrackingService struct {
	repo       ports.ShipmentRepository
	sim        *Simulator
	geocoder   ports.GeocodingService
	serializer ports.Serializer
	publisher  ports.EventPublisher
	now        func() time.Time
	logger     zerolog.Logger
}

func NewTrackingService(
	repo ports.ShipmentRepository,
	sim *Simulator,
	geocoder ports.GeocodingService,
	serializer ports.Serializer,
	publisher ports.EventPublisher,
	logger zerolog.Logger,
) *TrackingService {
	return &TrackingService{
		repo:       repo,
		sim:        sim,
		geocoder:   geocoder,
		serializer: serializer,
		publisher:  publisher,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

// Track runs one simulation tick for the shipment and returns its location.
func (s *TrackingService) Track(ctx context.Context, id string) (*domain.Location, error) {
	shipment, err := s.advance(ctx, id)
	if err != nil {
		return nil, err
	}
	loc := shipment.CurrentLocation
	return &loc, nil
}

// advance loads, simulates and persists one tick while holding the
// shipment's serializer slot.
func (s *TrackingService) advance(ctx context.Context, id string) (*domain.Shipment, error) {
	var (
		snapshot *domain.Shipment
		moved    bool
	)
	err := s.serializer.Do(ctx, id, func(ctx context.Context) error {
		shipment, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		snapshot = shipment
		if !s.sim.Advance(shipment) {
			return nil
		}
		shipment.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, shipment); err != nil {
			return err
		}
		moved = true
		return nil
	})
	if err != nil {
		metrics.TrackingTicksTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("track shipment: %w", err)
	}

	if !moved {
		metrics.TrackingTicksTotal.WithLabelValues("idle").Inc()
		return snapshot, nil
	}
	metrics.TrackingTicksTotal.WithLabelValues("moved").Inc()
	notify(ctx, s.publisher, s.logger, domain.NotificationLocationUpdated, snapshot, snapshot.UpdatedAt)
	return snapshot, nil
}

// Route geocodes both ends of the shipment concurrently and derives the
// remaining distance and ETA from the current location.
func (s *TrackingService) Route(ctx context.Context, id string) (*ports.RouteInfo, error) {
	shipment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}

	info := &ports.RouteInfo{ShipmentID: shipment.ID, Current: shipment.CurrentLocation}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info.Origin = s.geocoder.Coordinates(gctx, shipment.Origin)
		return nil
	})
	g.Go(func() error {
		info.Destination = s.geocoder.Coordinates(gctx, shipment.Destination)
		return nil
	})
	_ = g.Wait()

	info.DistanceRemainingKm, info.HoursLeft = remaining(shipment.CurrentLocation, info.Destination)
	return info, nil
}

// Watch starts a tracking loop owned by the returned subscription. The loop
// emits the current state immediately, then ticks every interval while the
// shipment is In Transit. It ends when the shipment leaves In Transit, ctx is
// done, or the subscription is cancelled.
func (s *TrackingService) Watch(ctx context.Context, id string, interval time.Duration) (ports.Subscription, error) {
	if interval <= 0 {
		interval = DefaultTrackingInterval
	}

	shipment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	dest := s.geocoder.Coordinates(ctx, shipment.Destination)

	loopCtx, cancel := context.WithCancel(ctx)
	sub := &subscription{
		updates: make(chan ports.TrackingUpdate, 1),
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	metrics.TrackingSubscriptionsActive.Inc()
	go s.run(loopCtx, sub, shipment, dest, interval)
	return sub, nil
}

func (s *TrackingService) run(ctx context.Context, sub *subscription, shipment *domain.Shipment, dest *domain.Location, interval time.Duration) {
	defer func() {
		close(sub.updates)
		close(sub.done)
		metrics.TrackingSubscriptionsActive.Dec()
	}()

	if !sub.send(ctx, toTrackingUpdate(shipment, dest)) || shipment.Status != domain.StatusInTransit {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			next, err := s.advance(ctx, shipment.ID)
			if err != nil {
				if errors.Is(err, domain.ErrShipmentNotFound) || ctx.Err() != nil {
					return
				}
				s.logger.Warn().Err(err).Str("shipment_id", shipment.ID).Msg("tracking tick failed")
				continue
			}
			if !sub.send(ctx, toTrackingUpdate(next, dest)) {
				return
			}
			if next.Status != domain.StatusInTransit {
				return
			}
		}
	}
}

func toTrackingUpdate(s *domain.Shipment, dest *domain.Location) ports.TrackingUpdate {
	u := ports.TrackingUpdate{
		ShipmentID:       s.ID,
		Status:           s.Status,
		Location:         s.CurrentLocation,
		Progress:         s.ProgressValue(),
		EstimatedArrival: s.EstimatedArrival,
		UpdatedAt:        s.UpdatedAt,
	}
	u.DistanceRemainingKm, u.HoursLeft = remaining(s.CurrentLocation, dest)
	return u
}

func remaining(current domain.Location, dest *domain.Location) (*float64, *int) {
	if dest == nil {
		return nil, nil
	}
	km := domain.DistanceKm(current, *dest)
	hours := domain.HoursLeft(current, *dest)
	return &km, &hours
}

// subscription is the handle returned by Watch.
type subscription struct {
	updates chan ports.TrackingUpdate
	cancel  context.CancelFunc
	done    chan struct{}
}

func (s *subscription) Updates() <-chan ports.TrackingUpdate {
	return s.updates
}

func (s *subscription) Cancel() {
	s.cancel()
	<-s.done
}

func (s *subscription) send(ctx context.Context, u ports.TrackingUpdate) bool {
	select {
	case s.updates <- u:
		return true
	case <-ctx.Done():
		return false
	}
}
