package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/shipment-tracker/internal/api/metrics"
	"github.com/99minutos/shipment-tracker/internal/core/domain"
	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

type eventService struct {
	shipmentRepo ports.ShipmentRepository
	eventRepo    ports.EventRepository
	dedup        ports.DedupChecker
	publisher    ports.EventPublisher
	now          func() time.Time
	log          zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(
	shipmentRepo ports.ShipmentRepository,
	eventRepo ports.EventRepository,
	dedup ports.DedupChecker,
	publisher ports.EventPublisher,
	log zerolog.Logger,
) ports.EventService {
	return &eventService{
		shipmentRepo: shipmentRepo,
		eventRepo:    eventRepo,
		dedup:        dedup,
		publisher:    publisher,
		now:          func() time.Time { return time.Now().UTC() },
		log:          log,
	}
}

// Process validates, deduplicates, and applies a single status event.
func (s *eventService) Process(ctx context.Context, in ports.TrackingEventInput) error {
	start := s.now()
	resultLabel := "error"
	defer func() {
		metrics.EventProcessingDuration.WithLabelValues(resultLabel).Observe(time.Since(start).Seconds())
	}()

	newStatus, err := domain.ParseShipmentStatus(in.Status)
	if err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("invalid_status").Inc()
		return fmt.Errorf("process event: %w", err)
	}
	ts := in.Timestamp
	if ts.IsZero() {
		ts = start
	}

	// 1. Idempotency: duplicates are skipped silently.
	isDup, err := s.dedup.IsDuplicate(ctx, in.ShipmentID, in.Status, ts)
	if err != nil {
		s.log.Warn().Err(err).Str("shipment_id", in.ShipmentID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.EventsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("shipment_id", in.ShipmentID).Str("status", in.Status).Msg("duplicate event skipped")
		resultLabel = "duplicate"
		return nil
	}
	metrics.EventsDedupTotal.WithLabelValues("miss").Inc()

	// 2. Load shipment.
	shipment, err := s.shipmentRepo.Get(ctx, in.ShipmentID)
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			metrics.EventsErrorsTotal.WithLabelValues("shipment_not_found").Inc()
		}
		return fmt.Errorf("process event: %w", err)
	}

	// 3. Apply the state machine transition.
	if err := shipment.Transition(newStatus, ts, in.Source); err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("invalid_transition").Inc()
		return fmt.Errorf("process event: %w", err)
	}
	if in.Location != nil {
		shipment.CurrentLocation = *in.Location
	}

	// 4. Persist the shipment.
	if err := s.shipmentRepo.Update(ctx, shipment); err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("update_failed").Inc()
		return fmt.Errorf("process event: update shipment: %w", err)
	}

	// 5. Mark as processed only once the write landed, so a failed event stays retryable.
	if markErr := s.dedup.Mark(ctx, in.ShipmentID, in.Status, ts); markErr != nil {
		s.log.Warn().Err(markErr).Str("shipment_id", in.ShipmentID).Msg("failed to set dedup key")
	}

	// 6. Audit trail (non-fatal on failure).
	auditEvent := &domain.TrackingEvent{
		ID:          uuid.NewString(),
		ShipmentID:  in.ShipmentID,
		Status:      newStatus,
		Timestamp:   ts,
		Source:      in.Source,
		Location:    in.Location,
		ProcessedAt: s.now(),
	}
	if err := s.eventRepo.InsertEvent(ctx, auditEvent); err != nil {
		s.log.Warn().Err(err).Str("shipment_id", in.ShipmentID).Msg("failed to insert audit event")
	}

	notify(ctx, s.publisher, s.log, domain.NotificationStatusChanged, shipment, ts)

	resultLabel = string(newStatus)
	metrics.EventsProcessedTotal.WithLabelValues(string(newStatus), in.Source).Inc()
	s.log.Info().
		Str("shipment_id", in.ShipmentID).
		Str("status", in.Status).
		Str("source", in.Source).
		Msg("event processed")

	return nil
}

// ListEvents returns the audit trail of a known shipment.
func (s *eventService) ListEvents(ctx context.Context, shipmentID string) ([]*domain.TrackingEvent, error) {
	if _, err := s.shipmentRepo.Get(ctx, shipmentID); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	events, err := s.eventRepo.ListEvents(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
