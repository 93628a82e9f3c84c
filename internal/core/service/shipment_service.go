package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/shipment-tracker/internal/api/metrics"
	"github.com/99minutos/shipment-tracker/internal/core/domain"
	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

const (
	idPrefix      = "SH-"
	idMin         = 1000
	idSpan        = 9000
	maxIDAttempts = 5
)

type ShipmentService struct {
	repo      ports.ShipmentRepository
	geocoder  ports.GeocodingService
	publisher ports.EventPublisher
	rnd       ports.RandomSource
	now       func() time.Time
	logger    zerolog.Logger
}

func NewShipmentService(
	repo ports.ShipmentRepository,
	geocoder ports.GeocodingService,
	publisher ports.EventPublisher,
	rnd ports.RandomSource,
	logger zerolog.Logger,
) *ShipmentService {
	return &ShipmentService{
		repo:      repo,
		geocoder:  geocoder,
		publisher: publisher,
		rnd:       rnd,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

// CreateShipment books a new shipment at the origin's geocoded coordinate.
// When the origin cannot be resolved the shipment starts at {0, 0}.
func (s *ShipmentService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	var start domain.Location
	if loc := s.geocoder.Coordinates(ctx, strings.TrimSpace(input.Origin)); loc != nil {
		start = *loc
	}

	now := s.now()
	shipment := &domain.Shipment{
		Origin:          strings.TrimSpace(input.Origin),
		Destination:     strings.TrimSpace(input.Destination),
		GoodsInfo:       strings.TrimSpace(input.GoodsInfo),
		Status:          domain.StatusBooked,
		Carrier:         strings.TrimSpace(input.SelectedCarrier.CarrierName),
		Price:           input.SelectedCarrier.Price,
		CurrentLocation: start,
		CreatedAt:       now,
		UpdatedAt:       now,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusBooked, Timestamp: now},
		},
	}
	shipment.SetProgress(0)
	if days := input.SelectedCarrier.Days; days > 0 {
		eta := now.AddDate(0, 0, days)
		shipment.EstimatedArrival = &eta
	}

	if err := s.insertWithFreshID(ctx, shipment); err != nil {
		s.logger.Error().Err(err).Msg("failed to create shipment")
		return nil, err
	}

	metrics.ShipmentsCreatedTotal.WithLabelValues(shipment.Carrier).Inc()
	s.logger.Info().
		Str("shipment_id", shipment.ID).
		Str("carrier", shipment.Carrier).
		Msg("shipment created")

	notify(ctx, s.publisher, s.logger, domain.NotificationCreated, shipment, now)
	return shipment, nil
}

// insertWithFreshID draws IDs until the repository accepts one.
func (s *ShipmentService) insertWithFreshID(ctx context.Context, shipment *domain.Shipment) error {
	var err error
	for range maxIDAttempts {
		shipment.ID = generateShipmentID(s.rnd)
		err = s.repo.Create(ctx, shipment)
		if !errors.Is(err, domain.ErrDuplicateShipment) {
			return err
		}
		s.logger.Debug().Str("shipment_id", shipment.ID).Msg("shipment id collision, retrying")
	}
	return fmt.Errorf("create shipment: %w", err)
}

// GetShipment returns a single shipment by ID.
func (s *ShipmentService) GetShipment(ctx context.Context, id string) (*domain.Shipment, error) {
	shipment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return shipment, nil
}

// ListShipments returns shipments matching an optional status and free-text query.
func (s *ShipmentService) ListShipments(ctx context.Context, input ports.ListShipmentsInput) ([]*domain.Shipment, error) {
	filter := ports.ListShipmentsFilter{Query: strings.TrimSpace(input.Query)}
	if input.Status != "" {
		status, err := domain.ParseShipmentStatus(input.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return items, nil
}

// generateShipmentID returns an identifier in the format SH-NNNN.
func generateShipmentID(rnd ports.RandomSource) string {
	return fmt.Sprintf("%s%d", idPrefix, idMin+rnd.IntN(idSpan))
}

func validateCreateInput(in ports.CreateShipmentInput) error {
	var missing []string
	if strings.TrimSpace(in.Origin) == "" {
		missing = append(missing, "origin")
	}
	if strings.TrimSpace(in.Destination) == "" {
		missing = append(missing, "destination")
	}
	if strings.TrimSpace(in.GoodsInfo) == "" {
		missing = append(missing, "goodsInfo")
	}
	if strings.TrimSpace(in.SelectedCarrier.CarrierName) == "" {
		missing = append(missing, "selectedCarrier.carrierName")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

// notify publishes a notification; failures are logged, never returned.
func notify(ctx context.Context, pub ports.EventPublisher, log zerolog.Logger, kind string, s *domain.Shipment, at time.Time) {
	n := domain.ShipmentNotification{
		ID:         uuid.NewString(),
		Type:       kind,
		ShipmentID: s.ID,
		Status:     s.Status,
		Location:   s.CurrentLocation,
		Progress:   s.ProgressValue(),
		OccurredAt: at,
	}
	if err := pub.Publish(ctx, n); err != nil {
		log.Warn().Err(err).Str("shipment_id", s.ID).Str("type", kind).Msg("failed to publish notification")
	}
}
