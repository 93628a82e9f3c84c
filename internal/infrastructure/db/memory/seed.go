package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

// DemoShipments returns the fixture shipments loaded when demo seeding is on.
func DemoShipments() []domain.Shipment {
	booked := time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC)
	departed := booked.Add(24 * time.Hour)
	eta := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)

	moscow := domain.Shipment{
		ID:              "SH-1023",
		Origin:          "Moscow, Russia",
		Destination:     "Saint Petersburg, Russia",
		Status:          domain.StatusInTransit,
		Carrier:         "Russian Railways",
		CurrentLocation: domain.Location{Lat: 56.8431, Lon: 35.9123},
		CreatedAt:       booked,
		UpdatedAt:       departed,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusBooked, Timestamp: booked},
			{Status: domain.StatusInTransit, Timestamp: departed},
		},
	}
	moscow.EstimatedArrival = &eta
	moscow.SetProgress(65)

	london := domain.Shipment{
		ID:              "SH-1024",
		Origin:          "London, UK",
		Destination:     "Paris, France",
		Status:          domain.StatusDelivered,
		Carrier:         "Eurostar Logistics",
		CurrentLocation: domain.Location{Lat: 48.8566, Lon: 2.3522},
		CreatedAt:       booked,
		UpdatedAt:       departed.Add(48 * time.Hour),
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusBooked, Timestamp: booked},
			{Status: domain.StatusInTransit, Timestamp: departed},
			{Status: domain.StatusDelivered, Timestamp: departed.Add(48 * time.Hour)},
		},
	}
	london.SetProgress(domain.ProgressComplete)

	newYork := domain.Shipment{
		ID:              "SH-1025",
		Origin:          "New York, USA",
		Destination:     "Los Angeles, USA",
		Status:          domain.StatusBooked,
		Carrier:         "American Transport",
		CurrentLocation: domain.Location{Lat: 40.7128, Lon: -74.0060},
		CreatedAt:       booked,
		UpdatedAt:       booked,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusBooked, Timestamp: booked},
		},
	}
	newYork.SetProgress(5)

	return []domain.Shipment{moscow, london, newYork}
}

// Seed inserts the demo shipments into repo, skipping any that already exist.
func Seed(ctx context.Context, repo ports.ShipmentRepository) (int, error) {
	inserted := 0
	for _, s := range DemoShipments() {
		err := repo.Create(ctx, &s)
		if errors.Is(err, domain.ErrDuplicateShipment) {
			continue
		}
		if err != nil {
			return inserted, fmt.Errorf("seed %s: %w", s.ID, err)
		}
		inserted++
	}
	return inserted, nil
}
