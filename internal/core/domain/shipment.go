package domain

import (
	"errors"
	"fmt"
	"time"
)

// ShipmentStatus represents the lifecycle state of a shipment.
type ShipmentStatus string

const (
	StatusBooked    ShipmentStatus = "Booked"
	StatusInTransit ShipmentStatus = "In Transit"
	StatusDelivered ShipmentStatus = "Delivered"
)

const (
	// MaxSimulatedProgress is the ceiling the simulator never crosses; only an
	// explicit delivery completes a shipment.
	MaxSimulatedProgress = 95.0
	ProgressComplete     = 100.0
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[ShipmentStatus][]ShipmentStatus{
	StatusBooked:    {StatusInTransit},
	StatusInTransit: {StatusDelivered},
	StatusDelivered: {},
}

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidStatus     = errors.New("invalid shipment status")
	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrDuplicateShipment = errors.New("shipment already exists")
	ErrInvalidInput      = errors.New("invalid input")
)

// IsValid reports whether s is a recognised status.
func (s ShipmentStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s ShipmentStatus) IsTerminal() bool {
	return s.IsValid() && len(validTransitions[s]) == 0
}

func (s ShipmentStatus) String() string {
	return string(s)
}

// ParseShipmentStatus converts a string into a ShipmentStatus.
func ParseShipmentStatus(s string) (ShipmentStatus, error) {
	status := ShipmentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// Location is a latitude/longitude pair. Ranges are not validated.
type Location struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lon float64 `json:"lon" bson:"lon"`
}

// StatusHistoryEntry records a single status change on a shipment.
type StatusHistoryEntry struct {
	Status    ShipmentStatus `json:"status" bson:"status"`
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
	Notes     string         `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Shipment is the core aggregate root.
type Shipment struct {
	ID               string               `json:"id" bson:"_id"`
	Origin           string               `json:"origin" bson:"origin"`
	Destination      string               `json:"destination" bson:"destination"`
	GoodsInfo        string               `json:"goodsInfo,omitempty" bson:"goods_info,omitempty"`
	Status           ShipmentStatus       `json:"status" bson:"status"`
	Carrier          string               `json:"carrier" bson:"carrier"`
	Price            float64              `json:"price,omitempty" bson:"price,omitempty"`
	CurrentLocation  Location             `json:"currentLocation" bson:"current_location"`
	EstimatedArrival *time.Time           `json:"estimatedArrival,omitempty" bson:"estimated_arrival,omitempty"`
	Progress         *float64             `json:"progress,omitempty" bson:"progress,omitempty"`
	CreatedAt        time.Time            `json:"createdAt" bson:"created_at"`
	UpdatedAt        time.Time            `json:"updatedAt" bson:"updated_at"`
	StatusHistory    []StatusHistoryEntry `json:"statusHistory,omitempty" bson:"status_history,omitempty"`
}

// ProgressValue returns the progress percentage, treating an unset value as 0.
func (s *Shipment) ProgressValue() float64 {
	if s.Progress == nil {
		return 0
	}
	return *s.Progress
}

// SetProgress stores p as the shipment's progress.
func (s *Shipment) SetProgress(p float64) {
	s.Progress = &p
}

// Transition moves the shipment to next, recording a history entry. Delivery
// completes the progress bar.
func (s *Shipment) Transition(next ShipmentStatus, at time.Time, notes string) error {
	if !s.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w (from %s to %s)", ErrInvalidTransition, s.Status, next)
	}

	s.Status = next
	s.UpdatedAt = at
	s.StatusHistory = append(s.StatusHistory, StatusHistoryEntry{
		Status:    next,
		Timestamp: at,
		Notes:     notes,
	})

	switch next {
	case StatusInTransit:
		if s.Progress == nil {
			s.SetProgress(0)
		}
	case StatusDelivered:
		s.SetProgress(ProgressComplete)
	}
	return nil
}

// Clone returns a deep copy so callers never share mutable state with a store.
func (s Shipment) Clone() Shipment {
	out := s
	if s.EstimatedArrival != nil {
		eta := *s.EstimatedArrival
		out.EstimatedArrival = &eta
	}
	if s.Progress != nil {
		p := *s.Progress
		out.Progress = &p
	}
	if s.StatusHistory != nil {
		out.StatusHistory = make([]StatusHistoryEntry, len(s.StatusHistory))
		copy(out.StatusHistory, s.StatusHistory)
	}
	return out
}
