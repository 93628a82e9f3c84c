package service

import (
	"math"
	"testing"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
)

func TestSimulator_Advance_LeavesNonTransitAlone(t *testing.T) {
	sim := NewSimulator(&seqRandom{floats: []float64{0.9}})

	for _, status := range []domain.ShipmentStatus{domain.StatusBooked, domain.StatusDelivered} {
		s := domain.Shipment{ID: "SH-1025", Status: status, CurrentLocation: domain.Location{Lat: 40.7128, Lon: -74.0060}}
		s.SetProgress(5)
		before := s.Clone()

		if sim.Advance(&s) {
			t.Errorf("%s: expected no movement", status)
		}
		if s.ProgressValue() != before.ProgressValue() || s.CurrentLocation != before.CurrentLocation {
			t.Errorf("%s: shipment mutated: %+v", status, s)
		}
	}
}

func TestSimulator_Advance_StopsAtCap(t *testing.T) {
	sim := NewSimulator(&seqRandom{floats: []float64{0.9}})
	s := inTransit("SH-1023", domain.MaxSimulatedProgress)
	loc := s.CurrentLocation

	if sim.Advance(&s) {
		t.Error("expected no movement at the progress cap")
	}
	if s.CurrentLocation != loc {
		t.Errorf("location changed at cap: %+v", s.CurrentLocation)
	}
}

func TestSimulator_Advance_StepAndJitter(t *testing.T) {
	// progress draw 0.5 -> +1.0; lat draw 0.75 -> +0.0025; lon draw 0.25 -> -0.0025
	sim := NewSimulator(&seqRandom{floats: []float64{0.5, 0.75, 0.25}})
	s := inTransit("SH-1023", 65)

	if !sim.Advance(&s) {
		t.Fatal("expected movement")
	}
	if got := s.ProgressValue(); math.Abs(got-66) > 1e-9 {
		t.Errorf("expected progress 66, got %v", got)
	}
	if d := s.CurrentLocation.Lat - 56.8431; math.Abs(d-0.0025) > 1e-9 {
		t.Errorf("unexpected lat offset %v", d)
	}
	if d := s.CurrentLocation.Lon - 35.9123; math.Abs(d+0.0025) > 1e-9 {
		t.Errorf("unexpected lon offset %v", d)
	}
}

func TestSimulator_Advance_ClampsNearCap(t *testing.T) {
	sim := NewSimulator(&seqRandom{floats: []float64{0.99}})
	s := inTransit("SH-1023", 94.5)

	sim.Advance(&s)
	if got := s.ProgressValue(); got != domain.MaxSimulatedProgress {
		t.Errorf("expected clamp to %v, got %v", domain.MaxSimulatedProgress, got)
	}
}

func TestSimulator_Advance_BoundsHold(t *testing.T) {
	draws := []float64{0, 0.1, 0.33, 0.5, 0.61, 0.87, 0.999}
	sim := NewSimulator(&seqRandom{floats: draws})

	s := inTransit("SH-1023", 0)
	for i := 0; i < 200; i++ {
		before := s.Clone()
		sim.Advance(&s)

		p, p2 := before.ProgressValue(), s.ProgressValue()
		if p2 < p || p2 > math.Min(domain.MaxSimulatedProgress, p+maxProgressStep) {
			t.Fatalf("tick %d: progress %v -> %v out of bounds", i, p, p2)
		}
		limit := jitterSpan/2 + 1e-9
		if math.Abs(s.CurrentLocation.Lat-before.CurrentLocation.Lat) > limit ||
			math.Abs(s.CurrentLocation.Lon-before.CurrentLocation.Lon) > limit {
			t.Fatalf("tick %d: jitter too large", i)
		}
	}
}
