package service

import (
	"math"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

const (
	maxProgressStep = 2.0
	jitterSpan      = 0.01 // offsets fall in [-jitterSpan/2, jitterSpan/2)
)

// Simulator stands in for GPS: it nudges in-transit shipments forward.
type Simulator struct {
	rnd ports.RandomSource
}

func NewSimulator(rnd ports.RandomSource) *Simulator {
	return &Simulator{rnd: rnd}
}

// Advance moves s one tick along its synthetic route and reports whether
// anything changed. Shipments that are not In Transit, or already at the
// progress cap, are left untouched.
func (sim *Simulator) Advance(s *domain.Shipment) bool {
	if s.Status != domain.StatusInTransit {
		return false
	}
	p := s.ProgressValue()
	if p >= domain.MaxSimulatedProgress {
		return false
	}

	s.SetProgress(math.Min(domain.MaxSimulatedProgress, p+sim.rnd.Float64()*maxProgressStep))
	s.CurrentLocation.Lat += (sim.rnd.Float64() - 0.5) * jitterSpan
	s.CurrentLocation.Lon += (sim.rnd.Float64() - 0.5) * jitterSpan
	return true
}
