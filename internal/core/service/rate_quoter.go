package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/99minutos/shipment-tracker/internal/api/metrics"
	"github.com/99minutos/shipment-tracker/internal/core/domain"
	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

const (
	basePriceMin  = 1000
	basePriceSpan = 2000
	baseDaysMin   = 3
	baseDaysSpan  = 5
)

// carrierTier is a fixed offset from the randomized base quote.
type carrierTier struct {
	name       string
	priceDelta float64
	dayDelta   int
}

// tiers are ordered fastest first; faster is always pricier.
var tiers = []carrierTier{
	{name: "Express Logistics", priceDelta: 500, dayDelta: -1},
	{name: "Standard Transport", priceDelta: 0, dayDelta: 0},
	{name: "Economy Shipping", priceDelta: -300, dayDelta: 2},
}

// RateQuoter produces synthetic carrier offers.
type RateQuoter struct {
	rnd    ports.RandomSource
	logger zerolog.Logger
}

func NewRateQuoter(rnd ports.RandomSource, logger zerolog.Logger) *RateQuoter {
	return &RateQuoter{rnd: rnd, logger: logger}
}

// QuoteRates returns exactly one offer per tier around a shared random base.
func (q *RateQuoter) QuoteRates(_ context.Context, req ports.RateRequest) ([]domain.CarrierRate, error) {
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" || strings.TrimSpace(req.GoodsInfo) == "" {
		return nil, fmt.Errorf("%w: origin, destination and goodsInfo are required", domain.ErrInvalidInput)
	}

	basePrice := float64(basePriceMin + q.rnd.IntN(basePriceSpan))
	baseDays := baseDaysMin + q.rnd.IntN(baseDaysSpan)

	rates := make([]domain.CarrierRate, len(tiers))
	for i, t := range tiers {
		rates[i] = domain.CarrierRate{
			CarrierName: t.name,
			Price:       basePrice + t.priceDelta,
			Days:        baseDays + t.dayDelta,
		}
	}

	metrics.RateQuotesTotal.Inc()
	q.logger.Debug().
		Str("origin", req.Origin).
		Str("destination", req.Destination).
		Float64("base_price", basePrice).
		Int("base_days", baseDays).
		Msg("rates quoted")
	return rates, nil
}
