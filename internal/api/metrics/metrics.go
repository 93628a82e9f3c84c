// Package metrics defines and registers all custom Prometheus metrics for the
// shipment tracker. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracker"

// ── Event metrics ─────────────────────────────────────────────────────────────

// EventsProcessedTotal counts events that completed processing successfully.
// Labels:
//   - status: the new shipment status applied by the event (e.g. "In Transit")
//   - source: the event source reported by the sender (e.g. "driver_app")
var EventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_processed_total",
		Help:      "Total number of tracking events successfully processed.",
	},
	[]string{"status", "source"},
)

// EventsErrorsTotal counts events that failed processing.
// Label:
//   - reason: "invalid_status", "invalid_transition", "shipment_not_found", "update_failed"
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_errors_total",
		Help:      "Total number of tracking events that failed processing.",
	},
	[]string{"reason"},
)

// EventsDedupTotal counts deduplication decisions ("hit" or "miss").
var EventsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// EventsQueueDepth tracks the number of jobs waiting in each worker channel.
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// EventProcessingDuration measures how long a single event takes to process.
// Label:
//   - status: the resulting shipment status, or "error" on failure
var EventProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "event_processing_duration_seconds",
		Help:      "Duration of event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"status"},
)

// ── Shipment metrics ──────────────────────────────────────────────────────────

// ShipmentsCreatedTotal counts newly created shipments by selected carrier.
var ShipmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments created, by carrier.",
	},
	[]string{"carrier"},
)

// RateQuotesTotal counts rate requests that produced offers.
var RateQuotesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_quotes_total",
		Help:      "Total number of rate quotes served.",
	},
)

// ── Tracking metrics ──────────────────────────────────────────────────────────

// TrackingTicksTotal counts simulator ticks.
// Label:
//   - result: "moved", "idle" (not in transit or at the progress cap), "error"
var TrackingTicksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_ticks_total",
		Help:      "Total number of tracking ticks, by outcome.",
	},
	[]string{"result"},
)

// TrackingSubscriptionsActive is the number of live tracking subscriptions.
var TrackingSubscriptionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "tracking_subscriptions_active",
		Help:      "Number of tracking subscriptions currently running.",
	},
)

// ── Geocoder metrics ──────────────────────────────────────────────────────────

// GeocoderRequestsTotal counts geocoder calls.
// Labels:
//   - op: "search" or "lookup"
//   - result: "ok", "empty", "error", "cache_hit"
var GeocoderRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocoder_requests_total",
		Help:      "Total number of geocoder requests, by operation and result.",
	},
	[]string{"op", "result"},
)
