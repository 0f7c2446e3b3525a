// Package telemetry exposes the pipeline's own operational counters
// via Prometheus. Domain metric buckets live in pkg/monitor; these are
// about the service itself.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PingsIngested counts accepted raw ping records.
	PingsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "monstatus_pings_ingested_total",
			Help: "Total number of ping records accepted",
		},
	)

	// PingsDeduped counts pings dropped as duplicate deliveries.
	PingsDeduped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "monstatus_pings_deduped_total",
			Help: "Total number of duplicate ping submissions dropped",
		},
	)

	// SamplesIngested counts accepted raw metric samples.
	SamplesIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "monstatus_samples_ingested_total",
			Help: "Total number of metric samples accepted",
		},
	)

	// ValidationRejected counts ingestion requests rejected at the boundary.
	ValidationRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "monstatus_validation_rejected_total",
			Help: "Total number of ingestion payloads rejected by validation",
		},
	)

	// TransitionsDetected counts status transitions, labelled by the new status.
	TransitionsDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "monstatus_transitions_total",
			Help: "Total number of monitor status transitions detected",
		},
		[]string{"to_status"},
	)

	// AlertDeliveries counts channel delivery attempts by kind and outcome.
	AlertDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "monstatus_alert_deliveries_total",
			Help: "Total number of alert delivery attempts",
		},
		[]string{"kind", "outcome"},
	)

	// DeliveryRetries counts retried delivery attempts.
	DeliveryRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "monstatus_delivery_retries_total",
			Help: "Total number of alert delivery retries",
		},
	)

	// PendingDeliveries tracks in-flight alert deliveries.
	PendingDeliveries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "monstatus_pending_deliveries",
			Help: "Number of alert deliveries currently in flight",
		},
	)
)
