package binder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// recomputeTotal counts view recomputations by view.
	recomputeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "launchdash_view_recompute_total",
		Help: "Total view recomputations by view",
	}, []string{"view"})

	// recomputeDuration tracks filter → aggregate → build latency.
	recomputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "launchdash_view_recompute_duration_seconds",
		Help:    "View recomputation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	}, []string{"view"})

	// controlEvents counts input events by control and result (applied, ignored).
	controlEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "launchdash_control_events_total",
		Help: "Total control input events by control and result",
	}, []string{"control", "result"})

	// controlAdjusted counts inputs that were clamped, swapped or ignored.
	controlAdjusted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "launchdash_control_adjusted_total",
		Help: "Total control inputs adjusted to the dataset domain by control and reason",
	}, []string{"control", "reason"})
)
