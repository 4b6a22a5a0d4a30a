package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LookupsTotal tracks processed BIN tokens by outcome.
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bin_lookups_total",
			Help: "Total number of BIN tokens processed (by outcome).",
		},
		[]string{"outcome"},
	)

	// ProviderRequestsTotal tracks outbound lookup calls by provider and HTTP status.
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bin_provider_requests_total",
			Help: "Total number of upstream provider requests made (by provider and status).",
		},
		[]string{"provider", "status"},
	)

	// ProviderRequestDuration measures the duration of outbound provider calls.
	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bin_provider_request_duration_seconds",
			Help:    "Duration of upstream provider requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms → ~16s
		},
		[]string{"provider"},
	)
)

// IncLookup increments the per-outcome lookup counter.
func IncLookup(outcome string) {
	LookupsTotal.WithLabelValues(outcome).Inc()
}

// IncProviderRequest increments the provider request counter.
func IncProviderRequest(provider, status string) {
	ProviderRequestsTotal.WithLabelValues(provider, status).Inc()
}

// ObserveProviderDuration records elapsed time since start for a provider call.
func ObserveProviderDuration(provider string, start time.Time) {
	ProviderRequestDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
}
