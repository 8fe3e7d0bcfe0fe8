package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	InquiriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiries_total",
			Help: "Total number of contact inquiries processed, by outcome (count)",
		},
		[]string{"status"},
	)

	DispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inquiry_dispatch_duration_ms",
			Help:    "Email dispatch duration in milliseconds",
			Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		},
		[]string{"status"},
	)

	QuotaDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiry_quota_decisions_total",
			Help: "Submission quota decisions per client address (count)",
		},
		[]string{"status"},
	)

	RateLimitRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_requests_total",
			Help: "Total number of requests checked against the API rate limit (count)",
		},
		[]string{"status"},
	)

	VitalsEntriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitals_entries_total",
			Help: "Web-vitals beacons received, by outcome (count)",
		},
		[]string{"status"},
	)

	CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open) (state code)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker (count)",
		},
		[]string{"name", "state"},
	)

	CircuitBreakerFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_failures_total",
			Help: "Total number of failures through circuit breaker (count)",
		},
		[]string{"name"},
	)
)

// Inquiry outcome labels.
const (
	StatusAccepted      = "accepted"
	StatusBot           = "bot"
	StatusSpamFiltered  = "spam_filtered"
	StatusInvalid       = "invalid"
	StatusRateLimited   = "rate_limited"
	StatusNotConfigured = "not_configured"
	StatusProviderError = "provider_error"
)

var registerOnce sync.Once

func RegisterInquiryMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			InquiriesTotal,
			DispatchDuration,
			QuotaDecisionsTotal,
			RateLimitRequestsTotal,
			VitalsEntriesTotal,
			CircuitBreakerState,
			CircuitBreakerRequests,
			CircuitBreakerFailures,
		)
	})
}
