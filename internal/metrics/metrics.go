package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Size of each filtered listing handed back to a client.
	ListingResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "listing_results",
			Help:    "Number of entities left after filtering a listing",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		},
		[]string{"listing"},
	)

	SessionEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_events_total",
			Help: "Session store mutations by event and outcome",
		},
		[]string{"event", "outcome"}, // event: login, register, logout
	)

	PaymentConfirmations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_confirmations_total",
			Help: "Milestone payment confirmations by outcome",
		},
		[]string{"outcome"},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func RecordListingResults(listing string, count int) {
	ListingResults.WithLabelValues(listing).Observe(float64(count))
}

func IncrementSessionEvent(event string, ok bool) {
	SessionEvents.WithLabelValues(event, outcome(ok)).Inc()
}

func IncrementPaymentConfirmation(ok bool) {
	PaymentConfirmations.WithLabelValues(outcome(ok)).Inc()
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
