package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "digitalwallet_http_request_duration_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Committed entity writes
	EntityMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "digitalwallet_entity_mutations_total",
			Help: "Committed entity mutations.",
		},
		[]string{"entity", "action"}, // wallet|transaction|merchant|item, created|updated|deleted
	)

	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "digitalwallet_login_attempts_total",
			Help: "Login attempts by outcome.",
		},
		[]string{"result"}, // success|failure
	)

	EventPublishFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "digitalwallet_event_publish_failures_total",
			Help: "Entity events that could not be delivered.",
		},
	)

	registerOnce sync.Once
)

// Init registers the collectors with the default registry; safe to call more than once
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, EntityMutations, LoginAttempts, EventPublishFailures)
	})
}

// Handler serves /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
