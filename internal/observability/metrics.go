package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce        sync.Once
	httpRequestsTotal   *prometheus.CounterVec
	httpLatencySeconds  *prometheus.HistogramVec
	sessionsStarted     prometheus.Counter
	sessionEndingsTotal *prometheus.CounterVec
	turnsTotal          *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the service.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tutor_http_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tutor_http_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0},
		}, []string{"method", "route"})

		sessionsStarted = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tutor_sessions_started_total",
			Help: "Number of tutoring sessions started.",
		})

		sessionEndingsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tutor_session_endings_total",
			Help: "Number of tutoring sessions ended, by reason.",
		}, []string{"reason"})

		turnsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tutor_turns_total",
			Help: "Number of processed student turns, by reply mode.",
		}, []string{"mode"})

		prometheus.MustRegister(httpRequestsTotal, httpLatencySeconds, sessionsStarted, sessionEndingsTotal, turnsTotal)
	})
}

// HTTPRequests exposes the counter for served requests.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the latency histogram for served requests.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// SessionsStarted exposes the counter for started sessions.
func SessionsStarted() prometheus.Counter {
	RegisterMetrics()
	return sessionsStarted
}

// SessionEndings exposes the counter for ended sessions.
func SessionEndings() *prometheus.CounterVec {
	RegisterMetrics()
	return sessionEndingsTotal
}

// Turns exposes the counter for processed student turns.
func Turns() *prometheus.CounterVec {
	RegisterMetrics()
	return turnsTotal
}
