package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "carkenya",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carkenya",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "carkenya",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route"},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "carkenya",
			Subsystem: "sessions",
			Name:      "active",
			Help:      "Sessions held in the session table after the last sweep.",
		},
	)

	sessionsPurged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "carkenya",
			Subsystem: "sessions",
			Name:      "purged_total",
			Help:      "Expired sessions removed by the periodic sweep.",
		},
	)

	authAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carkenya",
			Subsystem: "auth",
			Name:      "attempts_total",
			Help:      "Login and registration attempts by outcome.",
		},
		[]string{"action", "outcome"},
	)

	blogViews = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "carkenya",
			Subsystem: "blogs",
			Name:      "views_total",
			Help:      "Blog views served.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		activeSessions,
		sessionsPurged,
		authAttempts,
		blogViews,
	)
}

// IncInFlight / DecInFlight track concurrent requests.
func IncInFlight() { httpInFlight.Inc() }
func DecInFlight() { httpInFlight.Dec() }

// ObserveRequest records one finished HTTP request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func SetActiveSessions(n int) { activeSessions.Set(float64(n)) }
func AddSessionsPurged(n int) { sessionsPurged.Add(float64(n)) }
func IncBlogView()            { blogViews.Inc() }
func IncAuthAttempt(action, outcome string) {
	authAttempts.WithLabelValues(action, outcome).Inc()
}
