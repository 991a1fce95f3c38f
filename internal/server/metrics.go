package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/fibiter/pkg/models"
)

// Metrics exposes the HTTP-level Prometheus collectors. Calculation metrics
// are recorded by fibonacci.Instrumented and served from the same registry.
type Metrics struct {
	handler http.Handler
}

var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fibiter_http_active_requests",
		Help: "Current number of in-flight HTTP requests",
	})
	totalRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fibiter_http_requests_total",
		Help: "Total number of HTTP requests by route and status code",
	}, []string{"route", "code"})
)

// NewMetrics creates a new Metrics instance backed by the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		handler: promhttp.Handler(),
	}
}

// IncrementActiveRequests marks a request as in flight.
func (m *Metrics) IncrementActiveRequests() {
	activeRequests.Inc()
}

// DecrementActiveRequests marks a request as finished with the given status.
func (m *Metrics) DecrementActiveRequests(route string, status int) {
	activeRequests.Dec()
	totalRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// WritePrometheus writes metrics in Prometheus text format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// handleMetrics is the HTTP handler for the /metrics endpoint.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, models.ErrorKindMethodNotAllowed, "Method not allowed", nil)
		return
	}

	s.metrics.WritePrometheus(w, r)
}

// metricsMiddleware tracks in-flight and completed requests for route.
func (s *Server) metricsMiddleware(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		rec := newStatusRecorder(w)
		defer func() { s.metrics.DecrementActiveRequests(route, rec.status) }()
		next(rec, r)
	}
}
