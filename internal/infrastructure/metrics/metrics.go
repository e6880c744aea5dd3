package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	CapabilityStructured = "structured"
	CapabilityText       = "text"
	CapabilityImage      = "image"

	resultSuccess = "success"
	resultError   = "error"
)

// Metrics holds the service collectors on a private registry. A nil *Metrics
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	gatewayRequests *prometheus.CounterVec
	gatewayDuration *prometheus.HistogramVec
	operations      *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		gatewayRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stylist_gateway_requests_total",
			Help: "Generation requests sent to the AI gateway",
		}, []string{"capability", "model", "result"}),
		gatewayDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stylist_gateway_request_duration_seconds",
			Help:    "Latency of AI gateway requests",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
		}, []string{"capability"}),
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stylist_operations_total",
			Help: "Stylist operations by outcome",
		}, []string{"operation", "result"}),
	}
}

// ObserveGatewayCall records one gateway round trip started at start.
func (m *Metrics) ObserveGatewayCall(capability, model string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.gatewayRequests.WithLabelValues(capability, model, result(err)).Inc()
	m.gatewayDuration.WithLabelValues(capability).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveOperation(operation string, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, result(err)).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func result(err error) string {
	if err != nil {
		return resultError
	}
	return resultSuccess
}
