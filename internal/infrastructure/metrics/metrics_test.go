package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_ObserveOperation(t *testing.T) {
	m := New()

	m.ObserveOperation("fetch_trends", nil)
	m.ObserveOperation("fetch_trends", nil)
	m.ObserveOperation("fetch_trends", errors.New("boom"))

	if got := testutil.ToFloat64(m.operations.WithLabelValues("fetch_trends", "success")); got != 2 {
		t.Errorf("Expected 2 successes, got %v", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("fetch_trends", "error")); got != 1 {
		t.Errorf("Expected 1 error, got %v", got)
	}
}

func TestMetrics_ObserveGatewayCall(t *testing.T) {
	m := New()

	m.ObserveGatewayCall(CapabilityImage, "gemini-2.5-flash-image", time.Now(), nil)

	if got := testutil.ToFloat64(m.gatewayRequests.WithLabelValues(CapabilityImage, "gemini-2.5-flash-image", "success")); got != 1 {
		t.Errorf("Expected 1 gateway request, got %v", got)
	}
	if got := testutil.CollectAndCount(m.gatewayDuration); got != 1 {
		t.Errorf("Expected 1 histogram series, got %d", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	m.ObserveOperation("generate_outfit", nil)
	m.ObserveGatewayCall(CapabilityText, "model", time.Now(), errors.New("x"))

	if m.Registry() != nil {
		t.Errorf("Expected nil registry")
	}
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveOperation("generate_outfit", nil)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(w.Body)
	if !strings.Contains(string(body), `stylist_operations_total{operation="generate_outfit",result="success"} 1`) {
		t.Errorf("Metrics output missing operation counter:\n%s", body)
	}
}
