//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"purchase-pipeline/internal/pkg/lifecycle"
	"purchase-pipeline/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CountStream(t *testing.T) {
	r := metrics.NewRegistry("consumer")

	r.CountStream(metrics.EventDropped)
	r.CountStream(metrics.EventDropped)
	r.CountStream(metrics.EventPersisted)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.StreamMessages.WithLabelValues(metrics.EventDropped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.StreamMessages.WithLabelValues(metrics.EventPersisted)))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.StreamMessages.WithLabelValues(metrics.EventConsumed)))
}

func TestRegistry_ObserveLifecycle(t *testing.T) {
	r := metrics.NewRegistry("producer")

	r.ObserveLifecycle(lifecycle.Status{Phase: lifecycle.PhaseReady})
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ServiceReady))

	r.ObserveLifecycle(lifecycle.Status{Phase: lifecycle.PhaseDegraded, Reason: lifecycle.ReasonLost(lifecycle.DependencyStream)})
	assert.Equal(t, 0.0, testutil.ToFloat64(r.ServiceReady))
}

func TestRegistry_Handler(t *testing.T) {
	r := metrics.NewRegistry("producer")
	r.CountStream(metrics.EventPublished)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `purchase_stream_messages_total{event="published",service="producer"} 1`))
	assert.True(t, strings.Contains(body, "service_ready"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
