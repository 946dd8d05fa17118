package metrics

import (
	"net/http"

	"purchase-pipeline/internal/pkg/lifecycle"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Stream event labels for purchase_stream_messages_total.
const (
	EventPublished     = "published"
	EventPublishFailed = "publish_failed"
	EventConsumed      = "consumed"
	EventPersisted     = "persisted"
	EventDropped       = "dropped"
	EventStoreFailed   = "store_failed"
)

// Registry owns every collector of one service process.
type Registry struct {
	reg *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	StreamMessages   *prometheus.CounterVec
	ServiceReady     prometheus.Gauge
}

func NewRegistry(service string) *Registry {
	reg := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": service}

	r := &Registry{
		reg: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "HTTP requests by method, route and status.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		RequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "HTTP requests currently being served.",
			ConstLabels: constLabels,
		}),
		StreamMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "purchase_stream_messages_total",
			Help:        "Purchase stream messages by outcome.",
			ConstLabels: constLabels,
		}, []string{"event"}),
		ServiceReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "service_ready",
			Help:        "1 while every dependency is connected.",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.RequestsTotal,
		r.RequestDuration,
		r.RequestsInFlight,
		r.StreamMessages,
		r.ServiceReady,
	)

	// pre-create the series so dashboards see zeros instead of gaps
	for _, ev := range []string{EventPublished, EventPublishFailed, EventConsumed, EventPersisted, EventDropped, EventStoreFailed} {
		r.StreamMessages.WithLabelValues(ev)
	}

	return r
}

// CountStream increments purchase_stream_messages_total for event.
func (r *Registry) CountStream(event string) {
	r.StreamMessages.WithLabelValues(event).Inc()
}

// ObserveLifecycle keeps service_ready in step with the tracker.
func (r *Registry) ObserveLifecycle(s lifecycle.Status) {
	if s.Ready() {
		r.ServiceReady.Set(1)
		return
	}
	r.ServiceReady.Set(0)
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }
