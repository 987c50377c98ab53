package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks generation and persistence activity.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	generationCalls   *prometheus.CounterVec
	generationLatency *prometheus.HistogramVec
	fallbacks         *prometheus.CounterVec
	storeOps          *prometheus.CounterVec
	drafts            prometheus.Gauge
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generationCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "prompt_pronto",
			Name:      "generation_calls_total",
			Help:      "Calls to the text generation provider.",
		}, []string{"kind", "provider", "result"}),
		generationLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "prompt_pronto",
			Name:      "generation_duration_seconds",
			Help:      "Latency of text generation calls.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40},
		}, []string{"kind", "provider"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "prompt_pronto",
			Name:      "generation_fallbacks_total",
			Help:      "Generations that returned fallback content.",
		}, []string{"kind"}),
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "prompt_pronto",
			Name:      "store_operations_total",
			Help:      "Project store operations.",
		}, []string{"op", "result"}),
		drafts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "prompt_pronto",
			Name:      "drafts_open",
			Help:      "Drafts currently held in memory.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.generationCalls,
		m.generationLatency,
		m.fallbacks,
		m.storeOps,
		m.drafts,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordGeneration records one provider call.
func (m *Metrics) RecordGeneration(kind, provider string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.generationCalls.WithLabelValues(kind, provider, result(err)).Inc()
	m.generationLatency.WithLabelValues(kind, provider).Observe(duration.Seconds())
}

// RecordFallback records a generation that fell back to canned content.
func (m *Metrics) RecordFallback(kind string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(kind).Inc()
}

// RecordStoreOp records a project store operation (list, get, upsert, update, delete).
func (m *Metrics) RecordStoreOp(op string, err error) {
	if m == nil {
		return
	}
	m.storeOps.WithLabelValues(op, result(err)).Inc()
}

// SetDrafts reports the number of open drafts.
func (m *Metrics) SetDrafts(n int) {
	if m == nil {
		return
	}
	m.drafts.Set(float64(n))
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
