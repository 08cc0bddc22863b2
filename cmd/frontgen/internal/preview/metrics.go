package preview

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics exports preview server metrics to Prometheus.
type metrics struct {
	requests *prometheus.CounterVec
	generate prometheus.Histogram
	warnings *prometheus.CounterVec
}

// newMetrics registers the preview metrics on reg.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "frontgen_preview_requests_total",
			Help: "Preview requests by route and status code.",
		}, []string{"route", "code"}),
		generate: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "frontgen_preview_generate_seconds",
			Help:    "Time to load the model and render the services module.",
			Buckets: prometheus.DefBuckets,
		}),
		warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "frontgen_preview_warnings_total",
			Help: "Generation warnings by code.",
		}, []string{"code"}),
	}
	reg.MustRegister(m.requests, m.generate, m.warnings)
	return m
}

func (m *metrics) Request(route string, code string) {
	m.requests.WithLabelValues(route, code).Inc()
}

func (m *metrics) Generated(d time.Duration) {
	m.generate.Observe(d.Seconds())
}

func (m *metrics) Warning(code string) {
	m.warnings.WithLabelValues(code).Inc()
}
