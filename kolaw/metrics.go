package kolaw

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	opAmend  = "amend"
	opSearch = "search"
)

// Metrics holds batch counters on a private registry. A nil *Metrics is a
// valid no-op.
type Metrics struct {
	reg       *prometheus.Registry
	requests  *prometheus.CounterVec
	laws      *prometheus.CounterVec
	omissions *prometheus.CounterVec
}

// NewMetrics registers the kolaw counters on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kolaw_requests_total",
			Help: "Amend and search batches started.",
		}, []string{"op"}),
		laws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kolaw_laws_processed_total",
			Help: "Laws retrieved and processed.",
		}, []string{"op"}),
		omissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kolaw_omissions_total",
			Help: "Laws skipped because retrieval or rendering failed.",
		}, []string{"op"}),
	}
	m.reg.MustRegister(m.requests, m.laws, m.omissions)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

func (m *Metrics) request(op string) {
	if m != nil {
		m.requests.WithLabelValues(op).Inc()
	}
}

func (m *Metrics) law(op string) {
	if m != nil {
		m.laws.WithLabelValues(op).Inc()
	}
}

func (m *Metrics) omission(op string) {
	if m != nil {
		m.omissions.WithLabelValues(op).Inc()
	}
}
