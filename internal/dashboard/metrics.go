package dashboard

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the dashboard's Prometheus collectors on a private registry
// so several dashboards can coexist in one process.
type Metrics struct {
	registry  *prometheus.Registry
	fallbacks prometheus.Counter
	renders   *prometheus.CounterVec
	cities    prometheus.Gauge
}

// NewMetrics creates and registers the dashboard collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "worldclock_timezone_fallbacks_total",
			Help: "Clock readings that fell back to local time because the timezone did not resolve",
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "worldclock_clock_renders_total",
			Help: "Clock readings served, by display mode",
		}, []string{"mode"}),
		cities: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "worldclock_cities",
			Help: "Number of saved cities at the last listing",
		}),
	}
	m.registry.MustRegister(m.fallbacks, m.renders, m.cities)
	return m
}

// Handler serves the collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observe(mode string, resolved bool) {
	m.renders.WithLabelValues(mode).Inc()
	if !resolved {
		m.fallbacks.Inc()
	}
}
