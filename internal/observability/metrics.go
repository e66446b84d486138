package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for a pipeline run.
// A run-once CLI has no scrape endpoint, so everything is registered on a
// private registry and summarized in the final log line instead.
type Metrics struct {
	RowsLoaded     prometheus.Counter
	RowsDropped    prometheus.Counter
	ValuesImputed  *prometheus.CounterVec // label: column={temperature,humidity,rainfall}
	ChartsRendered prometheus.Counter
	RunDuration    prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics creates pipeline metrics on a fresh private registry. Safe to
// call repeatedly, including from parallel tests.
func NewMetrics() *Metrics {
	m := &Metrics{
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_viz",
			Name:      "rows_loaded_total",
			Help:      "Total raw rows read from the input CSV.",
		}),
		RowsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_viz",
			Name:      "rows_dropped_total",
			Help:      "Rows dropped because the date matched no known layout.",
		}),
		ValuesImputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_viz",
			Name:      "values_imputed_total",
			Help:      "Cells repaired during cleaning, by column.",
		}, []string{"column"}),
		ChartsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_viz",
			Name:      "charts_rendered_total",
			Help:      "Chart images written to the output directory.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_viz",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete load-clean-aggregate-render-export run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.RowsLoaded,
		m.RowsDropped,
		m.ValuesImputed,
		m.ChartsRendered,
		m.RunDuration,
	)

	return m
}

// Registry exposes the private registry so callers can gather the final
// counter values after a run.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
