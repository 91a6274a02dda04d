package ui

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"habitlens/app"
	"habitlens/domain/student"
)

// apiMetrics holds the collectors exposed on /metrics. Each App owns its
// registry so several apps can live in one process.
type apiMetrics struct {
	registry *prometheus.Registry
	updates  *prometheus.CounterVec
	duration prometheus.Histogram
	matched  prometheus.Gauge
	failures *prometheus.CounterVec
}

func newAPIMetrics(loadedRows int) *apiMetrics {
	m := &apiMetrics{
		registry: prometheus.NewRegistry(),
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "habitlens",
			Name:      "dashboard_updates_total",
			Help:      "Dashboard recomputations, by whether any filter was set.",
		}, []string{"filtered"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "habitlens",
			Name:      "dashboard_update_seconds",
			Help:      "Time spent computing one dashboard snapshot.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}),
		matched: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "habitlens",
			Name:      "dashboard_matched_rows",
			Help:      "Rows matched by the most recent filter selection.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "habitlens",
			Name:      "api_errors_total",
			Help:      "Failed API requests, by error code.",
		}, []string{"code"}),
	}

	loaded := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "habitlens",
		Name:      "dataset_rows",
		Help:      "Rows held by the loaded dataset.",
	})
	loaded.Set(float64(loadedRows))

	m.registry.MustRegister(
		m.updates,
		m.duration,
		m.matched,
		m.failures,
		loaded,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *apiMetrics) observeUpdate(criteria student.FilterCriteria, snapshot *app.Snapshot, elapsed time.Duration) {
	m.updates.WithLabelValues(strconv.FormatBool(!criteria.IsUnconstrained())).Inc()
	m.duration.Observe(elapsed.Seconds())
	m.matched.Set(float64(snapshot.Dashboard.Rows))
}

func (m *apiMetrics) observeFailure(code string) {
	m.failures.WithLabelValues(code).Inc()
}

func (m *apiMetrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
