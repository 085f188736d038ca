package observability

import (
	"fmt"
	"net/http"

	"github.com/aretw0/edmcheck/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "edmcheck"

// Metrics holds the collectors updated by the runner.
type Metrics struct {
	Registry *prometheus.Registry

	files       *prometheus.CounterVec
	violations  prometheus.Counter
	runs        *prometheus.CounterVec
	runDuration prometheus.Histogram
	lastFailed  prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		files: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "files_total",
				Help:      "Candidate documents validated, by result.",
			},
			[]string{"result"},
		),
		violations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "violations_total",
			Help:      "Schema violations reported across all documents.",
		}),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Completed runs, by final status.",
			},
			[]string{"status"},
		),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a complete run.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		}),
		lastFailed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_failed_files",
			Help:      "Invalid documents found by the most recent run.",
		}),
	}
	m.Registry.MustRegister(m.files, m.violations, m.runs, m.runDuration, m.lastFailed)
	return m
}

// ObserveResult records the outcome of one document.
func (m *Metrics) ObserveResult(res domain.Result) {
	if m == nil {
		return
	}
	if res.Valid {
		m.files.WithLabelValues("valid").Inc()
		return
	}
	m.files.WithLabelValues("invalid").Inc()
	m.violations.Add(float64(len(res.Violations)))
}

// ObserveReport records the end of a run.
func (m *Metrics) ObserveReport(r *domain.Report) {
	if m == nil || r == nil {
		return
	}
	m.runs.WithLabelValues(string(r.Status)).Inc()
	m.runDuration.Observe(r.Duration.Seconds())
	m.lastFailed.Set(float64(r.Failures))
}

// WriteTextfile writes the registry in the text exposition format, atomically,
// for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// Handler exposes the registry over HTTP.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
