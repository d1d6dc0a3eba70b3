// Package metrics records build statistics as Prometheus metrics and writes
// them in the node_exporter textfile format for CI dashboards.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Page outcomes used as the status label.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Recorder collects metrics for one build on its own registry, so several
// builds in one process never share state.
type Recorder struct {
	registry *prometheus.Registry

	pages        *prometheus.CounterVec
	pageDuration prometheus.Histogram
	staticFiles  prometheus.Gauge
	buildSeconds prometheus.Gauge
	lastSuccess  prometheus.Gauge
}

// NewRecorder creates a Recorder with all build metrics registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		pages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "md2site_pages_total",
				Help: "Pages generated, by outcome",
			},
			[]string{"status"},
		),
		pageDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "md2site_page_duration_seconds",
			Help:    "Time to convert and write one page",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		staticFiles: factory.NewGauge(prometheus.GaugeOpts{
			Name: "md2site_static_files",
			Help: "Files mirrored from the static directory",
		}),
		buildSeconds: factory.NewGauge(prometheus.GaugeOpts{
			Name: "md2site_build_duration_seconds",
			Help: "Wall time of the last build",
		}),
		lastSuccess: factory.NewGauge(prometheus.GaugeOpts{
			Name: "md2site_build_last_success_timestamp_seconds",
			Help: "Unix time of the last build without failed pages",
		}),
	}
}

// ObservePage records one page result.
func (r *Recorder) ObservePage(d time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusFailed
	}
	r.pages.WithLabelValues(status).Inc()
	r.pageDuration.Observe(d.Seconds())
}

// SetStaticFiles records how many static files were mirrored.
func (r *Recorder) SetStaticFiles(n int) {
	r.staticFiles.Set(float64(n))
}

// FinishBuild records the build wall time, and the completion time when
// no page failed.
func (r *Recorder) FinishBuild(d time.Duration, failed int, now time.Time) {
	r.buildSeconds.Set(d.Seconds())
	if failed == 0 {
		r.lastSuccess.Set(float64(now.Unix()))
	}
}

// Registry exposes the underlying registry, mostly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteFile writes every metric to path in the text exposition format.
// The file is written atomically.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
