package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once         sync.Once
	fileResults  *prom.CounterVec
	fileDuration *prom.HistogramVec
	entitiesOut  *prom.CounterVec
	runDuration  prom.Histogram
	runOutcome   *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the conversion metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.fileResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "refdoc",
			Name:      "files_total",
			Help:      "Source files processed by result",
		}, []string{"dialect", "result"})
		pr.fileDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "refdoc",
			Name:      "file_duration_seconds",
			Help:      "Time spent reading, parsing and extracting one source file",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"dialect"})
		pr.entitiesOut = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "refdoc",
			Name:      "entities_written_total",
			Help:      "Entity documents written by output format",
		}, []string{"format"})
		pr.runDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "refdoc",
			Name:      "run_duration_seconds",
			Help:      "Total conversion run duration",
			Buckets:   prom.DefBuckets,
		})
		pr.runOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "refdoc",
			Name:      "runs_total",
			Help:      "Conversion runs by outcome",
		}, []string{"outcome"})
		reg.MustRegister(pr.fileResults, pr.fileDuration, pr.entitiesOut, pr.runDuration, pr.runOutcome)
	})
	return pr
}

func (p *PrometheusRecorder) IncFileResult(dialect string, result ResultLabel) {
	if p == nil || p.fileResults == nil {
		return
	}
	p.fileResults.WithLabelValues(dialect, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveFileDuration(dialect string, d time.Duration) {
	if p == nil || p.fileDuration == nil {
		return
	}
	p.fileDuration.WithLabelValues(dialect).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncEntityWritten(format string) {
	if p == nil || p.entitiesOut == nil {
		return
	}
	p.entitiesOut.WithLabelValues(format).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome OutcomeLabel) {
	if p == nil || p.runOutcome == nil {
		return
	}
	p.runOutcome.WithLabelValues(string(outcome)).Inc()
}
