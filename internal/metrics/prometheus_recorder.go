package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
//
// iocinfo is a batch tool, so metrics are exported via the node_exporter
// textfile collector pattern (prometheus.WriteToTextfile after the run)
// rather than an HTTP endpoint.
type PrometheusRecorder struct {
	once        sync.Once
	runDuration prom.Histogram
	pagesTotal  *prom.CounterVec
	iocsSkipped prom.Counter
	runOutcome  *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.runDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "iocinfo",
			Name:      "run_duration_seconds",
			Help:      "Total generation run duration",
			Buckets:   prom.DefBuckets,
		})
		pr.pagesTotal = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "iocinfo",
			Name:      "pages_written_total",
			Help:      "Generated pages by kind",
		}, []string{"kind"})
		pr.iocsSkipped = prom.NewCounter(prom.CounterOpts{
			Namespace: "iocinfo",
			Name:      "iocs_skipped_total",
			Help:      "IOC directories skipped by the values-file allow list",
		})
		pr.runOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "iocinfo",
			Name:      "run_outcomes_total",
			Help:      "Run outcomes by final status",
		}, []string{"outcome"})
		reg.MustRegister(pr.runDuration, pr.pagesTotal, pr.iocsSkipped, pr.runOutcome)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncPageWritten(kind PageKind) {
	if p == nil || p.pagesTotal == nil {
		return
	}
	p.pagesTotal.WithLabelValues(string(kind)).Inc()
}

func (p *PrometheusRecorder) IncIOCSkipped() {
	if p == nil || p.iocsSkipped == nil {
		return
	}
	p.iocsSkipped.Inc()
}

func (p *PrometheusRecorder) IncRunOutcome(outcome OutcomeLabel) {
	if p == nil || p.runOutcome == nil {
		return
	}
	p.runOutcome.WithLabelValues(string(outcome)).Inc()
}
