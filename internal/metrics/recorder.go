package metrics

import "time"

// PageKind labels the two generated page streams.
type PageKind string

const (
	PageKindIOC     PageKind = "ioc"
	PageKindService PageKind = "service"
)

// OutcomeLabel enumerates run outcome categories for counters.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder defines observability hooks for generation runs. Implementations
// may forward to Prometheus etc. The NoopRecorder default means callers never
// need nil checks.
type Recorder interface {
	ObserveRunDuration(d time.Duration)
	IncPageWritten(kind PageKind)
	IncIOCSkipped()
	IncRunOutcome(outcome OutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRunDuration(time.Duration) {}
func (NoopRecorder) IncPageWritten(PageKind)          {}
func (NoopRecorder) IncIOCSkipped()                   {}
func (NoopRecorder) IncRunOutcome(OutcomeLabel)       {}
