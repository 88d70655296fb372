package generator

import (
	"time"

	"github.com/google/uuid"
)

// Report summarizes one generation run. Counts cover pages actually written;
// a run that errors out returns no report (first error aborts, spec-level
// no-partial-success rule).
type Report struct {
	RunID        string
	Start        time.Time
	End          time.Time
	IOCPages     int
	ServicePages int
	SkippedIOCs  int
}

func newReport(start time.Time) *Report {
	return &Report{RunID: uuid.NewString(), Start: start}
}

func (r *Report) finish(end time.Time) { r.End = end }

// Duration returns the wall-clock run time.
func (r *Report) Duration() time.Duration { return r.End.Sub(r.Start) }
