package metrics

import "time"

// ResultLabel enumerates per-file result categories for counters.
type ResultLabel string

const (
	ResultConverted ResultLabel = "converted"
	ResultSkipped   ResultLabel = "skipped"
	ResultFailed    ResultLabel = "failed"
)

// OutcomeLabel enumerates run outcomes.
type OutcomeLabel string

const (
	OutcomeSuccess  OutcomeLabel = "success"
	OutcomeFailed   OutcomeLabel = "failed"
	OutcomeCanceled OutcomeLabel = "canceled"
)

// Recorder defines observability hooks for a conversion run.
type Recorder interface {
	IncFileResult(dialect string, result ResultLabel)
	ObserveFileDuration(dialect string, d time.Duration)
	IncEntityWritten(format string)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome OutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncFileResult(string, ResultLabel)         {}
func (NoopRecorder) ObserveFileDuration(string, time.Duration) {}
func (NoopRecorder) IncEntityWritten(string)                   {}
func (NoopRecorder) ObserveRunDuration(time.Duration)          {}
func (NoopRecorder) IncRunOutcome(OutcomeLabel)                {}
