package metrics

import "time"

// Label keys understood by every Recorder.
const (
	LabelChain   = "chain"
	LabelOutcome = "outcome"
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeMismatch = "mismatch"
)

type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}
