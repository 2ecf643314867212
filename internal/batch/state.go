package batch

// State tracks the lifecycle of one batch run.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateCancelled State = "cancelled"
	StateFailed    State = "failed"
)

// batchState is the run-local progress record. It is owned by the
// coordinating goroutine and never shared with workers; workers report
// back exclusively through the results channel.
type batchState struct {
	completed int
	total     int
	succeeded int
	failures  []Failure
	artifacts []string
	warnings  []string
}

// Failure records one file the batch could not transcribe.
type Failure struct {
	File   string
	Reason string
}

// Report is the final summary of a batch run.
type Report struct {
	RunID     string
	Root      string
	State     State
	Total     int
	Succeeded int
	Failures  []Failure
	Artifacts []string
	Warnings  []string
}
