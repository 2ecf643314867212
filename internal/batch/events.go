package batch

// EventType classifies messages emitted during a batch run.
type EventType string

const (
	EventLog      EventType = "log"
	EventProgress EventType = "progress"
	EventFileDone EventType = "file_done"
	EventDone     EventType = "done"
)

// Event is one message flowing from the batch coordinator to its
// consumer. Progress events carry percentages that are monotonically
// non-decreasing in completion count; file events may arrive in any
// order relative to submission. The terminal EventDone carries the
// final report, after which the channel is closed.
type Event struct {
	Type      EventType
	Message   string
	File      string
	Err       string
	Progress  float64
	Completed int
	Total     int
	Report    *Report
}

// publish delivers one event. The channel is sized for the whole run
// up front, so the send never blocks the coordinator and no event,
// in particular the terminal EventDone, is ever dropped.
func publish(events chan<- Event, ev Event) {
	events <- ev
}
