package model

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Worker identifies the pipeline stage that emitted an event.
type Worker struct {
	Role     WorkerRole `json:"role"`
	ProverID int        `json:"prover_id,omitempty"` // set when Role == RoleProver
}

// WorkerRole is the pipeline stage name.
type WorkerRole string

const (
	RoleTaskFetcher    WorkerRole = "task_fetcher"
	RoleProver         WorkerRole = "prover"
	RoleProofSubmitter WorkerRole = "proof_submitter"
)

func (w Worker) String() string {
	switch w.Role {
	case RoleTaskFetcher:
		return "TaskFetcher"
	case RoleProver:
		return "Prover"
	case RoleProofSubmitter:
		return "ProofSubmitter"
	}
	return string(w.Role)
}

// EventType is the coarse outcome classification of an event.
type EventType string

const (
	EventSuccess     EventType = "success"
	EventError       EventType = "error"
	EventStateChange EventType = "state_change"
	EventInfo        EventType = "info"
)

// ProverState is an explicit state announced by a state_change event.
type ProverState string

const (
	StateStarting   ProverState = "Starting"
	StateFetching   ProverState = "Fetching"
	StateProving    ProverState = "Proving"
	StateSubmitting ProverState = "Submitting"
	StateWaiting    ProverState = "Waiting"
	StateError      ProverState = "Error"
)

// Event is one record of the append-only worker event stream.
// Msg is free text that may embed structured data (a task ID after a
// marker, a duration in parentheses) using ad hoc conventions; the
// absence of an expected pattern is normal, not an error.
type Event struct {
	ID          string       `json:"id"`
	Timestamp   time.Time    `json:"timestamp"`
	Worker      Worker       `json:"worker"`
	Type        EventType    `json:"type"`
	Msg         string       `json:"msg"`
	ProverState *ProverState `json:"prover_state,omitempty"`
}

// NewEvent creates an event stamped now with a fresh ID.
func NewEvent(w Worker, t EventType, msg string) Event {
	return Event{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Worker:    w,
		Type:      t,
		Msg:       msg,
	}
}

// NewStateChange creates a state_change event carrying an explicit state.
func NewStateChange(w Worker, state ProverState, msg string) Event {
	e := NewEvent(w, EventStateChange, msg)
	e.ProverState = &state
	return e
}

// EventLog is the append-only, ordered event history. Producers append,
// the aggregator only reads. Reads return copies so callers never observe
// an append mid-scan.
type EventLog struct {
	mu     sync.RWMutex
	events []Event
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Append adds an event to the end of the log.
func (l *EventLog) Append(e Event) {
	l.mu.Lock()
	l.events = append(l.events, e)
	l.mu.Unlock()
}

// AppendAll adds events in order.
func (l *EventLog) AppendAll(events []Event) {
	l.mu.Lock()
	l.events = append(l.events, events...)
	l.mu.Unlock()
}

// Len returns the number of retained events.
func (l *EventLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}

// All returns a copy of the full history, oldest first.
func (l *EventLog) All() []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Recent returns a copy of the newest n events, oldest first.
// Returns fewer when the log is shorter than n.
func (l *EventLog) Recent(n int) []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if n > len(l.events) {
		n = len(l.events)
	}
	out := make([]Event, n)
	copy(out, l.events[len(l.events)-n:])
	return out
}

// Since returns a copy of events at index from and later, oldest first.
// Used by the recorder to capture what arrived between two frames.
func (l *EventLog) Since(from int) []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if from < 0 {
		from = 0
	}
	if from >= len(l.events) {
		return nil
	}
	out := make([]Event, len(l.events)-from)
	copy(out, l.events[from:])
	return out
}
