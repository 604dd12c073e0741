package model

import "time"

// Snapshot is the complete derived dashboard state for one tick. It is
// owned and mutated only by the engine; the UI reads copies handed out
// after a tick completes.
type Snapshot struct {
	Tick      uint64    `json:"tick"`
	Timestamp time.Time `json:"timestamp"`

	// CurrentTask is the task most recently referenced by a fetch or
	// prove event. Empty means no task in flight.
	CurrentTask string `json:"current_task,omitempty"`

	// ProverState is the last explicitly announced state. Sticky: it
	// keeps the last known value until superseded.
	ProverState ProverState `json:"prover_state,omitempty"`

	System    SystemMetrics `json:"system"`
	ZkVM      ZkVMMetrics   `json:"zkvm"`
	TaskFetch TaskFetchInfo `json:"task_fetch"`
	Fetching  FetchingState `json:"fetching"`

	// LastSubmission is the timestamp of the last successful proof
	// submission. Zero when none has been observed.
	LastSubmission time.Time `json:"last_submission,omitempty"`

	// ProvingSince is set while a proving cycle is open (proving began,
	// no proof generated yet). Zero otherwise.
	ProvingSince time.Time `json:"proving_since,omitempty"`
}
