package model

import "time"

// SystemMetrics holds one resource sample for the provertop process.
// Raw counters (ProcTicks, SampledAt) are carried so the next sample can
// compute CPU% from deltas, the same way rates are derived elsewhere.
type SystemMetrics struct {
	CPUPct        float64   `json:"cpu_pct"`
	RAMBytes      uint64    `json:"ram_bytes"`
	PeakRAMBytes  uint64    `json:"peak_ram_bytes"` // never decreases across the process lifetime
	TotalRAMBytes uint64    `json:"total_ram_bytes"`
	ProcTicks     uint64    `json:"proc_ticks"` // utime+stime from /proc/self/stat
	SampledAt     time.Time `json:"sampled_at"`
}

// ZkVMMetrics holds cumulative pipeline throughput, recomputed from the
// full event history each tick.
type ZkVMMetrics struct {
	TasksExecuted uint64        `json:"tasks_executed"`
	TasksProved   uint64        `json:"tasks_proved"`
	Runtime       time.Duration `json:"runtime"` // accumulated proving time, never decreases
	LastStatus    string        `json:"last_status"`
	TotalPoints   uint64        `json:"total_points"`
}

// PointsPerProof is the fixed reward per successful submission.
const PointsPerProof = 300

// TaskFetchInfo describes the currently tracked rate-limit backoff period.
type TaskFetchInfo struct {
	BackoffDuration   time.Duration `json:"backoff_duration"`
	SinceBackoffStart time.Duration `json:"since_backoff_start"`
	CanFetchNow       bool          `json:"can_fetch_now"`
}

// Remaining returns the wait left in the tracked backoff period.
func (t TaskFetchInfo) Remaining() time.Duration {
	if t.SinceBackoffStart >= t.BackoffDuration {
		return 0
	}
	return t.BackoffDuration - t.SinceBackoffStart
}

// FetchState labels the fetch activity state machine.
type FetchState string

const (
	FetchIdle    FetchState = "idle"
	FetchActive  FetchState = "active"
	FetchTimeout FetchState = "timeout"
)

// FetchingState is the current fetch activity. StartedAt is meaningful
// only while State == FetchActive.
type FetchingState struct {
	State     FetchState `json:"state"`
	StartedAt time.Time  `json:"started_at,omitempty"`
}

func (f FetchingState) String() string {
	switch f.State {
	case FetchActive:
		return "Fetching"
	case FetchTimeout:
		return "Timed out"
	}
	return "Idle"
}
