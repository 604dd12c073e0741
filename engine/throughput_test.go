package engine

import (
	"testing"
	"time"

	"github.com/ftahirops/provertop/model"
)

func TestPointsCalculation(t *testing.T) {
	eng, log, _ := newTestEngine()
	base := time.Unix(1_700_000_000, 0)
	for i := 0; i < 3; i++ {
		log.Append(submitterEvent(model.EventSuccess, "Step 4 of 4: Proof submitted successfully", base.Add(time.Duration(i)*time.Minute)))
	}

	snap := eng.Tick()
	if snap.ZkVM.TotalPoints != 900 {
		t.Errorf("total points: got %d, want 900", snap.ZkVM.TotalPoints)
	}
	if snap.ZkVM.TasksProved != 3 {
		t.Errorf("tasks proved: got %d, want 3", snap.ZkVM.TasksProved)
	}
	if !snap.LastSubmission.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("last submission: got %v, want %v", snap.LastSubmission, base.Add(2*time.Minute))
	}
}

func TestFetchCounting(t *testing.T) {
	tests := []struct {
		name string
		evt  model.Event
		want uint64
	}{
		{"plain success counts", fetcherEvent(model.EventSuccess, "Fetched Task-9 from orchestrator"), 1},
		{"rate limited excluded", fetcherEvent(model.EventSuccess, "rate limited, backing off"), 0},
		{"retrying excluded", fetcherEvent(model.EventSuccess, "retrying in 5s"), 0},
		{"requesting step excluded", fetcherEvent(model.EventSuccess, "Step 1 of 4: Requesting task..."), 0},
		{"error does not count", fetcherEvent(model.EventError, "Fetched Task-9 from orchestrator"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, log, _ := newTestEngine()
			log.Append(tt.evt)
			snap := eng.Tick()
			if snap.ZkVM.TasksExecuted != tt.want {
				t.Errorf("tasks executed: got %d, want %d", snap.ZkVM.TasksExecuted, tt.want)
			}
		})
	}
}

func TestExecutedIsMaxOfFetchedAndSubmitted(t *testing.T) {
	eng, log, _ := newTestEngine()
	base := time.Unix(1_700_000_000, 0)

	// Two submissions observed but only one fetch: the look-back that
	// produced the log missed the older fetch, submissions imply it.
	log.Append(fetcherEvent(model.EventSuccess, "Fetched Task-1 from orchestrator"))
	log.Append(submitterEvent(model.EventSuccess, "Step 4 of 4: Proof submitted successfully", base))
	log.Append(submitterEvent(model.EventSuccess, "Step 4 of 4: Proof submitted successfully", base.Add(time.Minute)))

	snap := eng.Tick()
	if snap.ZkVM.TasksExecuted != 2 {
		t.Errorf("tasks executed: got %d, want 2", snap.ZkVM.TasksExecuted)
	}
}

func TestProvingRuntimePairing(t *testing.T) {
	base := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name        string
		events      []model.Event
		wantRuntime time.Duration
		wantStatus  string
	}{
		{
			name: "paired steps accumulate",
			events: []model.Event{
				proverEvent(model.EventSuccess, "Step 2 of 4: Proving task Task-a", base),
				proverEvent(model.EventSuccess, "Step 3 of 4: Proof generated for task Task-a", base.Add(4*time.Second)),
			},
			wantRuntime: 4 * time.Second,
			wantStatus:  "Proved",
		},
		{
			name: "proof without proving start ignored",
			events: []model.Event{
				proverEvent(model.EventSuccess, "Step 3 of 4: Proof generated for task Task-a", base),
			},
			wantRuntime: 0,
			wantStatus:  "None",
		},
		{
			name: "restarted proving uses latest anchor",
			events: []model.Event{
				proverEvent(model.EventSuccess, "Step 2 of 4: Proving task Task-a", base),
				proverEvent(model.EventSuccess, "Step 2 of 4: Proving task Task-a", base.Add(10*time.Second)),
				proverEvent(model.EventSuccess, "Step 3 of 4: Proof generated for task Task-a", base.Add(13*time.Second)),
			},
			wantRuntime: 3 * time.Second,
			wantStatus:  "Proved",
		},
		{
			name: "prover error does not touch the timer",
			events: []model.Event{
				proverEvent(model.EventSuccess, "Step 2 of 4: Proving task Task-a", base),
				proverEvent(model.EventError, "proving crashed", base.Add(time.Second)),
				proverEvent(model.EventSuccess, "Step 3 of 4: Proof generated for task Task-a", base.Add(6*time.Second)),
			},
			wantRuntime: 6 * time.Second,
			wantStatus:  "Proved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, log, _ := newTestEngine()
			log.AppendAll(tt.events)
			snap := eng.Tick()
			if snap.ZkVM.Runtime != tt.wantRuntime {
				t.Errorf("runtime: got %v, want %v", snap.ZkVM.Runtime, tt.wantRuntime)
			}
			if snap.ZkVM.LastStatus != tt.wantStatus {
				t.Errorf("last status: got %q, want %q", snap.ZkVM.LastStatus, tt.wantStatus)
			}
		})
	}
}

func TestProvingSinceTracksOpenCycle(t *testing.T) {
	eng, log, _ := newTestEngine()
	base := time.Unix(1_700_000_000, 0)

	log.Append(proverEvent(model.EventSuccess, "Step 2 of 4: Proving task Task-a", base))
	if snap := eng.Tick(); !snap.ProvingSince.Equal(base) {
		t.Fatalf("proving_since: got %v, want %v", snap.ProvingSince, base)
	}

	log.Append(proverEvent(model.EventSuccess, "Step 3 of 4: Proof generated for task Task-a", base.Add(time.Second)))
	if snap := eng.Tick(); !snap.ProvingSince.IsZero() {
		t.Fatalf("proving_since should clear once the proof lands, got %v", snap.ProvingSince)
	}
}

func TestLastStatusTransitions(t *testing.T) {
	base := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name   string
		events []model.Event
		want   string
	}{
		{"empty history", nil, "None"},
		{"prover error", []model.Event{proverEvent(model.EventError, "oom", base)}, "Proof Failed"},
		{"submit error", []model.Event{submitterEvent(model.EventError, "rejected", base)}, "Submit Failed"},
		{"submit success", []model.Event{submitterEvent(model.EventSuccess, "Step 4 of 4: Proof submitted successfully", base)}, "Success"},
		{
			"latest wins",
			[]model.Event{
				submitterEvent(model.EventSuccess, "Step 4 of 4: Proof submitted successfully", base),
				submitterEvent(model.EventError, "rejected", base.Add(time.Second)),
			},
			"Submit Failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, log, _ := newTestEngine()
			log.AppendAll(tt.events)
			if snap := eng.Tick(); snap.ZkVM.LastStatus != tt.want {
				t.Errorf("last status: got %q, want %q", snap.ZkVM.LastStatus, tt.want)
			}
		})
	}
}

func TestUnrecognizedMessagesAreInert(t *testing.T) {
	eng, log, _ := newTestEngine()
	before := eng.Tick()

	log.Append(fetcherEvent(model.EventInfo, "garbage"))
	after := eng.Tick()

	if before.ZkVM != after.ZkVM {
		t.Errorf("zkvm metrics changed: %+v vs %+v", before.ZkVM, after.ZkVM)
	}
	if after.CurrentTask != "" {
		t.Errorf("current task set by garbage: %q", after.CurrentTask)
	}
	if after.TaskFetch != before.TaskFetch {
		t.Errorf("task fetch info changed: %+v vs %+v", before.TaskFetch, after.TaskFetch)
	}
	if after.Fetching.State != model.FetchIdle {
		t.Errorf("fetching state changed: %v", after.Fetching.State)
	}
}
