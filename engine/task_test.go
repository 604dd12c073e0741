package engine

import (
	"testing"
	"time"

	"github.com/ftahirops/provertop/model"
)

func TestCurrentTaskExtraction(t *testing.T) {
	base := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name   string
		events []model.Event
		want   string
	}{
		{
			"fetcher announces task",
			[]model.Event{fetcherEvent(model.EventSuccess, "Fetched Task-0xdead from orchestrator")},
			"Task-0xdead",
		},
		{
			"prover announces task",
			[]model.Event{proverEvent(model.EventSuccess, "Step 2 of 4: Proving task Task-77", base)},
			"Task-77",
		},
		{
			"marker at end of message",
			[]model.Event{fetcherEvent(model.EventSuccess, "assigned Task-abc")},
			"Task-abc",
		},
		{
			"newest announcement wins",
			[]model.Event{
				fetcherEvent(model.EventSuccess, "Fetched Task-old from orchestrator"),
				fetcherEvent(model.EventSuccess, "Fetched Task-new from orchestrator"),
			},
			"Task-new",
		},
		{
			"submitter events do not name the task",
			[]model.Event{submitterEvent(model.EventSuccess, "submitted Task-55", base)},
			"",
		},
		{
			"bare marker carries no identifier",
			[]model.Event{fetcherEvent(model.EventSuccess, "working on Task- now")},
			"",
		},
		{
			"no marker clears",
			[]model.Event{fetcherEvent(model.EventInfo, "nothing to do")},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, log, _ := newTestEngine()
			log.AppendAll(tt.events)
			if snap := eng.Tick(); snap.CurrentTask != tt.want {
				t.Errorf("current task: got %q, want %q", snap.CurrentTask, tt.want)
			}
		})
	}
}

func TestCurrentTaskClearedWhenMarkerAgesOut(t *testing.T) {
	eng, log, _ := newTestEngine()
	log.Append(fetcherEvent(model.EventSuccess, "Fetched Task-stale from orchestrator"))
	if snap := eng.Tick(); snap.CurrentTask != "Task-stale" {
		t.Fatalf("setup: got %q", snap.CurrentTask)
	}

	// Push the announcement out of the look-back window.
	for i := 0; i < currentTaskWindow; i++ {
		log.Append(fetcherEvent(model.EventInfo, "waiting"))
	}
	if snap := eng.Tick(); snap.CurrentTask != "" {
		t.Fatalf("stale task still displayed: %q", snap.CurrentTask)
	}
}
