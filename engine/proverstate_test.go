package engine

import (
	"testing"

	"github.com/ftahirops/provertop/model"
)

func stateChange(state model.ProverState) model.Event {
	e := fetcherEvent(model.EventStateChange, "state: "+string(state))
	e.Worker = model.Worker{Role: model.RoleProver, ProverID: 1}
	e.ProverState = &state
	return e
}

func TestProverStateFollowsLatestStateChange(t *testing.T) {
	eng, log, _ := newTestEngine()
	log.Append(stateChange(model.StateFetching))
	log.Append(stateChange(model.StateProving))

	if snap := eng.Tick(); snap.ProverState != model.StateProving {
		t.Fatalf("prover state: got %q, want %q", snap.ProverState, model.StateProving)
	}
}

func TestProverStateSticksWhenWindowExhausted(t *testing.T) {
	eng, log, _ := newTestEngine()
	log.Append(stateChange(model.StateProving))
	eng.Tick()

	// Flood the window with unrelated events: the last known state stays
	// authoritative.
	for i := 0; i < proverStateWindow+5; i++ {
		log.Append(fetcherEvent(model.EventInfo, "waiting"))
	}
	if snap := eng.Tick(); snap.ProverState != model.StateProving {
		t.Fatalf("prover state reset: got %q, want %q", snap.ProverState, model.StateProving)
	}
}

func TestProverStateIgnoresStateChangeWithoutPayload(t *testing.T) {
	eng, log, _ := newTestEngine()
	log.Append(stateChange(model.StateProving))
	log.Append(fetcherEvent(model.EventStateChange, "state changed"))

	if snap := eng.Tick(); snap.ProverState != model.StateProving {
		t.Fatalf("payload-less state change applied: got %q", snap.ProverState)
	}
}
