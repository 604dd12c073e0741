package engine

import (
	"testing"
	"time"

	"github.com/ftahirops/provertop/model"
)

// manualClock is a Clock advanced explicitly by tests.
type manualClock struct {
	t time.Time
}

func (c *manualClock) Now() time.Time          { return c.t }
func (c *manualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// fakeSampler returns a fixed sample regardless of inputs.
type fakeSampler struct {
	metrics model.SystemMetrics
}

func (s *fakeSampler) Sample(prevPeak uint64, prev *model.SystemMetrics) model.SystemMetrics {
	return s.metrics
}

// newTestEngine builds an engine over a fresh log with a manual clock.
func newTestEngine() (*Engine, *model.EventLog, *manualClock) {
	log := model.NewEventLog()
	clock := &manualClock{t: time.Unix(1_700_000_000, 0)}
	eng := NewEngine(log, &fakeSampler{}, 16)
	eng.clock = clock
	return eng, log, clock
}

func fetcherEvent(t model.EventType, msg string) model.Event {
	return model.Event{
		Timestamp: time.Unix(1_700_000_000, 0),
		Worker:    model.Worker{Role: model.RoleTaskFetcher},
		Type:      t,
		Msg:       msg,
	}
}

func proverEvent(t model.EventType, msg string, ts time.Time) model.Event {
	return model.Event{
		Timestamp: ts,
		Worker:    model.Worker{Role: model.RoleProver, ProverID: 1},
		Type:      t,
		Msg:       msg,
	}
}

func submitterEvent(t model.EventType, msg string, ts time.Time) model.Event {
	return model.Event{
		Timestamp: ts,
		Worker:    model.Worker{Role: model.RoleProofSubmitter},
		Type:      t,
		Msg:       msg,
	}
}

func TestTickIncrementsMonotonically(t *testing.T) {
	eng, _, _ := newTestEngine()
	for want := uint64(1); want <= 5; want++ {
		snap := eng.Tick()
		if snap.Tick != want {
			t.Fatalf("tick %d: got %d", want, snap.Tick)
		}
	}
}

func TestPeakRAMNeverDecreases(t *testing.T) {
	log := model.NewEventLog()
	sampler := &fakeSampler{}
	eng := NewEngine(log, sampler, 16)
	eng.clock = &manualClock{t: time.Unix(1_700_000_000, 0)}

	sampler.metrics = model.SystemMetrics{RAMBytes: 100, PeakRAMBytes: 500}
	if snap := eng.Tick(); snap.System.PeakRAMBytes != 500 {
		t.Fatalf("peak after first tick: got %d, want 500", snap.System.PeakRAMBytes)
	}

	// A sampler reporting a lower peak must not lower the published one.
	sampler.metrics = model.SystemMetrics{RAMBytes: 50, PeakRAMBytes: 200}
	if snap := eng.Tick(); snap.System.PeakRAMBytes != 500 {
		t.Fatalf("peak after regressed sample: got %d, want 500", snap.System.PeakRAMBytes)
	}
}

func TestIdempotentRecompute(t *testing.T) {
	eng, log, _ := newTestEngine()

	base := time.Unix(1_700_000_000, 0)
	log.Append(fetcherEvent(model.EventSuccess, "Step 1 of 4: Requesting task..."))
	log.Append(fetcherEvent(model.EventSuccess, "Fetched Task-abc123 from orchestrator"))
	log.Append(proverEvent(model.EventSuccess, "Step 2 of 4: Proving task Task-abc123", base))
	log.Append(proverEvent(model.EventSuccess, "Step 3 of 4: Proof generated for task Task-abc123", base.Add(7*time.Second)))
	log.Append(submitterEvent(model.EventSuccess, "Step 4 of 4: Proof submitted successfully", base.Add(8*time.Second)))

	first := eng.Tick()
	second := eng.Tick()

	if first.ZkVM != second.ZkVM {
		t.Errorf("zkvm metrics drifted between ticks: %+v vs %+v", first.ZkVM, second.ZkVM)
	}
	if first.CurrentTask != second.CurrentTask {
		t.Errorf("current task drifted: %q vs %q", first.CurrentTask, second.CurrentTask)
	}
	if first.Fetching.State != second.Fetching.State {
		t.Errorf("fetching state drifted: %v vs %v", first.Fetching.State, second.Fetching.State)
	}
	if second.ZkVM.Runtime != 7*time.Second {
		t.Errorf("runtime: got %v, want 7s", second.ZkVM.Runtime)
	}
}

func TestRuntimeNeverDecreases(t *testing.T) {
	eng, log, _ := newTestEngine()
	base := time.Unix(1_700_000_000, 0)

	var last time.Duration
	for i := 0; i < 3; i++ {
		ts := base.Add(time.Duration(i) * 20 * time.Second)
		log.Append(proverEvent(model.EventSuccess, "Step 2 of 4: Proving task Task-x", ts))
		log.Append(proverEvent(model.EventSuccess, "Step 3 of 4: Proof generated for task Task-x", ts.Add(3*time.Second)))
		snap := eng.Tick()
		if snap.ZkVM.Runtime < last {
			t.Fatalf("runtime decreased: %v -> %v", last, snap.ZkVM.Runtime)
		}
		last = snap.ZkVM.Runtime
	}
	if last != 9*time.Second {
		t.Errorf("accumulated runtime: got %v, want 9s", last)
	}
}

func TestSnapshotCopyIsolation(t *testing.T) {
	eng, log, _ := newTestEngine()
	first := eng.Tick()
	tickBefore := first.Tick

	log.Append(fetcherEvent(model.EventSuccess, "Fetched Task-next"))
	eng.Tick()

	if first.Tick != tickBefore {
		t.Fatal("returned snapshot mutated by a later tick")
	}
}
