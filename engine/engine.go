package engine

import (
	"sync"
	"time"

	"github.com/ftahirops/provertop/collector"
	"github.com/ftahirops/provertop/model"
)

// Window sizes for the event-scanning trackers. The throughput
// aggregator deliberately ignores these and replays the full history.
const (
	currentTaskWindow   = 20
	backoffWindow       = 20
	fetchRequestWindow  = 10
	fetchTerminalWindow = 5
	proverStateWindow   = 10
)

// fetchTimeout is the data threshold after which an unanswered fetch
// attempt is reported as timed out.
const fetchTimeout = 5 * time.Second

// Engine owns the dashboard snapshot and updates it once per tick from
// the event log and the resource sampler. Single writer: only Tick
// mutates the snapshot, and readers get copies.
type Engine struct {
	log     *model.EventLog
	sampler collector.Sampler
	clock   Clock
	History *History
	tickMu  sync.Mutex // serializes Tick() calls

	snap model.Snapshot

	// Anchor of the currently tracked backoff period. The period is
	// identified by its declared duration: the same message repeating
	// across ticks is a continuation, a different duration is a new
	// period.
	waitingStart time.Time
	waitingSecs  uint64
	haveWaiting  bool
}

// NewEngine creates an engine over the given event log and sampler.
func NewEngine(log *model.EventLog, sampler collector.Sampler, historySize int) *Engine {
	e := &Engine{
		log:     log,
		sampler: sampler,
		clock:   realClock{},
		History: NewHistory(historySize),
	}
	e.snap.Fetching = model.FetchingState{State: model.FetchIdle}
	return e
}

// Log returns the event log the engine reads.
func (e *Engine) Log() *model.EventLog { return e.log }

// Base returns itself for the default engine ticker.
func (e *Engine) Base() *Engine { return e }

// Tick performs one update cycle and returns a copy of the completed
// snapshot. Sub-updaters run in a fixed order; only the resource sample
// is order-sensitive (it needs the previous peak and previous sample).
func (e *Engine) Tick() *model.Snapshot {
	e.tickMu.Lock()
	defer e.tickMu.Unlock()

	e.snap.Tick++
	e.snap.Timestamp = e.clock.Now()

	e.updateCurrentTask()

	prev := e.snap.System
	e.snap.System = e.sampler.Sample(prev.PeakRAMBytes, &prev)
	// Monotone peak is this side's invariant, not the sampler's.
	if e.snap.System.PeakRAMBytes < prev.PeakRAMBytes {
		e.snap.System.PeakRAMBytes = prev.PeakRAMBytes
	}

	e.updateZkVMMetrics()
	e.updateTaskFetchInfo()
	e.updateFetchingState()
	e.updateProverState()

	cp := e.snap
	e.History.Push(cp)
	return &cp
}

// Snapshot returns a copy of the last completed snapshot.
func (e *Engine) Snapshot() model.Snapshot {
	e.tickMu.Lock()
	defer e.tickMu.Unlock()
	return e.snap
}
