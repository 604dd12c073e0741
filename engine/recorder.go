package engine

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"github.com/ftahirops/provertop/model"
)

// recordFrame is one tick written to disk: the completed snapshot plus
// the events that arrived since the previous frame.
type recordFrame struct {
	Snapshot model.Snapshot `json:"snapshot"`
	Events   []model.Event  `json:"events,omitempty"`
}

// Recorder wraps an engine and records every tick as a JSON line.
type Recorder struct {
	inner   *Engine
	writer  *json.Encoder
	lastLen int
	mu      sync.Mutex
}

// NewRecorder creates a recorder that writes JSON lines to w.
func NewRecorder(eng *Engine, w io.Writer) *Recorder {
	return &Recorder{
		inner:  eng,
		writer: json.NewEncoder(w),
	}
}

// Log returns the live event log.
func (r *Recorder) Log() *model.EventLog { return r.inner.Log() }

// Base returns the underlying engine.
func (r *Recorder) Base() *Engine { return r.inner }

// Tick runs the engine's tick and records the resulting frame.
func (r *Recorder) Tick() *model.Snapshot {
	snap := r.inner.Tick()
	if snap == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	events := r.inner.Log().Since(r.lastLen)
	r.lastLen += len(events)
	if err := r.writer.Encode(recordFrame{Snapshot: *snap, Events: events}); err != nil {
		// A failed frame write must not fail the tick.
		_ = err
	}
	return snap
}

// Player replays recorded frames through the Ticker interface, rebuilding
// the event log frame by frame so the UI event tail works in replay.
type Player struct {
	engine *Engine
	log    *model.EventLog
	frames []recordFrame
	idx    int
	mu     sync.Mutex
}

// NewPlayer reads a recording (JSON lines) into a player. Malformed
// lines are skipped.
func NewPlayer(r io.Reader, historySize int) (*Player, error) {
	var frames []recordFrame
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024) // frames carry full snapshots
	for scanner.Scan() {
		var frame recordFrame
		if err := json.Unmarshal(scanner.Bytes(), &frame); err != nil {
			continue
		}
		frames = append(frames, frame)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	log := model.NewEventLog()
	return &Player{
		engine: NewEngine(log, nil, historySize),
		log:    log,
		frames: frames,
	}, nil
}

// Log returns the replayed event log.
func (p *Player) Log() *model.EventLog { return p.log }

// Base returns the underlying (virtual) engine.
func (p *Player) Base() *Engine { return p.engine }

// Len returns the number of frames available.
func (p *Player) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.frames)
}

// Index returns the next frame index.
func (p *Player) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.idx
}

// Tick replays the next recorded frame, or the last frame at EOF.
func (p *Player) Tick() *model.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.frames) == 0 {
		return nil
	}
	if p.idx >= len(p.frames) {
		snap := p.frames[len(p.frames)-1].Snapshot
		return &snap
	}

	f := p.frames[p.idx]
	p.idx++
	p.log.AppendAll(f.Events)
	p.engine.History.Push(f.Snapshot)
	snap := f.Snapshot
	return &snap
}

// Seek jumps to a frame index and returns that frame, rebuilding the
// event log up to it.
func (p *Player) Seek(i int) *model.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.frames) == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p.frames) {
		i = len(p.frames) - 1
	}

	log := model.NewEventLog()
	for j := 0; j <= i; j++ {
		log.AppendAll(p.frames[j].Events)
	}
	p.log = log
	p.idx = i + 1

	snap := p.frames[i].Snapshot
	p.engine.History.Push(snap)
	return &snap
}
