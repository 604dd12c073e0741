package engine

import "github.com/ftahirops/provertop/model"

// Ticker abstracts a snapshot source for the UI: the live engine, a
// recording wrapper, or a replay player.
type Ticker interface {
	Tick() *model.Snapshot
	Log() *model.EventLog
	Base() *Engine
}
