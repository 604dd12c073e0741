package engine

import "github.com/ftahirops/provertop/model"

// updateProverState surfaces the most recent explicit state-change
// event. Unlike the other trackers this one has no default: the last
// known state stays authoritative until superseded.
func (e *Engine) updateProverState() {
	recent := e.log.Recent(proverStateWindow)
	for i := len(recent) - 1; i >= 0; i-- {
		ev := recent[i]
		if ev.Type == model.EventStateChange && ev.ProverState != nil {
			e.snap.ProverState = *ev.ProverState
			return
		}
	}
}
