package engine

import (
	"strings"

	"github.com/ftahirops/provertop/model"
)

// updateFetchingState advances the fetch activity state machine.
// Priority order each tick: a recent terminal fetch outcome forces Idle;
// otherwise a recent requesting marker starts Active (only when not
// already active, so the elapsed timer keeps the true start); otherwise
// an Active fetch older than the timeout threshold becomes Timeout.
func (e *Engine) updateFetchingState() {
	recent := e.log.Recent(fetchTerminalWindow)
	for i := len(recent) - 1; i >= 0; i-- {
		if isFetchTerminal(recent[i]) {
			e.snap.Fetching = model.FetchingState{State: model.FetchIdle}
			return
		}
	}

	if e.snap.Fetching.State != model.FetchActive {
		recent = e.log.Recent(fetchRequestWindow)
		for i := len(recent) - 1; i >= 0; i-- {
			ev := recent[i]
			if ev.Worker.Role == model.RoleTaskFetcher && strings.Contains(ev.Msg, msgRequesting) {
				e.snap.Fetching = model.FetchingState{
					State:     model.FetchActive,
					StartedAt: e.clock.Now(),
				}
				return
			}
		}
	}

	if e.snap.Fetching.State == model.FetchActive {
		if e.clock.Now().Sub(e.snap.Fetching.StartedAt) > fetchTimeout {
			e.snap.Fetching = model.FetchingState{State: model.FetchTimeout}
		}
	}
}
