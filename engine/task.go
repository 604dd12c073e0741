package engine

import "github.com/ftahirops/provertop/model"

// updateCurrentTask finds the most recently announced task identifier in
// the recent window. No recent marker means no task in flight: the field
// is cleared rather than left stale, so the display never names a task
// that is no longer active.
func (e *Engine) updateCurrentTask() {
	recent := e.log.Recent(currentTaskWindow)
	for i := len(recent) - 1; i >= 0; i-- {
		ev := recent[i]
		if ev.Worker.Role != model.RoleProver && ev.Worker.Role != model.RoleTaskFetcher {
			continue
		}
		if id, ok := extractTaskID(ev.Msg); ok {
			e.snap.CurrentTask = id
			return
		}
	}
	e.snap.CurrentTask = ""
}
