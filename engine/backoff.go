package engine

import (
	"time"

	"github.com/ftahirops/provertop/model"
)

// updateTaskFetchInfo reconstructs the active rate-limit backoff period
// from the most recent "ready for next task (<secs>)" message. The
// period is identified by its declared duration: re-seeing the same
// duration continues the running countdown, a different duration starts
// a new one anchored at now. Without that identity test the countdown
// would restart every tick, since the fetcher repeats the message for as
// long as it waits.
func (e *Engine) updateTaskFetchInfo() {
	recent := e.log.Recent(backoffWindow)
	for i := len(recent) - 1; i >= 0; i-- {
		ev := recent[i]
		if ev.Worker.Role != model.RoleTaskFetcher {
			continue
		}
		secs, ok := parseBackoffSecs(ev.Msg)
		if !ok {
			continue
		}

		if !e.haveWaiting || e.waitingSecs != secs {
			e.waitingStart = e.clock.Now()
			e.waitingSecs = secs
			e.haveWaiting = true
		}

		declared := time.Duration(secs) * time.Second
		elapsed := e.clock.Now().Sub(e.waitingStart)
		if elapsed < 0 {
			elapsed = 0
		}
		e.snap.TaskFetch = model.TaskFetchInfo{
			BackoffDuration:   declared,
			SinceBackoffStart: elapsed,
			CanFetchNow:       elapsed >= declared,
		}
		return
	}

	// No recent rate limiting: optimistic default.
	e.snap.TaskFetch = model.TaskFetchInfo{CanFetchNow: true}
}
