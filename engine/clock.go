package engine

import "time"

// Clock abstracts wall-clock reads so elapsed-time logic (backoff
// countdown, fetch timeout) is testable without real delays.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
