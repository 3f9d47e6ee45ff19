package models

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake for deterministic
// envelope timestamps.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for response timestamps. Pass nil to reset
// to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Now returns the current time from the active clock.
func Now() time.Time {
	return clock.Now()
}

// ResponseCurrentTime returns the current time in epoch milliseconds, the
// format used by the currentTime field of every response envelope.
func ResponseCurrentTime() int64 {
	return clock.Now().UnixNano() / int64(time.Millisecond)
}
