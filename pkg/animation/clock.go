// Package animation provides the small frame-pumped animation kit the
// control uses for its transition and pulse effects.
//
// Unlike frameworks that drive controllers from a background ticker, every
// controller here is advanced explicitly by the host's frame callback.
// Nothing in this package starts a goroutine; all methods must be called
// from the UI event thread.
package animation

import "time"

// Clock provides time for animations. The default implementation uses
// system time. Tests can inject a fake clock via SetClock to control
// animation timing deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var clock Clock = realClock{}

// SetClock replaces the animation clock. Returns the previous clock so
// callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
