// Package scheduler paces byte delivery to a term.Engine at a configured
// baud rate, the way the Multiterminal backend's app_stream.go coalesces
// PTY output on a timer before emitting it to the frontend — except here
// the timer sets the pace of delivery itself, not a coalescing window.
package scheduler

import "time"

// Clock reports elapsed wall time since a schedule started. Bubbletea's
// tea.Tick and a browser's requestAnimationFrame both reduce to "how long
// has it been", so one method is enough for either host to drive the
// same Schedule/Player.
type Clock interface {
	Now() time.Duration
}

// RealClock measures elapsed time against the moment it was created.
type RealClock struct {
	start time.Time
}

// NewRealClock starts the clock running now.
func NewRealClock() RealClock {
	return RealClock{start: time.Now()}
}

func (c RealClock) Now() time.Duration {
	return time.Since(c.start)
}
