package scheduler

import "github.com/patrick-goecommerce/cp437term/internal/term"

// Player drives a Schedule against a term.Engine, one host tick at a
// time. The host (cmd/play's Bubbletea loop, cmd/desktop's paint-loop
// ticker) owns the ticking; Player only decides, given elapsed time, how
// many bytes are due and whether a repaint is warranted.
type Player struct {
	clock     Clock
	sched     *Schedule
	engine    *term.Engine
	cancelled bool
}

// NewPlayer pairs a clock and byte buffer with the engine it feeds.
func NewPlayer(clock Clock, buf []byte, bps int, e *term.Engine) *Player {
	return &Player{clock: clock, sched: New(buf, bps), engine: e}
}

// Cancel stops further delivery. Per spec, cancellation is observable on
// the next tick boundary, not mid-tick.
func (p *Player) Cancel() {
	p.cancelled = true
}

// Cancelled reports whether Cancel has been called.
func (p *Player) Cancelled() bool {
	return p.cancelled
}

// Tick feeds whatever bytes are newly due and reports whether the engine
// received anything (i.e. whether a repaint is warranted). A cancelled
// or finished player always reports false.
func (p *Player) Tick() bool {
	if p.cancelled || p.sched.Done() {
		return false
	}
	chunk := p.sched.Advance(p.clock.Now())
	if len(chunk) == 0 {
		return false
	}
	p.engine.Feed(chunk)
	return true
}

// Done reports whether the whole buffer has been delivered.
func (p *Player) Done() bool {
	return p.sched.Done()
}

// BytesConsumed reports how many bytes have been fed so far.
func (p *Player) BytesConsumed() int {
	return p.sched.Consumed()
}
