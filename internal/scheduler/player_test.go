package scheduler

import (
	"testing"
	"time"

	"github.com/patrick-goecommerce/cp437term/internal/term"
)

func TestPlayer_SynchronousFeedsEverythingOnFirstTick(t *testing.T) {
	clk := &fakeClock{}
	e := term.NewEngine()
	p := NewPlayer(clk, []byte("HI"), 0, e)

	if painted := p.Tick(); !painted {
		t.Fatal("first tick of a synchronous player should paint")
	}
	if !p.Done() {
		t.Fatal("synchronous player should be done after one tick")
	}
	if got := e.CellAt(0, 0).Glyph; got != 'H' {
		t.Errorf("cell (0,0) = %q, want 'H'", got)
	}
}

func TestPlayer_PacedTickOnlyFeedsWhatIsDue(t *testing.T) {
	clk := &fakeClock{}
	e := term.NewEngine()
	buf := make([]byte, 240)
	for i := range buf {
		buf[i] = 'A'
	}
	p := NewPlayer(clk, buf, 2400, e)

	clk.t = 100 * time.Millisecond
	p.Tick()
	if p.Done() {
		t.Fatal("player should not be done after only 100ms of a multi-second schedule")
	}
	if got := p.BytesConsumed(); got <= 0 || got >= 240 {
		t.Fatalf("bytes consumed at t=100ms = %d, want a partial amount", got)
	}
}

func TestPlayer_CancelStopsFurtherDelivery(t *testing.T) {
	clk := &fakeClock{}
	e := term.NewEngine()
	buf := make([]byte, 100)
	for i := range buf {
		buf[i] = 'A'
	}
	p := NewPlayer(clk, buf, 1000, e)

	clk.t = 10 * time.Millisecond
	p.Tick()
	consumedBefore := p.BytesConsumed()
	p.Cancel()

	clk.t = time.Hour
	if painted := p.Tick(); painted {
		t.Fatal("ticking a cancelled player should not paint")
	}
	if p.BytesConsumed() != consumedBefore {
		t.Fatalf("cancelled player consumed more bytes: before=%d after=%d", consumedBefore, p.BytesConsumed())
	}
}
