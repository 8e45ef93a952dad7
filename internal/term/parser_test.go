package term

import (
	"math/rand"
	"testing"
)

func TestFeed_UnknownEscapeSequenceIsAbsorbedWithoutCorruption(t *testing.T) {
	e := NewEngine()
	e.Feed([]byte("\x1b[1;1HOK\x1b[99;?zGARBAGE"))

	if got := e.CellAt(0, 0).Glyph; got != 'O' {
		t.Fatalf("cell (0,0) = %q, want 'O'", got)
	}
	if got := e.CellAt(0, 1).Glyph; got != 'K' {
		t.Fatalf("cell (0,1) = %q, want 'K'", got)
	}
	// after the unrecognized final byte 'z', the parser must return to
	// ground and treat the following bytes as ordinary printable text.
	if got := e.CellAt(0, 2).Glyph; got != 'G' {
		t.Errorf("cell (0,2) = %q, want 'G' (parser should resume in ground)", got)
	}
}

func TestFeed_SplitAcrossMultipleCallsBehavesIdentically(t *testing.T) {
	whole := NewEngine()
	whole.Feed([]byte("\x1b[5;10HHELLO"))

	split := NewEngine()
	parts := [][]byte{[]byte("\x1b["), []byte("5;"), []byte("10"), []byte("H"), []byte("HE"), []byte("LLO")}
	for _, p := range parts {
		split.Feed(p)
	}

	if whole.Cursor() != split.Cursor() {
		t.Errorf("cursor mismatch: whole=%+v split=%+v", whole.Cursor(), split.Cursor())
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if whole.CellAt(r, c) != split.CellAt(r, c) {
				t.Fatalf("cell (%d,%d) mismatch: whole=%+v split=%+v", r, c, whole.CellAt(r, c), split.CellAt(r, c))
			}
		}
	}
}

func TestFeed_RoundTripDeterminism_SameInputSameState(t *testing.T) {
	input := []byte("\x1b[1;31;44mHello\x1b[2;5HWorld\x1b[K\x1b[s\x1b[10;10H\x1b[u\x1b[6n")
	a := NewEngine()
	b := NewEngine()
	a.Feed(input)
	b.Feed(input)

	if a.Cursor() != b.Cursor() {
		t.Fatalf("cursor mismatch: a=%+v b=%+v", a.Cursor(), b.Cursor())
	}
	if a.Pen() != b.Pen() {
		t.Fatalf("pen mismatch: a=%+v b=%+v", a.Pen(), b.Pen())
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if a.CellAt(r, c) != b.CellAt(r, c) {
				t.Fatalf("cell (%d,%d) mismatch between identical runs", r, c)
			}
		}
	}
	ao, bo := a.Outbox(), b.Outbox()
	if len(ao) != len(bo) || string(ao[0]) != string(bo[0]) {
		t.Fatalf("outbox mismatch: a=%v b=%v", ao, bo)
	}
}

// TestFuzz_CursorNeverLeavesGrid feeds random bytes (including stray CSI
// introducers and parameters) and checks the universal invariant that the
// cursor always stays within the grid, regardless of input.
func TestFuzz_CursorNeverLeavesGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := NewEngine()
	buf := make([]byte, 4096)
	for i := range buf {
		buf[i] = byte(rng.Intn(256))
	}
	e.Feed(buf)

	cur := e.Cursor()
	if cur.Row < 0 || cur.Row >= Rows || cur.Col < 0 || cur.Col >= Cols {
		t.Fatalf("cursor escaped grid: %+v", cur)
	}
}

func TestAccumulateDigit_CapsAtSixteenBit(t *testing.T) {
	e := NewEngine()
	e.Feed([]byte("\x1b[999999999;1H"))
	// the oversized row parameter must still clamp to the grid, not panic
	// or wrap via integer overflow.
	cur := e.Cursor()
	if cur.Row != Rows-1 {
		t.Errorf("cursor row = %d, want %d", cur.Row, Rows-1)
	}
}

func TestOSC_SetTitleTerminatedByBEL_DoesNotTouchGrid(t *testing.T) {
	e := NewEngine()
	e.Feed([]byte("\x1b]0;My BBS\x07AB"))
	if got := e.Title(); got != "My BBS" {
		t.Errorf("Title() = %q, want %q", got, "My BBS")
	}
	if e.CellAt(0, 0).Glyph != 'A' || e.CellAt(0, 1).Glyph != 'B' {
		t.Error("OSC string leaked into the grid instead of being absorbed")
	}
}

func TestOSC_SetTitleTerminatedByST_IsParsed(t *testing.T) {
	e := NewEngine()
	e.Feed([]byte("\x1b]2;Remote Shell\x1b\\"))
	if got := e.Title(); got != "Remote Shell" {
		t.Errorf("Title() = %q, want %q", got, "Remote Shell")
	}
}

func TestOSC_UnrecognizedPsIsDiscardedNotStoredAsTitle(t *testing.T) {
	e := NewEngine()
	e.Feed([]byte("\x1b]1;Icon Name\x07"))
	if got := e.Title(); got != "" {
		t.Errorf("Title() = %q, want empty (Ps=1 is not a title code)", got)
	}
}
