package term

import "testing"

// TestScenario_DoubleBoxCorners exercises spec.md's first worked example:
// home the cursor, then draw a double-line top-left corner, a double
// horizontal run, and a double top-right corner.
func TestScenario_DoubleBoxCorners(t *testing.T) {
	e := NewEngine()
	e.Feed([]byte("\x1b[H"))
	e.Feed([]byte{0xC9, 0xCD, 0xBB})

	want := []byte{0xC9, 0xCD, 0xBB}
	for i, g := range want {
		if got := e.CellAt(0, i).Glyph; got != g {
			t.Errorf("cell (0,%d) glyph = 0x%02X, want 0x%02X", i, got, g)
		}
	}
	cur := e.Cursor()
	if cur.Row != 0 || cur.Col != 3 {
		t.Errorf("cursor after 3 glyphs = (%d,%d), want (0,3)", cur.Row, cur.Col)
	}
}

// TestScenario_SGRCombination exercises bold+fg+bg applied together, then
// a write, matching spec.md's second worked example.
func TestScenario_SGRCombination(t *testing.T) {
	e := NewEngine()
	e.Feed([]byte("\x1b[1;31;44m"))
	e.Feed([]byte("A"))

	cell := e.CellAt(0, 0)
	if cell.Glyph != 'A' {
		t.Fatalf("glyph = %q, want 'A'", cell.Glyph)
	}
	if cell.FG != 1 {
		t.Errorf("fg = %d, want 1 (red)", cell.FG)
	}
	if cell.BG != 4 {
		t.Errorf("bg = %d, want 4 (blue)", cell.BG)
	}
	if !cell.Attrs.Has(AttrBold) {
		t.Error("expected bold attribute set")
	}
}

// TestScenario_EraseLine exercises CSI K clearing from the cursor onward
// mid-row, leaving earlier columns untouched.
func TestScenario_EraseLine(t *testing.T) {
	e := NewEngine()
	e.Feed([]byte("\x1b[1;1HABCDEFGHIJ"))
	e.Feed([]byte("\x1b[1;6H"))
	e.Feed([]byte("\x1b[K"))

	for c := 0; c < 5; c++ {
		if got := e.CellAt(0, c).Glyph; got != "ABCDE"[c] {
			t.Errorf("cell (0,%d) = %q, want %q", c, got, "ABCDE"[c])
		}
	}
	for c := 5; c < Cols; c++ {
		if got := e.CellAt(0, c); got != DefaultCell() {
			t.Errorf("cell (0,%d) = %+v, want default after erase", c, got)
		}
	}
}

// TestScenario_SaveRestoreWithPen mirrors the save/restore worked example:
// set a pen, save, reset the pen, move, then restore both position and pen.
func TestScenario_SaveRestoreWithPen(t *testing.T) {
	e := NewEngine()
	e.Feed([]byte("\x1b[1;31m"))
	e.Feed([]byte("\x1b[s"))
	e.Feed([]byte("\x1b[0m"))
	e.Feed([]byte("\x1b[5;5H"))
	e.Feed([]byte("\x1b[u"))

	if pen := e.Pen(); pen.FG != 1 || !pen.Attrs.Has(AttrBold) {
		t.Errorf("pen after restore = %+v, want bold fg=1", pen)
	}
	if cur := e.Cursor(); cur.Row != 0 || cur.Col != 0 {
		t.Errorf("cursor after restore = (%d,%d), want (0,0)", cur.Row, cur.Col)
	}
}

// TestScenario_DSRResponse checks the exact outbound bytes for a cursor
// position report at a known, non-origin location.
func TestScenario_DSRResponse(t *testing.T) {
	e := NewEngine()
	e.Feed([]byte("\x1b[12;42H")) // 1-based row 12, col 42 -> 0-based (11,41)
	e.Feed([]byte("\x1b[6n"))

	out := e.Outbox()
	if len(out) != 1 {
		t.Fatalf("expected 1 response, got %d", len(out))
	}
	want := "\x1b[12;42R"
	if string(out[0]) != want {
		t.Errorf("DSR response = %q, want %q", out[0], want)
	}
}

func TestCSI_CursorMovementClampsToGrid(t *testing.T) {
	e := NewEngine()
	e.Feed([]byte("\x1b[999;999H"))
	cur := e.Cursor()
	if cur.Row != Rows-1 || cur.Col != Cols-1 {
		t.Errorf("cursor = (%d,%d), want (%d,%d)", cur.Row, cur.Col, Rows-1, Cols-1)
	}

	e.Feed([]byte("\x1b[999A"))
	if cur := e.Cursor(); cur.Row != 0 {
		t.Errorf("cursor row after CUU clamp = %d, want 0", cur.Row)
	}
}

func TestCSI_HomeAndExplicitOneOneAreEquivalent(t *testing.T) {
	a := NewEngine()
	b := NewEngine()
	a.Feed([]byte("\x1b[10;10H\x1b[H"))
	b.Feed([]byte("\x1b[10;10H\x1b[1;1H"))

	if a.Cursor() != b.Cursor() {
		t.Errorf("ESC[H cursor = %+v, ESC[1;1H cursor = %+v", a.Cursor(), b.Cursor())
	}
}

func TestCSI_EraseDisplay_EntireScreenIsAllDefault(t *testing.T) {
	e := NewEngine()
	e.Feed([]byte("\x1b[1;31mHELLO WORLD\x1b[10;10H\x1b[2J"))
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if got := e.CellAt(r, c); got != DefaultCell() {
				t.Fatalf("cell (%d,%d) = %+v after ESC[2J, want default", r, c, got)
			}
		}
	}
}

func TestCSI_CursorPosition_AbsentLeadingParamDefaultsToOne(t *testing.T) {
	e := NewEngine()
	// "ESC[;5H" — param 0 absent (defaults to 1), param 1 = 5.
	e.Feed([]byte("\x1b[;5H"))
	cur := e.Cursor()
	if cur.Row != 0 || cur.Col != 4 {
		t.Errorf("cursor = (%d,%d), want (0,4)", cur.Row, cur.Col)
	}
}

func TestCSI_TrailingParamsBeyondMaxAreDropped(t *testing.T) {
	e := NewEngine()
	seq := "\x1b["
	for i := 0; i < 20; i++ {
		if i > 0 {
			seq += ";"
		}
		seq += "1"
	}
	seq += "H"
	// Should not panic despite 20 ';'-separated parameters exceeding the 16 cap.
	e.Feed([]byte(seq))
	if cur := e.Cursor(); cur.Row != 0 || cur.Col != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", cur.Row, cur.Col)
	}
}

func TestCSI_DeviceAttributes_RepliesToPlainRequest(t *testing.T) {
	e := NewEngine()
	e.Feed([]byte("\x1b[c"))
	out := e.Outbox()
	if len(out) != 1 || string(out[0]) != "\x1b[?1;0c" {
		t.Errorf("DA response = %v, want [\x1b[?1;0c]", out)
	}
}

func TestCSI_CursorVisibility_PrivateModeToggle(t *testing.T) {
	e := NewEngine()
	if !e.CursorVisible() {
		t.Fatal("cursor should start visible")
	}
	e.Feed([]byte("\x1b[?25l"))
	if e.CursorVisible() {
		t.Error("cursor should be hidden after ESC[?25l")
	}
	e.Feed([]byte("\x1b[?25h"))
	if !e.CursorVisible() {
		t.Error("cursor should be visible again after ESC[?25h")
	}
}

func TestCSI_SGR_ClearAttributeSubcodes(t *testing.T) {
	e := NewEngine()
	e.Feed([]byte("\x1b[1;4;7m"))
	pen := e.Pen()
	if !pen.Attrs.Has(AttrBold | AttrUnderline | AttrReverse) {
		t.Fatalf("pen attrs = %v, want bold+underline+reverse set", pen.Attrs)
	}
	e.Feed([]byte("\x1b[22;24;27m"))
	pen = e.Pen()
	if pen.Attrs.Has(AttrBold | AttrUnderline | AttrReverse) {
		t.Errorf("pen attrs = %v, want bold+underline+reverse cleared", pen.Attrs)
	}
}

func TestCSI_ReverseVideo_SwapsForegroundAndBackgroundOnStamp(t *testing.T) {
	e := NewEngine()
	e.Feed([]byte("\x1b[31;44;7m"))
	e.Feed([]byte("R"))
	cell := e.CellAt(0, 0)
	if cell.FG != 4 || cell.BG != 1 {
		t.Errorf("reversed cell fg/bg = %d/%d, want 4/1", cell.FG, cell.BG)
	}
}
