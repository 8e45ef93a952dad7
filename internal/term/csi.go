package term

import "strconv"

// dispatchCSI executes a complete CSI sequence given its final byte. All
// cursor destinations clamp to the grid; missing numeric parameters
// default to 1 unless a case says otherwise.
func (e *Engine) dispatchCSI(cmd byte) {
	switch cmd {
	case 'A': // Cursor Up
		e.moveRel(-e.param(0, 1), 0)
	case 'B': // Cursor Down
		e.moveRel(e.param(0, 1), 0)
	case 'C': // Cursor Forward
		e.moveRel(0, e.param(0, 1))
	case 'D': // Cursor Back
		e.moveRel(0, -e.param(0, 1))
	case 'E': // Cursor Next Line
		e.moveTo(e.cursor.Row+e.param(0, 1), 0)
	case 'F': // Cursor Previous Line
		e.moveTo(e.cursor.Row-e.param(0, 1), 0)
	case 'G': // Cursor Horizontal Absolute
		e.moveTo(e.cursor.Row, e.param(0, 1)-1)
	case 'H', 'f': // Cursor Position
		row := e.param(0, 1)
		col := e.param(1, 1)
		e.moveTo(row-1, col-1)
	case 'd': // Vertical Position Absolute
		e.moveTo(e.param(0, 1)-1, e.cursor.Col)
	case 'J': // Erase in Display
		e.eraseDisplay(e.paramRaw(0, 0))
	case 'K': // Erase in Line
		e.eraseLine(e.paramRaw(0, 0))
	case 'L': // Insert Lines
		e.insertLines(e.param(0, 1))
	case 'M': // Delete Lines
		e.deleteLines(e.param(0, 1))
	case 'P': // Delete Characters
		e.deleteChars(e.param(0, 1))
	case '@': // Insert Characters
		e.insertChars(e.param(0, 1))
	case 'X': // Erase Characters
		e.eraseChars(e.param(0, 1))
	case 'S': // Scroll Up
		for i, n := 0, e.param(0, 1); i < n; i++ {
			e.scrollUp()
		}
	case 'T': // Scroll Down
		for i, n := 0, e.param(0, 1); i < n; i++ {
			e.scrollDown()
		}
	case 'r': // DECSTBM Set Scrolling Region
		e.setScrollRegion(e.param(0, 1), e.paramRaw(1, Rows))
	case 's': // Save Cursor
		e.saveCursor()
	case 'u': // Restore Cursor
		e.restoreCursor()
	case 'h', 'l':
		e.dispatchMode(cmd == 'h')
	case 'n': // Device Status Report
		e.dispatchDSR()
	case 'c': // Device Attributes
		if e.private == '?' || e.private == 0 {
			e.queueResponse([]byte("\x1b[?1;0c"))
		}
	case 'm': // SGR
		e.dispatchSGR()
	}
}

// dispatchMode handles CSI ? 25 h/l, the only private mode this engine
// recognizes: cursor visibility. It never touches the grid.
func (e *Engine) dispatchMode(set bool) {
	if e.private != '?' {
		return
	}
	if e.param(0, 0) == 25 {
		e.cursorVisible = set
	}
}

// dispatchDSR answers CSI 6n (cursor position report) and CSI 5n (device
// OK) by queueing the reply on the outbox for the host to drain.
func (e *Engine) dispatchDSR() {
	switch e.param(0, 0) {
	case 6:
		row := e.cursor.Row + 1
		col := e.cursor.Col + 1
		e.queueResponse([]byte(formatCPR(row, col)))
	case 5:
		e.queueResponse([]byte("\x1b[0n"))
	}
}

func formatCPR(row, col int) string {
	return "\x1b[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "R"
}

// dispatchSGR applies every parameter in the list left-to-right against
// the pen, per spec.md's SGR table.
func (e *Engine) dispatchSGR() {
	if len(e.params) == 1 && e.params[0] == absentParam {
		e.pen.Reset()
		return
	}
	for i := range e.params {
		p := e.paramRaw(i, 0)
		switch {
		case p == 0:
			e.pen.Reset()
		case p == 1:
			e.pen.Attrs |= AttrBold
		case p == 2:
			e.pen.Attrs |= AttrDim
		case p == 4:
			e.pen.Attrs |= AttrUnderline
		case p == 5:
			e.pen.Attrs |= AttrBlink
		case p == 7:
			e.pen.Attrs |= AttrReverse
		case p == 8:
			e.pen.Attrs |= AttrConceal
		case p == 22:
			e.pen.Attrs &^= AttrBold | AttrDim
		case p == 24:
			e.pen.Attrs &^= AttrUnderline
		case p == 25:
			e.pen.Attrs &^= AttrBlink
		case p == 27:
			e.pen.Attrs &^= AttrReverse
		case p == 28:
			e.pen.Attrs &^= AttrConceal
		case p >= 30 && p <= 37:
			e.pen.FG = p - 30
		case p == 39:
			e.pen.FG = 7
		case p >= 40 && p <= 47:
			e.pen.BG = p - 40
		case p == 49:
			e.pen.BG = 0
		case p >= 90 && p <= 97:
			e.pen.FG = (p - 90) + 8
		case p >= 100 && p <= 107:
			e.pen.BG = (p - 100) + 8
		}
	}
}
