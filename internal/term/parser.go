package term

// parserState is the byte-driven ANSI/VT100 state machine's current mode.
type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateCSI
	stateOSC
	stateOSCEscape
)

// maxParams bounds the CSI parameter list a final byte dispatches with;
// extra parameters are silently dropped.
const maxParams = 16

// absentParam marks a parameter position that never received a digit.
const absentParam = -1

// Feed processes bytes in order, mutating the grid. Feeding is a single
// uninterrupted unit of work — the engine never yields mid-call. Once
// Dispose has locked the engine, Feed is a no-op.
func (e *Engine) Feed(data []byte) {
	if e.locked {
		return
	}
	for _, b := range data {
		e.feedByte(b)
	}
}

func (e *Engine) feedByte(b byte) {
	switch e.state {
	case stateGround:
		e.feedGround(b)
	case stateEscape:
		e.feedEscape(b)
	case stateCSI:
		e.feedCSI(b)
	case stateOSC:
		e.feedOSC(b)
	case stateOSCEscape:
		e.feedOSCEscape(b)
	}
}

func (e *Engine) feedGround(b byte) {
	switch b {
	case 0x1B: // ESC
		e.state = stateEscape
	case 0x08: // BS
		if e.cursor.Col > 0 {
			e.cursor.Col--
			e.cursor.PendingWrap = false
			e.damage.markCursor()
		}
	case 0x09: // HT
		next := (e.cursor.Col/8 + 1) * 8
		e.cursor.Col = clamp(next, 0, Cols-1)
		e.cursor.PendingWrap = false
		e.damage.markCursor()
	case 0x0A: // LF
		e.lineFeed()
	case 0x0D: // CR
		e.cursor.Col = 0
		e.cursor.PendingWrap = false
		e.damage.markCursor()
	case 0x07: // BEL
		// ignore
	default:
		if b >= 0x20 {
			e.putByte(b)
		}
		// other C0 controls are silently ignored
	}
}

func (e *Engine) feedEscape(b byte) {
	switch b {
	case '[':
		e.state = stateCSI
		e.params = append(e.params[:0], absentParam)
		e.private = 0
		e.atCSIStart = true
	case '7': // DEC save cursor
		e.saveCursor()
		e.state = stateGround
	case '8': // DEC restore cursor
		e.restoreCursor()
		e.state = stateGround
	case 'D': // Index
		e.lineFeed()
		e.state = stateGround
	case 'M': // Reverse Index
		e.reverseLineFeed()
		e.state = stateGround
	case 'c': // RIS full reset
		e.fullReset()
		e.state = stateGround
	case ']': // OSC
		e.oscBuf = e.oscBuf[:0]
		e.state = stateOSC
	default:
		e.state = stateGround
	}
}

// feedOSC absorbs an OSC string until its terminator: BEL, or ESC \ (ST).
// Only the "0;" and "2;" (set title) forms are acted on; anything else is
// absorbed and discarded without touching the grid.
func (e *Engine) feedOSC(b byte) {
	switch b {
	case 0x07: // BEL terminates the string
		e.commitOSC()
		e.state = stateGround
	case 0x1B: // possible ST (ESC \)
		e.state = stateOSCEscape
	default:
		e.oscBuf = append(e.oscBuf, b)
	}
}

func (e *Engine) feedOSCEscape(b byte) {
	if b == '\\' {
		e.commitOSC()
		e.state = stateGround
		return
	}
	// not a valid ST: keep absorbing, including the ESC byte itself
	e.oscBuf = append(e.oscBuf, 0x1B, b)
	e.state = stateOSC
}

// commitOSC parses the accumulated "Ps;Pt" OSC body and, for Ps 0 or 2,
// stores Pt as the engine's title. Any other Ps is discarded.
func (e *Engine) commitOSC() {
	body := e.oscBuf
	semi := -1
	for i, c := range body {
		if c == ';' {
			semi = i
			break
		}
	}
	if semi < 0 {
		return
	}
	ps := string(body[:semi])
	if ps == "0" || ps == "2" {
		e.title = string(body[semi+1:])
	}
}

func (e *Engine) feedCSI(b byte) {
	switch {
	case b == '?' && e.atCSIStart:
		e.private = '?'
		e.atCSIStart = false
	case b >= '0' && b <= '9':
		e.accumulateDigit(b - '0')
		e.atCSIStart = false
	case b == ';':
		e.nextParam()
		e.atCSIStart = false
	case b >= 0x40 && b <= 0x7E:
		if len(e.params) > maxParams {
			e.params = e.params[:maxParams]
		}
		e.dispatchCSI(b)
		e.state = stateGround
	default:
		// unrecognized intermediate byte (0x20-0x2F, '>', '!', ...):
		// consumed silently, stays in CSI
		e.atCSIStart = false
	}
}

func (e *Engine) accumulateDigit(d byte) {
	last := len(e.params) - 1
	if e.params[last] == absentParam {
		e.params[last] = 0
	}
	v := e.params[last]*10 + int(d)
	if v > 65535 {
		v = 65535
	}
	e.params[last] = v
}

// nextParam starts a new parameter. Past maxParams, one extra scratch slot
// absorbs the digits of every dropped parameter; feedCSI cuts it off
// before dispatch, so the accepted parameters are never altered.
func (e *Engine) nextParam() {
	if len(e.params) > maxParams {
		return
	}
	e.params = append(e.params, absentParam)
}

// param returns the 0-based i-th parameter, substituting def when the
// parameter is absent or explicitly zero — the behavior most CSI final
// bytes want ("ESC[H" and "ESC[0H" both mean row 1).
func (e *Engine) param(i, def int) int {
	if i < 0 || i >= len(e.params) || e.params[i] == absentParam || e.params[i] == 0 {
		return def
	}
	return e.params[i]
}

// paramRaw is like param but preserves an explicit 0, which SGR needs to
// distinguish "CSI 0 m" (reset) from "CSI m" (also reset, but via an
// empty list) from a following "CSI 30 m" (not reset).
func (e *Engine) paramRaw(i, def int) int {
	if i < 0 || i >= len(e.params) || e.params[i] == absentParam {
		return def
	}
	return e.params[i]
}
