package term

// scrollRegionTop returns the 0-based top row of the active scroll region.
func (e *Engine) scrollRegionTop() int {
	if e.scrollTop > 0 {
		return e.scrollTop - 1
	}
	return 0
}

// scrollRegionBottom returns the 0-based bottom row (inclusive) of the
// active scroll region.
func (e *Engine) scrollRegionBottom() int {
	if e.scrollBottom > 0 && e.scrollBottom <= Rows {
		return e.scrollBottom - 1
	}
	return Rows - 1
}

// setScrollRegion implements DECSTBM (CSI r).
func (e *Engine) setScrollRegion(top, bottom int) {
	if top < 1 {
		top = 1
	}
	if bottom < 1 || bottom > Rows {
		bottom = Rows
	}
	if top >= bottom {
		e.scrollTop = 0
		e.scrollBottom = 0
		return
	}
	e.scrollTop = top
	e.scrollBottom = bottom
}

// scrollUp shifts the scroll region's rows up by one, discarding the top
// row and filling the bottom with default cells. No scrollback is kept.
func (e *Engine) scrollUp() {
	top, bottom := e.scrollRegionTop(), e.scrollRegionBottom()
	if top >= bottom {
		return
	}
	for r := top; r < bottom; r++ {
		copy(e.cells[idx(r, 0):idx(r, 0)+Cols], e.cells[idx(r+1, 0):idx(r+1, 0)+Cols])
	}
	e.clearCells(idx(bottom, 0), idx(bottom, 0)+Cols)
	for r := top; r <= bottom; r++ {
		e.damage.markRow(r)
	}
}

// scrollDown shifts the scroll region's rows down by one (reverse index).
func (e *Engine) scrollDown() {
	top, bottom := e.scrollRegionTop(), e.scrollRegionBottom()
	if top >= bottom {
		return
	}
	for r := bottom; r > top; r-- {
		copy(e.cells[idx(r, 0):idx(r, 0)+Cols], e.cells[idx(r-1, 0):idx(r-1, 0)+Cols])
	}
	e.clearCells(idx(top, 0), idx(top, 0)+Cols)
	for r := top; r <= bottom; r++ {
		e.damage.markRow(r)
	}
}

// lineFeed moves the cursor down one row, scrolling the active region if
// already at its bottom.
func (e *Engine) lineFeed() {
	bottom := e.scrollRegionBottom()
	if e.cursor.Row == bottom {
		e.scrollUp()
	} else if e.cursor.Row < Rows-1 {
		e.cursor.Row++
		e.damage.markCursor()
	}
}

// reverseLineFeed moves the cursor up one row, scrolling down if already
// at the region's top.
func (e *Engine) reverseLineFeed() {
	top := e.scrollRegionTop()
	if e.cursor.Row == top {
		e.scrollDown()
	} else if e.cursor.Row > 0 {
		e.cursor.Row--
		e.damage.markCursor()
	}
}

// putByte stamps the current pen at the cursor and advances it, honoring
// the pending-wrap rule: writing column 79 sets pending-wrap instead of
// advancing; the next printable byte clears it, does CR+LF, then writes.
func (e *Engine) putByte(b byte) {
	if e.cursor.PendingWrap {
		e.cursor.PendingWrap = false
		e.cursor.Col = 0
		e.lineFeed()
	}
	e.cells[idx(e.cursor.Row, e.cursor.Col)] = e.pen.stamp(b)
	e.damage.markRow(e.cursor.Row)
	e.damage.markCursor()
	if e.cursor.Col == Cols-1 {
		e.cursor.PendingWrap = true
	} else {
		e.cursor.Col++
	}
}

// eraseDisplay implements CSI J. mode: 0=cursor-to-end, 1=start-to-cursor,
// 2=entire screen (cursor unchanged).
func (e *Engine) eraseDisplay(mode int) {
	blank := DefaultCell()
	switch mode {
	case 0:
		for c := e.cursor.Col; c < Cols; c++ {
			e.cells[idx(e.cursor.Row, c)] = blank
		}
		for r := e.cursor.Row + 1; r < Rows; r++ {
			e.clearCells(idx(r, 0), idx(r, 0)+Cols)
		}
		for r := e.cursor.Row; r < Rows; r++ {
			e.damage.markRow(r)
		}
	case 1:
		for r := 0; r < e.cursor.Row; r++ {
			e.clearCells(idx(r, 0), idx(r, 0)+Cols)
		}
		for c := 0; c <= e.cursor.Col && c < Cols; c++ {
			e.cells[idx(e.cursor.Row, c)] = blank
		}
		for r := 0; r <= e.cursor.Row; r++ {
			e.damage.markRow(r)
		}
	case 2:
		e.clearCells(0, NumCells)
		e.damage.markAll()
	}
}

// eraseLine implements CSI K. mode: 0=cursor-to-EOL, 1=BOL-to-cursor,
// 2=entire line.
func (e *Engine) eraseLine(mode int) {
	blank := DefaultCell()
	switch mode {
	case 0:
		for c := e.cursor.Col; c < Cols; c++ {
			e.cells[idx(e.cursor.Row, c)] = blank
		}
	case 1:
		for c := 0; c <= e.cursor.Col && c < Cols; c++ {
			e.cells[idx(e.cursor.Row, c)] = blank
		}
	case 2:
		for c := 0; c < Cols; c++ {
			e.cells[idx(e.cursor.Row, c)] = blank
		}
	}
	e.damage.markRow(e.cursor.Row)
}

// eraseChars blanks n cells starting at the cursor, without shifting.
func (e *Engine) eraseChars(n int) {
	blank := DefaultCell()
	for i := 0; i < n && e.cursor.Col+i < Cols; i++ {
		e.cells[idx(e.cursor.Row, e.cursor.Col+i)] = blank
	}
	e.damage.markRow(e.cursor.Row)
}

// insertChars shifts the rest of the row right by n, filling with blanks.
func (e *Engine) insertChars(n int) {
	row := e.cursor.Row
	base := idx(row, 0)
	for i := Cols - 1; i >= e.cursor.Col+n; i-- {
		e.cells[base+i] = e.cells[base+i-n]
	}
	blank := DefaultCell()
	for i := e.cursor.Col; i < e.cursor.Col+n && i < Cols; i++ {
		e.cells[base+i] = blank
	}
	e.damage.markRow(row)
}

// deleteChars shifts the rest of the row left by n, filling the tail with
// blanks.
func (e *Engine) deleteChars(n int) {
	row := e.cursor.Row
	base := idx(row, 0)
	blank := DefaultCell()
	for i := e.cursor.Col; i < Cols; i++ {
		if i+n < Cols {
			e.cells[base+i] = e.cells[base+i+n]
		} else {
			e.cells[base+i] = blank
		}
	}
	e.damage.markRow(row)
}

// insertLines inserts n blank lines at the cursor row within the scroll
// region, pushing content down.
func (e *Engine) insertLines(n int) {
	bottom := e.scrollRegionBottom()
	for i := 0; i < n && e.cursor.Row <= bottom; i++ {
		for r := bottom; r > e.cursor.Row; r-- {
			copy(e.cells[idx(r, 0):idx(r, 0)+Cols], e.cells[idx(r-1, 0):idx(r-1, 0)+Cols])
		}
		e.clearCells(idx(e.cursor.Row, 0), idx(e.cursor.Row, 0)+Cols)
	}
	for r := e.cursor.Row; r <= bottom; r++ {
		e.damage.markRow(r)
	}
}

// deleteLines deletes n lines at the cursor row within the scroll region,
// pulling content up.
func (e *Engine) deleteLines(n int) {
	bottom := e.scrollRegionBottom()
	for i := 0; i < n && e.cursor.Row <= bottom; i++ {
		for r := e.cursor.Row; r < bottom; r++ {
			copy(e.cells[idx(r, 0):idx(r, 0)+Cols], e.cells[idx(r+1, 0):idx(r+1, 0)+Cols])
		}
		e.clearCells(idx(bottom, 0), idx(bottom, 0)+Cols)
	}
	for r := e.cursor.Row; r <= bottom; r++ {
		e.damage.markRow(r)
	}
}
