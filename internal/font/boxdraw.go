package font

// Line-drawing positions within the 8x14 cell: centerX is column 3, half a
// pixel left of the cell's true center (3.5), so verticals line up with
// adjacent cells the way DOS box-drawing fonts render them.
const (
	centerX = 3
	centerY = 6
)

// hLine draws a horizontal line of the given thickness (in rows) starting
// at row y and extending downward, spanning columns [x0, x1).
func hLine(g *Glyph, x0, x1, y, thickness int) {
	for row := y; row < y+thickness; row++ {
		if row < 0 || row >= Height {
			continue
		}
		for x := x0; x < x1 && x < Width; x++ {
			if x < 0 {
				continue
			}
			g[row] |= 0x80 >> uint(x)
		}
	}
}

// vLine draws a vertical line of the given pixel thickness starting at
// column x and extending rightward, spanning rows [y0, y1).
func vLine(g *Glyph, x, y0, y1, thickness int) {
	for col := x; col < x+thickness; col++ {
		if col < 0 || col >= Width {
			continue
		}
		for row := y0; row < y1 && row < Height; row++ {
			if row < 0 {
				continue
			}
			g[row] |= 0x80 >> uint(col)
		}
	}
}

// buildSingleBox draws a single-line box-drawing glyph. Each of up/down/
// left/right is a "reach" flag: whether the line extends from the center
// toward that edge.
func buildSingleBox(up, down, left, right bool) Glyph {
	var g Glyph
	if up {
		vLine(&g, centerX, 0, centerY+1, 1)
	}
	if down {
		vLine(&g, centerX, centerY, Height, 1)
	}
	if left {
		hLine(&g, 0, centerX+1, centerY, 1)
	}
	if right {
		hLine(&g, centerX, Width, centerY, 1)
	}
	return g
}

// buildDoubleBox draws a double-line box-drawing glyph using two parallel
// strokes two pixels apart, the classic CP437 double-line convention.
func buildDoubleBox(up, down, left, right bool) Glyph {
	var g Glyph
	const gap = 2
	if up {
		vLine(&g, centerX-gap/2, 0, centerY+1, 1)
		vLine(&g, centerX+gap/2, 0, centerY+1, 1)
	}
	if down {
		vLine(&g, centerX-gap/2, centerY, Height, 1)
		vLine(&g, centerX+gap/2, centerY, Height, 1)
	}
	if left {
		hLine(&g, 0, centerX+1, centerY-1, 1)
		hLine(&g, 0, centerX+1, centerY+1, 1)
	}
	if right {
		hLine(&g, centerX, Width, centerY-1, 1)
		hLine(&g, centerX, Width, centerY+1, 1)
	}
	return g
}

// shadeGlyph returns a dither pattern at the given density out of 4
// (1=light shade 0xB0, 2=medium 0xB1, 3=dark shade 0xB2).
func shadeGlyph(density int) Glyph {
	var g Glyph
	for y := 0; y < Height; y++ {
		var row byte
		for x := 0; x < Width; x++ {
			if (x+y*2)%4 < density {
				row |= 0x80 >> uint(x)
			}
		}
		g[y] = row
	}
	return g
}

func fullBlock() Glyph {
	var g Glyph
	for y := range g {
		g[y] = 0xFF
	}
	return g
}

// blockGlyph fills a rectangular sub-region of the cell solid, used for the
// half-block glyphs 0xDC-0xDF.
func blockGlyph(x0, y0, x1, y1 int) Glyph {
	var g Glyph
	hLine(&g, x0, x1, y0, y1-y0)
	return g
}

// addBoxDrawingGlyphs fills in the CP437 176-223 line-drawing and block
// range. The mapping follows the standard CP437 layout.
func addBoxDrawingGlyphs(t *[256]Glyph) {
	t[0xB0] = shadeGlyph(1)
	t[0xB1] = shadeGlyph(2)
	t[0xB2] = shadeGlyph(3)

	t[0xB3] = buildSingleBox(true, true, false, false)   // │
	t[0xB4] = buildSingleBox(true, true, true, false)    // ┤
	t[0xB5] = buildDoubleBox(true, true, true, false)     // approx ╡
	t[0xB6] = buildSingleBox(true, true, true, false)
	t[0xB7] = buildSingleBox(true, true, true, false)
	t[0xB8] = buildSingleBox(true, true, true, false)
	t[0xB9] = buildDoubleBox(true, true, true, false)     // ╣
	t[0xBA] = buildDoubleBox(true, true, false, false)    // ║
	t[0xBB] = buildDoubleBox(false, true, true, false)    // ╗
	t[0xBC] = buildDoubleBox(true, false, true, false)    // ╝
	t[0xBD] = buildSingleBox(false, true, true, false)
	t[0xBE] = buildSingleBox(true, false, true, false)
	t[0xBF] = buildSingleBox(false, true, true, false)    // ┐

	t[0xC0] = buildSingleBox(true, false, false, true)    // └
	t[0xC1] = buildSingleBox(true, false, true, true)     // ┴
	t[0xC2] = buildSingleBox(false, true, true, true)     // ┬
	t[0xC3] = buildSingleBox(true, true, false, true)     // ├
	t[0xC4] = buildSingleBox(false, false, true, true)    // ─
	t[0xC5] = buildSingleBox(true, true, true, true)      // ┼
	t[0xC6] = buildDoubleBox(true, true, false, true)
	t[0xC7] = buildDoubleBox(true, true, false, true)
	t[0xC8] = buildDoubleBox(true, false, false, true)    // ╚
	t[0xC9] = buildDoubleBox(false, true, false, true)    // ╔
	t[0xCA] = buildDoubleBox(true, false, true, true)     // ╩
	t[0xCB] = buildDoubleBox(false, true, true, true)     // ╦
	t[0xCC] = buildDoubleBox(true, true, false, true)     // ╠
	t[0xCD] = buildDoubleBox(false, false, true, true)    // ═
	t[0xCE] = buildDoubleBox(true, true, true, true)      // ╬
	t[0xCF] = buildSingleBox(true, true, true, true)

	t[0xD0] = buildSingleBox(true, true, true, true)
	t[0xD1] = buildSingleBox(true, true, true, true)
	t[0xD2] = buildSingleBox(false, true, true, true)
	t[0xD3] = buildSingleBox(true, false, false, true)
	t[0xD4] = buildSingleBox(true, false, false, true)
	t[0xD5] = buildSingleBox(false, true, false, true)
	t[0xD6] = buildSingleBox(false, true, false, true)
	t[0xD7] = buildSingleBox(true, true, true, true)
	t[0xD8] = buildSingleBox(true, true, true, true)
	t[0xD9] = buildSingleBox(true, false, true, false)    // ┘
	t[0xDA] = buildSingleBox(false, true, false, true)    // ┌

	t[0xDB] = fullBlock()                     // █
	t[0xDC] = blockGlyph(0, centerY, Width, Height) // ▄ lower half
	t[0xDD] = blockGlyph(0, 0, centerX+1, Height)   // ▌ left half
	t[0xDE] = blockGlyph(centerX, 0, Width, Height)  // ▐ right half
	t[0xDF] = blockGlyph(0, 0, Width, centerY)      // ▀ upper half
}
