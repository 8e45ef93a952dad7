package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/patrick-goecommerce/cp437term/internal/palette"
	"github.com/patrick-goecommerce/cp437term/internal/term"
)

// cp437ToRune maps the CP437 codepoints art actually uses — box drawing,
// block shading, a handful of line-art symbols — onto their Unicode
// equivalents so a real host terminal renders something recognizable.
// Printable ASCII (0x20-0x7E) maps to itself; anything else becomes '?'.
var cp437ToRune = map[byte]rune{
	0xB0: '░', 0xB1: '▒', 0xB2: '▓', 0xB3: '│', 0xB4: '┤',
	0xB9: '╣', 0xBA: '║', 0xBB: '╗', 0xBC: '╝', 0xBD: '╜',
	0xBE: '╛', 0xBF: '┐', 0xC0: '└', 0xC1: '┴', 0xC2: '┬',
	0xC3: '├', 0xC4: '─', 0xC5: '┼', 0xC6: '╞', 0xC7: '╟',
	0xC8: '╚', 0xC9: '╔', 0xCA: '╩', 0xCB: '╦', 0xCC: '╠',
	0xCD: '═', 0xCE: '╬', 0xCF: '╧', 0xD0: '╨', 0xD1: '╤',
	0xD2: '╥', 0xD3: '╙', 0xD4: '╘', 0xD5: '╒', 0xD6: '╓',
	0xD7: '╫', 0xD8: '╪', 0xD9: '┘', 0xDA: '┌', 0xDB: '█',
	0xDC: '▄', 0xDD: '▌', 0xDE: '▐', 0xDF: '▀',
}

func glyphRune(cp byte) rune {
	if r, ok := cp437ToRune[cp]; ok {
		return r
	}
	if cp >= 0x20 && cp < 0x7F {
		return rune(cp)
	}
	return '?'
}

// ansiHex turns a palette entry into the "#RRGGBB" form lipgloss.Color
// expects, via go-colorful rather than hand-rolled hex digit lookup.
func ansiHex(c palette.RGB) lipgloss.Color {
	col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return lipgloss.Color(col.Hex())
}

// renderGrid draws the engine's 80x25 grid as lipgloss-styled text, one
// style run per cell (no run-length merging — simple, and fast enough
// for an 80x25 grid at 30fps).
func renderGrid(e *term.Engine, pal palette.Palette, blinkOn bool) string {
	var rows strings.Builder
	for r := 0; r < term.Rows; r++ {
		var row strings.Builder
		for c := 0; c < term.Cols; c++ {
			cell := e.CellAt(r, c)
			fgIdx := cell.FG
			if cell.Attrs.Has(term.AttrBold) {
				fgIdx = palette.Bright(fgIdx)
			}
			fg, bg := pal.At(fgIdx), pal.At(cell.BG)
			if cell.Attrs.Has(term.AttrConceal) || (cell.Attrs.Has(term.AttrBlink) && !blinkOn) {
				fg = bg
			}

			style := lipgloss.NewStyle().Foreground(ansiHex(fg)).Background(ansiHex(bg))
			if cell.Attrs.Has(term.AttrBold) {
				style = style.Bold(true)
			}
			if cell.Attrs.Has(term.AttrUnderline) {
				style = style.Underline(true)
			}
			row.WriteString(style.Render(string(glyphRune(cell.Glyph))))
		}
		rows.WriteString(row.String())
		if r < term.Rows-1 {
			rows.WriteByte('\n')
		}
	}
	return rows.String()
}
