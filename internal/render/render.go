// Package render rasterizes a term.Engine's grid into an RGBA pixel
// surface: an 8x14 glyph scaled 3x4 per cell, the way the CGA emulator in
// the retrieved examples blits its own fixed-width font into a frame
// buffer, adapted here to the wider CP437 cell and the engine's damage
// tracking instead of a dirty-memory bitmap.
package render

import (
	"image"
	"image/color"

	"github.com/patrick-goecommerce/cp437term/internal/font"
	"github.com/patrick-goecommerce/cp437term/internal/palette"
	"github.com/patrick-goecommerce/cp437term/internal/term"
)

// ScaleX and ScaleY are the glyph-to-pixel scale factors spec.md fixes:
// an 8x14 font cell becomes a 24x56 destination cell.
const (
	ScaleX = 3
	ScaleY = 4

	CellWidth  = font.Width * ScaleX
	CellHeight = font.Height * ScaleY

	Width  = term.Cols * CellWidth
	Height = term.Rows * CellHeight
)

// NewFrame allocates a full-size RGBA surface, sized for the whole grid.
func NewFrame() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, Width, Height))
}

// Frame paints every cell of e into a freshly allocated surface using
// pal, ignoring damage tracking. blinkOn selects the visible phase of the
// 2Hz blink cycle the caller's scheduler drives.
func Frame(e *term.Engine, pal palette.Palette, blinkOn bool) *image.RGBA {
	img := NewFrame()
	for r := 0; r < term.Rows; r++ {
		for c := 0; c < term.Cols; c++ {
			paintCell(img, e, pal, blinkOn, r, c)
		}
	}
	paintCursor(img, e, pal)
	return img
}

// Paint updates only the rows (and cursor cell) e reports dirty via
// SnapshotDamage, plus every blinking cell, blitting into an existing
// surface. Callers reuse img across frames and pass blinkOn themselves so
// a pure blink toggle with no other damage still repaints the right cells.
func Paint(img *image.RGBA, e *term.Engine, pal palette.Palette, blinkOn bool) {
	d := e.SnapshotDamage()
	dirty := d.DirtyRows()
	for r := 0; r < term.Rows; r++ {
		for c := 0; c < term.Cols; c++ {
			if dirty[r] || e.CellAt(r, c).Attrs.Has(term.AttrBlink) {
				paintCell(img, e, pal, blinkOn, r, c)
			}
		}
	}
	if d.CursorDirty() || dirty[e.Cursor().Row] {
		paintCursor(img, e, pal)
	}
}

func paintCell(img *image.RGBA, e *term.Engine, pal palette.Palette, blinkOn bool, row, col int) {
	cell := e.CellAt(row, col)
	fg, bg := resolveColors(cell, pal, blinkOn)
	glyph := font.Lookup(cell.Glyph)

	ox, oy := col*CellWidth, row*CellHeight
	for gy := 0; gy < font.Height; gy++ {
		underline := cell.Attrs.Has(term.AttrUnderline) && gy >= font.Height-2
		for gx := 0; gx < font.Width; gx++ {
			on := glyph.Set(gx, gy) || underline
			px := fg
			if !on {
				px = bg
			}
			fillBlock(img, ox+gx*ScaleX, oy+gy*ScaleY, px)
		}
	}
}

// resolveColors applies conceal and blink-suppression on top of the
// cell's stored colors. Reverse video is already baked into FG/BG by the
// pen at stamp time (see term.Pen.stamp), so it needs no handling here.
func resolveColors(cell term.Cell, pal palette.Palette, blinkOn bool) (color.RGBA, color.RGBA) {
	fgIdx, bgIdx := cell.FG, cell.BG
	if cell.Attrs.Has(term.AttrBold) {
		fgIdx = palette.Bright(fgIdx)
	}
	fg := toRGBA(pal.At(fgIdx))
	bg := toRGBA(pal.At(bgIdx))

	if cell.Attrs.Has(term.AttrConceal) {
		fg = bg
	}
	if cell.Attrs.Has(term.AttrBlink) && !blinkOn {
		fg = bg
	}
	if cell.Attrs.Has(term.AttrDim) {
		fg = dim(fg)
	}
	return fg, bg
}

func dim(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}

func toRGBA(c palette.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

func fillBlock(img *image.RGBA, x, y int, c color.RGBA) {
	for dy := 0; dy < ScaleY; dy++ {
		for dx := 0; dx < ScaleX; dx++ {
			img.SetRGBA(x+dx, y+dy, c)
		}
	}
}

func paintCursor(img *image.RGBA, e *term.Engine, pal palette.Palette) {
	if !e.CursorVisible() {
		return
	}
	cur := e.Cursor()
	cell := e.CellAt(cur.Row, cur.Col)
	fg := toRGBA(pal.At(cell.FG))
	ox, oy := cur.Col*CellWidth, cur.Row*CellHeight
	// underline-style block cursor occupying the glyph's bottom two rows,
	// matching the common DOS/BBS terminal cursor shape.
	for gy := font.Height - 2; gy < font.Height; gy++ {
		for gx := 0; gx < font.Width; gx++ {
			fillBlock(img, ox+gx*ScaleX, oy+gy*ScaleY, fg)
		}
	}
}
