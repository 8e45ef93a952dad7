package term

// Pen is the current drawing style: the fg/bg/attrs stamped onto newly
// written cells. SGR sequences mutate the pen; writes copy it onto cells.
type Pen struct {
	FG    int
	BG    int
	Attrs Attrs
}

// DefaultPen is fg=7, bg=0, no attrs — the SGR-0 state.
func DefaultPen() Pen {
	return Pen{FG: 7, BG: 0}
}

// Reset restores the pen to defaults in place.
func (p *Pen) Reset() {
	*p = DefaultPen()
}

// stamp produces the Cell this pen would write for glyph g, applying
// reverse-video (fg/bg swap) if the reverse attribute is set.
func (p Pen) stamp(g byte) Cell {
	fg, bg := p.FG, p.BG
	if p.Attrs.Has(AttrReverse) {
		fg, bg = bg, fg
	}
	return Cell{Glyph: g, FG: fg, BG: bg, Attrs: p.Attrs}
}
