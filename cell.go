package vt

// Cell is a single displayable grid position: a Style plus a grapheme.
// The default Cell is a space in the default style.
type Cell struct {
	Style Style
	Ch    rune

	// Continuation marks the right half of a wide (East-Asian double
	// width) character: it carries the same Style as its lead cell but no
	// glyph of its own, per spec §9 ("wide characters... occupy two
	// adjacent cells with the second marked as a continuation cell").
	Continuation bool
}

// defaultCell is the value every Buffer position starts as, and the value
// out-of-bounds reads return.
var defaultCell = Cell{Ch: ' '}

// Rune returns the cell's displayable rune, or a space for a continuation
// cell (which has no glyph of its own).
func (c Cell) Rune() rune {
	if c.Continuation {
		return ' '
	}
	if c.Ch == 0 {
		return ' '
	}
	return c.Ch
}
