package vt

// Cursor is the terminal's current write position plus its visibility.
//
// X ranges over [0, width]: X == width is the transient "pending wrap"
// state described in spec §3/§4.4 — the cursor sits one column past the
// right margin, awaiting the next printed character, and is not wrapped
// to the next line until that character actually arrives (so a cursor
// sitting at the margin after printing the last column, with no further
// output, stays visually on that row).
type Cursor struct {
	X, Y    int
	Visible bool
}

// savedCursor is the DECSC/DECRC (and CSI s / CSI u) slot: position,
// style and charset state at the moment of the save, one per screen
// buffer per spec §3.
type savedCursor struct {
	valid   bool
	x, y    int
	style   Style
	charset charsetState
}
