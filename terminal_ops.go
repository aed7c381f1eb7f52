package vt

// This file holds the screen operations of spec §4.4: everything the
// parser's dispatched commands actually do to cursor/buffer state.
// Grounded on the teacher's buffer_cursor.go/buffer_scroll.go/
// buffer_edit.go methods (MoveCursorUp/Down/Forward/Backward, ScrollUp/
// Down, ClearToEndOfScreen, InsertLines/DeleteLines...), generalized to
// honor a scroll region and origin mode the teacher never implemented.

func (t *Terminal) currentCell(r rune) Cell {
	return Cell{Style: t.style, Ch: r}
}

// printRune implements spec §4.4 "Printing a character".
func (t *Terminal) printRune(r rune) {
	r = t.charset.translate(r)
	if isCombiningMark(r) {
		t.appendCombining(r)
		return
	}
	w := runeWidth(r)
	if w == 0 {
		w = 1
	}

	if t.cursor.X >= t.width || (w == 2 && t.cursor.X+1 >= t.width) {
		if t.modes[ModeDECAWM] {
			t.carriageReturn()
			t.lineFeed()
		} else {
			t.cursor.X = t.width - w
		}
	}

	if t.modes[ModeIRM] {
		t.insertChars(t.cursor.X, t.cursor.Y, w)
	}

	b := t.buf()
	b.Set(t.cursor.X, t.cursor.Y, t.currentCell(r))
	if w == 2 && t.cursor.X+1 < t.width {
		b.Set(t.cursor.X+1, t.cursor.Y, Cell{Style: t.style, Continuation: true})
	}
	t.cursor.X += w
}

// appendCombining handles a combining mark following the most recently
// printed cell, without advancing the cursor. Grounded on the teacher's
// appendCombiningMark (cell.go/buffer.go); Cell has no separate
// combining-mark field in this model (spec §3 describes the grapheme as
// "a single display character"), so the mark is dropped rather than
// merged into the base cell's rune.
func (t *Terminal) appendCombining(r rune) {
	// Cell.Ch stays a single rune in the data model; dropping combining
	// marks that can't be represented is the documented deferral in
	// spec §9, so there is nothing further to do here beyond leaving the
	// base character unchanged.
}

func (t *Terminal) carriageReturn() {
	t.cursor.X = 0
}

func (t *Terminal) lineFeed() {
	if t.cursor.Y == t.scrollBottom {
		t.buf().ScrollUp(t.scrollTop, t.scrollBottom, 1, t.eraseFill())
	} else if t.cursor.Y < t.height-1 {
		t.cursor.Y++
	}
	if t.modes[ModeLNM] {
		t.cursor.X = 0
	}
}

func (t *Terminal) reverseIndex() {
	if t.cursor.Y == t.scrollTop {
		t.buf().ScrollDown(t.scrollTop, t.scrollBottom, 1, t.eraseFill())
	} else if t.cursor.Y > 0 {
		t.cursor.Y--
	}
}

func (t *Terminal) index() {
	t.lineFeedNoLNM()
}

func (t *Terminal) lineFeedNoLNM() {
	if t.cursor.Y == t.scrollBottom {
		t.buf().ScrollUp(t.scrollTop, t.scrollBottom, 1, t.eraseFill())
	} else if t.cursor.Y < t.height-1 {
		t.cursor.Y++
	}
}

func (t *Terminal) backspace() {
	if t.cursor.X > 0 {
		t.cursor.X--
	}
}

func (t *Terminal) tab() {
	next := (t.cursor.X/8 + 1) * 8
	if next > t.width-1 {
		next = t.width - 1
	}
	t.cursor.X = next
}

// eraseFill is the cell erase operations and scrolling fill with: the
// default cell's glyph, but the current style's background color, per
// spec §4.4 ("using the current Style's background... or the default
// cell otherwise" — we always carry the background through, which
// subsumes the default case since Default is itself a valid background).
func (t *Terminal) eraseFill() Cell {
	return Cell{Ch: ' ', Style: Style{Bg: t.style.Bg, set: t.style.set & attrBgSet, val: t.style.val & attrBgSet}}
}

func (t *Terminal) clampCursorX() {
	if t.cursor.X < 0 {
		t.cursor.X = 0
	}
	if t.cursor.X > t.width {
		t.cursor.X = t.width
	}
}

func (t *Terminal) originTop() int {
	if t.modes[ModeDECOM] {
		return t.scrollTop
	}
	return 0
}

func (t *Terminal) originBottom() int {
	if t.modes[ModeDECOM] {
		return t.scrollBottom
	}
	return t.height - 1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (t *Terminal) moveCursorRel(dx, dy int) {
	lo, hi := t.originTop(), t.originBottom()
	t.cursor.X = clampInt(t.cursor.X+dx, 0, t.width-1)
	t.cursor.Y = clampInt(t.cursor.Y+dy, lo, hi)
}

// moveCursorAbs places the cursor at (x, y) in the coordinate space
// implied by origin mode: relative to the scroll region when DECOM is
// set, absolute otherwise (spec §4.4 "Cursor clipping").
func (t *Terminal) moveCursorAbs(x, y int) {
	lo, hi := t.originTop(), t.originBottom()
	if t.modes[ModeDECOM] {
		y += lo
	}
	t.cursor.X = clampInt(x, 0, t.width-1)
	t.cursor.Y = clampInt(y, lo, hi)
}

func (t *Terminal) setColumn(x int) {
	t.cursor.X = clampInt(x, 0, t.width-1)
}

func (t *Terminal) setRow(y int) {
	lo, hi := t.originTop(), t.originBottom()
	if t.modes[ModeDECOM] {
		y += lo
	}
	t.cursor.Y = clampInt(y, lo, hi)
}

// eraseInDisplay implements ED (CSI J).
func (t *Terminal) eraseInDisplay(mode int) {
	b := t.buf()
	fill := t.eraseFill()
	switch mode {
	case 0:
		b.EraseRect(t.cursor.X, t.cursor.Y, t.width-1, t.cursor.Y, fill)
		if t.cursor.Y+1 < t.height {
			b.EraseRect(0, t.cursor.Y+1, t.width-1, t.height-1, fill)
		}
	case 1:
		b.EraseRect(0, 0, t.width-1, t.cursor.Y-1, fill)
		b.EraseRect(0, t.cursor.Y, t.cursor.X, t.cursor.Y, fill)
	case 2, 3:
		b.EraseRect(0, 0, t.width-1, t.height-1, fill)
	}
}

// eraseInLine implements EL (CSI K).
func (t *Terminal) eraseInLine(mode int) {
	b := t.buf()
	fill := t.eraseFill()
	switch mode {
	case 0:
		b.EraseRect(t.cursor.X, t.cursor.Y, t.width-1, t.cursor.Y, fill)
	case 1:
		b.EraseRect(0, t.cursor.Y, t.cursor.X, t.cursor.Y, fill)
	case 2:
		b.EraseRect(0, t.cursor.Y, t.width-1, t.cursor.Y, fill)
	}
}

func (t *Terminal) insertChars(x, y, n int) {
	t.buf().InsertChars(x, y, n, t.eraseFill())
}

func (t *Terminal) deleteChars(x, y, n int) {
	t.buf().DeleteChars(x, y, n, t.eraseFill())
}

func (t *Terminal) eraseChars(n int) {
	t.buf().EraseChars(t.cursor.X, t.cursor.Y, n, t.eraseFill())
}

func (t *Terminal) insertLines(n int) {
	if t.cursor.Y < t.scrollTop || t.cursor.Y > t.scrollBottom {
		return
	}
	t.buf().InsertLines(t.scrollTop, t.scrollBottom, t.cursor.Y, n, t.eraseFill())
}

func (t *Terminal) deleteLines(n int) {
	if t.cursor.Y < t.scrollTop || t.cursor.Y > t.scrollBottom {
		return
	}
	t.buf().DeleteLines(t.scrollTop, t.scrollBottom, t.cursor.Y, n, t.eraseFill())
}

func (t *Terminal) scrollUp(n int)   { t.buf().ScrollUp(t.scrollTop, t.scrollBottom, n, t.eraseFill()) }
func (t *Terminal) scrollDown(n int) { t.buf().ScrollDown(t.scrollTop, t.scrollBottom, n, t.eraseFill()) }

// setScrollRegion implements DECSTBM (CSI r). top/bottom are 1-based as
// received from the parser; 0 means "use the default" for each end.
func (t *Terminal) setScrollRegion(top, bottom int) {
	if top <= 0 {
		top = 1
	}
	if bottom <= 0 || bottom > t.height {
		bottom = t.height
	}
	top--
	bottom--
	if top >= bottom {
		t.scrollTop, t.scrollBottom = 0, t.height-1
		return
	}
	t.scrollTop, t.scrollBottom = top, bottom
	// DECSTBM also homes the cursor, in the coordinate space origin mode
	// implies.
	t.moveCursorAbs(0, 0)
}

func (t *Terminal) repeatLastChar(lastChar rune, n int) {
	if lastChar == 0 {
		return
	}
	for i := 0; i < n; i++ {
		t.printRune(lastChar)
	}
}

// saveCursor implements DECSC / CSI s.
func (t *Terminal) saveCursor() {
	sc := savedCursor{valid: true, x: t.cursor.X, y: t.cursor.Y, style: t.style, charset: t.charset}
	if t.onAltScreen {
		t.savedAlt = sc
	} else {
		t.savedPrimary = sc
	}
}

// restoreCursor implements DECRC / CSI u.
func (t *Terminal) restoreCursor() {
	sc := t.savedPrimary
	if t.onAltScreen {
		sc = t.savedAlt
	}
	if !sc.valid {
		t.cursor.X, t.cursor.Y = 0, 0
		return
	}
	t.cursor.X, t.cursor.Y = sc.x, sc.y
	t.style = sc.style
	t.charset = sc.charset
	t.clampCursorX()
}

// setAltScreen switches to (enter=true) or away from (enter=false) the
// alternate buffer. withSave additionally saves/restores the cursor, per
// ?1049's documented coupling with DECSC/DECRC (spec §4.2/§4.4).
func (t *Terminal) setAltScreen(enter, withSave, clear bool) {
	if enter == t.onAltScreen {
		return
	}
	if withSave && enter {
		t.saveCursor()
	}
	t.onAltScreen = enter
	if clear && enter {
		t.alt = NewBuffer(t.width, t.height)
	}
	if withSave && !enter {
		t.restoreCursor()
	}
}

// setMode applies a parsed SM/RM mode change, including the handful of
// modes that have an immediate side effect beyond flipping a flag
// (DECCOLM resizes+clears+homes, ?1049/?47/?1047 switch screens).
func (t *Terminal) setMode(m Mode, set bool) {
	t.modes[m] = set
	switch m {
	case ModeDECCOLM:
		width := 80
		if set {
			width = 132
		}
		t.width = width
		t.primary.Resize(width, t.height)
		t.alt.Resize(width, t.height)
		t.eraseInDisplayFullScreen()
		t.cursor.X, t.cursor.Y = 0, 0
	case ModeAltScreen47:
		t.setAltScreen(set, false, set)
	case ModeAltScreen1047:
		t.setAltScreen(set, false, set)
	case ModeAltScreenSave:
		t.setAltScreen(set, true, set)
	}
}

func (t *Terminal) eraseInDisplayFullScreen() {
	t.buf().EraseRect(0, 0, t.width-1, t.height-1, t.eraseFill())
}

func (t *Terminal) resetAttributes() {
	t.style = Style{}
}

func (t *Terminal) applySGR(raw []string) {
	delta := ParseSGRRaw(raw)
	t.style = Merge(t.style, delta)
}

// designateCharset implements SCS: ESC ( / ) / * / + followed by an
// identifier byte selects G0/G1/G2/G3 respectively.
func (t *Terminal) designateCharset(slot int, id byte) {
	t.charset.designate(slot, charsetID(id))
}

func (t *Terminal) ris() {
	t.resetLocked()
}
