package vt

// Buffer is a width x height grid of Cells, row-major. Operations
// preserve rectangularity: out-of-bounds reads return the default cell,
// out-of-bounds writes are silently dropped. Grounded on the teacher's
// Buffer type (buffer.go's dense-array Resize/ScrollUp/ScrollDown/erase
// family), trimmed to the spec's §3 data model and given an explicit
// scroll region the teacher never implemented.
type Buffer struct {
	width, height int
	cells         []Cell // len == width*height, row-major: (x,y) -> y*width+x
}

// NewBuffer allocates a width x height grid filled with the default cell.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{width: width, height: height}
	b.cells = make([]Cell, width*height)
	b.fill(defaultCell)
	return b
}

func (b *Buffer) fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Size returns the buffer's dimensions.
func (b *Buffer) Size() (width, height int) { return b.width, b.height }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) idx(x, y int) int { return y*b.width + x }

// Get returns the cell at (x, y), or the default cell if out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return defaultCell
	}
	return b.cells[b.idx(x, y)]
}

// Set writes c at (x, y). Out-of-bounds writes are silently dropped.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[b.idx(x, y)] = c
}

// Row returns a row's cells as a slice sharing the buffer's backing
// array; callers must not retain it across a mutation.
func (b *Buffer) Row(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	start := b.idx(0, y)
	return b.cells[start : start+b.width]
}

// Resize changes the buffer's dimensions, preserving top-left content per
// spec §3: height growth appends blank rows at the bottom, height shrink
// drops trailing rows, width growth pads rows with default cells, width
// shrink truncates rows.
func (b *Buffer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == b.width && height == b.height {
		return
	}
	next := make([]Cell, width*height)
	for i := range next {
		next[i] = defaultCell
	}
	copyW := minInt(width, b.width)
	copyH := minInt(height, b.height)
	for y := 0; y < copyH; y++ {
		srcStart := y * b.width
		dstStart := y * width
		copy(next[dstStart:dstStart+copyW], b.cells[srcStart:srcStart+copyW])
	}
	b.width, b.height = width, height
	b.cells = next
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ScrollUp moves rows [top+n, bottom] to [top, bottom-n] within the
// inclusive region [top, bottom], filling the vacated rows at the bottom
// with fill. Rows outside the region are untouched.
func (b *Buffer) ScrollUp(top, bottom, n int, fill Cell) {
	if n <= 0 {
		return
	}
	top, bottom = b.clampRegion(top, bottom)
	regionHeight := bottom - top + 1
	if n >= regionHeight {
		b.eraseRows(top, bottom, fill)
		return
	}
	for y := top; y <= bottom-n; y++ {
		copy(b.Row(y), b.Row(y+n))
	}
	b.eraseRows(bottom-n+1, bottom, fill)
}

// ScrollDown is the symmetric inverse of ScrollUp.
func (b *Buffer) ScrollDown(top, bottom, n int, fill Cell) {
	if n <= 0 {
		return
	}
	top, bottom = b.clampRegion(top, bottom)
	regionHeight := bottom - top + 1
	if n >= regionHeight {
		b.eraseRows(top, bottom, fill)
		return
	}
	for y := bottom; y >= top+n; y-- {
		copy(b.Row(y), b.Row(y-n))
	}
	b.eraseRows(top, top+n-1, fill)
}

func (b *Buffer) clampRegion(top, bottom int) (int, int) {
	if top < 0 {
		top = 0
	}
	if bottom >= b.height {
		bottom = b.height - 1
	}
	return top, bottom
}

func (b *Buffer) eraseRows(top, bottom int, fill Cell) {
	top, bottom = b.clampRegion(top, bottom)
	for y := top; y <= bottom; y++ {
		row := b.Row(y)
		for i := range row {
			row[i] = fill
		}
	}
}

// InsertLines inserts n blank lines at row within [top, bottom], shifting
// the lines below it down and discarding lines pushed past bottom. A
// no-op if row is outside the region (spec §4.4: "outside the region
// they are no-ops").
func (b *Buffer) InsertLines(top, bottom, row, n int, fill Cell) {
	if row < top || row > bottom {
		return
	}
	b.ScrollDown(row, bottom, n, fill)
}

// DeleteLines deletes n lines at row within [top, bottom], shifting the
// lines below it up and filling the vacated rows at bottom.
func (b *Buffer) DeleteLines(top, bottom, row, n int, fill Cell) {
	if row < top || row > bottom {
		return
	}
	b.ScrollUp(row, bottom, n, fill)
}

// InsertChars shifts cells [x, width-1) of row y right by n, losing cells
// pushed past the right margin, and fills the vacated cells at x with
// fill.
func (b *Buffer) InsertChars(x, y, n int, fill Cell) {
	row := b.Row(y)
	if row == nil || x < 0 || x >= len(row) {
		return
	}
	if n > len(row)-x {
		n = len(row) - x
	}
	copy(row[x+n:], row[x:len(row)-n])
	for i := x; i < x+n; i++ {
		row[i] = fill
	}
}

// DeleteChars shifts cells [x+n, width) of row y left to x, filling the
// vacated cells at the right margin with fill.
func (b *Buffer) DeleteChars(x, y, n int, fill Cell) {
	row := b.Row(y)
	if row == nil || x < 0 || x >= len(row) {
		return
	}
	if n > len(row)-x {
		n = len(row) - x
	}
	copy(row[x:], row[x+n:])
	for i := len(row) - n; i < len(row); i++ {
		row[i] = fill
	}
}

// EraseChars overwrites n cells starting at (x, y) with fill, without
// shifting anything (ECH).
func (b *Buffer) EraseChars(x, y, n int, fill Cell) {
	row := b.Row(y)
	if row == nil {
		return
	}
	end := x + n
	if end > len(row) {
		end = len(row)
	}
	for i := x; i < end; i++ {
		if i >= 0 {
			row[i] = fill
		}
	}
}

// EraseRect fills the rectangle [x0,y0]-[x1,y1] inclusive with fill.
func (b *Buffer) EraseRect(x0, y0, x1, y1 int, fill Cell) {
	for y := y0; y <= y1; y++ {
		row := b.Row(y)
		if row == nil {
			continue
		}
		end := x1 + 1
		if end > len(row) {
			end = len(row)
		}
		for x := x0; x < end; x++ {
			if x >= 0 {
				row[x] = fill
			}
		}
	}
}

// PlainRow returns row y rendered as plain text, with trailing spaces
// stripped (the row-level primitive behind CapturePane).
func (b *Buffer) PlainRow(y int) string {
	row := b.Row(y)
	if row == nil {
		return ""
	}
	end := len(row)
	for end > 0 && row[end-1].Rune() == ' ' && !row[end-1].Continuation {
		end--
	}
	runes := make([]rune, 0, end)
	for i := 0; i < end; i++ {
		if row[i].Continuation {
			continue
		}
		runes = append(runes, row[i].Rune())
	}
	return string(runes)
}
