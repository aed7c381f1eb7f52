package vt

import "testing"

func TestBufferGetSetRoundTrip(t *testing.T) {
	b := NewBuffer(10, 5)
	b.Set(3, 2, Cell{Ch: 'x'})
	if got := b.Get(3, 2); got.Ch != 'x' {
		t.Errorf("expected 'x' at (3,2), got %q", got.Ch)
	}
}

func TestBufferGetOutOfBoundsReturnsDefault(t *testing.T) {
	b := NewBuffer(10, 5)
	if got := b.Get(-1, 0); got != defaultCell {
		t.Errorf("expected default cell for out-of-bounds read, got %+v", got)
	}
	if got := b.Get(100, 0); got != defaultCell {
		t.Errorf("expected default cell for out-of-bounds read, got %+v", got)
	}
}

func TestBufferResizePreservesTopLeft(t *testing.T) {
	b := NewBuffer(5, 3)
	b.Set(0, 0, Cell{Ch: 'a'})
	b.Set(4, 2, Cell{Ch: 'z'})

	b.Resize(3, 2)
	if got := b.Get(0, 0); got.Ch != 'a' {
		t.Errorf("expected top-left preserved after shrink, got %q", got.Ch)
	}

	b.Resize(8, 6)
	if got := b.Get(0, 0); got.Ch != 'a' {
		t.Errorf("expected top-left preserved after grow, got %q", got.Ch)
	}
	if got := b.Get(5, 4); got != defaultCell {
		t.Errorf("expected newly grown area to be blank, got %+v", got)
	}
}

func TestBufferScrollUpWithinRegion(t *testing.T) {
	b := NewBuffer(4, 6)
	for y := 0; y < 6; y++ {
		b.Set(0, y, Cell{Ch: rune('0' + y)})
	}
	// Scroll region [1,4]: row 1 should receive row 2's content, row 4
	// should be blanked; rows 0 and 5 are untouched.
	b.ScrollUp(1, 4, 1, defaultCell)

	if got := b.Get(0, 0).Ch; got != '0' {
		t.Errorf("expected row 0 untouched, got %q", got)
	}
	if got := b.Get(0, 1).Ch; got != '2' {
		t.Errorf("expected row 1 to take row 2's content, got %q", got)
	}
	if got := b.Get(0, 4); got != defaultCell {
		t.Errorf("expected row 4 blanked, got %+v", got)
	}
	if got := b.Get(0, 5).Ch; got != '5' {
		t.Errorf("expected row 5 untouched, got %q", got)
	}
}

func TestBufferInsertDeleteLinesOutsideRegionNoop(t *testing.T) {
	b := NewBuffer(4, 6)
	b.Set(0, 0, Cell{Ch: 'a'})
	b.InsertLines(1, 4, 0, 1, defaultCell) // row 0 is outside [1,4]
	if got := b.Get(0, 0).Ch; got != 'a' {
		t.Errorf("expected no-op outside scroll region, got %q", got)
	}
}

func TestBufferInsertCharsShiftsRight(t *testing.T) {
	b := NewBuffer(5, 1)
	b.Set(0, 0, Cell{Ch: 'a'})
	b.Set(1, 0, Cell{Ch: 'b'})
	b.Set(2, 0, Cell{Ch: 'c'})
	b.InsertChars(1, 0, 1, defaultCell)

	if got := b.Get(0, 0).Ch; got != 'a' {
		t.Errorf("expected column 0 untouched, got %q", got)
	}
	if got := b.Get(1, 0); got != defaultCell {
		t.Errorf("expected blank inserted at column 1, got %+v", got)
	}
	if got := b.Get(2, 0).Ch; got != 'b' {
		t.Errorf("expected 'b' shifted to column 2, got %q", got)
	}
}

func TestBufferDeleteCharsShiftsLeft(t *testing.T) {
	b := NewBuffer(5, 1)
	b.Set(0, 0, Cell{Ch: 'a'})
	b.Set(1, 0, Cell{Ch: 'b'})
	b.Set(2, 0, Cell{Ch: 'c'})
	b.DeleteChars(0, 0, 1, defaultCell)

	if got := b.Get(0, 0).Ch; got != 'b' {
		t.Errorf("expected 'b' shifted to column 0, got %q", got)
	}
	if got := b.Get(4, 0); got != defaultCell {
		t.Errorf("expected vacated rightmost column blanked, got %+v", got)
	}
}

func TestBufferPlainRowStripsTrailingSpace(t *testing.T) {
	b := NewBuffer(5, 1)
	b.Set(0, 0, Cell{Ch: 'h'})
	b.Set(1, 0, Cell{Ch: 'i'})
	if got := b.PlainRow(0); got != "hi" {
		t.Errorf("expected trailing default spaces stripped, got %q", got)
	}
}
