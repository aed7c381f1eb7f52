package vt

import "testing"

func TestCharsetTranslateDECSpecialGraphics(t *testing.T) {
	if got := charsetDECSpecial.translate('q'); got != '─' {
		t.Errorf("expected 'q' to translate to the horizontal line glyph, got %q", got)
	}
	if got := charsetDECSpecial.translate('j'); got != '┘' {
		t.Errorf("expected 'j' to translate to the lower right corner, got %q", got)
	}
}

func TestCharsetTranslateUnmappedRunePassesThrough(t *testing.T) {
	if got := charsetDECSpecial.translate('Q'); got != 'Q' {
		t.Errorf("expected an unmapped rune to pass through unchanged, got %q", got)
	}
}

func TestCharsetTranslateUnknownIDPassesThrough(t *testing.T) {
	var unknown charsetID = '!'
	if got := unknown.translate('q'); got != 'q' {
		t.Errorf("expected unknown charset id to be a no-op, got %q", got)
	}
}

func TestCharsetStateDefaultsToASCII(t *testing.T) {
	cs := newCharsetState()
	if got := cs.translate('q'); got != 'q' {
		t.Errorf("expected G0 to default to US ASCII (no translation), got %q", got)
	}
}

func TestCharsetStateShiftOutActivatesG1(t *testing.T) {
	cs := newCharsetState()
	cs.designate(1, charsetDECSpecial)
	cs.shiftOut()
	if got := cs.translate('q'); got != '─' {
		t.Errorf("expected SO to activate G1's DEC Special Graphics, got %q", got)
	}
	cs.shiftIn()
	if got := cs.translate('q'); got != 'q' {
		t.Errorf("expected SI to restore G0, got %q", got)
	}
}

func TestCharsetStateSingleShiftAppliesOnce(t *testing.T) {
	cs := newCharsetState()
	cs.designate(2, charsetDECSpecial)
	cs.singleShift2()

	if got := cs.translate('q'); got != '─' {
		t.Errorf("expected single-shifted G2 to translate the next char, got %q", got)
	}
	if got := cs.translate('q'); got != 'q' {
		t.Errorf("expected single shift to apply to exactly one character, got %q", got)
	}
}

func TestCharsetStateResetRestoresASCII(t *testing.T) {
	cs := newCharsetState()
	cs.designate(0, charsetDECSpecial)
	cs.shiftOut()
	cs.singleShift3()
	cs.reset()

	if cs.active != 0 {
		t.Errorf("expected reset to restore G0 active, got slot %d", cs.active)
	}
	if cs.singleShift != 0 {
		t.Errorf("expected reset to clear pending single shift")
	}
	if got := cs.translate('q'); got != 'q' {
		t.Errorf("expected reset to restore US ASCII on every designator, got %q", got)
	}
}

func TestCharsetUKPoundSign(t *testing.T) {
	if got := charsetUK.translate('#'); got != '£' {
		t.Errorf("expected UK charset to map '#' to the pound sign, got %q", got)
	}
	if got := charsetUK.translate('a'); got != 'a' {
		t.Errorf("expected UK charset to leave unmapped runes alone, got %q", got)
	}
}
