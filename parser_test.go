package vt

import "testing"

func TestEightBitCSIIntroducer(t *testing.T) {
	term := New(WithSize(10, 1))
	term.FeedString("hello")
	term.FeedString("\u009b") // 8-bit CSI introducer (U+009B, UTF-8 encoded)
	term.FeedString("5D")   // CUB 5: move cursor left 5

	cur := term.CursorPosition()
	if cur.X != 0 {
		t.Errorf("expected 8-bit CSI to be parsed like ESC [, cursor at 0, got %d", cur.X)
	}
}

func TestOSCTerminatesOnST(t *testing.T) {
	term := New(WithSize(10, 1))
	term.FeedString("\x1b]2;window title\x1b\\")
	if got := term.Title(); got != "window title" {
		t.Errorf("expected title set via ST terminator, got %q", got)
	}
}

func TestDCSPayloadConsumedWithoutEffect(t *testing.T) {
	term := New(WithSize(10, 1))
	term.FeedString("\u0090") // 8-bit DCS introducer (U+0090, UTF-8 encoded)
	term.FeedString("some request data")
	term.Feed([]byte{0x1B, '\\'}) // ST
	term.FeedString("X")

	if got := term.Cell(0, 0).Ch; got != 'X' {
		t.Errorf("expected DCS payload consumed and parser ready to print, got %q", got)
	}
}

func TestDCSEscNotFollowedByBackslashStaysInPayload(t *testing.T) {
	term := New(WithSize(10, 1))
	term.Feed([]byte("\x1bPabc"))
	term.Feed([]byte{0x1B}) // not an ST on its own
	term.Feed([]byte("def\x1b\\"))
	term.FeedString("Y")

	if got := term.Cell(0, 0).Ch; got != 'Y' {
		t.Errorf("expected mid-payload ESC to not terminate DCS, got %q", got)
	}
}

func TestMalformedCSIMarkerAborts(t *testing.T) {
	term := New(WithSize(10, 1))
	// A '?' appearing after params have already started is malformed and
	// aborts the sequence back to ground (spec §7).
	term.Feed([]byte("\x1b[1;?"))
	term.FeedString("Z")
	if got := term.Cell(0, 0).Ch; got != 'Z' {
		t.Errorf("expected malformed CSI to abort and resume printing, got %q", got)
	}
}

func TestBELTerminatesOSC(t *testing.T) {
	term := New(WithSize(10, 1))
	term.FeedString("\x1b]0;bell title\x07X")
	if got := term.Title(); got != "bell title" {
		t.Errorf("expected BEL to terminate OSC, got %q", got)
	}
	if got := term.Cell(0, 0).Ch; got != 'X' {
		t.Errorf("expected parser back in ground after OSC, got %q", got)
	}
}

func TestSUBAbortsSequence(t *testing.T) {
	term := New(WithSize(10, 1))
	term.Feed([]byte("\x1b[3"))
	term.Feed([]byte{0x1A}) // SUB aborts
	term.FeedString("Q")
	if got := term.Cell(0, 0).Ch; got != 'Q' {
		t.Errorf("expected SUB to abort CSI and resume printing, got %q", got)
	}
}
