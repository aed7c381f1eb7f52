package vt

import "testing"

func drain(t *Terminal) string {
	return string(t.DrainResponses())
}

func TestInputTextPassthrough(t *testing.T) {
	term := New(WithSize(10, 1))
	term.InputText("hello")
	if got := drain(term); got != "hello" {
		t.Errorf("expected literal passthrough, got %q", got)
	}
}

func TestInputCtrlChar(t *testing.T) {
	term := New(WithSize(10, 1))
	term.InputCtrlChar('c')
	if got := drain(term); got != "\x03" {
		t.Errorf("expected Ctrl-C to encode as 0x03, got %v", []byte(got))
	}
}

func TestInputArrowKeyDefaultVsApplicationMode(t *testing.T) {
	term := New(WithSize(10, 1))
	term.InputKey(KeyUp, 0)
	if got := drain(term); got != "\x1b[A" {
		t.Errorf("expected normal-mode Up arrow, got %q", got)
	}

	term.FeedString("\x1b[?1h") // DECCKM: application cursor keys
	term.InputKey(KeyUp, 0)
	if got := drain(term); got != "\x1bOA" {
		t.Errorf("expected application-mode Up arrow, got %q", got)
	}
}

func TestInputArrowKeyWithModifier(t *testing.T) {
	term := New(WithSize(10, 1))
	term.InputKey(KeyRight, ModShift|ModCtrl)
	// mod.param() = 1 + (ModShift|ModCtrl) = 1 + (1|4) = 6
	if got := drain(term); got != "\x1b[1;6C" {
		t.Errorf("expected modified right arrow, got %q", got)
	}
}

func TestInputTildeNavigationKey(t *testing.T) {
	term := New(WithSize(10, 1))
	term.InputKey(KeyPageUp, 0)
	if got := drain(term); got != "\x1b[5~" {
		t.Errorf("expected PageUp tilde code, got %q", got)
	}
}

func TestInputFunctionKeySS3VsTilde(t *testing.T) {
	term := New(WithSize(10, 1))
	term.InputFKey(1, 0)
	if got := drain(term); got != "\x1bOP" {
		t.Errorf("expected F1 as SS3, got %q", got)
	}
	term.InputFKey(5, 0)
	if got := drain(term); got != "\x1b[15~" {
		t.Errorf("expected F5 as tilde code, got %q", got)
	}
}

func TestInputNumpadKeyLiteralVsApplication(t *testing.T) {
	term := New(WithSize(10, 1))
	term.InputNumpadKey(Numpad5)
	if got := drain(term); got != "5" {
		t.Errorf("expected literal '5' in numeric mode, got %q", got)
	}

	term.FeedString("\x1b[?66h") // DECNKM: application keypad
	term.InputNumpadKey(Numpad5)
	if got := drain(term); got != "\x1bOu" {
		t.Errorf("expected SS3-prefixed keypad 5 in application mode, got %q", got)
	}
}

func TestInputMouseSGRFormat(t *testing.T) {
	term := New(WithSize(80, 24))
	term.FeedString("\x1b[?1000h") // VT200 mouse tracking
	term.FeedString("\x1b[?1006h") // SGR report format
	term.InputMouse(9, 4, MouseButtonLeft, MousePress, 0)
	if got := drain(term); got != "\x1b[<0;10;5M" {
		t.Errorf("expected SGR mouse press report, got %q", got)
	}
	term.InputMouse(9, 4, MouseButtonLeft, MouseRelease, 0)
	if got := drain(term); got != "\x1b[<0;10;5m" {
		t.Errorf("expected SGR mouse release report, got %q", got)
	}
}

func TestInputMouseDroppedWhenTrackingOff(t *testing.T) {
	term := New(WithSize(80, 24))
	term.InputMouse(0, 0, MouseButtonLeft, MousePress, 0)
	if got := drain(term); got != "" {
		t.Errorf("expected no mouse report when tracking disabled, got %q", got)
	}
}

func TestInputMouseLegacyFormat(t *testing.T) {
	term := New(WithSize(80, 24))
	term.FeedString("\x1b[?1000h")
	term.InputMouse(0, 0, MouseButtonLeft, MousePress, 0)
	got := []byte(drain(term))
	want := []byte{0x1B, '[', 'M', byte(0 + 32), byte(1 + 32), byte(1 + 32)}
	if string(got) != string(want) {
		t.Errorf("expected legacy mouse report %v, got %v", want, got)
	}
}
