package vt

import "fmt"

// Key encoding, spec §4.6. Host key events are translated to the byte
// sequences a child process expects and appended to the response queue,
// exactly like a DA or DSR reply (DrainResponses drains both). Grounded
// on the teacher's cli/input.go keyToBytesMap (the xterm-compatible
// byte sequences for arrows/Home/End/PgUp/PgDn/function keys), made
// mode-aware (DECCKM, DECBKM) the way the teacher's static map never
// was.
type Key int

const (
	KeyBackspace Key = iota
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
)

// Modifier is a bitmask of Shift/Alt/Ctrl, encoded into CSI sequences
// using xterm's ";N" modifier-parameter convention (N = 1 + bits).
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

func (m Modifier) param() int { return 1 + int(m) }

// InputText forwards literal text verbatim, as input(text) in spec §6.
func (t *Terminal) InputText(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queueResponse([]byte(s))
}

// InputCtrlChar encodes a letter typed with the Ctrl modifier: chr(lower(ch)-'a'+1).
func (t *Terminal) InputCtrlChar(ch rune) {
	lower := ch
	if lower >= 'A' && lower <= 'Z' {
		lower += 'a' - 'A'
	}
	if lower < 'a' || lower > 'z' {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queueResponse([]byte{byte(lower-'a') + 1})
}

var csiArrowFinal = map[Key]byte{
	KeyUp: 'A', KeyDown: 'B', KeyRight: 'C', KeyLeft: 'D',
	KeyHome: 'H', KeyEnd: 'F',
}

var tildeCode = map[Key]int{
	KeyHome: 1, KeyInsert: 2, KeyDelete: 3, KeyEnd: 4, KeyPageUp: 5, KeyPageDown: 6,
}

// InputKey encodes a non-printable key per spec §4.6 and queues the
// resulting bytes.
func (t *Terminal) InputKey(key Key, mod Modifier) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queueResponse(t.encodeKeyLocked(key, mod))
}

func (t *Terminal) encodeKeyLocked(key Key, mod Modifier) []byte {
	if key == KeyBackspace {
		if t.modes[ModeDECBKM] {
			return []byte{0x08}
		}
		return []byte{0x7F}
	}

	if final, ok := csiArrowFinal[key]; ok {
		if mod == 0 {
			if t.modes[ModeDECCKM] {
				return []byte{0x1B, 'O', final}
			}
			return []byte{0x1B, '[', final}
		}
		return []byte(fmt.Sprintf("\x1b[1;%d%c", mod.param(), final))
	}

	if code, ok := tildeCode[key]; ok {
		if mod == 0 {
			return []byte(fmt.Sprintf("\x1b[%d~", code))
		}
		return []byte(fmt.Sprintf("\x1b[%d;%d~", code, mod.param()))
	}

	return nil
}

// fkeyTilde and fkeySS3 give xterm's two families of function-key
// encoding: F1-F4 as SS3 letters, F5 and up as CSI ... ~ with a numeric
// code that (famously) is not contiguous with F1-F4's.
var fkeySS3 = map[int]byte{1: 'P', 2: 'Q', 3: 'R', 4: 'S'}
var fkeyTilde = map[int]int{5: 15, 6: 17, 7: 18, 8: 19, 9: 20, 10: 21, 11: 23, 12: 24}

// InputFKey encodes function key n (1-12) with the given modifier.
func (t *Terminal) InputFKey(n int, mod Modifier) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if final, ok := fkeySS3[n]; ok {
		if mod == 0 {
			t.queueResponse([]byte{0x1B, 'O', final})
			return
		}
		t.queueResponse([]byte(fmt.Sprintf("\x1b[1;%d%c", mod.param(), final)))
		return
	}
	if code, ok := fkeyTilde[n]; ok {
		if mod == 0 {
			t.queueResponse([]byte(fmt.Sprintf("\x1b[%d~", code)))
			return
		}
		t.queueResponse([]byte(fmt.Sprintf("\x1b[%d;%d~", code, mod.param())))
		return
	}
}

// NumpadKey names one key of the numeric keypad.
type NumpadKey int

const (
	Numpad0 NumpadKey = iota
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	NumpadMinus
	NumpadComma
	NumpadPeriod
	NumpadEnter
	NumpadPlus
	NumpadDivide
	NumpadMultiply
	NumpadEquals
)

var numpadLiteral = map[NumpadKey]string{
	Numpad0: "0", Numpad1: "1", Numpad2: "2", Numpad3: "3", Numpad4: "4",
	Numpad5: "5", Numpad6: "6", Numpad7: "7", Numpad8: "8", Numpad9: "9",
	NumpadMinus: "-", NumpadComma: ",", NumpadPeriod: ".", NumpadEnter: "\r",
	NumpadPlus: "+", NumpadDivide: "/", NumpadMultiply: "*", NumpadEquals: "=",
}

// numpadApplication gives the SS3-prefixed final byte for each key when
// DECNKM (application keypad mode) is active.
var numpadApplication = map[NumpadKey]byte{
	Numpad0: 'p', Numpad1: 'q', Numpad2: 'r', Numpad3: 's', Numpad4: 't',
	Numpad5: 'u', Numpad6: 'v', Numpad7: 'w', Numpad8: 'x', Numpad9: 'y',
	NumpadMinus: 'm', NumpadComma: 'l', NumpadPeriod: 'n', NumpadEnter: 'M',
	NumpadPlus: 'k', NumpadDivide: 'o', NumpadMultiply: 'j', NumpadEquals: 'X',
}

// InputNumpadKey encodes a numeric-keypad key per the active keypad
// mode (DECNKM): literal character in numeric mode, SS3-prefixed in
// application mode.
func (t *Terminal) InputNumpadKey(key NumpadKey) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.modes[ModeDECNKM] {
		if final, ok := numpadApplication[key]; ok {
			t.queueResponse([]byte{0x1B, 'O', final})
			return
		}
	}
	if lit, ok := numpadLiteral[key]; ok {
		t.queueResponse([]byte(lit))
	}
}

// MouseButton identifies which button (or wheel direction) a mouse
// event reports.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonNone
	MouseWheelUp
	MouseWheelDown
)

// MouseEventKind is press, release, or motion.
type MouseEventKind int

const (
	MousePress MouseEventKind = iota
	MouseRelease
	MouseMotion
)

func mouseButtonCode(b MouseButton, kind MouseEventKind) int {
	switch b {
	case MouseWheelUp:
		return 64
	case MouseWheelDown:
		return 65
	}
	code := int(b)
	if b == MouseButtonNone {
		code = 3
	}
	if kind == MouseMotion {
		code |= 32
	}
	return code
}

// InputMouse encodes a mouse event per the active tracking mode and
// report format (legacy vs SGR ?1006). x and y are 0-based; the wire
// format is always 1-based. Events are silently dropped when no
// tracking mode is active, or when motion is reported but neither
// ?1002 nor ?1003 is set.
func (t *Terminal) InputMouse(x, y int, button MouseButton, kind MouseEventKind, mod Modifier) {
	t.mu.Lock()
	defer t.mu.Unlock()

	active := t.activeMouseMode()
	if active == mouseOff {
		return
	}
	if kind == MouseMotion {
		if active != mouseButton && active != mouseAny {
			return
		}
		if active == mouseButton && button == MouseButtonNone {
			return
		}
	}

	code := mouseButtonCode(button, kind) | int(mod)<<2
	col, row := x+1, y+1

	if t.modes[ModeMouseSGR] {
		final := byte('M')
		if kind == MouseRelease {
			final = 'm'
		}
		t.queueResponse([]byte(fmt.Sprintf("\x1b[<%d;%d;%d%c", code, col, row, final)))
		return
	}

	// Legacy X10/VT200 format: button+32, col+32, row+32, capped to stay
	// within a single byte (coordinates beyond 223 cannot be represented
	// and are clamped).
	if kind == MouseRelease {
		code = 3
	}
	clamp := func(v int) byte {
		if v > 223 {
			v = 223
		}
		return byte(v + 32)
	}
	t.queueResponse([]byte{0x1B, '[', 'M', byte(code + 32), clamp(col), clamp(row)})
}
