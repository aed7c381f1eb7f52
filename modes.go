package vt

// Mode names a boolean terminal mode. ANSI modes (CSI Ps h/l) and DEC
// private modes (CSI ? Ps h/l) share one enum; DECRQM and the parser
// dispatch on the (private, Ps) pair to pick the right one (see
// modeTable).
type Mode int

const (
	ModeIRM Mode = iota // Insert/Replace (ANSI 4)
	ModeLNM             // Linefeed/Newline (ANSI 20)

	ModeDECCKM  // Cursor keys application mode (? 1)
	ModeDECCOLM // 80/132 column switch (? 3)
	ModeDECSCLM // Smooth scroll, stored only (? 4)
	ModeDECSCNM // Screen reverse video (? 5)
	ModeDECOM   // Origin mode (? 6)
	ModeDECAWM  // Auto-wrap (? 7)
	ModeDECARM  // Auto-repeat, stored only (? 8)
	ModeCursorBlink
	ModeDECTCEM // Cursor visible (? 25)
	ModeAltScreen47
	ModeAltScreen1047
	ModeDECNKM // Numeric keypad application mode (? 66)
	ModeDECBKM // Backarrow sends BS instead of DEL (? 67)
	ModeDECKBUM

	ModeMouseVT200 // ?1000: press/release reporting
	ModeMouseBtn   // ?1002: + motion while a button is held
	ModeMouseAny   // ?1003: + motion with no button held
	ModeMouseSGR   // ?1006: SGR-format mouse reports

	ModeAltScreenSave // ?1049
	ModeBracketedPaste
	ModeDECARSM
)

// modeEntry describes one row of spec §4.2's mode table.
type modeEntry struct {
	private bool
	code    int
	mode    Mode
	def     bool
}

var modeTable = []modeEntry{
	{false, 4, ModeIRM, false},
	{false, 20, ModeLNM, false},

	{true, 1, ModeDECCKM, false},
	{true, 3, ModeDECCOLM, false},
	{true, 4, ModeDECSCLM, false},
	{true, 5, ModeDECSCNM, false},
	{true, 6, ModeDECOM, false},
	{true, 7, ModeDECAWM, true},
	{true, 8, ModeDECARM, true},
	{true, 12, ModeCursorBlink, false},
	{true, 25, ModeDECTCEM, true},
	{true, 47, ModeAltScreen47, false},
	{true, 66, ModeDECNKM, false},
	{true, 67, ModeDECBKM, false},
	{true, 69, ModeDECKBUM, false},
	{true, 1000, ModeMouseVT200, false},
	{true, 1002, ModeMouseBtn, false},
	{true, 1003, ModeMouseAny, false},
	{true, 1006, ModeMouseSGR, false},
	{true, 1047, ModeAltScreen1047, false},
	{true, 1049, ModeAltScreenSave, false},
	{true, 2004, ModeBracketedPaste, false},
	{true, 2028, ModeDECARSM, false},
}

func lookupMode(private bool, code int) (Mode, bool) {
	for _, e := range modeTable {
		if e.private == private && e.code == code {
			return e.mode, true
		}
	}
	return 0, false
}

func defaultModes() map[Mode]bool {
	m := make(map[Mode]bool, len(modeTable))
	for _, e := range modeTable {
		m[e.mode] = e.def
	}
	return m
}

// mouseMode is a finer view over the set of ModeMouseVT200/Btn/Any
// flags, used by input encoding (§4.6) to decide which tracking model is
// active (later entries here take precedence, matching xterm: enabling
// ?1003 implies button+motion reporting on top of ?1000/?1002).
type mouseMode int

const (
	mouseOff mouseMode = iota
	mouseVT200
	mouseButton
	mouseAny
)

func (t *Terminal) activeMouseMode() mouseMode {
	switch {
	case t.modes[ModeMouseAny]:
		return mouseAny
	case t.modes[ModeMouseBtn]:
		return mouseButton
	case t.modes[ModeMouseVT200]:
		return mouseVT200
	default:
		return mouseOff
	}
}
