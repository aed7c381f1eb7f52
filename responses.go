package vt

import (
	"fmt"
	"strconv"
	"strings"
)

// Bit-exact device responses, spec §6. These are appended to the
// Terminal's response queue and drained by the host with
// DrainResponses.

const primaryDA = "\x1b[?62;1;2;6;8;9;15;18;21;22c"
const secondaryDA = "\x1b[>1;10;0c"
const dsrOK = "\x1b[0n"

func (t *Terminal) reportPrimaryDA() {
	t.queueResponse([]byte(primaryDA))
}

func (t *Terminal) reportSecondaryDA() {
	t.queueResponse([]byte(secondaryDA))
}

func (t *Terminal) reportDSR(code int) {
	switch code {
	case 5:
		t.queueResponse([]byte(dsrOK))
	case 6:
		t.reportCPR()
	}
}

// reportCPR reports the cursor position, 1-based, as CSI row;col R.
func (t *Terminal) reportCPR() {
	row := t.cursor.Y + 1
	col := t.cursor.X + 1
	t.queueResponse([]byte(fmt.Sprintf("\x1b[%d;%dR", row, col)))
}

// reportDECRQM answers CSI [?]Ps $p: V is 1 set, 2 reset, 0 unrecognized.
func (t *Terminal) reportDECRQM(private bool, code int) {
	v := 0
	if m, ok := lookupMode(private, code); ok {
		if t.modes[m] {
			v = 1
		} else {
			v = 2
		}
	}
	if private {
		t.queueResponse([]byte(fmt.Sprintf("\x1b[?%d;%d$y", code, v)))
	} else {
		t.queueResponse([]byte(fmt.Sprintf("\x1b[%d;%d$y", code, v)))
	}
}

// reportColor answers an OSC 10/11/12 "?" query with the current
// foreground/background/cursor color in rgb:RRRR/GGGG/BBBB form.
func (t *Terminal) reportColor(oscNum int, c Color) {
	r, g, b := ResolveRGB(c, Default)
	payload := fmt.Sprintf("\x1b]%d;rgb:%02x%02x/%02x%02x/%02x%02x\x07", oscNum, r, r, g, g, b, b)
	t.queueResponse([]byte(payload))
}

func parseOSCFields(args string) []string {
	return strings.Split(args, ";")
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
