// Command vtdemo drives the vt core against a real PTY inside the host's
// own terminal. It is the only place in this module that touches a
// pseudo-terminal, host raw mode, or host keyboard decoding — all
// explicitly out of scope for the vt package itself (spec §1). Grounded
// on phroun-purfecterm/cli's Terminal (raw mode entry, SIGWINCH-driven
// resize, a PTY read loop feeding a parser) and cli/input.go (decoding
// direct-key-handler key names into byte sequences), with the PTY
// allocation itself replaced by github.com/creack/pty and the key
// decoding routed through vt.Terminal's own Input* methods instead of a
// static byte table, so it actually exercises input.go's mode-aware
// encoding rather than duplicating it.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/phroun/direct-key-handler/keyboard"
	"golang.org/x/term"

	"github.com/coreterm/vt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vtdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	if len(os.Args) > 1 {
		shell = os.Args[1]
	}

	cols, rows := hostSize()
	term_ := vt.New(vt.WithSize(cols, rows), vt.WithBell(stderrBell{}))

	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color", "COLORTERM=truecolor")

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("start pty: %w", err)
	}
	defer ptmx.Close()
	setPTYSize(ptmx, cols, rows)

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	fmt.Print("\x1b[?25l\x1b[?1049h\x1b[2J\x1b[H")
	defer fmt.Print("\x1b[?1049l\x1b[?25h")

	done := make(chan struct{})
	go watchResize(term_, ptmx, done)
	go readLoop(term_, ptmx, done)
	go renderLoop(term_, done)

	runInput(term_, ptmx, done)

	cmd.Wait()
	return nil
}

func hostSize() (cols, rows int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80, 24
	}
	return cols, rows
}

func setPTYSize(f *os.File, cols, rows int) {
	pty.Setsize(f, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

// watchResize mirrors phroun-purfecterm/cli's handleSIGWINCH: the host
// terminal is the source of truth for size, the PTY and the vt core
// both follow it.
func watchResize(t *vt.Terminal, ptmx *os.File, done chan struct{}) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	defer signal.Stop(sig)
	for {
		select {
		case <-sig:
			cols, rows := hostSize()
			t.Resize(cols, rows)
			setPTYSize(ptmx, cols, rows)
		case <-done:
			return
		}
	}
}

// readLoop feeds child output into the vt core, the PTY-side half of
// cli/terminal.go's readLoop.
func readLoop(t *vt.Terminal, ptmx *os.File, done chan struct{}) {
	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			t.Feed(buf[:n])
		}
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(os.Stderr, "vtdemo: pty read:", err)
			}
			close(done)
			return
		}
	}
}

// renderLoop repaints the host screen from the vt core's own line
// accessors (spec §6 get_line), the same role cli/renderer.go's
// RenderLoop plays for the teacher's widget-based renderer.
func renderLoop(t *vt.Terminal, done chan struct{}) {
	paint := func() {
		cur := t.CursorPosition()
		_, rows := t.Size()
		var b strings.Builder
		b.WriteString("\x1b[H")
		for y := 0; y < rows; y++ {
			if y > 0 {
				b.WriteString("\r\n")
			}
			b.WriteString("\x1b[2K")
			b.WriteString(t.Line(y, vt.LineOptions{
				CursorX: cur.X, CursorY: cur.Y, ShowCursor: cur.Visible,
			}))
		}
		os.Stdout.WriteString(b.String())
	}

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			paint()
		case <-done:
			return
		}
	}
}

// runInput decodes host keypresses via direct-key-handler and forwards
// them through vt.Terminal's own Input* methods rather than a static
// byte table, then drains the resulting (and any device-query) bytes
// to the PTY — grounded on cli/input.go's InputLoop/handleKey/keyToBytes
// but routed through the module's own mode-aware encoder.
func runInput(t *vt.Terminal, ptmx *os.File, done chan struct{}) {
	manageTerminal := false
	h := keyboard.New(keyboard.Options{
		InputReader:    os.Stdin,
		ManageTerminal: &manageTerminal,
	})
	h.OnKey = func(key string) {
		encodeKey(t, key)
		if out := t.DrainResponses(); len(out) > 0 {
			ptmx.Write(out)
		}
	}
	if err := h.Start(); err != nil {
		fmt.Fprintln(os.Stderr, "vtdemo: keyboard start:", err)
		return
	}
	defer h.Stop()
	<-done
}

var csiArrowKey = map[string]vt.Key{
	"Up": vt.KeyUp, "Down": vt.KeyDown, "Right": vt.KeyRight, "Left": vt.KeyLeft,
	"Home": vt.KeyHome, "End": vt.KeyEnd,
	"Insert": vt.KeyInsert, "Delete": vt.KeyDelete,
	"PageUp": vt.KeyPageUp, "PageDown": vt.KeyPageDown,
}

var fkeyNumber = map[string]int{
	"F1": 1, "F2": 2, "F3": 3, "F4": 4, "F5": 5, "F6": 6,
	"F7": 7, "F8": 8, "F9": 9, "F10": 10, "F11": 11, "F12": 12,
}

// encodeKey turns one direct-key-handler key name into a call against
// the vt core's encoding contract (spec §4.6), so InputKey/InputFKey/
// InputCtrlChar/InputText see real traffic instead of sitting unused
// behind the core's own unit tests.
func encodeKey(t *vt.Terminal, key string) {
	switch key {
	case "Enter":
		t.InputText("\r")
		return
	case "Tab":
		t.InputText("\t")
		return
	case "Backspace":
		t.InputKey(vt.KeyBackspace, 0)
		return
	case "Escape":
		t.InputText("\x1b")
		return
	}

	mod, base := splitModifier(key)

	if k, ok := csiArrowKey[base]; ok {
		t.InputKey(k, mod)
		return
	}
	if n, ok := fkeyNumber[base]; ok {
		t.InputFKey(n, mod)
		return
	}
	if len(base) == 1 && mod&vt.ModCtrl != 0 {
		t.InputCtrlChar(rune(base[0]))
		return
	}
	if strings.HasPrefix(key, "^") && len(key) == 2 {
		t.InputCtrlChar(rune(key[1]))
		return
	}
	if strings.HasPrefix(key, "M-") && len(key) == 3 {
		t.InputText("\x1b" + key[2:])
		return
	}
	if key != "" {
		t.InputText(key)
	}
}

// splitModifier strips direct-key-handler's "S-"/"C-"/"M-" prefixes
// (shift/ctrl/alt, composable, e.g. "C-S-Up") into a vt.Modifier.
func splitModifier(key string) (vt.Modifier, string) {
	var mod vt.Modifier
	for {
		switch {
		case strings.HasPrefix(key, "S-"):
			mod |= vt.ModShift
			key = key[2:]
		case strings.HasPrefix(key, "C-"):
			mod |= vt.ModCtrl
			key = key[2:]
		case strings.HasPrefix(key, "M-") && len(key) > 3:
			mod |= vt.ModAlt
			key = key[2:]
		default:
			return mod, key
		}
	}
}

// stderrBell rings the bell by writing BEL to the host's stderr, which
// most terminal emulators react to even while the host fd is in raw
// mode and stdout is mid-repaint.
type stderrBell struct{}

func (stderrBell) Bell() { os.Stderr.WriteString("\a") }
