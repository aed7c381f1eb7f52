package vt

import "sync"

// Terminal is the core emulator: it owns both screen buffers, the
// cursor, modes, scroll region, charset state, current style and
// response queue, and is driven by a single Feed entry point per spec
// §2/§6. All methods are safe for concurrent use; an internal mutex
// serializes access (spec §5: "at most one writer at a time... no
// locking inside the core" is achieved here by the Terminal being the
// one lock owner, not by leaving callers to coordinate it themselves).
//
// Grounded on the teacher's Buffer (phroun-purfecterm/buffer.go), which
// bundles exactly this set of concerns into one type; SPEC_FULL.md
// splits "buffer" (the Cell grid) out as its own type and promotes
// Terminal to own it, matching spec §3's "Terminal owns both Buffers...".
type Terminal struct {
	mu sync.Mutex

	width, height int

	primary, alt    *Buffer
	onAltScreen     bool
	savedPrimary    savedCursor
	savedAlt        savedCursor

	cursor       Cursor
	scrollTop    int
	scrollBottom int

	modes   map[Mode]bool
	charset charsetState
	style   Style

	title, iconTitle string

	defaultFg, defaultBg, cursorColor Color

	responses []byte

	parser  parser
	decoder utf8Decoder

	logger     Logger
	bell       BellProvider
	title_     TitleProvider
	clipboard  ClipboardProvider
}

// Option configures a Terminal at construction time, in the style of
// danielgatis-go-headless-term's With* functional options.
type Option func(*Terminal)

// WithSize sets the initial screen dimensions (default 80x24).
func WithSize(width, height int) Option {
	return func(t *Terminal) { t.width, t.height = width, height }
}

// WithLogger installs a debug Logger (default: NoopLogger).
func WithLogger(l Logger) Option {
	return func(t *Terminal) { t.logger = l }
}

// WithBell installs a BellProvider (default: NoopBell).
func WithBell(b BellProvider) Option {
	return func(t *Terminal) { t.bell = b }
}

// WithTitleProvider installs a TitleProvider (default: NoopTitle).
func WithTitleProvider(p TitleProvider) Option {
	return func(t *Terminal) { t.title_ = p }
}

// WithClipboard installs a ClipboardProvider (default: NoopClipboard).
func WithClipboard(c ClipboardProvider) Option {
	return func(t *Terminal) { t.clipboard = c }
}

// New constructs a Terminal, defaulting to 80x24 per spec §6.
func New(opts ...Option) *Terminal {
	t := &Terminal{width: 80, height: 24}
	for _, o := range opts {
		o(t)
	}
	t.logger = orDefault(t.logger, Logger(NoopLogger{}))
	t.bell = orDefault(t.bell, BellProvider(NoopBell{}))
	t.title_ = orDefault(t.title_, TitleProvider(NoopTitle{}))
	t.clipboard = orDefault(t.clipboard, ClipboardProvider(NoopClipboard{}))

	t.primary = NewBuffer(t.width, t.height)
	t.alt = NewBuffer(t.width, t.height)
	t.modes = defaultModes()
	t.charset = newCharsetState()
	t.cursor = Cursor{Visible: true}
	t.scrollTop, t.scrollBottom = 0, t.height-1
	t.defaultFg, t.defaultBg, t.cursorColor = Default, Default, Default
	t.parser.term = t
	return t
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// Size returns the current screen dimensions.
func (t *Terminal) Size() (width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

func (t *Terminal) buf() *Buffer {
	if t.onAltScreen {
		return t.alt
	}
	return t.primary
}

// Feed decodes data as UTF-8 (buffering any partial trailing sequence
// across calls, replacing invalid sequences with U+FFFD) and drives the
// parser over the resulting runes. It never returns an error: per spec
// §7, feed always succeeds from the caller's perspective.
func (t *Terminal) Feed(data []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.decoder.decode(data, func(r rune) { t.parser.step(r) })
}

// FeedString is Feed for already-decoded text.
func (t *Terminal) FeedString(s string) {
	t.Feed([]byte(s))
}

// Resize changes the screen dimensions, per spec §4.4: both buffers are
// resized, the cursor and scroll region are clamped to fit.
func (t *Terminal) Resize(width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if width <= 0 || height <= 0 {
		return
	}
	t.width, t.height = width, height
	t.primary.Resize(width, height)
	t.alt.Resize(width, height)
	if t.cursor.X > width {
		t.cursor.X = width
	}
	if t.cursor.Y >= height {
		t.cursor.Y = height - 1
	}
	if t.scrollBottom >= height || t.scrollBottom <= t.scrollTop {
		t.scrollBottom = height - 1
	}
	if t.scrollTop >= height {
		t.scrollTop = 0
	}
}

// Reset restores the state ESC c / RIS produces: screen cleared, modes,
// style and saved cursor reset, parser state cleared — spec §6, "a state
// indistinguishable from a fresh new(width, height) of the same
// dimensions" (spec §8 invariant 9).
func (t *Terminal) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resetLocked()
}

func (t *Terminal) resetLocked() {
	t.primary = NewBuffer(t.width, t.height)
	t.alt = NewBuffer(t.width, t.height)
	t.onAltScreen = false
	t.savedPrimary = savedCursor{}
	t.savedAlt = savedCursor{}
	t.cursor = Cursor{Visible: true}
	t.scrollTop, t.scrollBottom = 0, t.height-1
	t.modes = defaultModes()
	t.charset.reset()
	t.style = Style{}
	t.title, t.iconTitle = "", ""
	t.defaultFg, t.defaultBg, t.cursorColor = Default, Default, Default
	t.responses = nil
	t.parser.reset()
	t.decoder = utf8Decoder{}
}

// CapturePane returns a plain-text snapshot of the visible screen: rows
// joined by LF, trailing spaces on each row stripped, trailing empty rows
// dropped (spec §6). It is pure: calling it never mutates the Terminal.
func (t *Terminal) CapturePane() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	b := t.buf()
	rows := make([]string, t.height)
	for y := 0; y < t.height; y++ {
		rows[y] = b.PlainRow(y)
	}
	end := len(rows)
	for end > 0 && rows[end-1] == "" {
		end--
	}
	out := rows[:end]
	var sb []byte
	for i, r := range out {
		if i > 0 {
			sb = append(sb, '\n')
		}
		sb = append(sb, r...)
	}
	return string(sb)
}

// Cell returns the cell at (x, y) on the visible screen, or the default
// cell if out of bounds (spec §8 invariant 3).
func (t *Terminal) Cell(x, y int) Cell {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf().Get(x, y)
}

// CursorPosition returns the current cursor position and visibility.
func (t *Terminal) CursorPosition() Cursor {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cursor
}

// IsAlternateScreen reports whether the alternate buffer is active.
func (t *Terminal) IsAlternateScreen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.onAltScreen
}

// Title and IconTitle return the strings last set by OSC 0/1/2.
func (t *Terminal) Title() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.title
}

func (t *Terminal) IconTitle() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.iconTitle
}

// HasMode reports whether mode is currently set.
func (t *Terminal) HasMode(m Mode) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.modes[m]
}

// DrainResponses returns and clears the queued bytes produced by device
// queries (DA, DSR, DECRQM, OSC 10/11 with "?") for the host to forward
// to the child process (spec §6).
func (t *Terminal) DrainResponses() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.responses
	t.responses = nil
	return out
}

func (t *Terminal) queueResponse(b []byte) {
	t.responses = append(t.responses, b...)
}
