package vt

// Providers let a host observe events the core itself has no opinion
// about, without forcing every Terminal to wire one up. Each interface is
// small and has a no-op default, following the pattern in
// danielgatis-go-headless-term's providers.go (BellProvider,
// TitleProvider, ClipboardProvider): none of these are required for
// correct emulation, all affect only what the host is told.

// BellProvider handles the bell character (BEL, 0x07).
type BellProvider interface {
	Bell()
}

// NoopBell is the default BellProvider: it does nothing.
type NoopBell struct{}

func (NoopBell) Bell() {}

// TitleProvider is notified when OSC 0/1/2 change the window or icon
// title. The Terminal also stores the latest values itself (spec §3), so
// this is purely a convenience for hosts that want to react immediately
// rather than poll Title()/IconTitle().
type TitleProvider interface {
	SetTitle(title string)
	SetIconTitle(title string)
}

// NoopTitle is the default TitleProvider.
type NoopTitle struct{}

func (NoopTitle) SetTitle(string)     {}
func (NoopTitle) SetIconTitle(string) {}

// ClipboardProvider backs OSC 52 clipboard read/write requests. data is
// the raw base64 payload exactly as it appeared in the sequence; spec
// §4.3 only requires OSC 52 to be "consumed without effect" by default,
// so the no-op provider is a legitimate terminal, not just a stub.
type ClipboardProvider interface {
	SetClipboard(selection string, data string)
	GetClipboard(selection string) (data string, ok bool)
}

// NoopClipboard is the default ClipboardProvider.
type NoopClipboard struct{}

func (NoopClipboard) SetClipboard(string, string)       {}
func (NoopClipboard) GetClipboard(string) (string, bool) { return "", false }

// Logger is the optional debug-logging hook described in SPEC_FULL.md.
// The Terminal stores the installed Logger but reports nothing through
// it; nothing about parsing correctness depends on it being set.
type Logger interface {
	Debugf(format string, args ...any)
}

// NoopLogger is the default Logger: it discards everything.
type NoopLogger struct{}

func (NoopLogger) Debugf(string, ...any) {}
