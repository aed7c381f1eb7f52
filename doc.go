// Package vt is a pure-software VT-compatible terminal emulator core: a
// control-sequence parser, a two-buffer screen model, and a style
// engine, with no dependency on any concrete PTY or display.
//
// # Basic usage
//
//	term := vt.New(vt.WithSize(80, 24))
//	term.Feed(bytesFromChildProcess)
//	fmt.Print(term.CapturePane())
//
// The host owns the byte stream in both directions: Feed consumes what
// a child process writes, and the Input* methods queue what the host
// should write back (arrow keys, Ctrl sequences, mouse reports), which
// DrainResponses hands over alongside device-query replies like DA and
// DSR.
//
// # Architecture
//
// Feed decodes UTF-8 (buffering partial trailing sequences across
// calls) and hands each rune to an internal parser, a state machine
// over C0/C1 controls, CSI, OSC, DCS, APC, PM, and SOS. The parser
// dispatches recognized sequences onto the Terminal, which owns both
// screen Buffers, the cursor, the scroll region, character-set
// designation state, and the current Style. Style and Color are
// immutable values; ParseSGR/Merge/Diff/ToANSI implement the SGR
// parsing and rendering rules independently of any Terminal instance.
//
// # What is out of scope
//
// Allocating a pseudo-terminal, spawning a child process, putting the
// host's own terminal into raw mode, and turning rendered lines into
// pixels on a display are all the host's job. cmd/vtdemo wires this
// core into exactly such a host, for manual testing.
package vt
