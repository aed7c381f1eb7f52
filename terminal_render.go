package vt

import "strings"

// Line and LineTokens are the styled-line accessors of spec §6
// (get_line / get_line_tuple): a host renderer reads one row at a time
// instead of replaying the whole byte stream itself. Grounded on
// patrick-goecommerce-Multiterminal-UI's Screen.Render (track the
// previous cell's Style, emit a transition only when it changes), using
// this module's own Diff/ToANSI instead of hand-rolled SGR formatting.

// RenderToken is one run of cells sharing a Style: the structured form
// behind get_line_tuple, for host renderers that don't want to parse
// ANSI back out.
type RenderToken struct {
	Style  Style
	Text   string
	Cursor bool // true if the cursor marker falls within this run
}

// LineOptions configures Line/LineTokens with the optional cursor
// marker described in spec §6 ("...cursor_x?, cursor_y?, show_cursor?").
type LineOptions struct {
	CursorX, CursorY int
	ShowCursor       bool
}

func (t *Terminal) lineCells(y int) []Cell {
	b := t.buf()
	row := b.Row(y)
	out := make([]Cell, len(row))
	copy(out, row)
	return out
}

// applyCursorMarker reverses the video attribute of the cursor's cell,
// the same visual convention a real terminal's own cursor uses, so
// hosts that render get_line directly see a cursor without needing to
// track it themselves.
func applyCursorMarker(cells []Cell, opts LineOptions, y int) {
	if !opts.ShowCursor || opts.CursorY != y {
		return
	}
	x := opts.CursorX
	if x < 0 || x >= len(cells) {
		return
	}
	c := cells[x]
	c.Style = c.Style.with(attrReverse, !c.Style.Reverse())
	cells[x] = c
}

// Line renders row y as a styled ANSI string: SGR transitions plus
// text, ready to write straight to a host display.
func (t *Terminal) Line(y int, opts LineOptions) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if y < 0 || y >= t.height {
		return ""
	}
	cells := t.lineCells(y)
	applyCursorMarker(cells, opts, y)

	var b strings.Builder
	prev := Style{}
	wroteAny := false
	for _, c := range cells {
		if c.Continuation {
			continue
		}
		if !wroteAny || c.Style != prev {
			if d := Diff(prev, c.Style); d != "" {
				b.WriteString(d)
			}
			prev = c.Style
		}
		wroteAny = true
		b.WriteRune(c.Rune())
	}
	if wroteAny && prev != (Style{}) {
		b.WriteString("\x1b[0m")
	}
	return b.String()
}

// LineTokens renders row y as a sequence of (Style, Text) runs, for
// renderers that want structure instead of an ANSI string to re-parse.
func (t *Terminal) LineTokens(y int, opts LineOptions) []RenderToken {
	t.mu.Lock()
	defer t.mu.Unlock()
	if y < 0 || y >= t.height {
		return nil
	}
	cells := t.lineCells(y)
	applyCursorMarker(cells, opts, y)

	var tokens []RenderToken
	for x, c := range cells {
		if c.Continuation {
			continue
		}
		isCursor := opts.ShowCursor && opts.CursorY == y && opts.CursorX == x
		if n := len(tokens); n > 0 && tokens[n-1].Style == c.Style && !isCursor && !tokens[n-1].Cursor {
			tokens[n-1].Text += string(c.Rune())
			continue
		}
		tokens = append(tokens, RenderToken{Style: c.Style, Text: string(c.Rune()), Cursor: isCursor})
	}
	return tokens
}
