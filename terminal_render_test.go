package vt

import "testing"

func TestLinePlainTextNoStyle(t *testing.T) {
	term := New(WithSize(10, 1))
	term.FeedString("hi")
	want := "hi        " // full row width, unstyled cells render as spaces
	if got := term.Line(0, LineOptions{}); got != want {
		t.Errorf("expected unstyled line to render as plain text, got %q", got)
	}
}

func TestLineEmitsSGRTransition(t *testing.T) {
	term := New(WithSize(10, 1))
	term.FeedString("\x1b[1mbold\x1b[0mplain")
	got := term.Line(0, LineOptions{})
	want := "\x1b[0m\x1b[1mbold\x1b[0mplain "
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestLineOutOfRangeIsEmpty(t *testing.T) {
	term := New(WithSize(10, 1))
	if got := term.Line(5, LineOptions{}); got != "" {
		t.Errorf("expected empty string for out-of-range row, got %q", got)
	}
}

func TestLineTokensGroupRunsByStyle(t *testing.T) {
	term := New(WithSize(10, 1))
	term.FeedString("\x1b[1mab\x1b[0mcd")
	tokens := term.LineTokens(0, LineOptions{})
	if len(tokens) != 2 {
		t.Fatalf("expected 2 runs, got %d: %+v", len(tokens), tokens)
	}
	if tokens[0].Text != "ab" || !tokens[0].Style.Bold() {
		t.Errorf("expected first run 'ab' bold, got %+v", tokens[0])
	}
	// the remainder of the row is unstyled default cells, which merge
	// into the same run as "cd" since they share its (empty) Style.
	if tokens[1].Text != "cd      " || tokens[1].Style.Bold() {
		t.Errorf("expected second run 'cd' + trailing blanks, plain, got %+v", tokens[1])
	}
}

func TestLineTokensCursorMarkerBreaksRun(t *testing.T) {
	term := New(WithSize(10, 1))
	term.FeedString("abc")
	tokens := term.LineTokens(0, LineOptions{CursorX: 1, CursorY: 0, ShowCursor: true})

	found := false
	for _, tok := range tokens {
		if tok.Cursor {
			found = true
			if tok.Text != "b" {
				t.Errorf("expected cursor run to isolate the cursor cell 'b', got %q", tok.Text)
			}
		}
	}
	if !found {
		t.Errorf("expected one token marked as the cursor, got %+v", tokens)
	}
}
