package vt

import "testing"

func collectRunes(d *utf8Decoder, chunks ...[]byte) []rune {
	var out []rune
	for _, c := range chunks {
		d.decode(c, func(r rune) { out = append(out, r) })
	}
	return out
}

func TestUTF8DecoderASCII(t *testing.T) {
	var d utf8Decoder
	got := collectRunes(&d, []byte("abc"))
	want := []rune{'a', 'b', 'c'}
	if string(got) != string(want) {
		t.Errorf("got %q want %q", string(got), string(want))
	}
}

func TestUTF8DecoderSplitMultibyteAcrossCalls(t *testing.T) {
	var d utf8Decoder
	full := []byte("中") // 3-byte UTF-8 sequence
	got := collectRunes(&d, full[:1], full[1:])
	if string(got) != "中" {
		t.Errorf("expected multibyte rune reassembled across calls, got %q", string(got))
	}
}

func TestUTF8DecoderInvalidByteBecomesReplacementChar(t *testing.T) {
	var d utf8Decoder
	got := collectRunes(&d, []byte{0xFF, 'x'})
	if len(got) != 2 || got[0] != '�' || got[1] != 'x' {
		t.Errorf("expected [U+FFFD, 'x'], got %v", got)
	}
}
