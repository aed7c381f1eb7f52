package vt

import "unicode/utf8"

// utf8Decoder incrementally decodes a byte stream to runes, buffering a
// partial multi-byte sequence across Feed calls (spec §5: "retains at
// most 3 trailing bytes across calls"). Invalid sequences are replaced
// with U+FFFD per the standard UTF-8 substitution rule (spec §7).
type utf8Decoder struct {
	pending [4]byte
	n       int
}

// decode appends data to any previously buffered bytes and calls emit for
// every complete rune produced, in order. Bytes that still don't form a
// complete sequence at the end of data are retained for the next call.
func (d *utf8Decoder) decode(data []byte, emit func(rune)) {
	if d.n > 0 {
		buf := append(append([]byte{}, d.pending[:d.n]...), data...)
		d.n = 0
		d.decodeBuf(buf, emit)
		return
	}
	d.decodeBuf(data, emit)
}

func (d *utf8Decoder) decodeBuf(buf []byte, emit func(rune)) {
	for len(buf) > 0 {
		if buf[0] < utf8.RuneSelf {
			emit(rune(buf[0]))
			buf = buf[1:]
			continue
		}
		r, size := utf8.DecodeRune(buf)
		if r == utf8.RuneError && size <= 1 {
			if !utf8.FullRune(buf) && len(buf) < utf8.UTFMax {
				// Might be a valid sequence truncated by a chunk boundary.
				d.n = copy(d.pending[:], buf)
				return
			}
			emit(utf8.RuneError)
			buf = buf[1:]
			continue
		}
		emit(r)
		buf = buf[size:]
	}
}
