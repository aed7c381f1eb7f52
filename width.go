package vt

// runeWidth returns the number of columns r occupies: 0 for combining
// marks, 2 for East-Asian wide/fullwidth characters, 1 otherwise
// (including NUL and control characters). Per spec §9 this is an optional extension
// beyond the source's single-code-point-per-cell model; the ranges below
// cover the common CJK/fullwidth blocks without pulling in a width table
// library (none ships in the retrieved pack with source to ground an
// adaptation on, and the spec marks wide-character support as
// deferrable).
func runeWidth(r rune) int {
	if r == 0 {
		return 1
	}
	if isCombiningMark(r) {
		return 0
	}
	if r < 0x1100 {
		return 1
	}
	for _, rg := range wideRanges {
		if r >= rg.lo && r <= rg.hi {
			return 2
		}
	}
	return 1
}

type runeRange struct{ lo, hi rune }

var wideRanges = []runeRange{
	{0x1100, 0x115F},   // Hangul Jamo
	{0x2E80, 0x303E},   // CJK Radicals, Kangxi, CJK Symbols/Punctuation
	{0x3041, 0x33FF},   // Hiragana .. CJK Compatibility
	{0x3400, 0x4DBF},   // CJK Extension A
	{0x4E00, 0x9FFF},   // CJK Unified Ideographs
	{0xA000, 0xA4CF},   // Yi Syllables/Radicals
	{0xAC00, 0xD7A3},   // Hangul Syllables
	{0xF900, 0xFAFF},   // CJK Compatibility Ideographs
	{0xFE30, 0xFE4F},   // CJK Compatibility Forms
	{0xFF00, 0xFF60},   // Fullwidth Forms
	{0xFFE0, 0xFFE6},   // Fullwidth Signs
	{0x20000, 0x3FFFD}, // CJK Extension B and beyond, supplementary planes
}

// isCombiningMark reports whether r is a zero-width combining mark that
// should attach to the previous cell rather than advance the cursor.
func isCombiningMark(r rune) bool {
	switch {
	case r >= 0x0300 && r <= 0x036F: // Combining Diacritical Marks
		return true
	case r >= 0x1AB0 && r <= 0x1AFF:
		return true
	case r >= 0x1DC0 && r <= 0x1DFF:
		return true
	case r >= 0x20D0 && r <= 0x20FF:
		return true
	case r >= 0xFE20 && r <= 0xFE2F:
		return true
	default:
		return false
	}
}
