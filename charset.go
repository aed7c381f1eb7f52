package vt

// charsetID identifies one of the designatable character sets, named by
// the single byte that follows ESC ( / ) / * / + in an SCS sequence.
type charsetID byte

const (
	charsetASCII          charsetID = 'B'
	charsetUK             charsetID = 'A'
	charsetDECSpecial     charsetID = '0'
	charsetDECTechnical   charsetID = '>'
	charsetGerman         charsetID = 'K'
	charsetFrench         charsetID = 'R'
	charsetItalian        charsetID = 'Y'
	charsetSpanish        charsetID = 'Z'
	charsetSwedish        charsetID = 'H'
	charsetDanishNorway   charsetID = 'E'
	charsetFinnish        charsetID = 'C'
	charsetDutch          charsetID = '4'
	charsetFrenchCanadian charsetID = 'Q'
	charsetJapaneseRoman  charsetID = 'J'
	charsetSwiss          charsetID = '='
)

// translate applies the character-set translation table for id to r,
// returning r unchanged if id is unknown or has no mapping for r.
func (id charsetID) translate(r rune) rune {
	tbl, ok := charsetTables[id]
	if !ok {
		return r
	}
	if out, ok := tbl[r]; ok {
		return out
	}
	return r
}

// charsetTables holds the static translation maps for every designator
// the parser recognizes. Only DEC Special Graphics and the national
// variants replace anything, and only characters within 0x23-0x7E (most
// national variants replace just a handful of punctuation positions);
// everything else passes through unchanged.
var charsetTables = map[charsetID]map[rune]rune{
	charsetDECSpecial:     decSpecialGraphics,
	charsetUK:              {'#': '£'},
	charsetGerman:          {'@': '§', '[': 'Ä', '\\': 'Ö', ']': 'Ü', '{': 'ä', '|': 'ö', '}': 'ü', '~': 'ß'},
	charsetFrench:          {'#': '£', '@': 'à', '[': '°', '\\': 'ç', ']': '§', '{': 'é', '|': 'ù', '}': 'è', '~': '¨'},
	charsetFrenchCanadian:  {'@': 'à', '[': '¢', '\\': 'ç', ']': 'ê', '^': 'î', '`': 'ô', '{': 'é', '|': 'ù', '}': 'è', '~': 'û'},
	charsetSwedish:         {'@': 'É', '[': 'Ä', '\\': 'Ö', ']': 'Å', '^': 'Ü', '`': 'é', '{': 'ä', '|': 'ö', '}': 'å', '~': 'ü'},
	charsetDanishNorway:    {'@': 'Ä', '[': 'Æ', '\\': 'Ø', ']': 'Å', '`': 'ä', '{': 'æ', '|': 'ø', '}': 'å'},
	charsetItalian:         {'#': '£', '@': '§', '[': '°', '\\': 'ç', ']': 'é', '`': 'ù', '{': 'à', '|': 'ò', '}': 'è', '~': 'ì'},
	charsetSpanish:         {'#': '£', '@': '§', '[': '¡', '\\': 'Ñ', ']': '¿', '{': '°', '|': 'ñ', '}': 'ç'},
	charsetFinnish:         {'[': 'Ä', '\\': 'Ö', ']': 'Å', '^': 'Ü', '`': 'é', '{': 'ä', '|': 'ö', '}': 'å', '~': 'ü'},
	charsetDutch:           {'#': '£', '@': '¾', '[': 'ĳ', '\\': '½', ']': '|', '{': '¨', '|': 'f', '}': '¼', '~': '´'},
	charsetSwiss:           {'#': 'ù', '@': 'à', '[': 'é', '\\': 'ç', ']': 'ê', '^': 'î', '_': 'è', '`': 'ô', '{': 'ä', '|': 'ö', '}': 'ü', '~': 'û'},
}

// decSpecialGraphics is the DEC Special Graphics and Line Drawing set
// (vt100 "0" designator): box-drawing and miscellaneous symbols mapped
// onto the printable ASCII range 0x5F-0x7E.
var decSpecialGraphics = map[rune]rune{
	'_': ' ',      // blank
	'`': '◆',      // diamond
	'a': '▒',      // checkerboard
	'b': '␉',      // HT symbol
	'c': '␌',      // FF symbol
	'd': '␍',      // CR symbol
	'e': '␊',      // LF symbol
	'f': '°',      // degree
	'g': '±',      // plus/minus
	'h': '␤',      // NL symbol
	'i': '␋',      // VT symbol
	'j': '┘',      // lower right corner
	'k': '┐',      // upper right corner
	'l': '┌',      // upper left corner
	'm': '└',      // lower left corner
	'n': '┼',      // crossing lines
	'o': '⎺',      // horizontal line, scan 1
	'p': '⎻',      // horizontal line, scan 3
	'q': '─',      // horizontal line, scan 5 (center)
	'r': '⎼',      // horizontal line, scan 7
	's': '⎽',      // horizontal line, scan 9
	't': '├',      // left tee
	'u': '┤',      // right tee
	'v': '┴',      // bottom tee
	'w': '┬',      // top tee
	'x': '│',      // vertical bar
	'y': '≤',      // less than or equal
	'z': '≥',      // greater than or equal
	'{': 'π',      // pi
	'|': '≠',      // not equal
	'}': '£',      // pound sterling
	'~': '·',      // centered dot
}

// decTechnical is the table for the (rarely implemented) DEC Technical
// character set. It is empty: the set can be designated, but every
// character passes through it unchanged.
var decTechnical = map[rune]rune{}

func init() {
	charsetTables[charsetDECTechnical] = decTechnical
}

// charsetState is the four-designator G0..G3 state machine of spec §4.5:
// each slot names a translation table, one slot is "active", and a
// single-shift override applies to exactly the next character.
type charsetState struct {
	g           [4]charsetID
	active      int
	singleShift int // 0 = none, else 2 or 3
}

func newCharsetState() charsetState {
	return charsetState{g: [4]charsetID{charsetASCII, charsetASCII, charsetASCII, charsetASCII}}
}

// designate sets slot g (0-3) to id.
func (c *charsetState) designate(slot int, id charsetID) {
	if slot >= 0 && slot < 4 {
		c.g[slot] = id
	}
}

// shiftIn/shiftOut implement SI/SO: SO activates G1, SI activates G0.
func (c *charsetState) shiftOut() { c.active = 1 }
func (c *charsetState) shiftIn()  { c.active = 0 }

// singleShift2/3 implement SS2/SS3: the override applies to the next
// translated character only.
func (c *charsetState) singleShift2() { c.singleShift = 2 }
func (c *charsetState) singleShift3() { c.singleShift = 3 }

// translate looks up r in whichever set is active for exactly this
// character (the single-shift override if one is pending, else the
// active G-slot), clearing the override afterward.
func (c *charsetState) translate(r rune) rune {
	slot := c.active
	if c.singleShift != 0 {
		slot = c.singleShift
		c.singleShift = 0
	}
	return c.g[slot].translate(r)
}

// reset restores the state ESC c (RIS) produces: all designators back to
// US ASCII, G0 active, no pending single shift.
func (c *charsetState) reset() {
	*c = newCharsetState()
}
