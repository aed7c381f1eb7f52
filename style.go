package vt

import (
	"strconv"
	"strings"
	"sync"
)

// attrBit is a bitmask over the tri-state boolean attributes of a Style.
type attrBit uint16

const (
	attrBold attrBit = 1 << iota
	attrDim
	attrItalic
	attrUnderline
	attrBlink
	attrReverse
	attrConceal
	attrStrike
	attrFgSet
	attrBgSet
)

// Style is an immutable record of a cell's rendering attributes. The zero
// value is the default style: default colors, every attribute unset.
//
// Boolean attributes are tracked with two bitsets during parsing and
// merging: set (the attribute is explicitly on or off) and val (the value
// when set). A field that is unset in a Style contributes nothing when
// that Style is merged as the "new" side of Merge; see Merge.
type Style struct {
	Fg, Bg Color
	set    attrBit // which attributes are explicitly specified
	val    attrBit // their values, meaningful only where set
	reset  bool    // true if this Style represents an explicit SGR 0
}

func (s Style) has(b attrBit) bool { return s.set&b != 0 && s.val&b != 0 }

// Bold, Dim, Italic, Underline, Blink, Reverse, Conceal and Strike report
// the resolved value of each attribute (false if never set).
func (s Style) Bold() bool      { return s.has(attrBold) }
func (s Style) Dim() bool       { return s.has(attrDim) }
func (s Style) Italic() bool    { return s.has(attrItalic) }
func (s Style) Underline() bool { return s.has(attrUnderline) }
func (s Style) Blink() bool     { return s.has(attrBlink) }
func (s Style) Reverse() bool   { return s.has(attrReverse) }
func (s Style) Conceal() bool   { return s.has(attrConceal) }
func (s Style) Strike() bool    { return s.has(attrStrike) }

func (s Style) with(b attrBit, value bool) Style {
	s.set |= b
	if value {
		s.val |= b
	} else {
		s.val &^= b
	}
	return s
}

// Equal reports whether two styles are identical field by field,
// including which attributes are explicitly specified (so a style with
// bold explicitly cleared is not Equal to the default style, although
// both render the same). Styles are values; == would also work since the
// struct has no pointer/slice fields, but Equal documents the intent at
// call sites.
func (s Style) Equal(o Style) bool {
	return s == o
}

// ParseSGR interprets a sequence of CSI "m" parameters (as produced by the
// parser, already split on ';') against the default style and returns the
// resulting Style. params mirrors spec.md's "SGR parameters": an omitted
// parameter is represented as nil (default), everything else as its
// integer value. Sub-parameters (the colon form "38:2:...") cannot be
// expressed in this params slice; ParseSGRRaw takes the raw strings,
// where a colon-joined run is a single logical parameter, when
// sub-parameter fidelity matters (RGB extended color).
func ParseSGR(params []*int) Style {
	raw := make([]string, len(params))
	for i, p := range params {
		if p == nil {
			raw[i] = ""
		} else {
			raw[i] = strconv.Itoa(*p)
		}
	}
	return ParseSGRRaw(raw)
}

// sgrCacheKey joins raw params into a stable string for memoization.
func sgrCacheKey(raw []string) string {
	return strings.Join(raw, ";")
}

var sgrParseCache = newStyleCache(4096)

// ParseSGRRaw is the full-fidelity entry point: raw is the list of
// semicolon-separated parameter strings exactly as they appeared in the
// escape sequence, each of which may itself contain colon-separated
// sub-parameters (e.g. "38:2:255:128:0"). Results are memoized: the same
// parameter list is expected to recur constantly while rendering a busy
// terminal session.
func ParseSGRRaw(raw []string) Style {
	key := sgrCacheKey(raw)
	if s, ok := sgrParseCache.get(key); ok {
		return s
	}
	s := parseSGR(raw)
	sgrParseCache.put(key, s)
	return s
}

func parseSGR(raw []string) Style {
	if len(raw) == 0 {
		return Style{reset: true}
	}

	var s Style
	i := 0
	for i < len(raw) {
		base, subs := splitSub(raw[i])
		switch base {
		case 0:
			s = Style{reset: true}
		case 1:
			s = s.with(attrBold, true)
		case 2:
			s = s.with(attrDim, true)
		case 3:
			s = s.with(attrItalic, true)
		case 4:
			s = s.with(attrUnderline, true)
		case 5, 6:
			s = s.with(attrBlink, true)
		case 7:
			s = s.with(attrReverse, true)
		case 8:
			s = s.with(attrConceal, true)
		case 9:
			s = s.with(attrStrike, true)
		case 22:
			s = s.with(attrBold, false).with(attrDim, false)
		case 23:
			s = s.with(attrItalic, false)
		case 24:
			s = s.with(attrUnderline, false)
		case 25:
			s = s.with(attrBlink, false)
		case 27:
			s = s.with(attrReverse, false)
		case 28:
			s = s.with(attrConceal, false)
		case 29:
			s = s.with(attrStrike, false)
		case 30, 31, 32, 33, 34, 35, 36, 37:
			s.Fg = Indexed(uint8(base - 30))
			s.set |= attrFgSet
		case 39:
			s.Fg = Default
			s.set |= attrFgSet
		case 40, 41, 42, 43, 44, 45, 46, 47:
			s.Bg = Indexed(uint8(base - 40))
			s.set |= attrBgSet
		case 49:
			s.Bg = Default
			s.set |= attrBgSet
		case 90, 91, 92, 93, 94, 95, 96, 97:
			s.Fg = Indexed(uint8(base - 90 + 8))
			s.set |= attrFgSet
		case 100, 101, 102, 103, 104, 105, 106, 107:
			s.Bg = Indexed(uint8(base - 100 + 8))
			s.set |= attrBgSet
		case 38, 48:
			consumed, color, ok := extendedColor(subs, raw, i)
			if ok {
				if base == 38 {
					s.Fg = color
					s.set |= attrFgSet
				} else {
					s.Bg = color
					s.set |= attrBgSet
				}
			}
			i += consumed
		default:
			// Unknown code: ignored, parsing continues.
		}
		i++
	}
	return s
}

// splitSub splits a raw parameter string like "38:2:255" into its base
// value and colon-separated sub-parameters. An empty string is parameter
// 0 ("" and "0" both default a missing param to its SGR meaning).
func splitSub(raw string) (base int, subs []int) {
	if raw == "" {
		return 0, nil
	}
	parts := strings.Split(raw, ":")
	base, _ = strconv.Atoi(parts[0])
	if len(parts) > 1 {
		subs = make([]int, len(parts)-1)
		for i, p := range parts[1:] {
			if p == "" {
				subs[i] = -1
			} else {
				subs[i], _ = strconv.Atoi(p)
			}
		}
	}
	return base, subs
}

// extendedColor resolves the "38"/"48" extended-color introducer, in
// either its colon sub-parameter form (38:5:n, 38:2:r:g:b, with an
// optional empty colorspace id as the first sub-parameter) or its legacy
// semicolon form (38;5;n, 38;2;r;g;b spread across following params in
// raw starting at index i+1). consumed is how many extra semicolon-joined
// entries in raw were absorbed by the legacy form (0 for the colon form).
func extendedColor(subs []int, raw []string, i int) (consumed int, c Color, ok bool) {
	if len(subs) > 0 {
		switch subs[0] {
		case 5:
			if len(subs) >= 2 {
				return 0, Indexed(uint8(subs[1])), true
			}
		case 2:
			// subs may be [r,g,b] or [colorspace,r,g,b].
			vals := subs[1:]
			if len(vals) >= 4 {
				vals = vals[1:]
			}
			if len(vals) >= 3 {
				return 0, RGB(clampByte(vals[0]), clampByte(vals[1]), clampByte(vals[2])), true
			}
		}
		return 0, Color{}, false
	}

	// Legacy semicolon form: 38;5;n or 38;2;r;g;b.
	next := func(off int) (int, bool) {
		idx := i + off
		if idx >= len(raw) {
			return 0, false
		}
		n, err := strconv.Atoi(raw[idx])
		return n, err == nil
	}
	mode, ok := next(1)
	if !ok {
		return 0, Color{}, false
	}
	switch mode {
	case 5:
		n, ok := next(2)
		if !ok {
			return 0, Color{}, false
		}
		return 2, Indexed(uint8(n)), true
	case 2:
		r, ok1 := next(2)
		g, ok2 := next(3)
		b, ok3 := next(4)
		if !ok1 || !ok2 || !ok3 {
			return 0, Color{}, false
		}
		return 4, RGB(clampByte(r), clampByte(g), clampByte(b)), true
	}
	return 0, Color{}, false
}

func clampByte(n int) uint8 {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// Merge overrides base with new, field by field: any field new leaves
// unspecified inherits from base. A color mentioned in new (even an
// explicit reset to default via SGR 39/49) replaces base's color; a color
// never mentioned passes base's through unchanged. Boolean attributes
// follow the same rule via the tri-state set/val bits. A new produced
// from SGR 0 (new.reset == true) yields Style{} regardless of base.
func Merge(base, new Style) Style {
	if new.reset {
		return Style{}
	}
	out := base
	if new.set&attrFgSet != 0 {
		out.Fg = new.Fg
	}
	if new.set&attrBgSet != 0 {
		out.Bg = new.Bg
	}
	// attributes new didn't touch are inherited from base
	out.set = base.set | new.set
	out.val = (base.val &^ new.set) | (new.val & new.set)
	return out
}

// ToANSI renders the complete SGR sequence that, applied to a
// default-style cursor, produces style. The default style renders as "".
func ToANSI(style Style) string {
	if style == (Style{}) {
		return ""
	}
	var parts []string
	if style.Bold() {
		parts = append(parts, "1")
	}
	if style.Dim() {
		parts = append(parts, "2")
	}
	if style.Italic() {
		parts = append(parts, "3")
	}
	if style.Underline() {
		parts = append(parts, "4")
	}
	if style.Blink() {
		parts = append(parts, "5")
	}
	if style.Reverse() {
		parts = append(parts, "7")
	}
	if style.Conceal() {
		parts = append(parts, "8")
	}
	if style.Strike() {
		parts = append(parts, "9")
	}
	if !style.Fg.IsDefault() {
		parts = append(parts, style.Fg.ansiCode(true))
	}
	if !style.Bg.IsDefault() {
		parts = append(parts, style.Bg.ansiCode(false))
	}
	if len(parts) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(parts, ";") + "m"
}

var toANSICache = newAnsiCache(4096)

// toANSICached memoizes ToANSI, since the same handful of styles recur
// across an entire render pass.
func toANSICached(s Style) string {
	if v, ok := toANSICache.get(s); ok {
		return v
	}
	v := ToANSI(s)
	toANSICache.put(s, v)
	return v
}

// Diff emits the shortest SGR sequence that transitions a host terminal
// currently showing from into to. Per spec §4.1 this may always emit
// "\x1b[0m" + ToANSI(to) rather than a true incremental diff; we take the
// cheap path everywhere except the already-equal and already-default
// cases, which are worth special-casing because they are by far the most
// common transitions in ordinary (mostly unstyled) terminal output.
func Diff(from, to Style) string {
	if from == to {
		return ""
	}
	if to == (Style{}) {
		return "\x1b[0m"
	}
	return "\x1b[0m" + toANSICached(to)
}

type styleCacheEntry struct {
	key string
	val Style
}

// styleCache is a fixed-capacity, lock-protected map cache for SGR parse
// results, keyed by the raw parameter string. Eviction is unordered: on
// overflow we simply clear the map and start over, which is adequate
// because the working set of distinct SGR sequences a real session emits
// is small and stable (a handful of color/attribute combinations reused
// constantly), so a full reset practically never repeats within a single
// render burst.
type styleCache struct {
	mu       sync.Mutex
	capacity int
	m        map[string]Style
}

func newStyleCache(capacity int) *styleCache {
	return &styleCache{capacity: capacity, m: make(map[string]Style, capacity)}
}

func (c *styleCache) get(key string) (Style, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.m[key]
	return s, ok
}

func (c *styleCache) put(key string, s Style) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.m) >= c.capacity {
		c.m = make(map[string]Style, c.capacity)
	}
	c.m[key] = s
}

// ansiCache memoizes Style -> rendered SGR string. Same bounded-eviction
// policy as styleCache.
type ansiCache struct {
	mu       sync.Mutex
	capacity int
	m        map[Style]string
}

func newAnsiCache(capacity int) *ansiCache {
	return &ansiCache{capacity: capacity, m: make(map[Style]string, capacity)}
}

func (c *ansiCache) get(s Style) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[s]
	return v, ok
}

func (c *ansiCache) put(s Style, v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.m) >= c.capacity {
		c.m = make(map[Style]string, c.capacity)
	}
	c.m[s] = v
}
