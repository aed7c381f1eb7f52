package vt

import "strconv"

// ColorKind discriminates the variants of Color.
type ColorKind uint8

const (
	// ColorDefault is the terminal's default foreground/background (SGR 39/49).
	ColorDefault ColorKind = iota
	// ColorIndexed is one of the 256 indexed colors (0-7 normal, 8-15 bright,
	// 16-255 extended palette).
	ColorIndexed
	// ColorRGB is a 24-bit true color.
	ColorRGB
)

// Color is a tagged union over the three ways a cell's foreground or
// background can be specified. The zero value is ColorDefault, so a
// zero-value Color is the default color.
type Color struct {
	Kind    ColorKind
	Index   uint8 // valid when Kind == ColorIndexed
	R, G, B uint8 // valid when Kind == ColorRGB
}

// Default is the default-color value, equal to the zero Color.
var Default = Color{}

// Indexed builds an indexed color, 0-255.
func Indexed(idx uint8) Color {
	return Color{Kind: ColorIndexed, Index: idx}
}

// RGB builds a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// IsDefault reports whether c is the default color.
func (c Color) IsDefault() bool {
	return c.Kind == ColorDefault
}

// sgrFragment returns the parameter fragment used after the 38 (fg) or 48
// (bg) introducer: "" for default, "5;N" for indexed, "2;R;G;B" for RGB.
func (c Color) sgrFragment() string {
	switch c.Kind {
	case ColorIndexed:
		return "5;" + strconv.Itoa(int(c.Index))
	case ColorRGB:
		return "2;" + strconv.Itoa(int(c.R)) + ";" + strconv.Itoa(int(c.G)) + ";" + strconv.Itoa(int(c.B))
	default:
		return ""
	}
}

// ansiCode returns the complete SGR code(s) that set this color, given
// whether it is a foreground or background color. The default color
// yields "39" (fg) or "49" (bg).
func (c Color) ansiCode(fg bool) string {
	switch c.Kind {
	case ColorDefault:
		if fg {
			return "39"
		}
		return "49"
	case ColorIndexed:
		idx := int(c.Index)
		switch {
		case idx < 8:
			if fg {
				return strconv.Itoa(30 + idx)
			}
			return strconv.Itoa(40 + idx)
		case idx < 16:
			if fg {
				return strconv.Itoa(90 + idx - 8)
			}
			return strconv.Itoa(100 + idx - 8)
		default:
			if fg {
				return "38;" + c.sgrFragment()
			}
			return "48;" + c.sgrFragment()
		}
	case ColorRGB:
		if fg {
			return "38;" + c.sgrFragment()
		}
		return "48;" + c.sgrFragment()
	}
	return ""
}

// ansiRGB holds the standard 16-color ANSI palette used to resolve indexed
// colors 0-15 to RGB for hosts that want a concrete pixel value.
var ansiRGB = [16][3]uint8{
	{0, 0, 0}, {170, 0, 0}, {0, 170, 0}, {170, 85, 0},
	{0, 0, 170}, {170, 0, 170}, {0, 170, 170}, {170, 170, 170},
	{85, 85, 85}, {255, 85, 85}, {85, 255, 85}, {255, 255, 85},
	{85, 85, 255}, {255, 85, 255}, {85, 255, 255}, {255, 255, 255},
}

// Resolve256 returns the RGB value of one of the 256 indexed colors: the
// 16 standard colors, the 6x6x6 color cube (16-231), and the 24-step
// grayscale ramp (232-255).
func Resolve256(idx uint8) (r, g, b uint8) {
	switch {
	case idx < 16:
		c := ansiRGB[idx]
		return c[0], c[1], c[2]
	case idx < 232:
		i := int(idx) - 16
		b := i % 6
		g := (i / 6) % 6
		r := i / 36
		return uint8(r * 51), uint8(g * 51), uint8(b * 51)
	default:
		gray := uint8((int(idx)-232)*10 + 8)
		return gray, gray, gray
	}
}

// ResolveRGB resolves any Color to a concrete RGB triple. When c is the
// default color, fallback is used instead (and is itself expected to be a
// concrete, non-default color chosen by the host).
func ResolveRGB(c, fallback Color) (r, g, b uint8) {
	switch c.Kind {
	case ColorIndexed:
		return Resolve256(c.Index)
	case ColorRGB:
		return c.R, c.G, c.B
	default:
		switch fallback.Kind {
		case ColorIndexed:
			return Resolve256(fallback.Index)
		case ColorRGB:
			return fallback.R, fallback.G, fallback.B
		default:
			return 0, 0, 0
		}
	}
}
