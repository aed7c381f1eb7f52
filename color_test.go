package vt

import "testing"

func TestColorDefaultIsZeroValue(t *testing.T) {
	var c Color
	if !c.IsDefault() || c != Default {
		t.Errorf("expected zero Color to equal Default")
	}
}

func TestAnsiCodeIndexedLow(t *testing.T) {
	if got := Indexed(3).ansiCode(true); got != "33" {
		t.Errorf("expected fg code 33 for indexed 3, got %q", got)
	}
	if got := Indexed(3).ansiCode(false); got != "43" {
		t.Errorf("expected bg code 43 for indexed 3, got %q", got)
	}
}

func TestAnsiCodeIndexedBright(t *testing.T) {
	if got := Indexed(9).ansiCode(true); got != "91" {
		t.Errorf("expected fg code 91 for indexed 9, got %q", got)
	}
}

func TestAnsiCodeIndexedExtended(t *testing.T) {
	if got := Indexed(200).ansiCode(true); got != "38;5;200" {
		t.Errorf("expected extended fg code, got %q", got)
	}
}

func TestAnsiCodeRGB(t *testing.T) {
	if got := RGB(10, 20, 30).ansiCode(false); got != "48;2;10;20;30" {
		t.Errorf("expected rgb bg code, got %q", got)
	}
}

func TestResolve256Standard(t *testing.T) {
	r, g, b := Resolve256(1)
	if r != 170 || g != 0 || b != 0 {
		t.Errorf("expected standard red for index 1, got (%d,%d,%d)", r, g, b)
	}
}

func TestResolve256Grayscale(t *testing.T) {
	r, g, b := Resolve256(232)
	if r != 8 || g != 8 || b != 8 {
		t.Errorf("expected first grayscale step to be 8,8,8, got (%d,%d,%d)", r, g, b)
	}
}

func TestResolveRGBDefaultUsesFallback(t *testing.T) {
	r, g, b := ResolveRGB(Default, RGB(1, 2, 3))
	if r != 1 || g != 2 || b != 3 {
		t.Errorf("expected default color to resolve via fallback, got (%d,%d,%d)", r, g, b)
	}
}

func TestResolveRGBConcreteColorIgnoresFallback(t *testing.T) {
	r, g, b := ResolveRGB(RGB(9, 9, 9), RGB(1, 2, 3))
	if r != 9 || g != 9 || b != 9 {
		t.Errorf("expected concrete color to ignore fallback, got (%d,%d,%d)", r, g, b)
	}
}
