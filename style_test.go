package vt

import "testing"

func TestParseSGRBoldRed(t *testing.T) {
	s := ParseSGRRaw([]string{"1", "31"})
	if !s.Bold() {
		t.Errorf("expected bold set")
	}
	if s.Fg != Indexed(1) {
		t.Errorf("expected fg red (index 1), got %+v", s.Fg)
	}
}

func TestParseSGRReset(t *testing.T) {
	s := ParseSGRRaw([]string{"0"})
	if s != (Style{reset: true}) {
		t.Errorf("expected reset style, got %+v", s)
	}
}

func TestParseSGREmptyIsReset(t *testing.T) {
	s := ParseSGRRaw(nil)
	if !s.reset {
		t.Errorf("expected empty SGR params to behave like SGR 0")
	}
}

func TestParseSGRTrueColor(t *testing.T) {
	s := ParseSGRRaw([]string{"38", "2", "255", "128", "0"})
	if s.Fg.Kind != ColorRGB || s.Fg.R != 255 || s.Fg.G != 128 || s.Fg.B != 0 {
		t.Errorf("expected rgb(255,128,0) fg, got %+v", s.Fg)
	}
}

func TestParseSGRTrueColorColonForm(t *testing.T) {
	s := ParseSGRRaw([]string{"38:2:255:128:0"})
	if s.Fg.Kind != ColorRGB || s.Fg.R != 255 || s.Fg.G != 128 || s.Fg.B != 0 {
		t.Errorf("expected rgb(255,128,0) fg from colon form, got %+v", s.Fg)
	}
}

func TestParseSGRMalformedExtendedColorIsLenient(t *testing.T) {
	// "38;2;100" declares true color but supplies only one component; the
	// fg color is left unset and the remaining parameters are parsed as
	// independent SGR codes rather than aborting the whole sequence.
	s := ParseSGRRaw([]string{"38", "2", "100"})
	if s.Fg.Kind == ColorRGB {
		t.Errorf("expected no fg color applied when legacy form is short, got %+v", s.Fg)
	}
}

func TestParseSGRIndexed256(t *testing.T) {
	s := ParseSGRRaw([]string{"48", "5", "200"})
	if s.Bg != Indexed(200) {
		t.Errorf("expected bg indexed(200), got %+v", s.Bg)
	}
}

func TestMergeInheritsUntouchedFields(t *testing.T) {
	base := ParseSGRRaw([]string{"1", "31"})
	delta := ParseSGRRaw([]string{"4"}) // underline only

	merged := Merge(base, delta)
	if !merged.Bold() {
		t.Errorf("expected bold inherited from base")
	}
	if !merged.Underline() {
		t.Errorf("expected underline from delta")
	}
	if merged.Fg != Indexed(1) {
		t.Errorf("expected fg inherited from base, got %+v", merged.Fg)
	}
}

func TestMergeWithDefaultIsIdentity(t *testing.T) {
	base := ParseSGRRaw([]string{"1", "31", "4"})
	merged := Merge(base, Style{})
	if merged != base {
		t.Errorf("Merge(a, default) should equal a; got %+v want %+v", merged, base)
	}
}

func TestMergeExplicitResetClears(t *testing.T) {
	base := ParseSGRRaw([]string{"1", "31"})
	merged := Merge(base, ParseSGRRaw([]string{"0"}))
	if merged != (Style{}) {
		t.Errorf("expected SGR 0 to clear everything, got %+v", merged)
	}
}

func TestMergeTurningAttributeOff(t *testing.T) {
	base := ParseSGRRaw([]string{"1"})
	merged := Merge(base, ParseSGRRaw([]string{"22"}))
	if merged.Bold() {
		t.Errorf("expected bold cleared by SGR 22")
	}
}

func TestToANSIDefaultIsEmpty(t *testing.T) {
	if got := ToANSI(Style{}); got != "" {
		t.Errorf("expected empty string for default style, got %q", got)
	}
}

func TestDiffSameStyleIsEmpty(t *testing.T) {
	s := ParseSGRRaw([]string{"1"})
	if got := Diff(s, s); got != "" {
		t.Errorf("expected no transition between identical styles, got %q", got)
	}
}

func TestDiffToDefaultEmitsReset(t *testing.T) {
	s := ParseSGRRaw([]string{"1"})
	if got := Diff(s, Style{}); got != "\x1b[0m" {
		t.Errorf("expected bare reset transitioning to default, got %q", got)
	}
}
