package vt

import "testing"

func TestRuneWidthASCII(t *testing.T) {
	if runeWidth('a') != 1 {
		t.Errorf("expected width 1 for ASCII")
	}
}

func TestRuneWidthCJK(t *testing.T) {
	if runeWidth('中') != 2 {
		t.Errorf("expected width 2 for a CJK ideograph")
	}
}

func TestRuneWidthCombiningMark(t *testing.T) {
	if runeWidth(0x0301) != 0 { // combining acute accent
		t.Errorf("expected width 0 for a combining mark")
	}
}

func TestIsCombiningMark(t *testing.T) {
	if !isCombiningMark(0x0300) {
		t.Errorf("expected 0x0300 to be a combining mark")
	}
	if isCombiningMark('a') {
		t.Errorf("expected 'a' to not be a combining mark")
	}
}
