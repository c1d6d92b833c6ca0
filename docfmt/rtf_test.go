package docfmt

import "testing"

// TestRTFToTextBasic verifies control words are stripped and \par breaks lines.
func TestRTFToTextBasic(t *testing.T) {
	rtf := `{\rtf1\ansi\f0 Hello\par World\par}`
	got := RTFToText(rtf)
	if got != "Hello\nWorld\n" {
		t.Fatalf("got %q", got)
	}
}

// TestRTFToTextSkipsDestinations verifies font and color tables never leak.
func TestRTFToTextSkipsDestinations(t *testing.T) {
	rtf := `{\rtf1{\fonttbl{\f0 Calibri;}}{\colortbl;\red0\green0\blue0;}Visible}`
	got := RTFToText(rtf)
	if got != "Visible" {
		t.Fatalf("got %q", got)
	}
}

// TestRTFToTextSkipsStarredGroups verifies \* optional destinations are dropped.
func TestRTFToTextSkipsStarredGroups(t *testing.T) {
	rtf := `{\rtf1{\*\generator LibreOffice}Kept}`
	if got := RTFToText(rtf); got != "Kept" {
		t.Fatalf("got %q", got)
	}
}

// TestRTFToTextEscapes verifies escaped braces, backslashes and hex bytes.
func TestRTFToTextEscapes(t *testing.T) {
	rtf := `{\rtf1 a\{b\}c\\d\'41}`
	if got := RTFToText(rtf); got != `a{b}c\dA` {
		t.Fatalf("got %q", got)
	}
}

// TestRTFToTextUnicode verifies \uN emits the rune and drops the fallback.
func TestRTFToTextUnicode(t *testing.T) {
	rtf := `{\rtf1 caf\u233?}`
	if got := RTFToText(rtf); got != "café" {
		t.Fatalf("got %q", got)
	}
	// Hex-escape fallback form.
	rtf = `{\rtf1 caf\u233\'e9}`
	if got := RTFToText(rtf); got != "café" {
		t.Fatalf("got %q", got)
	}
}

// TestRTFToTextIgnoresRawNewlines verifies markup line breaks are not content.
func TestRTFToTextIgnoresRawNewlines(t *testing.T) {
	rtf := "{\\rtf1 one\ntwo\\par three}"
	if got := RTFToText(rtf); got != "onetwo\nthree" {
		t.Fatalf("got %q", got)
	}
}
