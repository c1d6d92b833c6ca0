package models

import "strings"

// Marker is the inline convention that flags the correct span of an
// option's text. It survives serialization to plain strings so that
// renderers can re-apply real emphasis in their target format.
const Marker = "**"

// WrapMarker surrounds a span with the correctness marker.
func WrapMarker(span string) string {
	return Marker + span + Marker
}

// HasMarker reports whether s contains the correctness marker.
func HasMarker(s string) bool {
	return strings.Contains(s, Marker)
}

// SplitMarker finds the first marker pair in s and returns the text
// before it, the marked span, and the text after it. Only the first
// pair is honored; any further marker characters stay literal in the
// trailing segment. ok is false when s holds no complete pair.
func SplitMarker(s string) (before, span, after string, ok bool) {
	start := strings.Index(s, Marker)
	if start < 0 {
		return s, "", "", false
	}
	rest := s[start+len(Marker):]
	end := strings.Index(rest, Marker)
	if end < 0 {
		return s, "", "", false
	}
	return s[:start], rest[:end], rest[end+len(Marker):], true
}

// StripMarker removes the first marker pair from s, keeping the span
// itself. Strings without a complete pair are returned unchanged.
func StripMarker(s string) string {
	before, span, after, ok := SplitMarker(s)
	if !ok {
		return s
	}
	return before + span + after
}
