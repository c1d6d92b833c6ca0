package ingestion

import (
	"fmt"
	"regexp"
	"strconv"
)

// Option lines come in two conventions: lettered ("a) Madrid") and
// numbered ("1. Madrid"). Everything downstream works on the lettered
// form, so numbered lines are normalized on sight.
var (
	letterOptionPattern = regexp.MustCompile(`^[a-z]\)\s+.+`)
	numberOptionPattern = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)
)

// IsLetterOption reports whether line is already in lettered form.
func IsLetterOption(line string) bool {
	return letterOptionPattern.MatchString(line)
}

// ParseNumberOption splits a numbered option line into its number and
// content. ok is false for non-numbered lines and for numeric prefixes
// that don't parse (zero, or digits overflowing int).
func ParseNumberOption(line string) (number int, content string, ok bool) {
	m := numberOptionPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, "", false
	}
	return n, m[2], true
}

// letterForNumber maps a 1-based option number onto its lowercase
// letter. Numbers above 26 wrap modulo 26, colliding with earlier
// letters; for exact multiples of 26 the wrap lands one below 'a'.
func letterForNumber(n int) byte {
	if n >= 1 && n <= 26 {
		return byte('a' + n - 1)
	}
	return byte(96 + n%26)
}

// NormalizeOptionLine classifies a line as an option. Lettered options
// pass through verbatim; numbered options are rewritten to lettered
// form. ok is false when the line is not an option at all.
func NormalizeOptionLine(line string) (option string, ok bool) {
	if IsLetterOption(line) {
		return line, true
	}
	if n, content, numOK := ParseNumberOption(line); numOK {
		return fmt.Sprintf("%c) %s", letterForNumber(n), content), true
	}
	return "", false
}
