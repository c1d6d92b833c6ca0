package docfmt

import "strings"

// Destination groups whose contents never belong in the visible text.
var rtfDestinations = map[string]bool{
	"fonttbl":    true,
	"colortbl":   true,
	"stylesheet": true,
	"info":       true,
	"generator":  true,
	"pict":       true,
	"themedata":  true,
	"listtable":  true,
	"header":     true,
	"footer":     true,
}

// RTFToText flattens RTF markup to plain text. Styling such as bold is
// irrecoverably lost on this path; the caller gets paragraph breaks as
// newlines and nothing else. Best effort on malformed input.
func RTFToText(rtf string) string {
	var out strings.Builder
	depth := 0
	skipDepth := -1 // depth of a destination group being skipped, -1 when not skipping
	skipFallback := 0

	i := 0
	for i < len(rtf) {
		ch := rtf[i]
		switch ch {
		case '{':
			depth++
			i++
			// \* marks an optional destination; skip the group wholesale.
			if skipDepth < 0 && i+1 < len(rtf) && rtf[i] == '\\' && rtf[i+1] == '*' {
				skipDepth = depth
				i += 2
			}
		case '}':
			depth--
			if skipDepth >= 0 && depth < skipDepth {
				skipDepth = -1
			}
			i++
		case '\\':
			i++
			if i >= len(rtf) {
				break
			}
			word, param, hasParam, next := readControl(rtf, i)
			i = next
			if skipDepth >= 0 {
				continue
			}
			if word == "" {
				continue
			}
			if skipFallback > 0 && word != "u" {
				// Still inside a \uN fallback sequence; \'hh is the
				// usual fallback form and must be dropped.
				if word == "'" {
					skipFallback--
					continue
				}
				skipFallback = 0
			}
			switch word {
			case "\\", "{", "}":
				out.WriteString(word)
			case "par", "line":
				out.WriteByte('\n')
			case "tab":
				out.WriteByte('\t')
			case "~", "emspace", "enspace":
				out.WriteByte(' ')
			case "'":
				if hasParam {
					out.WriteRune(rune(byte(param)))
				}
			case "u":
				if hasParam {
					out.WriteRune(rune(uint16(param)))
					skipFallback = 1
				}
			default:
				if rtfDestinations[word] {
					skipDepth = depth
				}
			}
		case '\r', '\n':
			// Raw line breaks are markup whitespace, not content.
			i++
		default:
			if skipDepth < 0 {
				if skipFallback > 0 {
					skipFallback--
				} else {
					out.WriteByte(ch)
				}
			}
			i++
		}
	}
	return out.String()
}

// readControl consumes a control word or symbol starting at rtf[i]
// (just past the backslash) and returns its name, numeric parameter if
// present, and the index after the construct and its delimiter.
func readControl(rtf string, i int) (word string, param int, hasParam bool, next int) {
	if i >= len(rtf) {
		return "", 0, false, i
	}
	ch := rtf[i]

	// Control symbols are a single non-letter character.
	if !isASCIILetter(ch) {
		if ch == '\'' {
			// \'hh hex escape
			if i+2 < len(rtf) {
				hi, ok1 := hexVal(rtf[i+1])
				lo, ok2 := hexVal(rtf[i+2])
				if ok1 && ok2 {
					return "'", hi<<4 | lo, true, i + 3
				}
			}
			return "'", 0, false, i + 1
		}
		return string(ch), 0, false, i + 1
	}

	start := i
	for i < len(rtf) && isASCIILetter(rtf[i]) {
		i++
	}
	word = rtf[start:i]

	sign := 1
	if i < len(rtf) && rtf[i] == '-' {
		sign = -1
		i++
	}
	numStart := i
	for i < len(rtf) && rtf[i] >= '0' && rtf[i] <= '9' {
		param = param*10 + int(rtf[i]-'0')
		i++
	}
	hasParam = i > numStart
	param *= sign

	// A single space after a control word is part of its delimiter.
	if i < len(rtf) && rtf[i] == ' ' {
		i++
	}
	return word, param, hasParam, i
}

func isASCIILetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func hexVal(ch byte) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10, true
	}
	return 0, false
}
