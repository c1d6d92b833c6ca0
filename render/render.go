// Package render serializes quizzes to their output formats. Each
// renderer re-expands the inline correctness marker into the target's
// native emphasis: a bold run for DOCX, a bold font span for PDF, and
// nothing for plain text (the marker is stripped silently there).
package render

import (
	"fmt"

	"quizrand-server/models"
)

// Renderer writes one quiz to one output file.
type Renderer interface {
	// Ext is the filename extension for this format, without the dot.
	Ext() string
	// Render writes the quiz to path, leaving no partial file behind
	// on failure.
	Render(quiz *models.Quiz, path string) error
}

// Style carries the formatting knobs shared by the document renderers.
type Style struct {
	TitleSizePt    int
	BodySizePt     int
	FeedbackSizePt int
	OptionIndentPt int
}

// DefaultStyle returns the stock quiz formatting.
func DefaultStyle() Style {
	return Style{
		TitleSizePt:    16,
		BodySizePt:     12,
		FeedbackSizePt: 10,
		OptionIndentPt: 20,
	}
}

// ForFormat selects the renderer for an output format name.
func ForFormat(format string, style Style) (Renderer, error) {
	switch format {
	case "text", "txt":
		return &TextRenderer{}, nil
	case "docx":
		return &DocxRenderer{Style: style}, nil
	case "pdf":
		return &PDFRenderer{Style: style}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, docx, or pdf)", format)
	}
}
