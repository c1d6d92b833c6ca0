// Package docfmt provides the narrow document-format interfaces the
// parser and renderers consume: reading paragraphs with styled runs
// from a DOCX file, writing formatted paragraphs back out, and
// flattening RTF to plain text (formatting is lost on that path).
package docfmt

// Run is one contiguous styled span inside a paragraph.
type Run struct {
	Text string
	Bold bool
}

// Paragraph is one input paragraph: its flattened text plus the styled
// runs it was built from.
type Paragraph struct {
	Text string
	Runs []Run
}

// TextRun is one styled span of an output paragraph.
type TextRun struct {
	Text   string
	Bold   bool
	Italic bool
	SizePt int // font size in points; 0 means document default
}

// OutParagraph is one paragraph of an output document.
type OutParagraph struct {
	Runs     []TextRun
	Center   bool
	IndentPt int // left indent in points; 0 means none
}
