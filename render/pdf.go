package render

import (
	"fmt"
	"unicode"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"quizrand-server/models"
)

const pdfFont = "Helvetica"

// PDFRenderer writes a quiz as a paginated A4 document: centered bold
// title, numbered questions, indented options with the correct span in
// bold, and gray feedback text.
type PDFRenderer struct {
	Style Style
}

func (r *PDFRenderer) Ext() string { return "pdf" }

func (r *PDFRenderer) Render(quiz *models.Quiz, path string) error {
	body := float64(r.Style.BodySizePt)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont(pdfFont, "", body)

	if quiz.Title != "" {
		pdf.SetFont(pdfFont, "B", float64(r.Style.TitleSizePt))
		pdf.CellFormat(0, 10, sanitizePDFText(quiz.Title), "", 1, "C", false, 0, "")
		pdf.Ln(5)
		pdf.SetFont(pdfFont, "", body)
	}

	for i, q := range quiz.Questions {
		pdf.SetFont(pdfFont, "", body)
		pdf.SetX(10)
		pdf.MultiCell(0, 8, sanitizePDFText(fmt.Sprintf("%d. %s", i+1, q.Text)), "", "L", false)
		pdf.Ln(5)

		for _, option := range q.LabeledOptions() {
			pdf.SetX(20)
			before, span, after, ok := models.SplitMarker(option)
			if ok {
				pdf.SetFont(pdfFont, "", body)
				pdf.Write(8, sanitizePDFText(before))
				pdf.SetFont(pdfFont, "B", body)
				pdf.Write(8, sanitizePDFText(span))
				pdf.SetFont(pdfFont, "", body)
				pdf.Write(8, sanitizePDFText(after))
				pdf.Ln(-1)
			} else {
				pdf.MultiCell(0, 8, sanitizePDFText(option), "", "L", false)
			}
		}

		if q.Feedback != nil {
			pdf.Ln(2)
			pdf.SetFont(pdfFont, "", float64(r.Style.FeedbackSizePt))
			pdf.SetTextColor(100, 100, 100)
			pdf.SetX(20)
			pdf.MultiCell(0, 6, sanitizePDFText(*q.Feedback), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		}

		pdf.Ln(8)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write quiz PDF %s: %w", path, err)
	}
	return nil
}

// The core PDF fonts only cover Latin-1, so text is folded down to
// ASCII: accents are decomposed and dropped, anything else becomes '?'.
var pdfSanitizer = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return '?'
		}
		return r
	}),
)

func sanitizePDFText(s string) string {
	out, _, err := transform.String(pdfSanitizer, s)
	if err != nil {
		return s
	}
	return out
}
