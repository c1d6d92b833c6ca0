package render

import (
	"fmt"

	"quizrand-server/docfmt"
	"quizrand-server/models"
)

// DocxRenderer writes a quiz as a Word document: centered bold title,
// bold question numbers, options indented with the correct span
// rendered as a real bold run, and feedback in italics.
type DocxRenderer struct {
	Style Style
}

func (r *DocxRenderer) Ext() string { return "docx" }

func (r *DocxRenderer) Render(quiz *models.Quiz, path string) error {
	var paras []docfmt.OutParagraph

	if quiz.Title != "" {
		paras = append(paras,
			docfmt.OutParagraph{
				Center: true,
				Runs:   []docfmt.TextRun{{Text: quiz.Title, Bold: true, SizePt: r.Style.TitleSizePt}},
			},
			docfmt.OutParagraph{},
		)
	}

	for i, q := range quiz.Questions {
		paras = append(paras, docfmt.OutParagraph{
			Runs: []docfmt.TextRun{
				{Text: fmt.Sprintf("%d. ", i+1), Bold: true},
				{Text: q.Text},
			},
		})

		for _, option := range q.LabeledOptions() {
			paras = append(paras, docfmt.OutParagraph{
				IndentPt: r.Style.OptionIndentPt,
				Runs:     optionRuns(option),
			})
		}

		if q.Feedback != nil {
			paras = append(paras, docfmt.OutParagraph{
				IndentPt: r.Style.OptionIndentPt,
				Runs:     []docfmt.TextRun{{Text: *q.Feedback, Italic: true, SizePt: r.Style.FeedbackSizePt}},
			})
		}

		// Blank paragraph between questions.
		paras = append(paras, docfmt.OutParagraph{})
	}

	return docfmt.WriteDocx(path, paras)
}

// optionRuns re-expands the first marker pair of an option into a bold
// run; any further marker characters are left literal.
func optionRuns(option string) []docfmt.TextRun {
	before, span, after, ok := models.SplitMarker(option)
	if !ok {
		return []docfmt.TextRun{{Text: option}}
	}
	runs := make([]docfmt.TextRun, 0, 3)
	if before != "" {
		runs = append(runs, docfmt.TextRun{Text: before})
	}
	runs = append(runs, docfmt.TextRun{Text: span, Bold: true})
	if after != "" {
		runs = append(runs, docfmt.TextRun{Text: after})
	}
	return runs
}
