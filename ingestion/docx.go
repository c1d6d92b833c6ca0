package ingestion

import (
	"strings"

	"quizrand-server/docfmt"
	"quizrand-server/models"
	"quizrand-server/utils"
)

// ParseParagraphs segments a rich document's paragraphs into
// questions. A blank paragraph finalizes the question being
// accumulated; "Answer Feedback:" paragraphs attach feedback; option
// paragraphs are normalized and checked for bold emphasis. A paragraph
// that matches none of these while a question is already accumulating
// is dropped: stray prose between options is treated as noise, not
// content.
func ParseParagraphs(paras []docfmt.Paragraph) *models.QuestionBank {
	bank := models.NewQuestionBank()

	var question string
	var options []string
	var feedback *string

	finalize := func() {
		if question == "" {
			return
		}
		qType := models.FreeResponse
		switch {
		case len(options) > 0:
			qType = models.MultipleChoice
		case strings.Contains(strings.ToLower(question), "true/false"):
			qType = models.TrueFalse
			options = []string{"True", "False"}
		}
		bank.Add(models.NewQuestion(question, qType, options, feedback))
		question = ""
		options = nil
		feedback = nil
	}

	for _, para := range paras {
		text := strings.TrimSpace(para.Text)
		switch {
		case text == "":
			finalize()
		case strings.HasPrefix(text, feedbackPrefix):
			feedback = utils.StringPtr(text)
		default:
			if option, ok := NormalizeOptionLine(text); ok {
				options = append(options, ApplyEmphasis(option, para.Runs))
			} else if question == "" {
				question = text
			}
		}
	}
	// Documents are not guaranteed to end with a blank paragraph.
	finalize()

	return bank
}

// ApplyEmphasis finds the span of an option that the source document
// marked bold and encodes it with the inline correctness marker.
//
// Two rules, applied in order:
//  1. only the first bold run is considered; if its text occurs
//     verbatim in the option, that first occurrence is wrapped.
//  2. failing that, if any bold run's text occurs in the content after
//     the letter label, the entire content is wrapped. Coarser than
//     rule 1: numbered options carry runs whose text still refers to
//     the pre-normalization label, so an exact match against the
//     rewritten option can miss even though the answer is bold.
//
// Options with no bold runs are returned verbatim.
func ApplyEmphasis(option string, runs []docfmt.Run) string {
	for _, run := range runs {
		if !run.Bold || strings.TrimSpace(run.Text) == "" {
			continue
		}
		if strings.Contains(option, run.Text) {
			return strings.Replace(option, run.Text, models.WrapMarker(run.Text), 1)
		}
		break
	}

	label, content, ok := splitOptionLabel(option)
	if ok {
		for _, run := range runs {
			if !run.Bold || strings.TrimSpace(run.Text) == "" {
				continue
			}
			if strings.Contains(content, run.Text) {
				return label + " " + models.WrapMarker(content)
			}
		}
	}
	return option
}

// splitOptionLabel splits "a) Madrid" into "a)" and "Madrid".
func splitOptionLabel(option string) (label, content string, ok bool) {
	idx := strings.Index(option, ")")
	if idx < 0 {
		return "", "", false
	}
	return option[:idx+1], strings.TrimSpace(option[idx+1:]), true
}
