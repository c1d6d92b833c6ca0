package render

import (
	"fmt"
	"os"
	"strings"

	"quizrand-server/models"
)

// TextRenderer writes a quiz as UTF-8 plain text: the title, then each
// question numbered from 1 with its lettered options and feedback.
// Plain text has no emphasis, so the correctness marker is dropped.
type TextRenderer struct{}

func (r *TextRenderer) Ext() string { return "txt" }

func (r *TextRenderer) Render(quiz *models.Quiz, path string) error {
	if err := os.WriteFile(path, []byte(QuizText(quiz)), 0o644); err != nil {
		return fmt.Errorf("failed to write quiz text file %s: %w", path, err)
	}
	return nil
}

// QuizText builds the plain-text form of a whole quiz.
func QuizText(quiz *models.Quiz) string {
	var b strings.Builder
	b.WriteString(quiz.Title)
	b.WriteString("\n\n")
	for i, q := range quiz.Questions {
		fmt.Fprintf(&b, "%d. %s\n\n", i+1, questionText(q))
	}
	return b.String()
}

func questionText(q *models.Question) string {
	var b strings.Builder
	b.WriteString(q.Text)
	for _, option := range q.LabeledOptions() {
		b.WriteString("\n")
		b.WriteString(models.StripMarker(option))
	}
	if q.Feedback != nil {
		b.WriteString("\n")
		b.WriteString(*q.Feedback)
	}
	return b.String()
}
