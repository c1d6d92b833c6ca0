// Package ingestion turns semi-structured question files into a
// QuestionBank. The parsing is single-pass and heuristic: it never
// fails on a malformed block, it degrades the block to a
// free-response question instead.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"quizrand-server/docfmt"
	"quizrand-server/models"
	"quizrand-server/utils"
)

var (
	blankLinePattern = regexp.MustCompile(`\n\s*\n`)
	feedbackPattern  = regexp.MustCompile(`^Answer\s+Feedback:\s+.+`)
	trueFalsePattern = regexp.MustCompile(`(?i)true\s*/\s*false`)
)

const feedbackPrefix = "Answer Feedback:"

// LoadBank reads a question bank file and parses it according to its
// extension: .docx keeps formatting (styled runs), .rtf is flattened
// to plain text first, anything else is treated as UTF-8 plain text.
func LoadBank(path string) (*models.QuestionBank, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("question bank file %s not found: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		paras, err := docfmt.ReadDocx(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read question bank %s: %w", path, err)
		}
		return ParseParagraphs(paras), nil

	case ".rtf":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read question bank %s: %w", path, err)
		}
		return ParseText(docfmt.RTFToText(string(data))), nil

	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read question bank %s: %w", path, err)
		}
		return ParseText(string(data)), nil
	}
}

// ParseText segments plain-text content into questions. Blocks are
// separated by runs of blank lines; within a block the first line is
// the question text, "Answer Feedback:" lines become feedback, and
// option lines (lettered or numbered) become the options list.
func ParseText(content string) *models.QuestionBank {
	bank := models.NewQuestionBank()

	for _, block := range blankLinePattern.Split(content, -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		lines := strings.Split(strings.TrimSpace(block), "\n")
		questionText := lines[0]

		var feedback *string
		remaining := lines[:0:0]
		for _, line := range lines {
			if feedbackPattern.MatchString(line) {
				if feedback == nil {
					feedback = utils.StringPtr(line)
				}
				continue
			}
			remaining = append(remaining, line)
		}

		var options []string
		for _, line := range remaining[min(1, len(remaining)):] {
			if option, ok := NormalizeOptionLine(line); ok {
				options = append(options, option)
			}
		}

		qType := models.FreeResponse
		switch {
		case len(options) > 0:
			qType = models.MultipleChoice
		case anyTrueFalse(remaining):
			qType = models.TrueFalse
			options = []string{"True", "False"}
		}

		bank.Add(models.NewQuestion(questionText, qType, options, feedback))
	}
	return bank
}

func anyTrueFalse(lines []string) bool {
	for _, line := range lines {
		if trueFalsePattern.MatchString(line) {
			return true
		}
	}
	return false
}
