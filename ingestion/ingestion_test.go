package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizrand-server/models"
)

// TestParseTextBlocks verifies blank-line-separated blocks become questions.
func TestParseTextBlocks(t *testing.T) {
	content := strings.Join([]string{
		"What is the capital of Spain?",
		"a) Paris",
		"b) Madrid",
		"",
		"True/False: Go compiles to machine code.",
		"",
		"Explain the purpose of a context.Context.",
	}, "\n")

	bank := ParseText(content)
	if bank.Size() != 3 {
		t.Fatalf("expected 3 questions, got %d", bank.Size())
	}
	qs := bank.Questions()
	if qs[0].Type != models.MultipleChoice {
		t.Errorf("question 1: expected multiple-choice, got %s", qs[0].Type)
	}
	if qs[1].Type != models.TrueFalse {
		t.Errorf("question 2: expected true-false, got %s", qs[1].Type)
	}
	if len(qs[1].Options) != 2 || qs[1].Options[0] != "True" || qs[1].Options[1] != "False" {
		t.Errorf("question 2: unexpected options %v", qs[1].Options)
	}
	if qs[2].Type != models.FreeResponse {
		t.Errorf("question 3: expected free-response, got %s", qs[2].Type)
	}
}

// TestParseTextSkipsWhitespaceBlocks verifies all-whitespace blocks produce nothing.
func TestParseTextSkipsWhitespaceBlocks(t *testing.T) {
	bank := ParseText("Question one?\n\n   \n\nQuestion two?")
	if bank.Size() != 2 {
		t.Fatalf("expected 2 questions, got %d", bank.Size())
	}
}

// TestParseTextFeedback verifies feedback lines are extracted, first one wins.
func TestParseTextFeedback(t *testing.T) {
	content := strings.Join([]string{
		"What is the capital of Spain?",
		"a) Paris",
		"Answer Feedback: Madrid has been the capital since 1561.",
		"b) Madrid",
		"Answer Feedback: This one is ignored.",
	}, "\n")

	bank := ParseText(content)
	q := bank.Questions()[0]
	if q.Feedback == nil {
		t.Fatalf("expected feedback")
	}
	if !strings.Contains(*q.Feedback, "1561") {
		t.Fatalf("unexpected feedback: %q", *q.Feedback)
	}
	if len(q.Options) != 2 {
		t.Fatalf("feedback lines leaked into options: %v", q.Options)
	}
}

// TestParseTextNumberedOptions verifies numbered options are normalized.
func TestParseTextNumberedOptions(t *testing.T) {
	bank := ParseText("Pick one.\n1. First\n2. Second")
	q := bank.Questions()[0]
	if len(q.Options) != 2 || q.Options[0] != "a) First" || q.Options[1] != "b) Second" {
		t.Fatalf("unexpected options: %v", q.Options)
	}
}

// TestParseTextMarkedOption verifies the marker sets the correct index.
func TestParseTextMarkedOption(t *testing.T) {
	bank := ParseText("Capital of Spain?\na) Paris\nb) **Madrid**")
	q := bank.Questions()[0]
	if q.CorrectOptionIndex != 1 {
		t.Fatalf("expected correct index 1, got %d", q.CorrectOptionIndex)
	}
}

// TestLoadBankMissingFile verifies a clear error for nonexistent paths.
func TestLoadBankMissingFile(t *testing.T) {
	_, err := LoadBank(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestLoadBankPlainText verifies the plain-text path end to end.
func TestLoadBankPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.txt")
	content := "Capital of Spain?\na) Paris\nb) Madrid\n\nTrue/False: water is wet."
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	bank, err := LoadBank(path)
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}
	if bank.Size() != 2 {
		t.Fatalf("expected 2 questions, got %d", bank.Size())
	}
}

// TestLoadBankRTF verifies the RTF path strips control words before parsing.
func TestLoadBankRTF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.rtf")
	rtf := `{\rtf1\ansi{\fonttbl{\f0 Calibri;}}\f0 Capital of Spain?\par a) Paris\par b) Madrid\par\par Second question?\par}`
	if err := os.WriteFile(path, []byte(rtf), 0o644); err != nil {
		t.Fatal(err)
	}
	bank, err := LoadBank(path)
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}
	if bank.Size() != 2 {
		t.Fatalf("expected 2 questions, got %d", bank.Size())
	}
	q := bank.Questions()[0]
	if q.Type != models.MultipleChoice || len(q.Options) != 2 {
		t.Fatalf("unexpected first question: %+v", q)
	}
}
