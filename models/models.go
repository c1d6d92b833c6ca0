package models

import (
	"fmt"
	"regexp"
	"strings"
)

// QuestionType classifies how a question is answered.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	TrueFalse      QuestionType = "true-false"
	FreeResponse   QuestionType = "free-response"
)

// Question represents a single parsed quiz question. Questions are
// immutable once constructed; the bank assigns the ID at load time.
type Question struct {
	ID                 int          `json:"id"`
	Text               string       `json:"text"`
	Type               QuestionType `json:"type"`
	Options            []string     `json:"options"`
	Feedback           *string      `json:"feedback"` // Pointer to allow NULL
	CorrectOptionIndex int          `json:"correct_option_index"`
}

var letterPrefixPattern = regexp.MustCompile(`^[a-z]\)\s+`)

// NewQuestion builds a Question from parsed parts. The correct option
// index is derived by scanning the options for the first one carrying
// the inline correctness marker; -1 when none is marked.
func NewQuestion(text string, qType QuestionType, options []string, feedback *string) *Question {
	q := &Question{
		Text:               strings.TrimSpace(text),
		Type:               qType,
		Options:            options,
		Feedback:           feedback,
		CorrectOptionIndex: -1,
	}
	for i, option := range options {
		if HasMarker(option) {
			q.CorrectOptionIndex = i
			break
		}
	}
	return q
}

// LabeledOptions returns the question's options with a letter label
// guaranteed on each one. Options parsed from lettered or numbered
// source lines already carry a label; fixed true/false options do not.
func (q *Question) LabeledOptions() []string {
	labeled := make([]string, 0, len(q.Options))
	for i, option := range q.Options {
		if letterPrefixPattern.MatchString(strings.ToLower(option)) {
			labeled = append(labeled, option)
		} else {
			labeled = append(labeled, fmt.Sprintf("%c) %s", 'a'+i, option))
		}
	}
	return labeled
}

// QuestionBank is an append-only ordered collection of questions,
// populated once during load and read many times during distribution.
type QuestionBank struct {
	questions []*Question
}

// NewQuestionBank creates an empty bank.
func NewQuestionBank() *QuestionBank {
	return &QuestionBank{}
}

// Add appends a question to the bank and assigns its stable sequence
// number. IDs are 1-based in load order.
func (b *QuestionBank) Add(q *Question) {
	q.ID = len(b.questions) + 1
	b.questions = append(b.questions, q)
}

// Size returns the number of questions in the bank.
func (b *QuestionBank) Size() int {
	return len(b.questions)
}

// Questions returns the bank's questions in load order. Callers hold
// non-owning references; the bank owns every question for the life of
// the process.
func (b *QuestionBank) Questions() []*Question {
	return b.questions
}

// Quiz is a named ordered subset of bank questions assembled for one
// output file. Quizzes reference bank questions, they do not copy them.
type Quiz struct {
	Title     string      `json:"title"`
	Questions []*Question `json:"questions"`
}

// NewQuiz creates an empty quiz with a title.
func NewQuiz(title string) *Quiz {
	return &Quiz{Title: title}
}

// AddQuestion appends a question reference to the quiz.
func (qz *Quiz) AddQuestion(q *Question) {
	qz.Questions = append(qz.Questions, q)
}

// QuestionCount returns the number of questions in the quiz.
func (qz *Quiz) QuestionCount() int {
	return len(qz.Questions)
}

// DistributionMetadata records the counts of one distribution run.
// Purely informational; it is never persisted.
type DistributionMetadata struct {
	NumQuizzes                int         `json:"num_quizzes"`
	QuestionsPerQuiz          int         `json:"questions_per_quiz"`
	TotalQuestionsUsed        int         `json:"total_questions_used"`
	QuizzesWithExtraQuestions []int       `json:"quizzes_with_extra_questions"`
	DuplicateStats            map[int]int `json:"duplicate_stats"` // question ID -> total usage count
}
