// Package exam assembles randomized quizzes from a question bank and
// writes one output file per quiz.
package exam

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"quizrand-server/models"
	"quizrand-server/render"
)

// ErrInsufficientQuestions is returned when a no-duplicates request
// asks for more questions than the bank holds.
var ErrInsufficientQuestions = errors.New("not enough unique questions")

// Request describes one distribution run.
type Request struct {
	NumQuizzes       int  `json:"num_quizzes"`
	QuestionsPerQuiz int  `json:"questions_per_quiz"`
	AllowDuplicates  bool `json:"allow_duplicates"`
}

// Distribute partitions or samples the bank into quizzes.
//
// With duplicates allowed, every quiz independently draws
// QuestionsPerQuiz questions uniformly at random with replacement, and
// the metadata reports how often each question was reused.
//
// Without duplicates, the whole bank is shuffled once and split
// contiguously: size/NumQuizzes questions per quiz, with the first
// size%NumQuizzes quizzes receiving one extra. QuestionsPerQuiz is
// recorded in the metadata but does not size the groups in this mode;
// the split is bank-size-driven. Callers relying on exact quiz sizes
// should allow duplicates.
func Distribute(bank *models.QuestionBank, req Request, r *rand.Rand) ([]*models.Quiz, *models.DistributionMetadata, error) {
	if req.NumQuizzes < 1 || req.QuestionsPerQuiz < 1 {
		return nil, nil, fmt.Errorf(
			"invalid distribution request: need at least 1 quiz and 1 question per quiz, got %d and %d",
			req.NumQuizzes, req.QuestionsPerQuiz)
	}

	bankSize := bank.Size()
	if bankSize == 0 {
		return nil, nil, fmt.Errorf("%w: the question bank is empty", ErrInsufficientQuestions)
	}

	// Without duplicates the split below is bank-size-driven, so a
	// request is unsatisfiable only when one quiz asks for more
	// questions than the whole bank holds, or there are more quizzes
	// than questions to spread across them.
	if !req.AllowDuplicates && (req.QuestionsPerQuiz > bankSize || req.NumQuizzes > bankSize) {
		return nil, nil, fmt.Errorf(
			"%w: requested %d quizzes of %d questions each but the bank has %d; reduce the request or allow duplicates",
			ErrInsufficientQuestions, req.NumQuizzes, req.QuestionsPerQuiz, bankSize)
	}

	metadata := &models.DistributionMetadata{
		NumQuizzes:                req.NumQuizzes,
		QuestionsPerQuiz:          req.QuestionsPerQuiz,
		QuizzesWithExtraQuestions: []int{},
		DuplicateStats:            map[int]int{},
	}
	questions := bank.Questions()
	quizzes := make([]*models.Quiz, 0, req.NumQuizzes)

	if req.AllowDuplicates {
		usage := make(map[int]int)
		for i := 0; i < req.NumQuizzes; i++ {
			quiz := models.NewQuiz(fmt.Sprintf("Quiz %d", i+1))
			for j := 0; j < req.QuestionsPerQuiz; j++ {
				q := questions[r.Intn(bankSize)]
				quiz.AddQuestion(q)
				usage[q.ID]++
			}
			quizzes = append(quizzes, quiz)
		}
		for id, count := range usage {
			if count > 1 {
				metadata.DuplicateStats[id] = count
			}
		}
		metadata.TotalQuestionsUsed = len(usage)
		return quizzes, metadata, nil
	}

	shuffled := make([]*models.Question, bankSize)
	copy(shuffled, questions)
	r.Shuffle(bankSize, func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	base := bankSize / req.NumQuizzes
	remainder := bankSize % req.NumQuizzes
	next := 0
	for i := 0; i < req.NumQuizzes; i++ {
		count := base
		if i < remainder {
			count++
			metadata.QuizzesWithExtraQuestions = append(metadata.QuizzesWithExtraQuestions, i)
		}
		quiz := models.NewQuiz(fmt.Sprintf("Quiz %d", i+1))
		for _, q := range shuffled[next : next+count] {
			quiz.AddQuestion(q)
		}
		next += count
		quizzes = append(quizzes, quiz)
	}
	metadata.TotalQuestionsUsed = next
	return quizzes, metadata, nil
}

// WriteQuizzes renders each quiz into outputDir as quiz_<n>.<ext>,
// 1-based. A quiz whose render fails is rewritten as a plain-text
// fallback file with a logged warning; the batch never aborts for one
// bad render. If the requested format itself is unusable the whole
// batch degrades to plain text and the original problem is returned as
// the informational degraded error.
func WriteQuizzes(quizzes []*models.Quiz, format, outputDir string, style render.Style) (files []string, degraded error, err error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	renderer, rerr := render.ForFormat(format, style)
	if rerr != nil {
		log.Printf("Warning: falling back to text output for the whole batch: %v", rerr)
		degraded = rerr
		renderer = &render.TextRenderer{}
	}

	for i, quiz := range quizzes {
		path := filepath.Join(outputDir, fmt.Sprintf("quiz_%d.%s", i+1, renderer.Ext()))
		if werr := renderer.Render(quiz, path); werr != nil {
			log.Printf("Warning: exported quiz %d as text due to issues: %v", i+1, werr)
			path = filepath.Join(outputDir, fmt.Sprintf("quiz_%d.txt", i+1))
			if werr := (&render.TextRenderer{}).Render(quiz, path); werr != nil {
				return files, degraded, fmt.Errorf("failed to write fallback for quiz %d: %w", i+1, werr)
			}
		}
		files = append(files, path)
	}
	return files, degraded, nil
}
