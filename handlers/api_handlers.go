package handlers

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"quizrand-server/config"
	"quizrand-server/exam"
	"quizrand-server/ingestion"
	"quizrand-server/render"
)

// UploadBank accepts a question file (txt, rtf or docx), parses it into
// a question bank and registers it for later generation runs.
// POST /api/v1/banks
func UploadBank(reg *BankRegistry, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A question file is required in the 'file' form field"})
			return
		}

		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			log.Printf("Error creating upload directory %s: %v", uploadDir, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded file"})
			return
		}
		dst := filepath.Join(uploadDir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename)))
		if err := c.SaveUploadedFile(file, dst); err != nil {
			log.Printf("Error saving uploaded file %s: %v", file.Filename, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded file"})
			return
		}

		bank, err := ingestion.LoadBank(dst)
		if err != nil {
			log.Printf("Error loading question bank from %s: %v", dst, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Failed to parse question file: %v", err)})
			return
		}
		if bank.Size() == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No questions could be parsed from the file"})
			return
		}

		entry := reg.Put(file.Filename, bank)
		log.Printf("Loaded %d questions from %s (bank %s)", bank.Size(), file.Filename, entry.ID)
		c.JSON(http.StatusCreated, gin.H{
			"id":             entry.ID,
			"filename":       entry.Filename,
			"question_count": bank.Size(),
			"loaded_at":      entry.LoadedAt,
		})
	}
}

// ListBanks lists every bank loaded in this process.
// GET /api/v1/banks
func ListBanks(reg *BankRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries := reg.List()
		out := make([]gin.H, 0, len(entries))
		for _, entry := range entries {
			out = append(out, gin.H{
				"id":             entry.ID,
				"filename":       entry.Filename,
				"question_count": entry.Bank.Size(),
				"loaded_at":      entry.LoadedAt,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetBank returns a bank's parsed questions.
// GET /api/v1/banks/:bank_id
func GetBank(reg *BankRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry, ok := reg.Get(c.Param("bank_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question bank not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":        entry.ID,
			"filename":  entry.Filename,
			"loaded_at": entry.LoadedAt,
			"questions": entry.Bank.Questions(),
		})
	}
}

// generateRequest is the JSON body for a generation run. Zero-valued
// fields fall back to the configured quiz defaults.
type generateRequest struct {
	NumQuizzes       int    `json:"num_quizzes"`
	QuestionsPerQuiz int    `json:"questions_per_quiz"`
	AllowDuplicates  *bool  `json:"allow_duplicates"`
	OutputFormat     string `json:"output_format"`
	OutputDirectory  string `json:"output_directory"`
	Seed             *int64 `json:"seed"`
}

// GenerateQuizzes distributes a bank into randomized quizzes and writes
// one output file per quiz.
// POST /api/v1/banks/:bank_id/quizzes
func GenerateQuizzes(reg *BankRegistry, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry, ok := reg.Get(c.Param("bank_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question bank not found"})
			return
		}

		var req generateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		applyDefaults(&req, cfg)
		if req.NumQuizzes < 1 || req.QuestionsPerQuiz < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "num_quizzes and questions_per_quiz must be positive"})
			return
		}

		r := newRand(req.Seed)
		quizzes, metadata, err := exam.Distribute(entry.Bank, exam.Request{
			NumQuizzes:       req.NumQuizzes,
			QuestionsPerQuiz: req.QuestionsPerQuiz,
			AllowDuplicates:  *req.AllowDuplicates,
		}, r)
		if err != nil {
			if errors.Is(err, exam.ErrInsufficientQuestions) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			log.Printf("Error distributing bank %s: %v", entry.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate quizzes"})
			return
		}

		files, degraded, err := exam.WriteQuizzes(quizzes, req.OutputFormat, req.OutputDirectory, styleFromConfig(cfg))
		if err != nil {
			log.Printf("Error writing quizzes for bank %s: %v", entry.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write quiz files"})
			return
		}

		resp := gin.H{
			"bank_id":  entry.ID,
			"files":    files,
			"metadata": metadata,
		}
		if degraded != nil {
			resp["warning"] = fmt.Sprintf("output degraded to plain text: %v", degraded)
		}
		c.JSON(http.StatusOK, resp)
	}
}

func applyDefaults(req *generateRequest, cfg *config.Config) {
	if req.NumQuizzes == 0 {
		req.NumQuizzes = cfg.QuizDefaults.NumQuizzes
	}
	if req.QuestionsPerQuiz == 0 {
		req.QuestionsPerQuiz = cfg.QuizDefaults.QuestionsPerQuiz
	}
	if req.AllowDuplicates == nil {
		allow := cfg.QuizDefaults.AllowDuplicates
		req.AllowDuplicates = &allow
	}
	if req.OutputFormat == "" {
		req.OutputFormat = cfg.QuizDefaults.OutputFormat
	}
	if req.OutputDirectory == "" {
		req.OutputDirectory = cfg.QuizDefaults.OutputDirectory
	}
}

// newRand builds the RNG for one run. Seeded runs reproduce the same
// distribution; unseeded runs use the current time.
func newRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func styleFromConfig(cfg *config.Config) render.Style {
	return render.Style{
		TitleSizePt:    cfg.Formatting.TitleSize,
		BodySizePt:     cfg.Formatting.BodySize,
		FeedbackSizePt: cfg.Formatting.FeedbackSize,
		OptionIndentPt: cfg.Formatting.OptionIndent,
	}
}
