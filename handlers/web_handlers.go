package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"quizrand-server/config"
	"quizrand-server/exam"
	"quizrand-server/ingestion"
)

// IndexPage renders the upload-and-generate form seeded with the
// configured defaults.
// GET /
func IndexPage(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index", gin.H{
			"Title":    "Quiz Randomizer",
			"Defaults": cfg.QuizDefaults,
		})
	}
}

// GeneratePage runs the whole pipeline for a browser form submission:
// parse the uploaded file, distribute, write output files, and render a
// summary of what was produced.
// POST /generate
func GeneratePage(reg *BankRegistry, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			renderError(c, http.StatusBadRequest, "Select a question file to upload.")
			return
		}

		if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
			log.Printf("Error creating upload directory %s: %v", cfg.UploadDir, err)
			renderError(c, http.StatusInternalServerError, "Could not store the uploaded file.")
			return
		}
		dst := filepath.Join(cfg.UploadDir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename)))
		if err := c.SaveUploadedFile(file, dst); err != nil {
			log.Printf("Error saving uploaded file %s: %v", file.Filename, err)
			renderError(c, http.StatusInternalServerError, "Could not store the uploaded file.")
			return
		}

		bank, err := ingestion.LoadBank(dst)
		if err != nil {
			log.Printf("Error loading question bank from %s: %v", dst, err)
			renderError(c, http.StatusBadRequest, fmt.Sprintf("Could not parse the question file: %v", err))
			return
		}
		if bank.Size() == 0 {
			renderError(c, http.StatusBadRequest, "No questions could be parsed from the file.")
			return
		}
		entry := reg.Put(file.Filename, bank)

		req := exam.Request{
			NumQuizzes:       formInt(c, "num_quizzes", cfg.QuizDefaults.NumQuizzes),
			QuestionsPerQuiz: formInt(c, "questions_per_quiz", cfg.QuizDefaults.QuestionsPerQuiz),
			AllowDuplicates:  c.PostForm("allow_duplicates") == "on",
		}
		if req.NumQuizzes < 1 || req.QuestionsPerQuiz < 1 {
			renderError(c, http.StatusBadRequest, "Number of quizzes and questions per quiz must be positive.")
			return
		}
		format := c.DefaultPostForm("output_format", cfg.QuizDefaults.OutputFormat)
		outputDir := c.DefaultPostForm("output_directory", cfg.QuizDefaults.OutputDirectory)

		quizzes, metadata, err := exam.Distribute(entry.Bank, req, newRand(nil))
		if err != nil {
			renderError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		files, degraded, err := exam.WriteQuizzes(quizzes, format, outputDir, styleFromConfig(cfg))
		if err != nil {
			log.Printf("Error writing quizzes for bank %s: %v", entry.ID, err)
			renderError(c, http.StatusInternalServerError, "Failed to write the quiz files.")
			return
		}

		data := gin.H{
			"Title":    "Quizzes Generated",
			"Filename": entry.Filename,
			"BankSize": bank.Size(),
			"Files":    files,
			"Metadata": metadata,
		}
		if degraded != nil {
			data["Warning"] = fmt.Sprintf("Output degraded to plain text: %v", degraded)
		}
		c.HTML(http.StatusOK, "result", data)
	}
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "result", gin.H{
		"Title": "Generation Failed",
		"Error": message,
	})
}

func formInt(c *gin.Context, field string, fallback int) int {
	raw := c.PostForm(field)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
