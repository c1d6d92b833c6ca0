package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"quizrand-server/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		UploadDir: t.TempDir(),
		QuizDefaults: config.QuizDefaults{
			NumQuizzes:       2,
			QuestionsPerQuiz: 2,
			AllowDuplicates:  false,
			OutputFormat:     "text",
			OutputDirectory:  filepath.Join(t.TempDir(), "quizzes"),
		},
		Formatting: config.FormattingConfig{
			TitleSize: 16, BodySize: 12, FeedbackSize: 10, OptionIndent: 20,
		},
	}
}

func testRouter(t *testing.T) (*gin.Engine, *BankRegistry, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	reg := NewBankRegistry()
	router := gin.New()
	router.POST("/api/v1/banks", UploadBank(reg, cfg.UploadDir))
	router.GET("/api/v1/banks", ListBanks(reg))
	router.GET("/api/v1/banks/:bank_id", GetBank(reg))
	router.POST("/api/v1/banks/:bank_id/quizzes", GenerateQuizzes(reg, cfg))
	return router, reg, cfg
}

func uploadBankFile(t *testing.T, router *gin.Engine, content string) string {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "bank.txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(fw, content); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/banks", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("upload returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID            string `json:"id"`
		QuestionCount int    `json:"question_count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding upload response: %v", err)
	}
	if resp.ID == "" {
		t.Fatalf("upload response missing bank ID")
	}
	return resp.ID
}

const sampleBank = `Capital of Spain?
a) Paris
b) **Madrid**

True/False: water is wet.

Name a Go keyword.

Pick a number.
1. one
2. two
`

// TestUploadAndGetBank verifies the upload-parse-register flow.
func TestUploadAndGetBank(t *testing.T) {
	router, _, _ := testRouter(t)
	id := uploadBankFile(t, router, sampleBank)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/banks/"+id, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get bank returned %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Questions []struct {
			ID   int    `json:"id"`
			Type string `json:"type"`
		} `json:"questions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(resp.Questions))
	}
	if resp.Questions[0].Type != "multiple-choice" || resp.Questions[1].Type != "true-false" {
		t.Fatalf("unexpected question types: %+v", resp.Questions)
	}
}

// TestUploadRejectsEmptyBank verifies files with no questions are refused.
func TestUploadRejectsEmptyBank(t *testing.T) {
	router, _, _ := testRouter(t)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, _ := mw.CreateFormFile("file", "empty.txt")
	io.WriteString(fw, "   \n\n   ")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/banks", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

// TestGenerateQuizzes verifies the full generation flow over HTTP.
func TestGenerateQuizzes(t *testing.T) {
	router, _, cfg := testRouter(t)
	id := uploadBankFile(t, router, sampleBank)

	payload := `{"num_quizzes": 2, "questions_per_quiz": 2, "seed": 7}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/banks/"+id+"/quizzes", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("generate returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Files    []string `json:"files"`
		Metadata struct {
			NumQuizzes         int `json:"num_quizzes"`
			TotalQuestionsUsed int `json:"total_questions_used"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Files) != 2 {
		t.Fatalf("expected 2 files, got %v", resp.Files)
	}
	if resp.Metadata.NumQuizzes != 2 || resp.Metadata.TotalQuestionsUsed != 4 {
		t.Fatalf("unexpected metadata: %+v", resp.Metadata)
	}
	for _, f := range resp.Files {
		if !strings.HasPrefix(f, cfg.QuizDefaults.OutputDirectory) {
			t.Errorf("file %q written outside the configured output directory", f)
		}
	}
}

// TestGenerateInsufficientQuestions verifies the 422 mapping.
func TestGenerateInsufficientQuestions(t *testing.T) {
	router, _, _ := testRouter(t)
	id := uploadBankFile(t, router, sampleBank)

	payload := `{"num_quizzes": 5, "questions_per_quiz": 10}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/banks/"+id+"/quizzes", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

// TestGenerateUnknownBank verifies the 404 mapping.
func TestGenerateUnknownBank(t *testing.T) {
	router, _, _ := testRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/banks/nope/quizzes", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
