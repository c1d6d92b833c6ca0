package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"

	"quizrand-server/config"
	"quizrand-server/handlers"
	"quizrand-server/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Initialize Gin router
	router := gin.Default()

	// Load HTML templates for the generator UI
	renderer := multitemplate.NewRenderer()
	renderer.AddFromFiles("index", "templates/layout.html", "templates/index.html")
	renderer.AddFromFiles("result", "templates/layout.html", "templates/result.html")
	router.HTMLRender = renderer

	// Middleware
	router.Use(middleware.Logger()) // Custom logger middleware

	// All loaded banks live in memory for the life of the process.
	registry := handlers.NewBankRegistry()

	// Web UI routes
	router.GET("/", handlers.IndexPage(cfg))
	router.POST("/generate", handlers.GeneratePage(registry, cfg))

	// API Routes (version 1)
	apiV1 := router.Group("/api/v1")
	if cfg.Auth.Enabled {
		apiV1.Use(middleware.AuthMiddleware(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer))
	}
	{
		apiV1.POST("/banks", handlers.UploadBank(registry, cfg.UploadDir))
		apiV1.GET("/banks", handlers.ListBanks(registry))
		apiV1.GET("/banks/:bank_id", handlers.GetBank(registry))
		apiV1.POST("/banks/:bank_id/quizzes", handlers.GenerateQuizzes(registry, cfg))
	}

	// Start the server
	srv := &http.Server{
		Addr:    cfg.ServerPort,
		Handler: router,
	}

	// Goroutine to gracefully shut down the server
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("Quiz Randomizer server starting on %s", cfg.ServerPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server startup error: %v", err)
	}
	log.Println("Server exited gracefully.")
}
