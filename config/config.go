package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	ServerPort   string           `mapstructure:"SERVER_PORT"`
	GinMode      string           `mapstructure:"GIN_MODE"`
	UploadDir    string           `mapstructure:"UPLOAD_DIR"`
	Auth         AuthConfig       `mapstructure:"AUTH"`
	QuizDefaults QuizDefaults     `mapstructure:"QUIZ_DEFAULTS"`
	Formatting   FormattingConfig `mapstructure:"FORMATTING"`
}

// AuthConfig gates the optional bearer-token protection of the JSON
// API. Disabled by default: the tool is single-user out of the box.
type AuthConfig struct {
	Enabled       bool   `mapstructure:"ENABLED"`
	JWTSigningKey string `mapstructure:"JWT_SIGNING_KEY"`
	Issuer        string `mapstructure:"ISSUER"`
}

// QuizDefaults seeds the generation form and fills omitted API fields.
type QuizDefaults struct {
	NumQuizzes       int    `mapstructure:"NUM_QUIZZES"`
	QuestionsPerQuiz int    `mapstructure:"QUESTIONS_PER_QUIZ"`
	AllowDuplicates  bool   `mapstructure:"ALLOW_DUPLICATES"`
	OutputFormat     string `mapstructure:"OUTPUT_FORMAT"`
	OutputDirectory  string `mapstructure:"OUTPUT_DIRECTORY"`
}

// FormattingConfig holds the document renderers' layout knobs.
type FormattingConfig struct {
	TitleSize    int `mapstructure:"TITLE_SIZE"`
	BodySize     int `mapstructure:"BODY_SIZE"`
	FeedbackSize int `mapstructure:"FEEDBACK_SIZE"`
	OptionIndent int `mapstructure:"OPTION_INDENT"`
}

const configFile = "config.yaml"

// LoadConfig loads configuration from config.yaml and environment
// variables. When no config file exists one is written with the
// defaults so users have something to edit.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config") // config.yaml
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("SERVER_PORT", ":8080")
	viper.SetDefault("GIN_MODE", "release") // gin.DebugMode, gin.ReleaseMode, gin.TestMode
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("AUTH.ENABLED", false)
	viper.SetDefault("AUTH.JWT_SIGNING_KEY", "change-me-before-enabling-auth")
	viper.SetDefault("AUTH.ISSUER", "quizrand.example.com")
	viper.SetDefault("QUIZ_DEFAULTS.NUM_QUIZZES", 5)
	viper.SetDefault("QUIZ_DEFAULTS.QUESTIONS_PER_QUIZ", 10)
	viper.SetDefault("QUIZ_DEFAULTS.ALLOW_DUPLICATES", false)
	viper.SetDefault("QUIZ_DEFAULTS.OUTPUT_FORMAT", "docx")
	viper.SetDefault("QUIZ_DEFAULTS.OUTPUT_DIRECTORY", "quizzes")
	viper.SetDefault("FORMATTING.TITLE_SIZE", 16)
	viper.SetDefault("FORMATTING.BODY_SIZE", 12)
	viper.SetDefault("FORMATTING.FEEDBACK_SIZE", 10)
	viper.SetDefault("FORMATTING.OPTION_INDENT", 20)

	// Read from config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("%s not found, creating one with defaults", configFile)
			if werr := writeDefaultConfig(); werr != nil {
				log.Printf("Warning: could not write default %s: %v", configFile, werr)
			}
		} else {
			return nil, fmt.Errorf("fatal error config file: %w", err)
		}
	}

	// Override with environment variables (e.g., QUIZRAND_SERVER_PORT)
	viper.SetEnvPrefix("QUIZRAND")
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &cfg, nil
}

// writeDefaultConfig serializes viper's current (default) settings to
// config.yaml so first-run users get an editable file.
func writeDefaultConfig() error {
	data, err := yaml.Marshal(viper.AllSettings())
	if err != nil {
		return fmt.Errorf("failed to marshal default settings: %w", err)
	}
	if err := os.WriteFile(configFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configFile, err)
	}
	return nil
}
