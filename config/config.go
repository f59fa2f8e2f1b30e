package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the client
type Config struct {
	Environment  string
	APIBaseURL   string
	APITimeout   time.Duration
	SessionFile  string
	DraftDir     string
	CallbackAddr string
	Locale       string
	Email        EmailConfig
}

// EmailConfig holds the settings of the judge invitation mailer.
type EmailConfig struct {
	Provider              string
	FromAddress           string
	FromName              string
	ReplyTo               string
	AWSRegion             string
	AWSAccessKeyID        string
	AWSSecretAccessKey    string
	SESConfigurationSet   string
	SESInsecureSkipVerify bool
}

const (
	defaultAPIBaseURL   = "http://localhost:8080"
	defaultAPITimeout   = 15 * time.Second
	defaultCallbackAddr = "127.0.0.1:5173"
	defaultLocale       = "en-IN"
)

// Load loads configuration from environment variables.
// Outside production it first tries a .env file in the working directory.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on the process environment only
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:  env,
		APIBaseURL:   os.Getenv("API_BASE_URL"),
		SessionFile:  os.Getenv("SESSION_FILE"),
		DraftDir:     os.Getenv("DRAFT_DIR"),
		CallbackAddr: os.Getenv("CALLBACK_ADDR"),
		Locale:       os.Getenv("LOCALE"),
		Email: EmailConfig{
			Provider:            os.Getenv("EMAIL_PROVIDER"),
			FromAddress:         os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:            os.Getenv("EMAIL_FROM_NAME"),
			ReplyTo:             os.Getenv("EMAIL_REPLY_TO"),
			AWSRegion:           os.Getenv("AWS_REGION"),
			AWSAccessKeyID:      os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey:  os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SESConfigurationSet: os.Getenv("SES_CONFIGURATION_SET"),
		},
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.CallbackAddr == "" {
		cfg.CallbackAddr = defaultCallbackAddr
	}
	if cfg.Locale == "" {
		cfg.Locale = defaultLocale
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "noop"
	}

	cfg.APITimeout = defaultAPITimeout
	if s := os.Getenv("API_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid API_TIMEOUT %q: must be a positive duration such as 15s", s)
		}
		cfg.APITimeout = d
	}

	if s := os.Getenv("SES_INSECURE_SKIP_VERIFY"); s != "" {
		skip, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid SES_INSECURE_SKIP_VERIFY %q: %w", s, err)
		}
		cfg.Email.SESInsecureSkipVerify = skip
	}

	if cfg.SessionFile == "" || cfg.DraftDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		if cfg.SessionFile == "" {
			cfg.SessionFile = filepath.Join(home, ".hackverse", "session.json")
		}
		if cfg.DraftDir == "" {
			cfg.DraftDir = filepath.Join(home, ".hackverse", "drafts")
		}
	}

	return cfg, nil
}
