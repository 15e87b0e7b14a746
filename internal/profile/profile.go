package profile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev" or "demo"
	Mode string
	// Addr is the binding address for server
	Addr string
	// Port is the binding port for server
	Port int
	// Data is the data directory, also used for uploaded media
	Data string
	// DSN points to where cradle stores its own data
	DSN string
	// Driver is the database driver (sqlite or postgres)
	Driver string
	// Version is the current version of server
	Version string
	// Secret signs and verifies access tokens
	Secret string
	// InstanceURL is the public url of your cradle instance.
	InstanceURL string

	// AI Configuration
	AIEnabled       bool   // CRADLE_AI_ENABLED
	AIProvider      string // CRADLE_AI_PROVIDER (default: gemini)
	AIAPIKey        string // CRADLE_AI_API_KEY
	AIBaseURL       string // CRADLE_AI_BASE_URL (default: https://generativelanguage.googleapis.com/v1beta/openai)
	AIModel         string // CRADLE_AI_MODEL (default: gemini-2.0-flash)
	AIOpenAIAPIKey  string // CRADLE_AI_OPENAI_API_KEY
	AIOpenAIBaseURL string // CRADLE_AI_OPENAI_BASE_URL (default: https://api.openai.com/v1)
	AIOllamaBaseURL string // CRADLE_AI_OLLAMA_BASE_URL (default: http://localhost:11434)
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// IsAIEnabled returns true if AI is enabled and at least one API key or base URL is configured.
func (p *Profile) IsAIEnabled() bool {
	return p.AIEnabled && (p.AIAPIKey != "" || p.AIOpenAIAPIKey != "" || p.AIOllamaBaseURL != "")
}

// getEnvOrDefault returns the environment variable value or the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FromEnv loads AI configuration from CRADLE_* environment variables.
func (p *Profile) FromEnv() {
	p.AIEnabled = os.Getenv("CRADLE_AI_ENABLED") == "true"
	p.AIProvider = getEnvOrDefault("CRADLE_AI_PROVIDER", "gemini")
	p.AIAPIKey = os.Getenv("CRADLE_AI_API_KEY")
	p.AIBaseURL = getEnvOrDefault("CRADLE_AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai")
	p.AIModel = getEnvOrDefault("CRADLE_AI_MODEL", "gemini-2.0-flash")
	p.AIOpenAIAPIKey = os.Getenv("CRADLE_AI_OPENAI_API_KEY")
	p.AIOpenAIBaseURL = getEnvOrDefault("CRADLE_AI_OPENAI_BASE_URL", "https://api.openai.com/v1")
	p.AIOllamaBaseURL = getEnvOrDefault("CRADLE_AI_OLLAMA_BASE_URL", "http://localhost:11434")
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		relativeDir := filepath.Join(filepath.Dir(os.Args[0]), dataDir)
		absDir, err := filepath.Abs(relativeDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
	}
	return dataDir, nil
}

func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}

	if p.Mode == "prod" && p.Data == "" {
		if runtime.GOOS == "windows" {
			p.Data = filepath.Join(os.Getenv("ProgramData"), "cradle")
			if _, err := os.Stat(p.Data); os.IsNotExist(err) {
				if err := os.MkdirAll(p.Data, 0770); err != nil {
					slog.Error("failed to create data directory", slog.String("data", p.Data), slog.String("error", err.Error()))
					return err
				}
			}
		} else {
			p.Data = "/var/opt/cradle"
		}
	}

	dataDir, err := checkDataDir(p.Data)
	if err != nil {
		slog.Error("failed to check data dir", slog.String("data", dataDir), slog.String("error", err.Error()))
		return err
	}

	p.Data = dataDir
	if p.Driver == "sqlite" && p.DSN == "" {
		dbFile := fmt.Sprintf("cradle_%s.db", p.Mode)
		p.DSN = filepath.Join(dataDir, dbFile)
	}

	if p.Secret == "" {
		return errors.New("access token secret is required")
	}

	return nil
}
