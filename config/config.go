package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string `env:"PORT" envDefault:"8080"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DBDriver    string `env:"DB_DRIVER" envDefault:"sqlite"` // sqlite|postgres
	DBPath      string `env:"DB_PATH" envDefault:"farmbook.db"`
	DatabaseURL string `env:"DATABASE_URL"`

	SessionSecret      string        `env:"SESSION_SECRET"`
	SessionTTL         time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	SecureCookies      bool          `env:"SECURE_COOKIES" envDefault:"false"`
	EnableDevLogin     bool          `env:"ENABLE_DEV_LOGIN" envDefault:"true"`
	TrustProxyIdentity bool          `env:"TRUST_PROXY_IDENTITY" envDefault:"false"`
	StrictForbidden    bool          `env:"STRICT_FORBIDDEN" envDefault:"false"`
	CascadeDeletes     bool          `env:"CASCADE_DELETES" envDefault:"true"`

	LLMProvider string        `env:"LLM_PROVIDER"` // openai|gemini|mock, empty = pick from credentials
	LLMEndpoint string        `env:"LLM_ENDPOINT" envDefault:"https://api.openai.com"`
	LLMAPIKey   string        `env:"LLM_API_KEY"`
	LLMModel    string        `env:"LLM_MODEL"` // empty = provider default
	LLMTimeout  time.Duration `env:"LLM_TIMEOUT" envDefault:"60s"`
}

func (c AppConfig) Development() bool { return c.Env == "development" }

// Provider resolves which completion backend to use. Without an explicit
// choice a configured API key selects openai, otherwise the mock.
func (c AppConfig) Provider() string {
	if c.LLMProvider != "" {
		return c.LLMProvider
	}
	if c.LLMAPIKey != "" {
		return "openai"
	}
	return "mock"
}

// Model is the configured completion model or the provider's default.
func (c AppConfig) Model() string {
	if c.LLMModel != "" {
		return c.LLMModel
	}
	switch c.Provider() {
	case "gemini":
		return "gemini-2.0-flash"
	case "openai":
		return "gpt-4o-mini"
	}
	return "mock"
}

// Load reads .env (if present) and then the process environment.
func Load() (AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return AppConfig{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

func Parse() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.DBDriver {
	case "sqlite", "postgres":
	default:
		return AppConfig{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.DBDriver == "postgres" && cfg.DatabaseURL == "" {
		return AppConfig{}, errors.New("DATABASE_URL is required for postgres")
	}
	switch cfg.Provider() {
	case "openai", "gemini", "mock":
	default:
		return AppConfig{}, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLMProvider)
	}
	if cfg.SessionSecret == "" && !cfg.Development() {
		return AppConfig{}, errors.New("SESSION_SECRET is required outside development")
	}
	return cfg, nil
}
