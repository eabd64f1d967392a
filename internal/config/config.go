package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every setting the service reads at startup.  The provider
// credential is read once here and injected into the LLM client constructor;
// nothing reads the environment after Load returns.
type Config struct {
	DatabaseURL       string
	OpenAIKey         string
	OpenAIModel       string
	LLMTimeout        time.Duration
	Port              string
	LogLevel          string
	LogFormat         string
	LowStockThreshold int
}

// Load reads configuration from an optional .env file and the process
// environment.  Only DATABASE_URL is mandatory; a missing OPENAI_API_KEY is
// deliberately not an error here so the service can come up and answer with
// a configuration message instead of refusing to start.
func Load() (*Config, error) {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("LLM_TIMEOUT_SECONDS", 30)
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOW_STOCK_THRESHOLD", 10)

	cfg := &Config{
		DatabaseURL:       v.GetString("DATABASE_URL"),
		OpenAIKey:         v.GetString("OPENAI_API_KEY"),
		OpenAIModel:       v.GetString("OPENAI_MODEL"),
		LLMTimeout:        time.Duration(v.GetInt("LLM_TIMEOUT_SECONDS")) * time.Second,
		Port:              v.GetString("PORT"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
		LowStockThreshold: v.GetInt("LOW_STOCK_THRESHOLD"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL must be set")
	}
	if cfg.LLMTimeout <= 0 {
		return nil, errors.New("LLM_TIMEOUT_SECONDS must be positive")
	}
	return cfg, nil
}
