// Package config loads the sidecar configuration. Values are layered: built-in
// defaults, then an optional TOML file, then .env files, then the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// DefaultFile is read when present and no explicit path is given.
	DefaultFile = "sidecar.toml"
)

// ExtensionOrigin is always allowed to call the sidecar.
const ExtensionOrigin = "chrome-extension://*"

// DevOrigins are allowed in addition to the configured origins in development.
var DevOrigins = []string{"http://localhost", "http://localhost:*", "http://127.0.0.1", "http://127.0.0.1:*"}

// Config is the complete sidecar configuration.
type Config struct {
	Server  Server  `toml:"server"`
	LLM     LLM     `toml:"llm"`
	Suggest Suggest `toml:"suggest"`
	Log     Log     `toml:"log"`
}

// Server configures the HTTP listener.
type Server struct {
	ListenAddr     string   `toml:"listen_addr" env:"SIDECAR_LISTEN_ADDR" validate:"required"`
	Environment    string   `toml:"environment" env:"SIDECAR_ENV" validate:"oneof=development production"`
	AllowedOrigins []string `toml:"allowed_origins" env:"SIDECAR_ALLOWED_ORIGINS" envSeparator:","`
}

// LLM configures the optional text-generation API. An empty APIKey disables it.
type LLM struct {
	APIKey      string        `toml:"api_key" env:"OPENAI_API_KEY"`
	BaseURL     string        `toml:"base_url" env:"OPENAI_BASE_URL" validate:"omitempty,url"`
	Model       string        `toml:"model" env:"OPENAI_MODEL" validate:"required"`
	Timeout     time.Duration `toml:"timeout" env:"SIDECAR_LLM_TIMEOUT" validate:"gt=0"`
	MaxTokens   int           `toml:"max_tokens" env:"SIDECAR_LLM_MAX_TOKENS" validate:"gte=0"`
	Temperature float32       `toml:"temperature" env:"SIDECAR_LLM_TEMPERATURE" validate:"gte=0,lte=2"`
}

// Suggest configures reply generation defaults.
type Suggest struct {
	DefaultTone     string `toml:"default_tone" env:"SIDECAR_DEFAULT_TONE" validate:"required"`
	DefaultMaxChars int    `toml:"default_max_chars" env:"SIDECAR_DEFAULT_MAX_CHARS" validate:"gt=0"`
	HistoryBudget   int    `toml:"history_budget" env:"SIDECAR_HISTORY_BUDGET" validate:"gt=0"`
}

// Log configures the logger.
type Log struct {
	Debug bool `toml:"debug" env:"SIDECAR_DEBUG"`
	JSON  bool `toml:"json" env:"SIDECAR_LOG_JSON"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{
			ListenAddr:  "127.0.0.1:8765",
			Environment: EnvDevelopment,
		},
		LLM: LLM{
			Model:       "gpt-4o-mini",
			Timeout:     20 * time.Second,
			MaxTokens:   300,
			Temperature: 0.4,
		},
		Suggest: Suggest{
			DefaultTone:     "friendly, concise, professional",
			DefaultMaxChars: 800,
			HistoryBudget:   1500,
		},
	}
}

// Load resolves the configuration. path names a TOML file; when empty,
// DefaultFile is used if it exists. envFiles are loaded without overriding
// variables already set in the process environment.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.Server.Environment = strings.ToLower(strings.TrimSpace(cfg.Server.Environment))
	cfg.LLM.APIKey = strings.TrimSpace(cfg.LLM.APIKey)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Origins returns the origin patterns allowed to call the sidecar.
func (c *Config) Origins() []string {
	origins := []string{ExtensionOrigin}
	if c.Server.Environment == EnvDevelopment {
		origins = append(origins, DevOrigins...)
	}
	for _, o := range c.Server.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// LLMEnabled reports whether an API key is configured.
func (c *Config) LLMEnabled() bool {
	return c.LLM.APIKey != ""
}
