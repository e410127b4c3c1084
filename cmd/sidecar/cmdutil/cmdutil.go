// Package cmdutil holds the setup shared by the sidecar subcommands.
package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quirkhelper/sidecar/pkg/config"
	"github.com/quirkhelper/sidecar/pkg/logger"
	"github.com/quirkhelper/sidecar/pkg/suggest"
)

const (
	// ConfigFlag names the persistent flag holding the TOML config path.
	ConfigFlag = "config"

	// DebugFlag names the persistent flag forcing debug logging.
	DebugFlag = "debug"
)

// EnvFiles are loaded before the environment is parsed, if present.
var EnvFiles = []string{".env", "../.env"}

// Load resolves the configuration and builds a logger from the command's
// persistent flags.
func Load(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	path, _ := cmd.Flags().GetString(ConfigFlag)
	debug, _ := cmd.Flags().GetBool(DebugFlag)

	cfg, err := config.Load(path, EnvFiles...)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load configuration: %w", err)
	}
	if debug {
		cfg.Log.Debug = true
	}

	log := logger.NewLogger(logger.Options{
		Debug:  cfg.Log.Debug,
		JSON:   cfg.Log.JSON,
		Output: cmd.ErrOrStderr(),
	})
	return cfg, log, nil
}

// NewGenerator builds the suggestion generator for cfg. The OpenAI completer is
// wired only when an API key is configured.
func NewGenerator(cfg *config.Config, log *zap.Logger) *suggest.Generator {
	var completer suggest.Completer
	if cfg.LLMEnabled() {
		completer = suggest.NewOpenAICompleter(suggest.OpenAIConfig{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
		})
		log.Info("text generation enabled", zap.String("model", cfg.LLM.Model))
	} else {
		log.Info("no API key configured, suggestions use the fallback template")
	}

	return suggest.NewGenerator(completer, suggest.Config{
		Timeout:         cfg.LLM.Timeout,
		HistoryBudget:   cfg.Suggest.HistoryBudget,
		DefaultTone:     cfg.Suggest.DefaultTone,
		DefaultMaxChars: cfg.Suggest.DefaultMaxChars,
	}, log)
}
