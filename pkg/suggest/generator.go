// Package suggest drafts replies to lead conversations. A Completer backed by an
// external text-generation API is used when one is configured; otherwise, and
// whenever the completion fails, a deterministic template reply is produced.
package suggest

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/quirkhelper/sidecar/pkg/llm"
)

// DefaultTimeout bounds a single completion call.
const DefaultTimeout = 20 * time.Second

// ErrEmptyCompletion is returned when the upstream answers without any text.
var ErrEmptyCompletion = errors.New("empty completion")

// Completer produces a single reply for a system instruction and prompt.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Source records which path produced a reply.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Result is a generated reply and where it came from.
type Result struct {
	Reply  string
	Source Source
}

// Config tunes the generator.
type Config struct {
	// Timeout bounds each completion call; zero means DefaultTimeout.
	Timeout time.Duration

	// HistoryBudget is the character budget for history sent upstream.
	HistoryBudget int

	// DefaultTone and DefaultMaxChars apply to requests that leave them unset.
	DefaultTone     string
	DefaultMaxChars int
}

// Generator turns suggestion requests into replies.
type Generator struct {
	completer Completer
	config    Config
	logger    *zap.Logger
}

// NewGenerator creates a Generator. A nil completer means no external API is
// configured and every reply comes from the fallback template.
func NewGenerator(completer Completer, config Config, logger *zap.Logger) *Generator {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.HistoryBudget <= 0 {
		config.HistoryBudget = DefaultHistoryBudget
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{completer: completer, config: config, logger: logger}
}

// Available reports whether an external completer is configured.
func (g *Generator) Available() bool {
	return g.completer != nil
}

// Suggest returns a reply no longer than the request's max chars. It never fails:
// completion errors are logged and answered with the fallback template.
func (g *Generator) Suggest(ctx context.Context, req llm.SuggestRequest) Result {
	req = req.WithDefaults(g.config.DefaultTone, g.config.DefaultMaxChars)

	if reply, ok := g.complete(ctx, req); ok {
		return Result{Reply: truncateRunes(reply, req.MaxChars), Source: SourceLLM}
	}
	return Result{Reply: truncateRunes(Fallback(req.Messages), req.MaxChars), Source: SourceFallback}
}

func (g *Generator) complete(ctx context.Context, req llm.SuggestRequest) (string, bool) {
	if !g.Available() {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	history := TruncateMessages(req.Messages, g.config.HistoryBudget)
	startTime := time.Now()

	reply, err := g.completer.Complete(ctx, SystemPrompt(req), UserPrompt(history))
	if err == nil && strings.TrimSpace(reply) == "" {
		err = ErrEmptyCompletion
	}
	if err != nil {
		g.logger.Warn("completion failed, using fallback reply",
			zap.Error(err),
			zap.Int("history_messages", len(history)),
			zap.Duration("duration", time.Since(startTime)),
		)
		return "", false
	}

	g.logger.Debug("completion received",
		zap.Int("history_messages", len(history)),
		zap.Int("reply_chars", len(reply)),
		zap.Duration("duration", time.Since(startTime)),
	)
	return strings.TrimSpace(reply), true
}
