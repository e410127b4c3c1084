package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/quirkhelper/sidecar/pkg/dashboard"
	"github.com/quirkhelper/sidecar/pkg/llm"
	"github.com/quirkhelper/sidecar/pkg/payload"
	"github.com/quirkhelper/sidecar/pkg/summary"
)

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(llm.StatusOK)
}

func (s *Server) handleFavicon(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// handleSummarize answers with the trimmed note for Lead bodies and with the
// inline dashboard summary for anything else.
func (s *Server) handleSummarize(c *fiber.Ctx) error {
	return c.JSON(llm.SummaryResponse{Summary: Summarize(payload.Decode(c.Body()))})
}

// Summarize renders the /summarize response text for p.
func Summarize(p payload.Payload) string {
	if note := strings.TrimSpace(p.String("note")); note != "" {
		return note
	}
	return summary.FromPayload(p).Inline()
}

// handleSuggest drafts a reply. Generation failures are absorbed by the
// generator's fallback, so this handler always answers 200.
func (s *Server) handleSuggest(c *fiber.Ctx) error {
	req := SuggestRequestFrom(payload.Decode(c.Body()))

	res := s.generator.Suggest(c.UserContext(), req)
	s.metrics.ObserveSuggestion(string(res.Source))

	s.logger.Debug("suggestion generated",
		zap.String("source", string(res.Source)),
		zap.Int("message_count", len(req.Messages)),
		zap.Int("reply_chars", len([]rune(res.Reply))),
	)

	return c.JSON(llm.SuggestResponse{Reply: res.Reply})
}

// SuggestRequestFrom builds a request from a loosely typed body. Fields of the
// wrong type are ignored rather than rejected.
func SuggestRequestFrom(p payload.Payload) llm.SuggestRequest {
	req := llm.SuggestRequest{
		Store:    p.String("store"),
		Title:    p.String("title"),
		URL:      p.String("url"),
		Tone:     strings.TrimSpace(p.String("tone")),
		MaxChars: p.Int("max_chars"),
	}

	raw, _ := p.Lookup("messages")
	items, _ := raw.([]any)
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		m := payload.Payload(obj)
		req.Messages = append(req.Messages, llm.Message{
			Role:    llm.NormalizeRole(m.String("role")),
			Content: m.String("content"),
		})
	}
	return req
}

// handleDashboard accepts a dashboard snapshot and hands it to the sink.
// Malformed fields are coerced, so only a sink failure is reported.
func (s *Server) handleDashboard(c *fiber.Ctx) error {
	snapshot := dashboard.FromPayload(payload.Decode(c.Body()))

	if err := s.sink.Ingest(c.UserContext(), snapshot); err != nil {
		s.logger.Error("failed to ingest dashboard snapshot", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "dashboard ingest failed"})
	}

	return c.JSON(llm.StatusOK)
}
