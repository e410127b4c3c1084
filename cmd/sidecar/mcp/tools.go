package mcpcmder

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/quirkhelper/sidecar/pkg/llm"
	"github.com/quirkhelper/sidecar/pkg/payload"
	"github.com/quirkhelper/sidecar/pkg/suggest"
	"github.com/quirkhelper/sidecar/server"
)

// SummarizeInput is the argument of the summarize tool.
type SummarizeInput struct {
	Payload map[string]any `json:"payload" jsonschema:"dashboard snapshot or lead note object"`
}

// SummarizeOutput is the result of the summarize tool.
type SummarizeOutput struct {
	Summary string `json:"summary"`
}

// SuggestInput is the argument of the suggest tool.
type SuggestInput struct {
	Store    string        `json:"store,omitempty" jsonschema:"dealer store name"`
	Title    string        `json:"title,omitempty" jsonschema:"page title"`
	URL      string        `json:"url,omitempty" jsonschema:"page URL"`
	Messages []llm.Message `json:"messages" jsonschema:"conversation history, oldest first"`
	Tone     string        `json:"tone,omitempty" jsonschema:"requested writing tone"`
	MaxChars int           `json:"max_chars,omitempty" jsonschema:"maximum reply length in characters"`
}

// SuggestOutput is the result of the suggest tool.
type SuggestOutput struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
}

// NewServer exposes summarize and suggest as MCP tools.
func NewServer(gen *suggest.Generator, version string, log *zap.Logger) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: "sidecar", Version: version}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "summarize",
		Description: "Summarize a dealer dashboard snapshot, or echo a lead note.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, in SummarizeInput) (*mcp.CallToolResult, SummarizeOutput, error) {
		return nil, SummarizeOutput{Summary: server.Summarize(payload.Unwrap(in.Payload))}, nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "suggest",
		Description: "Draft a short reply to a lead conversation.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in SuggestInput) (*mcp.CallToolResult, SuggestOutput, error) {
		res := gen.Suggest(ctx, llm.SuggestRequest{
			Store:    in.Store,
			Title:    in.Title,
			URL:      in.URL,
			Messages: in.Messages,
			Tone:     in.Tone,
			MaxChars: in.MaxChars,
		})
		log.Debug("mcp suggestion generated", zap.String("source", string(res.Source)))
		return nil, SuggestOutput{Reply: res.Reply, Source: string(res.Source)}, nil
	})

	return srv
}
