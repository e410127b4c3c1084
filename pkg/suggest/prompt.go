package suggest

import (
	"fmt"
	"strings"

	"github.com/quirkhelper/sidecar/pkg/llm"
)

const emptyTranscript = "Customer: (no messages yet)"

// SystemPrompt builds the instruction sent ahead of the transcript.
func SystemPrompt(req llm.SuggestRequest) string {
	var sb strings.Builder
	sb.WriteString("You are an automotive dealership sales assistant drafting a single text-message reply to a customer.\n")
	fmt.Fprintf(&sb, "Write in a %s tone.\n", req.Tone)
	fmt.Fprintf(&sb, "Keep the reply under %d characters, plain text, no greeting placeholders or signatures.\n", req.MaxChars)

	var ctx []string
	if req.Store != "" {
		ctx = append(ctx, "Store: "+req.Store)
	}
	if req.Title != "" {
		ctx = append(ctx, "Page: "+req.Title)
	}
	if req.URL != "" {
		ctx = append(ctx, "URL: "+req.URL)
	}
	if len(ctx) > 0 {
		sb.WriteString("Context:\n")
		sb.WriteString(strings.Join(ctx, "\n"))
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

// Transcript renders msgs as Customer:/Agent: lines.
func Transcript(msgs []llm.Message) string {
	if len(msgs) == 0 {
		return emptyTranscript
	}

	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		speaker := "Agent"
		if m.Role == llm.RoleCustomer {
			speaker = "Customer"
		}
		lines = append(lines, speaker+": "+strings.TrimSpace(m.Content))
	}
	return strings.Join(lines, "\n")
}

// UserPrompt wraps the transcript with the reply instruction.
func UserPrompt(msgs []llm.Message) string {
	return "Conversation so far:\n" + Transcript(msgs) + "\n\nDraft the agent's next reply."
}
