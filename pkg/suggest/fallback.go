package suggest

import (
	"strings"

	"github.com/quirkhelper/sidecar/pkg/llm"
)

const (
	// QuoteLimit bounds how much of the customer's message the fallback echoes.
	QuoteLimit = 140

	// Acknowledgment opens every fallback reply.
	Acknowledgment = "Thanks for the details — I hear you"

	// CallToAction closes every fallback reply.
	CallToAction = "Happy to set up a quick call, or I can email you a short list of options that fit — which works better for you?"
)

// Fallback produces the deterministic template reply used whenever no completion
// is available. It is not truncated to the request's max chars.
func Fallback(msgs []llm.Message) string {
	quote := ""
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == llm.RoleCustomer {
			quote = truncateRunes(strings.TrimSpace(msgs[i].Content), QuoteLimit)
			break
		}
	}

	if quote == "" {
		return Acknowledgment + ". " + CallToAction
	}
	return Acknowledgment + `: "` + quote + `". ` + CallToAction
}
