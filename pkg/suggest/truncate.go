package suggest

import (
	"unicode/utf8"

	"github.com/quirkhelper/sidecar/pkg/llm"
)

// DefaultHistoryBudget is the character budget for history sent upstream.
const DefaultHistoryBudget = 1500

// TruncateMessages keeps the most recent messages whose combined content length
// fits in budget characters. It walks backwards from the newest message and stops
// at the first one that would overflow, so an oversized message hides everything
// older than it. The result is in chronological order.
func TruncateMessages(msgs []llm.Message, budget int) []llm.Message {
	if budget <= 0 {
		budget = DefaultHistoryBudget
	}

	start := len(msgs)
	total := 0
	for i := len(msgs) - 1; i >= 0; i-- {
		n := utf8.RuneCountInString(msgs[i].Content)
		if total+n > budget {
			break
		}
		total += n
		start = i
	}

	out := make([]llm.Message, len(msgs)-start)
	copy(out, msgs[start:])
	return out
}

// truncateRunes cuts s to at most n characters.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
