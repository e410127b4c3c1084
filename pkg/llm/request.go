package llm

const (
	// DefaultTone is used when a suggestion request does not ask for one.
	DefaultTone = "friendly, concise, professional"

	// DefaultMaxChars bounds a suggested reply when the request does not.
	DefaultMaxChars = 800
)

// SuggestRequest asks for a reply to a lead conversation.
type SuggestRequest struct {
	Store    string    `json:"store,omitempty"`     // Dealer store name
	Title    string    `json:"title,omitempty"`     // Page title the conversation was scraped from
	URL      string    `json:"url,omitempty"`       // Page URL
	Messages []Message `json:"messages"`            // Conversation history, oldest first
	Tone     string    `json:"tone,omitempty"`      // Requested writing tone
	MaxChars int       `json:"max_chars,omitempty"` // Upper bound on the reply length in characters
}

// WithDefaults returns a copy of r with tone and max chars filled in.
// Empty values take tone and maxChars; non-positive fallbacks use the package defaults.
func (r SuggestRequest) WithDefaults(tone string, maxChars int) SuggestRequest {
	if tone == "" {
		tone = DefaultTone
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	if r.Tone == "" {
		r.Tone = tone
	}
	if r.MaxChars <= 0 {
		r.MaxChars = maxChars
	}
	r.Messages = NormalizeMessages(r.Messages)
	return r
}

// Lead is the minimal note-only shape posted by the texting panel.
type Lead struct {
	Note string `json:"note"`
}
