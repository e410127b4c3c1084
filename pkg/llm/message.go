// Package llm provides the wire representations of the requests and responses
// exchanged between the browser extension and the sidecar.
package llm

import "strings"

// Role identifies who authored a conversation message.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
	RoleSystem   Role = "system"
)

// Message represents a single message in a lead conversation.
type Message struct {
	Role    Role   `json:"role"`    // "customer", "agent", "system"
	Content string `json:"content"` // The message text
}

// NormalizeRole maps the role spellings used by chat widgets and LLM APIs onto
// the three conversation roles. Empty and unknown roles are treated as the customer.
func NormalizeRole(role string) Role {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "agent", "assistant", "rep", "salesperson", "model":
		return RoleAgent
	case "system":
		return RoleSystem
	default:
		return RoleCustomer
	}
}

// NormalizeMessages returns a copy of msgs with every role normalized.
func NormalizeMessages(msgs []Message) []Message {
	out := make([]Message, len(msgs))
	for i, m := range msgs {
		out[i] = Message{Role: NormalizeRole(string(m.Role)), Content: m.Content}
	}
	return out
}
