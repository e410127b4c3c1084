package llm

// SummaryResponse carries the rendered summary for /summarize.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// SuggestResponse carries the suggested reply for /suggest.
type SuggestResponse struct {
	Reply string `json:"reply"`
}

// StatusResponse is the acknowledgement returned by /health and /dashboard.
type StatusResponse struct {
	Status string `json:"status"`
}

// StatusOK is the canonical affirmative status body.
var StatusOK = StatusResponse{Status: "ok"}
