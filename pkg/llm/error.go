package llm

// ErrorResponse is the JSON body the sidecar sends with a non-2xx status,
// for example when a dashboard sink fails.
type ErrorResponse struct {
	Error string `json:"error"`
}
