package server

// Config is the HTTP server configuration.
type Config struct {
	// Address to listen on (e.g., "127.0.0.1:8765")
	ListenAddr string

	// AllowedOrigins are glob patterns (e.g., "chrome-extension://*") matched
	// against the Origin header of cross-origin requests.
	AllowedOrigins []string
}
