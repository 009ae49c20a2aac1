package constants

// Context keys
const (
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"
)

// HTTP headers
const (
	HeaderAPIKey    = "X-Api-Key"
	HeaderRequestID = "X-Request-ID"
)

// Pagination
const (
	// TaskPageSize is fixed server-side; callers only choose the page index.
	TaskPageSize = 10
	MinPageIndex = 0
)

// API keys
const (
	APIKeyLength   = 30
	APIKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)
