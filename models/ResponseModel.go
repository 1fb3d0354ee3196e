package models

// ErrorResponse is the generic error body returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// MessageResponse is the generic success body for operations that only
// confirm completion.
type MessageResponse struct {
	Message string `json:"message" example:"deleted successfully"`
}

// ValidateSessionResponse is returned by the validate-session endpoint.
type ValidateSessionResponse struct {
	Message   string `json:"message" example:"Session validated"`
	SessionID string `json:"session_id"`
	HostName  string `json:"host_name"`
}
