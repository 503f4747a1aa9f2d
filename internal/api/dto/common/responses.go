package common

// APIResponse is the envelope returned by every JSON endpoint.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
	Version   string  `json:"version"`
}

// CredentialsResponse is the placeholder payload for the credentials endpoint.
type CredentialsResponse struct {
	Message   string `json:"message"`
	Available bool   `json:"available"`
}

// NewErrorResponse creates a failure envelope with a message
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}
