package common

// ErrorResponse is the body of every failed request. Error carries the
// underlying cause and is left out in production.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse is a bare confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse confirms a create and returns the new row's id
type CreatedResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment,omitempty"`
}
