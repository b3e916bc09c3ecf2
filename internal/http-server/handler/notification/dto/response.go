package dto

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
