package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message" example:"Admin registered successfully"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
