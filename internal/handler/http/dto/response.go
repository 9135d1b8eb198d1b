package dto

// ErrorResponse is the body of every failed request. Code is the error kind,
// e.g. NOT_FOUND or FORBIDDEN.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// SuccessResponse acknowledges deletes and logout.
type SuccessResponse struct {
	Success bool `json:"success"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
