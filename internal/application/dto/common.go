package dto

// ErrorResponse cuerpo de error HTTP: { "error": "<mensaje>" }.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse confirmación simple para operaciones sin payload.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
