package api

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // машинный код ошибки
	Message string `json:"message,omitempty"` // описание для человека
	Field   string `json:"field,omitempty"`   // поле конфигурации, если ошибка в нём
}

// Error codes returned in ErrorResponse.Error
const (
	ErrCodeInvalidRequest  = "invalid_request"
	ErrCodeNotFound        = "not_found"
	ErrCodeNotConfigured   = "not_configured"
	ErrCodeNoConflict      = "no_conflict"
	ErrCodeTypeMismatch    = "type_mismatch"
	ErrCodeRevisionChanged = "revision_changed"
	ErrCodeRateLimited     = "rate_limited"
	ErrCodeInternal        = "internal_error"
)

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version,omitempty"`
	Configured bool   `json:"configured"`
}
