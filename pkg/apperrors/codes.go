package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

const (
	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeStorageError  ErrorCode = "STORAGE_ERROR"

	// Request and business rules
	CodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeConflict          ErrorCode = "CONFLICT"
	CodeIllegalTransition ErrorCode = "ILLEGAL_TRANSITION"
	CodeInvalidState      ErrorCode = "INVALID_STATE"
	CodeTooManyRequests   ErrorCode = "TOO_MANY_REQUESTS"

	// Authentication and authorization
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
)
