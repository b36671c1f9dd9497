package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.cause
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewStorageError wraps an infrastructure failure so callers see a storage
// error code instead of driver internals. The cause stays reachable through
// errors.Is and errors.As.
func NewStorageError(cause error) *DomainError {
	return &DomainError{
		Code:    "STORAGE_ERROR",
		Message: "Storage operation failed",
		cause:   cause,
	}
}

// Common domain errors
var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrValidation        = NewDomainError("VALIDATION_ERROR", "Invalid input provided")
	ErrNotPermitted      = NewDomainError("NOT_PERMITTED", "Operation not allowed for this resource")
	ErrInvalidState      = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrStorage           = NewDomainError("STORAGE_ERROR", "Storage operation failed")
)
