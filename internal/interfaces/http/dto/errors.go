package dto

import "net/http"

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation and input error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeForbidden is used when an operation is not permitted on the resource
	ErrCodeForbidden = "ERR_FORBIDDEN"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for the current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeDrawerConflict is used when a drawer slot is taken or another drawer is open
	ErrCodeDrawerConflict = "ERR_DRAWER_CONFLICT"
	// ErrCodeExtraDrawerNotEligible is used when extra drawer preconditions are not met
	ErrCodeExtraDrawerNotEligible = "ERR_EXTRA_DRAWER_NOT_ELIGIBLE"
	// ErrCodeRecessExhausted is used when all recess slots on a drawer are taken
	ErrCodeRecessExhausted = "ERR_RECESS_EXHAUSTED"
	// ErrCodeInsufficientStock is used when stock is insufficient for an outgoing movement
	ErrCodeInsufficientStock = "ERR_INSUFFICIENT_STOCK"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation and input errors -> 400 Bad Request
	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,

	// Resource errors
	ErrCodeNotFound:  http.StatusNotFound,
	ErrCodeConflict:  http.StatusConflict,
	ErrCodeForbidden: http.StatusForbidden,

	// Business rule errors
	ErrCodeInvalidState:           http.StatusUnprocessableEntity,
	ErrCodeDrawerConflict:         http.StatusConflict,
	ErrCodeExtraDrawerNotEligible: http.StatusUnprocessableEntity,
	ErrCodeRecessExhausted:        http.StatusConflict,
	ErrCodeInsufficientStock:      http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to API error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":                 ErrCodeNotFound,
	"VALIDATION_ERROR":          ErrCodeValidation,
	"NOT_PERMITTED":             ErrCodeForbidden,
	"INVALID_STATE":             ErrCodeInvalidState,
	"DRAWER_CONFLICT":           ErrCodeDrawerConflict,
	"EXTRA_DRAWER_NOT_ELIGIBLE": ErrCodeExtraDrawerNotEligible,
	"RECESS_EXHAUSTED":          ErrCodeRecessExhausted,
	"INSUFFICIENT_STOCK":        ErrCodeInsufficientStock,
	"STORAGE_ERROR":             ErrCodeInternal,
	"INTERNAL_ERROR":            ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the API format
// If the code is already in the API format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return code
}
