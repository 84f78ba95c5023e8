package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
	// ErrCodeInsufficientStock is used when stock is insufficient
	ErrCodeInsufficientStock = "ERR_INSUFFICIENT_STOCK"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation: http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	ErrCodeInvalidState:      http.StatusUnprocessableEntity,
	ErrCodeBusinessRule:      http.StatusUnprocessableEntity,
	ErrCodeInsufficientStock: http.StatusUnprocessableEntity,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to the wire format.
// Domain codes not listed here fall through NormalizeErrorCode unchanged
// and default to 500, which keeps unmapped codes visible in tests.
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":            ErrCodeNotFound,
	"ALREADY_EXISTS":       ErrCodeAlreadyExists,
	"EMAIL_TAKEN":          ErrCodeAlreadyExists,
	"INVALID_INPUT":        ErrCodeInvalidInput,
	"INVALID_STATE":        ErrCodeInvalidState,
	"UNAUTHORIZED":         ErrCodeUnauthorized,
	"INVALID_CREDENTIALS":  ErrCodeUnauthorized,
	"FORBIDDEN":            ErrCodeForbidden,
	"CONCURRENCY_CONFLICT": ErrCodeConcurrencyConflict,
	"INSUFFICIENT_STOCK":   ErrCodeInsufficientStock,

	"INVALID_TITLE":          ErrCodeValidation,
	"INVALID_DESCRIPTION":    ErrCodeValidation,
	"INVALID_PRICE":          ErrCodeValidation,
	"INVALID_STOCK":          ErrCodeValidation,
	"INVALID_CATEGORY":       ErrCodeValidation,
	"INVALID_IMAGE_URL":      ErrCodeValidation,
	"INVALID_TEMPLATE":       ErrCodeValidation,
	"INVALID_MESSAGE":        ErrCodeValidation,
	"INVALID_WINDOW":         ErrCodeValidation,
	"INVALID_NAME":           ErrCodeValidation,
	"INVALID_EMAIL":          ErrCodeValidation,
	"INVALID_PASSWORD":       ErrCodeValidation,
	"INVALID_ROLE":           ErrCodeValidation,
	"INVALID_SALARY":         ErrCodeValidation,
	"INVALID_STATUS":         ErrCodeValidation,
	"INVALID_CURRENCY":       ErrCodeValidation,
	"INVALID_QUANTITY":       ErrCodeValidation,
	"INVALID_DELTA":          ErrCodeValidation,
	"INVALID_REASON":         ErrCodeValidation,
	"INVALID_PRODUCT_ID":     ErrCodeValidation,
	"INVALID_USER_ID":        ErrCodeValidation,
	"INVALID_CASHIER_ID":     ErrCodeValidation,
	"INVALID_SENDER":         ErrCodeValidation,
	"INVALID_RECIPIENT":      ErrCodeValidation,
	"INVALID_PAYMENT_METHOD": ErrCodeValidation,
	"EMPTY_ORDER":            ErrCodeValidation,
	"EMPTY_SALE":             ErrCodeValidation,
	"EMPTY_MESSAGE":          ErrCodeValidation,
	"DUPLICATE_ORDER_LINE":   ErrCodeValidation,
	"DUPLICATE_SALE_LINE":    ErrCodeValidation,

	"SALE_ALREADY_RETURNED": ErrCodeBusinessRule,
	"PRODUCT_INACTIVE":      ErrCodeBusinessRule,
	"SELF_DELETE":           ErrCodeBusinessRule,
	"PASSWORD_HASH_ERROR":   ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the wire format.
// If the code is already in the wire format or unknown, returns it as-is.
func NormalizeErrorCode(code string) string {
	if wireCode, ok := DomainErrorCodeMapping[code]; ok {
		return wireCode
	}
	return code
}
