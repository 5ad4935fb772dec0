package dto

import (
	"net/http"
	"strings"
)

// Error codes used directly by the HTTP layer
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeNotFound     = "NOT_FOUND"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall through to the prefix rules below.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeInternal:     http.StatusInternalServerError,

	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// State machine and business rule violations
	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"INVALID_REVERSAL":     http.StatusUnprocessableEntity,
	"ORDER_NOT_COMPLETED":  http.StatusUnprocessableEntity,
	"ORDER_NOT_EDITABLE":   http.StatusUnprocessableEntity,
	"PRODUCT_NOT_SELLABLE": http.StatusUnprocessableEntity,
	"BASE_RATE_IMMUTABLE":  http.StatusUnprocessableEntity,
	"SET_NOT_HYDRATED":     http.StatusUnprocessableEntity,
	"UNLOADED_COMPONENT":   http.StatusUnprocessableEntity,

	"TRANSACTION_FAILED": http.StatusInternalServerError,
	"CODE_EXHAUSTED":     http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for a domain error code.
// DUPLICATE_* codes map to 409, remaining INVALID_* codes to 400, and
// anything unknown to 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "DUPLICATE_") {
		return http.StatusConflict
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
