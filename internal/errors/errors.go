// Package errors provides the structured error type used across the
// fintrack API. Service-layer code returns *AppError values so handlers
// can render consistent JSON responses that never leak internal details
// to clients.
package errors

import "net/http"

// AppError is a structured application error carrying a stable error
// code, a human-readable message, the HTTP status to respond with, and
// an optional wrapped internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap returns a copy of sentinel that wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage returns a copy of sentinel with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrInvalidToken       = &AppError{Code: "INVALID_TOKEN", Message: "Invalid or expired token", StatusCode: http.StatusUnauthorized}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Account errors.
var (
	ErrAccountNotFound = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", StatusCode: http.StatusNotFound}
	ErrAccountInUse    = &AppError{Code: "ACCOUNT_IN_USE", Message: "Account has existing transactions", StatusCode: http.StatusConflict}
)

// Category errors.
var (
	ErrCategoryNotFound     = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrCategoryInUse        = &AppError{Code: "CATEGORY_IN_USE", Message: "Category is used by existing transactions", StatusCode: http.StatusConflict}
	ErrCategoryHasChildren  = &AppError{Code: "CATEGORY_HAS_CHILDREN", Message: "Category has child categories", StatusCode: http.StatusConflict}
	ErrSelfParentCategory   = &AppError{Code: "SELF_PARENT_CATEGORY", Message: "A category cannot be its own parent", StatusCode: http.StatusBadRequest}
	ErrCategoryTypeMismatch = &AppError{Code: "CATEGORY_TYPE_MISMATCH", Message: "Category type does not match transaction type", StatusCode: http.StatusBadRequest}
)

// Transaction errors.
var (
	ErrTransactionNotFound    = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Unsupported transaction type", StatusCode: http.StatusBadRequest}
)

// Goal errors.
var (
	ErrGoalNotFound = &AppError{Code: "GOAL_NOT_FOUND", Message: "Goal not found", StatusCode: http.StatusNotFound}
)

// Reporting errors.
var (
	ErrInvalidPeriod = &AppError{Code: "INVALID_PERIOD", Message: "Invalid reporting period", StatusCode: http.StatusBadRequest}
)
