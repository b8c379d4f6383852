// Package errors provides custom error types for the FinTrack API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
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

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Profile errors.
var (
	ErrProfileNotFound        = &AppError{Code: "PROFILE_NOT_FOUND", Message: "No profile exists yet", StatusCode: http.StatusNotFound}
	ErrSalaryNotSet           = &AppError{Code: "SALARY_NOT_SET", Message: "No salary is stored in the profile", StatusCode: http.StatusNotFound}
	ErrSalaryPasswordMismatch = &AppError{Code: "SALARY_PASSWORD_MISMATCH", Message: "Salary password does not match", StatusCode: http.StatusForbidden}
	ErrCategoryExists         = &AppError{Code: "CATEGORY_EXISTS", Message: "A category with this name already exists", StatusCode: http.StatusConflict}
	ErrCategoryNotFound       = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrCategoryBudgetNotFound = &AppError{Code: "CATEGORY_BUDGET_NOT_FOUND", Message: "No budget is set for this category", StatusCode: http.StatusNotFound}
)

// Expense errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
)

// Task errors.
var (
	ErrTaskNotFound = &AppError{Code: "TASK_NOT_FOUND", Message: "Task not found", StatusCode: http.StatusNotFound}
)

// Savings errors.
var (
	ErrGoalNotFound         = &AppError{Code: "GOAL_NOT_FOUND", Message: "Savings goal not found", StatusCode: http.StatusNotFound}
	ErrContributionNotFound = &AppError{Code: "CONTRIBUTION_NOT_FOUND", Message: "Contribution not found", StatusCode: http.StatusNotFound}
)

// Assistant errors. A missing credential is actionable by the user and
// gets its own code; transport and malformed-response failures are
// recoverable and must never corrupt existing state.
var (
	ErrAssistantKeyMissing  = &AppError{Code: "ASSISTANT_KEY_MISSING", Message: "Assistant API key is not configured", StatusCode: http.StatusBadRequest}
	ErrAssistantUnavailable = &AppError{Code: "ASSISTANT_UNAVAILABLE", Message: "Assistant service is unavailable", StatusCode: http.StatusBadGateway}
	ErrAssistantBadReply    = &AppError{Code: "ASSISTANT_BAD_REPLY", Message: "Assistant returned an unusable response", StatusCode: http.StatusBadGateway}
)
