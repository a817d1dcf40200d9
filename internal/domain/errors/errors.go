package errors

import (
	"net/http"

	"tempo/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same business code, so errors
// produced by WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Session report errors. Callers may correct and resend these.
	ErrInvalidRange = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RANGE",
		"Start time must be before end time",
		"",
	)

	ErrDurationTooLarge = NewBaseError(
		http.StatusBadRequest,
		"DURATION_TOO_LARGE",
		"Session duration must not exceed 24 hours",
		"",
	)

	ErrInvalidTimeZone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TIME_ZONE",
		"Time zone is not a valid IANA zone",
		"",
	)

	ErrInvalidPlatform = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PLATFORM",
		"Unsupported device platform",
		"",
	)

	// Device ownership errors. Never retry these.
	ErrDeviceConflict = NewBaseError(
		http.StatusConflict,
		"DEVICE_CONFLICT",
		"Device is registered to another user",
		"",
	)

	// App dictionary errors
	ErrAppNotFound = NewBaseError(
		http.StatusNotFound,
		"APP_NOT_FOUND",
		"App not found",
		"",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"Unknown app category",
		"",
	)

	// Authentication errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired access token",
		"",
	)

	// Generic errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	// Storage errors. These are the only retryable class.
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Failed to record session, please retry",
		"",
	)

	ErrIngestionTimeout = NewBaseError(
		http.StatusServiceUnavailable,
		"INGESTION_TIMEOUT",
		"Recording the session took too long, please retry",
		"",
	)

	ErrStatsUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STATS_UNAVAILABLE",
		"Usage statistics are temporarily unavailable",
		"",
	)

	ErrInternalServer = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		"",
	)
)

// IsRetryable reports whether err belongs to the storage class that callers may retry.
func IsRetryable(err error) bool {
	return errors.IsAny(err, ErrTransactionFailed, ErrIngestionTimeout, ErrStatsUnavailable) ||
		errors.As(err, new(*DatabaseExecuteError))
}

// DatabaseExecuteError wraps a driver error that is not mapped to a domain error
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database execution error
func NewDatabaseExecuteError(err error, details string) *DatabaseExecuteError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
