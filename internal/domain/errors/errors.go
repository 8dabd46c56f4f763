package errors

import (
	"net/http"

	"routecast/internal/errors"
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

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return other.errorCode == e.errorCode
}

// Predefined error types
var (
	// Routing-related errors
	ErrNoRouteAvailable = NewBaseError(
		http.StatusNotFound,
		"NO_ROUTE_AVAILABLE",
		"No route available between the given points",
		"",
	)

	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"Coordinate is out of range",
		"",
	)

	// Incident-related errors
	ErrIncidentNotFound = NewBaseError(
		http.StatusNotFound,
		"INCIDENT_NOT_FOUND",
		"Incident not found",
		"",
	)

	ErrInvalidIncidentType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INCIDENT_TYPE",
		"Unknown incident type",
		"",
	)

	ErrInvalidSeverity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SEVERITY",
		"Unknown incident severity",
		"",
	)

	// Trip and model-related errors
	ErrInvalidTrip = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRIP",
		"Trip durations must be positive",
		"",
	)

	ErrInsufficientTrainingData = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_TRAINING_DATA",
		"Not enough trips to train the model",
		"",
	)

	ErrTrainingFailed = NewBaseError(
		http.StatusBadRequest,
		"TRAINING_FAILED",
		"Model training failed",
		"",
	)

	ErrModelPersistFailed = NewBaseError(
		http.StatusInternalServerError,
		"MODEL_PERSIST_FAILED",
		"Trained model could not be stored",
		"",
	)

	ErrModelNotFound = NewBaseError(
		http.StatusNotFound,
		"MODEL_NOT_FOUND",
		"No trained model has been stored",
		"",
	)

	// Favorite and settings errors
	ErrFavoriteNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"Favorite place not found",
		"",
	)

	ErrInvalidFavoriteType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FAVORITE_TYPE",
		"Unknown favorite type",
		"",
	)

	ErrInvalidVoiceMode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_VOICE_MODE",
		"Unknown voice mode",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
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
