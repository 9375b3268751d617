package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category

type ErrorType int

// Domain errors - input validation and lookups
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeLocationNotFound

	// Provider errors - third-party geocoding and weather services
	ErrorTypeProviderUnavailable
	ErrorTypeInvalidWeatherPayload
	ErrorTypeTimezoneProjection

	// Infrastructure errors - storage and configuration
	ErrorTypeDatabase
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeLocationNotFound:
		return "LOCATION_NOT_FOUND"
	case ErrorTypeProviderUnavailable:
		return "PROVIDER_UNAVAILABLE"
	case ErrorTypeInvalidWeatherPayload:
		return "INVALID_WEATHER_PAYLOAD"
	case ErrorTypeTimezoneProjection:
		return "TIMEZONE_PROJECTION_FAILURE"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

func NewValidationError(message string) *AppError {
	return New(ErrorTypeValidation, message)
}

func NewNotFoundError(message string) *AppError {
	return New(ErrorTypeNotFound, message)
}

// NewLocationNotFoundError reports that the static table and every geocoding
// provider were exhausted for a query.
func NewLocationNotFoundError(message string, cause error) *AppError {
	return Wrap(ErrorTypeLocationNotFound, message, cause)
}

func NewProviderUnavailableError(message string, cause error) *AppError {
	return Wrap(ErrorTypeProviderUnavailable, message, cause)
}

func NewInvalidWeatherPayloadError(message string, cause error) *AppError {
	return Wrap(ErrorTypeInvalidWeatherPayload, message, cause)
}

func NewTimezoneProjectionError(message string, cause error) *AppError {
	return Wrap(ErrorTypeTimezoneProjection, message, cause)
}

func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(ErrorTypeDatabase, message, cause)
}

func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ErrorTypeConfiguration, message, cause)
}

// TypeOf returns the type of the first AppError in err's chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ErrorTypeValidation
}

func IsNotFoundError(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}

func IsLocationNotFoundError(err error) bool {
	return TypeOf(err) == ErrorTypeLocationNotFound
}

func IsProviderUnavailableError(err error) bool {
	return TypeOf(err) == ErrorTypeProviderUnavailable
}

func IsInvalidWeatherPayloadError(err error) bool {
	return TypeOf(err) == ErrorTypeInvalidWeatherPayload
}

func IsDatabaseError(err error) bool {
	return TypeOf(err) == ErrorTypeDatabase
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ErrorTypeConfiguration
}

func IsTimezoneProjectionError(err error) bool {
	return TypeOf(err) == ErrorTypeTimezoneProjection
}
