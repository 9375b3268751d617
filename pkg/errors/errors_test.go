package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return NewValidationError("location cannot be empty")
			},
			expected: "VALIDATION_ERROR: location cannot be empty",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				return NewProviderUnavailableError("nominatim request failed", fmt.Errorf("connection refused"))
			},
			expected: "PROVIDER_UNAVAILABLE: nominatim request failed (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.setup().Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("original error")
	err := NewLocationNotFoundError("all geocoders failed", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, NewNotFoundError("widget not found").Unwrap())
}

func TestTypeOf_WrappedErrors(t *testing.T) {
	base := NewInvalidWeatherPayloadError("current_weather missing", nil)
	wrapped := fmt.Errorf("load weather for Paris: %w", base)

	assert.Equal(t, ErrorTypeInvalidWeatherPayload, TypeOf(wrapped))
	assert.True(t, IsInvalidWeatherPayloadError(wrapped))
	assert.False(t, IsProviderUnavailableError(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(nil))
}

func TestErrorTypeChecks(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"Validation", NewValidationError("x"), IsValidationError},
		{"NotFound", NewNotFoundError("x"), IsNotFoundError},
		{"LocationNotFound", NewLocationNotFoundError("x", nil), IsLocationNotFoundError},
		{"ProviderUnavailable", NewProviderUnavailableError("x", nil), IsProviderUnavailableError},
		{"InvalidWeatherPayload", NewInvalidWeatherPayloadError("x", nil), IsInvalidWeatherPayloadError},
		{"Database", NewDatabaseError("x", nil), IsDatabaseError},
		{"Configuration", NewConfigurationError("x", nil), IsConfigurationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(fmt.Errorf("other")))
		})
	}
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "TIMEZONE_PROJECTION_FAILURE", ErrorTypeTimezoneProjection.String())
	assert.Equal(t, "LOCATION_NOT_FOUND", ErrorTypeLocationNotFound.String())
	assert.Equal(t, "UNKNOWN_ERROR", ErrorType(99).String())
}
