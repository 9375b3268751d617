package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"weatherwidget.app/internal/ports"
	errorspkg "weatherwidget.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// statusFor maps an error to its HTTP status and client-facing message
func statusFor(err error) (int, string, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, "Weather lookup timed out", ""
	}

	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, "Internal server error", ""
	}

	code := appErr.Type.String()
	switch appErr.Type {
	case errorspkg.ErrorTypeValidation:
		return http.StatusBadRequest, appErr.Message, code
	case errorspkg.ErrorTypeNotFound, errorspkg.ErrorTypeLocationNotFound:
		return http.StatusNotFound, appErr.Message, code
	case errorspkg.ErrorTypeProviderUnavailable:
		return http.StatusServiceUnavailable, "Weather service unavailable", code
	case errorspkg.ErrorTypeInvalidWeatherPayload:
		return http.StatusBadGateway, "Weather provider returned an invalid response", code
	default:
		return http.StatusInternalServerError, "Internal server error", code
	}
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	status, message, code := statusFor(err)
	if status >= http.StatusInternalServerError && s.logger != nil {
		s.logger.Error("Request failed",
			ports.F("path", c.FullPath()),
			ports.F("status", status),
			ports.F("error", err))
	}
	c.JSON(status, ErrorResponse{Error: message, Code: code})
}

// bindingError reports a malformed request body as a validation error
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return errorspkg.NewValidationError(jsonFieldName(fe.Field()) + " is required")
		case "units":
			return errorspkg.NewValidationError("units must be F or C")
		}
		return errorspkg.NewValidationError("invalid " + jsonFieldName(fe.Field()))
	}
	return errorspkg.NewValidationError("invalid request")
}

func jsonFieldName(field string) string {
	return strings.ToLower(field)
}
