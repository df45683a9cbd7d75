package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/trinity-ai/trinity/pkg/models"
)

// errorBody is the stable error envelope returned on every failed request.
type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// statusFor maps the closed error taxonomy to HTTP status codes.
func statusFor(kind models.Kind) int {
	switch kind {
	case models.KindValidation:
		return http.StatusBadRequest
	case models.KindAuthorizationDenied:
		return http.StatusForbidden
	case models.KindNotFound:
		return http.StatusNotFound
	case models.KindStateConflict:
		return http.StatusConflict
	case models.KindExpressionError, models.KindNoMatchingRoute:
		return http.StatusUnprocessableEntity
	case models.KindLimitExceeded, models.KindQueueFull, models.KindRateLimit:
		return http.StatusTooManyRequests
	case models.KindTimeout:
		return http.StatusGatewayTimeout
	case models.KindAgentUnavailable:
		return http.StatusServiceUnavailable
	case models.KindApprovalRejected, models.KindCancelled:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// retryAfterSeconds is the suggested backoff returned with 429 responses.
const retryAfterSeconds = 30

// respondDomainError writes the error envelope for a service or engine
// failure. Internal errors are logged with their cause; the response carries
// only the classification.
func respondDomainError(c *echo.Context, err error) error {
	kind := models.KindOf(err)
	status := statusFor(kind)

	body := errorBody{Code: string(kind), Message: err.Error()}
	var de *models.DomainError
	if errors.As(err, &de) {
		body.Message = de.Message
		body.Details = de.Details
	}
	if status == http.StatusInternalServerError {
		slog.Error("Request failed with internal error", "path", c.Request().URL.Path, "error", err)
		body.Message = "internal server error"
	}
	if status == http.StatusTooManyRequests {
		c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	}

	return c.JSON(status, body)
}

// respondValidationError writes a 400 envelope for malformed request input.
func respondValidationError(c *echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorBody{
		Code:    string(models.KindValidation),
		Message: message,
	})
}
