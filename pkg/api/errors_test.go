package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trinity-ai/trinity/pkg/models"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind models.Kind
		want int
	}{
		{models.KindValidation, http.StatusBadRequest},
		{models.KindAuthorizationDenied, http.StatusForbidden},
		{models.KindNotFound, http.StatusNotFound},
		{models.KindStateConflict, http.StatusConflict},
		{models.KindExpressionError, http.StatusUnprocessableEntity},
		{models.KindNoMatchingRoute, http.StatusUnprocessableEntity},
		{models.KindLimitExceeded, http.StatusTooManyRequests},
		{models.KindQueueFull, http.StatusTooManyRequests},
		{models.KindRateLimit, http.StatusTooManyRequests},
		{models.KindTimeout, http.StatusGatewayTimeout},
		{models.KindAgentUnavailable, http.StatusServiceUnavailable},
		{models.KindApprovalRejected, http.StatusConflict},
		{models.KindCancelled, http.StatusConflict},
		{models.KindInternalError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.kind))
		})
	}
}
