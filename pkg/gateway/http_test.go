package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
)

func newGateway(t *testing.T, handler http.Handler) (*HTTPGateway, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	g := NewHTTPGateway(map[string]string{"researcher": srv.URL}, srv.Client(), slog.Default())
	return g, srv
}

func TestExecuteTask_Success(t *testing.T) {
	g, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/tasks", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "summarize the findings", req["message"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"content":     "done",
			"cost":        0.42,
			"tokens_used": 1234,
			"output":      map[string]any{"summary": "short"},
		})
	}))

	res, err := g.ExecuteTask(context.Background(), "researcher", "summarize the findings", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "done", res.Content)
	assert.Equal(t, 0.42, res.Cost)
	assert.Equal(t, 1234, res.TokensUsed)
	assert.Equal(t, "short", res.Output["summary"])
}

func TestExecuteTask_AgentError(t *testing.T) {
	g, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"kind": "rate_limit", "message": "slow down"},
		})
	}))

	_, err := g.ExecuteTask(context.Background(), "researcher", "msg", time.Second)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindRateLimit))
}

func TestExecuteTask_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   models.Kind
	}{
		{"429 maps to rate_limit", http.StatusTooManyRequests, models.KindRateLimit},
		{"503 maps to agent_unavailable", http.StatusServiceUnavailable, models.KindAgentUnavailable},
		{"400 maps to validation", http.StatusBadRequest, models.KindValidation},
		{"500 maps to internal_error", http.StatusInternalServerError, models.KindInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			_, err := g.ExecuteTask(context.Background(), "researcher", "msg", time.Second)
			require.Error(t, err)
			assert.True(t, models.IsKind(err, tt.kind), "got %v", err)
		})
	}
}

func TestExecuteTask_Timeout(t *testing.T) {
	g, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))

	_, err := g.ExecuteTask(context.Background(), "researcher", "msg", 30*time.Millisecond)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindTimeout))
}

func TestExecuteTask_UnknownAgent(t *testing.T) {
	g := NewHTTPGateway(map[string]string{}, nil, slog.Default())
	_, err := g.ExecuteTask(context.Background(), "ghost", "msg", time.Second)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindValidation))
}

func TestExecuteTask_UnknownErrorKindNarrowsToInternal(t *testing.T) {
	g, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"kind": "exotic_failure", "message": "??"},
		})
	}))

	_, err := g.ExecuteTask(context.Background(), "researcher", "msg", time.Second)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindInternalError))
}

func TestIsAvailable(t *testing.T) {
	healthy := true
	g, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		if healthy {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))

	avail := g.IsAvailable(context.Background(), "researcher")
	assert.True(t, avail.Available)

	healthy = false
	avail = g.IsAvailable(context.Background(), "researcher")
	assert.False(t, avail.Available)
	assert.NotEmpty(t, avail.Reason)

	avail = g.IsAvailable(context.Background(), "ghost")
	assert.False(t, avail.Available)
}

func TestNotifyAwareness(t *testing.T) {
	var got map[string]any
	g, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/awareness", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))

	err := g.NotifyAwareness(context.Background(), "researcher", map[string]any{
		"type":         "step.completed",
		"execution_id": "exec-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "step.completed", got["type"])
}
