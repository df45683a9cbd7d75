package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/trinity-ai/trinity/pkg/models"
)

// awarenessTimeout bounds best-effort awareness notifications so they cannot
// stall the event dispatch goroutine.
const awarenessTimeout = 5 * time.Second

// HTTPGateway talks to agent runtimes over their JSON task API:
//
//	POST {endpoint}/tasks      execute a task
//	GET  {endpoint}/health     availability probe
//	POST {endpoint}/awareness  awareness notification
type HTTPGateway struct {
	endpoints map[string]string
	client    *http.Client
	logger    *slog.Logger
}

// NewHTTPGateway creates a gateway over the given agent → base URL map. The
// client's own timeout is left unset; per-call timeouts come from the caller.
func NewHTTPGateway(endpoints map[string]string, client *http.Client, logger *slog.Logger) *HTTPGateway {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPGateway{
		endpoints: endpoints,
		client:    client,
		logger:    logger.With("component", "agent_gateway"),
	}
}

type taskRequest struct {
	Message string `json:"message"`
}

type taskResponse struct {
	Content    string         `json:"content"`
	Output     map[string]any `json:"output,omitempty"`
	Cost       float64        `json:"cost"`
	TokensUsed int            `json:"tokens_used"`
	Error      *struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ExecuteTask implements AgentGateway.
func (g *HTTPGateway) ExecuteTask(ctx context.Context, agentName, message string, timeout time.Duration) (*TaskResult, error) {
	endpoint, ok := g.endpoints[agentName]
	if !ok {
		return nil, models.NewError(models.KindValidation, "agent %q has no configured endpoint", agentName)
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	body, err := json.Marshal(taskRequest{Message: message})
	if err != nil {
		return nil, models.WrapError(models.KindInternalError, err, "marshal task request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/tasks", bytes.NewReader(body))
	if err != nil {
		return nil, models.WrapError(models.KindInternalError, err, "build task request")
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(agentName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(agentName, resp.StatusCode, resp.Body)
	}

	var tr taskResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, models.WrapError(models.KindInternalError, err, "decode response from agent %q", agentName)
	}
	if tr.Error != nil {
		return nil, models.NewError(models.ParseKind(tr.Error.Kind), "agent %q: %s", agentName, tr.Error.Message).
			WithDetails(map[string]any{"agent_kind": tr.Error.Kind})
	}

	g.logger.Debug("Agent task completed",
		"agent", agentName,
		"cost", tr.Cost,
		"tokens_used", tr.TokensUsed,
		"duration_ms", time.Since(start).Milliseconds())

	return &TaskResult{
		Content:    tr.Content,
		Output:     tr.Output,
		Cost:       tr.Cost,
		TokensUsed: tr.TokensUsed,
	}, nil
}

// IsAvailable implements AgentGateway.
func (g *HTTPGateway) IsAvailable(ctx context.Context, agentName string) Availability {
	endpoint, ok := g.endpoints[agentName]
	if !ok {
		return Availability{Available: false, Reason: "no configured endpoint"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"/health", nil)
	if err != nil {
		return Availability{Available: false, Reason: err.Error()}
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return Availability{Available: false, Reason: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Availability{Available: false, Reason: fmt.Sprintf("health returned %d", resp.StatusCode)}
	}
	return Availability{Available: true}
}

// NotifyAwareness implements AgentGateway.
func (g *HTTPGateway) NotifyAwareness(ctx context.Context, agentName string, payload map[string]any) error {
	endpoint, ok := g.endpoints[agentName]
	if !ok {
		return models.NewError(models.KindValidation, "agent %q has no configured endpoint", agentName)
	}

	ctx, cancel := context.WithTimeout(ctx, awarenessTimeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return models.WrapError(models.KindInternalError, err, "marshal awareness payload")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/awareness", bytes.NewReader(body))
	if err != nil {
		return models.WrapError(models.KindInternalError, err, "build awareness request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return classifyTransportError(agentName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return models.NewError(models.KindAgentUnavailable, "agent %q awareness returned %d", agentName, resp.StatusCode)
	}
	return nil
}

// classifyTransportError maps client-side errors to failure kinds.
func classifyTransportError(agentName string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return models.WrapError(models.KindTimeout, err, "agent %q call timed out", agentName)
	}
	if errors.Is(err, context.Canceled) {
		return models.WrapError(models.KindCancelled, err, "agent %q call cancelled", agentName)
	}
	return models.WrapError(models.KindAgentUnavailable, err, "agent %q unreachable", agentName)
}

// classifyStatus maps non-200 agent responses to failure kinds.
func classifyStatus(agentName string, status int, body io.Reader) error {
	msg, _ := io.ReadAll(io.LimitReader(body, 512))
	switch {
	case status == http.StatusTooManyRequests:
		return models.NewError(models.KindRateLimit, "agent %q rate limited", agentName)
	case status == http.StatusServiceUnavailable, status == http.StatusBadGateway, status == http.StatusGatewayTimeout:
		return models.NewError(models.KindAgentUnavailable, "agent %q unavailable (status %d)", agentName, status)
	case status >= 400 && status < 500:
		return models.NewError(models.KindValidation, "agent %q rejected task (status %d): %s", agentName, status, string(msg))
	default:
		return models.NewError(models.KindInternalError, "agent %q returned status %d: %s", agentName, status, string(msg))
	}
}
