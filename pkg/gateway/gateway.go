// Package gateway is the outbound boundary to agent runtimes. The engine
// talks to agents only through the AgentGateway interface; the HTTP
// implementation speaks the runtimes' JSON task API.
package gateway

import (
	"context"
	"time"
)

// TaskResult is a successful agent task response.
type TaskResult struct {
	Content    string         `json:"content"`
	Output     map[string]any `json:"output,omitempty"`
	Cost       float64        `json:"cost"`
	TokensUsed int            `json:"tokens_used"`
}

// Availability is the result of an agent health probe.
type Availability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// AgentGateway executes tasks against agent runtimes. Errors returned by
// ExecuteTask carry a models.Kind so the retry policy can classify them:
// Timeout, RateLimit, AgentUnavailable and Validation map from the transport,
// everything else is InternalError.
type AgentGateway interface {
	// ExecuteTask sends a rendered message to the named agent and waits for
	// the result. Honors ctx cancellation and the given timeout.
	ExecuteTask(ctx context.Context, agentName, message string, timeout time.Duration) (*TaskResult, error)

	// IsAvailable probes the agent's health endpoint.
	IsAvailable(ctx context.Context, agentName string) Availability

	// NotifyAwareness forwards a compact event payload to an informed agent.
	// Best-effort: failures are logged, not propagated.
	NotifyAwareness(ctx context.Context, agentName string, payload map[string]any) error
}
