package config

import (
	"fmt"
	"net/url"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateAgents(); err != nil {
		return fmt.Errorf("agent validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateEngine(); err != nil {
		return fmt.Errorf("engine validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	if err := v.validateRecovery(); err != nil {
		return fmt.Errorf("recovery validation failed: %w", err)
	}

	if err := v.validateNotifications(); err != nil {
		return fmt.Errorf("notification validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateAgents() error {
	for name, agent := range v.cfg.AgentRegistry.GetAll() {
		if agent.Endpoint == "" {
			return NewValidationError("agent", name, "endpoint", fmt.Errorf("%w: endpoint", ErrMissingRequiredField))
		}
		if err := validateHTTPURL(agent.Endpoint); err != nil {
			return NewValidationError("agent", name, "endpoint", err)
		}
		if agent.TaskTimeout < 0 {
			return NewValidationError("agent", name, "task_timeout", fmt.Errorf("must not be negative"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue

	switch q.Overflow {
	case OverflowQueue, OverflowReject, OverflowDelay:
	default:
		return NewValidationError("queue", "queue", "overflow", fmt.Errorf("%w: %s", ErrInvalidValue, q.Overflow))
	}

	// MaxDepth is ignored under the unbounded policy.
	if q.Overflow != OverflowQueue && q.MaxDepth < 1 {
		return NewValidationError("queue", "queue", "max_depth", fmt.Errorf("must be at least 1 for overflow policy %q", q.Overflow))
	}
	if q.Overflow == OverflowDelay && q.QueueTimeout <= 0 {
		return NewValidationError("queue", "queue", "queue_timeout", fmt.Errorf("must be positive for overflow policy %q", q.Overflow))
	}
	if q.TaskTimeout <= 0 {
		return NewValidationError("queue", "queue", "task_timeout", fmt.Errorf("must be positive"))
	}
	if q.GracefulShutdownTimeout <= 0 {
		return NewValidationError("queue", "queue", "graceful_shutdown_timeout", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateEngine() error {
	e := v.cfg.Engine

	if e.MaxConcurrentExecutions < 1 {
		return NewValidationError("engine", "engine", "max_concurrent_executions", fmt.Errorf("must be at least 1"))
	}
	if e.DefaultMaxInstances < 1 {
		return NewValidationError("engine", "engine", "default_max_instances", fmt.Errorf("must be at least 1"))
	}
	if e.DefaultApprovalTimeout <= 0 {
		return NewValidationError("engine", "engine", "default_approval_timeout", fmt.Errorf("must be positive"))
	}
	if e.EventBufferSize < 1 {
		return NewValidationError("engine", "engine", "event_buffer_size", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention

	if r.ExecutionRetentionDays < 1 {
		return NewValidationError("retention", "retention", "execution_retention_days", fmt.Errorf("must be at least 1"))
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "retention", "cleanup_interval", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateRecovery() error {
	if v.cfg.Recovery.MaxAge <= 0 {
		return NewValidationError("recovery", "recovery", "max_age", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateNotifications() error {
	n := v.cfg.Notifications

	if n.Slack.Enabled {
		if n.Slack.TokenEnv == "" {
			return NewValidationError("notifications", "slack", "token_env", fmt.Errorf("%w: token_env", ErrMissingRequiredField))
		}
		if n.Slack.Channel == "" {
			return NewValidationError("notifications", "slack", "channel", fmt.Errorf("%w: channel", ErrMissingRequiredField))
		}
	}

	for name, endpoint := range n.WebhookEndpoints {
		if err := validateHTTPURL(endpoint); err != nil {
			return NewValidationError("notifications", name, "webhooks", err)
		}
	}

	return nil
}

// validateHTTPURL checks that s parses as an absolute http(s) URL.
func validateHTTPURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: URL scheme must be http or https, got %q", ErrInvalidValue, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: URL has no host: %s", ErrInvalidValue, s)
	}
	return nil
}
