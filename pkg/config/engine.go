package config

import "time"

// EngineConfig controls the execution engine and its limits.
type EngineConfig struct {
	// MaxConcurrentExecutions is the global cap on running executions.
	MaxConcurrentExecutions int `yaml:"max_concurrent_executions"`

	// DefaultMaxInstances caps running executions per process when the
	// definition does not set max_concurrent_instances.
	DefaultMaxInstances int `yaml:"default_max_instances"`

	// DefaultApprovalTimeout applies to human_approval steps without an
	// explicit timeout.
	DefaultApprovalTimeout time.Duration `yaml:"default_approval_timeout"`

	// EventBufferSize is the in-process event bus buffer.
	EventBufferSize int `yaml:"event_buffer_size"`
}

// DefaultEngineConfig returns the built-in engine defaults.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		MaxConcurrentExecutions: 50,
		DefaultMaxInstances:     3,
		DefaultApprovalTimeout:  72 * time.Hour,
		EventBufferSize:         1024,
	}
}
