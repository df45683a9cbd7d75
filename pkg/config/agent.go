// Package config provides configuration management for the Trinity system,
// including agent endpoints, queue, engine, notification, and retention settings.
package config

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// AgentConfig describes one agent runtime reachable through the HTTP gateway.
type AgentConfig struct {
	// Endpoint is the agent's base URL (the gateway appends /tasks, /health,
	// /awareness).
	Endpoint string `yaml:"endpoint" validate:"required"`

	// Human-readable description
	Description string `yaml:"description,omitempty"`

	// TaskTimeout overrides the queue-level default task timeout for this
	// agent when the step does not set its own.
	TaskTimeout time.Duration `yaml:"task_timeout,omitempty"`
}

// AgentRegistry stores agent configurations in memory with thread-safe access
type AgentRegistry struct {
	agents map[string]*AgentConfig
	mu     sync.RWMutex
}

// NewAgentRegistry creates a new agent registry
func NewAgentRegistry(agents map[string]*AgentConfig) *AgentRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*AgentConfig, len(agents))
	for k, v := range agents {
		copied[k] = v
	}
	return &AgentRegistry{
		agents: copied,
	}
}

// Get retrieves an agent configuration by name (thread-safe)
func (r *AgentRegistry) Get(name string) (*AgentConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agent, exists := r.agents[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	return agent, nil
}

// GetAll returns all agent configurations (thread-safe, returns copy)
func (r *AgentRegistry) GetAll() map[string]*AgentConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*AgentConfig, len(r.agents))
	for k, v := range r.agents {
		result[k] = v
	}
	return result
}

// Has checks if an agent exists in the registry (thread-safe)
func (r *AgentRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.agents[name]
	return exists
}

// Len returns the number of agents in the registry (thread-safe)
func (r *AgentRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}

// Names returns a sorted list of registered agent names.
func (r *AgentRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Endpoints returns the agent name to base URL map consumed by the HTTP
// gateway (thread-safe, returns copy).
func (r *AgentRegistry) Endpoints() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]string, len(r.agents))
	for name, agent := range r.agents {
		result[name] = agent.Endpoint
	}
	return result
}
