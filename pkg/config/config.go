package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application. All sections are resolved: defaults
// applied, env vars expanded, durations parsed.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide infrastructure settings (listen address, dashboard, WS origins)
	System *SystemConfig

	// Outbound notification settings (Slack + webhooks)
	Notifications *NotificationsConfig

	// Per-agent execution queue configuration
	Queue *QueueConfig

	// Execution engine limits
	Engine *EngineConfig

	// Data retention and cleanup
	Retention *RetentionConfig

	// Startup recovery behavior
	Recovery *RecoveryConfig

	// Agent endpoint registry
	AgentRegistry *AgentRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Agents int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.AgentRegistry != nil {
		s.Agents = c.AgentRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetAgent retrieves an agent configuration by name.
// This is a convenience method that wraps AgentRegistry.Get().
func (c *Config) GetAgent(name string) (*AgentConfig, error) {
	return c.AgentRegistry.Get(name)
}

// AgentEndpoints returns the agent name to base URL map for the HTTP gateway.
func (c *Config) AgentEndpoints() map[string]string {
	return c.AgentRegistry.Endpoints()
}
