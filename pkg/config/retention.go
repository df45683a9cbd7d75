package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// ExecutionRetentionDays is how many days terminal executions (with
	// their events and step outputs) are kept before being purged.
	ExecutionRetentionDays int `yaml:"execution_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ExecutionRetentionDays: 90,
		CleanupInterval:        12 * time.Hour,
	}
}
