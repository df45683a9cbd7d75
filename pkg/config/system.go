package config

import "time"

// SystemConfig holds resolved system-wide infrastructure settings.
type SystemConfig struct {
	ListenAddr       string   // HTTP listen address (default: ":8080")
	DashboardURL     string   // Dashboard base URL used in notification links
	AllowedWSOrigins []string // Additional WebSocket origin patterns
}

// SlackConfig holds resolved Slack notification configuration.
type SlackConfig struct {
	Enabled  bool
	TokenEnv string // Env var name for Slack bot token (default: "SLACK_BOT_TOKEN")
	Channel  string // Default Slack channel ID (e.g., "C12345678")
}

// NotificationsConfig holds resolved outbound notification configuration.
type NotificationsConfig struct {
	Slack *SlackConfig

	// WebhookEndpoints maps a channel name to a webhook URL for the
	// webhook notification sink.
	WebhookEndpoints map[string]string
}

// RecoveryConfig holds resolved startup recovery configuration.
type RecoveryConfig struct {
	// MaxAge is the age past which a non-terminal execution is marked
	// failed instead of resumed (default: 24h).
	MaxAge time.Duration

	// DryRun reports recovery decisions without mutating any execution.
	DryRun bool
}
