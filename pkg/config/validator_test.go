package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		System: &SystemConfig{
			ListenAddr:   ":8080",
			DashboardURL: "http://localhost:5173",
		},
		Notifications: &NotificationsConfig{
			Slack: &SlackConfig{TokenEnv: "SLACK_BOT_TOKEN"},
		},
		Queue:     DefaultQueueConfig(),
		Engine:    DefaultEngineConfig(),
		Retention: DefaultRetentionConfig(),
		Recovery:  &RecoveryConfig{MaxAge: 24 * time.Hour},
		AgentRegistry: NewAgentRegistry(map[string]*AgentConfig{
			"triage-agent": {Endpoint: "http://triage:9000"},
		}),
	}
}

func TestValidateAll(t *testing.T) {
	cfg := validTestConfig()
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateAgents(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name: "missing endpoint",
			mutate: func(cfg *Config) {
				cfg.AgentRegistry = NewAgentRegistry(map[string]*AgentConfig{
					"broken": {Description: "no endpoint"},
				})
			},
			wantErr: "endpoint",
		},
		{
			name: "non-http endpoint",
			mutate: func(cfg *Config) {
				cfg.AgentRegistry = NewAgentRegistry(map[string]*AgentConfig{
					"broken": {Endpoint: "ftp://agents.example.com"},
				})
			},
			wantErr: "scheme",
		},
		{
			name: "endpoint without host",
			mutate: func(cfg *Config) {
				cfg.AgentRegistry = NewAgentRegistry(map[string]*AgentConfig{
					"broken": {Endpoint: "http://"},
				})
			},
			wantErr: "no host",
		},
		{
			name: "negative task timeout",
			mutate: func(cfg *Config) {
				cfg.AgentRegistry = NewAgentRegistry(map[string]*AgentConfig{
					"broken": {Endpoint: "http://agents:9000", TaskTimeout: -time.Second},
				})
			},
			wantErr: "task_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "agent validation failed")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateQueue(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*QueueConfig)
		wantErr string
	}{
		{
			name:    "unknown overflow policy",
			mutate:  func(q *QueueConfig) { q.Overflow = "explode" },
			wantErr: "overflow",
		},
		{
			name: "reject without depth",
			mutate: func(q *QueueConfig) {
				q.Overflow = OverflowReject
				q.MaxDepth = 0
			},
			wantErr: "max_depth",
		},
		{
			name: "delay without queue timeout",
			mutate: func(q *QueueConfig) {
				q.Overflow = OverflowDelay
				q.QueueTimeout = 0
			},
			wantErr: "queue_timeout",
		},
		{
			name:    "zero task timeout",
			mutate:  func(q *QueueConfig) { q.TaskTimeout = 0 },
			wantErr: "task_timeout",
		},
		{
			name:    "zero shutdown timeout",
			mutate:  func(q *QueueConfig) { q.GracefulShutdownTimeout = 0 },
			wantErr: "graceful_shutdown_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Queue)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "queue validation failed")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateQueueUnboundedIgnoresDepth(t *testing.T) {
	cfg := validTestConfig()
	cfg.Queue.Overflow = OverflowQueue
	cfg.Queue.MaxDepth = 0

	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateEngine(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*EngineConfig)
		wantErr string
	}{
		{
			name:    "zero global cap",
			mutate:  func(e *EngineConfig) { e.MaxConcurrentExecutions = 0 },
			wantErr: "max_concurrent_executions",
		},
		{
			name:    "zero per-process cap",
			mutate:  func(e *EngineConfig) { e.DefaultMaxInstances = 0 },
			wantErr: "default_max_instances",
		},
		{
			name:    "zero approval timeout",
			mutate:  func(e *EngineConfig) { e.DefaultApprovalTimeout = 0 },
			wantErr: "default_approval_timeout",
		},
		{
			name:    "zero event buffer",
			mutate:  func(e *EngineConfig) { e.EventBufferSize = 0 },
			wantErr: "event_buffer_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Engine)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "engine validation failed")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateRetentionAndRecovery(t *testing.T) {
	cfg := validTestConfig()
	cfg.Retention.ExecutionRetentionDays = 0
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execution_retention_days")

	cfg = validTestConfig()
	cfg.Retention.CleanupInterval = 0
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cleanup_interval")

	cfg = validTestConfig()
	cfg.Recovery.MaxAge = 0
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_age")
}

func TestValidateNotifications(t *testing.T) {
	t.Run("slack enabled requires channel", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Notifications.Slack.Enabled = true
		cfg.Notifications.Slack.Channel = ""

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "channel")
	})

	t.Run("slack enabled requires token env", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Notifications.Slack.Enabled = true
		cfg.Notifications.Slack.Channel = "C12345678"
		cfg.Notifications.Slack.TokenEnv = ""

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token_env")
	})

	t.Run("webhook endpoint must be http", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Notifications.WebhookEndpoints = map[string]string{
			"incidents": "not a url",
		}

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "notification validation failed")
	})

	t.Run("valid slack and webhooks", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Notifications.Slack.Enabled = true
		cfg.Notifications.Slack.Channel = "C12345678"
		cfg.Notifications.WebhookEndpoints = map[string]string{
			"incidents": "https://hooks.example.com/incidents",
		}

		require.NoError(t, NewValidator(cfg).ValidateAll())
	})
}
