package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfigDir(t *testing.T) string {
	t.Helper()
	configDir := t.TempDir()

	trinityYAML := `
system:
  listen_addr: ":9090"
  dashboard_url: "https://trinity.example.com"
  allowed_ws_origins:
    - "https://trinity.example.com"
  retention:
    execution_retention_days: 30
  recovery:
    max_age: "12h"
    dry_run: true
notifications:
  slack:
    enabled: true
    token_env: TRINITY_SLACK_TOKEN
    channel: C12345678
  webhooks:
    incidents: "https://hooks.example.com/incidents"
queue:
  max_depth: 8
  overflow: reject
engine:
  max_concurrent_executions: 20
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "trinity.yaml"), []byte(trinityYAML), 0644))

	agentsYAML := `
agents:
  triage-agent:
    endpoint: "http://triage:9000"
    description: "Incident triage"
  research-agent:
    endpoint: "http://research:9000"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "agents.yaml"), []byte(agentsYAML), 0644))

	return configDir
}

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// System section resolved from YAML
	assert.Equal(t, ":9090", cfg.System.ListenAddr)
	assert.Equal(t, "https://trinity.example.com", cfg.System.DashboardURL)
	assert.Equal(t, []string{"https://trinity.example.com"}, cfg.System.AllowedWSOrigins)

	// User values override defaults, unset values keep defaults
	assert.Equal(t, 8, cfg.Queue.MaxDepth)
	assert.Equal(t, OverflowReject, cfg.Queue.Overflow)
	assert.Equal(t, 10*time.Minute, cfg.Queue.TaskTimeout)
	assert.Equal(t, 20, cfg.Engine.MaxConcurrentExecutions)
	assert.Equal(t, 3, cfg.Engine.DefaultMaxInstances)
	assert.Equal(t, 30, cfg.Retention.ExecutionRetentionDays)
	assert.Equal(t, 12*time.Hour, cfg.Retention.CleanupInterval)
	assert.Equal(t, 12*time.Hour, cfg.Recovery.MaxAge)
	assert.True(t, cfg.Recovery.DryRun)

	// Notifications
	assert.True(t, cfg.Notifications.Slack.Enabled)
	assert.Equal(t, "TRINITY_SLACK_TOKEN", cfg.Notifications.Slack.TokenEnv)
	assert.Equal(t, "C12345678", cfg.Notifications.Slack.Channel)
	assert.Equal(t, "https://hooks.example.com/incidents", cfg.Notifications.WebhookEndpoints["incidents"])

	// Agent registry
	assert.True(t, cfg.AgentRegistry.Has("triage-agent"))
	assert.True(t, cfg.AgentRegistry.Has("research-agent"))
	assert.Equal(t, 2, cfg.Stats().Agents)
	assert.Equal(t, map[string]string{
		"triage-agent":   "http://triage:9000",
		"research-agent": "http://research:9000",
	}, cfg.AgentEndpoints())
}

func TestInitializeDefaults(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "trinity.yaml"), []byte("{}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "agents.yaml"), []byte("agents: {}\n"), 0644))

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.System.ListenAddr)
	assert.Equal(t, "http://localhost:5173", cfg.System.DashboardURL)
	assert.Equal(t, DefaultQueueConfig(), cfg.Queue)
	assert.Equal(t, DefaultEngineConfig(), cfg.Engine)
	assert.Equal(t, DefaultRetentionConfig(), cfg.Retention)
	assert.Equal(t, 24*time.Hour, cfg.Recovery.MaxAge)
	assert.False(t, cfg.Recovery.DryRun)
	assert.False(t, cfg.Notifications.Slack.Enabled)
	assert.Equal(t, "SLACK_BOT_TOKEN", cfg.Notifications.Slack.TokenEnv)
	assert.Equal(t, 0, cfg.Stats().Agents)
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	invalidYAML := `{{{`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "trinity.yaml"), []byte(invalidYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "agents.yaml"), []byte("agents: {}"), 0644))

	ctx := context.Background()
	_, err := Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "trinity.yaml"), []byte("{}\n"), 0644))

	agentsYAML := `
agents:
  broken-agent:
    description: "no endpoint"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "agents.yaml"), []byte(agentsYAML), 0644))

	_, err := Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "broken-agent")
}

func TestInitializeExpandsEnvVars(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("TRIAGE_HOST", "triage.internal")

	require.NoError(t, os.WriteFile(filepath.Join(configDir, "trinity.yaml"), []byte("{}\n"), 0644))

	agentsYAML := `
agents:
  triage-agent:
    endpoint: "http://{{.TRIAGE_HOST}}:9000"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "agents.yaml"), []byte(agentsYAML), 0644))

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	agent, err := cfg.GetAgent("triage-agent")
	require.NoError(t, err)
	assert.Equal(t, "http://triage.internal:9000", agent.Endpoint)
}

func TestInitializeMissingAgentsFile(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "trinity.yaml"), []byte("{}\n"), 0644))

	_, err := Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agents.yaml")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidRecoveryMaxAge(t *testing.T) {
	configDir := t.TempDir()

	trinityYAML := `
system:
  recovery:
    max_age: "not-a-duration"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "trinity.yaml"), []byte(trinityYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "agents.yaml"), []byte("agents: {}\n"), 0644))

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	// Falls back to the default rather than failing the load.
	assert.Equal(t, 24*time.Hour, cfg.Recovery.MaxAge)
}
