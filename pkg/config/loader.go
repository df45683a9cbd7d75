package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// TrinityYAMLConfig represents the complete trinity.yaml file structure
type TrinityYAMLConfig struct {
	System        *SystemYAMLConfig        `yaml:"system"`
	Notifications *NotificationsYAMLConfig `yaml:"notifications"`
	Queue         *QueueConfig             `yaml:"queue"`
	Engine        *EngineConfig            `yaml:"engine"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	ListenAddr       string              `yaml:"listen_addr"`
	DashboardURL     string              `yaml:"dashboard_url"`
	AllowedWSOrigins []string            `yaml:"allowed_ws_origins"`
	Retention        *RetentionConfig    `yaml:"retention"`
	Recovery         *RecoveryYAMLConfig `yaml:"recovery"`
}

// RecoveryYAMLConfig holds startup recovery settings from YAML.
type RecoveryYAMLConfig struct {
	MaxAge string `yaml:"max_age,omitempty"` // Parsed to time.Duration
	DryRun *bool  `yaml:"dry_run,omitempty"`
}

// NotificationsYAMLConfig holds outbound notification settings from YAML.
type NotificationsYAMLConfig struct {
	Slack    *SlackYAMLConfig  `yaml:"slack"`
	Webhooks map[string]string `yaml:"webhooks,omitempty"` // channel name -> URL
}

// SlackYAMLConfig holds Slack notification settings from YAML.
type SlackYAMLConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// AgentsYAMLConfig represents the complete agents.yaml file structure
type AgentsYAMLConfig struct {
	Agents map[string]AgentConfig `yaml:"agents"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user-provided sections over built-in defaults
//  5. Build the agent registry
//  6. Validate all configuration
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration files
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"agents", stats.Agents,
		"listen_addr", cfg.System.ListenAddr,
		"slack_enabled", cfg.Notifications.Slack.Enabled)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load trinity.yaml (system, notifications, queue, engine)
	trinityConfig, err := loader.loadTrinityYAML()
	if err != nil {
		return nil, NewLoadError("trinity.yaml", err)
	}

	// 2. Load agents.yaml
	agents, err := loader.loadAgentsYAML()
	if err != nil {
		return nil, NewLoadError("agents.yaml", err)
	}

	// 3. Build agent registry
	agentRegistry := NewAgentRegistry(agentConfigPtrs(agents))

	// 4. Resolve queue config (merge user YAML with built-in defaults)
	// Start with defaults, then merge user config on top to preserve unset defaults
	queueConfig := DefaultQueueConfig()
	if trinityConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, trinityConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	// 5. Resolve engine config the same way
	engineConfig := DefaultEngineConfig()
	if trinityConfig.Engine != nil {
		if err := mergo.Merge(engineConfig, trinityConfig.Engine, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge engine config: %w", err)
		}
	}

	// 6. Resolve system config (listen addr + dashboard + WS origins + retention + recovery)
	systemCfg := resolveSystemConfig(trinityConfig.System)
	retentionCfg := resolveRetentionConfig(trinityConfig.System)
	recoveryCfg := resolveRecoveryConfig(trinityConfig.System)
	notificationsCfg := resolveNotificationsConfig(trinityConfig.Notifications)

	return &Config{
		configDir:     configDir,
		System:        systemCfg,
		Notifications: notificationsCfg,
		Queue:         queueConfig,
		Engine:        engineConfig,
		Retention:     retentionCfg,
		Recovery:      recoveryCfg,
		AgentRegistry: agentRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadTrinityYAML() (*TrinityYAMLConfig, error) {
	var config TrinityYAMLConfig

	if err := l.loadYAML("trinity.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadAgentsYAML() (map[string]AgentConfig, error) {
	var config AgentsYAMLConfig

	// Initialize map to avoid nil map
	config.Agents = make(map[string]AgentConfig)

	if err := l.loadYAML("agents.yaml", &config); err != nil {
		return nil, err
	}

	return config.Agents, nil
}

// agentConfigPtrs converts the decoded agent map to the pointer map the
// registry stores.
func agentConfigPtrs(agents map[string]AgentConfig) map[string]*AgentConfig {
	result := make(map[string]*AgentConfig, len(agents))
	for name, agent := range agents {
		agentCopy := agent
		result[name] = &agentCopy
	}
	return result
}

// resolveSystemConfig resolves system settings from YAML, applying defaults.
func resolveSystemConfig(sys *SystemYAMLConfig) *SystemConfig {
	cfg := &SystemConfig{
		ListenAddr:   ":8080",
		DashboardURL: "http://localhost:5173",
	}

	if sys == nil {
		return cfg
	}

	if sys.ListenAddr != "" {
		cfg.ListenAddr = sys.ListenAddr
	}
	if sys.DashboardURL != "" {
		cfg.DashboardURL = sys.DashboardURL
	}
	cfg.AllowedWSOrigins = sys.AllowedWSOrigins

	return cfg
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.ExecutionRetentionDays > 0 {
		cfg.ExecutionRetentionDays = r.ExecutionRetentionDays
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}

	return cfg
}

// resolveRecoveryConfig resolves startup recovery configuration from system YAML, applying defaults.
func resolveRecoveryConfig(sys *SystemYAMLConfig) *RecoveryConfig {
	cfg := &RecoveryConfig{
		MaxAge: 24 * time.Hour,
	}

	if sys == nil || sys.Recovery == nil {
		return cfg
	}

	r := sys.Recovery
	if r.MaxAge != "" {
		if d, err := time.ParseDuration(r.MaxAge); err == nil {
			cfg.MaxAge = d
		} else {
			slog.Warn("Invalid max_age in recovery config, using default",
				"value", r.MaxAge,
				"default", cfg.MaxAge,
				"error", err)
		}
	}
	if r.DryRun != nil {
		cfg.DryRun = *r.DryRun
	}

	return cfg
}

// resolveNotificationsConfig resolves notification configuration from YAML, applying defaults.
func resolveNotificationsConfig(n *NotificationsYAMLConfig) *NotificationsConfig {
	cfg := &NotificationsConfig{
		Slack: &SlackConfig{
			Enabled:  false,
			TokenEnv: "SLACK_BOT_TOKEN",
		},
	}

	if n == nil {
		return cfg
	}

	if n.Slack != nil {
		s := n.Slack
		if s.Enabled != nil {
			cfg.Slack.Enabled = *s.Enabled
		}
		if s.TokenEnv != "" {
			cfg.Slack.TokenEnv = s.TokenEnv
		}
		if s.Channel != "" {
			cfg.Slack.Channel = s.Channel
		}
	}
	if len(n.Webhooks) > 0 {
		cfg.WebhookEndpoints = n.Webhooks
	}

	return cfg
}
