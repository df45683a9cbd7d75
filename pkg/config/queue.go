package config

import "time"

// OverflowPolicy selects the behavior of an agent queue at its depth limit.
type OverflowPolicy string

const (
	// OverflowQueue accepts tasks without a depth limit.
	OverflowQueue OverflowPolicy = "queue"
	// OverflowReject fails submissions immediately once the depth is reached.
	OverflowReject OverflowPolicy = "reject"
	// OverflowDelay waits up to QueueTimeout for a slot before rejecting.
	OverflowDelay OverflowPolicy = "delay"
)

// QueueConfig controls the per-agent execution queues.
type QueueConfig struct {
	// MaxDepth is the per-agent limit on in-flight plus queued tasks.
	// Ignored when Overflow is "queue".
	MaxDepth int `yaml:"max_depth"`

	// Overflow is the policy applied when MaxDepth is reached.
	Overflow OverflowPolicy `yaml:"overflow"`

	// QueueTimeout is the maximum wait for a slot under the delay policy.
	QueueTimeout time.Duration `yaml:"queue_timeout"`

	// TaskTimeout is the default timeout for an agent call when the step
	// does not set its own.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight tasks
	// to complete during shutdown before cancelling them.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		MaxDepth:                16,
		Overflow:                OverflowQueue,
		QueueTimeout:            30 * time.Second,
		TaskTimeout:             10 * time.Minute,
		GracefulShutdownTimeout: 10 * time.Minute,
	}
}
