package models

import "time"

// Domain event types. Per execution, events are emitted in the exact order
// of state transitions and carry a strictly monotonic sequence number.
const (
	EventProcessStarted   = "process.started"
	EventProcessCompleted = "process.completed"
	EventProcessFailed    = "process.failed"
	EventProcessCancelled = "process.cancelled"
	EventProcessPaused    = "process.paused"
	EventProcessResumed   = "process.resumed"

	EventStepStarted      = "step.started"
	EventStepCompleted    = "step.completed"
	EventStepFailed       = "step.failed"
	EventStepSkipped      = "step.skipped"
	EventStepRetrying     = "step.retrying"
	EventGatewayEvaluated = "gateway.evaluated"

	EventApprovalRequested = "approval.requested"
	EventApprovalDecided   = "approval.decided"
	EventApprovalTimedOut  = "approval.timed_out"

	EventExecutionRecovered = "execution.recovered"
	EventScheduleFired      = "schedule.fired"
)

// Event is a domain event raised by an aggregate. Events are buffered on the
// execution until the causing state change is persisted (outbox), then
// published on the in-process bus.
type Event struct {
	Type        string         `json:"type"`
	ExecutionID string         `json:"execution_id"`
	ProcessID   string         `json:"process_id,omitempty"`
	StepID      string         `json:"step_id,omitempty"`
	Seq         int64          `json:"seq"`
	Timestamp   time.Time      `json:"timestamp"`
	Payload     map[string]any `json:"payload,omitempty"`
}

// Terminal reports whether this event marks the end of an execution.
func (e Event) Terminal() bool {
	switch e.Type {
	case EventProcessCompleted, EventProcessFailed, EventProcessCancelled:
		return true
	}
	return false
}
