package models

import (
	"time"
)

// ExecutionStatus is the lifecycle status of a process execution.
type ExecutionStatus string

const (
	ExecutionPending   ExecutionStatus = "pending"
	ExecutionRunning   ExecutionStatus = "running"
	ExecutionPaused    ExecutionStatus = "paused"
	ExecutionCompleted ExecutionStatus = "completed"
	ExecutionFailed    ExecutionStatus = "failed"
	ExecutionCancelled ExecutionStatus = "cancelled"
)

// Terminal reports whether the status is final.
func (s ExecutionStatus) Terminal() bool {
	switch s {
	case ExecutionCompleted, ExecutionFailed, ExecutionCancelled:
		return true
	}
	return false
}

// StepStatus is the lifecycle status of a step within an execution.
type StepStatus string

const (
	StepPending         StepStatus = "pending"
	StepReady           StepStatus = "ready"
	StepRunning         StepStatus = "running"
	StepCompleted       StepStatus = "completed"
	StepFailed          StepStatus = "failed"
	StepSkipped         StepStatus = "skipped"
	StepRetrying        StepStatus = "retrying"
	StepWaitingApproval StepStatus = "waiting_approval"
	StepWaitingTimer    StepStatus = "waiting_timer"
)

// Terminal reports whether the step status is final.
func (s StepStatus) Terminal() bool {
	switch s {
	case StepCompleted, StepFailed, StepSkipped:
		return true
	}
	return false
}

// Suspended reports whether the step is parked awaiting an external event.
func (s StepStatus) Suspended() bool {
	switch s {
	case StepWaitingApproval, StepWaitingTimer:
		return true
	}
	return false
}

// Skip reasons recorded on skipped steps.
const (
	SkipConditionFalse     = "condition_false"
	SkipUpstreamFailed     = "upstream_failed"
	SkipGatewayNotSelected = "gateway_not_selected"
	SkipRetriesExhausted   = "retries_exhausted"
	SkipExecutionFailed    = "execution_failed"
	SkipExecutionCancelled = "execution_cancelled"
)

// TriggeredBy records what started an execution.
type TriggeredBy struct {
	Kind              TriggerKind `json:"kind"`
	Actor             string      `json:"actor"`
	ScheduleID        string      `json:"schedule_id,omitempty"`
	ParentExecutionID string      `json:"parent_execution_id,omitempty"`
	ParentStepID      string      `json:"parent_step_id,omitempty"`
}

// StepExecution is the per-step runtime state inside an execution.
type StepExecution struct {
	StepID      string     `json:"step_id"`
	Status      StepStatus `json:"status"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	RetryCount  int        `json:"retry_count,omitempty"`
	// NotBefore delays re-dispatch of a retrying step.
	NotBefore *time.Time `json:"not_before,omitempty"`
	Output    map[string]any `json:"output,omitempty"`
	Error     string         `json:"error,omitempty"`
	ErrorKind Kind           `json:"error_kind,omitempty"`
	SkipReason string        `json:"skip_reason,omitempty"`
	Cost       float64       `json:"cost,omitempty"`

	// ApprovalID links a waiting_approval step to its Approval record.
	ApprovalID string `json:"approval_id,omitempty"`
	// TimerResumeAt is the persisted wall-clock resume time of a timer step.
	TimerResumeAt *time.Time `json:"timer_resume_at,omitempty"`
	// SelectedRoutes records the targets a completed gateway selected.
	SelectedRoutes []string `json:"selected_routes,omitempty"`
	// ChildExecutionID links a sub_process step to its child execution.
	ChildExecutionID string `json:"child_execution_id,omitempty"`
}

// ProcessExecution is the mutable aggregate tracking one run of a process.
// All state transitions go through methods so that invariants (cost
// accounting, sequence numbering, status legality) are enforced at the
// boundary. Pending events are buffered until the caller persists the
// aggregate, then drained for publication.
type ProcessExecution struct {
	ID             string          `json:"id"`
	ProcessID      string          `json:"process_id"`
	ProcessName    string          `json:"process_name"`
	ProcessVersion string          `json:"process_version"`
	Status         ExecutionStatus `json:"status"`
	TriggeredBy    TriggeredBy     `json:"triggered_by"`

	InputData map[string]any `json:"input_data,omitempty"`
	Output    map[string]any `json:"output,omitempty"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	TotalCost   float64    `json:"total_cost"`

	Steps map[string]*StepExecution `json:"steps"`

	OwnerTeam string `json:"owner_team"`
	OwnerUser string `json:"owner_user"`

	Error     string `json:"error,omitempty"`
	ErrorKind Kind   `json:"error_kind,omitempty"`

	// Seq is the last assigned event sequence number. Doubles as the
	// optimistic-concurrency token for persistence.
	Seq int64 `json:"seq"`

	pending []Event
}

// NewExecution creates a pending execution for a published definition.
func NewExecution(id string, def *ProcessDefinition, input map[string]any, trig TriggeredBy, now time.Time) *ProcessExecution {
	steps := make(map[string]*StepExecution, len(def.Steps))
	for _, s := range def.Steps {
		steps[s.ID] = &StepExecution{StepID: s.ID, Status: StepPending}
	}
	return &ProcessExecution{
		ID:             id,
		ProcessID:      def.ID,
		ProcessName:    def.Name,
		ProcessVersion: def.Version,
		Status:         ExecutionPending,
		TriggeredBy:    trig,
		InputData:      input,
		StartedAt:      now,
		Steps:          steps,
		OwnerTeam:      def.OwnerTeam,
		OwnerUser:      trig.Actor,
	}
}

// Step returns the step execution state for id, or nil.
func (e *ProcessExecution) Step(id string) *StepExecution {
	return e.Steps[id]
}

// TotalDuration returns the wall-clock duration for terminal executions.
func (e *ProcessExecution) TotalDuration() time.Duration {
	if e.CompletedAt == nil {
		return 0
	}
	return e.CompletedAt.Sub(e.StartedAt)
}

// PendingEvents returns the buffered, not-yet-published events.
func (e *ProcessExecution) PendingEvents() []Event {
	return e.pending
}

// DrainEvents returns and clears the buffered events. Called after the
// aggregate has been durably persisted.
func (e *ProcessExecution) DrainEvents() []Event {
	out := e.pending
	e.pending = nil
	return out
}

// emit appends a domain event with the next sequence number.
func (e *ProcessExecution) emit(eventType, stepID string, payload map[string]any, now time.Time) {
	e.Seq++
	e.pending = append(e.pending, Event{
		Type:        eventType,
		ExecutionID: e.ID,
		ProcessID:   e.ProcessID,
		StepID:      stepID,
		Seq:         e.Seq,
		Timestamp:   now,
		Payload:     payload,
	})
}

// Start transitions pending → running.
func (e *ProcessExecution) Start(now time.Time) error {
	if e.Status != ExecutionPending {
		return NewError(KindStateConflict, "execution %s is %s, cannot start", e.ID, e.Status)
	}
	e.Status = ExecutionRunning
	e.emit(EventProcessStarted, "", map[string]any{
		"process_name": e.ProcessName,
		"version":      e.ProcessVersion,
		"triggered_by": string(e.TriggeredBy.Kind),
		"actor":        e.TriggeredBy.Actor,
	}, now)
	return nil
}

// MarkStepRunning transitions a step pending/ready/retrying → running.
func (e *ProcessExecution) MarkStepRunning(stepID string, now time.Time) error {
	se := e.Steps[stepID]
	if se == nil {
		return NewError(KindNotFound, "step %s not in execution %s", stepID, e.ID)
	}
	switch se.Status {
	case StepPending, StepReady, StepRetrying:
	default:
		return NewError(KindStateConflict, "step %s is %s, cannot start", stepID, se.Status)
	}
	se.Status = StepRunning
	if se.StartedAt == nil {
		t := now
		se.StartedAt = &t
	}
	se.NotBefore = nil
	e.emit(EventStepStarted, stepID, map[string]any{"attempt": se.RetryCount + 1}, now)
	return nil
}

// CompleteStep records a successful step outcome. Step completion is the
// only path that adds cost to the execution total.
func (e *ProcessExecution) CompleteStep(stepID string, output map[string]any, cost float64, now time.Time) error {
	se := e.Steps[stepID]
	if se == nil {
		return NewError(KindNotFound, "step %s not in execution %s", stepID, e.ID)
	}
	if se.Status.Terminal() {
		// Duplicate terminal event: deduplicate as a no-op.
		return nil
	}
	t := now
	se.Status = StepCompleted
	se.CompletedAt = &t
	se.Output = output
	se.Cost = cost
	se.Error = ""
	se.ErrorKind = ""
	e.TotalCost += cost
	e.emit(EventStepCompleted, stepID, map[string]any{"cost": cost}, now)
	return nil
}

// FailStep records a terminal step failure.
func (e *ProcessExecution) FailStep(stepID string, kind Kind, msg string, now time.Time) error {
	se := e.Steps[stepID]
	if se == nil {
		return NewError(KindNotFound, "step %s not in execution %s", stepID, e.ID)
	}
	if se.Status.Terminal() {
		return nil
	}
	t := now
	se.Status = StepFailed
	se.CompletedAt = &t
	se.Error = msg
	se.ErrorKind = kind
	e.emit(EventStepFailed, stepID, map[string]any{"kind": string(kind), "error": msg}, now)
	return nil
}

// SkipStep marks a step skipped with a reason, without invoking its handler.
func (e *ProcessExecution) SkipStep(stepID, reason string, now time.Time) error {
	se := e.Steps[stepID]
	if se == nil {
		return NewError(KindNotFound, "step %s not in execution %s", stepID, e.ID)
	}
	if se.Status.Terminal() {
		return nil
	}
	t := now
	se.Status = StepSkipped
	se.CompletedAt = &t
	se.SkipReason = reason
	e.emit(EventStepSkipped, stepID, map[string]any{"reason": reason}, now)
	return nil
}

// RetryStep parks a failed attempt for re-dispatch after notBefore.
// QueueFull retries do not consume an attempt, so consumeAttempt is explicit.
func (e *ProcessExecution) RetryStep(stepID string, kind Kind, msg string, notBefore time.Time, consumeAttempt bool, now time.Time) error {
	se := e.Steps[stepID]
	if se == nil {
		return NewError(KindNotFound, "step %s not in execution %s", stepID, e.ID)
	}
	if consumeAttempt {
		se.RetryCount++
	}
	se.Status = StepRetrying
	nb := notBefore
	se.NotBefore = &nb
	se.Error = msg
	se.ErrorKind = kind
	e.emit(EventStepRetrying, stepID, map[string]any{
		"kind":        string(kind),
		"retry_count": se.RetryCount,
		"not_before":  notBefore.UTC().Format(time.RFC3339Nano),
	}, now)
	return nil
}

// SuspendForApproval parks a step awaiting a human decision.
func (e *ProcessExecution) SuspendForApproval(stepID, approvalID string, approvers []string, deadline time.Time, now time.Time) error {
	se := e.Steps[stepID]
	if se == nil {
		return NewError(KindNotFound, "step %s not in execution %s", stepID, e.ID)
	}
	se.Status = StepWaitingApproval
	se.ApprovalID = approvalID
	e.Status = ExecutionPaused
	e.emit(EventApprovalRequested, stepID, map[string]any{
		"approval_id": approvalID,
		"approvers":   approvers,
		"deadline":    deadline.UTC().Format(time.RFC3339),
	}, now)
	e.emit(EventProcessPaused, stepID, nil, now)
	return nil
}

// SuspendForTimer parks a step until resumeAt.
func (e *ProcessExecution) SuspendForTimer(stepID string, resumeAt time.Time, now time.Time) error {
	se := e.Steps[stepID]
	if se == nil {
		return NewError(KindNotFound, "step %s not in execution %s", stepID, e.ID)
	}
	se.Status = StepWaitingTimer
	t := resumeAt
	se.TimerResumeAt = &t
	return nil
}

// SuspendForChild parks a sub_process step until the child terminates.
func (e *ProcessExecution) SuspendForChild(stepID, childID string) error {
	se := e.Steps[stepID]
	if se == nil {
		return NewError(KindNotFound, "step %s not in execution %s", stepID, e.ID)
	}
	se.Status = StepRunning
	se.ChildExecutionID = childID
	return nil
}

// ResumeFromPause transitions paused → running after an approval decision.
func (e *ProcessExecution) ResumeFromPause(now time.Time) {
	if e.Status == ExecutionPaused {
		e.Status = ExecutionRunning
		e.emit(EventProcessResumed, "", nil, now)
	}
}

// RecordApprovalDecision emits the decision event for a waiting step.
func (e *ProcessExecution) RecordApprovalDecision(stepID, decision, decidedBy string, now time.Time) {
	e.emit(EventApprovalDecided, stepID, map[string]any{
		"decision":   decision,
		"decided_by": decidedBy,
	}, now)
}

// RecordApprovalTimeout emits the timeout event for a waiting step.
func (e *ProcessExecution) RecordApprovalTimeout(stepID string, action OnTimeout, now time.Time) {
	e.emit(EventApprovalTimedOut, stepID, map[string]any{"on_timeout": string(action)}, now)
}

// CompleteGateway records the selected routes and completes the gateway step.
func (e *ProcessExecution) CompleteGateway(stepID string, selected []string, now time.Time) error {
	se := e.Steps[stepID]
	if se == nil {
		return NewError(KindNotFound, "step %s not in execution %s", stepID, e.ID)
	}
	if se.Status.Terminal() {
		return nil
	}
	t := now
	se.Status = StepCompleted
	se.CompletedAt = &t
	se.SelectedRoutes = selected
	e.emit(EventGatewayEvaluated, stepID, map[string]any{"selected_routes": selected}, now)
	return nil
}

// Complete transitions running → completed once every step is terminal.
func (e *ProcessExecution) Complete(output map[string]any, now time.Time) error {
	if e.Status.Terminal() {
		return nil
	}
	t := now
	e.Status = ExecutionCompleted
	e.CompletedAt = &t
	e.Output = output
	e.emit(EventProcessCompleted, "", map[string]any{
		"total_cost":  e.TotalCost,
		"duration_ms": now.Sub(e.StartedAt).Milliseconds(),
	}, now)
	return nil
}

// Fail transitions the execution to failed and skips all non-terminal steps.
func (e *ProcessExecution) Fail(kind Kind, msg string, now time.Time) error {
	if e.Status.Terminal() {
		return nil
	}
	t := now
	e.Status = ExecutionFailed
	e.CompletedAt = &t
	e.Error = msg
	e.ErrorKind = kind
	for _, se := range e.Steps {
		if !se.Status.Terminal() {
			_ = e.SkipStep(se.StepID, SkipExecutionFailed, now)
		}
	}
	e.emit(EventProcessFailed, "", map[string]any{
		"kind":  string(kind),
		"error": msg,
	}, now)
	return nil
}

// Cancel transitions a non-terminal execution to cancelled.
func (e *ProcessExecution) Cancel(actor, reason string, now time.Time) error {
	if e.Status.Terminal() {
		return NewError(KindStateConflict, "execution %s is already %s", e.ID, e.Status)
	}
	t := now
	e.Status = ExecutionCancelled
	e.CompletedAt = &t
	for _, se := range e.Steps {
		if !se.Status.Terminal() {
			_ = e.SkipStep(se.StepID, SkipExecutionCancelled, now)
		}
	}
	e.emit(EventProcessCancelled, "", map[string]any{
		"actor":  actor,
		"reason": reason,
	}, now)
	return nil
}

// MarkRecovered resets a previously running step to pending and emits the
// recovery event. incrementRetry is false for idempotent step kinds.
func (e *ProcessExecution) MarkRecovered(stepID string, incrementRetry bool, now time.Time) {
	if stepID != "" {
		if se := e.Steps[stepID]; se != nil && se.Status == StepRunning {
			se.Status = StepPending
			if incrementRetry {
				se.RetryCount++
			}
		}
	}
	e.emit(EventExecutionRecovered, stepID, map[string]any{"action": "resume"}, now)
}

// AllStepsTerminal reports whether every step has reached a final status.
func (e *ProcessExecution) AllStepsTerminal() bool {
	for _, se := range e.Steps {
		if !se.Status.Terminal() {
			return false
		}
	}
	return true
}
