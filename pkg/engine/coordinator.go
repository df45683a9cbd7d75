package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trinity-ai/trinity/pkg/expr"
	"github.com/trinity-ai/trinity/pkg/gateway"
	"github.com/trinity-ai/trinity/pkg/models"
	"github.com/trinity-ai/trinity/pkg/queue"
)

// coordinator drives a single execution. There is exactly one coordinator
// per execution id in the process; every state transition happens under mu,
// and every transition is persisted before its events are published.
type coordinator struct {
	eng    *Engine
	logger *slog.Logger

	mu   sync.Mutex
	def  *models.ProcessDefinition
	exec *models.ProcessExecution

	// queueHandles tracks in-flight agent tasks by step id for cancellation.
	queueHandles map[string]*queue.Handle
	// timers tracks armed wall-clock timers (step timers, retry backoff,
	// approval deadlines) by key.
	timers map[string]*time.Timer
}

func newCoordinator(eng *Engine, def *models.ProcessDefinition, exec *models.ProcessExecution) *coordinator {
	return &coordinator{
		eng:          eng,
		logger:       eng.logger.With("execution_id", exec.ID, "process", def.Name),
		def:          def,
		exec:         exec,
		queueHandles: make(map[string]*queue.Handle),
		timers:       make(map[string]*time.Timer),
	}
}

// advance acquires the execution lock and drives the engine loop.
func (c *coordinator) advance(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advanceLocked(ctx)
}

// advanceLocked repeatedly resolves the ready set and dispatches until no
// transition is possible, then finalizes if every step is terminal.
func (c *coordinator) advanceLocked(ctx context.Context) {
	for c.exec.Status == models.ExecutionRunning {
		now := time.Now()
		res := resolveReadySet(c.def, c.exec, now)

		changed := false
		for _, s := range res.skips {
			if err := c.exec.SkipStep(s.stepID, s.reason, now); err == nil {
				changed = true
			}
		}
		for _, stepID := range res.ready {
			if c.exec.Status != models.ExecutionRunning {
				break
			}
			c.dispatchStepLocked(ctx, stepID)
			changed = true
		}

		if len(c.exec.PendingEvents()) > 0 {
			if err := c.persistAndPublish(ctx); err != nil {
				return
			}
		}
		if !changed {
			break
		}
	}

	if c.exec.Status == models.ExecutionRunning && c.exec.AllStepsTerminal() {
		c.finalizeLocked(ctx)
	}
	if c.exec.Status.Terminal() {
		c.teardownLocked()
		c.eng.removeCoordinator(c.exec.ID)
	}
}

// dispatchStepLocked transitions a step to running and invokes its handler.
// A retrying step whose attempts are exhausted is resolved here instead of
// re-running, so the final failed attempt still carries its retry event.
func (c *coordinator) dispatchStepLocked(ctx context.Context, stepID string) {
	sd := c.def.Step(stepID)
	if sd == nil {
		return
	}
	now := time.Now()
	if se := c.exec.Step(stepID); se != nil && se.Status == models.StepRetrying {
		policy := sd.RetryPolicyOrDefault()
		if policy.MaxAttempts > 1 && se.RetryCount >= policy.MaxAttempts {
			c.logger.Info("Step retries exhausted", "step", stepID, "attempts", se.RetryCount)
			if sd.OnErrorPolicy() == models.OnErrorSkipStep && !se.ErrorKind.Fatal() {
				_ = c.exec.SkipStep(stepID, models.SkipRetriesExhausted, now)
			} else {
				_ = c.exec.FailStep(stepID, se.ErrorKind, se.Error, now)
				c.failExecutionLocked(ctx, se.ErrorKind,
					fmt.Sprintf("step %s failed after %d attempts: %s", stepID, se.RetryCount, se.Error))
			}
			return
		}
	}
	if err := c.exec.MarkStepRunning(stepID, now); err != nil {
		c.logger.Warn("Cannot start step", "step", stepID, "error", err)
		return
	}
	if err := c.persistAndPublish(ctx); err != nil {
		return
	}

	switch sd.Kind {
	case models.StepAgentTask:
		c.dispatchAgentTaskLocked(ctx, sd)
	case models.StepGateway:
		c.applyOutcomeLocked(ctx, sd, c.runGateway(sd, now))
	case models.StepHumanApproval:
		c.applyOutcomeLocked(ctx, sd, c.startApprovalLocked(ctx, sd, now))
	case models.StepTimer:
		c.applyOutcomeLocked(ctx, sd, c.startTimerLocked(sd, now))
	case models.StepNotification:
		c.applyOutcomeLocked(ctx, sd, c.runNotification(ctx, sd, now))
	case models.StepSubProcess:
		c.applyOutcomeLocked(ctx, sd, c.startSubProcessLocked(ctx, sd, now))
	}
}

// applyOutcomeLocked folds a handler outcome into execution state.
func (c *coordinator) applyOutcomeLocked(ctx context.Context, sd *models.StepDefinition, out Outcome) {
	now := time.Now()
	switch out.kind {
	case outcomeCompleted:
		if exceeded, limit := c.wouldExceedBudget(out.cost); exceeded {
			c.failExecutionLocked(ctx, models.KindBudgetExceeded,
				fmt.Sprintf("execution cost %.4f exceeds budget %.4f", c.exec.TotalCost+out.cost, limit))
			return
		}
		_ = c.exec.CompleteStep(sd.ID, out.output, out.cost, now)
		if out.output != nil {
			if err := c.eng.stores.Outputs.PutOutput(ctx, c.exec.ID, sd.ID, out.output); err != nil {
				c.logger.Warn("Failed to store step output", "step", sd.ID, "error", err)
			}
		}
	case outcomeRouted:
		_ = c.exec.CompleteGateway(sd.ID, out.targets, now)
	case outcomeFailed:
		c.applyFailureLocked(ctx, sd, out.err)
	case outcomeSuspended:
		// Suspension handlers already parked the step.
	}
	_ = c.persistAndPublish(ctx)
}

// applyFailureLocked runs the retry policy for a failed attempt and, on
// exhaustion, applies the step's on_error policy.
func (c *coordinator) applyFailureLocked(ctx context.Context, sd *models.StepDefinition, failure error) {
	now := time.Now()
	kind := models.KindOf(failure)
	se := c.exec.Step(sd.ID)
	if se == nil {
		return
	}

	dec := decideRetry(sd.RetryPolicyOrDefault(), kind, se.RetryCount)
	if dec.retry {
		notBefore := now.Add(dec.delay)
		_ = c.exec.RetryStep(sd.ID, kind, failure.Error(), notBefore, dec.consumeAttempt, now)
		c.logger.Info("Step retry scheduled",
			"step", sd.ID, "kind", string(kind), "retry_count", se.RetryCount, "delay", dec.delay)
		c.armTimerLocked("retry:"+sd.ID, dec.delay, func() {
			c.advance(context.Background())
		})
		return
	}

	if sd.OnErrorPolicy() == models.OnErrorSkipStep && !kind.Fatal() {
		c.logger.Info("Step failed, skipping per policy", "step", sd.ID, "kind", string(kind))
		_ = c.exec.SkipStep(sd.ID, models.SkipRetriesExhausted, now)
		return
	}

	_ = c.exec.FailStep(sd.ID, kind, failure.Error(), now)
	c.failExecutionLocked(ctx, kind, fmt.Sprintf("step %s failed: %s", sd.ID, failure.Error()))
}

// failExecutionLocked transitions the execution to failed and tears down
// outstanding work.
func (c *coordinator) failExecutionLocked(ctx context.Context, kind models.Kind, msg string) {
	now := time.Now()
	_ = c.exec.Fail(kind, msg, now)
	_ = c.persistAndPublish(ctx)
	c.teardownLocked()
	c.logger.Warn("Execution failed", "kind", string(kind), "error", msg)
}

// finalizeLocked completes an execution whose steps are all terminal.
func (c *coordinator) finalizeLocked(ctx context.Context) {
	now := time.Now()
	output := c.finalOutput(now)
	_ = c.exec.Complete(output, now)
	_ = c.persistAndPublish(ctx)
	c.logger.Info("Execution completed",
		"total_cost", c.exec.TotalCost,
		"duration_ms", c.exec.TotalDuration().Milliseconds())
}

// finalOutput derives the execution output per the definition's output
// config: a single step's output, or a rendered template.
func (c *coordinator) finalOutput(now time.Time) map[string]any {
	oc := c.def.Output
	if oc == nil {
		return nil
	}
	if oc.FromStep != "" {
		if se := c.exec.Step(oc.FromStep); se != nil {
			return se.Output
		}
		return nil
	}
	if oc.Template != "" {
		rendered, err := expr.Render(oc.Template, expr.NewContext(c.exec, now))
		if err != nil {
			c.logger.Warn("Output template failed to render", "error", err)
			return nil
		}
		return map[string]any{"result": rendered}
	}
	return nil
}

// wouldExceedBudget checks the process cost cap before adding cost.
func (c *coordinator) wouldExceedBudget(cost float64) (bool, float64) {
	if c.def.MaxCost <= 0 {
		return false, 0
	}
	if c.exec.TotalCost+cost > c.def.MaxCost {
		return true, c.def.MaxCost
	}
	return false, 0
}

// persistAndPublish saves the execution (with its buffered events) and, on
// success, publishes the drained events. Persistence always precedes
// publication.
func (c *coordinator) persistAndPublish(ctx context.Context) error {
	if err := c.eng.stores.Executions.SaveExecution(ctx, c.exec); err != nil {
		c.logger.Error("Failed to persist execution", "error", err)
		return err
	}
	c.eng.bus.Publish(c.exec.DrainEvents())
	return nil
}

// armTimerLocked schedules fn after d, replacing any timer with the same key.
func (c *coordinator) armTimerLocked(key string, d time.Duration, fn func()) {
	if t, ok := c.timers[key]; ok {
		t.Stop()
	}
	if d < 0 {
		d = 0
	}
	c.timers[key] = time.AfterFunc(d, func() {
		c.mu.Lock()
		delete(c.timers, key)
		c.mu.Unlock()
		fn()
	})
}

// teardownLocked stops timers and cancels in-flight queue work.
func (c *coordinator) teardownLocked() {
	for key, t := range c.timers {
		t.Stop()
		delete(c.timers, key)
	}
	for stepID, h := range c.queueHandles {
		h.Cancel()
		delete(c.queueHandles, stepID)
	}
}

// --- agent_task ---

func (c *coordinator) dispatchAgentTaskLocked(ctx context.Context, sd *models.StepDefinition) {
	cfg := sd.AgentTask
	now := time.Now()

	message, err := expr.Render(cfg.MessageTemplate, expr.NewContext(c.exec, now))
	if err != nil {
		c.applyOutcomeLocked(ctx, sd, failed(err))
		return
	}

	if exceeded, limit := c.wouldExceedBudget(0); exceeded {
		c.failExecutionLocked(ctx, models.KindBudgetExceeded,
			fmt.Sprintf("execution cost %.4f exceeds budget %.4f", c.exec.TotalCost, limit))
		return
	}
	// A per-step cost cap cannot be pre-checked precisely; reject when the
	// remaining budget is already below the step's declared max_cost floor.
	if cfg.MaxCost > 0 && c.def.MaxCost > 0 && c.def.MaxCost-c.exec.TotalCost <= 0 {
		c.applyOutcomeLocked(ctx, sd, failed(models.NewError(models.KindBudgetExceeded,
			"no budget left for step %s", sd.ID)))
		return
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = c.eng.defaultTaskTimeout
	}
	stepID := sd.ID
	task := queue.Task{
		ExecutionID: c.exec.ID,
		StepID:      stepID,
		Priority:    priorityOf(c.def.Priority),
		Run: func(runCtx context.Context) {
			result, execErr := c.eng.gateway.ExecuteTask(runCtx, cfg.AgentName, message, timeout)
			c.onAgentTaskDone(stepID, result, execErr)
		},
	}

	h, err := c.eng.queue.Submit(ctx, cfg.AgentName, task)
	if err != nil {
		// QueueFull feeds the retry policy with a short fixed delay that
		// does not consume an attempt.
		c.applyFailureLocked(ctx, sd, err)
		return
	}
	c.queueHandles[stepID] = h
}

// onAgentTaskDone is the queue callback for a finished agent call.
func (c *coordinator) onAgentTaskDone(stepID string, result *gateway.TaskResult, execErr error) {
	ctx := context.Background()
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.queueHandles, stepID)
	if c.exec.Status.Terminal() {
		// Cancelled or failed while in flight: discard the result.
		return
	}
	sd := c.def.Step(stepID)
	if sd == nil {
		return
	}

	if execErr != nil {
		c.applyFailureLocked(ctx, sd, execErr)
		_ = c.persistAndPublish(ctx)
		c.advanceLocked(ctx)
		return
	}

	output := map[string]any{
		"content":     result.Content,
		"cost":        result.Cost,
		"tokens_used": result.TokensUsed,
	}
	for k, v := range result.Output {
		output[k] = v
	}
	if sd.AgentTask != nil && sd.AgentTask.MaxCost > 0 && result.Cost > sd.AgentTask.MaxCost {
		c.applyFailureLocked(ctx, sd, models.NewError(models.KindBudgetExceeded,
			"step %s cost %.4f exceeds step budget %.4f", stepID, result.Cost, sd.AgentTask.MaxCost))
		_ = c.persistAndPublish(ctx)
		c.advanceLocked(ctx)
		return
	}

	c.applyOutcomeLocked(ctx, sd, completed(output, result.Cost))
	c.advanceLocked(ctx)
}

// priorityOf maps a definition priority string to a queue priority.
func priorityOf(p string) queue.Priority {
	switch p {
	case "high":
		return queue.PriorityHigh
	case "low":
		return queue.PriorityLow
	}
	return queue.PriorityNormal
}

// --- gateway ---

// runGateway evaluates routes per the gateway type and returns routed
// targets, or NoMatchingRoute when nothing matches and no default exists.
func (c *coordinator) runGateway(sd *models.StepDefinition, now time.Time) Outcome {
	cfg := sd.Gateway
	ctx := expr.NewContext(c.exec, now)

	var selected []string
	var defaultRoute *models.GatewayRoute
	for i := range cfg.Routes {
		r := &cfg.Routes[i]
		if r.Condition == "" {
			if defaultRoute == nil {
				defaultRoute = r
			}
			if cfg.Type == models.GatewayParallel {
				selected = append(selected, r.TargetStep)
			}
			continue
		}
		if cfg.Type == models.GatewayParallel {
			selected = append(selected, r.TargetStep)
			continue
		}
		ok, err := expr.EvalPredicate(r.Condition, ctx)
		if err != nil {
			return failed(err)
		}
		if ok {
			selected = append(selected, r.TargetStep)
			if cfg.Type == models.GatewayExclusive {
				return routed(selected)
			}
		}
	}

	if len(selected) > 0 {
		return routed(selected)
	}
	if defaultRoute != nil {
		return routed([]string{defaultRoute.TargetStep})
	}
	return failed(models.NewError(models.KindNoMatchingRoute,
		"gateway %s: no route condition matched and no default route", sd.ID))
}

// --- human_approval ---

func (c *coordinator) startApprovalLocked(ctx context.Context, sd *models.StepDefinition, now time.Time) Outcome {
	cfg := sd.HumanApproval
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = c.eng.cfg.DefaultApprovalTimeout
	}
	deadline := now.Add(timeout)

	approval := &models.Approval{
		ID:          uuid.New().String(),
		ExecutionID: c.exec.ID,
		StepID:      sd.ID,
		Approvers:   cfg.Approvers,
		Deadline:    deadline,
		Status:      models.ApprovalPending,
		Title:       cfg.Title,
		Artifacts:   cfg.Artifacts,
		RequestedAt: now,
	}
	if err := c.eng.stores.Approvals.CreateApproval(ctx, approval); err != nil {
		return failed(models.WrapError(models.KindInternalError, err, "create approval"))
	}

	_ = c.exec.SuspendForApproval(sd.ID, approval.ID, cfg.Approvers, deadline, now)
	stepID := sd.ID
	approvalID := approval.ID
	c.armTimerLocked("approval:"+stepID, time.Until(deadline), func() {
		c.onApprovalDeadline(approvalID, stepID)
	})
	c.logger.Info("Approval requested",
		"step", stepID, "approval_id", approvalID, "deadline", deadline)
	return suspended(suspendApproval)
}

// submitApproval applies a human decision to a waiting step.
func (c *coordinator) submitApproval(ctx context.Context, approval *models.Approval, status models.ApprovalStatus, actor, comment string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	se := c.exec.Step(approval.StepID)
	if se == nil || se.Status != models.StepWaitingApproval {
		return models.NewError(models.KindStateConflict,
			"step %s is not waiting for approval", approval.StepID)
	}
	if !approval.CanDecide(actor) {
		return models.NewError(models.KindAuthorizationDenied,
			"%s is not an eligible approver for %s", actor, approval.ID)
	}

	now := time.Now()
	if err := approval.Decide(status, actor, comment, now); err != nil {
		return err
	}
	if err := c.eng.stores.Approvals.SaveApproval(ctx, approval); err != nil {
		return models.WrapError(models.KindInternalError, err, "save approval decision")
	}

	if t, ok := c.timers["approval:"+approval.StepID]; ok {
		t.Stop()
		delete(c.timers, "approval:"+approval.StepID)
	}

	c.exec.RecordApprovalDecision(approval.StepID, string(status), actor, now)
	output := map[string]any{
		"decision":   string(status),
		"comment":    comment,
		"decided_by": actor,
	}
	_ = c.exec.CompleteStep(approval.StepID, output, 0, now)
	c.exec.ResumeFromPause(now)
	if err := c.persistAndPublish(ctx); err != nil {
		return err
	}
	c.advanceLocked(ctx)
	return nil
}

// onApprovalDeadline applies the configured on_timeout action when an
// approval deadline passes without a decision.
func (c *coordinator) onApprovalDeadline(approvalID, stepID string) {
	ctx := context.Background()
	c.mu.Lock()
	defer c.mu.Unlock()

	se := c.exec.Step(stepID)
	if se == nil || se.Status != models.StepWaitingApproval {
		return
	}
	approval, err := c.eng.stores.Approvals.GetApproval(ctx, approvalID)
	if err != nil {
		c.logger.Error("Failed to load approval for timeout", "approval_id", approvalID, "error", err)
		return
	}
	if !approval.MarkTimedOut(time.Now()) {
		return
	}
	if err := c.eng.stores.Approvals.SaveApproval(ctx, approval); err != nil {
		c.logger.Error("Failed to persist approval timeout", "approval_id", approvalID, "error", err)
		return
	}

	sd := c.def.Step(stepID)
	action := models.TimeoutReject
	if sd != nil && sd.HumanApproval != nil && sd.HumanApproval.OnTimeout != "" {
		action = sd.HumanApproval.OnTimeout
	}
	now := time.Now()
	c.exec.RecordApprovalTimeout(stepID, action, now)
	c.logger.Info("Approval timed out", "step", stepID, "on_timeout", string(action))

	switch action {
	case models.TimeoutApprove:
		_ = c.exec.CompleteStep(stepID, map[string]any{
			"decision": string(models.ApprovalApproved), "timed_out": true,
		}, 0, now)
	case models.TimeoutSkip:
		_ = c.exec.SkipStep(stepID, "approval_timed_out", now)
	default:
		// Timeout-reject is a step failure: the step fails with
		// approval_rejected and the on_error policy decides whether the
		// execution fails or continues with the step skipped.
		c.applyFailureLocked(ctx, sd, models.NewError(models.KindApprovalRejected,
			"approval for step %s timed out without a decision", stepID))
		if !c.exec.Status.Terminal() {
			c.exec.ResumeFromPause(now)
			if err := c.persistAndPublish(ctx); err != nil {
				return
			}
		}
		c.advanceLocked(ctx)
		return
	}
	c.exec.ResumeFromPause(now)
	if err := c.persistAndPublish(ctx); err != nil {
		return
	}
	c.advanceLocked(ctx)
}

// --- timer ---

func (c *coordinator) startTimerLocked(sd *models.StepDefinition, now time.Time) Outcome {
	resumeAt, err := c.timerResumeAt(sd, now)
	if err != nil {
		return failed(err)
	}
	_ = c.exec.SuspendForTimer(sd.ID, resumeAt, now)
	stepID := sd.ID
	c.armTimerLocked("timer:"+stepID, time.Until(resumeAt), func() {
		c.onTimerFired(stepID)
	})
	c.logger.Info("Timer armed", "step", stepID, "resume_at", resumeAt)
	return suspended(suspendTimer)
}

// timerResumeAt computes the wall-clock resume time from the step config.
func (c *coordinator) timerResumeAt(sd *models.StepDefinition, now time.Time) (time.Time, error) {
	cfg := sd.Timer
	if cfg.WaitDuration > 0 {
		return now.Add(cfg.WaitDuration), nil
	}
	rendered, err := expr.Render(cfg.WaitUntil, expr.NewContext(c.exec, now))
	if err != nil {
		return time.Time{}, err
	}
	loc := time.UTC
	if cfg.Timezone != "" {
		if l, tzErr := time.LoadLocation(cfg.Timezone); tzErr == nil {
			loc = l
		}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, parseErr := time.ParseInLocation(layout, rendered, loc); parseErr == nil {
			return t, nil
		}
	}
	return time.Time{}, models.NewError(models.KindExpressionError,
		"timer %s: wait_until %q is not a recognizable time", sd.ID, rendered)
}

// onTimerFired completes a waiting timer step.
func (c *coordinator) onTimerFired(stepID string) {
	ctx := context.Background()
	c.mu.Lock()
	defer c.mu.Unlock()

	se := c.exec.Step(stepID)
	if se == nil || se.Status != models.StepWaitingTimer {
		return
	}
	now := time.Now()
	_ = c.exec.CompleteStep(stepID, map[string]any{"fired_at": now.UTC().Format(time.RFC3339)}, 0, now)
	if err := c.persistAndPublish(ctx); err != nil {
		return
	}
	c.advanceLocked(ctx)
}

// --- notification ---

func (c *coordinator) runNotification(ctx context.Context, sd *models.StepDefinition, now time.Time) Outcome {
	cfg := sd.Notification
	evalCtx := expr.NewContext(c.exec, now)

	message, err := expr.Render(cfg.MessageTemplate, evalCtx)
	if err != nil {
		return failed(err)
	}
	recipients := make([]string, 0, len(cfg.Recipients))
	for _, r := range cfg.Recipients {
		rendered, rErr := expr.Render(r, evalCtx)
		if rErr != nil {
			return failed(rErr)
		}
		if rendered != "" {
			recipients = append(recipients, rendered)
		}
	}

	delivered, err := c.eng.notifier.Deliver(ctx, cfg.Channels, recipients, message)
	if err != nil {
		return failed(err)
	}
	return completed(map[string]any{"delivered_count": delivered}, 0)
}

// --- sub_process ---

func (c *coordinator) startSubProcessLocked(ctx context.Context, sd *models.StepDefinition, now time.Time) Outcome {
	cfg := sd.SubProcess
	evalCtx := expr.NewContext(c.exec, now)

	input := make(map[string]any, len(cfg.InputMapping))
	for key, tmpl := range cfg.InputMapping {
		rendered, err := expr.Render(tmpl, evalCtx)
		if err != nil {
			return failed(err)
		}
		input[key] = rendered
	}

	childID, err := c.eng.startByName(ctx, cfg.ProcessName, input, models.TriggeredBy{
		Kind:              models.TriggerAgent,
		Actor:             c.exec.OwnerUser,
		ParentExecutionID: c.exec.ID,
		ParentStepID:      sd.ID,
	})
	if err != nil {
		return failed(err)
	}

	_ = c.exec.SuspendForChild(sd.ID, childID)
	c.logger.Info("Child execution started", "step", sd.ID, "child_execution_id", childID)
	return suspended(suspendChild)
}

// onChildTerminal resumes a sub_process step when its child finishes.
func (c *coordinator) onChildTerminal(ctx context.Context, childID string, childStatus models.ExecutionStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sd *models.StepDefinition
	for i := range c.def.Steps {
		se := c.exec.Step(c.def.Steps[i].ID)
		if se != nil && se.ChildExecutionID == childID && !se.Status.Terminal() {
			sd = &c.def.Steps[i]
			break
		}
	}
	if sd == nil || c.exec.Status.Terminal() {
		return
	}

	switch childStatus {
	case models.ExecutionCompleted:
		output, err := c.mapChildOutput(ctx, sd, childID)
		if err != nil {
			c.applyFailureLocked(ctx, sd, err)
		} else {
			c.applyOutcomeLocked(ctx, sd, completed(output, 0))
		}
	case models.ExecutionCancelled:
		c.applyFailureLocked(ctx, sd, models.NewError(models.KindCancelled,
			"child execution %s was cancelled", childID))
		_ = c.persistAndPublish(ctx)
	default:
		kind := models.KindInternalError
		msg := fmt.Sprintf("child execution %s failed", childID)
		if child, err := c.eng.stores.Executions.GetExecution(ctx, childID); err == nil && child.ErrorKind != "" {
			kind = child.ErrorKind
			msg = fmt.Sprintf("child execution %s failed: %s", childID, child.Error)
		}
		c.applyFailureLocked(ctx, sd, models.NewError(kind, "%s", msg))
		_ = c.persistAndPublish(ctx)
	}
	c.advanceLocked(ctx)
}

// mapChildOutput renders the step's output_mapping over the child's final
// context. Without a mapping the child's output is passed through.
func (c *coordinator) mapChildOutput(ctx context.Context, sd *models.StepDefinition, childID string) (map[string]any, error) {
	child, err := c.eng.stores.Executions.GetExecution(ctx, childID)
	if err != nil {
		return nil, models.WrapError(models.KindInternalError, err, "load child execution %s", childID)
	}
	if len(sd.SubProcess.OutputMapping) == 0 {
		return child.Output, nil
	}
	childCtx := expr.NewContext(child, time.Now())
	output := make(map[string]any, len(sd.SubProcess.OutputMapping))
	for key, tmpl := range sd.SubProcess.OutputMapping {
		rendered, rErr := expr.Render(tmpl, childCtx)
		if rErr != nil {
			return nil, rErr
		}
		output[key] = rendered
	}
	return output, nil
}

// --- cancellation ---

// cancel terminates the execution and returns ids of running children that
// must be cancelled in turn.
func (c *coordinator) cancel(ctx context.Context, actor, reason string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var children []string
	for _, se := range c.exec.Steps {
		if se.ChildExecutionID != "" && !se.Status.Terminal() {
			children = append(children, se.ChildExecutionID)
		}
	}

	if err := c.exec.Cancel(actor, reason, time.Now()); err != nil {
		return nil, err
	}
	if err := c.persistAndPublish(ctx); err != nil {
		return nil, err
	}
	c.teardownLocked()
	c.eng.removeCoordinator(c.exec.ID)
	c.logger.Info("Execution cancelled", "actor", actor, "reason", reason)
	return children, nil
}

// --- recovery ---

// rearm restores suspended-step timers after a restart and re-enters the
// engine loop.
func (c *coordinator) rearm(ctx context.Context) {
	type terminalChild struct {
		id     string
		status models.ExecutionStatus
	}
	var finishedChildren []terminalChild

	c.mu.Lock()
	now := time.Now()
	for _, sdef := range c.def.Steps {
		se := c.exec.Step(sdef.ID)
		if se == nil {
			continue
		}
		stepID := sdef.ID
		// A child that finished while this process was down will never
		// produce a bus event again; settle it from its stored state.
		if se.ChildExecutionID != "" && !se.Status.Terminal() {
			if child, err := c.eng.stores.Executions.GetExecution(ctx, se.ChildExecutionID); err == nil && child.Status.Terminal() {
				finishedChildren = append(finishedChildren, terminalChild{id: child.ID, status: child.Status})
			}
			continue
		}
		switch se.Status {
		case models.StepWaitingTimer:
			if se.TimerResumeAt != nil {
				c.armTimerLocked("timer:"+stepID, se.TimerResumeAt.Sub(now), func() {
					c.onTimerFired(stepID)
				})
			}
		case models.StepWaitingApproval:
			if se.ApprovalID != "" {
				approvalID := se.ApprovalID
				if approval, err := c.eng.stores.Approvals.GetApproval(ctx, approvalID); err == nil {
					c.armTimerLocked("approval:"+stepID, approval.Deadline.Sub(now), func() {
						c.onApprovalDeadline(approvalID, stepID)
					})
				}
			}
		case models.StepRetrying:
			if se.NotBefore != nil {
				c.armTimerLocked("retry:"+stepID, se.NotBefore.Sub(now), func() {
					c.advance(context.Background())
				})
			}
		}
	}
	c.mu.Unlock()

	for _, child := range finishedChildren {
		c.onChildTerminal(ctx, child.id, child.status)
	}
	c.advance(ctx)
}
