// Package engine executes process definitions: it resolves the step DAG,
// dispatches agent work through the per-agent queue, suspends on approvals
// and timers, spawns child executions, and applies retry and budget policy.
//
// State changes are persisted before their events are published; crash
// recovery replays from the stored execution state.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trinity-ai/trinity/pkg/config"
	"github.com/trinity-ai/trinity/pkg/events"
	"github.com/trinity-ai/trinity/pkg/gateway"
	"github.com/trinity-ai/trinity/pkg/models"
	"github.com/trinity-ai/trinity/pkg/notify"
	"github.com/trinity-ai/trinity/pkg/queue"
)

// Engine coordinates all active executions in this process. One coordinator
// exists per running execution; terminal executions are evicted.
type Engine struct {
	stores   Stores
	queue    *queue.AgentExecutionQueue
	gateway  gateway.AgentGateway
	notifier *notify.Router
	bus      *events.Bus
	limits   *LimitService
	cfg      *config.EngineConfig
	logger   *slog.Logger

	// defaultTaskTimeout applies to agent_task steps without an explicit
	// timeout.
	defaultTaskTimeout time.Duration

	mu     sync.Mutex
	coords map[string]*coordinator
}

// New creates an engine. The queue must already be started.
func New(
	stores Stores,
	q *queue.AgentExecutionQueue,
	gw gateway.AgentGateway,
	notifier *notify.Router,
	bus *events.Bus,
	engineCfg *config.EngineConfig,
	queueCfg *config.QueueConfig,
	logger *slog.Logger,
) *Engine {
	if engineCfg == nil {
		engineCfg = config.DefaultEngineConfig()
	}
	taskTimeout := 10 * time.Minute
	if queueCfg != nil && queueCfg.TaskTimeout > 0 {
		taskTimeout = queueCfg.TaskTimeout
	}
	eng := &Engine{
		stores:             stores,
		queue:              q,
		gateway:            gw,
		notifier:           notifier,
		bus:                bus,
		cfg:                engineCfg,
		logger:             logger.With("component", "engine"),
		defaultTaskTimeout: taskTimeout,
		coords:             make(map[string]*coordinator),
	}
	eng.limits = NewLimitService(stores.Executions, engineCfg)
	return eng
}

// Start creates and begins a new execution of a published definition.
// Returns the new execution id.
func (e *Engine) Start(ctx context.Context, def *models.ProcessDefinition, input map[string]any, trig models.TriggeredBy) (string, error) {
	if def.Status != models.DefinitionPublished {
		return "", models.NewError(models.KindStateConflict,
			"process %q is %s, only published definitions can run", def.Name, def.Status)
	}
	if err := e.limits.CheckStart(ctx, def); err != nil {
		return "", err
	}

	now := time.Now()
	exec := models.NewExecution(uuid.New().String(), def, input, trig, now)
	if err := exec.Start(now); err != nil {
		return "", err
	}
	if err := e.stores.Executions.CreateExecution(ctx, exec); err != nil {
		return "", err
	}
	e.bus.Publish(exec.DrainEvents())

	c := newCoordinator(e, def, exec)
	e.mu.Lock()
	e.coords[exec.ID] = c
	e.mu.Unlock()

	e.logger.Info("Execution started",
		"execution_id", exec.ID,
		"process", def.Name,
		"version", def.Version,
		"triggered_by", string(trig.Kind))

	go c.advance(context.WithoutCancel(ctx))
	return exec.ID, nil
}

// startByName starts a child execution of the named process's published
// version. Used by sub_process steps.
func (e *Engine) startByName(ctx context.Context, processName string, input map[string]any, trig models.TriggeredBy) (string, error) {
	def, err := e.stores.Definitions.GetPublishedDefinitionByName(ctx, processName)
	if err != nil {
		return "", err
	}
	return e.Start(ctx, def, input, trig)
}

// Cancel terminates a non-terminal execution and propagates the cancellation
// to any running child executions.
func (e *Engine) Cancel(ctx context.Context, executionID, actor, reason string) error {
	c, err := e.ensureCoordinator(ctx, executionID)
	if err != nil {
		return err
	}
	children, err := c.cancel(ctx, actor, reason)
	if err != nil {
		return err
	}
	for _, childID := range children {
		if cErr := e.Cancel(ctx, childID, actor, "parent execution cancelled"); cErr != nil &&
			!models.IsKind(cErr, models.KindStateConflict) {
			e.logger.Warn("Failed to cancel child execution",
				"execution_id", executionID, "child_execution_id", childID, "error", cErr)
		}
	}
	return nil
}

// SubmitApproval applies a human decision to a pending approval.
func (e *Engine) SubmitApproval(ctx context.Context, approvalID string, status models.ApprovalStatus, actor, comment string) error {
	approval, err := e.stores.Approvals.GetApproval(ctx, approvalID)
	if err != nil {
		return err
	}
	c, err := e.ensureCoordinator(ctx, approval.ExecutionID)
	if err != nil {
		return err
	}
	return c.submitApproval(ctx, approval, status, actor, comment)
}

// NotifyChildTerminal resumes the parent step waiting on a finished child.
// Wired as an event-bus sink on process terminal events.
func (e *Engine) NotifyChildTerminal(ctx context.Context, parentExecutionID, childID string, childStatus models.ExecutionStatus) {
	c, err := e.ensureCoordinator(ctx, parentExecutionID)
	if err != nil {
		e.logger.Warn("Parent execution not resumable",
			"execution_id", parentExecutionID, "child_execution_id", childID, "error", err)
		return
	}
	c.onChildTerminal(ctx, childID, childStatus)
}

// ChildTerminalSink returns an event-bus sink that resumes parent executions
// when a child spawned by a sub_process step reaches a terminal status.
func (e *Engine) ChildTerminalSink() events.Sink {
	return events.SinkFunc(func(evt models.Event) {
		var status models.ExecutionStatus
		switch evt.Type {
		case models.EventProcessCompleted:
			status = models.ExecutionCompleted
		case models.EventProcessFailed:
			status = models.ExecutionFailed
		case models.EventProcessCancelled:
			status = models.ExecutionCancelled
		default:
			return
		}
		ctx := context.Background()
		child, err := e.stores.Executions.GetExecution(ctx, evt.ExecutionID)
		if err != nil || child.TriggeredBy.ParentExecutionID == "" {
			return
		}
		e.NotifyChildTerminal(ctx, child.TriggeredBy.ParentExecutionID, child.ID, status)
	})
}

// Resume reloads a persisted execution after a restart, re-arms its timers
// and approval deadlines, and re-enters the engine loop.
func (e *Engine) Resume(ctx context.Context, executionID string) error {
	c, err := e.ensureCoordinator(ctx, executionID)
	if err != nil {
		return err
	}
	go c.rearm(context.WithoutCancel(ctx))
	return nil
}

// ActiveCount returns the number of in-memory coordinators.
func (e *Engine) ActiveCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.coords)
}

// Limits exposes the limit checker for API-level enforcement.
func (e *Engine) Limits() *LimitService { return e.limits }

// ensureCoordinator returns the live coordinator for an execution, loading
// the execution and its definition from the stores when none is registered.
func (e *Engine) ensureCoordinator(ctx context.Context, executionID string) (*coordinator, error) {
	e.mu.Lock()
	if c, ok := e.coords[executionID]; ok {
		e.mu.Unlock()
		return c, nil
	}
	e.mu.Unlock()

	exec, err := e.stores.Executions.GetExecution(ctx, executionID)
	if err != nil {
		return nil, err
	}
	if exec.Status.Terminal() {
		return nil, models.NewError(models.KindStateConflict,
			"execution %s is already %s", executionID, exec.Status)
	}
	def, err := e.stores.Definitions.GetDefinition(ctx, exec.ProcessID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if c, ok := e.coords[executionID]; ok {
		return c, nil
	}
	c := newCoordinator(e, def, exec)
	e.coords[executionID] = c
	return c, nil
}

// removeCoordinator evicts a terminal execution's coordinator.
func (e *Engine) removeCoordinator(executionID string) {
	e.mu.Lock()
	delete(e.coords, executionID)
	e.mu.Unlock()
}
