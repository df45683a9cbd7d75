// Package recovery brings persisted executions back to life after a process
// restart. Non-terminal executions are scanned once at startup: stale ones
// are failed, ones with an in-flight step get the step reset to pending,
// the rest resume where they left off. The resulting report is kept for the
// health endpoint.
package recovery

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/trinity-ai/trinity/pkg/events"
	"github.com/trinity-ai/trinity/pkg/models"
)

// DefaultMaxAge marks executions older than this as unrecoverable.
const DefaultMaxAge = 24 * time.Hour

// ExecutionStore lists and saves executions for the scan.
type ExecutionStore interface {
	ListNonTerminalExecutions(ctx context.Context) ([]*models.ProcessExecution, error)
	SaveExecution(ctx context.Context, exec *models.ProcessExecution) error
}

// DefinitionStore resolves definitions for step-kind decisions.
type DefinitionStore interface {
	GetDefinition(ctx context.Context, id string) (*models.ProcessDefinition, error)
}

// Resumer re-enters the engine loop for a recovered execution.
// Implemented by engine.Engine.
type Resumer interface {
	Resume(ctx context.Context, executionID string) error
}

// Action names a per-execution recovery decision.
type Action string

const (
	ActionResume     Action = "resume"
	ActionRetryStep  Action = "retry_step"
	ActionMarkFailed Action = "mark_failed"
	ActionSkip       Action = "skip"
)

// Report summarizes one recovery pass.
type Report struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	DryRun     bool      `json:"dry_run"`
	Scanned    int       `json:"scanned"`
	Resumed    int       `json:"resumed"`
	Retried    int       `json:"retried"`
	Failed     int       `json:"failed"`
	Skipped    int       `json:"skipped"`
	Errors     []string  `json:"errors,omitempty"`
}

// Service runs the startup scan.
type Service struct {
	store  ExecutionStore
	defs   DefinitionStore
	engine Resumer
	bus    *events.Bus
	logger *slog.Logger
	maxAge time.Duration

	mu   sync.Mutex
	last *Report
}

// New creates a recovery service. maxAge <= 0 selects DefaultMaxAge.
func New(store ExecutionStore, defs DefinitionStore, engine Resumer, bus *events.Bus, maxAge time.Duration, logger *slog.Logger) *Service {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Service{
		store:  store,
		defs:   defs,
		engine: engine,
		bus:    bus,
		logger: logger.With("component", "recovery"),
		maxAge: maxAge,
	}
}

// Run scans every non-terminal execution and applies (or, in dry-run mode,
// only reports) the recovery action for each.
func (s *Service) Run(ctx context.Context, dryRun bool) (*Report, error) {
	report := &Report{StartedAt: time.Now(), DryRun: dryRun}

	execs, err := s.store.ListNonTerminalExecutions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing non-terminal executions: %w", err)
	}
	report.Scanned = len(execs)

	for _, exec := range execs {
		action, runningSteps := s.decide(exec)
		s.logger.Info("Recovery decision",
			"execution_id", exec.ID,
			"process", exec.ProcessName,
			"status", string(exec.Status),
			"action", string(action),
			"dry_run", dryRun)
		if dryRun {
			s.count(report, action)
			continue
		}
		if err := s.apply(ctx, exec, action, runningSteps); err != nil {
			report.Errors = append(report.Errors,
				fmt.Sprintf("%s: %v", exec.ID, err))
			report.Skipped++
			continue
		}
		s.count(report, action)
	}

	report.FinishedAt = time.Now()
	s.mu.Lock()
	s.last = report
	s.mu.Unlock()

	s.logger.Info("Recovery pass complete",
		"scanned", report.Scanned,
		"resumed", report.Resumed,
		"retried", report.Retried,
		"failed", report.Failed,
		"skipped", report.Skipped,
		"errors", len(report.Errors))
	return report, nil
}

// LastReport returns the most recent completed report, or nil.
func (s *Service) LastReport() *Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Service) count(report *Report, action Action) {
	switch action {
	case ActionResume:
		report.Resumed++
	case ActionRetryStep:
		report.Retried++
	case ActionMarkFailed:
		report.Failed++
	default:
		report.Skipped++
	}
}

// decide picks the recovery action for one execution and, for retry_step,
// the running step ids to reset.
func (s *Service) decide(exec *models.ProcessExecution) (Action, []string) {
	if time.Since(exec.StartedAt) > s.maxAge {
		return ActionMarkFailed, nil
	}
	var running []string
	for id, se := range exec.Steps {
		if se.Status == models.StepRunning && se.ChildExecutionID == "" {
			running = append(running, id)
		}
	}
	if len(running) > 0 {
		return ActionRetryStep, running
	}
	return ActionResume, nil
}

func (s *Service) apply(ctx context.Context, exec *models.ProcessExecution, action Action, runningSteps []string) error {
	now := time.Now()
	switch action {
	case ActionMarkFailed:
		if err := exec.Fail(models.KindTimeout, "recovery timeout: execution exceeded max recoverable age", now); err != nil {
			return err
		}
		return s.persist(ctx, exec)
	case ActionRetryStep:
		def, err := s.defs.GetDefinition(ctx, exec.ProcessID)
		if err != nil {
			return fmt.Errorf("loading definition %s: %w", exec.ProcessID, err)
		}
		for _, stepID := range runningSteps {
			exec.MarkRecovered(stepID, !stepKindIdempotent(def.Step(stepID)), now)
		}
		if err := s.persist(ctx, exec); err != nil {
			return err
		}
		return s.engine.Resume(ctx, exec.ID)
	default:
		exec.MarkRecovered("", false, now)
		if err := s.persist(ctx, exec); err != nil {
			return err
		}
		return s.engine.Resume(ctx, exec.ID)
	}
}

// persist saves the execution and publishes its recovery events.
func (s *Service) persist(ctx context.Context, exec *models.ProcessExecution) error {
	if err := s.store.SaveExecution(ctx, exec); err != nil {
		return err
	}
	s.bus.Publish(exec.DrainEvents())
	return nil
}

// stepKindIdempotent reports whether re-running an interrupted step has no
// external side effect worth counting as a retry. Agent calls and
// notifications may have partially executed; everything else recomputes.
func stepKindIdempotent(sd *models.StepDefinition) bool {
	if sd == nil {
		return true
	}
	switch sd.Kind {
	case models.StepAgentTask, models.StepNotification:
		return false
	}
	return true
}
