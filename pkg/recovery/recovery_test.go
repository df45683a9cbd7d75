package recovery

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/events"
	"github.com/trinity-ai/trinity/pkg/models"
)

type memRecoveryStore struct {
	mu    sync.Mutex
	execs []*models.ProcessExecution
	defs  map[string]*models.ProcessDefinition
	saves int
}

func (m *memRecoveryStore) ListNonTerminalExecutions(context.Context) ([]*models.ProcessExecution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.ProcessExecution
	for _, e := range m.execs {
		if !e.Status.Terminal() {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memRecoveryStore) SaveExecution(_ context.Context, exec *models.ProcessExecution) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	return nil
}

func (m *memRecoveryStore) GetDefinition(_ context.Context, id string) (*models.ProcessDefinition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	def, ok := m.defs[id]
	if !ok {
		return nil, models.NewError(models.KindNotFound, "definition %s not found", id)
	}
	return def, nil
}

type recordResumer struct {
	mu      sync.Mutex
	resumed []string
}

func (r *recordResumer) Resume(_ context.Context, executionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resumed = append(r.resumed, executionID)
	return nil
}

func (r *recordResumer) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.resumed...)
}

func recoveryDef(kind models.StepKind) *models.ProcessDefinition {
	step := models.StepDefinition{ID: "work", Kind: kind}
	switch kind {
	case models.StepAgentTask:
		step.AgentTask = &models.AgentTaskConfig{AgentName: "worker", MessageTemplate: "go"}
	case models.StepTimer:
		step.Timer = &models.TimerConfig{WaitDuration: time.Hour}
	}
	return &models.ProcessDefinition{
		ID:      "def-1",
		Name:    "recoverable",
		Version: "1.0.0",
		Status:  models.DefinitionPublished,
		Steps:   []models.StepDefinition{step},
	}
}

func recoveryExec(t *testing.T, def *models.ProcessDefinition, id string, age time.Duration) *models.ProcessExecution {
	t.Helper()
	started := time.Now().Add(-age)
	exec := models.NewExecution(id, def, nil, models.TriggeredBy{Kind: models.TriggerManual, Actor: "alice"}, started)
	require.NoError(t, exec.Start(started))
	exec.DrainEvents()
	return exec
}

func newTestService(store *memRecoveryStore, resumer Resumer, maxAge time.Duration) (*Service, *events.Bus) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := events.NewBus(64, logger)
	return New(store, store, resumer, bus, maxAge, logger), bus
}

func TestRecovery_ResumesPausedExecution(t *testing.T) {
	def := recoveryDef(models.StepAgentTask)
	exec := recoveryExec(t, def, "exec-1", time.Hour)
	store := &memRecoveryStore{execs: []*models.ProcessExecution{exec}, defs: map[string]*models.ProcessDefinition{"def-1": def}}
	resumer := &recordResumer{}
	svc, bus := newTestService(store, resumer, 0)
	defer bus.Close()

	report, err := svc.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 1, report.Resumed)
	assert.Zero(t, report.Retried)
	assert.Zero(t, report.Failed)
	assert.Equal(t, []string{"exec-1"}, resumer.all())
}

func TestRecovery_ResetsRunningStepAndCountsRetry(t *testing.T) {
	def := recoveryDef(models.StepAgentTask)
	exec := recoveryExec(t, def, "exec-1", time.Hour)
	require.NoError(t, exec.MarkStepRunning("work", time.Now()))
	exec.DrainEvents()
	store := &memRecoveryStore{execs: []*models.ProcessExecution{exec}, defs: map[string]*models.ProcessDefinition{"def-1": def}}
	resumer := &recordResumer{}
	svc, bus := newTestService(store, resumer, 0)
	defer bus.Close()

	report, err := svc.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Retried)
	assert.Equal(t, models.StepPending, exec.Step("work").Status)
	assert.Equal(t, 1, exec.Step("work").RetryCount, "agent work may have partially run")
	assert.Equal(t, []string{"exec-1"}, resumer.all())
}

func TestRecovery_IdempotentStepKindDoesNotCountRetry(t *testing.T) {
	def := recoveryDef(models.StepTimer)
	exec := recoveryExec(t, def, "exec-1", time.Hour)
	require.NoError(t, exec.MarkStepRunning("work", time.Now()))
	exec.DrainEvents()
	store := &memRecoveryStore{execs: []*models.ProcessExecution{exec}, defs: map[string]*models.ProcessDefinition{"def-1": def}}
	resumer := &recordResumer{}
	svc, bus := newTestService(store, resumer, 0)
	defer bus.Close()

	_, err := svc.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, models.StepPending, exec.Step("work").Status)
	assert.Zero(t, exec.Step("work").RetryCount)
}

func TestRecovery_MarksStaleExecutionFailed(t *testing.T) {
	def := recoveryDef(models.StepAgentTask)
	exec := recoveryExec(t, def, "exec-1", 48*time.Hour)
	store := &memRecoveryStore{execs: []*models.ProcessExecution{exec}, defs: map[string]*models.ProcessDefinition{"def-1": def}}
	resumer := &recordResumer{}
	svc, bus := newTestService(store, resumer, 24*time.Hour)
	defer bus.Close()

	report, err := svc.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, models.ExecutionFailed, exec.Status)
	assert.Equal(t, models.KindTimeout, exec.ErrorKind)
	assert.Contains(t, exec.Error, "recovery timeout")
	assert.Empty(t, resumer.all())
}

func TestRecovery_DryRunMutatesNothing(t *testing.T) {
	def := recoveryDef(models.StepAgentTask)
	stale := recoveryExec(t, def, "exec-stale", 48*time.Hour)
	running := recoveryExec(t, def, "exec-running", time.Hour)
	require.NoError(t, running.MarkStepRunning("work", time.Now()))
	running.DrainEvents()
	store := &memRecoveryStore{
		execs: []*models.ProcessExecution{stale, running},
		defs:  map[string]*models.ProcessDefinition{"def-1": def},
	}
	resumer := &recordResumer{}
	svc, bus := newTestService(store, resumer, 24*time.Hour)
	defer bus.Close()

	report, err := svc.Run(context.Background(), true)
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Retried)
	assert.Zero(t, store.saves, "dry run must not persist")
	assert.Empty(t, resumer.all())
	assert.Equal(t, models.ExecutionRunning, stale.Status)
	assert.Equal(t, models.StepRunning, running.Step("work").Status)
}

func TestRecovery_LastReport(t *testing.T) {
	def := recoveryDef(models.StepAgentTask)
	store := &memRecoveryStore{defs: map[string]*models.ProcessDefinition{"def-1": def}}
	resumer := &recordResumer{}
	svc, bus := newTestService(store, resumer, 0)
	defer bus.Close()

	assert.Nil(t, svc.LastReport())
	report, err := svc.Run(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, report, svc.LastReport())
}
