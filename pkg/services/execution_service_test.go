package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/ent/event"
	"github.com/trinity-ai/trinity/pkg/models"
)

func TestExecutionService_CreateWritesStateAndEvents(t *testing.T) {
	client := newTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	def := testDefinition("incident-triage")
	exec := testExecution(def)
	require.Len(t, exec.PendingEvents(), 1)

	require.NoError(t, svc.CreateExecution(ctx, exec))

	got, err := svc.GetExecution(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ExecutionRunning, got.Status)
	assert.Equal(t, "alice", got.OwnerUser)
	assert.Equal(t, int64(1), got.Seq)
	require.Contains(t, got.Steps, "triage")
	assert.Equal(t, models.StepPending, got.Steps["triage"].Status)

	rows, err := client.Event.Query().
		Where(event.ExecutionIDEQ(exec.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.EventProcessStarted, rows[0].Type)
	assert.Equal(t, int64(1), rows[0].Seq)
}

func TestExecutionService_SaveAppendsEvents(t *testing.T) {
	client := newTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	def := testDefinition("incident-triage")
	exec := testExecution(def)
	require.NoError(t, svc.CreateExecution(ctx, exec))
	exec.DrainEvents()

	now := time.Now().UTC()
	require.NoError(t, exec.MarkStepRunning("triage", now))
	require.NoError(t, exec.CompleteStep("triage", map[string]any{"content": "ok"}, 0.4, now))
	require.NoError(t, svc.SaveExecution(ctx, exec))

	got, err := svc.GetExecution(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepCompleted, got.Steps["triage"].Status)
	assert.InDelta(t, 0.4, got.TotalCost, 1e-9)
	assert.Equal(t, int64(3), got.Seq)

	n, err := client.Event.Query().
		Where(event.ExecutionIDEQ(exec.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestExecutionService_SaveRejectsStaleAggregate(t *testing.T) {
	client := newTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	def := testDefinition("incident-triage")
	exec := testExecution(def)
	require.NoError(t, svc.CreateExecution(ctx, exec))
	exec.DrainEvents()

	now := time.Now().UTC()

	// Two copies of the same aggregate racing: the second save must lose.
	stale, err := svc.GetExecution(ctx, exec.ID)
	require.NoError(t, err)

	require.NoError(t, exec.MarkStepRunning("triage", now))
	require.NoError(t, svc.SaveExecution(ctx, exec))

	require.NoError(t, stale.MarkStepRunning("triage", now))
	err = svc.SaveExecution(ctx, stale)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindStateConflict))
}

func TestExecutionService_SaveMissingExecution(t *testing.T) {
	client := newTestClient(t)
	svc := NewExecutionService(client.Client)

	def := testDefinition("incident-triage")
	exec := testExecution(def)
	exec.DrainEvents()

	err := svc.SaveExecution(context.Background(), exec)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindNotFound))
}

func TestExecutionService_CountRunning(t *testing.T) {
	client := newTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	defA := testDefinition("proc-a")
	defB := testDefinition("proc-b")

	for range 2 {
		require.NoError(t, svc.CreateExecution(ctx, testExecution(defA)))
	}
	require.NoError(t, svc.CreateExecution(ctx, testExecution(defB)))

	done := testExecution(defB)
	require.NoError(t, done.Fail(models.KindInternalError, "boom", time.Now()))
	require.NoError(t, svc.CreateExecution(ctx, done))

	total, err := svc.CountRunning(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	forA, err := svc.CountRunningForProcess(ctx, "proc-a")
	require.NoError(t, err)
	assert.Equal(t, 2, forA)
}

func TestExecutionService_ListExecutions(t *testing.T) {
	client := newTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	def := testDefinition("proc-a")
	exec := testExecution(def)
	require.NoError(t, svc.CreateExecution(ctx, exec))

	failed := testExecution(def)
	require.NoError(t, failed.Fail(models.KindTimeout, "agent timed out", time.Now()))
	require.NoError(t, svc.CreateExecution(ctx, failed))

	byStatus, err := svc.ListExecutions(ctx, ExecutionFilter{Status: models.ExecutionFailed})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, failed.ID, byStatus[0].ID)
	assert.Equal(t, models.KindTimeout, byStatus[0].ErrorKind)

	byOwner, err := svc.ListExecutions(ctx, ExecutionFilter{OwnerUser: "alice"})
	require.NoError(t, err)
	assert.Len(t, byOwner, 2)

	limited, err := svc.ListExecutions(ctx, ExecutionFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestExecutionService_ListNonTerminal(t *testing.T) {
	client := newTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	def := testDefinition("proc-a")
	running := testExecution(def)
	require.NoError(t, svc.CreateExecution(ctx, running))

	done := testExecution(def)
	require.NoError(t, done.Fail(models.KindInternalError, "boom", time.Now()))
	require.NoError(t, svc.CreateExecution(ctx, done))

	open, err := svc.ListNonTerminalExecutions(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, running.ID, open[0].ID)
}

func TestExecutionService_PurgeTerminalExecutions(t *testing.T) {
	client := newTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	def := testDefinition("proc-a")

	old := testExecution(def)
	oldDone := time.Now().AddDate(0, 0, -120)
	require.NoError(t, old.Fail(models.KindInternalError, "boom", oldDone))
	require.NoError(t, svc.CreateExecution(ctx, old))

	recent := testExecution(def)
	require.NoError(t, recent.Fail(models.KindInternalError, "boom", time.Now()))
	require.NoError(t, svc.CreateExecution(ctx, recent))

	open := testExecution(def)
	require.NoError(t, svc.CreateExecution(ctx, open))

	ids, err := svc.PurgeTerminalExecutions(ctx, time.Now().AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.Equal(t, []string{old.ID}, ids)

	_, err = svc.GetExecution(ctx, old.ID)
	assert.True(t, models.IsKind(err, models.KindNotFound))
	_, err = svc.GetExecution(ctx, recent.ID)
	require.NoError(t, err)
}
