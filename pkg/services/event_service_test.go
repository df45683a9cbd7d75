package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
)

func seedExecutionEvents(t *testing.T, svc *ExecutionService) *models.ProcessExecution {
	t.Helper()
	ctx := context.Background()

	def := testDefinition("incident-triage")
	exec := testExecution(def)
	now := time.Now().UTC()
	require.NoError(t, exec.MarkStepRunning("triage", now))
	require.NoError(t, exec.CompleteStep("triage", map[string]any{"content": "done"}, 0.2, now))
	require.NoError(t, svc.CreateExecution(ctx, exec))
	return exec
}

func TestEventService_CatchupFromSeq(t *testing.T) {
	client := newTestClient(t)
	execSvc := NewExecutionService(client.Client)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	exec := seedExecutionEvents(t, execSvc)

	// Full replay from zero.
	all, err := svc.CatchupEvents(ctx, "execution:"+exec.ID, 0, 100)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].Seq)
	assert.Equal(t, models.EventProcessStarted, all[0].Payload["type"])
	assert.Equal(t, models.EventStepCompleted, all[2].Payload["type"])
	assert.Equal(t, "triage", all[2].Payload["step_id"])

	// Partial replay.
	tail, err := svc.CatchupEvents(ctx, "execution:"+exec.ID, 2, 100)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, int64(3), tail[0].Seq)
}

func TestEventService_CatchupHonorsLimit(t *testing.T) {
	client := newTestClient(t)
	execSvc := NewExecutionService(client.Client)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	exec := seedExecutionEvents(t, execSvc)

	limited, err := svc.CatchupEvents(ctx, "execution:"+exec.ID, 0, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, int64(1), limited[0].Seq)
	assert.Equal(t, int64(2), limited[1].Seq)
}

func TestEventService_CatchupIgnoresNonExecutionChannels(t *testing.T) {
	client := newTestClient(t)
	svc := NewEventService(client.Client)

	got, err := svc.CatchupEvents(context.Background(), "executions", 0, 100)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEventService_ListEvents(t *testing.T) {
	client := newTestClient(t)
	execSvc := NewExecutionService(client.Client)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	exec := seedExecutionEvents(t, execSvc)

	events, err := svc.ListEvents(ctx, exec.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, models.EventProcessStarted, events[0]["type"])
	assert.Equal(t, exec.ID, events[0]["execution_id"])
}

func TestEventService_CleanupForExecutions(t *testing.T) {
	client := newTestClient(t)
	execSvc := NewExecutionService(client.Client)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	exec := seedExecutionEvents(t, execSvc)
	other := seedExecutionEvents(t, execSvc)

	n, err := svc.CleanupEventsForExecutions(ctx, []string{exec.ID})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	remaining, err := svc.ListEvents(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 3)
}
