package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
)

func TestOutputService_PutAndGet(t *testing.T) {
	client := newTestClient(t)
	svc := NewOutputService(client.Client)
	ctx := context.Background()

	out := map[string]any{"content": "analysis complete", "cost": 0.3}
	require.NoError(t, svc.PutOutput(ctx, "exec-1", "triage", out))

	got, err := svc.GetOutput(ctx, "exec-1", "triage")
	require.NoError(t, err)
	assert.Equal(t, "analysis complete", got["content"])
}

func TestOutputService_PutOverwritesRetriedStep(t *testing.T) {
	client := newTestClient(t)
	svc := NewOutputService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.PutOutput(ctx, "exec-1", "triage", map[string]any{"attempt": float64(1)}))
	require.NoError(t, svc.PutOutput(ctx, "exec-1", "triage", map[string]any{"attempt": float64(2)}))

	got, err := svc.GetOutput(ctx, "exec-1", "triage")
	require.NoError(t, err)
	assert.Equal(t, float64(2), got["attempt"])

	all, err := svc.ListOutputs(ctx, "exec-1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestOutputService_GetMissing(t *testing.T) {
	client := newTestClient(t)
	svc := NewOutputService(client.Client)

	_, err := svc.GetOutput(context.Background(), "exec-1", "no-step")
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindNotFound))
}

func TestOutputService_ListAndCleanup(t *testing.T) {
	client := newTestClient(t)
	svc := NewOutputService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.PutOutput(ctx, "exec-1", "triage", map[string]any{"a": float64(1)}))
	require.NoError(t, svc.PutOutput(ctx, "exec-1", "summarize", map[string]any{"b": float64(2)}))
	require.NoError(t, svc.PutOutput(ctx, "exec-2", "triage", map[string]any{"c": float64(3)}))

	all, err := svc.ListOutputs(ctx, "exec-1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Contains(t, all, "triage")
	assert.Contains(t, all, "summarize")

	n, err := svc.CleanupOutputsForExecutions(ctx, []string{"exec-1"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	remaining, err := svc.ListOutputs(ctx, "exec-2")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
