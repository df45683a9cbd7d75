package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
)

func testApproval(executionID string) *models.Approval {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &models.Approval{
		ID:          uuid.New().String(),
		ExecutionID: executionID,
		StepID:      "sign-off",
		Approvers:   []string{"alice", "bob"},
		Deadline:    now.Add(24 * time.Hour),
		Status:      models.ApprovalPending,
		Title:       "Deploy to production",
		Artifacts:   []string{"steps.plan.output.diff"},
		RequestedAt: now,
	}
}

func TestApprovalService_CreateAndGet(t *testing.T) {
	client := newTestClient(t)
	svc := NewApprovalService(client.Client)
	ctx := context.Background()

	a := testApproval("exec-1")
	require.NoError(t, svc.CreateApproval(ctx, a))

	got, err := svc.GetApproval(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalPending, got.Status)
	assert.Equal(t, []string{"alice", "bob"}, got.Approvers)
	assert.Equal(t, "Deploy to production", got.Title)
	assert.Nil(t, got.DecisionAt)
}

func TestApprovalService_SaveDecision(t *testing.T) {
	client := newTestClient(t)
	svc := NewApprovalService(client.Client)
	ctx := context.Background()

	a := testApproval("exec-1")
	require.NoError(t, svc.CreateApproval(ctx, a))

	require.NoError(t, a.Decide(models.ApprovalApproved, "bob", "lgtm", time.Now()))
	require.NoError(t, svc.SaveApproval(ctx, a))

	got, err := svc.GetApproval(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, got.Status)
	assert.Equal(t, "bob", got.DecidedBy)
	assert.Equal(t, "lgtm", got.Comment)
	require.NotNil(t, got.DecisionAt)
}

func TestApprovalService_SaveRejectsDoubleDecision(t *testing.T) {
	client := newTestClient(t)
	svc := NewApprovalService(client.Client)
	ctx := context.Background()

	a := testApproval("exec-1")
	require.NoError(t, svc.CreateApproval(ctx, a))

	first, err := svc.GetApproval(ctx, a.ID)
	require.NoError(t, err)
	second, err := svc.GetApproval(ctx, a.ID)
	require.NoError(t, err)

	require.NoError(t, first.Decide(models.ApprovalApproved, "alice", "", time.Now()))
	require.NoError(t, svc.SaveApproval(ctx, first))

	require.NoError(t, second.Decide(models.ApprovalRejected, "bob", "", time.Now()))
	err = svc.SaveApproval(ctx, second)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindStateConflict))

	got, err := svc.GetApproval(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, got.Status, "first decision wins")
}

func TestApprovalService_ListForExecution(t *testing.T) {
	client := newTestClient(t)
	svc := NewApprovalService(client.Client)
	ctx := context.Background()

	a := testApproval("exec-1")
	require.NoError(t, svc.CreateApproval(ctx, a))
	b := testApproval("exec-1")
	b.StepID = "final-check"
	b.RequestedAt = a.RequestedAt.Add(time.Minute)
	require.NoError(t, svc.CreateApproval(ctx, b))
	other := testApproval("exec-2")
	require.NoError(t, svc.CreateApproval(ctx, other))

	got, err := svc.ListApprovalsForExecution(ctx, "exec-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "sign-off", got[0].StepID)
	assert.Equal(t, "final-check", got[1].StepID)
}

func TestApprovalService_ListPendingForApprover(t *testing.T) {
	client := newTestClient(t)
	svc := NewApprovalService(client.Client)
	ctx := context.Background()

	mine := testApproval("exec-1")
	require.NoError(t, svc.CreateApproval(ctx, mine))

	notMine := testApproval("exec-2")
	notMine.Approvers = []string{"carol"}
	require.NoError(t, svc.CreateApproval(ctx, notMine))

	decided := testApproval("exec-3")
	require.NoError(t, svc.CreateApproval(ctx, decided))
	require.NoError(t, decided.Decide(models.ApprovalApproved, "alice", "", time.Now()))
	require.NoError(t, svc.SaveApproval(ctx, decided))

	got, err := svc.ListPendingForApprover(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)
}
