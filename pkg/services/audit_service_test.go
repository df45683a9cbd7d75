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

func testAuditEntry(actor, action string, age time.Duration, retentionDays int) *models.AuditEntry {
	return &models.AuditEntry{
		ID:            uuid.New().String(),
		Timestamp:     time.Now().Add(-age).UTC().Truncate(time.Millisecond),
		Actor:         actor,
		Action:        action,
		ResourceType:  "execution",
		ResourceID:    "exec-1",
		Details:       map[string]any{"reason": "test"},
		IP:            "10.0.0.1",
		UserAgent:     "curl/8.0",
		RetentionDays: retentionDays,
	}
}

func TestAuditService_AppendAndGet(t *testing.T) {
	client := newTestClient(t)
	svc := NewAuditService(client.Client, client.DB())
	ctx := context.Background()

	entry := testAuditEntry("alice", "execution.cancelled", 0, 365)
	require.NoError(t, svc.AppendAudit(ctx, entry))

	got, err := svc.GetAuditEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Actor)
	assert.Equal(t, "execution.cancelled", got.Action)
	assert.Equal(t, map[string]any{"reason": "test"}, got.Details)
	assert.Equal(t, 365, got.RetentionDays)
}

func TestAuditService_ListFilters(t *testing.T) {
	client := newTestClient(t)
	svc := NewAuditService(client.Client, client.DB())
	ctx := context.Background()

	require.NoError(t, svc.AppendAudit(ctx, testAuditEntry("alice", "process.published", time.Hour, 365)))
	require.NoError(t, svc.AppendAudit(ctx, testAuditEntry("bob", "approval.decided", time.Minute, 730)))

	byActor, err := svc.ListAuditEntries(ctx, models.AuditFilter{Actor: "alice"}, 0, 0)
	require.NoError(t, err)
	require.Len(t, byActor, 1)
	assert.Equal(t, "process.published", byActor[0].Action)

	byAction, err := svc.ListAuditEntries(ctx, models.AuditFilter{Action: "approval.decided"}, 0, 0)
	require.NoError(t, err)
	require.Len(t, byAction, 1)
	assert.Equal(t, "bob", byAction[0].Actor)

	since := time.Now().Add(-10 * time.Minute)
	recent, err := svc.ListAuditEntries(ctx, models.AuditFilter{Since: &since}, 0, 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "bob", recent[0].Actor)

	// Newest first
	all, err := svc.ListAuditEntries(ctx, models.AuditFilter{}, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "bob", all[0].Actor)
}

func TestAuditService_CleanupHonorsPerRowRetention(t *testing.T) {
	client := newTestClient(t)
	svc := NewAuditService(client.Client, client.DB())
	ctx := context.Background()

	expired := testAuditEntry("alice", "execution.triggered", 400*24*time.Hour, 365)
	require.NoError(t, svc.AppendAudit(ctx, expired))

	// Same age, longer retention: must survive.
	decision := testAuditEntry("bob", "approval.decided", 400*24*time.Hour, 730)
	require.NoError(t, svc.AppendAudit(ctx, decision))

	fresh := testAuditEntry("carol", "execution.triggered", time.Hour, 365)
	require.NoError(t, svc.AppendAudit(ctx, fresh))

	n, err := svc.CleanupExpiredAudit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.GetAuditEntry(ctx, expired.ID)
	assert.True(t, models.IsKind(err, models.KindNotFound))

	_, err = svc.GetAuditEntry(ctx, decision.ID)
	require.NoError(t, err)
	_, err = svc.GetAuditEntry(ctx, fresh.ID)
	require.NoError(t, err)
}
