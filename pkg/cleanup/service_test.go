package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/config"
	"github.com/trinity-ai/trinity/pkg/database"
	"github.com/trinity-ai/trinity/pkg/models"
	"github.com/trinity-ai/trinity/pkg/services"
	testdb "github.com/trinity-ai/trinity/test/database"
)

func setupCleanup(t *testing.T) (*database.Client, *Service, *services.ExecutionService, *services.EventService, *services.OutputService, *services.AuditService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	execSvc := services.NewExecutionService(client.Client)
	eventSvc := services.NewEventService(client.Client)
	outputSvc := services.NewOutputService(client.Client)
	auditSvc := services.NewAuditService(client.Client, client.DB())

	cfg := &config.RetentionConfig{
		ExecutionRetentionDays: 90,
		CleanupInterval:        time.Hour,
	}
	svc := NewService(cfg, execSvc, eventSvc, outputSvc, auditSvc)
	return client, svc, execSvc, eventSvc, outputSvc, auditSvc
}

func seedExecution(t *testing.T, execSvc *services.ExecutionService, completedAt time.Time) *models.ProcessExecution {
	t.Helper()
	def := &models.ProcessDefinition{
		ID:      uuid.New().String(),
		Name:    "retention-proc",
		Version: "1.0.0",
		Steps: []models.StepDefinition{
			{
				ID:   "work",
				Kind: models.StepAgentTask,
				AgentTask: &models.AgentTaskConfig{
					AgentName:       "worker",
					MessageTemplate: "do it",
				},
			},
		},
		CreatedBy: "alice",
	}
	exec := models.NewExecution(uuid.New().String(), def, nil,
		models.TriggeredBy{Kind: models.TriggerManual, Actor: "alice"}, completedAt.Add(-time.Minute))
	require.NoError(t, exec.Start(completedAt.Add(-time.Minute)))
	require.NoError(t, exec.Fail(models.KindInternalError, "boom", completedAt))
	require.NoError(t, execSvc.CreateExecution(context.Background(), exec))
	return exec
}

func TestService_PurgesExpiredExecutionsWithDependents(t *testing.T) {
	_, svc, execSvc, eventSvc, outputSvc, _ := setupCleanup(t)
	ctx := context.Background()

	old := seedExecution(t, execSvc, time.Now().AddDate(0, 0, -120))
	require.NoError(t, outputSvc.PutOutput(ctx, old.ID, "work", map[string]any{"x": float64(1)}))

	recent := seedExecution(t, execSvc, time.Now())
	require.NoError(t, outputSvc.PutOutput(ctx, recent.ID, "work", map[string]any{"x": float64(2)}))

	svc.runAll(ctx)

	_, err := execSvc.GetExecution(ctx, old.ID)
	assert.True(t, models.IsKind(err, models.KindNotFound))

	oldEvents, err := eventSvc.ListEvents(ctx, old.ID)
	require.NoError(t, err)
	assert.Empty(t, oldEvents)

	oldOutputs, err := outputSvc.ListOutputs(ctx, old.ID)
	require.NoError(t, err)
	assert.Empty(t, oldOutputs)

	_, err = execSvc.GetExecution(ctx, recent.ID)
	require.NoError(t, err)
	recentEvents, err := eventSvc.ListEvents(ctx, recent.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, recentEvents)
}

func TestService_PreservesOpenExecutions(t *testing.T) {
	_, svc, execSvc, _, _, _ := setupCleanup(t)
	ctx := context.Background()

	def := &models.ProcessDefinition{
		ID:      uuid.New().String(),
		Name:    "retention-proc",
		Version: "1.0.0",
		Steps: []models.StepDefinition{
			{
				ID:   "work",
				Kind: models.StepAgentTask,
				AgentTask: &models.AgentTaskConfig{
					AgentName:       "worker",
					MessageTemplate: "do it",
				},
			},
		},
		CreatedBy: "alice",
	}
	// Old but still running: retention must not touch it.
	exec := models.NewExecution(uuid.New().String(), def, nil,
		models.TriggeredBy{Kind: models.TriggerManual, Actor: "alice"}, time.Now().AddDate(0, 0, -120))
	require.NoError(t, exec.Start(time.Now().AddDate(0, 0, -120)))
	require.NoError(t, execSvc.CreateExecution(ctx, exec))

	svc.runAll(ctx)

	_, err := execSvc.GetExecution(ctx, exec.ID)
	require.NoError(t, err)
}

func TestService_CleansUpExpiredAudit(t *testing.T) {
	_, svc, _, _, _, auditSvc := setupCleanup(t)
	ctx := context.Background()

	expired := &models.AuditEntry{
		ID:            uuid.New().String(),
		Timestamp:     time.Now().AddDate(0, 0, -400),
		Actor:         "alice",
		Action:        "execution.triggered",
		ResourceType:  "execution",
		ResourceID:    "exec-1",
		RetentionDays: 365,
	}
	require.NoError(t, auditSvc.AppendAudit(ctx, expired))

	kept := &models.AuditEntry{
		ID:            uuid.New().String(),
		Timestamp:     time.Now().AddDate(0, 0, -400),
		Actor:         "bob",
		Action:        "approval.decided",
		ResourceType:  "execution",
		ResourceID:    "exec-1",
		RetentionDays: 730,
	}
	require.NoError(t, auditSvc.AppendAudit(ctx, kept))

	svc.runAll(ctx)

	_, err := auditSvc.GetAuditEntry(ctx, expired.ID)
	assert.True(t, models.IsKind(err, models.KindNotFound))
	_, err = auditSvc.GetAuditEntry(ctx, kept.ID)
	require.NoError(t, err)
}
