package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/trinity-ai/trinity/pkg/database"
	"github.com/trinity-ai/trinity/pkg/models"
	testdb "github.com/trinity-ai/trinity/test/database"
)

func newTestClient(t *testing.T) *database.Client {
	t.Helper()
	return testdb.NewTestClient(t)
}

// testDefinition builds a published two-step process for persistence tests.
func testDefinition(name string) *models.ProcessDefinition {
	now := time.Now().UTC().Truncate(time.Millisecond)
	def := &models.ProcessDefinition{
		ID:      uuid.New().String(),
		Name:    name,
		Version: "1.0.0",
		Status:  models.DefinitionDraft,
		Steps: []models.StepDefinition{
			{
				ID:   "triage",
				Kind: models.StepAgentTask,
				AgentTask: &models.AgentTaskConfig{
					AgentName:       "triage-agent",
					MessageTemplate: "Triage {{input.subject}}",
				},
			},
			{
				ID:           "summarize",
				Kind:         models.StepAgentTask,
				Dependencies: []string{"triage"},
				AgentTask: &models.AgentTaskConfig{
					AgentName:       "writer-agent",
					MessageTemplate: "Summarize {{steps.triage.output.content}}",
				},
			},
		},
		CreatedBy: "alice",
		OwnerTeam: "platform",
		CreatedAt: now,
	}
	return def
}

// testExecution builds a started execution with its process.started event
// still buffered.
func testExecution(def *models.ProcessDefinition) *models.ProcessExecution {
	now := time.Now().UTC().Truncate(time.Millisecond)
	exec := models.NewExecution(uuid.New().String(), def, map[string]any{"subject": "disk alert"},
		models.TriggeredBy{Kind: models.TriggerManual, Actor: "alice"}, now)
	_ = exec.Start(now)
	return exec
}
