package engine

import (
	"context"

	"github.com/trinity-ai/trinity/pkg/models"
)

// ExecutionStore persists executions. Create and Save must write the
// execution state and its pending events in one transaction; Save must
// reject concurrent modification via the execution's sequence token.
// Implemented by services.ExecutionService.
type ExecutionStore interface {
	CreateExecution(ctx context.Context, exec *models.ProcessExecution) error
	SaveExecution(ctx context.Context, exec *models.ProcessExecution) error
	GetExecution(ctx context.Context, id string) (*models.ProcessExecution, error)
	CountRunning(ctx context.Context) (int, error)
	CountRunningForProcess(ctx context.Context, processName string) (int, error)
}

// DefinitionStore reads process definitions.
type DefinitionStore interface {
	GetDefinition(ctx context.Context, id string) (*models.ProcessDefinition, error)
	GetPublishedDefinitionByName(ctx context.Context, name string) (*models.ProcessDefinition, error)
}

// ApprovalStore persists approval requests.
type ApprovalStore interface {
	CreateApproval(ctx context.Context, a *models.Approval) error
	GetApproval(ctx context.Context, id string) (*models.Approval, error)
	SaveApproval(ctx context.Context, a *models.Approval) error
}

// OutputStore stores step outputs keyed by (execution_id, step_id).
type OutputStore interface {
	PutOutput(ctx context.Context, executionID, stepID string, output map[string]any) error
}

// Stores bundles the persistence dependencies of the engine.
type Stores struct {
	Executions  ExecutionStore
	Definitions DefinitionStore
	Approvals   ApprovalStore
	Outputs     OutputStore
}
