package services

import (
	"context"
	"time"

	"github.com/trinity-ai/trinity/ent"
	"github.com/trinity-ai/trinity/ent/stepoutput"
)

// OutputService stores step outputs keyed by (execution_id, step_id).
// Outputs are written on step completion and read by downstream steps'
// template rendering and by the API.
type OutputService struct {
	client *ent.Client
}

// NewOutputService creates a new OutputService
func NewOutputService(client *ent.Client) *OutputService {
	return &OutputService{client: client}
}

// PutOutput upserts the output of one step. A retried step overwrites its
// previous attempt's output.
func (s *OutputService) PutOutput(httpCtx context.Context, executionID, stepID string, output map[string]any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.StepOutput.Create().
		SetExecutionID(executionID).
		SetStepID(stepID).
		SetOutput(output).
		OnConflictColumns(stepoutput.FieldExecutionID, stepoutput.FieldStepID).
		UpdateOutput().
		Exec(ctx)
	if err != nil {
		return translate(err, "failed to put output for %s/%s", executionID, stepID)
	}
	return nil
}

// GetOutput retrieves the output of one step.
func (s *OutputService) GetOutput(ctx context.Context, executionID, stepID string) (map[string]any, error) {
	row, err := s.client.StepOutput.Query().
		Where(
			stepoutput.ExecutionIDEQ(executionID),
			stepoutput.StepIDEQ(stepID),
		).
		Only(ctx)
	if err != nil {
		return nil, translate(err, "failed to get output for %s/%s", executionID, stepID)
	}
	return row.Output, nil
}

// ListOutputs returns all step outputs of an execution keyed by step id.
func (s *OutputService) ListOutputs(ctx context.Context, executionID string) (map[string]map[string]any, error) {
	rows, err := s.client.StepOutput.Query().
		Where(stepoutput.ExecutionIDEQ(executionID)).
		All(ctx)
	if err != nil {
		return nil, translate(err, "failed to list outputs for execution %s", executionID)
	}
	outputs := make(map[string]map[string]any, len(rows))
	for _, row := range rows {
		outputs[row.StepID] = row.Output
	}
	return outputs, nil
}

// CleanupOutputsForExecutions deletes the stored outputs of the given
// executions. Called by retention cleanup after the executions are purged.
func (s *OutputService) CleanupOutputsForExecutions(httpCtx context.Context, executionIDs []string) (int, error) {
	if len(executionIDs) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.StepOutput.Delete().
		Where(stepoutput.ExecutionIDIn(executionIDs...)).
		Exec(ctx)
	if err != nil {
		return 0, translate(err, "failed to cleanup outputs")
	}
	return n, nil
}
