package services

import (
	"context"
	"fmt"
	"time"

	"github.com/trinity-ai/trinity/ent"
	"github.com/trinity-ai/trinity/ent/processexecution"
	"github.com/trinity-ai/trinity/pkg/models"
)

// ExecutionService persists process executions and their event outbox.
//
// Create and Save write the execution row and its pending event rows in one
// transaction, so an event row exists if and only if the state change that
// produced it was committed. Save enforces optimistic concurrency on the
// sequence token: the row's stored seq must equal the aggregate's seq before
// the buffered events were emitted.
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// ExecutionFilter narrows execution list queries.
type ExecutionFilter struct {
	Status      models.ExecutionStatus
	ProcessName string
	OwnerUser   string
	Limit       int
	Offset      int
}

var nonTerminalStatuses = []processexecution.Status{
	processexecution.StatusPending,
	processexecution.StatusRunning,
	processexecution.StatusPaused,
}

// CreateExecution inserts a new execution row together with its buffered
// events.
func (s *ExecutionService) CreateExecution(httpCtx context.Context, exec *models.ProcessExecution) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	create := tx.ProcessExecution.Create().
		SetID(exec.ID).
		SetProcessID(exec.ProcessID).
		SetProcessName(exec.ProcessName).
		SetProcessVersion(exec.ProcessVersion).
		SetStatus(processexecution.Status(exec.Status)).
		SetTriggeredBy(exec.TriggeredBy).
		SetStartedAt(exec.StartedAt).
		SetTotalCost(exec.TotalCost).
		SetSteps(exec.Steps).
		SetOwnerTeam(exec.OwnerTeam).
		SetOwnerUser(exec.OwnerUser).
		SetError(exec.Error).
		SetErrorKind(string(exec.ErrorKind)).
		SetSeq(exec.Seq)
	if exec.InputData != nil {
		create.SetInputData(exec.InputData)
	}
	if exec.Output != nil {
		create.SetOutput(exec.Output)
	}
	if exec.CompletedAt != nil {
		create.SetCompletedAt(*exec.CompletedAt)
	}

	if _, err := create.Save(ctx); err != nil {
		return translate(err, "failed to create execution %s", exec.ID)
	}

	if err := insertEvents(ctx, tx, exec.PendingEvents()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit execution %s: %w", exec.ID, err)
	}
	return nil
}

// SaveExecution writes back the mutable state of an execution and appends its
// buffered events. Returns a state_conflict error when the row was modified
// since this aggregate was loaded.
func (s *ExecutionService) SaveExecution(httpCtx context.Context, exec *models.ProcessExecution) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The aggregate's seq already includes the buffered events; the stored
	// row must still be at the seq from before they were emitted.
	expectedSeq := exec.Seq - int64(len(exec.PendingEvents()))

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	update := tx.ProcessExecution.Update().
		Where(
			processexecution.IDEQ(exec.ID),
			processexecution.SeqEQ(expectedSeq),
		).
		SetStatus(processexecution.Status(exec.Status)).
		SetTotalCost(exec.TotalCost).
		SetSteps(exec.Steps).
		SetError(exec.Error).
		SetErrorKind(string(exec.ErrorKind)).
		SetSeq(exec.Seq).
		SetUpdatedAt(time.Now())
	if exec.Output != nil {
		update.SetOutput(exec.Output)
	}
	if exec.CompletedAt != nil {
		update.SetCompletedAt(*exec.CompletedAt)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return translate(err, "failed to save execution %s", exec.ID)
	}
	if n == 0 {
		exists, err := tx.ProcessExecution.Query().
			Where(processexecution.IDEQ(exec.ID)).
			Exist(ctx)
		if err != nil {
			return translate(err, "failed to save execution %s", exec.ID)
		}
		if !exists {
			return models.NewError(models.KindNotFound, "execution %s not found", exec.ID)
		}
		return models.NewError(models.KindStateConflict,
			"execution %s was modified concurrently (expected seq %d)", exec.ID, expectedSeq)
	}

	if err := insertEvents(ctx, tx, exec.PendingEvents()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit execution %s: %w", exec.ID, err)
	}
	return nil
}

// GetExecution retrieves an execution by id.
func (s *ExecutionService) GetExecution(ctx context.Context, id string) (*models.ProcessExecution, error) {
	row, err := s.client.ProcessExecution.Get(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to get execution %s", id)
	}
	return executionFromRow(row), nil
}

// CountRunning counts executions that hold a concurrency slot (any
// non-terminal status).
func (s *ExecutionService) CountRunning(ctx context.Context) (int, error) {
	n, err := s.client.ProcessExecution.Query().
		Where(processexecution.StatusIn(nonTerminalStatuses...)).
		Count(ctx)
	if err != nil {
		return 0, translate(err, "failed to count running executions")
	}
	return n, nil
}

// CountRunningForProcess counts non-terminal executions of one process.
func (s *ExecutionService) CountRunningForProcess(ctx context.Context, processName string) (int, error) {
	n, err := s.client.ProcessExecution.Query().
		Where(
			processexecution.ProcessNameEQ(processName),
			processexecution.StatusIn(nonTerminalStatuses...),
		).
		Count(ctx)
	if err != nil {
		return 0, translate(err, "failed to count running executions of %q", processName)
	}
	return n, nil
}

// ListExecutions returns executions matching the filter, newest first.
func (s *ExecutionService) ListExecutions(ctx context.Context, filter ExecutionFilter) ([]*models.ProcessExecution, error) {
	q := s.client.ProcessExecution.Query()
	if filter.Status != "" {
		q = q.Where(processexecution.StatusEQ(processexecution.Status(filter.Status)))
	}
	if filter.ProcessName != "" {
		q = q.Where(processexecution.ProcessNameEQ(filter.ProcessName))
	}
	if filter.OwnerUser != "" {
		q = q.Where(processexecution.OwnerUserEQ(filter.OwnerUser))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	rows, err := q.Order(ent.Desc(processexecution.FieldStartedAt)).All(ctx)
	if err != nil {
		return nil, translate(err, "failed to list executions")
	}
	execs := make([]*models.ProcessExecution, 0, len(rows))
	for _, row := range rows {
		execs = append(execs, executionFromRow(row))
	}
	return execs, nil
}

// ListNonTerminalExecutions returns all executions the recovery scan must
// consider.
func (s *ExecutionService) ListNonTerminalExecutions(ctx context.Context) ([]*models.ProcessExecution, error) {
	rows, err := s.client.ProcessExecution.Query().
		Where(processexecution.StatusIn(nonTerminalStatuses...)).
		Order(ent.Asc(processexecution.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, translate(err, "failed to list non-terminal executions")
	}
	execs := make([]*models.ProcessExecution, 0, len(rows))
	for _, row := range rows {
		execs = append(execs, executionFromRow(row))
	}
	return execs, nil
}

// PurgeTerminalExecutions deletes terminal executions that completed before
// the cutoff and returns their ids so the caller can purge dependent rows.
func (s *ExecutionService) PurgeTerminalExecutions(httpCtx context.Context, cutoff time.Time) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rows, err := s.client.ProcessExecution.Query().
		Where(
			processexecution.StatusIn(
				processexecution.StatusCompleted,
				processexecution.StatusFailed,
				processexecution.StatusCancelled,
			),
			processexecution.CompletedAtLT(cutoff),
		).
		Select(processexecution.FieldID).
		All(ctx)
	if err != nil {
		return nil, translate(err, "failed to query expired executions")
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	if _, err := s.client.ProcessExecution.Delete().
		Where(processexecution.IDIn(ids...)).
		Exec(ctx); err != nil {
		return nil, translate(err, "failed to purge expired executions")
	}
	return ids, nil
}

// insertEvents appends the outbox rows inside the caller's transaction.
func insertEvents(ctx context.Context, tx *ent.Tx, events []models.Event) error {
	if len(events) == 0 {
		return nil
	}
	creates := make([]*ent.EventCreate, 0, len(events))
	for _, evt := range events {
		create := tx.Event.Create().
			SetExecutionID(evt.ExecutionID).
			SetProcessID(evt.ProcessID).
			SetStepID(evt.StepID).
			SetType(evt.Type).
			SetSeq(evt.Seq).
			SetTimestamp(evt.Timestamp)
		if evt.Payload != nil {
			create.SetPayload(evt.Payload)
		}
		creates = append(creates, create)
	}
	if _, err := tx.Event.CreateBulk(creates...).Save(ctx); err != nil {
		return translate(err, "failed to insert %d events", len(events))
	}
	return nil
}

func executionFromRow(row *ent.ProcessExecution) *models.ProcessExecution {
	return &models.ProcessExecution{
		ID:             row.ID,
		ProcessID:      row.ProcessID,
		ProcessName:    row.ProcessName,
		ProcessVersion: row.ProcessVersion,
		Status:         models.ExecutionStatus(row.Status),
		TriggeredBy:    row.TriggeredBy,
		InputData:      row.InputData,
		Output:         row.Output,
		StartedAt:      row.StartedAt,
		CompletedAt:    row.CompletedAt,
		TotalCost:      row.TotalCost,
		Steps:          row.Steps,
		OwnerTeam:      row.OwnerTeam,
		OwnerUser:      row.OwnerUser,
		Error:          row.Error,
		ErrorKind:      models.Kind(row.ErrorKind),
		Seq:            row.Seq,
	}
}
