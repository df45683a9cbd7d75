package services

import (
	"context"
	"slices"
	"time"

	"github.com/trinity-ai/trinity/ent"
	"github.com/trinity-ai/trinity/ent/approval"
	"github.com/trinity-ai/trinity/pkg/models"
)

// ApprovalService persists approval requests and decisions.
type ApprovalService struct {
	client *ent.Client
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(client *ent.Client) *ApprovalService {
	return &ApprovalService{client: client}
}

// CreateApproval inserts a new approval request.
func (s *ApprovalService) CreateApproval(httpCtx context.Context, a *models.Approval) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.Approval.Create().
		SetID(a.ID).
		SetExecutionID(a.ExecutionID).
		SetStepID(a.StepID).
		SetApprovers(a.Approvers).
		SetDeadline(a.Deadline).
		SetStatus(approval.Status(a.Status)).
		SetTitle(a.Title).
		SetRequestedAt(a.RequestedAt)
	if a.Artifacts != nil {
		create.SetArtifacts(a.Artifacts)
	}

	if _, err := create.Save(ctx); err != nil {
		return translate(err, "failed to create approval %s", a.ID)
	}
	return nil
}

// GetApproval retrieves an approval by id.
func (s *ApprovalService) GetApproval(ctx context.Context, id string) (*models.Approval, error) {
	row, err := s.client.Approval.Get(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to get approval %s", id)
	}
	return approvalFromRow(row), nil
}

// SaveApproval writes back a decision or timeout. Only pending approvals may
// transition, so the write is guarded on the stored status.
func (s *ApprovalService) SaveApproval(httpCtx context.Context, a *models.Approval) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Approval.Update().
		Where(
			approval.IDEQ(a.ID),
			approval.StatusEQ(approval.StatusPending),
		).
		SetStatus(approval.Status(a.Status)).
		SetDecidedBy(a.DecidedBy).
		SetComment(a.Comment)
	if a.DecisionAt != nil {
		update.SetDecisionAt(*a.DecisionAt)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return translate(err, "failed to save approval %s", a.ID)
	}
	if n == 0 {
		exists, err := s.client.Approval.Query().
			Where(approval.IDEQ(a.ID)).
			Exist(ctx)
		if err != nil {
			return translate(err, "failed to save approval %s", a.ID)
		}
		if !exists {
			return models.NewError(models.KindNotFound, "approval %s not found", a.ID)
		}
		return models.NewError(models.KindStateConflict, "approval %s already decided", a.ID)
	}
	return nil
}

// ListApprovalsForExecution returns all approvals raised by one execution,
// oldest first.
func (s *ApprovalService) ListApprovalsForExecution(ctx context.Context, executionID string) ([]*models.Approval, error) {
	rows, err := s.client.Approval.Query().
		Where(approval.ExecutionIDEQ(executionID)).
		Order(ent.Asc(approval.FieldRequestedAt)).
		All(ctx)
	if err != nil {
		return nil, translate(err, "failed to list approvals for execution %s", executionID)
	}
	approvals := make([]*models.Approval, 0, len(rows))
	for _, row := range rows {
		approvals = append(approvals, approvalFromRow(row))
	}
	return approvals, nil
}

// ListPendingForApprover returns pending approvals the given user may decide,
// nearest deadline first. The approver list is JSON, so membership is
// filtered after the status query.
func (s *ApprovalService) ListPendingForApprover(ctx context.Context, user string) ([]*models.Approval, error) {
	rows, err := s.client.Approval.Query().
		Where(approval.StatusEQ(approval.StatusPending)).
		Order(ent.Asc(approval.FieldDeadline)).
		All(ctx)
	if err != nil {
		return nil, translate(err, "failed to list pending approvals")
	}
	var approvals []*models.Approval
	for _, row := range rows {
		if slices.Contains(row.Approvers, user) {
			approvals = append(approvals, approvalFromRow(row))
		}
	}
	return approvals, nil
}

func approvalFromRow(row *ent.Approval) *models.Approval {
	return &models.Approval{
		ID:          row.ID,
		ExecutionID: row.ExecutionID,
		StepID:      row.StepID,
		Approvers:   row.Approvers,
		Deadline:    row.Deadline,
		Status:      models.ApprovalStatus(row.Status),
		Title:       row.Title,
		Artifacts:   row.Artifacts,
		DecidedBy:   row.DecidedBy,
		Comment:     row.Comment,
		DecisionAt:  row.DecisionAt,
		RequestedAt: row.RequestedAt,
	}
}
