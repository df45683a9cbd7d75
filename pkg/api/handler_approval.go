package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/trinity-ai/trinity/pkg/auth"
	"github.com/trinity-ai/trinity/pkg/models"
)

// listPendingApprovalsHandler returns the caller's approval inbox.
func (s *Server) listPendingApprovalsHandler(c *echo.Context) error {
	id := identity(c)
	approvals, err := s.approvals.ListPendingForApprover(c.Request().Context(), id.User)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"approvals": approvals, "count": len(approvals)})
}

// decideApprovalHandler records a decision and resumes the suspended step.
// First decision wins; later attempts get 409.
func (s *Server) decideApprovalHandler(c *echo.Context) error {
	var req decideApprovalRequest
	if err := c.Bind(&req); err != nil {
		return respondValidationError(c, "invalid request body")
	}
	status, ok := parseDecision(req.Decision)
	if !ok {
		return respondValidationError(c, "decision must be approved, rejected or changes_requested")
	}

	ctx := c.Request().Context()
	approval, err := s.approvals.GetApproval(ctx, c.Param("approval_id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := s.authorize(c, auth.PermApprovalDecide, auth.Resource{
		Type:      "approval",
		ID:        approval.ID,
		Approvers: approval.Approvers,
	}); err != nil {
		return respondDomainError(c, err)
	}

	id := identity(c)
	if err := s.engine.SubmitApproval(ctx, approval.ID, status, id.User, req.Comment); err != nil {
		return respondDomainError(c, err)
	}

	s.recorder.Record(ctx, id.User, "approval.decided", "approval", approval.ID, map[string]any{
		"execution_id": approval.ExecutionID,
		"step_id":      approval.StepID,
		"decision":     string(status),
	}, requestMeta(c))

	decided, err := s.approvals.GetApproval(ctx, approval.ID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, decided)
}

func parseDecision(raw string) (models.ApprovalStatus, bool) {
	switch models.ApprovalStatus(raw) {
	case models.ApprovalApproved, models.ApprovalRejected, models.ApprovalChangesRequested:
		return models.ApprovalStatus(raw), true
	}
	return "", false
}
