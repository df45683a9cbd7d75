package models

import "time"

// ApprovalStatus is the lifecycle status of an approval request.
type ApprovalStatus string

const (
	ApprovalPending          ApprovalStatus = "pending"
	ApprovalApproved         ApprovalStatus = "approved"
	ApprovalRejected         ApprovalStatus = "rejected"
	ApprovalChangesRequested ApprovalStatus = "changes_requested"
	ApprovalTimedOut         ApprovalStatus = "timed_out"
)

// Decided reports whether the approval has left the pending state.
func (s ApprovalStatus) Decided() bool { return s != ApprovalPending }

// Approval is a request for a human decision attached to a step.
type Approval struct {
	ID          string         `json:"id"`
	ExecutionID string         `json:"execution_id"`
	StepID      string         `json:"step_id"`
	Approvers   []string       `json:"approvers"`
	Deadline    time.Time      `json:"deadline"`
	Status      ApprovalStatus `json:"status"`
	Title       string         `json:"title,omitempty"`
	Artifacts   []string       `json:"artifacts,omitempty"`
	DecidedBy   string         `json:"decided_by,omitempty"`
	Comment     string         `json:"comment,omitempty"`
	DecisionAt  *time.Time     `json:"decision_at,omitempty"`
	RequestedAt time.Time      `json:"requested_at"`
}

// CanDecide reports whether the given identity is an eligible approver.
func (a *Approval) CanDecide(user string) bool {
	for _, ap := range a.Approvers {
		if ap == user {
			return true
		}
	}
	return false
}

// Decide applies a decision to a pending approval.
func (a *Approval) Decide(status ApprovalStatus, by, comment string, now time.Time) error {
	if a.Status.Decided() {
		return NewError(KindStateConflict, "approval %s already %s", a.ID, a.Status)
	}
	switch status {
	case ApprovalApproved, ApprovalRejected, ApprovalChangesRequested:
	default:
		return NewError(KindValidation, "invalid approval decision %q", status)
	}
	t := now
	a.Status = status
	a.DecidedBy = by
	a.Comment = comment
	a.DecisionAt = &t
	return nil
}

// MarkTimedOut transitions a pending approval past its deadline.
func (a *Approval) MarkTimedOut(now time.Time) bool {
	if a.Status.Decided() {
		return false
	}
	t := now
	a.Status = ApprovalTimedOut
	a.DecisionAt = &t
	return true
}
