// Code generated by ent, DO NOT EDIT.

package approval

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the approval type in the database.
	Label = "approval"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "approval_id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldStepID holds the string denoting the step_id field in the database.
	FieldStepID = "step_id"
	// FieldApprovers holds the string denoting the approvers field in the database.
	FieldApprovers = "approvers"
	// FieldDeadline holds the string denoting the deadline field in the database.
	FieldDeadline = "deadline"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldArtifacts holds the string denoting the artifacts field in the database.
	FieldArtifacts = "artifacts"
	// FieldDecidedBy holds the string denoting the decided_by field in the database.
	FieldDecidedBy = "decided_by"
	// FieldComment holds the string denoting the comment field in the database.
	FieldComment = "comment"
	// FieldDecisionAt holds the string denoting the decision_at field in the database.
	FieldDecisionAt = "decision_at"
	// FieldRequestedAt holds the string denoting the requested_at field in the database.
	FieldRequestedAt = "requested_at"
	// Table holds the table name of the approval in the database.
	Table = "approvals"
)

// Columns holds all SQL columns for approval fields.
var Columns = []string{
	FieldID,
	FieldExecutionID,
	FieldStepID,
	FieldApprovers,
	FieldDeadline,
	FieldStatus,
	FieldTitle,
	FieldArtifacts,
	FieldDecidedBy,
	FieldComment,
	FieldDecisionAt,
	FieldRequestedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending          Status = "pending"
	StatusApproved         Status = "approved"
	StatusRejected         Status = "rejected"
	StatusChangesRequested Status = "changes_requested"
	StatusTimedOut         Status = "timed_out"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusChangesRequested, StatusTimedOut:
		return nil
	default:
		return fmt.Errorf("approval: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Approval queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByStepID orders the results by the step_id field.
func ByStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepID, opts...).ToFunc()
}

// ByDeadline orders the results by the deadline field.
func ByDeadline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeadline, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDecidedBy orders the results by the decided_by field.
func ByDecidedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecidedBy, opts...).ToFunc()
}

// ByComment orders the results by the comment field.
func ByComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComment, opts...).ToFunc()
}

// ByDecisionAt orders the results by the decision_at field.
func ByDecisionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisionAt, opts...).ToFunc()
}

// ByRequestedAt orders the results by the requested_at field.
func ByRequestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedAt, opts...).ToFunc()
}
