// Code generated by ent, DO NOT EDIT.

package processexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the processexecution type in the database.
	Label = "process_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldProcessID holds the string denoting the process_id field in the database.
	FieldProcessID = "process_id"
	// FieldProcessName holds the string denoting the process_name field in the database.
	FieldProcessName = "process_name"
	// FieldProcessVersion holds the string denoting the process_version field in the database.
	FieldProcessVersion = "process_version"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTriggeredBy holds the string denoting the triggered_by field in the database.
	FieldTriggeredBy = "triggered_by"
	// FieldInputData holds the string denoting the input_data field in the database.
	FieldInputData = "input_data"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldTotalCost holds the string denoting the total_cost field in the database.
	FieldTotalCost = "total_cost"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// FieldOwnerTeam holds the string denoting the owner_team field in the database.
	FieldOwnerTeam = "owner_team"
	// FieldOwnerUser holds the string denoting the owner_user field in the database.
	FieldOwnerUser = "owner_user"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// Table holds the table name of the processexecution in the database.
	Table = "process_executions"
)

// Columns holds all SQL columns for processexecution fields.
var Columns = []string{
	FieldID,
	FieldProcessID,
	FieldProcessName,
	FieldProcessVersion,
	FieldStatus,
	FieldTriggeredBy,
	FieldInputData,
	FieldOutput,
	FieldStartedAt,
	FieldCompletedAt,
	FieldTotalCost,
	FieldSteps,
	FieldOwnerTeam,
	FieldOwnerUser,
	FieldError,
	FieldErrorKind,
	FieldSeq,
	FieldUpdatedAt,
	FieldPodID,
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

var (
	// DefaultTotalCost holds the default value on creation for the "total_cost" field.
	DefaultTotalCost float64
	// DefaultSeq holds the default value on creation for the "seq" field.
	DefaultSeq int64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusPaused, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("processexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ProcessExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProcessID orders the results by the process_id field.
func ByProcessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessID, opts...).ToFunc()
}

// ByProcessName orders the results by the process_name field.
func ByProcessName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessName, opts...).ToFunc()
}

// ByProcessVersion orders the results by the process_version field.
func ByProcessVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessVersion, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByTotalCost orders the results by the total_cost field.
func ByTotalCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCost, opts...).ToFunc()
}

// ByOwnerTeam orders the results by the owner_team field.
func ByOwnerTeam(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerTeam, opts...).ToFunc()
}

// ByOwnerUser orders the results by the owner_user field.
func ByOwnerUser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerUser, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}
