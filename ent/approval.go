// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trinity-ai/trinity/ent/approval"
)

// Approval is the model entity for the Approval schema.
type Approval struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID string `json:"execution_id,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID string `json:"step_id,omitempty"`
	// Approvers holds the value of the "approvers" field.
	Approvers []string `json:"approvers,omitempty"`
	// Deadline holds the value of the "deadline" field.
	Deadline time.Time `json:"deadline,omitempty"`
	// Status holds the value of the "status" field.
	Status approval.Status `json:"status,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Artifacts holds the value of the "artifacts" field.
	Artifacts []string `json:"artifacts,omitempty"`
	// DecidedBy holds the value of the "decided_by" field.
	DecidedBy string `json:"decided_by,omitempty"`
	// Comment holds the value of the "comment" field.
	Comment string `json:"comment,omitempty"`
	// DecisionAt holds the value of the "decision_at" field.
	DecisionAt *time.Time `json:"decision_at,omitempty"`
	// RequestedAt holds the value of the "requested_at" field.
	RequestedAt  time.Time `json:"requested_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Approval) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approval.FieldApprovers, approval.FieldArtifacts:
			values[i] = new([]byte)
		case approval.FieldID, approval.FieldExecutionID, approval.FieldStepID, approval.FieldStatus, approval.FieldTitle, approval.FieldDecidedBy, approval.FieldComment:
			values[i] = new(sql.NullString)
		case approval.FieldDeadline, approval.FieldDecisionAt, approval.FieldRequestedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Approval fields.
func (_m *Approval) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approval.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case approval.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case approval.FieldStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = value.String
			}
		case approval.FieldApprovers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field approvers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Approvers); err != nil {
					return fmt.Errorf("unmarshal field approvers: %w", err)
				}
			}
		case approval.FieldDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deadline", values[i])
			} else if value.Valid {
				_m.Deadline = value.Time
			}
		case approval.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = approval.Status(value.String)
			}
		case approval.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case approval.FieldArtifacts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field artifacts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Artifacts); err != nil {
					return fmt.Errorf("unmarshal field artifacts: %w", err)
				}
			}
		case approval.FieldDecidedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decided_by", values[i])
			} else if value.Valid {
				_m.DecidedBy = value.String
			}
		case approval.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				_m.Comment = value.String
			}
		case approval.FieldDecisionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field decision_at", values[i])
			} else if value.Valid {
				_m.DecisionAt = new(time.Time)
				*_m.DecisionAt = value.Time
			}
		case approval.FieldRequestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field requested_at", values[i])
			} else if value.Valid {
				_m.RequestedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Approval.
// This includes values selected through modifiers, order, etc.
func (_m *Approval) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Approval.
// Note that you need to call Approval.Unwrap() before calling this method if this Approval
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Approval) Update() *ApprovalUpdateOne {
	return NewApprovalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Approval entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Approval) Unwrap() *Approval {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Approval is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Approval) String() string {
	var builder strings.Builder
	builder.WriteString("Approval(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	builder.WriteString("step_id=")
	builder.WriteString(_m.StepID)
	builder.WriteString(", ")
	builder.WriteString("approvers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Approvers))
	builder.WriteString(", ")
	builder.WriteString("deadline=")
	builder.WriteString(_m.Deadline.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("artifacts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Artifacts))
	builder.WriteString(", ")
	builder.WriteString("decided_by=")
	builder.WriteString(_m.DecidedBy)
	builder.WriteString(", ")
	builder.WriteString("comment=")
	builder.WriteString(_m.Comment)
	builder.WriteString(", ")
	if v := _m.DecisionAt; v != nil {
		builder.WriteString("decision_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("requested_at=")
	builder.WriteString(_m.RequestedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Approvals is a parsable slice of Approval.
type Approvals []*Approval
