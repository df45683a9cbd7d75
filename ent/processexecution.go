// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trinity-ai/trinity/ent/processexecution"
	"github.com/trinity-ai/trinity/pkg/models"
)

// ProcessExecution is the model entity for the ProcessExecution schema.
type ProcessExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProcessID holds the value of the "process_id" field.
	ProcessID string `json:"process_id,omitempty"`
	// ProcessName holds the value of the "process_name" field.
	ProcessName string `json:"process_name,omitempty"`
	// ProcessVersion holds the value of the "process_version" field.
	ProcessVersion string `json:"process_version,omitempty"`
	// Status holds the value of the "status" field.
	Status processexecution.Status `json:"status,omitempty"`
	// TriggeredBy holds the value of the "triggered_by" field.
	TriggeredBy models.TriggeredBy `json:"triggered_by,omitempty"`
	// InputData holds the value of the "input_data" field.
	InputData map[string]interface{} `json:"input_data,omitempty"`
	// Output holds the value of the "output" field.
	Output map[string]interface{} `json:"output,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// TotalCost holds the value of the "total_cost" field.
	TotalCost float64 `json:"total_cost,omitempty"`
	// Per-step runtime state
	Steps map[string]*models.StepExecution `json:"steps,omitempty"`
	// OwnerTeam holds the value of the "owner_team" field.
	OwnerTeam string `json:"owner_team,omitempty"`
	// OwnerUser holds the value of the "owner_user" field.
	OwnerUser string `json:"owner_user,omitempty"`
	// Error holds the value of the "error" field.
	Error string `json:"error,omitempty"`
	// ErrorKind holds the value of the "error_kind" field.
	ErrorKind string `json:"error_kind,omitempty"`
	// Last event sequence; doubles as the optimistic-concurrency token
	Seq int64 `json:"seq,omitempty"`
	// Heartbeat for the recovery scan
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// For multi-replica coordination
	PodID        string `json:"pod_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processexecution.FieldTriggeredBy, processexecution.FieldInputData, processexecution.FieldOutput, processexecution.FieldSteps:
			values[i] = new([]byte)
		case processexecution.FieldTotalCost:
			values[i] = new(sql.NullFloat64)
		case processexecution.FieldSeq:
			values[i] = new(sql.NullInt64)
		case processexecution.FieldID, processexecution.FieldProcessID, processexecution.FieldProcessName, processexecution.FieldProcessVersion, processexecution.FieldStatus, processexecution.FieldOwnerTeam, processexecution.FieldOwnerUser, processexecution.FieldError, processexecution.FieldErrorKind, processexecution.FieldPodID:
			values[i] = new(sql.NullString)
		case processexecution.FieldStartedAt, processexecution.FieldCompletedAt, processexecution.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessExecution fields.
func (_m *ProcessExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case processexecution.FieldProcessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field process_id", values[i])
			} else if value.Valid {
				_m.ProcessID = value.String
			}
		case processexecution.FieldProcessName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field process_name", values[i])
			} else if value.Valid {
				_m.ProcessName = value.String
			}
		case processexecution.FieldProcessVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field process_version", values[i])
			} else if value.Valid {
				_m.ProcessVersion = value.String
			}
		case processexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = processexecution.Status(value.String)
			}
		case processexecution.FieldTriggeredBy:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_by", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TriggeredBy); err != nil {
					return fmt.Errorf("unmarshal field triggered_by: %w", err)
				}
			}
		case processexecution.FieldInputData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InputData); err != nil {
					return fmt.Errorf("unmarshal field input_data: %w", err)
				}
			}
		case processexecution.FieldOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Output); err != nil {
					return fmt.Errorf("unmarshal field output: %w", err)
				}
			}
		case processexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case processexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case processexecution.FieldTotalCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost", values[i])
			} else if value.Valid {
				_m.TotalCost = value.Float64
			}
		case processexecution.FieldSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Steps); err != nil {
					return fmt.Errorf("unmarshal field steps: %w", err)
				}
			}
		case processexecution.FieldOwnerTeam:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_team", values[i])
			} else if value.Valid {
				_m.OwnerTeam = value.String
			}
		case processexecution.FieldOwnerUser:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_user", values[i])
			} else if value.Valid {
				_m.OwnerUser = value.String
			}
		case processexecution.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = value.String
			}
		case processexecution.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = value.String
			}
		case processexecution.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = value.Int64
			}
		case processexecution.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case processexecution.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessExecution.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProcessExecution.
// Note that you need to call ProcessExecution.Unwrap() before calling this method if this ProcessExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessExecution) Update() *ProcessExecutionUpdateOne {
	return NewProcessExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessExecution) Unwrap() *ProcessExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessExecution) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("process_id=")
	builder.WriteString(_m.ProcessID)
	builder.WriteString(", ")
	builder.WriteString("process_name=")
	builder.WriteString(_m.ProcessName)
	builder.WriteString(", ")
	builder.WriteString("process_version=")
	builder.WriteString(_m.ProcessVersion)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("triggered_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggeredBy))
	builder.WriteString(", ")
	builder.WriteString("input_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputData))
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(fmt.Sprintf("%v", _m.Output))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCost))
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteString(", ")
	builder.WriteString("owner_team=")
	builder.WriteString(_m.OwnerTeam)
	builder.WriteString(", ")
	builder.WriteString("owner_user=")
	builder.WriteString(_m.OwnerUser)
	builder.WriteString(", ")
	builder.WriteString("error=")
	builder.WriteString(_m.Error)
	builder.WriteString(", ")
	builder.WriteString("error_kind=")
	builder.WriteString(_m.ErrorKind)
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("pod_id=")
	builder.WriteString(_m.PodID)
	builder.WriteByte(')')
	return builder.String()
}

// ProcessExecutions is a parsable slice of ProcessExecution.
type ProcessExecutions []*ProcessExecution
