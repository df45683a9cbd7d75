// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trinity-ai/trinity/ent/processdefinition"
	"github.com/trinity-ai/trinity/pkg/models"
)

// ProcessDefinition is the model entity for the ProcessDefinition schema.
type ProcessDefinition struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Process name; unique together with version
	Name string `json:"name,omitempty"`
	// Version holds the value of the "version" field.
	Version string `json:"version,omitempty"`
	// Status holds the value of the "status" field.
	Status processdefinition.Status `json:"status,omitempty"`
	// Full step DAG; immutable once published
	Steps []models.StepDefinition `json:"steps,omitempty"`
	// Triggers holds the value of the "triggers" field.
	Triggers []models.Trigger `json:"triggers,omitempty"`
	// Output holds the value of the "output" field.
	Output *models.OutputConfig `json:"output,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// OwnerTeam holds the value of the "owner_team" field.
	OwnerTeam string `json:"owner_team,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// PublishedAt holds the value of the "published_at" field.
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// Per-process running instance cap; 0 uses the engine default
	MaxConcurrent int `json:"max_concurrent,omitempty"`
	// Cumulative execution cost cap; 0 is unlimited
	MaxCost float64 `json:"max_cost,omitempty"`
	// Agent queue priority: high, normal, low
	Priority string `json:"priority,omitempty"`
	// DataClassification holds the value of the "data_classification" field.
	DataClassification string `json:"data_classification,omitempty"`
	selectValues       sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessDefinition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processdefinition.FieldSteps, processdefinition.FieldTriggers, processdefinition.FieldOutput:
			values[i] = new([]byte)
		case processdefinition.FieldMaxCost:
			values[i] = new(sql.NullFloat64)
		case processdefinition.FieldMaxConcurrent:
			values[i] = new(sql.NullInt64)
		case processdefinition.FieldID, processdefinition.FieldName, processdefinition.FieldVersion, processdefinition.FieldStatus, processdefinition.FieldCreatedBy, processdefinition.FieldOwnerTeam, processdefinition.FieldPriority, processdefinition.FieldDataClassification:
			values[i] = new(sql.NullString)
		case processdefinition.FieldCreatedAt, processdefinition.FieldPublishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessDefinition fields.
func (_m *ProcessDefinition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processdefinition.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case processdefinition.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case processdefinition.FieldVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.String
			}
		case processdefinition.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = processdefinition.Status(value.String)
			}
		case processdefinition.FieldSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Steps); err != nil {
					return fmt.Errorf("unmarshal field steps: %w", err)
				}
			}
		case processdefinition.FieldTriggers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field triggers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Triggers); err != nil {
					return fmt.Errorf("unmarshal field triggers: %w", err)
				}
			}
		case processdefinition.FieldOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Output); err != nil {
					return fmt.Errorf("unmarshal field output: %w", err)
				}
			}
		case processdefinition.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case processdefinition.FieldOwnerTeam:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_team", values[i])
			} else if value.Valid {
				_m.OwnerTeam = value.String
			}
		case processdefinition.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case processdefinition.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case processdefinition.FieldMaxConcurrent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_concurrent", values[i])
			} else if value.Valid {
				_m.MaxConcurrent = int(value.Int64)
			}
		case processdefinition.FieldMaxCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_cost", values[i])
			} else if value.Valid {
				_m.MaxCost = value.Float64
			}
		case processdefinition.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = value.String
			}
		case processdefinition.FieldDataClassification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_classification", values[i])
			} else if value.Valid {
				_m.DataClassification = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessDefinition.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessDefinition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProcessDefinition.
// Note that you need to call ProcessDefinition.Unwrap() before calling this method if this ProcessDefinition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessDefinition) Update() *ProcessDefinitionUpdateOne {
	return NewProcessDefinitionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessDefinition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessDefinition) Unwrap() *ProcessDefinition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessDefinition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessDefinition) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessDefinition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(_m.Version)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteString(", ")
	builder.WriteString("triggers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Triggers))
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(fmt.Sprintf("%v", _m.Output))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("owner_team=")
	builder.WriteString(_m.OwnerTeam)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.PublishedAt; v != nil {
		builder.WriteString("published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("max_concurrent=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxConcurrent))
	builder.WriteString(", ")
	builder.WriteString("max_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxCost))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(_m.Priority)
	builder.WriteString(", ")
	builder.WriteString("data_classification=")
	builder.WriteString(_m.DataClassification)
	builder.WriteByte(')')
	return builder.String()
}

// ProcessDefinitions is a parsable slice of ProcessDefinition.
type ProcessDefinitions []*ProcessDefinition
