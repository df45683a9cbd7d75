// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trinity-ai/trinity/ent/schedule"
)

// Schedule is the model entity for the Schedule schema.
type Schedule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProcessID holds the value of the "process_id" field.
	ProcessID string `json:"process_id,omitempty"`
	// ProcessName holds the value of the "process_name" field.
	ProcessName string `json:"process_name,omitempty"`
	// Cron holds the value of the "cron" field.
	Cron string `json:"cron,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// LastFiredAt holds the value of the "last_fired_at" field.
	LastFiredAt *time.Time `json:"last_fired_at,omitempty"`
	// NextFireAt holds the value of the "next_fire_at" field.
	NextFireAt time.Time `json:"next_fire_at,omitempty"`
	// OwnerUser holds the value of the "owner_user" field.
	OwnerUser string `json:"owner_user,omitempty"`
	// OwnerTeam holds the value of the "owner_team" field.
	OwnerTeam string `json:"owner_team,omitempty"`
	// Input holds the value of the "input" field.
	Input map[string]interface{} `json:"input,omitempty"`
	// Fire lock; empty when unlocked
	LockToken    string `json:"lock_token,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Schedule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case schedule.FieldInput:
			values[i] = new([]byte)
		case schedule.FieldEnabled:
			values[i] = new(sql.NullBool)
		case schedule.FieldID, schedule.FieldProcessID, schedule.FieldProcessName, schedule.FieldCron, schedule.FieldTimezone, schedule.FieldOwnerUser, schedule.FieldOwnerTeam, schedule.FieldLockToken:
			values[i] = new(sql.NullString)
		case schedule.FieldLastFiredAt, schedule.FieldNextFireAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Schedule fields.
func (_m *Schedule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case schedule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case schedule.FieldProcessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field process_id", values[i])
			} else if value.Valid {
				_m.ProcessID = value.String
			}
		case schedule.FieldProcessName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field process_name", values[i])
			} else if value.Valid {
				_m.ProcessName = value.String
			}
		case schedule.FieldCron:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cron", values[i])
			} else if value.Valid {
				_m.Cron = value.String
			}
		case schedule.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case schedule.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case schedule.FieldLastFiredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_fired_at", values[i])
			} else if value.Valid {
				_m.LastFiredAt = new(time.Time)
				*_m.LastFiredAt = value.Time
			}
		case schedule.FieldNextFireAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_fire_at", values[i])
			} else if value.Valid {
				_m.NextFireAt = value.Time
			}
		case schedule.FieldOwnerUser:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_user", values[i])
			} else if value.Valid {
				_m.OwnerUser = value.String
			}
		case schedule.FieldOwnerTeam:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_team", values[i])
			} else if value.Valid {
				_m.OwnerTeam = value.String
			}
		case schedule.FieldInput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Input); err != nil {
					return fmt.Errorf("unmarshal field input: %w", err)
				}
			}
		case schedule.FieldLockToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lock_token", values[i])
			} else if value.Valid {
				_m.LockToken = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Schedule.
// This includes values selected through modifiers, order, etc.
func (_m *Schedule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Schedule.
// Note that you need to call Schedule.Unwrap() before calling this method if this Schedule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Schedule) Update() *ScheduleUpdateOne {
	return NewScheduleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Schedule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Schedule) Unwrap() *Schedule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Schedule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Schedule) String() string {
	var builder strings.Builder
	builder.WriteString("Schedule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("process_id=")
	builder.WriteString(_m.ProcessID)
	builder.WriteString(", ")
	builder.WriteString("process_name=")
	builder.WriteString(_m.ProcessName)
	builder.WriteString(", ")
	builder.WriteString("cron=")
	builder.WriteString(_m.Cron)
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	if v := _m.LastFiredAt; v != nil {
		builder.WriteString("last_fired_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("next_fire_at=")
	builder.WriteString(_m.NextFireAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("owner_user=")
	builder.WriteString(_m.OwnerUser)
	builder.WriteString(", ")
	builder.WriteString("owner_team=")
	builder.WriteString(_m.OwnerTeam)
	builder.WriteString(", ")
	builder.WriteString("input=")
	builder.WriteString(fmt.Sprintf("%v", _m.Input))
	builder.WriteString(", ")
	builder.WriteString("lock_token=")
	builder.WriteString(_m.LockToken)
	builder.WriteByte(')')
	return builder.String()
}

// Schedules is a parsable slice of Schedule.
type Schedules []*Schedule
