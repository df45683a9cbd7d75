// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trinity-ai/trinity/ent/schedule"
)

// ScheduleCreate is the builder for creating a Schedule entity.
type ScheduleCreate struct {
	config
	mutation *ScheduleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProcessID sets the "process_id" field.
func (_c *ScheduleCreate) SetProcessID(v string) *ScheduleCreate {
	_c.mutation.SetProcessID(v)
	return _c
}

// SetProcessName sets the "process_name" field.
func (_c *ScheduleCreate) SetProcessName(v string) *ScheduleCreate {
	_c.mutation.SetProcessName(v)
	return _c
}

// SetCron sets the "cron" field.
func (_c *ScheduleCreate) SetCron(v string) *ScheduleCreate {
	_c.mutation.SetCron(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *ScheduleCreate) SetTimezone(v string) *ScheduleCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableTimezone(v *string) *ScheduleCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ScheduleCreate) SetEnabled(v bool) *ScheduleCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableEnabled(v *bool) *ScheduleCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_c *ScheduleCreate) SetLastFiredAt(v time.Time) *ScheduleCreate {
	_c.mutation.SetLastFiredAt(v)
	return _c
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableLastFiredAt(v *time.Time) *ScheduleCreate {
	if v != nil {
		_c.SetLastFiredAt(*v)
	}
	return _c
}

// SetNextFireAt sets the "next_fire_at" field.
func (_c *ScheduleCreate) SetNextFireAt(v time.Time) *ScheduleCreate {
	_c.mutation.SetNextFireAt(v)
	return _c
}

// SetOwnerUser sets the "owner_user" field.
func (_c *ScheduleCreate) SetOwnerUser(v string) *ScheduleCreate {
	_c.mutation.SetOwnerUser(v)
	return _c
}

// SetOwnerTeam sets the "owner_team" field.
func (_c *ScheduleCreate) SetOwnerTeam(v string) *ScheduleCreate {
	_c.mutation.SetOwnerTeam(v)
	return _c
}

// SetNillableOwnerTeam sets the "owner_team" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableOwnerTeam(v *string) *ScheduleCreate {
	if v != nil {
		_c.SetOwnerTeam(*v)
	}
	return _c
}

// SetInput sets the "input" field.
func (_c *ScheduleCreate) SetInput(v map[string]interface{}) *ScheduleCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetLockToken sets the "lock_token" field.
func (_c *ScheduleCreate) SetLockToken(v string) *ScheduleCreate {
	_c.mutation.SetLockToken(v)
	return _c
}

// SetNillableLockToken sets the "lock_token" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableLockToken(v *string) *ScheduleCreate {
	if v != nil {
		_c.SetLockToken(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduleCreate) SetID(v string) *ScheduleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScheduleMutation object of the builder.
func (_c *ScheduleCreate) Mutation() *ScheduleMutation {
	return _c.mutation
}

// Save creates the Schedule in the database.
func (_c *ScheduleCreate) Save(ctx context.Context) (*Schedule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduleCreate) SaveX(ctx context.Context) *Schedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduleCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := schedule.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.LockToken(); !ok {
		v := schedule.DefaultLockToken
		_c.mutation.SetLockToken(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduleCreate) check() error {
	if _, ok := _c.mutation.ProcessID(); !ok {
		return &ValidationError{Name: "process_id", err: errors.New(`ent: missing required field "Schedule.process_id"`)}
	}
	if _, ok := _c.mutation.ProcessName(); !ok {
		return &ValidationError{Name: "process_name", err: errors.New(`ent: missing required field "Schedule.process_name"`)}
	}
	if _, ok := _c.mutation.Cron(); !ok {
		return &ValidationError{Name: "cron", err: errors.New(`ent: missing required field "Schedule.cron"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Schedule.enabled"`)}
	}
	if _, ok := _c.mutation.NextFireAt(); !ok {
		return &ValidationError{Name: "next_fire_at", err: errors.New(`ent: missing required field "Schedule.next_fire_at"`)}
	}
	if _, ok := _c.mutation.OwnerUser(); !ok {
		return &ValidationError{Name: "owner_user", err: errors.New(`ent: missing required field "Schedule.owner_user"`)}
	}
	return nil
}

func (_c *ScheduleCreate) sqlSave(ctx context.Context) (*Schedule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Schedule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduleCreate) createSpec() (*Schedule, *sqlgraph.CreateSpec) {
	var (
		_node = &Schedule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schedule.Table, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProcessID(); ok {
		_spec.SetField(schedule.FieldProcessID, field.TypeString, value)
		_node.ProcessID = value
	}
	if value, ok := _c.mutation.ProcessName(); ok {
		_spec.SetField(schedule.FieldProcessName, field.TypeString, value)
		_node.ProcessName = value
	}
	if value, ok := _c.mutation.Cron(); ok {
		_spec.SetField(schedule.FieldCron, field.TypeString, value)
		_node.Cron = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(schedule.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(schedule.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.LastFiredAt(); ok {
		_spec.SetField(schedule.FieldLastFiredAt, field.TypeTime, value)
		_node.LastFiredAt = &value
	}
	if value, ok := _c.mutation.NextFireAt(); ok {
		_spec.SetField(schedule.FieldNextFireAt, field.TypeTime, value)
		_node.NextFireAt = value
	}
	if value, ok := _c.mutation.OwnerUser(); ok {
		_spec.SetField(schedule.FieldOwnerUser, field.TypeString, value)
		_node.OwnerUser = value
	}
	if value, ok := _c.mutation.OwnerTeam(); ok {
		_spec.SetField(schedule.FieldOwnerTeam, field.TypeString, value)
		_node.OwnerTeam = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(schedule.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.LockToken(); ok {
		_spec.SetField(schedule.FieldLockToken, field.TypeString, value)
		_node.LockToken = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Schedule.Create().
//		SetProcessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduleUpsert) {
//			SetProcessID(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduleCreate) OnConflict(opts ...sql.ConflictOption) *ScheduleUpsertOne {
	_c.conflict = opts
	return &ScheduleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduleCreate) OnConflictColumns(columns ...string) *ScheduleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduleUpsertOne{
		create: _c,
	}
}

type (
	// ScheduleUpsertOne is the builder for "upsert"-ing
	//  one Schedule node.
	ScheduleUpsertOne struct {
		create *ScheduleCreate
	}

	// ScheduleUpsert is the "OnConflict" setter.
	ScheduleUpsert struct {
		*sql.UpdateSet
	}
)

// SetProcessID sets the "process_id" field.
func (u *ScheduleUpsert) SetProcessID(v string) *ScheduleUpsert {
	u.Set(schedule.FieldProcessID, v)
	return u
}

// UpdateProcessID sets the "process_id" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateProcessID() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldProcessID)
	return u
}

// SetProcessName sets the "process_name" field.
func (u *ScheduleUpsert) SetProcessName(v string) *ScheduleUpsert {
	u.Set(schedule.FieldProcessName, v)
	return u
}

// UpdateProcessName sets the "process_name" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateProcessName() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldProcessName)
	return u
}

// SetCron sets the "cron" field.
func (u *ScheduleUpsert) SetCron(v string) *ScheduleUpsert {
	u.Set(schedule.FieldCron, v)
	return u
}

// UpdateCron sets the "cron" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateCron() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldCron)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *ScheduleUpsert) SetTimezone(v string) *ScheduleUpsert {
	u.Set(schedule.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateTimezone() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldTimezone)
	return u
}

// ClearTimezone clears the value of the "timezone" field.
func (u *ScheduleUpsert) ClearTimezone() *ScheduleUpsert {
	u.SetNull(schedule.FieldTimezone)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *ScheduleUpsert) SetEnabled(v bool) *ScheduleUpsert {
	u.Set(schedule.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateEnabled() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldEnabled)
	return u
}

// SetLastFiredAt sets the "last_fired_at" field.
func (u *ScheduleUpsert) SetLastFiredAt(v time.Time) *ScheduleUpsert {
	u.Set(schedule.FieldLastFiredAt, v)
	return u
}

// UpdateLastFiredAt sets the "last_fired_at" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateLastFiredAt() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldLastFiredAt)
	return u
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (u *ScheduleUpsert) ClearLastFiredAt() *ScheduleUpsert {
	u.SetNull(schedule.FieldLastFiredAt)
	return u
}

// SetNextFireAt sets the "next_fire_at" field.
func (u *ScheduleUpsert) SetNextFireAt(v time.Time) *ScheduleUpsert {
	u.Set(schedule.FieldNextFireAt, v)
	return u
}

// UpdateNextFireAt sets the "next_fire_at" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateNextFireAt() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldNextFireAt)
	return u
}

// SetOwnerUser sets the "owner_user" field.
func (u *ScheduleUpsert) SetOwnerUser(v string) *ScheduleUpsert {
	u.Set(schedule.FieldOwnerUser, v)
	return u
}

// UpdateOwnerUser sets the "owner_user" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateOwnerUser() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldOwnerUser)
	return u
}

// SetOwnerTeam sets the "owner_team" field.
func (u *ScheduleUpsert) SetOwnerTeam(v string) *ScheduleUpsert {
	u.Set(schedule.FieldOwnerTeam, v)
	return u
}

// UpdateOwnerTeam sets the "owner_team" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateOwnerTeam() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldOwnerTeam)
	return u
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (u *ScheduleUpsert) ClearOwnerTeam() *ScheduleUpsert {
	u.SetNull(schedule.FieldOwnerTeam)
	return u
}

// SetInput sets the "input" field.
func (u *ScheduleUpsert) SetInput(v map[string]interface{}) *ScheduleUpsert {
	u.Set(schedule.FieldInput, v)
	return u
}

// UpdateInput sets the "input" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateInput() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldInput)
	return u
}

// ClearInput clears the value of the "input" field.
func (u *ScheduleUpsert) ClearInput() *ScheduleUpsert {
	u.SetNull(schedule.FieldInput)
	return u
}

// SetLockToken sets the "lock_token" field.
func (u *ScheduleUpsert) SetLockToken(v string) *ScheduleUpsert {
	u.Set(schedule.FieldLockToken, v)
	return u
}

// UpdateLockToken sets the "lock_token" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateLockToken() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldLockToken)
	return u
}

// ClearLockToken clears the value of the "lock_token" field.
func (u *ScheduleUpsert) ClearLockToken() *ScheduleUpsert {
	u.SetNull(schedule.FieldLockToken)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(schedule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduleUpsertOne) UpdateNewValues() *ScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(schedule.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Schedule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScheduleUpsertOne) Ignore() *ScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduleUpsertOne) DoNothing() *ScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduleCreate.OnConflict
// documentation for more info.
func (u *ScheduleUpsertOne) Update(set func(*ScheduleUpsert)) *ScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetProcessID sets the "process_id" field.
func (u *ScheduleUpsertOne) SetProcessID(v string) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetProcessID(v)
	})
}

// UpdateProcessID sets the "process_id" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateProcessID() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateProcessID()
	})
}

// SetProcessName sets the "process_name" field.
func (u *ScheduleUpsertOne) SetProcessName(v string) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetProcessName(v)
	})
}

// UpdateProcessName sets the "process_name" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateProcessName() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateProcessName()
	})
}

// SetCron sets the "cron" field.
func (u *ScheduleUpsertOne) SetCron(v string) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetCron(v)
	})
}

// UpdateCron sets the "cron" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateCron() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateCron()
	})
}

// SetTimezone sets the "timezone" field.
func (u *ScheduleUpsertOne) SetTimezone(v string) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateTimezone() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateTimezone()
	})
}

// ClearTimezone clears the value of the "timezone" field.
func (u *ScheduleUpsertOne) ClearTimezone() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearTimezone()
	})
}

// SetEnabled sets the "enabled" field.
func (u *ScheduleUpsertOne) SetEnabled(v bool) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateEnabled() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateEnabled()
	})
}

// SetLastFiredAt sets the "last_fired_at" field.
func (u *ScheduleUpsertOne) SetLastFiredAt(v time.Time) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetLastFiredAt(v)
	})
}

// UpdateLastFiredAt sets the "last_fired_at" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateLastFiredAt() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateLastFiredAt()
	})
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (u *ScheduleUpsertOne) ClearLastFiredAt() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearLastFiredAt()
	})
}

// SetNextFireAt sets the "next_fire_at" field.
func (u *ScheduleUpsertOne) SetNextFireAt(v time.Time) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetNextFireAt(v)
	})
}

// UpdateNextFireAt sets the "next_fire_at" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateNextFireAt() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateNextFireAt()
	})
}

// SetOwnerUser sets the "owner_user" field.
func (u *ScheduleUpsertOne) SetOwnerUser(v string) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetOwnerUser(v)
	})
}

// UpdateOwnerUser sets the "owner_user" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateOwnerUser() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateOwnerUser()
	})
}

// SetOwnerTeam sets the "owner_team" field.
func (u *ScheduleUpsertOne) SetOwnerTeam(v string) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetOwnerTeam(v)
	})
}

// UpdateOwnerTeam sets the "owner_team" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateOwnerTeam() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateOwnerTeam()
	})
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (u *ScheduleUpsertOne) ClearOwnerTeam() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearOwnerTeam()
	})
}

// SetInput sets the "input" field.
func (u *ScheduleUpsertOne) SetInput(v map[string]interface{}) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetInput(v)
	})
}

// UpdateInput sets the "input" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateInput() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateInput()
	})
}

// ClearInput clears the value of the "input" field.
func (u *ScheduleUpsertOne) ClearInput() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearInput()
	})
}

// SetLockToken sets the "lock_token" field.
func (u *ScheduleUpsertOne) SetLockToken(v string) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetLockToken(v)
	})
}

// UpdateLockToken sets the "lock_token" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateLockToken() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateLockToken()
	})
}

// ClearLockToken clears the value of the "lock_token" field.
func (u *ScheduleUpsertOne) ClearLockToken() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearLockToken()
	})
}

// Exec executes the query.
func (u *ScheduleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScheduleUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ScheduleUpsertOne.ID is not supported by MySQL driver. Use ScheduleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScheduleUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScheduleCreateBulk is the builder for creating many Schedule entities in bulk.
type ScheduleCreateBulk struct {
	config
	err      error
	builders []*ScheduleCreate
	conflict []sql.ConflictOption
}

// Save creates the Schedule entities in the database.
func (_c *ScheduleCreateBulk) Save(ctx context.Context) ([]*Schedule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Schedule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScheduleCreateBulk) SaveX(ctx context.Context) []*Schedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Schedule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduleUpsert) {
//			SetProcessID(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScheduleUpsertBulk {
	_c.conflict = opts
	return &ScheduleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduleCreateBulk) OnConflictColumns(columns ...string) *ScheduleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduleUpsertBulk{
		create: _c,
	}
}

// ScheduleUpsertBulk is the builder for "upsert"-ing
// a bulk of Schedule nodes.
type ScheduleUpsertBulk struct {
	create *ScheduleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(schedule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduleUpsertBulk) UpdateNewValues() *ScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(schedule.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScheduleUpsertBulk) Ignore() *ScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduleUpsertBulk) DoNothing() *ScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduleCreateBulk.OnConflict
// documentation for more info.
func (u *ScheduleUpsertBulk) Update(set func(*ScheduleUpsert)) *ScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetProcessID sets the "process_id" field.
func (u *ScheduleUpsertBulk) SetProcessID(v string) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetProcessID(v)
	})
}

// UpdateProcessID sets the "process_id" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateProcessID() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateProcessID()
	})
}

// SetProcessName sets the "process_name" field.
func (u *ScheduleUpsertBulk) SetProcessName(v string) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetProcessName(v)
	})
}

// UpdateProcessName sets the "process_name" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateProcessName() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateProcessName()
	})
}

// SetCron sets the "cron" field.
func (u *ScheduleUpsertBulk) SetCron(v string) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetCron(v)
	})
}

// UpdateCron sets the "cron" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateCron() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateCron()
	})
}

// SetTimezone sets the "timezone" field.
func (u *ScheduleUpsertBulk) SetTimezone(v string) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateTimezone() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateTimezone()
	})
}

// ClearTimezone clears the value of the "timezone" field.
func (u *ScheduleUpsertBulk) ClearTimezone() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearTimezone()
	})
}

// SetEnabled sets the "enabled" field.
func (u *ScheduleUpsertBulk) SetEnabled(v bool) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateEnabled() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateEnabled()
	})
}

// SetLastFiredAt sets the "last_fired_at" field.
func (u *ScheduleUpsertBulk) SetLastFiredAt(v time.Time) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetLastFiredAt(v)
	})
}

// UpdateLastFiredAt sets the "last_fired_at" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateLastFiredAt() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateLastFiredAt()
	})
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (u *ScheduleUpsertBulk) ClearLastFiredAt() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearLastFiredAt()
	})
}

// SetNextFireAt sets the "next_fire_at" field.
func (u *ScheduleUpsertBulk) SetNextFireAt(v time.Time) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetNextFireAt(v)
	})
}

// UpdateNextFireAt sets the "next_fire_at" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateNextFireAt() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateNextFireAt()
	})
}

// SetOwnerUser sets the "owner_user" field.
func (u *ScheduleUpsertBulk) SetOwnerUser(v string) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetOwnerUser(v)
	})
}

// UpdateOwnerUser sets the "owner_user" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateOwnerUser() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateOwnerUser()
	})
}

// SetOwnerTeam sets the "owner_team" field.
func (u *ScheduleUpsertBulk) SetOwnerTeam(v string) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetOwnerTeam(v)
	})
}

// UpdateOwnerTeam sets the "owner_team" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateOwnerTeam() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateOwnerTeam()
	})
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (u *ScheduleUpsertBulk) ClearOwnerTeam() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearOwnerTeam()
	})
}

// SetInput sets the "input" field.
func (u *ScheduleUpsertBulk) SetInput(v map[string]interface{}) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetInput(v)
	})
}

// UpdateInput sets the "input" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateInput() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateInput()
	})
}

// ClearInput clears the value of the "input" field.
func (u *ScheduleUpsertBulk) ClearInput() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearInput()
	})
}

// SetLockToken sets the "lock_token" field.
func (u *ScheduleUpsertBulk) SetLockToken(v string) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetLockToken(v)
	})
}

// UpdateLockToken sets the "lock_token" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateLockToken() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateLockToken()
	})
}

// ClearLockToken clears the value of the "lock_token" field.
func (u *ScheduleUpsertBulk) ClearLockToken() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearLockToken()
	})
}

// Exec executes the query.
func (u *ScheduleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ScheduleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
