// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trinity-ai/trinity/ent/predicate"
	"github.com/trinity-ai/trinity/ent/schedule"
)

// ScheduleUpdate is the builder for updating Schedule entities.
type ScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleMutation
}

// Where appends a list predicates to the ScheduleUpdate builder.
func (_u *ScheduleUpdate) Where(ps ...predicate.Schedule) *ScheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProcessID sets the "process_id" field.
func (_u *ScheduleUpdate) SetProcessID(v string) *ScheduleUpdate {
	_u.mutation.SetProcessID(v)
	return _u
}

// SetNillableProcessID sets the "process_id" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableProcessID(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetProcessID(*v)
	}
	return _u
}

// SetProcessName sets the "process_name" field.
func (_u *ScheduleUpdate) SetProcessName(v string) *ScheduleUpdate {
	_u.mutation.SetProcessName(v)
	return _u
}

// SetNillableProcessName sets the "process_name" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableProcessName(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetProcessName(*v)
	}
	return _u
}

// SetCron sets the "cron" field.
func (_u *ScheduleUpdate) SetCron(v string) *ScheduleUpdate {
	_u.mutation.SetCron(v)
	return _u
}

// SetNillableCron sets the "cron" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableCron(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetCron(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ScheduleUpdate) SetTimezone(v string) *ScheduleUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableTimezone(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// ClearTimezone clears the value of the "timezone" field.
func (_u *ScheduleUpdate) ClearTimezone() *ScheduleUpdate {
	_u.mutation.ClearTimezone()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ScheduleUpdate) SetEnabled(v bool) *ScheduleUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableEnabled(v *bool) *ScheduleUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_u *ScheduleUpdate) SetLastFiredAt(v time.Time) *ScheduleUpdate {
	_u.mutation.SetLastFiredAt(v)
	return _u
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableLastFiredAt(v *time.Time) *ScheduleUpdate {
	if v != nil {
		_u.SetLastFiredAt(*v)
	}
	return _u
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (_u *ScheduleUpdate) ClearLastFiredAt() *ScheduleUpdate {
	_u.mutation.ClearLastFiredAt()
	return _u
}

// SetNextFireAt sets the "next_fire_at" field.
func (_u *ScheduleUpdate) SetNextFireAt(v time.Time) *ScheduleUpdate {
	_u.mutation.SetNextFireAt(v)
	return _u
}

// SetNillableNextFireAt sets the "next_fire_at" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableNextFireAt(v *time.Time) *ScheduleUpdate {
	if v != nil {
		_u.SetNextFireAt(*v)
	}
	return _u
}

// SetOwnerUser sets the "owner_user" field.
func (_u *ScheduleUpdate) SetOwnerUser(v string) *ScheduleUpdate {
	_u.mutation.SetOwnerUser(v)
	return _u
}

// SetNillableOwnerUser sets the "owner_user" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableOwnerUser(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetOwnerUser(*v)
	}
	return _u
}

// SetOwnerTeam sets the "owner_team" field.
func (_u *ScheduleUpdate) SetOwnerTeam(v string) *ScheduleUpdate {
	_u.mutation.SetOwnerTeam(v)
	return _u
}

// SetNillableOwnerTeam sets the "owner_team" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableOwnerTeam(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetOwnerTeam(*v)
	}
	return _u
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (_u *ScheduleUpdate) ClearOwnerTeam() *ScheduleUpdate {
	_u.mutation.ClearOwnerTeam()
	return _u
}

// SetInput sets the "input" field.
func (_u *ScheduleUpdate) SetInput(v map[string]interface{}) *ScheduleUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *ScheduleUpdate) ClearInput() *ScheduleUpdate {
	_u.mutation.ClearInput()
	return _u
}

// SetLockToken sets the "lock_token" field.
func (_u *ScheduleUpdate) SetLockToken(v string) *ScheduleUpdate {
	_u.mutation.SetLockToken(v)
	return _u
}

// SetNillableLockToken sets the "lock_token" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableLockToken(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetLockToken(*v)
	}
	return _u
}

// ClearLockToken clears the value of the "lock_token" field.
func (_u *ScheduleUpdate) ClearLockToken() *ScheduleUpdate {
	_u.mutation.ClearLockToken()
	return _u
}

// Mutation returns the ScheduleMutation object of the builder.
func (_u *ScheduleUpdate) Mutation() *ScheduleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(schedule.Table, schedule.Columns, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProcessID(); ok {
		_spec.SetField(schedule.FieldProcessID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessName(); ok {
		_spec.SetField(schedule.FieldProcessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cron(); ok {
		_spec.SetField(schedule.FieldCron, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(schedule.FieldTimezone, field.TypeString, value)
	}
	if _u.mutation.TimezoneCleared() {
		_spec.ClearField(schedule.FieldTimezone, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(schedule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastFiredAt(); ok {
		_spec.SetField(schedule.FieldLastFiredAt, field.TypeTime, value)
	}
	if _u.mutation.LastFiredAtCleared() {
		_spec.ClearField(schedule.FieldLastFiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextFireAt(); ok {
		_spec.SetField(schedule.FieldNextFireAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OwnerUser(); ok {
		_spec.SetField(schedule.FieldOwnerUser, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerTeam(); ok {
		_spec.SetField(schedule.FieldOwnerTeam, field.TypeString, value)
	}
	if _u.mutation.OwnerTeamCleared() {
		_spec.ClearField(schedule.FieldOwnerTeam, field.TypeString)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(schedule.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(schedule.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.LockToken(); ok {
		_spec.SetField(schedule.FieldLockToken, field.TypeString, value)
	}
	if _u.mutation.LockTokenCleared() {
		_spec.ClearField(schedule.FieldLockToken, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduleUpdateOne is the builder for updating a single Schedule entity.
type ScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleMutation
}

// SetProcessID sets the "process_id" field.
func (_u *ScheduleUpdateOne) SetProcessID(v string) *ScheduleUpdateOne {
	_u.mutation.SetProcessID(v)
	return _u
}

// SetNillableProcessID sets the "process_id" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableProcessID(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetProcessID(*v)
	}
	return _u
}

// SetProcessName sets the "process_name" field.
func (_u *ScheduleUpdateOne) SetProcessName(v string) *ScheduleUpdateOne {
	_u.mutation.SetProcessName(v)
	return _u
}

// SetNillableProcessName sets the "process_name" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableProcessName(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetProcessName(*v)
	}
	return _u
}

// SetCron sets the "cron" field.
func (_u *ScheduleUpdateOne) SetCron(v string) *ScheduleUpdateOne {
	_u.mutation.SetCron(v)
	return _u
}

// SetNillableCron sets the "cron" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableCron(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetCron(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ScheduleUpdateOne) SetTimezone(v string) *ScheduleUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableTimezone(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// ClearTimezone clears the value of the "timezone" field.
func (_u *ScheduleUpdateOne) ClearTimezone() *ScheduleUpdateOne {
	_u.mutation.ClearTimezone()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ScheduleUpdateOne) SetEnabled(v bool) *ScheduleUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableEnabled(v *bool) *ScheduleUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_u *ScheduleUpdateOne) SetLastFiredAt(v time.Time) *ScheduleUpdateOne {
	_u.mutation.SetLastFiredAt(v)
	return _u
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableLastFiredAt(v *time.Time) *ScheduleUpdateOne {
	if v != nil {
		_u.SetLastFiredAt(*v)
	}
	return _u
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (_u *ScheduleUpdateOne) ClearLastFiredAt() *ScheduleUpdateOne {
	_u.mutation.ClearLastFiredAt()
	return _u
}

// SetNextFireAt sets the "next_fire_at" field.
func (_u *ScheduleUpdateOne) SetNextFireAt(v time.Time) *ScheduleUpdateOne {
	_u.mutation.SetNextFireAt(v)
	return _u
}

// SetNillableNextFireAt sets the "next_fire_at" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableNextFireAt(v *time.Time) *ScheduleUpdateOne {
	if v != nil {
		_u.SetNextFireAt(*v)
	}
	return _u
}

// SetOwnerUser sets the "owner_user" field.
func (_u *ScheduleUpdateOne) SetOwnerUser(v string) *ScheduleUpdateOne {
	_u.mutation.SetOwnerUser(v)
	return _u
}

// SetNillableOwnerUser sets the "owner_user" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableOwnerUser(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetOwnerUser(*v)
	}
	return _u
}

// SetOwnerTeam sets the "owner_team" field.
func (_u *ScheduleUpdateOne) SetOwnerTeam(v string) *ScheduleUpdateOne {
	_u.mutation.SetOwnerTeam(v)
	return _u
}

// SetNillableOwnerTeam sets the "owner_team" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableOwnerTeam(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetOwnerTeam(*v)
	}
	return _u
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (_u *ScheduleUpdateOne) ClearOwnerTeam() *ScheduleUpdateOne {
	_u.mutation.ClearOwnerTeam()
	return _u
}

// SetInput sets the "input" field.
func (_u *ScheduleUpdateOne) SetInput(v map[string]interface{}) *ScheduleUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *ScheduleUpdateOne) ClearInput() *ScheduleUpdateOne {
	_u.mutation.ClearInput()
	return _u
}

// SetLockToken sets the "lock_token" field.
func (_u *ScheduleUpdateOne) SetLockToken(v string) *ScheduleUpdateOne {
	_u.mutation.SetLockToken(v)
	return _u
}

// SetNillableLockToken sets the "lock_token" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableLockToken(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetLockToken(*v)
	}
	return _u
}

// ClearLockToken clears the value of the "lock_token" field.
func (_u *ScheduleUpdateOne) ClearLockToken() *ScheduleUpdateOne {
	_u.mutation.ClearLockToken()
	return _u
}

// Mutation returns the ScheduleMutation object of the builder.
func (_u *ScheduleUpdateOne) Mutation() *ScheduleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduleUpdate builder.
func (_u *ScheduleUpdateOne) Where(ps ...predicate.Schedule) *ScheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduleUpdateOne) Select(field string, fields ...string) *ScheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Schedule entity.
func (_u *ScheduleUpdateOne) Save(ctx context.Context) (*Schedule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleUpdateOne) SaveX(ctx context.Context) *Schedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScheduleUpdateOne) sqlSave(ctx context.Context) (_node *Schedule, err error) {
	_spec := sqlgraph.NewUpdateSpec(schedule.Table, schedule.Columns, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Schedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schedule.FieldID)
		for _, f := range fields {
			if !schedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schedule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProcessID(); ok {
		_spec.SetField(schedule.FieldProcessID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessName(); ok {
		_spec.SetField(schedule.FieldProcessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cron(); ok {
		_spec.SetField(schedule.FieldCron, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(schedule.FieldTimezone, field.TypeString, value)
	}
	if _u.mutation.TimezoneCleared() {
		_spec.ClearField(schedule.FieldTimezone, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(schedule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastFiredAt(); ok {
		_spec.SetField(schedule.FieldLastFiredAt, field.TypeTime, value)
	}
	if _u.mutation.LastFiredAtCleared() {
		_spec.ClearField(schedule.FieldLastFiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextFireAt(); ok {
		_spec.SetField(schedule.FieldNextFireAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OwnerUser(); ok {
		_spec.SetField(schedule.FieldOwnerUser, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerTeam(); ok {
		_spec.SetField(schedule.FieldOwnerTeam, field.TypeString, value)
	}
	if _u.mutation.OwnerTeamCleared() {
		_spec.ClearField(schedule.FieldOwnerTeam, field.TypeString)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(schedule.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(schedule.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.LockToken(); ok {
		_spec.SetField(schedule.FieldLockToken, field.TypeString, value)
	}
	if _u.mutation.LockTokenCleared() {
		_spec.ClearField(schedule.FieldLockToken, field.TypeString)
	}
	_node = &Schedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
