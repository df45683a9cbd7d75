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
	"github.com/trinity-ai/trinity/ent/event"
	"github.com/trinity-ai/trinity/ent/predicate"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *EventUpdate) SetExecutionID(v string) *EventUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableExecutionID(v *string) *EventUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetProcessID sets the "process_id" field.
func (_u *EventUpdate) SetProcessID(v string) *EventUpdate {
	_u.mutation.SetProcessID(v)
	return _u
}

// SetNillableProcessID sets the "process_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableProcessID(v *string) *EventUpdate {
	if v != nil {
		_u.SetProcessID(*v)
	}
	return _u
}

// ClearProcessID clears the value of the "process_id" field.
func (_u *EventUpdate) ClearProcessID() *EventUpdate {
	_u.mutation.ClearProcessID()
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *EventUpdate) SetStepID(v string) *EventUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableStepID(v *string) *EventUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *EventUpdate) ClearStepID() *EventUpdate {
	_u.mutation.ClearStepID()
	return _u
}

// SetType sets the "type" field.
func (_u *EventUpdate) SetType(v string) *EventUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *EventUpdate) SetNillableType(v *string) *EventUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *EventUpdate) SetSeq(v int64) *EventUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSeq(v *int64) *EventUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *EventUpdate) AddSeq(v int64) *EventUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *EventUpdate) SetTimestamp(v time.Time) *EventUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *EventUpdate) SetNillableTimestamp(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *EventUpdate) SetPayload(v map[string]interface{}) *EventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *EventUpdate) ClearPayload() *EventUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(event.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessID(); ok {
		_spec.SetField(event.FieldProcessID, field.TypeString, value)
	}
	if _u.mutation.ProcessIDCleared() {
		_spec.ClearField(event.FieldProcessID, field.TypeString)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(event.FieldStepID, field.TypeString, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(event.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(event.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(event.FieldSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(event.FieldSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(event.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(event.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(event.FieldPayload, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetExecutionID sets the "execution_id" field.
func (_u *EventUpdateOne) SetExecutionID(v string) *EventUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableExecutionID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetProcessID sets the "process_id" field.
func (_u *EventUpdateOne) SetProcessID(v string) *EventUpdateOne {
	_u.mutation.SetProcessID(v)
	return _u
}

// SetNillableProcessID sets the "process_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableProcessID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetProcessID(*v)
	}
	return _u
}

// ClearProcessID clears the value of the "process_id" field.
func (_u *EventUpdateOne) ClearProcessID() *EventUpdateOne {
	_u.mutation.ClearProcessID()
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *EventUpdateOne) SetStepID(v string) *EventUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableStepID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *EventUpdateOne) ClearStepID() *EventUpdateOne {
	_u.mutation.ClearStepID()
	return _u
}

// SetType sets the "type" field.
func (_u *EventUpdateOne) SetType(v string) *EventUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableType(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *EventUpdateOne) SetSeq(v int64) *EventUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSeq(v *int64) *EventUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *EventUpdateOne) AddSeq(v int64) *EventUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *EventUpdateOne) SetTimestamp(v time.Time) *EventUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableTimestamp(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *EventUpdateOne) SetPayload(v map[string]interface{}) *EventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *EventUpdateOne) ClearPayload() *EventUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
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
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(event.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessID(); ok {
		_spec.SetField(event.FieldProcessID, field.TypeString, value)
	}
	if _u.mutation.ProcessIDCleared() {
		_spec.ClearField(event.FieldProcessID, field.TypeString)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(event.FieldStepID, field.TypeString, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(event.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(event.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(event.FieldSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(event.FieldSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(event.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(event.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(event.FieldPayload, field.TypeJSON)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
