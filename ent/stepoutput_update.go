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
	"github.com/trinity-ai/trinity/ent/stepoutput"
)

// StepOutputUpdate is the builder for updating StepOutput entities.
type StepOutputUpdate struct {
	config
	hooks    []Hook
	mutation *StepOutputMutation
}

// Where appends a list predicates to the StepOutputUpdate builder.
func (_u *StepOutputUpdate) Where(ps ...predicate.StepOutput) *StepOutputUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *StepOutputUpdate) SetExecutionID(v string) *StepOutputUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *StepOutputUpdate) SetNillableExecutionID(v *string) *StepOutputUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *StepOutputUpdate) SetStepID(v string) *StepOutputUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *StepOutputUpdate) SetNillableStepID(v *string) *StepOutputUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *StepOutputUpdate) SetOutput(v map[string]interface{}) *StepOutputUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StepOutputUpdate) SetCreatedAt(v time.Time) *StepOutputUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StepOutputUpdate) SetNillableCreatedAt(v *time.Time) *StepOutputUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the StepOutputMutation object of the builder.
func (_u *StepOutputUpdate) Mutation() *StepOutputMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepOutputUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepOutputUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepOutputUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepOutputUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StepOutputUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(stepoutput.Table, stepoutput.Columns, sqlgraph.NewFieldSpec(stepoutput.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(stepoutput.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(stepoutput.FieldStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(stepoutput.FieldOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stepoutput.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepoutput.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepOutputUpdateOne is the builder for updating a single StepOutput entity.
type StepOutputUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepOutputMutation
}

// SetExecutionID sets the "execution_id" field.
func (_u *StepOutputUpdateOne) SetExecutionID(v string) *StepOutputUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *StepOutputUpdateOne) SetNillableExecutionID(v *string) *StepOutputUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *StepOutputUpdateOne) SetStepID(v string) *StepOutputUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *StepOutputUpdateOne) SetNillableStepID(v *string) *StepOutputUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *StepOutputUpdateOne) SetOutput(v map[string]interface{}) *StepOutputUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StepOutputUpdateOne) SetCreatedAt(v time.Time) *StepOutputUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StepOutputUpdateOne) SetNillableCreatedAt(v *time.Time) *StepOutputUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the StepOutputMutation object of the builder.
func (_u *StepOutputUpdateOne) Mutation() *StepOutputMutation {
	return _u.mutation
}

// Where appends a list predicates to the StepOutputUpdate builder.
func (_u *StepOutputUpdateOne) Where(ps ...predicate.StepOutput) *StepOutputUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepOutputUpdateOne) Select(field string, fields ...string) *StepOutputUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StepOutput entity.
func (_u *StepOutputUpdateOne) Save(ctx context.Context) (*StepOutput, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepOutputUpdateOne) SaveX(ctx context.Context) *StepOutput {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepOutputUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepOutputUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StepOutputUpdateOne) sqlSave(ctx context.Context) (_node *StepOutput, err error) {
	_spec := sqlgraph.NewUpdateSpec(stepoutput.Table, stepoutput.Columns, sqlgraph.NewFieldSpec(stepoutput.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StepOutput.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stepoutput.FieldID)
		for _, f := range fields {
			if !stepoutput.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stepoutput.FieldID {
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
		_spec.SetField(stepoutput.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(stepoutput.FieldStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(stepoutput.FieldOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stepoutput.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &StepOutput{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepoutput.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
