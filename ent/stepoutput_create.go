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
	"github.com/trinity-ai/trinity/ent/stepoutput"
)

// StepOutputCreate is the builder for creating a StepOutput entity.
type StepOutputCreate struct {
	config
	mutation *StepOutputMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExecutionID sets the "execution_id" field.
func (_c *StepOutputCreate) SetExecutionID(v string) *StepOutputCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *StepOutputCreate) SetStepID(v string) *StepOutputCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *StepOutputCreate) SetOutput(v map[string]interface{}) *StepOutputCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StepOutputCreate) SetCreatedAt(v time.Time) *StepOutputCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StepOutputCreate) SetNillableCreatedAt(v *time.Time) *StepOutputCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the StepOutputMutation object of the builder.
func (_c *StepOutputCreate) Mutation() *StepOutputMutation {
	return _c.mutation
}

// Save creates the StepOutput in the database.
func (_c *StepOutputCreate) Save(ctx context.Context) (*StepOutput, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepOutputCreate) SaveX(ctx context.Context) *StepOutput {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepOutputCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepOutputCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepOutputCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stepoutput.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepOutputCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "StepOutput.execution_id"`)}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "StepOutput.step_id"`)}
	}
	if _, ok := _c.mutation.Output(); !ok {
		return &ValidationError{Name: "output", err: errors.New(`ent: missing required field "StepOutput.output"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StepOutput.created_at"`)}
	}
	return nil
}

func (_c *StepOutputCreate) sqlSave(ctx context.Context) (*StepOutput, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepOutputCreate) createSpec() (*StepOutput, *sqlgraph.CreateSpec) {
	var (
		_node = &StepOutput{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stepoutput.Table, sqlgraph.NewFieldSpec(stepoutput.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(stepoutput.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(stepoutput.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(stepoutput.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stepoutput.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StepOutput.Create().
//		SetExecutionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepOutputUpsert) {
//			SetExecutionID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepOutputCreate) OnConflict(opts ...sql.ConflictOption) *StepOutputUpsertOne {
	_c.conflict = opts
	return &StepOutputUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StepOutput.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepOutputCreate) OnConflictColumns(columns ...string) *StepOutputUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepOutputUpsertOne{
		create: _c,
	}
}

type (
	// StepOutputUpsertOne is the builder for "upsert"-ing
	//  one StepOutput node.
	StepOutputUpsertOne struct {
		create *StepOutputCreate
	}

	// StepOutputUpsert is the "OnConflict" setter.
	StepOutputUpsert struct {
		*sql.UpdateSet
	}
)

// SetExecutionID sets the "execution_id" field.
func (u *StepOutputUpsert) SetExecutionID(v string) *StepOutputUpsert {
	u.Set(stepoutput.FieldExecutionID, v)
	return u
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *StepOutputUpsert) UpdateExecutionID() *StepOutputUpsert {
	u.SetExcluded(stepoutput.FieldExecutionID)
	return u
}

// SetStepID sets the "step_id" field.
func (u *StepOutputUpsert) SetStepID(v string) *StepOutputUpsert {
	u.Set(stepoutput.FieldStepID, v)
	return u
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *StepOutputUpsert) UpdateStepID() *StepOutputUpsert {
	u.SetExcluded(stepoutput.FieldStepID)
	return u
}

// SetOutput sets the "output" field.
func (u *StepOutputUpsert) SetOutput(v map[string]interface{}) *StepOutputUpsert {
	u.Set(stepoutput.FieldOutput, v)
	return u
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *StepOutputUpsert) UpdateOutput() *StepOutputUpsert {
	u.SetExcluded(stepoutput.FieldOutput)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *StepOutputUpsert) SetCreatedAt(v time.Time) *StepOutputUpsert {
	u.Set(stepoutput.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StepOutputUpsert) UpdateCreatedAt() *StepOutputUpsert {
	u.SetExcluded(stepoutput.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.StepOutput.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StepOutputUpsertOne) UpdateNewValues() *StepOutputUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StepOutput.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StepOutputUpsertOne) Ignore() *StepOutputUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepOutputUpsertOne) DoNothing() *StepOutputUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepOutputCreate.OnConflict
// documentation for more info.
func (u *StepOutputUpsertOne) Update(set func(*StepOutputUpsert)) *StepOutputUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepOutputUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutionID sets the "execution_id" field.
func (u *StepOutputUpsertOne) SetExecutionID(v string) *StepOutputUpsertOne {
	return u.Update(func(s *StepOutputUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *StepOutputUpsertOne) UpdateExecutionID() *StepOutputUpsertOne {
	return u.Update(func(s *StepOutputUpsert) {
		s.UpdateExecutionID()
	})
}

// SetStepID sets the "step_id" field.
func (u *StepOutputUpsertOne) SetStepID(v string) *StepOutputUpsertOne {
	return u.Update(func(s *StepOutputUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *StepOutputUpsertOne) UpdateStepID() *StepOutputUpsertOne {
	return u.Update(func(s *StepOutputUpsert) {
		s.UpdateStepID()
	})
}

// SetOutput sets the "output" field.
func (u *StepOutputUpsertOne) SetOutput(v map[string]interface{}) *StepOutputUpsertOne {
	return u.Update(func(s *StepOutputUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *StepOutputUpsertOne) UpdateOutput() *StepOutputUpsertOne {
	return u.Update(func(s *StepOutputUpsert) {
		s.UpdateOutput()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *StepOutputUpsertOne) SetCreatedAt(v time.Time) *StepOutputUpsertOne {
	return u.Update(func(s *StepOutputUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StepOutputUpsertOne) UpdateCreatedAt() *StepOutputUpsertOne {
	return u.Update(func(s *StepOutputUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *StepOutputUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepOutputCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepOutputUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StepOutputUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StepOutputUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StepOutputCreateBulk is the builder for creating many StepOutput entities in bulk.
type StepOutputCreateBulk struct {
	config
	err      error
	builders []*StepOutputCreate
	conflict []sql.ConflictOption
}

// Save creates the StepOutput entities in the database.
func (_c *StepOutputCreateBulk) Save(ctx context.Context) ([]*StepOutput, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepOutput, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepOutputMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *StepOutputCreateBulk) SaveX(ctx context.Context) []*StepOutput {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepOutputCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepOutputCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StepOutput.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepOutputUpsert) {
//			SetExecutionID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepOutputCreateBulk) OnConflict(opts ...sql.ConflictOption) *StepOutputUpsertBulk {
	_c.conflict = opts
	return &StepOutputUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StepOutput.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepOutputCreateBulk) OnConflictColumns(columns ...string) *StepOutputUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepOutputUpsertBulk{
		create: _c,
	}
}

// StepOutputUpsertBulk is the builder for "upsert"-ing
// a bulk of StepOutput nodes.
type StepOutputUpsertBulk struct {
	create *StepOutputCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StepOutput.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StepOutputUpsertBulk) UpdateNewValues() *StepOutputUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StepOutput.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StepOutputUpsertBulk) Ignore() *StepOutputUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepOutputUpsertBulk) DoNothing() *StepOutputUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepOutputCreateBulk.OnConflict
// documentation for more info.
func (u *StepOutputUpsertBulk) Update(set func(*StepOutputUpsert)) *StepOutputUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepOutputUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutionID sets the "execution_id" field.
func (u *StepOutputUpsertBulk) SetExecutionID(v string) *StepOutputUpsertBulk {
	return u.Update(func(s *StepOutputUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *StepOutputUpsertBulk) UpdateExecutionID() *StepOutputUpsertBulk {
	return u.Update(func(s *StepOutputUpsert) {
		s.UpdateExecutionID()
	})
}

// SetStepID sets the "step_id" field.
func (u *StepOutputUpsertBulk) SetStepID(v string) *StepOutputUpsertBulk {
	return u.Update(func(s *StepOutputUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *StepOutputUpsertBulk) UpdateStepID() *StepOutputUpsertBulk {
	return u.Update(func(s *StepOutputUpsert) {
		s.UpdateStepID()
	})
}

// SetOutput sets the "output" field.
func (u *StepOutputUpsertBulk) SetOutput(v map[string]interface{}) *StepOutputUpsertBulk {
	return u.Update(func(s *StepOutputUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *StepOutputUpsertBulk) UpdateOutput() *StepOutputUpsertBulk {
	return u.Update(func(s *StepOutputUpsert) {
		s.UpdateOutput()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *StepOutputUpsertBulk) SetCreatedAt(v time.Time) *StepOutputUpsertBulk {
	return u.Update(func(s *StepOutputUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StepOutputUpsertBulk) UpdateCreatedAt() *StepOutputUpsertBulk {
	return u.Update(func(s *StepOutputUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *StepOutputUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StepOutputCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepOutputCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepOutputUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
