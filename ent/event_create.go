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
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExecutionID sets the "execution_id" field.
func (_c *EventCreate) SetExecutionID(v string) *EventCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetProcessID sets the "process_id" field.
func (_c *EventCreate) SetProcessID(v string) *EventCreate {
	_c.mutation.SetProcessID(v)
	return _c
}

// SetNillableProcessID sets the "process_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableProcessID(v *string) *EventCreate {
	if v != nil {
		_c.SetProcessID(*v)
	}
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *EventCreate) SetStepID(v string) *EventCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableStepID(v *string) *EventCreate {
	if v != nil {
		_c.SetStepID(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *EventCreate) SetType(v string) *EventCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *EventCreate) SetSeq(v int64) *EventCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EventCreate) SetTimestamp(v time.Time) *EventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *EventCreate) SetNillableTimestamp(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *EventCreate) SetPayload(v map[string]interface{}) *EventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := event.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "Event.execution_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Event.type"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "Event.seq"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Event.timestamp"`)}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
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

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(event.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.ProcessID(); ok {
		_spec.SetField(event.FieldProcessID, field.TypeString, value)
		_node.ProcessID = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(event.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(event.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(event.FieldSeq, field.TypeInt64, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(event.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(event.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.Create().
//		SetExecutionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetExecutionID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreate) OnConflict(opts ...sql.ConflictOption) *EventUpsertOne {
	_c.conflict = opts
	return &EventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreate) OnConflictColumns(columns ...string) *EventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertOne{
		create: _c,
	}
}

type (
	// EventUpsertOne is the builder for "upsert"-ing
	//  one Event node.
	EventUpsertOne struct {
		create *EventCreate
	}

	// EventUpsert is the "OnConflict" setter.
	EventUpsert struct {
		*sql.UpdateSet
	}
)

// SetExecutionID sets the "execution_id" field.
func (u *EventUpsert) SetExecutionID(v string) *EventUpsert {
	u.Set(event.FieldExecutionID, v)
	return u
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateExecutionID() *EventUpsert {
	u.SetExcluded(event.FieldExecutionID)
	return u
}

// SetProcessID sets the "process_id" field.
func (u *EventUpsert) SetProcessID(v string) *EventUpsert {
	u.Set(event.FieldProcessID, v)
	return u
}

// UpdateProcessID sets the "process_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateProcessID() *EventUpsert {
	u.SetExcluded(event.FieldProcessID)
	return u
}

// ClearProcessID clears the value of the "process_id" field.
func (u *EventUpsert) ClearProcessID() *EventUpsert {
	u.SetNull(event.FieldProcessID)
	return u
}

// SetStepID sets the "step_id" field.
func (u *EventUpsert) SetStepID(v string) *EventUpsert {
	u.Set(event.FieldStepID, v)
	return u
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateStepID() *EventUpsert {
	u.SetExcluded(event.FieldStepID)
	return u
}

// ClearStepID clears the value of the "step_id" field.
func (u *EventUpsert) ClearStepID() *EventUpsert {
	u.SetNull(event.FieldStepID)
	return u
}

// SetType sets the "type" field.
func (u *EventUpsert) SetType(v string) *EventUpsert {
	u.Set(event.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *EventUpsert) UpdateType() *EventUpsert {
	u.SetExcluded(event.FieldType)
	return u
}

// SetSeq sets the "seq" field.
func (u *EventUpsert) SetSeq(v int64) *EventUpsert {
	u.Set(event.FieldSeq, v)
	return u
}

// UpdateSeq sets the "seq" field to the value that was provided on create.
func (u *EventUpsert) UpdateSeq() *EventUpsert {
	u.SetExcluded(event.FieldSeq)
	return u
}

// AddSeq adds v to the "seq" field.
func (u *EventUpsert) AddSeq(v int64) *EventUpsert {
	u.Add(event.FieldSeq, v)
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *EventUpsert) SetTimestamp(v time.Time) *EventUpsert {
	u.Set(event.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *EventUpsert) UpdateTimestamp() *EventUpsert {
	u.SetExcluded(event.FieldTimestamp)
	return u
}

// SetPayload sets the "payload" field.
func (u *EventUpsert) SetPayload(v map[string]interface{}) *EventUpsert {
	u.Set(event.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *EventUpsert) UpdatePayload() *EventUpsert {
	u.SetExcluded(event.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *EventUpsert) ClearPayload() *EventUpsert {
	u.SetNull(event.FieldPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EventUpsertOne) UpdateNewValues() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventUpsertOne) Ignore() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertOne) DoNothing() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreate.OnConflict
// documentation for more info.
func (u *EventUpsertOne) Update(set func(*EventUpsert)) *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutionID sets the "execution_id" field.
func (u *EventUpsertOne) SetExecutionID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateExecutionID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateExecutionID()
	})
}

// SetProcessID sets the "process_id" field.
func (u *EventUpsertOne) SetProcessID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetProcessID(v)
	})
}

// UpdateProcessID sets the "process_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateProcessID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateProcessID()
	})
}

// ClearProcessID clears the value of the "process_id" field.
func (u *EventUpsertOne) ClearProcessID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearProcessID()
	})
}

// SetStepID sets the "step_id" field.
func (u *EventUpsertOne) SetStepID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateStepID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStepID()
	})
}

// ClearStepID clears the value of the "step_id" field.
func (u *EventUpsertOne) ClearStepID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearStepID()
	})
}

// SetType sets the "type" field.
func (u *EventUpsertOne) SetType(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateType() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateType()
	})
}

// SetSeq sets the "seq" field.
func (u *EventUpsertOne) SetSeq(v int64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetSeq(v)
	})
}

// AddSeq adds v to the "seq" field.
func (u *EventUpsertOne) AddSeq(v int64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.AddSeq(v)
	})
}

// UpdateSeq sets the "seq" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateSeq() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSeq()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *EventUpsertOne) SetTimestamp(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateTimestamp() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateTimestamp()
	})
}

// SetPayload sets the "payload" field.
func (u *EventUpsertOne) SetPayload(v map[string]interface{}) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *EventUpsertOne) UpdatePayload() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *EventUpsertOne) ClearPayload() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearPayload()
	})
}

// Exec executes the query.
func (u *EventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
	conflict []sql.ConflictOption
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
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
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetExecutionID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventUpsertBulk {
	_c.conflict = opts
	return &EventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflictColumns(columns ...string) *EventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertBulk{
		create: _c,
	}
}

// EventUpsertBulk is the builder for "upsert"-ing
// a bulk of Event nodes.
type EventUpsertBulk struct {
	create *EventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EventUpsertBulk) UpdateNewValues() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventUpsertBulk) Ignore() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertBulk) DoNothing() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreateBulk.OnConflict
// documentation for more info.
func (u *EventUpsertBulk) Update(set func(*EventUpsert)) *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutionID sets the "execution_id" field.
func (u *EventUpsertBulk) SetExecutionID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateExecutionID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateExecutionID()
	})
}

// SetProcessID sets the "process_id" field.
func (u *EventUpsertBulk) SetProcessID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetProcessID(v)
	})
}

// UpdateProcessID sets the "process_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateProcessID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateProcessID()
	})
}

// ClearProcessID clears the value of the "process_id" field.
func (u *EventUpsertBulk) ClearProcessID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearProcessID()
	})
}

// SetStepID sets the "step_id" field.
func (u *EventUpsertBulk) SetStepID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateStepID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStepID()
	})
}

// ClearStepID clears the value of the "step_id" field.
func (u *EventUpsertBulk) ClearStepID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearStepID()
	})
}

// SetType sets the "type" field.
func (u *EventUpsertBulk) SetType(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateType() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateType()
	})
}

// SetSeq sets the "seq" field.
func (u *EventUpsertBulk) SetSeq(v int64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetSeq(v)
	})
}

// AddSeq adds v to the "seq" field.
func (u *EventUpsertBulk) AddSeq(v int64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.AddSeq(v)
	})
}

// UpdateSeq sets the "seq" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateSeq() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSeq()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *EventUpsertBulk) SetTimestamp(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateTimestamp() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateTimestamp()
	})
}

// SetPayload sets the "payload" field.
func (u *EventUpsertBulk) SetPayload(v map[string]interface{}) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdatePayload() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *EventUpsertBulk) ClearPayload() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearPayload()
	})
}

// Exec executes the query.
func (u *EventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
