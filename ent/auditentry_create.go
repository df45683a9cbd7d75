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
	"github.com/trinity-ai/trinity/ent/auditentry"
)

// AuditEntryCreate is the builder for creating a AuditEntry entity.
type AuditEntryCreate struct {
	config
	mutation *AuditEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTimestamp sets the "timestamp" field.
func (_c *AuditEntryCreate) SetTimestamp(v time.Time) *AuditEntryCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableTimestamp(v *time.Time) *AuditEntryCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetActor sets the "actor" field.
func (_c *AuditEntryCreate) SetActor(v string) *AuditEntryCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *AuditEntryCreate) SetAction(v string) *AuditEntryCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetResourceType sets the "resource_type" field.
func (_c *AuditEntryCreate) SetResourceType(v string) *AuditEntryCreate {
	_c.mutation.SetResourceType(v)
	return _c
}

// SetResourceID sets the "resource_id" field.
func (_c *AuditEntryCreate) SetResourceID(v string) *AuditEntryCreate {
	_c.mutation.SetResourceID(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *AuditEntryCreate) SetDetails(v map[string]interface{}) *AuditEntryCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetIP sets the "ip" field.
func (_c *AuditEntryCreate) SetIP(v string) *AuditEntryCreate {
	_c.mutation.SetIP(v)
	return _c
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableIP(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetIP(*v)
	}
	return _c
}

// SetUserAgent sets the "user_agent" field.
func (_c *AuditEntryCreate) SetUserAgent(v string) *AuditEntryCreate {
	_c.mutation.SetUserAgent(v)
	return _c
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableUserAgent(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetUserAgent(*v)
	}
	return _c
}

// SetDataClassification sets the "data_classification" field.
func (_c *AuditEntryCreate) SetDataClassification(v string) *AuditEntryCreate {
	_c.mutation.SetDataClassification(v)
	return _c
}

// SetNillableDataClassification sets the "data_classification" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableDataClassification(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetDataClassification(*v)
	}
	return _c
}

// SetRetentionDays sets the "retention_days" field.
func (_c *AuditEntryCreate) SetRetentionDays(v int) *AuditEntryCreate {
	_c.mutation.SetRetentionDays(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AuditEntryCreate) SetID(v string) *AuditEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_c *AuditEntryCreate) Mutation() *AuditEntryMutation {
	return _c.mutation
}

// Save creates the AuditEntry in the database.
func (_c *AuditEntryCreate) Save(ctx context.Context) (*AuditEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditEntryCreate) SaveX(ctx context.Context) *AuditEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditEntryCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := auditentry.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditEntryCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AuditEntry.timestamp"`)}
	}
	if _, ok := _c.mutation.Actor(); !ok {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required field "AuditEntry.actor"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "AuditEntry.action"`)}
	}
	if _, ok := _c.mutation.ResourceType(); !ok {
		return &ValidationError{Name: "resource_type", err: errors.New(`ent: missing required field "AuditEntry.resource_type"`)}
	}
	if _, ok := _c.mutation.ResourceID(); !ok {
		return &ValidationError{Name: "resource_id", err: errors.New(`ent: missing required field "AuditEntry.resource_id"`)}
	}
	if _, ok := _c.mutation.RetentionDays(); !ok {
		return &ValidationError{Name: "retention_days", err: errors.New(`ent: missing required field "AuditEntry.retention_days"`)}
	}
	return nil
}

func (_c *AuditEntryCreate) sqlSave(ctx context.Context) (*AuditEntry, error) {
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
			return nil, fmt.Errorf("unexpected AuditEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditEntryCreate) createSpec() (*AuditEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditentry.Table, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(auditentry.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(auditentry.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(auditentry.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.ResourceType(); ok {
		_spec.SetField(auditentry.FieldResourceType, field.TypeString, value)
		_node.ResourceType = value
	}
	if value, ok := _c.mutation.ResourceID(); ok {
		_spec.SetField(auditentry.FieldResourceID, field.TypeString, value)
		_node.ResourceID = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(auditentry.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.IP(); ok {
		_spec.SetField(auditentry.FieldIP, field.TypeString, value)
		_node.IP = value
	}
	if value, ok := _c.mutation.UserAgent(); ok {
		_spec.SetField(auditentry.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = value
	}
	if value, ok := _c.mutation.DataClassification(); ok {
		_spec.SetField(auditentry.FieldDataClassification, field.TypeString, value)
		_node.DataClassification = value
	}
	if value, ok := _c.mutation.RetentionDays(); ok {
		_spec.SetField(auditentry.FieldRetentionDays, field.TypeInt, value)
		_node.RetentionDays = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditEntry.Create().
//		SetTimestamp(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditEntryUpsert) {
//			SetTimestamp(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditEntryCreate) OnConflict(opts ...sql.ConflictOption) *AuditEntryUpsertOne {
	_c.conflict = opts
	return &AuditEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditEntryCreate) OnConflictColumns(columns ...string) *AuditEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditEntryUpsertOne{
		create: _c,
	}
}

type (
	// AuditEntryUpsertOne is the builder for "upsert"-ing
	//  one AuditEntry node.
	AuditEntryUpsertOne struct {
		create *AuditEntryCreate
	}

	// AuditEntryUpsert is the "OnConflict" setter.
	AuditEntryUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditEntryUpsertOne) UpdateNewValues() *AuditEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(auditentry.FieldID)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(auditentry.FieldTimestamp)
		}
		if _, exists := u.create.mutation.Actor(); exists {
			s.SetIgnore(auditentry.FieldActor)
		}
		if _, exists := u.create.mutation.Action(); exists {
			s.SetIgnore(auditentry.FieldAction)
		}
		if _, exists := u.create.mutation.ResourceType(); exists {
			s.SetIgnore(auditentry.FieldResourceType)
		}
		if _, exists := u.create.mutation.ResourceID(); exists {
			s.SetIgnore(auditentry.FieldResourceID)
		}
		if _, exists := u.create.mutation.Details(); exists {
			s.SetIgnore(auditentry.FieldDetails)
		}
		if _, exists := u.create.mutation.IP(); exists {
			s.SetIgnore(auditentry.FieldIP)
		}
		if _, exists := u.create.mutation.UserAgent(); exists {
			s.SetIgnore(auditentry.FieldUserAgent)
		}
		if _, exists := u.create.mutation.DataClassification(); exists {
			s.SetIgnore(auditentry.FieldDataClassification)
		}
		if _, exists := u.create.mutation.RetentionDays(); exists {
			s.SetIgnore(auditentry.FieldRetentionDays)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditEntryUpsertOne) Ignore() *AuditEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditEntryUpsertOne) DoNothing() *AuditEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditEntryCreate.OnConflict
// documentation for more info.
func (u *AuditEntryUpsertOne) Update(set func(*AuditEntryUpsert)) *AuditEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditEntryUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *AuditEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditEntryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuditEntryUpsertOne.ID is not supported by MySQL driver. Use AuditEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditEntryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditEntryCreateBulk is the builder for creating many AuditEntry entities in bulk.
type AuditEntryCreateBulk struct {
	config
	err      error
	builders []*AuditEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the AuditEntry entities in the database.
func (_c *AuditEntryCreateBulk) Save(ctx context.Context) ([]*AuditEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditEntryMutation)
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
func (_c *AuditEntryCreateBulk) SaveX(ctx context.Context) []*AuditEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditEntryUpsert) {
//			SetTimestamp(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditEntryUpsertBulk {
	_c.conflict = opts
	return &AuditEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditEntryCreateBulk) OnConflictColumns(columns ...string) *AuditEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditEntryUpsertBulk{
		create: _c,
	}
}

// AuditEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of AuditEntry nodes.
type AuditEntryUpsertBulk struct {
	create *AuditEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditEntryUpsertBulk) UpdateNewValues() *AuditEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(auditentry.FieldID)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(auditentry.FieldTimestamp)
			}
			if _, exists := b.mutation.Actor(); exists {
				s.SetIgnore(auditentry.FieldActor)
			}
			if _, exists := b.mutation.Action(); exists {
				s.SetIgnore(auditentry.FieldAction)
			}
			if _, exists := b.mutation.ResourceType(); exists {
				s.SetIgnore(auditentry.FieldResourceType)
			}
			if _, exists := b.mutation.ResourceID(); exists {
				s.SetIgnore(auditentry.FieldResourceID)
			}
			if _, exists := b.mutation.Details(); exists {
				s.SetIgnore(auditentry.FieldDetails)
			}
			if _, exists := b.mutation.IP(); exists {
				s.SetIgnore(auditentry.FieldIP)
			}
			if _, exists := b.mutation.UserAgent(); exists {
				s.SetIgnore(auditentry.FieldUserAgent)
			}
			if _, exists := b.mutation.DataClassification(); exists {
				s.SetIgnore(auditentry.FieldDataClassification)
			}
			if _, exists := b.mutation.RetentionDays(); exists {
				s.SetIgnore(auditentry.FieldRetentionDays)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditEntryUpsertBulk) Ignore() *AuditEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditEntryUpsertBulk) DoNothing() *AuditEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditEntryCreateBulk.OnConflict
// documentation for more info.
func (u *AuditEntryUpsertBulk) Update(set func(*AuditEntryUpsert)) *AuditEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditEntryUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *AuditEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
