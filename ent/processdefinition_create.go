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
	"github.com/trinity-ai/trinity/ent/processdefinition"
	"github.com/trinity-ai/trinity/pkg/models"
)

// ProcessDefinitionCreate is the builder for creating a ProcessDefinition entity.
type ProcessDefinitionCreate struct {
	config
	mutation *ProcessDefinitionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *ProcessDefinitionCreate) SetName(v string) *ProcessDefinitionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ProcessDefinitionCreate) SetVersion(v string) *ProcessDefinitionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessDefinitionCreate) SetStatus(v processdefinition.Status) *ProcessDefinitionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProcessDefinitionCreate) SetNillableStatus(v *processdefinition.Status) *ProcessDefinitionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSteps sets the "steps" field.
func (_c *ProcessDefinitionCreate) SetSteps(v []models.StepDefinition) *ProcessDefinitionCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetTriggers sets the "triggers" field.
func (_c *ProcessDefinitionCreate) SetTriggers(v []models.Trigger) *ProcessDefinitionCreate {
	_c.mutation.SetTriggers(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *ProcessDefinitionCreate) SetOutput(v *models.OutputConfig) *ProcessDefinitionCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ProcessDefinitionCreate) SetCreatedBy(v string) *ProcessDefinitionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetOwnerTeam sets the "owner_team" field.
func (_c *ProcessDefinitionCreate) SetOwnerTeam(v string) *ProcessDefinitionCreate {
	_c.mutation.SetOwnerTeam(v)
	return _c
}

// SetNillableOwnerTeam sets the "owner_team" field if the given value is not nil.
func (_c *ProcessDefinitionCreate) SetNillableOwnerTeam(v *string) *ProcessDefinitionCreate {
	if v != nil {
		_c.SetOwnerTeam(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcessDefinitionCreate) SetCreatedAt(v time.Time) *ProcessDefinitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcessDefinitionCreate) SetNillableCreatedAt(v *time.Time) *ProcessDefinitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *ProcessDefinitionCreate) SetPublishedAt(v time.Time) *ProcessDefinitionCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *ProcessDefinitionCreate) SetNillablePublishedAt(v *time.Time) *ProcessDefinitionCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (_c *ProcessDefinitionCreate) SetMaxConcurrent(v int) *ProcessDefinitionCreate {
	_c.mutation.SetMaxConcurrent(v)
	return _c
}

// SetNillableMaxConcurrent sets the "max_concurrent" field if the given value is not nil.
func (_c *ProcessDefinitionCreate) SetNillableMaxConcurrent(v *int) *ProcessDefinitionCreate {
	if v != nil {
		_c.SetMaxConcurrent(*v)
	}
	return _c
}

// SetMaxCost sets the "max_cost" field.
func (_c *ProcessDefinitionCreate) SetMaxCost(v float64) *ProcessDefinitionCreate {
	_c.mutation.SetMaxCost(v)
	return _c
}

// SetNillableMaxCost sets the "max_cost" field if the given value is not nil.
func (_c *ProcessDefinitionCreate) SetNillableMaxCost(v *float64) *ProcessDefinitionCreate {
	if v != nil {
		_c.SetMaxCost(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ProcessDefinitionCreate) SetPriority(v string) *ProcessDefinitionCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ProcessDefinitionCreate) SetNillablePriority(v *string) *ProcessDefinitionCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetDataClassification sets the "data_classification" field.
func (_c *ProcessDefinitionCreate) SetDataClassification(v string) *ProcessDefinitionCreate {
	_c.mutation.SetDataClassification(v)
	return _c
}

// SetNillableDataClassification sets the "data_classification" field if the given value is not nil.
func (_c *ProcessDefinitionCreate) SetNillableDataClassification(v *string) *ProcessDefinitionCreate {
	if v != nil {
		_c.SetDataClassification(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessDefinitionCreate) SetID(v string) *ProcessDefinitionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProcessDefinitionMutation object of the builder.
func (_c *ProcessDefinitionCreate) Mutation() *ProcessDefinitionMutation {
	return _c.mutation
}

// Save creates the ProcessDefinition in the database.
func (_c *ProcessDefinitionCreate) Save(ctx context.Context) (*ProcessDefinition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessDefinitionCreate) SaveX(ctx context.Context) *ProcessDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessDefinitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessDefinitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessDefinitionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := processdefinition.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := processdefinition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.MaxConcurrent(); !ok {
		v := processdefinition.DefaultMaxConcurrent
		_c.mutation.SetMaxConcurrent(v)
	}
	if _, ok := _c.mutation.MaxCost(); !ok {
		v := processdefinition.DefaultMaxCost
		_c.mutation.SetMaxCost(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessDefinitionCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ProcessDefinition.name"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ProcessDefinition.version"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessDefinition.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processdefinition.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessDefinition.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "ProcessDefinition.steps"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "ProcessDefinition.created_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProcessDefinition.created_at"`)}
	}
	if _, ok := _c.mutation.MaxConcurrent(); !ok {
		return &ValidationError{Name: "max_concurrent", err: errors.New(`ent: missing required field "ProcessDefinition.max_concurrent"`)}
	}
	if _, ok := _c.mutation.MaxCost(); !ok {
		return &ValidationError{Name: "max_cost", err: errors.New(`ent: missing required field "ProcessDefinition.max_cost"`)}
	}
	return nil
}

func (_c *ProcessDefinitionCreate) sqlSave(ctx context.Context) (*ProcessDefinition, error) {
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
			return nil, fmt.Errorf("unexpected ProcessDefinition.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessDefinitionCreate) createSpec() (*ProcessDefinition, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessDefinition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processdefinition.Table, sqlgraph.NewFieldSpec(processdefinition.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(processdefinition.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(processdefinition.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processdefinition.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(processdefinition.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.Triggers(); ok {
		_spec.SetField(processdefinition.FieldTriggers, field.TypeJSON, value)
		_node.Triggers = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(processdefinition.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(processdefinition.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.OwnerTeam(); ok {
		_spec.SetField(processdefinition.FieldOwnerTeam, field.TypeString, value)
		_node.OwnerTeam = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(processdefinition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(processdefinition.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.MaxConcurrent(); ok {
		_spec.SetField(processdefinition.FieldMaxConcurrent, field.TypeInt, value)
		_node.MaxConcurrent = value
	}
	if value, ok := _c.mutation.MaxCost(); ok {
		_spec.SetField(processdefinition.FieldMaxCost, field.TypeFloat64, value)
		_node.MaxCost = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(processdefinition.FieldPriority, field.TypeString, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.DataClassification(); ok {
		_spec.SetField(processdefinition.FieldDataClassification, field.TypeString, value)
		_node.DataClassification = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProcessDefinition.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProcessDefinitionUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ProcessDefinitionCreate) OnConflict(opts ...sql.ConflictOption) *ProcessDefinitionUpsertOne {
	_c.conflict = opts
	return &ProcessDefinitionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProcessDefinition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProcessDefinitionCreate) OnConflictColumns(columns ...string) *ProcessDefinitionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProcessDefinitionUpsertOne{
		create: _c,
	}
}

type (
	// ProcessDefinitionUpsertOne is the builder for "upsert"-ing
	//  one ProcessDefinition node.
	ProcessDefinitionUpsertOne struct {
		create *ProcessDefinitionCreate
	}

	// ProcessDefinitionUpsert is the "OnConflict" setter.
	ProcessDefinitionUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ProcessDefinitionUpsert) SetName(v string) *ProcessDefinitionUpsert {
	u.Set(processdefinition.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProcessDefinitionUpsert) UpdateName() *ProcessDefinitionUpsert {
	u.SetExcluded(processdefinition.FieldName)
	return u
}

// SetVersion sets the "version" field.
func (u *ProcessDefinitionUpsert) SetVersion(v string) *ProcessDefinitionUpsert {
	u.Set(processdefinition.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ProcessDefinitionUpsert) UpdateVersion() *ProcessDefinitionUpsert {
	u.SetExcluded(processdefinition.FieldVersion)
	return u
}

// SetStatus sets the "status" field.
func (u *ProcessDefinitionUpsert) SetStatus(v processdefinition.Status) *ProcessDefinitionUpsert {
	u.Set(processdefinition.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProcessDefinitionUpsert) UpdateStatus() *ProcessDefinitionUpsert {
	u.SetExcluded(processdefinition.FieldStatus)
	return u
}

// SetSteps sets the "steps" field.
func (u *ProcessDefinitionUpsert) SetSteps(v []models.StepDefinition) *ProcessDefinitionUpsert {
	u.Set(processdefinition.FieldSteps, v)
	return u
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *ProcessDefinitionUpsert) UpdateSteps() *ProcessDefinitionUpsert {
	u.SetExcluded(processdefinition.FieldSteps)
	return u
}

// SetTriggers sets the "triggers" field.
func (u *ProcessDefinitionUpsert) SetTriggers(v []models.Trigger) *ProcessDefinitionUpsert {
	u.Set(processdefinition.FieldTriggers, v)
	return u
}

// UpdateTriggers sets the "triggers" field to the value that was provided on create.
func (u *ProcessDefinitionUpsert) UpdateTriggers() *ProcessDefinitionUpsert {
	u.SetExcluded(processdefinition.FieldTriggers)
	return u
}

// ClearTriggers clears the value of the "triggers" field.
func (u *ProcessDefinitionUpsert) ClearTriggers() *ProcessDefinitionUpsert {
	u.SetNull(processdefinition.FieldTriggers)
	return u
}

// SetOutput sets the "output" field.
func (u *ProcessDefinitionUpsert) SetOutput(v *models.OutputConfig) *ProcessDefinitionUpsert {
	u.Set(processdefinition.FieldOutput, v)
	return u
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *ProcessDefinitionUpsert) UpdateOutput() *ProcessDefinitionUpsert {
	u.SetExcluded(processdefinition.FieldOutput)
	return u
}

// ClearOutput clears the value of the "output" field.
func (u *ProcessDefinitionUpsert) ClearOutput() *ProcessDefinitionUpsert {
	u.SetNull(processdefinition.FieldOutput)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *ProcessDefinitionUpsert) SetCreatedBy(v string) *ProcessDefinitionUpsert {
	u.Set(processdefinition.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *ProcessDefinitionUpsert) UpdateCreatedBy() *ProcessDefinitionUpsert {
	u.SetExcluded(processdefinition.FieldCreatedBy)
	return u
}

// SetOwnerTeam sets the "owner_team" field.
func (u *ProcessDefinitionUpsert) SetOwnerTeam(v string) *ProcessDefinitionUpsert {
	u.Set(processdefinition.FieldOwnerTeam, v)
	return u
}

// UpdateOwnerTeam sets the "owner_team" field to the value that was provided on create.
func (u *ProcessDefinitionUpsert) UpdateOwnerTeam() *ProcessDefinitionUpsert {
	u.SetExcluded(processdefinition.FieldOwnerTeam)
	return u
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (u *ProcessDefinitionUpsert) ClearOwnerTeam() *ProcessDefinitionUpsert {
	u.SetNull(processdefinition.FieldOwnerTeam)
	return u
}

// SetPublishedAt sets the "published_at" field.
func (u *ProcessDefinitionUpsert) SetPublishedAt(v time.Time) *ProcessDefinitionUpsert {
	u.Set(processdefinition.FieldPublishedAt, v)
	return u
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *ProcessDefinitionUpsert) UpdatePublishedAt() *ProcessDefinitionUpsert {
	u.SetExcluded(processdefinition.FieldPublishedAt)
	return u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *ProcessDefinitionUpsert) ClearPublishedAt() *ProcessDefinitionUpsert {
	u.SetNull(processdefinition.FieldPublishedAt)
	return u
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (u *ProcessDefinitionUpsert) SetMaxConcurrent(v int) *ProcessDefinitionUpsert {
	u.Set(processdefinition.FieldMaxConcurrent, v)
	return u
}

// UpdateMaxConcurrent sets the "max_concurrent" field to the value that was provided on create.
func (u *ProcessDefinitionUpsert) UpdateMaxConcurrent() *ProcessDefinitionUpsert {
	u.SetExcluded(processdefinition.FieldMaxConcurrent)
	return u
}

// AddMaxConcurrent adds v to the "max_concurrent" field.
func (u *ProcessDefinitionUpsert) AddMaxConcurrent(v int) *ProcessDefinitionUpsert {
	u.Add(processdefinition.FieldMaxConcurrent, v)
	return u
}

// SetMaxCost sets the "max_cost" field.
func (u *ProcessDefinitionUpsert) SetMaxCost(v float64) *ProcessDefinitionUpsert {
	u.Set(processdefinition.FieldMaxCost, v)
	return u
}

// UpdateMaxCost sets the "max_cost" field to the value that was provided on create.
func (u *ProcessDefinitionUpsert) UpdateMaxCost() *ProcessDefinitionUpsert {
	u.SetExcluded(processdefinition.FieldMaxCost)
	return u
}

// AddMaxCost adds v to the "max_cost" field.
func (u *ProcessDefinitionUpsert) AddMaxCost(v float64) *ProcessDefinitionUpsert {
	u.Add(processdefinition.FieldMaxCost, v)
	return u
}

// SetPriority sets the "priority" field.
func (u *ProcessDefinitionUpsert) SetPriority(v string) *ProcessDefinitionUpsert {
	u.Set(processdefinition.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ProcessDefinitionUpsert) UpdatePriority() *ProcessDefinitionUpsert {
	u.SetExcluded(processdefinition.FieldPriority)
	return u
}

// ClearPriority clears the value of the "priority" field.
func (u *ProcessDefinitionUpsert) ClearPriority() *ProcessDefinitionUpsert {
	u.SetNull(processdefinition.FieldPriority)
	return u
}

// SetDataClassification sets the "data_classification" field.
func (u *ProcessDefinitionUpsert) SetDataClassification(v string) *ProcessDefinitionUpsert {
	u.Set(processdefinition.FieldDataClassification, v)
	return u
}

// UpdateDataClassification sets the "data_classification" field to the value that was provided on create.
func (u *ProcessDefinitionUpsert) UpdateDataClassification() *ProcessDefinitionUpsert {
	u.SetExcluded(processdefinition.FieldDataClassification)
	return u
}

// ClearDataClassification clears the value of the "data_classification" field.
func (u *ProcessDefinitionUpsert) ClearDataClassification() *ProcessDefinitionUpsert {
	u.SetNull(processdefinition.FieldDataClassification)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProcessDefinition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(processdefinition.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProcessDefinitionUpsertOne) UpdateNewValues() *ProcessDefinitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(processdefinition.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(processdefinition.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProcessDefinition.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProcessDefinitionUpsertOne) Ignore() *ProcessDefinitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProcessDefinitionUpsertOne) DoNothing() *ProcessDefinitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProcessDefinitionCreate.OnConflict
// documentation for more info.
func (u *ProcessDefinitionUpsertOne) Update(set func(*ProcessDefinitionUpsert)) *ProcessDefinitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProcessDefinitionUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ProcessDefinitionUpsertOne) SetName(v string) *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertOne) UpdateName() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateName()
	})
}

// SetVersion sets the "version" field.
func (u *ProcessDefinitionUpsertOne) SetVersion(v string) *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertOne) UpdateVersion() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateVersion()
	})
}

// SetStatus sets the "status" field.
func (u *ProcessDefinitionUpsertOne) SetStatus(v processdefinition.Status) *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertOne) UpdateStatus() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateStatus()
	})
}

// SetSteps sets the "steps" field.
func (u *ProcessDefinitionUpsertOne) SetSteps(v []models.StepDefinition) *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetSteps(v)
	})
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertOne) UpdateSteps() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateSteps()
	})
}

// SetTriggers sets the "triggers" field.
func (u *ProcessDefinitionUpsertOne) SetTriggers(v []models.Trigger) *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetTriggers(v)
	})
}

// UpdateTriggers sets the "triggers" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertOne) UpdateTriggers() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateTriggers()
	})
}

// ClearTriggers clears the value of the "triggers" field.
func (u *ProcessDefinitionUpsertOne) ClearTriggers() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.ClearTriggers()
	})
}

// SetOutput sets the "output" field.
func (u *ProcessDefinitionUpsertOne) SetOutput(v *models.OutputConfig) *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertOne) UpdateOutput() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *ProcessDefinitionUpsertOne) ClearOutput() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.ClearOutput()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *ProcessDefinitionUpsertOne) SetCreatedBy(v string) *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertOne) UpdateCreatedBy() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateCreatedBy()
	})
}

// SetOwnerTeam sets the "owner_team" field.
func (u *ProcessDefinitionUpsertOne) SetOwnerTeam(v string) *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetOwnerTeam(v)
	})
}

// UpdateOwnerTeam sets the "owner_team" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertOne) UpdateOwnerTeam() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateOwnerTeam()
	})
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (u *ProcessDefinitionUpsertOne) ClearOwnerTeam() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.ClearOwnerTeam()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *ProcessDefinitionUpsertOne) SetPublishedAt(v time.Time) *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertOne) UpdatePublishedAt() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *ProcessDefinitionUpsertOne) ClearPublishedAt() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.ClearPublishedAt()
	})
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (u *ProcessDefinitionUpsertOne) SetMaxConcurrent(v int) *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetMaxConcurrent(v)
	})
}

// AddMaxConcurrent adds v to the "max_concurrent" field.
func (u *ProcessDefinitionUpsertOne) AddMaxConcurrent(v int) *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.AddMaxConcurrent(v)
	})
}

// UpdateMaxConcurrent sets the "max_concurrent" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertOne) UpdateMaxConcurrent() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateMaxConcurrent()
	})
}

// SetMaxCost sets the "max_cost" field.
func (u *ProcessDefinitionUpsertOne) SetMaxCost(v float64) *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetMaxCost(v)
	})
}

// AddMaxCost adds v to the "max_cost" field.
func (u *ProcessDefinitionUpsertOne) AddMaxCost(v float64) *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.AddMaxCost(v)
	})
}

// UpdateMaxCost sets the "max_cost" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertOne) UpdateMaxCost() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateMaxCost()
	})
}

// SetPriority sets the "priority" field.
func (u *ProcessDefinitionUpsertOne) SetPriority(v string) *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertOne) UpdatePriority() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdatePriority()
	})
}

// ClearPriority clears the value of the "priority" field.
func (u *ProcessDefinitionUpsertOne) ClearPriority() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.ClearPriority()
	})
}

// SetDataClassification sets the "data_classification" field.
func (u *ProcessDefinitionUpsertOne) SetDataClassification(v string) *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetDataClassification(v)
	})
}

// UpdateDataClassification sets the "data_classification" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertOne) UpdateDataClassification() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateDataClassification()
	})
}

// ClearDataClassification clears the value of the "data_classification" field.
func (u *ProcessDefinitionUpsertOne) ClearDataClassification() *ProcessDefinitionUpsertOne {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.ClearDataClassification()
	})
}

// Exec executes the query.
func (u *ProcessDefinitionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProcessDefinitionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProcessDefinitionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProcessDefinitionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProcessDefinitionUpsertOne.ID is not supported by MySQL driver. Use ProcessDefinitionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProcessDefinitionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProcessDefinitionCreateBulk is the builder for creating many ProcessDefinition entities in bulk.
type ProcessDefinitionCreateBulk struct {
	config
	err      error
	builders []*ProcessDefinitionCreate
	conflict []sql.ConflictOption
}

// Save creates the ProcessDefinition entities in the database.
func (_c *ProcessDefinitionCreateBulk) Save(ctx context.Context) ([]*ProcessDefinition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessDefinition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessDefinitionMutation)
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
func (_c *ProcessDefinitionCreateBulk) SaveX(ctx context.Context) []*ProcessDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessDefinitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessDefinitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProcessDefinition.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProcessDefinitionUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ProcessDefinitionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProcessDefinitionUpsertBulk {
	_c.conflict = opts
	return &ProcessDefinitionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProcessDefinition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProcessDefinitionCreateBulk) OnConflictColumns(columns ...string) *ProcessDefinitionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProcessDefinitionUpsertBulk{
		create: _c,
	}
}

// ProcessDefinitionUpsertBulk is the builder for "upsert"-ing
// a bulk of ProcessDefinition nodes.
type ProcessDefinitionUpsertBulk struct {
	create *ProcessDefinitionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProcessDefinition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(processdefinition.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProcessDefinitionUpsertBulk) UpdateNewValues() *ProcessDefinitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(processdefinition.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(processdefinition.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProcessDefinition.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProcessDefinitionUpsertBulk) Ignore() *ProcessDefinitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProcessDefinitionUpsertBulk) DoNothing() *ProcessDefinitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProcessDefinitionCreateBulk.OnConflict
// documentation for more info.
func (u *ProcessDefinitionUpsertBulk) Update(set func(*ProcessDefinitionUpsert)) *ProcessDefinitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProcessDefinitionUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ProcessDefinitionUpsertBulk) SetName(v string) *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertBulk) UpdateName() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateName()
	})
}

// SetVersion sets the "version" field.
func (u *ProcessDefinitionUpsertBulk) SetVersion(v string) *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertBulk) UpdateVersion() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateVersion()
	})
}

// SetStatus sets the "status" field.
func (u *ProcessDefinitionUpsertBulk) SetStatus(v processdefinition.Status) *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertBulk) UpdateStatus() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateStatus()
	})
}

// SetSteps sets the "steps" field.
func (u *ProcessDefinitionUpsertBulk) SetSteps(v []models.StepDefinition) *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetSteps(v)
	})
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertBulk) UpdateSteps() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateSteps()
	})
}

// SetTriggers sets the "triggers" field.
func (u *ProcessDefinitionUpsertBulk) SetTriggers(v []models.Trigger) *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetTriggers(v)
	})
}

// UpdateTriggers sets the "triggers" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertBulk) UpdateTriggers() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateTriggers()
	})
}

// ClearTriggers clears the value of the "triggers" field.
func (u *ProcessDefinitionUpsertBulk) ClearTriggers() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.ClearTriggers()
	})
}

// SetOutput sets the "output" field.
func (u *ProcessDefinitionUpsertBulk) SetOutput(v *models.OutputConfig) *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertBulk) UpdateOutput() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *ProcessDefinitionUpsertBulk) ClearOutput() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.ClearOutput()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *ProcessDefinitionUpsertBulk) SetCreatedBy(v string) *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertBulk) UpdateCreatedBy() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateCreatedBy()
	})
}

// SetOwnerTeam sets the "owner_team" field.
func (u *ProcessDefinitionUpsertBulk) SetOwnerTeam(v string) *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetOwnerTeam(v)
	})
}

// UpdateOwnerTeam sets the "owner_team" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertBulk) UpdateOwnerTeam() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateOwnerTeam()
	})
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (u *ProcessDefinitionUpsertBulk) ClearOwnerTeam() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.ClearOwnerTeam()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *ProcessDefinitionUpsertBulk) SetPublishedAt(v time.Time) *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertBulk) UpdatePublishedAt() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *ProcessDefinitionUpsertBulk) ClearPublishedAt() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.ClearPublishedAt()
	})
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (u *ProcessDefinitionUpsertBulk) SetMaxConcurrent(v int) *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetMaxConcurrent(v)
	})
}

// AddMaxConcurrent adds v to the "max_concurrent" field.
func (u *ProcessDefinitionUpsertBulk) AddMaxConcurrent(v int) *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.AddMaxConcurrent(v)
	})
}

// UpdateMaxConcurrent sets the "max_concurrent" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertBulk) UpdateMaxConcurrent() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateMaxConcurrent()
	})
}

// SetMaxCost sets the "max_cost" field.
func (u *ProcessDefinitionUpsertBulk) SetMaxCost(v float64) *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetMaxCost(v)
	})
}

// AddMaxCost adds v to the "max_cost" field.
func (u *ProcessDefinitionUpsertBulk) AddMaxCost(v float64) *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.AddMaxCost(v)
	})
}

// UpdateMaxCost sets the "max_cost" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertBulk) UpdateMaxCost() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateMaxCost()
	})
}

// SetPriority sets the "priority" field.
func (u *ProcessDefinitionUpsertBulk) SetPriority(v string) *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertBulk) UpdatePriority() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdatePriority()
	})
}

// ClearPriority clears the value of the "priority" field.
func (u *ProcessDefinitionUpsertBulk) ClearPriority() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.ClearPriority()
	})
}

// SetDataClassification sets the "data_classification" field.
func (u *ProcessDefinitionUpsertBulk) SetDataClassification(v string) *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.SetDataClassification(v)
	})
}

// UpdateDataClassification sets the "data_classification" field to the value that was provided on create.
func (u *ProcessDefinitionUpsertBulk) UpdateDataClassification() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.UpdateDataClassification()
	})
}

// ClearDataClassification clears the value of the "data_classification" field.
func (u *ProcessDefinitionUpsertBulk) ClearDataClassification() *ProcessDefinitionUpsertBulk {
	return u.Update(func(s *ProcessDefinitionUpsert) {
		s.ClearDataClassification()
	})
}

// Exec executes the query.
func (u *ProcessDefinitionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProcessDefinitionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProcessDefinitionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProcessDefinitionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
