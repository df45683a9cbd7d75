// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/trinity-ai/trinity/ent/predicate"
	"github.com/trinity-ai/trinity/ent/processdefinition"
	"github.com/trinity-ai/trinity/pkg/models"
)

// ProcessDefinitionUpdate is the builder for updating ProcessDefinition entities.
type ProcessDefinitionUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessDefinitionMutation
}

// Where appends a list predicates to the ProcessDefinitionUpdate builder.
func (_u *ProcessDefinitionUpdate) Where(ps ...predicate.ProcessDefinition) *ProcessDefinitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProcessDefinitionUpdate) SetName(v string) *ProcessDefinitionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProcessDefinitionUpdate) SetNillableName(v *string) *ProcessDefinitionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProcessDefinitionUpdate) SetVersion(v string) *ProcessDefinitionUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProcessDefinitionUpdate) SetNillableVersion(v *string) *ProcessDefinitionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessDefinitionUpdate) SetStatus(v processdefinition.Status) *ProcessDefinitionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessDefinitionUpdate) SetNillableStatus(v *processdefinition.Status) *ProcessDefinitionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *ProcessDefinitionUpdate) SetSteps(v []models.StepDefinition) *ProcessDefinitionUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *ProcessDefinitionUpdate) AppendSteps(v []models.StepDefinition) *ProcessDefinitionUpdate {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetTriggers sets the "triggers" field.
func (_u *ProcessDefinitionUpdate) SetTriggers(v []models.Trigger) *ProcessDefinitionUpdate {
	_u.mutation.SetTriggers(v)
	return _u
}

// AppendTriggers appends value to the "triggers" field.
func (_u *ProcessDefinitionUpdate) AppendTriggers(v []models.Trigger) *ProcessDefinitionUpdate {
	_u.mutation.AppendTriggers(v)
	return _u
}

// ClearTriggers clears the value of the "triggers" field.
func (_u *ProcessDefinitionUpdate) ClearTriggers() *ProcessDefinitionUpdate {
	_u.mutation.ClearTriggers()
	return _u
}

// SetOutput sets the "output" field.
func (_u *ProcessDefinitionUpdate) SetOutput(v *models.OutputConfig) *ProcessDefinitionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ProcessDefinitionUpdate) ClearOutput() *ProcessDefinitionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ProcessDefinitionUpdate) SetCreatedBy(v string) *ProcessDefinitionUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ProcessDefinitionUpdate) SetNillableCreatedBy(v *string) *ProcessDefinitionUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetOwnerTeam sets the "owner_team" field.
func (_u *ProcessDefinitionUpdate) SetOwnerTeam(v string) *ProcessDefinitionUpdate {
	_u.mutation.SetOwnerTeam(v)
	return _u
}

// SetNillableOwnerTeam sets the "owner_team" field if the given value is not nil.
func (_u *ProcessDefinitionUpdate) SetNillableOwnerTeam(v *string) *ProcessDefinitionUpdate {
	if v != nil {
		_u.SetOwnerTeam(*v)
	}
	return _u
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (_u *ProcessDefinitionUpdate) ClearOwnerTeam() *ProcessDefinitionUpdate {
	_u.mutation.ClearOwnerTeam()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *ProcessDefinitionUpdate) SetPublishedAt(v time.Time) *ProcessDefinitionUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *ProcessDefinitionUpdate) SetNillablePublishedAt(v *time.Time) *ProcessDefinitionUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *ProcessDefinitionUpdate) ClearPublishedAt() *ProcessDefinitionUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (_u *ProcessDefinitionUpdate) SetMaxConcurrent(v int) *ProcessDefinitionUpdate {
	_u.mutation.ResetMaxConcurrent()
	_u.mutation.SetMaxConcurrent(v)
	return _u
}

// SetNillableMaxConcurrent sets the "max_concurrent" field if the given value is not nil.
func (_u *ProcessDefinitionUpdate) SetNillableMaxConcurrent(v *int) *ProcessDefinitionUpdate {
	if v != nil {
		_u.SetMaxConcurrent(*v)
	}
	return _u
}

// AddMaxConcurrent adds value to the "max_concurrent" field.
func (_u *ProcessDefinitionUpdate) AddMaxConcurrent(v int) *ProcessDefinitionUpdate {
	_u.mutation.AddMaxConcurrent(v)
	return _u
}

// SetMaxCost sets the "max_cost" field.
func (_u *ProcessDefinitionUpdate) SetMaxCost(v float64) *ProcessDefinitionUpdate {
	_u.mutation.ResetMaxCost()
	_u.mutation.SetMaxCost(v)
	return _u
}

// SetNillableMaxCost sets the "max_cost" field if the given value is not nil.
func (_u *ProcessDefinitionUpdate) SetNillableMaxCost(v *float64) *ProcessDefinitionUpdate {
	if v != nil {
		_u.SetMaxCost(*v)
	}
	return _u
}

// AddMaxCost adds value to the "max_cost" field.
func (_u *ProcessDefinitionUpdate) AddMaxCost(v float64) *ProcessDefinitionUpdate {
	_u.mutation.AddMaxCost(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ProcessDefinitionUpdate) SetPriority(v string) *ProcessDefinitionUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ProcessDefinitionUpdate) SetNillablePriority(v *string) *ProcessDefinitionUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// ClearPriority clears the value of the "priority" field.
func (_u *ProcessDefinitionUpdate) ClearPriority() *ProcessDefinitionUpdate {
	_u.mutation.ClearPriority()
	return _u
}

// SetDataClassification sets the "data_classification" field.
func (_u *ProcessDefinitionUpdate) SetDataClassification(v string) *ProcessDefinitionUpdate {
	_u.mutation.SetDataClassification(v)
	return _u
}

// SetNillableDataClassification sets the "data_classification" field if the given value is not nil.
func (_u *ProcessDefinitionUpdate) SetNillableDataClassification(v *string) *ProcessDefinitionUpdate {
	if v != nil {
		_u.SetDataClassification(*v)
	}
	return _u
}

// ClearDataClassification clears the value of the "data_classification" field.
func (_u *ProcessDefinitionUpdate) ClearDataClassification() *ProcessDefinitionUpdate {
	_u.mutation.ClearDataClassification()
	return _u
}

// Mutation returns the ProcessDefinitionMutation object of the builder.
func (_u *ProcessDefinitionUpdate) Mutation() *ProcessDefinitionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessDefinitionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessDefinitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessDefinitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessDefinitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessDefinitionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processdefinition.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessDefinition.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessDefinitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processdefinition.Table, processdefinition.Columns, sqlgraph.NewFieldSpec(processdefinition.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(processdefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(processdefinition.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processdefinition.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(processdefinition.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processdefinition.FieldSteps, value)
		})
	}
	if value, ok := _u.mutation.Triggers(); ok {
		_spec.SetField(processdefinition.FieldTriggers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTriggers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processdefinition.FieldTriggers, value)
		})
	}
	if _u.mutation.TriggersCleared() {
		_spec.ClearField(processdefinition.FieldTriggers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(processdefinition.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(processdefinition.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(processdefinition.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerTeam(); ok {
		_spec.SetField(processdefinition.FieldOwnerTeam, field.TypeString, value)
	}
	if _u.mutation.OwnerTeamCleared() {
		_spec.ClearField(processdefinition.FieldOwnerTeam, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(processdefinition.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(processdefinition.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MaxConcurrent(); ok {
		_spec.SetField(processdefinition.FieldMaxConcurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxConcurrent(); ok {
		_spec.AddField(processdefinition.FieldMaxConcurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxCost(); ok {
		_spec.SetField(processdefinition.FieldMaxCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxCost(); ok {
		_spec.AddField(processdefinition.FieldMaxCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(processdefinition.FieldPriority, field.TypeString, value)
	}
	if _u.mutation.PriorityCleared() {
		_spec.ClearField(processdefinition.FieldPriority, field.TypeString)
	}
	if value, ok := _u.mutation.DataClassification(); ok {
		_spec.SetField(processdefinition.FieldDataClassification, field.TypeString, value)
	}
	if _u.mutation.DataClassificationCleared() {
		_spec.ClearField(processdefinition.FieldDataClassification, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processdefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessDefinitionUpdateOne is the builder for updating a single ProcessDefinition entity.
type ProcessDefinitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessDefinitionMutation
}

// SetName sets the "name" field.
func (_u *ProcessDefinitionUpdateOne) SetName(v string) *ProcessDefinitionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProcessDefinitionUpdateOne) SetNillableName(v *string) *ProcessDefinitionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProcessDefinitionUpdateOne) SetVersion(v string) *ProcessDefinitionUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProcessDefinitionUpdateOne) SetNillableVersion(v *string) *ProcessDefinitionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessDefinitionUpdateOne) SetStatus(v processdefinition.Status) *ProcessDefinitionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessDefinitionUpdateOne) SetNillableStatus(v *processdefinition.Status) *ProcessDefinitionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *ProcessDefinitionUpdateOne) SetSteps(v []models.StepDefinition) *ProcessDefinitionUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *ProcessDefinitionUpdateOne) AppendSteps(v []models.StepDefinition) *ProcessDefinitionUpdateOne {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetTriggers sets the "triggers" field.
func (_u *ProcessDefinitionUpdateOne) SetTriggers(v []models.Trigger) *ProcessDefinitionUpdateOne {
	_u.mutation.SetTriggers(v)
	return _u
}

// AppendTriggers appends value to the "triggers" field.
func (_u *ProcessDefinitionUpdateOne) AppendTriggers(v []models.Trigger) *ProcessDefinitionUpdateOne {
	_u.mutation.AppendTriggers(v)
	return _u
}

// ClearTriggers clears the value of the "triggers" field.
func (_u *ProcessDefinitionUpdateOne) ClearTriggers() *ProcessDefinitionUpdateOne {
	_u.mutation.ClearTriggers()
	return _u
}

// SetOutput sets the "output" field.
func (_u *ProcessDefinitionUpdateOne) SetOutput(v *models.OutputConfig) *ProcessDefinitionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ProcessDefinitionUpdateOne) ClearOutput() *ProcessDefinitionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ProcessDefinitionUpdateOne) SetCreatedBy(v string) *ProcessDefinitionUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ProcessDefinitionUpdateOne) SetNillableCreatedBy(v *string) *ProcessDefinitionUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetOwnerTeam sets the "owner_team" field.
func (_u *ProcessDefinitionUpdateOne) SetOwnerTeam(v string) *ProcessDefinitionUpdateOne {
	_u.mutation.SetOwnerTeam(v)
	return _u
}

// SetNillableOwnerTeam sets the "owner_team" field if the given value is not nil.
func (_u *ProcessDefinitionUpdateOne) SetNillableOwnerTeam(v *string) *ProcessDefinitionUpdateOne {
	if v != nil {
		_u.SetOwnerTeam(*v)
	}
	return _u
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (_u *ProcessDefinitionUpdateOne) ClearOwnerTeam() *ProcessDefinitionUpdateOne {
	_u.mutation.ClearOwnerTeam()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *ProcessDefinitionUpdateOne) SetPublishedAt(v time.Time) *ProcessDefinitionUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *ProcessDefinitionUpdateOne) SetNillablePublishedAt(v *time.Time) *ProcessDefinitionUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *ProcessDefinitionUpdateOne) ClearPublishedAt() *ProcessDefinitionUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (_u *ProcessDefinitionUpdateOne) SetMaxConcurrent(v int) *ProcessDefinitionUpdateOne {
	_u.mutation.ResetMaxConcurrent()
	_u.mutation.SetMaxConcurrent(v)
	return _u
}

// SetNillableMaxConcurrent sets the "max_concurrent" field if the given value is not nil.
func (_u *ProcessDefinitionUpdateOne) SetNillableMaxConcurrent(v *int) *ProcessDefinitionUpdateOne {
	if v != nil {
		_u.SetMaxConcurrent(*v)
	}
	return _u
}

// AddMaxConcurrent adds value to the "max_concurrent" field.
func (_u *ProcessDefinitionUpdateOne) AddMaxConcurrent(v int) *ProcessDefinitionUpdateOne {
	_u.mutation.AddMaxConcurrent(v)
	return _u
}

// SetMaxCost sets the "max_cost" field.
func (_u *ProcessDefinitionUpdateOne) SetMaxCost(v float64) *ProcessDefinitionUpdateOne {
	_u.mutation.ResetMaxCost()
	_u.mutation.SetMaxCost(v)
	return _u
}

// SetNillableMaxCost sets the "max_cost" field if the given value is not nil.
func (_u *ProcessDefinitionUpdateOne) SetNillableMaxCost(v *float64) *ProcessDefinitionUpdateOne {
	if v != nil {
		_u.SetMaxCost(*v)
	}
	return _u
}

// AddMaxCost adds value to the "max_cost" field.
func (_u *ProcessDefinitionUpdateOne) AddMaxCost(v float64) *ProcessDefinitionUpdateOne {
	_u.mutation.AddMaxCost(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ProcessDefinitionUpdateOne) SetPriority(v string) *ProcessDefinitionUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ProcessDefinitionUpdateOne) SetNillablePriority(v *string) *ProcessDefinitionUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// ClearPriority clears the value of the "priority" field.
func (_u *ProcessDefinitionUpdateOne) ClearPriority() *ProcessDefinitionUpdateOne {
	_u.mutation.ClearPriority()
	return _u
}

// SetDataClassification sets the "data_classification" field.
func (_u *ProcessDefinitionUpdateOne) SetDataClassification(v string) *ProcessDefinitionUpdateOne {
	_u.mutation.SetDataClassification(v)
	return _u
}

// SetNillableDataClassification sets the "data_classification" field if the given value is not nil.
func (_u *ProcessDefinitionUpdateOne) SetNillableDataClassification(v *string) *ProcessDefinitionUpdateOne {
	if v != nil {
		_u.SetDataClassification(*v)
	}
	return _u
}

// ClearDataClassification clears the value of the "data_classification" field.
func (_u *ProcessDefinitionUpdateOne) ClearDataClassification() *ProcessDefinitionUpdateOne {
	_u.mutation.ClearDataClassification()
	return _u
}

// Mutation returns the ProcessDefinitionMutation object of the builder.
func (_u *ProcessDefinitionUpdateOne) Mutation() *ProcessDefinitionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessDefinitionUpdate builder.
func (_u *ProcessDefinitionUpdateOne) Where(ps ...predicate.ProcessDefinition) *ProcessDefinitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessDefinitionUpdateOne) Select(field string, fields ...string) *ProcessDefinitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessDefinition entity.
func (_u *ProcessDefinitionUpdateOne) Save(ctx context.Context) (*ProcessDefinition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessDefinitionUpdateOne) SaveX(ctx context.Context) *ProcessDefinition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessDefinitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessDefinitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessDefinitionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processdefinition.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessDefinition.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessDefinitionUpdateOne) sqlSave(ctx context.Context) (_node *ProcessDefinition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processdefinition.Table, processdefinition.Columns, sqlgraph.NewFieldSpec(processdefinition.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessDefinition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processdefinition.FieldID)
		for _, f := range fields {
			if !processdefinition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processdefinition.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(processdefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(processdefinition.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processdefinition.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(processdefinition.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processdefinition.FieldSteps, value)
		})
	}
	if value, ok := _u.mutation.Triggers(); ok {
		_spec.SetField(processdefinition.FieldTriggers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTriggers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processdefinition.FieldTriggers, value)
		})
	}
	if _u.mutation.TriggersCleared() {
		_spec.ClearField(processdefinition.FieldTriggers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(processdefinition.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(processdefinition.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(processdefinition.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerTeam(); ok {
		_spec.SetField(processdefinition.FieldOwnerTeam, field.TypeString, value)
	}
	if _u.mutation.OwnerTeamCleared() {
		_spec.ClearField(processdefinition.FieldOwnerTeam, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(processdefinition.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(processdefinition.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MaxConcurrent(); ok {
		_spec.SetField(processdefinition.FieldMaxConcurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxConcurrent(); ok {
		_spec.AddField(processdefinition.FieldMaxConcurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxCost(); ok {
		_spec.SetField(processdefinition.FieldMaxCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxCost(); ok {
		_spec.AddField(processdefinition.FieldMaxCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(processdefinition.FieldPriority, field.TypeString, value)
	}
	if _u.mutation.PriorityCleared() {
		_spec.ClearField(processdefinition.FieldPriority, field.TypeString)
	}
	if value, ok := _u.mutation.DataClassification(); ok {
		_spec.SetField(processdefinition.FieldDataClassification, field.TypeString, value)
	}
	if _u.mutation.DataClassificationCleared() {
		_spec.ClearField(processdefinition.FieldDataClassification, field.TypeString)
	}
	_node = &ProcessDefinition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processdefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
