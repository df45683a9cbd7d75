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
	"github.com/trinity-ai/trinity/ent/processexecution"
	"github.com/trinity-ai/trinity/pkg/models"
)

// ProcessExecutionCreate is the builder for creating a ProcessExecution entity.
type ProcessExecutionCreate struct {
	config
	mutation *ProcessExecutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProcessID sets the "process_id" field.
func (_c *ProcessExecutionCreate) SetProcessID(v string) *ProcessExecutionCreate {
	_c.mutation.SetProcessID(v)
	return _c
}

// SetProcessName sets the "process_name" field.
func (_c *ProcessExecutionCreate) SetProcessName(v string) *ProcessExecutionCreate {
	_c.mutation.SetProcessName(v)
	return _c
}

// SetProcessVersion sets the "process_version" field.
func (_c *ProcessExecutionCreate) SetProcessVersion(v string) *ProcessExecutionCreate {
	_c.mutation.SetProcessVersion(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessExecutionCreate) SetStatus(v processexecution.Status) *ProcessExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProcessExecutionCreate) SetNillableStatus(v *processexecution.Status) *ProcessExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *ProcessExecutionCreate) SetTriggeredBy(v models.TriggeredBy) *ProcessExecutionCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetInputData sets the "input_data" field.
func (_c *ProcessExecutionCreate) SetInputData(v map[string]interface{}) *ProcessExecutionCreate {
	_c.mutation.SetInputData(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *ProcessExecutionCreate) SetOutput(v map[string]interface{}) *ProcessExecutionCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ProcessExecutionCreate) SetStartedAt(v time.Time) *ProcessExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ProcessExecutionCreate) SetCompletedAt(v time.Time) *ProcessExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ProcessExecutionCreate) SetNillableCompletedAt(v *time.Time) *ProcessExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetTotalCost sets the "total_cost" field.
func (_c *ProcessExecutionCreate) SetTotalCost(v float64) *ProcessExecutionCreate {
	_c.mutation.SetTotalCost(v)
	return _c
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_c *ProcessExecutionCreate) SetNillableTotalCost(v *float64) *ProcessExecutionCreate {
	if v != nil {
		_c.SetTotalCost(*v)
	}
	return _c
}

// SetSteps sets the "steps" field.
func (_c *ProcessExecutionCreate) SetSteps(v map[string]*models.StepExecution) *ProcessExecutionCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetOwnerTeam sets the "owner_team" field.
func (_c *ProcessExecutionCreate) SetOwnerTeam(v string) *ProcessExecutionCreate {
	_c.mutation.SetOwnerTeam(v)
	return _c
}

// SetNillableOwnerTeam sets the "owner_team" field if the given value is not nil.
func (_c *ProcessExecutionCreate) SetNillableOwnerTeam(v *string) *ProcessExecutionCreate {
	if v != nil {
		_c.SetOwnerTeam(*v)
	}
	return _c
}

// SetOwnerUser sets the "owner_user" field.
func (_c *ProcessExecutionCreate) SetOwnerUser(v string) *ProcessExecutionCreate {
	_c.mutation.SetOwnerUser(v)
	return _c
}

// SetNillableOwnerUser sets the "owner_user" field if the given value is not nil.
func (_c *ProcessExecutionCreate) SetNillableOwnerUser(v *string) *ProcessExecutionCreate {
	if v != nil {
		_c.SetOwnerUser(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *ProcessExecutionCreate) SetError(v string) *ProcessExecutionCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *ProcessExecutionCreate) SetNillableError(v *string) *ProcessExecutionCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *ProcessExecutionCreate) SetErrorKind(v string) *ProcessExecutionCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *ProcessExecutionCreate) SetNillableErrorKind(v *string) *ProcessExecutionCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetSeq sets the "seq" field.
func (_c *ProcessExecutionCreate) SetSeq(v int64) *ProcessExecutionCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_c *ProcessExecutionCreate) SetNillableSeq(v *int64) *ProcessExecutionCreate {
	if v != nil {
		_c.SetSeq(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProcessExecutionCreate) SetUpdatedAt(v time.Time) *ProcessExecutionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProcessExecutionCreate) SetNillableUpdatedAt(v *time.Time) *ProcessExecutionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *ProcessExecutionCreate) SetPodID(v string) *ProcessExecutionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *ProcessExecutionCreate) SetNillablePodID(v *string) *ProcessExecutionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessExecutionCreate) SetID(v string) *ProcessExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProcessExecutionMutation object of the builder.
func (_c *ProcessExecutionCreate) Mutation() *ProcessExecutionMutation {
	return _c.mutation
}

// Save creates the ProcessExecution in the database.
func (_c *ProcessExecutionCreate) Save(ctx context.Context) (*ProcessExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessExecutionCreate) SaveX(ctx context.Context) *ProcessExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := processexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		v := processexecution.DefaultTotalCost
		_c.mutation.SetTotalCost(v)
	}
	if _, ok := _c.mutation.Seq(); !ok {
		v := processexecution.DefaultSeq
		_c.mutation.SetSeq(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := processexecution.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessExecutionCreate) check() error {
	if _, ok := _c.mutation.ProcessID(); !ok {
		return &ValidationError{Name: "process_id", err: errors.New(`ent: missing required field "ProcessExecution.process_id"`)}
	}
	if _, ok := _c.mutation.ProcessName(); !ok {
		return &ValidationError{Name: "process_name", err: errors.New(`ent: missing required field "ProcessExecution.process_name"`)}
	}
	if _, ok := _c.mutation.ProcessVersion(); !ok {
		return &ValidationError{Name: "process_version", err: errors.New(`ent: missing required field "ProcessExecution.process_version"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggeredBy(); !ok {
		return &ValidationError{Name: "triggered_by", err: errors.New(`ent: missing required field "ProcessExecution.triggered_by"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ProcessExecution.started_at"`)}
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		return &ValidationError{Name: "total_cost", err: errors.New(`ent: missing required field "ProcessExecution.total_cost"`)}
	}
	if _, ok := _c.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "ProcessExecution.steps"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "ProcessExecution.seq"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProcessExecution.updated_at"`)}
	}
	return nil
}

func (_c *ProcessExecutionCreate) sqlSave(ctx context.Context) (*ProcessExecution, error) {
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
			return nil, fmt.Errorf("unexpected ProcessExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessExecutionCreate) createSpec() (*ProcessExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processexecution.Table, sqlgraph.NewFieldSpec(processexecution.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProcessID(); ok {
		_spec.SetField(processexecution.FieldProcessID, field.TypeString, value)
		_node.ProcessID = value
	}
	if value, ok := _c.mutation.ProcessName(); ok {
		_spec.SetField(processexecution.FieldProcessName, field.TypeString, value)
		_node.ProcessName = value
	}
	if value, ok := _c.mutation.ProcessVersion(); ok {
		_spec.SetField(processexecution.FieldProcessVersion, field.TypeString, value)
		_node.ProcessVersion = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(processexecution.FieldTriggeredBy, field.TypeJSON, value)
		_node.TriggeredBy = value
	}
	if value, ok := _c.mutation.InputData(); ok {
		_spec.SetField(processexecution.FieldInputData, field.TypeJSON, value)
		_node.InputData = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(processexecution.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(processexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(processexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.TotalCost(); ok {
		_spec.SetField(processexecution.FieldTotalCost, field.TypeFloat64, value)
		_node.TotalCost = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(processexecution.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.OwnerTeam(); ok {
		_spec.SetField(processexecution.FieldOwnerTeam, field.TypeString, value)
		_node.OwnerTeam = value
	}
	if value, ok := _c.mutation.OwnerUser(); ok {
		_spec.SetField(processexecution.FieldOwnerUser, field.TypeString, value)
		_node.OwnerUser = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(processexecution.FieldError, field.TypeString, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(processexecution.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(processexecution.FieldSeq, field.TypeInt64, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(processexecution.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(processexecution.FieldPodID, field.TypeString, value)
		_node.PodID = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProcessExecution.Create().
//		SetProcessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProcessExecutionUpsert) {
//			SetProcessID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProcessExecutionCreate) OnConflict(opts ...sql.ConflictOption) *ProcessExecutionUpsertOne {
	_c.conflict = opts
	return &ProcessExecutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProcessExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProcessExecutionCreate) OnConflictColumns(columns ...string) *ProcessExecutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProcessExecutionUpsertOne{
		create: _c,
	}
}

type (
	// ProcessExecutionUpsertOne is the builder for "upsert"-ing
	//  one ProcessExecution node.
	ProcessExecutionUpsertOne struct {
		create *ProcessExecutionCreate
	}

	// ProcessExecutionUpsert is the "OnConflict" setter.
	ProcessExecutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetProcessID sets the "process_id" field.
func (u *ProcessExecutionUpsert) SetProcessID(v string) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldProcessID, v)
	return u
}

// UpdateProcessID sets the "process_id" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateProcessID() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldProcessID)
	return u
}

// SetProcessName sets the "process_name" field.
func (u *ProcessExecutionUpsert) SetProcessName(v string) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldProcessName, v)
	return u
}

// UpdateProcessName sets the "process_name" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateProcessName() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldProcessName)
	return u
}

// SetProcessVersion sets the "process_version" field.
func (u *ProcessExecutionUpsert) SetProcessVersion(v string) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldProcessVersion, v)
	return u
}

// UpdateProcessVersion sets the "process_version" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateProcessVersion() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldProcessVersion)
	return u
}

// SetStatus sets the "status" field.
func (u *ProcessExecutionUpsert) SetStatus(v processexecution.Status) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateStatus() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldStatus)
	return u
}

// SetTriggeredBy sets the "triggered_by" field.
func (u *ProcessExecutionUpsert) SetTriggeredBy(v models.TriggeredBy) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldTriggeredBy, v)
	return u
}

// UpdateTriggeredBy sets the "triggered_by" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateTriggeredBy() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldTriggeredBy)
	return u
}

// SetInputData sets the "input_data" field.
func (u *ProcessExecutionUpsert) SetInputData(v map[string]interface{}) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldInputData, v)
	return u
}

// UpdateInputData sets the "input_data" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateInputData() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldInputData)
	return u
}

// ClearInputData clears the value of the "input_data" field.
func (u *ProcessExecutionUpsert) ClearInputData() *ProcessExecutionUpsert {
	u.SetNull(processexecution.FieldInputData)
	return u
}

// SetOutput sets the "output" field.
func (u *ProcessExecutionUpsert) SetOutput(v map[string]interface{}) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldOutput, v)
	return u
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateOutput() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldOutput)
	return u
}

// ClearOutput clears the value of the "output" field.
func (u *ProcessExecutionUpsert) ClearOutput() *ProcessExecutionUpsert {
	u.SetNull(processexecution.FieldOutput)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *ProcessExecutionUpsert) SetStartedAt(v time.Time) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateStartedAt() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *ProcessExecutionUpsert) SetCompletedAt(v time.Time) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateCompletedAt() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ProcessExecutionUpsert) ClearCompletedAt() *ProcessExecutionUpsert {
	u.SetNull(processexecution.FieldCompletedAt)
	return u
}

// SetTotalCost sets the "total_cost" field.
func (u *ProcessExecutionUpsert) SetTotalCost(v float64) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldTotalCost, v)
	return u
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateTotalCost() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldTotalCost)
	return u
}

// AddTotalCost adds v to the "total_cost" field.
func (u *ProcessExecutionUpsert) AddTotalCost(v float64) *ProcessExecutionUpsert {
	u.Add(processexecution.FieldTotalCost, v)
	return u
}

// SetSteps sets the "steps" field.
func (u *ProcessExecutionUpsert) SetSteps(v map[string]*models.StepExecution) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldSteps, v)
	return u
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateSteps() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldSteps)
	return u
}

// SetOwnerTeam sets the "owner_team" field.
func (u *ProcessExecutionUpsert) SetOwnerTeam(v string) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldOwnerTeam, v)
	return u
}

// UpdateOwnerTeam sets the "owner_team" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateOwnerTeam() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldOwnerTeam)
	return u
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (u *ProcessExecutionUpsert) ClearOwnerTeam() *ProcessExecutionUpsert {
	u.SetNull(processexecution.FieldOwnerTeam)
	return u
}

// SetOwnerUser sets the "owner_user" field.
func (u *ProcessExecutionUpsert) SetOwnerUser(v string) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldOwnerUser, v)
	return u
}

// UpdateOwnerUser sets the "owner_user" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateOwnerUser() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldOwnerUser)
	return u
}

// ClearOwnerUser clears the value of the "owner_user" field.
func (u *ProcessExecutionUpsert) ClearOwnerUser() *ProcessExecutionUpsert {
	u.SetNull(processexecution.FieldOwnerUser)
	return u
}

// SetError sets the "error" field.
func (u *ProcessExecutionUpsert) SetError(v string) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateError() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *ProcessExecutionUpsert) ClearError() *ProcessExecutionUpsert {
	u.SetNull(processexecution.FieldError)
	return u
}

// SetErrorKind sets the "error_kind" field.
func (u *ProcessExecutionUpsert) SetErrorKind(v string) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldErrorKind, v)
	return u
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateErrorKind() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldErrorKind)
	return u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *ProcessExecutionUpsert) ClearErrorKind() *ProcessExecutionUpsert {
	u.SetNull(processexecution.FieldErrorKind)
	return u
}

// SetSeq sets the "seq" field.
func (u *ProcessExecutionUpsert) SetSeq(v int64) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldSeq, v)
	return u
}

// UpdateSeq sets the "seq" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateSeq() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldSeq)
	return u
}

// AddSeq adds v to the "seq" field.
func (u *ProcessExecutionUpsert) AddSeq(v int64) *ProcessExecutionUpsert {
	u.Add(processexecution.FieldSeq, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProcessExecutionUpsert) SetUpdatedAt(v time.Time) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdateUpdatedAt() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldUpdatedAt)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *ProcessExecutionUpsert) SetPodID(v string) *ProcessExecutionUpsert {
	u.Set(processexecution.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ProcessExecutionUpsert) UpdatePodID() *ProcessExecutionUpsert {
	u.SetExcluded(processexecution.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ProcessExecutionUpsert) ClearPodID() *ProcessExecutionUpsert {
	u.SetNull(processexecution.FieldPodID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProcessExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(processexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProcessExecutionUpsertOne) UpdateNewValues() *ProcessExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(processexecution.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProcessExecution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProcessExecutionUpsertOne) Ignore() *ProcessExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProcessExecutionUpsertOne) DoNothing() *ProcessExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProcessExecutionCreate.OnConflict
// documentation for more info.
func (u *ProcessExecutionUpsertOne) Update(set func(*ProcessExecutionUpsert)) *ProcessExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProcessExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetProcessID sets the "process_id" field.
func (u *ProcessExecutionUpsertOne) SetProcessID(v string) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetProcessID(v)
	})
}

// UpdateProcessID sets the "process_id" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateProcessID() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateProcessID()
	})
}

// SetProcessName sets the "process_name" field.
func (u *ProcessExecutionUpsertOne) SetProcessName(v string) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetProcessName(v)
	})
}

// UpdateProcessName sets the "process_name" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateProcessName() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateProcessName()
	})
}

// SetProcessVersion sets the "process_version" field.
func (u *ProcessExecutionUpsertOne) SetProcessVersion(v string) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetProcessVersion(v)
	})
}

// UpdateProcessVersion sets the "process_version" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateProcessVersion() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateProcessVersion()
	})
}

// SetStatus sets the "status" field.
func (u *ProcessExecutionUpsertOne) SetStatus(v processexecution.Status) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateStatus() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetTriggeredBy sets the "triggered_by" field.
func (u *ProcessExecutionUpsertOne) SetTriggeredBy(v models.TriggeredBy) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetTriggeredBy(v)
	})
}

// UpdateTriggeredBy sets the "triggered_by" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateTriggeredBy() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateTriggeredBy()
	})
}

// SetInputData sets the "input_data" field.
func (u *ProcessExecutionUpsertOne) SetInputData(v map[string]interface{}) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetInputData(v)
	})
}

// UpdateInputData sets the "input_data" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateInputData() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateInputData()
	})
}

// ClearInputData clears the value of the "input_data" field.
func (u *ProcessExecutionUpsertOne) ClearInputData() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.ClearInputData()
	})
}

// SetOutput sets the "output" field.
func (u *ProcessExecutionUpsertOne) SetOutput(v map[string]interface{}) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateOutput() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *ProcessExecutionUpsertOne) ClearOutput() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.ClearOutput()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ProcessExecutionUpsertOne) SetStartedAt(v time.Time) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateStartedAt() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ProcessExecutionUpsertOne) SetCompletedAt(v time.Time) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateCompletedAt() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ProcessExecutionUpsertOne) ClearCompletedAt() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetTotalCost sets the "total_cost" field.
func (u *ProcessExecutionUpsertOne) SetTotalCost(v float64) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetTotalCost(v)
	})
}

// AddTotalCost adds v to the "total_cost" field.
func (u *ProcessExecutionUpsertOne) AddTotalCost(v float64) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.AddTotalCost(v)
	})
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateTotalCost() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateTotalCost()
	})
}

// SetSteps sets the "steps" field.
func (u *ProcessExecutionUpsertOne) SetSteps(v map[string]*models.StepExecution) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetSteps(v)
	})
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateSteps() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateSteps()
	})
}

// SetOwnerTeam sets the "owner_team" field.
func (u *ProcessExecutionUpsertOne) SetOwnerTeam(v string) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetOwnerTeam(v)
	})
}

// UpdateOwnerTeam sets the "owner_team" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateOwnerTeam() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateOwnerTeam()
	})
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (u *ProcessExecutionUpsertOne) ClearOwnerTeam() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.ClearOwnerTeam()
	})
}

// SetOwnerUser sets the "owner_user" field.
func (u *ProcessExecutionUpsertOne) SetOwnerUser(v string) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetOwnerUser(v)
	})
}

// UpdateOwnerUser sets the "owner_user" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateOwnerUser() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateOwnerUser()
	})
}

// ClearOwnerUser clears the value of the "owner_user" field.
func (u *ProcessExecutionUpsertOne) ClearOwnerUser() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.ClearOwnerUser()
	})
}

// SetError sets the "error" field.
func (u *ProcessExecutionUpsertOne) SetError(v string) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateError() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *ProcessExecutionUpsertOne) ClearError() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.ClearError()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *ProcessExecutionUpsertOne) SetErrorKind(v string) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateErrorKind() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *ProcessExecutionUpsertOne) ClearErrorKind() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.ClearErrorKind()
	})
}

// SetSeq sets the "seq" field.
func (u *ProcessExecutionUpsertOne) SetSeq(v int64) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetSeq(v)
	})
}

// AddSeq adds v to the "seq" field.
func (u *ProcessExecutionUpsertOne) AddSeq(v int64) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.AddSeq(v)
	})
}

// UpdateSeq sets the "seq" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateSeq() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateSeq()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProcessExecutionUpsertOne) SetUpdatedAt(v time.Time) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdateUpdatedAt() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *ProcessExecutionUpsertOne) SetPodID(v string) *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ProcessExecutionUpsertOne) UpdatePodID() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ProcessExecutionUpsertOne) ClearPodID() *ProcessExecutionUpsertOne {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.ClearPodID()
	})
}

// Exec executes the query.
func (u *ProcessExecutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProcessExecutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProcessExecutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProcessExecutionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProcessExecutionUpsertOne.ID is not supported by MySQL driver. Use ProcessExecutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProcessExecutionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProcessExecutionCreateBulk is the builder for creating many ProcessExecution entities in bulk.
type ProcessExecutionCreateBulk struct {
	config
	err      error
	builders []*ProcessExecutionCreate
	conflict []sql.ConflictOption
}

// Save creates the ProcessExecution entities in the database.
func (_c *ProcessExecutionCreateBulk) Save(ctx context.Context) ([]*ProcessExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessExecutionMutation)
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
func (_c *ProcessExecutionCreateBulk) SaveX(ctx context.Context) []*ProcessExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProcessExecution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProcessExecutionUpsert) {
//			SetProcessID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProcessExecutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProcessExecutionUpsertBulk {
	_c.conflict = opts
	return &ProcessExecutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProcessExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProcessExecutionCreateBulk) OnConflictColumns(columns ...string) *ProcessExecutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProcessExecutionUpsertBulk{
		create: _c,
	}
}

// ProcessExecutionUpsertBulk is the builder for "upsert"-ing
// a bulk of ProcessExecution nodes.
type ProcessExecutionUpsertBulk struct {
	create *ProcessExecutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProcessExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(processexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProcessExecutionUpsertBulk) UpdateNewValues() *ProcessExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(processexecution.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProcessExecution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProcessExecutionUpsertBulk) Ignore() *ProcessExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProcessExecutionUpsertBulk) DoNothing() *ProcessExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProcessExecutionCreateBulk.OnConflict
// documentation for more info.
func (u *ProcessExecutionUpsertBulk) Update(set func(*ProcessExecutionUpsert)) *ProcessExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProcessExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetProcessID sets the "process_id" field.
func (u *ProcessExecutionUpsertBulk) SetProcessID(v string) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetProcessID(v)
	})
}

// UpdateProcessID sets the "process_id" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateProcessID() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateProcessID()
	})
}

// SetProcessName sets the "process_name" field.
func (u *ProcessExecutionUpsertBulk) SetProcessName(v string) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetProcessName(v)
	})
}

// UpdateProcessName sets the "process_name" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateProcessName() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateProcessName()
	})
}

// SetProcessVersion sets the "process_version" field.
func (u *ProcessExecutionUpsertBulk) SetProcessVersion(v string) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetProcessVersion(v)
	})
}

// UpdateProcessVersion sets the "process_version" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateProcessVersion() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateProcessVersion()
	})
}

// SetStatus sets the "status" field.
func (u *ProcessExecutionUpsertBulk) SetStatus(v processexecution.Status) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateStatus() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetTriggeredBy sets the "triggered_by" field.
func (u *ProcessExecutionUpsertBulk) SetTriggeredBy(v models.TriggeredBy) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetTriggeredBy(v)
	})
}

// UpdateTriggeredBy sets the "triggered_by" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateTriggeredBy() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateTriggeredBy()
	})
}

// SetInputData sets the "input_data" field.
func (u *ProcessExecutionUpsertBulk) SetInputData(v map[string]interface{}) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetInputData(v)
	})
}

// UpdateInputData sets the "input_data" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateInputData() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateInputData()
	})
}

// ClearInputData clears the value of the "input_data" field.
func (u *ProcessExecutionUpsertBulk) ClearInputData() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.ClearInputData()
	})
}

// SetOutput sets the "output" field.
func (u *ProcessExecutionUpsertBulk) SetOutput(v map[string]interface{}) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateOutput() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *ProcessExecutionUpsertBulk) ClearOutput() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.ClearOutput()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ProcessExecutionUpsertBulk) SetStartedAt(v time.Time) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateStartedAt() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ProcessExecutionUpsertBulk) SetCompletedAt(v time.Time) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateCompletedAt() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ProcessExecutionUpsertBulk) ClearCompletedAt() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetTotalCost sets the "total_cost" field.
func (u *ProcessExecutionUpsertBulk) SetTotalCost(v float64) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetTotalCost(v)
	})
}

// AddTotalCost adds v to the "total_cost" field.
func (u *ProcessExecutionUpsertBulk) AddTotalCost(v float64) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.AddTotalCost(v)
	})
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateTotalCost() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateTotalCost()
	})
}

// SetSteps sets the "steps" field.
func (u *ProcessExecutionUpsertBulk) SetSteps(v map[string]*models.StepExecution) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetSteps(v)
	})
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateSteps() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateSteps()
	})
}

// SetOwnerTeam sets the "owner_team" field.
func (u *ProcessExecutionUpsertBulk) SetOwnerTeam(v string) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetOwnerTeam(v)
	})
}

// UpdateOwnerTeam sets the "owner_team" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateOwnerTeam() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateOwnerTeam()
	})
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (u *ProcessExecutionUpsertBulk) ClearOwnerTeam() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.ClearOwnerTeam()
	})
}

// SetOwnerUser sets the "owner_user" field.
func (u *ProcessExecutionUpsertBulk) SetOwnerUser(v string) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetOwnerUser(v)
	})
}

// UpdateOwnerUser sets the "owner_user" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateOwnerUser() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateOwnerUser()
	})
}

// ClearOwnerUser clears the value of the "owner_user" field.
func (u *ProcessExecutionUpsertBulk) ClearOwnerUser() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.ClearOwnerUser()
	})
}

// SetError sets the "error" field.
func (u *ProcessExecutionUpsertBulk) SetError(v string) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateError() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *ProcessExecutionUpsertBulk) ClearError() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.ClearError()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *ProcessExecutionUpsertBulk) SetErrorKind(v string) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateErrorKind() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *ProcessExecutionUpsertBulk) ClearErrorKind() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.ClearErrorKind()
	})
}

// SetSeq sets the "seq" field.
func (u *ProcessExecutionUpsertBulk) SetSeq(v int64) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetSeq(v)
	})
}

// AddSeq adds v to the "seq" field.
func (u *ProcessExecutionUpsertBulk) AddSeq(v int64) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.AddSeq(v)
	})
}

// UpdateSeq sets the "seq" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateSeq() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateSeq()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProcessExecutionUpsertBulk) SetUpdatedAt(v time.Time) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdateUpdatedAt() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *ProcessExecutionUpsertBulk) SetPodID(v string) *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ProcessExecutionUpsertBulk) UpdatePodID() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ProcessExecutionUpsertBulk) ClearPodID() *ProcessExecutionUpsertBulk {
	return u.Update(func(s *ProcessExecutionUpsert) {
		s.ClearPodID()
	})
}

// Exec executes the query.
func (u *ProcessExecutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProcessExecutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProcessExecutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProcessExecutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
