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
	"github.com/trinity-ai/trinity/ent/processexecution"
	"github.com/trinity-ai/trinity/pkg/models"
)

// ProcessExecutionUpdate is the builder for updating ProcessExecution entities.
type ProcessExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessExecutionMutation
}

// Where appends a list predicates to the ProcessExecutionUpdate builder.
func (_u *ProcessExecutionUpdate) Where(ps ...predicate.ProcessExecution) *ProcessExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProcessID sets the "process_id" field.
func (_u *ProcessExecutionUpdate) SetProcessID(v string) *ProcessExecutionUpdate {
	_u.mutation.SetProcessID(v)
	return _u
}

// SetNillableProcessID sets the "process_id" field if the given value is not nil.
func (_u *ProcessExecutionUpdate) SetNillableProcessID(v *string) *ProcessExecutionUpdate {
	if v != nil {
		_u.SetProcessID(*v)
	}
	return _u
}

// SetProcessName sets the "process_name" field.
func (_u *ProcessExecutionUpdate) SetProcessName(v string) *ProcessExecutionUpdate {
	_u.mutation.SetProcessName(v)
	return _u
}

// SetNillableProcessName sets the "process_name" field if the given value is not nil.
func (_u *ProcessExecutionUpdate) SetNillableProcessName(v *string) *ProcessExecutionUpdate {
	if v != nil {
		_u.SetProcessName(*v)
	}
	return _u
}

// SetProcessVersion sets the "process_version" field.
func (_u *ProcessExecutionUpdate) SetProcessVersion(v string) *ProcessExecutionUpdate {
	_u.mutation.SetProcessVersion(v)
	return _u
}

// SetNillableProcessVersion sets the "process_version" field if the given value is not nil.
func (_u *ProcessExecutionUpdate) SetNillableProcessVersion(v *string) *ProcessExecutionUpdate {
	if v != nil {
		_u.SetProcessVersion(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessExecutionUpdate) SetStatus(v processexecution.Status) *ProcessExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessExecutionUpdate) SetNillableStatus(v *processexecution.Status) *ProcessExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *ProcessExecutionUpdate) SetTriggeredBy(v models.TriggeredBy) *ProcessExecutionUpdate {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *ProcessExecutionUpdate) SetNillableTriggeredBy(v *models.TriggeredBy) *ProcessExecutionUpdate {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetInputData sets the "input_data" field.
func (_u *ProcessExecutionUpdate) SetInputData(v map[string]interface{}) *ProcessExecutionUpdate {
	_u.mutation.SetInputData(v)
	return _u
}

// ClearInputData clears the value of the "input_data" field.
func (_u *ProcessExecutionUpdate) ClearInputData() *ProcessExecutionUpdate {
	_u.mutation.ClearInputData()
	return _u
}

// SetOutput sets the "output" field.
func (_u *ProcessExecutionUpdate) SetOutput(v map[string]interface{}) *ProcessExecutionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ProcessExecutionUpdate) ClearOutput() *ProcessExecutionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessExecutionUpdate) SetStartedAt(v time.Time) *ProcessExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessExecutionUpdate) SetNillableStartedAt(v *time.Time) *ProcessExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessExecutionUpdate) SetCompletedAt(v time.Time) *ProcessExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessExecutionUpdate) SetNillableCompletedAt(v *time.Time) *ProcessExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessExecutionUpdate) ClearCompletedAt() *ProcessExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *ProcessExecutionUpdate) SetTotalCost(v float64) *ProcessExecutionUpdate {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *ProcessExecutionUpdate) SetNillableTotalCost(v *float64) *ProcessExecutionUpdate {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *ProcessExecutionUpdate) AddTotalCost(v float64) *ProcessExecutionUpdate {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetSteps sets the "steps" field.
func (_u *ProcessExecutionUpdate) SetSteps(v map[string]*models.StepExecution) *ProcessExecutionUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// SetOwnerTeam sets the "owner_team" field.
func (_u *ProcessExecutionUpdate) SetOwnerTeam(v string) *ProcessExecutionUpdate {
	_u.mutation.SetOwnerTeam(v)
	return _u
}

// SetNillableOwnerTeam sets the "owner_team" field if the given value is not nil.
func (_u *ProcessExecutionUpdate) SetNillableOwnerTeam(v *string) *ProcessExecutionUpdate {
	if v != nil {
		_u.SetOwnerTeam(*v)
	}
	return _u
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (_u *ProcessExecutionUpdate) ClearOwnerTeam() *ProcessExecutionUpdate {
	_u.mutation.ClearOwnerTeam()
	return _u
}

// SetOwnerUser sets the "owner_user" field.
func (_u *ProcessExecutionUpdate) SetOwnerUser(v string) *ProcessExecutionUpdate {
	_u.mutation.SetOwnerUser(v)
	return _u
}

// SetNillableOwnerUser sets the "owner_user" field if the given value is not nil.
func (_u *ProcessExecutionUpdate) SetNillableOwnerUser(v *string) *ProcessExecutionUpdate {
	if v != nil {
		_u.SetOwnerUser(*v)
	}
	return _u
}

// ClearOwnerUser clears the value of the "owner_user" field.
func (_u *ProcessExecutionUpdate) ClearOwnerUser() *ProcessExecutionUpdate {
	_u.mutation.ClearOwnerUser()
	return _u
}

// SetError sets the "error" field.
func (_u *ProcessExecutionUpdate) SetError(v string) *ProcessExecutionUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ProcessExecutionUpdate) SetNillableError(v *string) *ProcessExecutionUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ProcessExecutionUpdate) ClearError() *ProcessExecutionUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ProcessExecutionUpdate) SetErrorKind(v string) *ProcessExecutionUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ProcessExecutionUpdate) SetNillableErrorKind(v *string) *ProcessExecutionUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ProcessExecutionUpdate) ClearErrorKind() *ProcessExecutionUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetSeq sets the "seq" field.
func (_u *ProcessExecutionUpdate) SetSeq(v int64) *ProcessExecutionUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *ProcessExecutionUpdate) SetNillableSeq(v *int64) *ProcessExecutionUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *ProcessExecutionUpdate) AddSeq(v int64) *ProcessExecutionUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessExecutionUpdate) SetUpdatedAt(v time.Time) *ProcessExecutionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ProcessExecutionUpdate) SetPodID(v string) *ProcessExecutionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ProcessExecutionUpdate) SetNillablePodID(v *string) *ProcessExecutionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ProcessExecutionUpdate) ClearPodID() *ProcessExecutionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// Mutation returns the ProcessExecutionMutation object of the builder.
func (_u *ProcessExecutionUpdate) Mutation() *ProcessExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessExecutionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessExecutionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processexecution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processexecution.Table, processexecution.Columns, sqlgraph.NewFieldSpec(processexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProcessID(); ok {
		_spec.SetField(processexecution.FieldProcessID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessName(); ok {
		_spec.SetField(processexecution.FieldProcessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessVersion(); ok {
		_spec.SetField(processexecution.FieldProcessVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(processexecution.FieldTriggeredBy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.InputData(); ok {
		_spec.SetField(processexecution.FieldInputData, field.TypeJSON, value)
	}
	if _u.mutation.InputDataCleared() {
		_spec.ClearField(processexecution.FieldInputData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(processexecution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(processexecution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(processexecution.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(processexecution.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(processexecution.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(processexecution.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.OwnerTeam(); ok {
		_spec.SetField(processexecution.FieldOwnerTeam, field.TypeString, value)
	}
	if _u.mutation.OwnerTeamCleared() {
		_spec.ClearField(processexecution.FieldOwnerTeam, field.TypeString)
	}
	if value, ok := _u.mutation.OwnerUser(); ok {
		_spec.SetField(processexecution.FieldOwnerUser, field.TypeString, value)
	}
	if _u.mutation.OwnerUserCleared() {
		_spec.ClearField(processexecution.FieldOwnerUser, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(processexecution.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(processexecution.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(processexecution.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(processexecution.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(processexecution.FieldSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(processexecution.FieldSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(processexecution.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(processexecution.FieldPodID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessExecutionUpdateOne is the builder for updating a single ProcessExecution entity.
type ProcessExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessExecutionMutation
}

// SetProcessID sets the "process_id" field.
func (_u *ProcessExecutionUpdateOne) SetProcessID(v string) *ProcessExecutionUpdateOne {
	_u.mutation.SetProcessID(v)
	return _u
}

// SetNillableProcessID sets the "process_id" field if the given value is not nil.
func (_u *ProcessExecutionUpdateOne) SetNillableProcessID(v *string) *ProcessExecutionUpdateOne {
	if v != nil {
		_u.SetProcessID(*v)
	}
	return _u
}

// SetProcessName sets the "process_name" field.
func (_u *ProcessExecutionUpdateOne) SetProcessName(v string) *ProcessExecutionUpdateOne {
	_u.mutation.SetProcessName(v)
	return _u
}

// SetNillableProcessName sets the "process_name" field if the given value is not nil.
func (_u *ProcessExecutionUpdateOne) SetNillableProcessName(v *string) *ProcessExecutionUpdateOne {
	if v != nil {
		_u.SetProcessName(*v)
	}
	return _u
}

// SetProcessVersion sets the "process_version" field.
func (_u *ProcessExecutionUpdateOne) SetProcessVersion(v string) *ProcessExecutionUpdateOne {
	_u.mutation.SetProcessVersion(v)
	return _u
}

// SetNillableProcessVersion sets the "process_version" field if the given value is not nil.
func (_u *ProcessExecutionUpdateOne) SetNillableProcessVersion(v *string) *ProcessExecutionUpdateOne {
	if v != nil {
		_u.SetProcessVersion(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessExecutionUpdateOne) SetStatus(v processexecution.Status) *ProcessExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessExecutionUpdateOne) SetNillableStatus(v *processexecution.Status) *ProcessExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *ProcessExecutionUpdateOne) SetTriggeredBy(v models.TriggeredBy) *ProcessExecutionUpdateOne {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *ProcessExecutionUpdateOne) SetNillableTriggeredBy(v *models.TriggeredBy) *ProcessExecutionUpdateOne {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetInputData sets the "input_data" field.
func (_u *ProcessExecutionUpdateOne) SetInputData(v map[string]interface{}) *ProcessExecutionUpdateOne {
	_u.mutation.SetInputData(v)
	return _u
}

// ClearInputData clears the value of the "input_data" field.
func (_u *ProcessExecutionUpdateOne) ClearInputData() *ProcessExecutionUpdateOne {
	_u.mutation.ClearInputData()
	return _u
}

// SetOutput sets the "output" field.
func (_u *ProcessExecutionUpdateOne) SetOutput(v map[string]interface{}) *ProcessExecutionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ProcessExecutionUpdateOne) ClearOutput() *ProcessExecutionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessExecutionUpdateOne) SetStartedAt(v time.Time) *ProcessExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *ProcessExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessExecutionUpdateOne) SetCompletedAt(v time.Time) *ProcessExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *ProcessExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessExecutionUpdateOne) ClearCompletedAt() *ProcessExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *ProcessExecutionUpdateOne) SetTotalCost(v float64) *ProcessExecutionUpdateOne {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *ProcessExecutionUpdateOne) SetNillableTotalCost(v *float64) *ProcessExecutionUpdateOne {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *ProcessExecutionUpdateOne) AddTotalCost(v float64) *ProcessExecutionUpdateOne {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetSteps sets the "steps" field.
func (_u *ProcessExecutionUpdateOne) SetSteps(v map[string]*models.StepExecution) *ProcessExecutionUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// SetOwnerTeam sets the "owner_team" field.
func (_u *ProcessExecutionUpdateOne) SetOwnerTeam(v string) *ProcessExecutionUpdateOne {
	_u.mutation.SetOwnerTeam(v)
	return _u
}

// SetNillableOwnerTeam sets the "owner_team" field if the given value is not nil.
func (_u *ProcessExecutionUpdateOne) SetNillableOwnerTeam(v *string) *ProcessExecutionUpdateOne {
	if v != nil {
		_u.SetOwnerTeam(*v)
	}
	return _u
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (_u *ProcessExecutionUpdateOne) ClearOwnerTeam() *ProcessExecutionUpdateOne {
	_u.mutation.ClearOwnerTeam()
	return _u
}

// SetOwnerUser sets the "owner_user" field.
func (_u *ProcessExecutionUpdateOne) SetOwnerUser(v string) *ProcessExecutionUpdateOne {
	_u.mutation.SetOwnerUser(v)
	return _u
}

// SetNillableOwnerUser sets the "owner_user" field if the given value is not nil.
func (_u *ProcessExecutionUpdateOne) SetNillableOwnerUser(v *string) *ProcessExecutionUpdateOne {
	if v != nil {
		_u.SetOwnerUser(*v)
	}
	return _u
}

// ClearOwnerUser clears the value of the "owner_user" field.
func (_u *ProcessExecutionUpdateOne) ClearOwnerUser() *ProcessExecutionUpdateOne {
	_u.mutation.ClearOwnerUser()
	return _u
}

// SetError sets the "error" field.
func (_u *ProcessExecutionUpdateOne) SetError(v string) *ProcessExecutionUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ProcessExecutionUpdateOne) SetNillableError(v *string) *ProcessExecutionUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ProcessExecutionUpdateOne) ClearError() *ProcessExecutionUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ProcessExecutionUpdateOne) SetErrorKind(v string) *ProcessExecutionUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ProcessExecutionUpdateOne) SetNillableErrorKind(v *string) *ProcessExecutionUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ProcessExecutionUpdateOne) ClearErrorKind() *ProcessExecutionUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetSeq sets the "seq" field.
func (_u *ProcessExecutionUpdateOne) SetSeq(v int64) *ProcessExecutionUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *ProcessExecutionUpdateOne) SetNillableSeq(v *int64) *ProcessExecutionUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *ProcessExecutionUpdateOne) AddSeq(v int64) *ProcessExecutionUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessExecutionUpdateOne) SetUpdatedAt(v time.Time) *ProcessExecutionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ProcessExecutionUpdateOne) SetPodID(v string) *ProcessExecutionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ProcessExecutionUpdateOne) SetNillablePodID(v *string) *ProcessExecutionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ProcessExecutionUpdateOne) ClearPodID() *ProcessExecutionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// Mutation returns the ProcessExecutionMutation object of the builder.
func (_u *ProcessExecutionUpdateOne) Mutation() *ProcessExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessExecutionUpdate builder.
func (_u *ProcessExecutionUpdateOne) Where(ps ...predicate.ProcessExecution) *ProcessExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessExecutionUpdateOne) Select(field string, fields ...string) *ProcessExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessExecution entity.
func (_u *ProcessExecutionUpdateOne) Save(ctx context.Context) (*ProcessExecution, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessExecutionUpdateOne) SaveX(ctx context.Context) *ProcessExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessExecutionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processexecution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessExecutionUpdateOne) sqlSave(ctx context.Context) (_node *ProcessExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processexecution.Table, processexecution.Columns, sqlgraph.NewFieldSpec(processexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processexecution.FieldID)
		for _, f := range fields {
			if !processexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processexecution.FieldID {
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
		_spec.SetField(processexecution.FieldProcessID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessName(); ok {
		_spec.SetField(processexecution.FieldProcessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessVersion(); ok {
		_spec.SetField(processexecution.FieldProcessVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(processexecution.FieldTriggeredBy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.InputData(); ok {
		_spec.SetField(processexecution.FieldInputData, field.TypeJSON, value)
	}
	if _u.mutation.InputDataCleared() {
		_spec.ClearField(processexecution.FieldInputData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(processexecution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(processexecution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(processexecution.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(processexecution.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(processexecution.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(processexecution.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.OwnerTeam(); ok {
		_spec.SetField(processexecution.FieldOwnerTeam, field.TypeString, value)
	}
	if _u.mutation.OwnerTeamCleared() {
		_spec.ClearField(processexecution.FieldOwnerTeam, field.TypeString)
	}
	if value, ok := _u.mutation.OwnerUser(); ok {
		_spec.SetField(processexecution.FieldOwnerUser, field.TypeString, value)
	}
	if _u.mutation.OwnerUserCleared() {
		_spec.ClearField(processexecution.FieldOwnerUser, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(processexecution.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(processexecution.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(processexecution.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(processexecution.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(processexecution.FieldSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(processexecution.FieldSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(processexecution.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(processexecution.FieldPodID, field.TypeString)
	}
	_node = &ProcessExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
