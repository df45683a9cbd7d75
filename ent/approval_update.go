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
	"github.com/trinity-ai/trinity/ent/approval"
	"github.com/trinity-ai/trinity/ent/predicate"
)

// ApprovalUpdate is the builder for updating Approval entities.
type ApprovalUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalMutation
}

// Where appends a list predicates to the ApprovalUpdate builder.
func (_u *ApprovalUpdate) Where(ps ...predicate.Approval) *ApprovalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *ApprovalUpdate) SetExecutionID(v string) *ApprovalUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableExecutionID(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *ApprovalUpdate) SetStepID(v string) *ApprovalUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableStepID(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// SetApprovers sets the "approvers" field.
func (_u *ApprovalUpdate) SetApprovers(v []string) *ApprovalUpdate {
	_u.mutation.SetApprovers(v)
	return _u
}

// AppendApprovers appends value to the "approvers" field.
func (_u *ApprovalUpdate) AppendApprovers(v []string) *ApprovalUpdate {
	_u.mutation.AppendApprovers(v)
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *ApprovalUpdate) SetDeadline(v time.Time) *ApprovalUpdate {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableDeadline(v *time.Time) *ApprovalUpdate {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalUpdate) SetStatus(v approval.Status) *ApprovalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableStatus(v *approval.Status) *ApprovalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ApprovalUpdate) SetTitle(v string) *ApprovalUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableTitle(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ApprovalUpdate) ClearTitle() *ApprovalUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *ApprovalUpdate) SetArtifacts(v []string) *ApprovalUpdate {
	_u.mutation.SetArtifacts(v)
	return _u
}

// AppendArtifacts appends value to the "artifacts" field.
func (_u *ApprovalUpdate) AppendArtifacts(v []string) *ApprovalUpdate {
	_u.mutation.AppendArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *ApprovalUpdate) ClearArtifacts() *ApprovalUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *ApprovalUpdate) SetDecidedBy(v string) *ApprovalUpdate {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableDecidedBy(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *ApprovalUpdate) ClearDecidedBy() *ApprovalUpdate {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetComment sets the "comment" field.
func (_u *ApprovalUpdate) SetComment(v string) *ApprovalUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableComment(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *ApprovalUpdate) ClearComment() *ApprovalUpdate {
	_u.mutation.ClearComment()
	return _u
}

// SetDecisionAt sets the "decision_at" field.
func (_u *ApprovalUpdate) SetDecisionAt(v time.Time) *ApprovalUpdate {
	_u.mutation.SetDecisionAt(v)
	return _u
}

// SetNillableDecisionAt sets the "decision_at" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableDecisionAt(v *time.Time) *ApprovalUpdate {
	if v != nil {
		_u.SetDecisionAt(*v)
	}
	return _u
}

// ClearDecisionAt clears the value of the "decision_at" field.
func (_u *ApprovalUpdate) ClearDecisionAt() *ApprovalUpdate {
	_u.mutation.ClearDecisionAt()
	return _u
}

// SetRequestedAt sets the "requested_at" field.
func (_u *ApprovalUpdate) SetRequestedAt(v time.Time) *ApprovalUpdate {
	_u.mutation.SetRequestedAt(v)
	return _u
}

// SetNillableRequestedAt sets the "requested_at" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableRequestedAt(v *time.Time) *ApprovalUpdate {
	if v != nil {
		_u.SetRequestedAt(*v)
	}
	return _u
}

// Mutation returns the ApprovalMutation object of the builder.
func (_u *ApprovalUpdate) Mutation() *ApprovalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approval.Table, approval.Columns, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(approval.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(approval.FieldStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Approvers(); ok {
		_spec.SetField(approval.FieldApprovers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedApprovers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, approval.FieldApprovers, value)
		})
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(approval.FieldDeadline, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(approval.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(approval.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(approval.FieldArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, approval.FieldArtifacts, value)
		})
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(approval.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(approval.FieldDecidedBy, field.TypeString, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(approval.FieldDecidedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(approval.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(approval.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.DecisionAt(); ok {
		_spec.SetField(approval.FieldDecisionAt, field.TypeTime, value)
	}
	if _u.mutation.DecisionAtCleared() {
		_spec.ClearField(approval.FieldDecisionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RequestedAt(); ok {
		_spec.SetField(approval.FieldRequestedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalUpdateOne is the builder for updating a single Approval entity.
type ApprovalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalMutation
}

// SetExecutionID sets the "execution_id" field.
func (_u *ApprovalUpdateOne) SetExecutionID(v string) *ApprovalUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableExecutionID(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *ApprovalUpdateOne) SetStepID(v string) *ApprovalUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableStepID(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// SetApprovers sets the "approvers" field.
func (_u *ApprovalUpdateOne) SetApprovers(v []string) *ApprovalUpdateOne {
	_u.mutation.SetApprovers(v)
	return _u
}

// AppendApprovers appends value to the "approvers" field.
func (_u *ApprovalUpdateOne) AppendApprovers(v []string) *ApprovalUpdateOne {
	_u.mutation.AppendApprovers(v)
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *ApprovalUpdateOne) SetDeadline(v time.Time) *ApprovalUpdateOne {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableDeadline(v *time.Time) *ApprovalUpdateOne {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalUpdateOne) SetStatus(v approval.Status) *ApprovalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableStatus(v *approval.Status) *ApprovalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ApprovalUpdateOne) SetTitle(v string) *ApprovalUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableTitle(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ApprovalUpdateOne) ClearTitle() *ApprovalUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *ApprovalUpdateOne) SetArtifacts(v []string) *ApprovalUpdateOne {
	_u.mutation.SetArtifacts(v)
	return _u
}

// AppendArtifacts appends value to the "artifacts" field.
func (_u *ApprovalUpdateOne) AppendArtifacts(v []string) *ApprovalUpdateOne {
	_u.mutation.AppendArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *ApprovalUpdateOne) ClearArtifacts() *ApprovalUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *ApprovalUpdateOne) SetDecidedBy(v string) *ApprovalUpdateOne {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableDecidedBy(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *ApprovalUpdateOne) ClearDecidedBy() *ApprovalUpdateOne {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetComment sets the "comment" field.
func (_u *ApprovalUpdateOne) SetComment(v string) *ApprovalUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableComment(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *ApprovalUpdateOne) ClearComment() *ApprovalUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// SetDecisionAt sets the "decision_at" field.
func (_u *ApprovalUpdateOne) SetDecisionAt(v time.Time) *ApprovalUpdateOne {
	_u.mutation.SetDecisionAt(v)
	return _u
}

// SetNillableDecisionAt sets the "decision_at" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableDecisionAt(v *time.Time) *ApprovalUpdateOne {
	if v != nil {
		_u.SetDecisionAt(*v)
	}
	return _u
}

// ClearDecisionAt clears the value of the "decision_at" field.
func (_u *ApprovalUpdateOne) ClearDecisionAt() *ApprovalUpdateOne {
	_u.mutation.ClearDecisionAt()
	return _u
}

// SetRequestedAt sets the "requested_at" field.
func (_u *ApprovalUpdateOne) SetRequestedAt(v time.Time) *ApprovalUpdateOne {
	_u.mutation.SetRequestedAt(v)
	return _u
}

// SetNillableRequestedAt sets the "requested_at" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableRequestedAt(v *time.Time) *ApprovalUpdateOne {
	if v != nil {
		_u.SetRequestedAt(*v)
	}
	return _u
}

// Mutation returns the ApprovalMutation object of the builder.
func (_u *ApprovalUpdateOne) Mutation() *ApprovalMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalUpdate builder.
func (_u *ApprovalUpdateOne) Where(ps ...predicate.Approval) *ApprovalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalUpdateOne) Select(field string, fields ...string) *ApprovalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Approval entity.
func (_u *ApprovalUpdateOne) Save(ctx context.Context) (*Approval, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalUpdateOne) SaveX(ctx context.Context) *Approval {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalUpdateOne) sqlSave(ctx context.Context) (_node *Approval, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approval.Table, approval.Columns, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Approval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approval.FieldID)
		for _, f := range fields {
			if !approval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approval.FieldID {
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
		_spec.SetField(approval.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(approval.FieldStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Approvers(); ok {
		_spec.SetField(approval.FieldApprovers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedApprovers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, approval.FieldApprovers, value)
		})
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(approval.FieldDeadline, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(approval.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(approval.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(approval.FieldArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, approval.FieldArtifacts, value)
		})
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(approval.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(approval.FieldDecidedBy, field.TypeString, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(approval.FieldDecidedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(approval.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(approval.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.DecisionAt(); ok {
		_spec.SetField(approval.FieldDecisionAt, field.TypeTime, value)
	}
	if _u.mutation.DecisionAtCleared() {
		_spec.ClearField(approval.FieldDecisionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RequestedAt(); ok {
		_spec.SetField(approval.FieldRequestedAt, field.TypeTime, value)
	}
	_node = &Approval{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
