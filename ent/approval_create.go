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
	"github.com/trinity-ai/trinity/ent/approval"
)

// ApprovalCreate is the builder for creating a Approval entity.
type ApprovalCreate struct {
	config
	mutation *ApprovalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExecutionID sets the "execution_id" field.
func (_c *ApprovalCreate) SetExecutionID(v string) *ApprovalCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *ApprovalCreate) SetStepID(v string) *ApprovalCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetApprovers sets the "approvers" field.
func (_c *ApprovalCreate) SetApprovers(v []string) *ApprovalCreate {
	_c.mutation.SetApprovers(v)
	return _c
}

// SetDeadline sets the "deadline" field.
func (_c *ApprovalCreate) SetDeadline(v time.Time) *ApprovalCreate {
	_c.mutation.SetDeadline(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApprovalCreate) SetStatus(v approval.Status) *ApprovalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableStatus(v *approval.Status) *ApprovalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ApprovalCreate) SetTitle(v string) *ApprovalCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableTitle(v *string) *ApprovalCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetArtifacts sets the "artifacts" field.
func (_c *ApprovalCreate) SetArtifacts(v []string) *ApprovalCreate {
	_c.mutation.SetArtifacts(v)
	return _c
}

// SetDecidedBy sets the "decided_by" field.
func (_c *ApprovalCreate) SetDecidedBy(v string) *ApprovalCreate {
	_c.mutation.SetDecidedBy(v)
	return _c
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableDecidedBy(v *string) *ApprovalCreate {
	if v != nil {
		_c.SetDecidedBy(*v)
	}
	return _c
}

// SetComment sets the "comment" field.
func (_c *ApprovalCreate) SetComment(v string) *ApprovalCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableComment(v *string) *ApprovalCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetDecisionAt sets the "decision_at" field.
func (_c *ApprovalCreate) SetDecisionAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetDecisionAt(v)
	return _c
}

// SetNillableDecisionAt sets the "decision_at" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableDecisionAt(v *time.Time) *ApprovalCreate {
	if v != nil {
		_c.SetDecisionAt(*v)
	}
	return _c
}

// SetRequestedAt sets the "requested_at" field.
func (_c *ApprovalCreate) SetRequestedAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetRequestedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalCreate) SetID(v string) *ApprovalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalMutation object of the builder.
func (_c *ApprovalCreate) Mutation() *ApprovalMutation {
	return _c.mutation
}

// Save creates the Approval in the database.
func (_c *ApprovalCreate) Save(ctx context.Context) (*Approval, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalCreate) SaveX(ctx context.Context) *Approval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := approval.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "Approval.execution_id"`)}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "Approval.step_id"`)}
	}
	if _, ok := _c.mutation.Approvers(); !ok {
		return &ValidationError{Name: "approvers", err: errors.New(`ent: missing required field "Approval.approvers"`)}
	}
	if _, ok := _c.mutation.Deadline(); !ok {
		return &ValidationError{Name: "deadline", err: errors.New(`ent: missing required field "Approval.deadline"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Approval.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		return &ValidationError{Name: "requested_at", err: errors.New(`ent: missing required field "Approval.requested_at"`)}
	}
	return nil
}

func (_c *ApprovalCreate) sqlSave(ctx context.Context) (*Approval, error) {
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
			return nil, fmt.Errorf("unexpected Approval.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalCreate) createSpec() (*Approval, *sqlgraph.CreateSpec) {
	var (
		_node = &Approval{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approval.Table, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(approval.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(approval.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.Approvers(); ok {
		_spec.SetField(approval.FieldApprovers, field.TypeJSON, value)
		_node.Approvers = value
	}
	if value, ok := _c.mutation.Deadline(); ok {
		_spec.SetField(approval.FieldDeadline, field.TypeTime, value)
		_node.Deadline = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(approval.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Artifacts(); ok {
		_spec.SetField(approval.FieldArtifacts, field.TypeJSON, value)
		_node.Artifacts = value
	}
	if value, ok := _c.mutation.DecidedBy(); ok {
		_spec.SetField(approval.FieldDecidedBy, field.TypeString, value)
		_node.DecidedBy = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(approval.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.DecisionAt(); ok {
		_spec.SetField(approval.FieldDecisionAt, field.TypeTime, value)
		_node.DecisionAt = &value
	}
	if value, ok := _c.mutation.RequestedAt(); ok {
		_spec.SetField(approval.FieldRequestedAt, field.TypeTime, value)
		_node.RequestedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Approval.Create().
//		SetExecutionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalUpsert) {
//			SetExecutionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalCreate) OnConflict(opts ...sql.ConflictOption) *ApprovalUpsertOne {
	_c.conflict = opts
	return &ApprovalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Approval.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalCreate) OnConflictColumns(columns ...string) *ApprovalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalUpsertOne{
		create: _c,
	}
}

type (
	// ApprovalUpsertOne is the builder for "upsert"-ing
	//  one Approval node.
	ApprovalUpsertOne struct {
		create *ApprovalCreate
	}

	// ApprovalUpsert is the "OnConflict" setter.
	ApprovalUpsert struct {
		*sql.UpdateSet
	}
)

// SetExecutionID sets the "execution_id" field.
func (u *ApprovalUpsert) SetExecutionID(v string) *ApprovalUpsert {
	u.Set(approval.FieldExecutionID, v)
	return u
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateExecutionID() *ApprovalUpsert {
	u.SetExcluded(approval.FieldExecutionID)
	return u
}

// SetStepID sets the "step_id" field.
func (u *ApprovalUpsert) SetStepID(v string) *ApprovalUpsert {
	u.Set(approval.FieldStepID, v)
	return u
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateStepID() *ApprovalUpsert {
	u.SetExcluded(approval.FieldStepID)
	return u
}

// SetApprovers sets the "approvers" field.
func (u *ApprovalUpsert) SetApprovers(v []string) *ApprovalUpsert {
	u.Set(approval.FieldApprovers, v)
	return u
}

// UpdateApprovers sets the "approvers" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateApprovers() *ApprovalUpsert {
	u.SetExcluded(approval.FieldApprovers)
	return u
}

// SetDeadline sets the "deadline" field.
func (u *ApprovalUpsert) SetDeadline(v time.Time) *ApprovalUpsert {
	u.Set(approval.FieldDeadline, v)
	return u
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateDeadline() *ApprovalUpsert {
	u.SetExcluded(approval.FieldDeadline)
	return u
}

// SetStatus sets the "status" field.
func (u *ApprovalUpsert) SetStatus(v approval.Status) *ApprovalUpsert {
	u.Set(approval.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateStatus() *ApprovalUpsert {
	u.SetExcluded(approval.FieldStatus)
	return u
}

// SetTitle sets the "title" field.
func (u *ApprovalUpsert) SetTitle(v string) *ApprovalUpsert {
	u.Set(approval.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateTitle() *ApprovalUpsert {
	u.SetExcluded(approval.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *ApprovalUpsert) ClearTitle() *ApprovalUpsert {
	u.SetNull(approval.FieldTitle)
	return u
}

// SetArtifacts sets the "artifacts" field.
func (u *ApprovalUpsert) SetArtifacts(v []string) *ApprovalUpsert {
	u.Set(approval.FieldArtifacts, v)
	return u
}

// UpdateArtifacts sets the "artifacts" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateArtifacts() *ApprovalUpsert {
	u.SetExcluded(approval.FieldArtifacts)
	return u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (u *ApprovalUpsert) ClearArtifacts() *ApprovalUpsert {
	u.SetNull(approval.FieldArtifacts)
	return u
}

// SetDecidedBy sets the "decided_by" field.
func (u *ApprovalUpsert) SetDecidedBy(v string) *ApprovalUpsert {
	u.Set(approval.FieldDecidedBy, v)
	return u
}

// UpdateDecidedBy sets the "decided_by" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateDecidedBy() *ApprovalUpsert {
	u.SetExcluded(approval.FieldDecidedBy)
	return u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (u *ApprovalUpsert) ClearDecidedBy() *ApprovalUpsert {
	u.SetNull(approval.FieldDecidedBy)
	return u
}

// SetComment sets the "comment" field.
func (u *ApprovalUpsert) SetComment(v string) *ApprovalUpsert {
	u.Set(approval.FieldComment, v)
	return u
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateComment() *ApprovalUpsert {
	u.SetExcluded(approval.FieldComment)
	return u
}

// ClearComment clears the value of the "comment" field.
func (u *ApprovalUpsert) ClearComment() *ApprovalUpsert {
	u.SetNull(approval.FieldComment)
	return u
}

// SetDecisionAt sets the "decision_at" field.
func (u *ApprovalUpsert) SetDecisionAt(v time.Time) *ApprovalUpsert {
	u.Set(approval.FieldDecisionAt, v)
	return u
}

// UpdateDecisionAt sets the "decision_at" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateDecisionAt() *ApprovalUpsert {
	u.SetExcluded(approval.FieldDecisionAt)
	return u
}

// ClearDecisionAt clears the value of the "decision_at" field.
func (u *ApprovalUpsert) ClearDecisionAt() *ApprovalUpsert {
	u.SetNull(approval.FieldDecisionAt)
	return u
}

// SetRequestedAt sets the "requested_at" field.
func (u *ApprovalUpsert) SetRequestedAt(v time.Time) *ApprovalUpsert {
	u.Set(approval.FieldRequestedAt, v)
	return u
}

// UpdateRequestedAt sets the "requested_at" field to the value that was provided on create.
func (u *ApprovalUpsert) UpdateRequestedAt() *ApprovalUpsert {
	u.SetExcluded(approval.FieldRequestedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Approval.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approval.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalUpsertOne) UpdateNewValues() *ApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(approval.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Approval.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApprovalUpsertOne) Ignore() *ApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalUpsertOne) DoNothing() *ApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalCreate.OnConflict
// documentation for more info.
func (u *ApprovalUpsertOne) Update(set func(*ApprovalUpsert)) *ApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutionID sets the "execution_id" field.
func (u *ApprovalUpsertOne) SetExecutionID(v string) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateExecutionID() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateExecutionID()
	})
}

// SetStepID sets the "step_id" field.
func (u *ApprovalUpsertOne) SetStepID(v string) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateStepID() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateStepID()
	})
}

// SetApprovers sets the "approvers" field.
func (u *ApprovalUpsertOne) SetApprovers(v []string) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetApprovers(v)
	})
}

// UpdateApprovers sets the "approvers" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateApprovers() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateApprovers()
	})
}

// SetDeadline sets the "deadline" field.
func (u *ApprovalUpsertOne) SetDeadline(v time.Time) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetDeadline(v)
	})
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateDeadline() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateDeadline()
	})
}

// SetStatus sets the "status" field.
func (u *ApprovalUpsertOne) SetStatus(v approval.Status) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateStatus() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateStatus()
	})
}

// SetTitle sets the "title" field.
func (u *ApprovalUpsertOne) SetTitle(v string) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateTitle() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *ApprovalUpsertOne) ClearTitle() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearTitle()
	})
}

// SetArtifacts sets the "artifacts" field.
func (u *ApprovalUpsertOne) SetArtifacts(v []string) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetArtifacts(v)
	})
}

// UpdateArtifacts sets the "artifacts" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateArtifacts() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateArtifacts()
	})
}

// ClearArtifacts clears the value of the "artifacts" field.
func (u *ApprovalUpsertOne) ClearArtifacts() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearArtifacts()
	})
}

// SetDecidedBy sets the "decided_by" field.
func (u *ApprovalUpsertOne) SetDecidedBy(v string) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetDecidedBy(v)
	})
}

// UpdateDecidedBy sets the "decided_by" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateDecidedBy() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateDecidedBy()
	})
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (u *ApprovalUpsertOne) ClearDecidedBy() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearDecidedBy()
	})
}

// SetComment sets the "comment" field.
func (u *ApprovalUpsertOne) SetComment(v string) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetComment(v)
	})
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateComment() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateComment()
	})
}

// ClearComment clears the value of the "comment" field.
func (u *ApprovalUpsertOne) ClearComment() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearComment()
	})
}

// SetDecisionAt sets the "decision_at" field.
func (u *ApprovalUpsertOne) SetDecisionAt(v time.Time) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetDecisionAt(v)
	})
}

// UpdateDecisionAt sets the "decision_at" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateDecisionAt() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateDecisionAt()
	})
}

// ClearDecisionAt clears the value of the "decision_at" field.
func (u *ApprovalUpsertOne) ClearDecisionAt() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearDecisionAt()
	})
}

// SetRequestedAt sets the "requested_at" field.
func (u *ApprovalUpsertOne) SetRequestedAt(v time.Time) *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetRequestedAt(v)
	})
}

// UpdateRequestedAt sets the "requested_at" field to the value that was provided on create.
func (u *ApprovalUpsertOne) UpdateRequestedAt() *ApprovalUpsertOne {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateRequestedAt()
	})
}

// Exec executes the query.
func (u *ApprovalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApprovalUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ApprovalUpsertOne.ID is not supported by MySQL driver. Use ApprovalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApprovalUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApprovalCreateBulk is the builder for creating many Approval entities in bulk.
type ApprovalCreateBulk struct {
	config
	err      error
	builders []*ApprovalCreate
	conflict []sql.ConflictOption
}

// Save creates the Approval entities in the database.
func (_c *ApprovalCreateBulk) Save(ctx context.Context) ([]*Approval, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Approval, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalMutation)
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
func (_c *ApprovalCreateBulk) SaveX(ctx context.Context) []*Approval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Approval.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalUpsert) {
//			SetExecutionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApprovalUpsertBulk {
	_c.conflict = opts
	return &ApprovalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Approval.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalCreateBulk) OnConflictColumns(columns ...string) *ApprovalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalUpsertBulk{
		create: _c,
	}
}

// ApprovalUpsertBulk is the builder for "upsert"-ing
// a bulk of Approval nodes.
type ApprovalUpsertBulk struct {
	create *ApprovalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Approval.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approval.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalUpsertBulk) UpdateNewValues() *ApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(approval.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Approval.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApprovalUpsertBulk) Ignore() *ApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalUpsertBulk) DoNothing() *ApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalCreateBulk.OnConflict
// documentation for more info.
func (u *ApprovalUpsertBulk) Update(set func(*ApprovalUpsert)) *ApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutionID sets the "execution_id" field.
func (u *ApprovalUpsertBulk) SetExecutionID(v string) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateExecutionID() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateExecutionID()
	})
}

// SetStepID sets the "step_id" field.
func (u *ApprovalUpsertBulk) SetStepID(v string) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateStepID() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateStepID()
	})
}

// SetApprovers sets the "approvers" field.
func (u *ApprovalUpsertBulk) SetApprovers(v []string) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetApprovers(v)
	})
}

// UpdateApprovers sets the "approvers" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateApprovers() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateApprovers()
	})
}

// SetDeadline sets the "deadline" field.
func (u *ApprovalUpsertBulk) SetDeadline(v time.Time) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetDeadline(v)
	})
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateDeadline() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateDeadline()
	})
}

// SetStatus sets the "status" field.
func (u *ApprovalUpsertBulk) SetStatus(v approval.Status) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateStatus() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateStatus()
	})
}

// SetTitle sets the "title" field.
func (u *ApprovalUpsertBulk) SetTitle(v string) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateTitle() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *ApprovalUpsertBulk) ClearTitle() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearTitle()
	})
}

// SetArtifacts sets the "artifacts" field.
func (u *ApprovalUpsertBulk) SetArtifacts(v []string) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetArtifacts(v)
	})
}

// UpdateArtifacts sets the "artifacts" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateArtifacts() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateArtifacts()
	})
}

// ClearArtifacts clears the value of the "artifacts" field.
func (u *ApprovalUpsertBulk) ClearArtifacts() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearArtifacts()
	})
}

// SetDecidedBy sets the "decided_by" field.
func (u *ApprovalUpsertBulk) SetDecidedBy(v string) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetDecidedBy(v)
	})
}

// UpdateDecidedBy sets the "decided_by" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateDecidedBy() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateDecidedBy()
	})
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (u *ApprovalUpsertBulk) ClearDecidedBy() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearDecidedBy()
	})
}

// SetComment sets the "comment" field.
func (u *ApprovalUpsertBulk) SetComment(v string) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetComment(v)
	})
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateComment() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateComment()
	})
}

// ClearComment clears the value of the "comment" field.
func (u *ApprovalUpsertBulk) ClearComment() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearComment()
	})
}

// SetDecisionAt sets the "decision_at" field.
func (u *ApprovalUpsertBulk) SetDecisionAt(v time.Time) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetDecisionAt(v)
	})
}

// UpdateDecisionAt sets the "decision_at" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateDecisionAt() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateDecisionAt()
	})
}

// ClearDecisionAt clears the value of the "decision_at" field.
func (u *ApprovalUpsertBulk) ClearDecisionAt() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.ClearDecisionAt()
	})
}

// SetRequestedAt sets the "requested_at" field.
func (u *ApprovalUpsertBulk) SetRequestedAt(v time.Time) *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.SetRequestedAt(v)
	})
}

// UpdateRequestedAt sets the "requested_at" field to the value that was provided on create.
func (u *ApprovalUpsertBulk) UpdateRequestedAt() *ApprovalUpsertBulk {
	return u.Update(func(s *ApprovalUpsert) {
		s.UpdateRequestedAt()
	})
}

// Exec executes the query.
func (u *ApprovalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApprovalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
