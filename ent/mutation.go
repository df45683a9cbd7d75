// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trinity-ai/trinity/ent/approval"
	"github.com/trinity-ai/trinity/ent/auditentry"
	"github.com/trinity-ai/trinity/ent/event"
	"github.com/trinity-ai/trinity/ent/predicate"
	"github.com/trinity-ai/trinity/ent/processdefinition"
	"github.com/trinity-ai/trinity/ent/processexecution"
	"github.com/trinity-ai/trinity/ent/schedule"
	"github.com/trinity-ai/trinity/ent/stepoutput"
	"github.com/trinity-ai/trinity/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApproval          = "Approval"
	TypeAuditEntry        = "AuditEntry"
	TypeEvent             = "Event"
	TypeProcessDefinition = "ProcessDefinition"
	TypeProcessExecution  = "ProcessExecution"
	TypeSchedule          = "Schedule"
	TypeStepOutput        = "StepOutput"
)

// ApprovalMutation represents an operation that mutates the Approval nodes in the graph.
type ApprovalMutation struct {
	config
	op              Op
	typ             string
	id              *string
	execution_id    *string
	step_id         *string
	approvers       *[]string
	appendapprovers []string
	deadline        *time.Time
	status          *approval.Status
	title           *string
	artifacts       *[]string
	appendartifacts []string
	decided_by      *string
	comment         *string
	decision_at     *time.Time
	requested_at    *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Approval, error)
	predicates      []predicate.Approval
}

var _ ent.Mutation = (*ApprovalMutation)(nil)

// approvalOption allows management of the mutation configuration using functional options.
type approvalOption func(*ApprovalMutation)

// newApprovalMutation creates new mutation for the Approval entity.
func newApprovalMutation(c config, op Op, opts ...approvalOption) *ApprovalMutation {
	m := &ApprovalMutation{
		config:        c,
		op:            op,
		typ:           TypeApproval,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalID sets the ID field of the mutation.
func withApprovalID(id string) approvalOption {
	return func(m *ApprovalMutation) {
		var (
			err   error
			once  sync.Once
			value *Approval
		)
		m.oldValue = func(ctx context.Context) (*Approval, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Approval.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApproval sets the old Approval of the mutation.
func withApproval(node *Approval) approvalOption {
	return func(m *ApprovalMutation) {
		m.oldValue = func(context.Context) (*Approval, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Approval entities.
func (m *ApprovalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Approval.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *ApprovalMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *ApprovalMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *ApprovalMutation) ResetExecutionID() {
	m.execution_id = nil
}

// SetStepID sets the "step_id" field.
func (m *ApprovalMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *ApprovalMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *ApprovalMutation) ResetStepID() {
	m.step_id = nil
}

// SetApprovers sets the "approvers" field.
func (m *ApprovalMutation) SetApprovers(s []string) {
	m.approvers = &s
	m.appendapprovers = nil
}

// Approvers returns the value of the "approvers" field in the mutation.
func (m *ApprovalMutation) Approvers() (r []string, exists bool) {
	v := m.approvers
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovers returns the old "approvers" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldApprovers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovers: %w", err)
	}
	return oldValue.Approvers, nil
}

// AppendApprovers adds s to the "approvers" field.
func (m *ApprovalMutation) AppendApprovers(s []string) {
	m.appendapprovers = append(m.appendapprovers, s...)
}

// AppendedApprovers returns the list of values that were appended to the "approvers" field in this mutation.
func (m *ApprovalMutation) AppendedApprovers() ([]string, bool) {
	if len(m.appendapprovers) == 0 {
		return nil, false
	}
	return m.appendapprovers, true
}

// ResetApprovers resets all changes to the "approvers" field.
func (m *ApprovalMutation) ResetApprovers() {
	m.approvers = nil
	m.appendapprovers = nil
}

// SetDeadline sets the "deadline" field.
func (m *ApprovalMutation) SetDeadline(t time.Time) {
	m.deadline = &t
}

// Deadline returns the value of the "deadline" field in the mutation.
func (m *ApprovalMutation) Deadline() (r time.Time, exists bool) {
	v := m.deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadline returns the old "deadline" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldDeadline(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadline: %w", err)
	}
	return oldValue.Deadline, nil
}

// ResetDeadline resets all changes to the "deadline" field.
func (m *ApprovalMutation) ResetDeadline() {
	m.deadline = nil
}

// SetStatus sets the "status" field.
func (m *ApprovalMutation) SetStatus(a approval.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ApprovalMutation) Status() (r approval.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldStatus(ctx context.Context) (v approval.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApprovalMutation) ResetStatus() {
	m.status = nil
}

// SetTitle sets the "title" field.
func (m *ApprovalMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ApprovalMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ApprovalMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[approval.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ApprovalMutation) TitleCleared() bool {
	_, ok := m.clearedFields[approval.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ApprovalMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, approval.FieldTitle)
}

// SetArtifacts sets the "artifacts" field.
func (m *ApprovalMutation) SetArtifacts(s []string) {
	m.artifacts = &s
	m.appendartifacts = nil
}

// Artifacts returns the value of the "artifacts" field in the mutation.
func (m *ApprovalMutation) Artifacts() (r []string, exists bool) {
	v := m.artifacts
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifacts returns the old "artifacts" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldArtifacts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifacts: %w", err)
	}
	return oldValue.Artifacts, nil
}

// AppendArtifacts adds s to the "artifacts" field.
func (m *ApprovalMutation) AppendArtifacts(s []string) {
	m.appendartifacts = append(m.appendartifacts, s...)
}

// AppendedArtifacts returns the list of values that were appended to the "artifacts" field in this mutation.
func (m *ApprovalMutation) AppendedArtifacts() ([]string, bool) {
	if len(m.appendartifacts) == 0 {
		return nil, false
	}
	return m.appendartifacts, true
}

// ClearArtifacts clears the value of the "artifacts" field.
func (m *ApprovalMutation) ClearArtifacts() {
	m.artifacts = nil
	m.appendartifacts = nil
	m.clearedFields[approval.FieldArtifacts] = struct{}{}
}

// ArtifactsCleared returns if the "artifacts" field was cleared in this mutation.
func (m *ApprovalMutation) ArtifactsCleared() bool {
	_, ok := m.clearedFields[approval.FieldArtifacts]
	return ok
}

// ResetArtifacts resets all changes to the "artifacts" field.
func (m *ApprovalMutation) ResetArtifacts() {
	m.artifacts = nil
	m.appendartifacts = nil
	delete(m.clearedFields, approval.FieldArtifacts)
}

// SetDecidedBy sets the "decided_by" field.
func (m *ApprovalMutation) SetDecidedBy(s string) {
	m.decided_by = &s
}

// DecidedBy returns the value of the "decided_by" field in the mutation.
func (m *ApprovalMutation) DecidedBy() (r string, exists bool) {
	v := m.decided_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedBy returns the old "decided_by" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldDecidedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedBy: %w", err)
	}
	return oldValue.DecidedBy, nil
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (m *ApprovalMutation) ClearDecidedBy() {
	m.decided_by = nil
	m.clearedFields[approval.FieldDecidedBy] = struct{}{}
}

// DecidedByCleared returns if the "decided_by" field was cleared in this mutation.
func (m *ApprovalMutation) DecidedByCleared() bool {
	_, ok := m.clearedFields[approval.FieldDecidedBy]
	return ok
}

// ResetDecidedBy resets all changes to the "decided_by" field.
func (m *ApprovalMutation) ResetDecidedBy() {
	m.decided_by = nil
	delete(m.clearedFields, approval.FieldDecidedBy)
}

// SetComment sets the "comment" field.
func (m *ApprovalMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *ApprovalMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *ApprovalMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[approval.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *ApprovalMutation) CommentCleared() bool {
	_, ok := m.clearedFields[approval.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *ApprovalMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, approval.FieldComment)
}

// SetDecisionAt sets the "decision_at" field.
func (m *ApprovalMutation) SetDecisionAt(t time.Time) {
	m.decision_at = &t
}

// DecisionAt returns the value of the "decision_at" field in the mutation.
func (m *ApprovalMutation) DecisionAt() (r time.Time, exists bool) {
	v := m.decision_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionAt returns the old "decision_at" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldDecisionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionAt: %w", err)
	}
	return oldValue.DecisionAt, nil
}

// ClearDecisionAt clears the value of the "decision_at" field.
func (m *ApprovalMutation) ClearDecisionAt() {
	m.decision_at = nil
	m.clearedFields[approval.FieldDecisionAt] = struct{}{}
}

// DecisionAtCleared returns if the "decision_at" field was cleared in this mutation.
func (m *ApprovalMutation) DecisionAtCleared() bool {
	_, ok := m.clearedFields[approval.FieldDecisionAt]
	return ok
}

// ResetDecisionAt resets all changes to the "decision_at" field.
func (m *ApprovalMutation) ResetDecisionAt() {
	m.decision_at = nil
	delete(m.clearedFields, approval.FieldDecisionAt)
}

// SetRequestedAt sets the "requested_at" field.
func (m *ApprovalMutation) SetRequestedAt(t time.Time) {
	m.requested_at = &t
}

// RequestedAt returns the value of the "requested_at" field in the mutation.
func (m *ApprovalMutation) RequestedAt() (r time.Time, exists bool) {
	v := m.requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedAt returns the old "requested_at" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldRequestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedAt: %w", err)
	}
	return oldValue.RequestedAt, nil
}

// ResetRequestedAt resets all changes to the "requested_at" field.
func (m *ApprovalMutation) ResetRequestedAt() {
	m.requested_at = nil
}

// Where appends a list predicates to the ApprovalMutation builder.
func (m *ApprovalMutation) Where(ps ...predicate.Approval) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Approval, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Approval).
func (m *ApprovalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.execution_id != nil {
		fields = append(fields, approval.FieldExecutionID)
	}
	if m.step_id != nil {
		fields = append(fields, approval.FieldStepID)
	}
	if m.approvers != nil {
		fields = append(fields, approval.FieldApprovers)
	}
	if m.deadline != nil {
		fields = append(fields, approval.FieldDeadline)
	}
	if m.status != nil {
		fields = append(fields, approval.FieldStatus)
	}
	if m.title != nil {
		fields = append(fields, approval.FieldTitle)
	}
	if m.artifacts != nil {
		fields = append(fields, approval.FieldArtifacts)
	}
	if m.decided_by != nil {
		fields = append(fields, approval.FieldDecidedBy)
	}
	if m.comment != nil {
		fields = append(fields, approval.FieldComment)
	}
	if m.decision_at != nil {
		fields = append(fields, approval.FieldDecisionAt)
	}
	if m.requested_at != nil {
		fields = append(fields, approval.FieldRequestedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approval.FieldExecutionID:
		return m.ExecutionID()
	case approval.FieldStepID:
		return m.StepID()
	case approval.FieldApprovers:
		return m.Approvers()
	case approval.FieldDeadline:
		return m.Deadline()
	case approval.FieldStatus:
		return m.Status()
	case approval.FieldTitle:
		return m.Title()
	case approval.FieldArtifacts:
		return m.Artifacts()
	case approval.FieldDecidedBy:
		return m.DecidedBy()
	case approval.FieldComment:
		return m.Comment()
	case approval.FieldDecisionAt:
		return m.DecisionAt()
	case approval.FieldRequestedAt:
		return m.RequestedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approval.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case approval.FieldStepID:
		return m.OldStepID(ctx)
	case approval.FieldApprovers:
		return m.OldApprovers(ctx)
	case approval.FieldDeadline:
		return m.OldDeadline(ctx)
	case approval.FieldStatus:
		return m.OldStatus(ctx)
	case approval.FieldTitle:
		return m.OldTitle(ctx)
	case approval.FieldArtifacts:
		return m.OldArtifacts(ctx)
	case approval.FieldDecidedBy:
		return m.OldDecidedBy(ctx)
	case approval.FieldComment:
		return m.OldComment(ctx)
	case approval.FieldDecisionAt:
		return m.OldDecisionAt(ctx)
	case approval.FieldRequestedAt:
		return m.OldRequestedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Approval field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approval.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case approval.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case approval.FieldApprovers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovers(v)
		return nil
	case approval.FieldDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadline(v)
		return nil
	case approval.FieldStatus:
		v, ok := value.(approval.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case approval.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case approval.FieldArtifacts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifacts(v)
		return nil
	case approval.FieldDecidedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedBy(v)
		return nil
	case approval.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case approval.FieldDecisionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionAt(v)
		return nil
	case approval.FieldRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Approval field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Approval numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approval.FieldTitle) {
		fields = append(fields, approval.FieldTitle)
	}
	if m.FieldCleared(approval.FieldArtifacts) {
		fields = append(fields, approval.FieldArtifacts)
	}
	if m.FieldCleared(approval.FieldDecidedBy) {
		fields = append(fields, approval.FieldDecidedBy)
	}
	if m.FieldCleared(approval.FieldComment) {
		fields = append(fields, approval.FieldComment)
	}
	if m.FieldCleared(approval.FieldDecisionAt) {
		fields = append(fields, approval.FieldDecisionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalMutation) ClearField(name string) error {
	switch name {
	case approval.FieldTitle:
		m.ClearTitle()
		return nil
	case approval.FieldArtifacts:
		m.ClearArtifacts()
		return nil
	case approval.FieldDecidedBy:
		m.ClearDecidedBy()
		return nil
	case approval.FieldComment:
		m.ClearComment()
		return nil
	case approval.FieldDecisionAt:
		m.ClearDecisionAt()
		return nil
	}
	return fmt.Errorf("unknown Approval nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalMutation) ResetField(name string) error {
	switch name {
	case approval.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case approval.FieldStepID:
		m.ResetStepID()
		return nil
	case approval.FieldApprovers:
		m.ResetApprovers()
		return nil
	case approval.FieldDeadline:
		m.ResetDeadline()
		return nil
	case approval.FieldStatus:
		m.ResetStatus()
		return nil
	case approval.FieldTitle:
		m.ResetTitle()
		return nil
	case approval.FieldArtifacts:
		m.ResetArtifacts()
		return nil
	case approval.FieldDecidedBy:
		m.ResetDecidedBy()
		return nil
	case approval.FieldComment:
		m.ResetComment()
		return nil
	case approval.FieldDecisionAt:
		m.ResetDecisionAt()
		return nil
	case approval.FieldRequestedAt:
		m.ResetRequestedAt()
		return nil
	}
	return fmt.Errorf("unknown Approval field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Approval unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Approval edge %s", name)
}

// AuditEntryMutation represents an operation that mutates the AuditEntry nodes in the graph.
type AuditEntryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	timestamp           *time.Time
	actor               *string
	action              *string
	resource_type       *string
	resource_id         *string
	details             *map[string]interface{}
	ip                  *string
	user_agent          *string
	data_classification *string
	retention_days      *int
	addretention_days   *int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*AuditEntry, error)
	predicates          []predicate.AuditEntry
}

var _ ent.Mutation = (*AuditEntryMutation)(nil)

// auditentryOption allows management of the mutation configuration using functional options.
type auditentryOption func(*AuditEntryMutation)

// newAuditEntryMutation creates new mutation for the AuditEntry entity.
func newAuditEntryMutation(c config, op Op, opts ...auditentryOption) *AuditEntryMutation {
	m := &AuditEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEntryID sets the ID field of the mutation.
func withAuditEntryID(id string) auditentryOption {
	return func(m *AuditEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEntry
		)
		m.oldValue = func(ctx context.Context) (*AuditEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEntry sets the old AuditEntry of the mutation.
func withAuditEntry(node *AuditEntry) auditentryOption {
	return func(m *AuditEntryMutation) {
		m.oldValue = func(context.Context) (*AuditEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEntry entities.
func (m *AuditEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *AuditEntryMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AuditEntryMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AuditEntryMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetActor sets the "actor" field.
func (m *AuditEntryMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditEntryMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditEntryMutation) ResetActor() {
	m.actor = nil
}

// SetAction sets the "action" field.
func (m *AuditEntryMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditEntryMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditEntryMutation) ResetAction() {
	m.action = nil
}

// SetResourceType sets the "resource_type" field.
func (m *AuditEntryMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *AuditEntryMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *AuditEntryMutation) ResetResourceType() {
	m.resource_type = nil
}

// SetResourceID sets the "resource_id" field.
func (m *AuditEntryMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *AuditEntryMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *AuditEntryMutation) ResetResourceID() {
	m.resource_id = nil
}

// SetDetails sets the "details" field.
func (m *AuditEntryMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AuditEntryMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AuditEntryMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[auditentry.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AuditEntryMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AuditEntryMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, auditentry.FieldDetails)
}

// SetIP sets the "ip" field.
func (m *AuditEntryMutation) SetIP(s string) {
	m.ip = &s
}

// IP returns the value of the "ip" field in the mutation.
func (m *AuditEntryMutation) IP() (r string, exists bool) {
	v := m.ip
	if v == nil {
		return
	}
	return *v, true
}

// OldIP returns the old "ip" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldIP(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIP: %w", err)
	}
	return oldValue.IP, nil
}

// ClearIP clears the value of the "ip" field.
func (m *AuditEntryMutation) ClearIP() {
	m.ip = nil
	m.clearedFields[auditentry.FieldIP] = struct{}{}
}

// IPCleared returns if the "ip" field was cleared in this mutation.
func (m *AuditEntryMutation) IPCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldIP]
	return ok
}

// ResetIP resets all changes to the "ip" field.
func (m *AuditEntryMutation) ResetIP() {
	m.ip = nil
	delete(m.clearedFields, auditentry.FieldIP)
}

// SetUserAgent sets the "user_agent" field.
func (m *AuditEntryMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *AuditEntryMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldUserAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *AuditEntryMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[auditentry.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *AuditEntryMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *AuditEntryMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, auditentry.FieldUserAgent)
}

// SetDataClassification sets the "data_classification" field.
func (m *AuditEntryMutation) SetDataClassification(s string) {
	m.data_classification = &s
}

// DataClassification returns the value of the "data_classification" field in the mutation.
func (m *AuditEntryMutation) DataClassification() (r string, exists bool) {
	v := m.data_classification
	if v == nil {
		return
	}
	return *v, true
}

// OldDataClassification returns the old "data_classification" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldDataClassification(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataClassification: %w", err)
	}
	return oldValue.DataClassification, nil
}

// ClearDataClassification clears the value of the "data_classification" field.
func (m *AuditEntryMutation) ClearDataClassification() {
	m.data_classification = nil
	m.clearedFields[auditentry.FieldDataClassification] = struct{}{}
}

// DataClassificationCleared returns if the "data_classification" field was cleared in this mutation.
func (m *AuditEntryMutation) DataClassificationCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldDataClassification]
	return ok
}

// ResetDataClassification resets all changes to the "data_classification" field.
func (m *AuditEntryMutation) ResetDataClassification() {
	m.data_classification = nil
	delete(m.clearedFields, auditentry.FieldDataClassification)
}

// SetRetentionDays sets the "retention_days" field.
func (m *AuditEntryMutation) SetRetentionDays(i int) {
	m.retention_days = &i
	m.addretention_days = nil
}

// RetentionDays returns the value of the "retention_days" field in the mutation.
func (m *AuditEntryMutation) RetentionDays() (r int, exists bool) {
	v := m.retention_days
	if v == nil {
		return
	}
	return *v, true
}

// OldRetentionDays returns the old "retention_days" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldRetentionDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetentionDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetentionDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetentionDays: %w", err)
	}
	return oldValue.RetentionDays, nil
}

// AddRetentionDays adds i to the "retention_days" field.
func (m *AuditEntryMutation) AddRetentionDays(i int) {
	if m.addretention_days != nil {
		*m.addretention_days += i
	} else {
		m.addretention_days = &i
	}
}

// AddedRetentionDays returns the value that was added to the "retention_days" field in this mutation.
func (m *AuditEntryMutation) AddedRetentionDays() (r int, exists bool) {
	v := m.addretention_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetentionDays resets all changes to the "retention_days" field.
func (m *AuditEntryMutation) ResetRetentionDays() {
	m.retention_days = nil
	m.addretention_days = nil
}

// Where appends a list predicates to the AuditEntryMutation builder.
func (m *AuditEntryMutation) Where(ps ...predicate.AuditEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEntry).
func (m *AuditEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEntryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.timestamp != nil {
		fields = append(fields, auditentry.FieldTimestamp)
	}
	if m.actor != nil {
		fields = append(fields, auditentry.FieldActor)
	}
	if m.action != nil {
		fields = append(fields, auditentry.FieldAction)
	}
	if m.resource_type != nil {
		fields = append(fields, auditentry.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, auditentry.FieldResourceID)
	}
	if m.details != nil {
		fields = append(fields, auditentry.FieldDetails)
	}
	if m.ip != nil {
		fields = append(fields, auditentry.FieldIP)
	}
	if m.user_agent != nil {
		fields = append(fields, auditentry.FieldUserAgent)
	}
	if m.data_classification != nil {
		fields = append(fields, auditentry.FieldDataClassification)
	}
	if m.retention_days != nil {
		fields = append(fields, auditentry.FieldRetentionDays)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldTimestamp:
		return m.Timestamp()
	case auditentry.FieldActor:
		return m.Actor()
	case auditentry.FieldAction:
		return m.Action()
	case auditentry.FieldResourceType:
		return m.ResourceType()
	case auditentry.FieldResourceID:
		return m.ResourceID()
	case auditentry.FieldDetails:
		return m.Details()
	case auditentry.FieldIP:
		return m.IP()
	case auditentry.FieldUserAgent:
		return m.UserAgent()
	case auditentry.FieldDataClassification:
		return m.DataClassification()
	case auditentry.FieldRetentionDays:
		return m.RetentionDays()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditentry.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case auditentry.FieldActor:
		return m.OldActor(ctx)
	case auditentry.FieldAction:
		return m.OldAction(ctx)
	case auditentry.FieldResourceType:
		return m.OldResourceType(ctx)
	case auditentry.FieldResourceID:
		return m.OldResourceID(ctx)
	case auditentry.FieldDetails:
		return m.OldDetails(ctx)
	case auditentry.FieldIP:
		return m.OldIP(ctx)
	case auditentry.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case auditentry.FieldDataClassification:
		return m.OldDataClassification(ctx)
	case auditentry.FieldRetentionDays:
		return m.OldRetentionDays(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case auditentry.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditentry.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditentry.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case auditentry.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case auditentry.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case auditentry.FieldIP:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIP(v)
		return nil
	case auditentry.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case auditentry.FieldDataClassification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataClassification(v)
		return nil
	case auditentry.FieldRetentionDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetentionDays(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEntryMutation) AddedFields() []string {
	var fields []string
	if m.addretention_days != nil {
		fields = append(fields, auditentry.FieldRetentionDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldRetentionDays:
		return m.AddedRetentionDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldRetentionDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetentionDays(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditentry.FieldDetails) {
		fields = append(fields, auditentry.FieldDetails)
	}
	if m.FieldCleared(auditentry.FieldIP) {
		fields = append(fields, auditentry.FieldIP)
	}
	if m.FieldCleared(auditentry.FieldUserAgent) {
		fields = append(fields, auditentry.FieldUserAgent)
	}
	if m.FieldCleared(auditentry.FieldDataClassification) {
		fields = append(fields, auditentry.FieldDataClassification)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEntryMutation) ClearField(name string) error {
	switch name {
	case auditentry.FieldDetails:
		m.ClearDetails()
		return nil
	case auditentry.FieldIP:
		m.ClearIP()
		return nil
	case auditentry.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case auditentry.FieldDataClassification:
		m.ClearDataClassification()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEntryMutation) ResetField(name string) error {
	switch name {
	case auditentry.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case auditentry.FieldActor:
		m.ResetActor()
		return nil
	case auditentry.FieldAction:
		m.ResetAction()
		return nil
	case auditentry.FieldResourceType:
		m.ResetResourceType()
		return nil
	case auditentry.FieldResourceID:
		m.ResetResourceID()
		return nil
	case auditentry.FieldDetails:
		m.ResetDetails()
		return nil
	case auditentry.FieldIP:
		m.ResetIP()
		return nil
	case auditentry.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case auditentry.FieldDataClassification:
		m.ResetDataClassification()
		return nil
	case auditentry.FieldRetentionDays:
		m.ResetRetentionDays()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	execution_id  *string
	process_id    *string
	step_id       *string
	_type         *string
	seq           *int64
	addseq        *int64
	timestamp     *time.Time
	payload       *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *EventMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *EventMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *EventMutation) ResetExecutionID() {
	m.execution_id = nil
}

// SetProcessID sets the "process_id" field.
func (m *EventMutation) SetProcessID(s string) {
	m.process_id = &s
}

// ProcessID returns the value of the "process_id" field in the mutation.
func (m *EventMutation) ProcessID() (r string, exists bool) {
	v := m.process_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessID returns the old "process_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldProcessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessID: %w", err)
	}
	return oldValue.ProcessID, nil
}

// ClearProcessID clears the value of the "process_id" field.
func (m *EventMutation) ClearProcessID() {
	m.process_id = nil
	m.clearedFields[event.FieldProcessID] = struct{}{}
}

// ProcessIDCleared returns if the "process_id" field was cleared in this mutation.
func (m *EventMutation) ProcessIDCleared() bool {
	_, ok := m.clearedFields[event.FieldProcessID]
	return ok
}

// ResetProcessID resets all changes to the "process_id" field.
func (m *EventMutation) ResetProcessID() {
	m.process_id = nil
	delete(m.clearedFields, event.FieldProcessID)
}

// SetStepID sets the "step_id" field.
func (m *EventMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *EventMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ClearStepID clears the value of the "step_id" field.
func (m *EventMutation) ClearStepID() {
	m.step_id = nil
	m.clearedFields[event.FieldStepID] = struct{}{}
}

// StepIDCleared returns if the "step_id" field was cleared in this mutation.
func (m *EventMutation) StepIDCleared() bool {
	_, ok := m.clearedFields[event.FieldStepID]
	return ok
}

// ResetStepID resets all changes to the "step_id" field.
func (m *EventMutation) ResetStepID() {
	m.step_id = nil
	delete(m.clearedFields, event.FieldStepID)
}

// SetType sets the "type" field.
func (m *EventMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *EventMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *EventMutation) ResetType() {
	m._type = nil
}

// SetSeq sets the "seq" field.
func (m *EventMutation) SetSeq(i int64) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *EventMutation) Seq() (r int64, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *EventMutation) AddSeq(i int64) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *EventMutation) AddedSeq() (r int64, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *EventMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *EventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *EventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *EventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *EventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[event.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *EventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[event.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, event.FieldPayload)
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.execution_id != nil {
		fields = append(fields, event.FieldExecutionID)
	}
	if m.process_id != nil {
		fields = append(fields, event.FieldProcessID)
	}
	if m.step_id != nil {
		fields = append(fields, event.FieldStepID)
	}
	if m._type != nil {
		fields = append(fields, event.FieldType)
	}
	if m.seq != nil {
		fields = append(fields, event.FieldSeq)
	}
	if m.timestamp != nil {
		fields = append(fields, event.FieldTimestamp)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldExecutionID:
		return m.ExecutionID()
	case event.FieldProcessID:
		return m.ProcessID()
	case event.FieldStepID:
		return m.StepID()
	case event.FieldType:
		return m.GetType()
	case event.FieldSeq:
		return m.Seq()
	case event.FieldTimestamp:
		return m.Timestamp()
	case event.FieldPayload:
		return m.Payload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case event.FieldProcessID:
		return m.OldProcessID(ctx)
	case event.FieldStepID:
		return m.OldStepID(ctx)
	case event.FieldType:
		return m.OldType(ctx)
	case event.FieldSeq:
		return m.OldSeq(ctx)
	case event.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case event.FieldProcessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessID(v)
		return nil
	case event.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case event.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case event.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case event.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, event.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldProcessID) {
		fields = append(fields, event.FieldProcessID)
	}
	if m.FieldCleared(event.FieldStepID) {
		fields = append(fields, event.FieldStepID)
	}
	if m.FieldCleared(event.FieldPayload) {
		fields = append(fields, event.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldProcessID:
		m.ClearProcessID()
		return nil
	case event.FieldStepID:
		m.ClearStepID()
		return nil
	case event.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case event.FieldProcessID:
		m.ResetProcessID()
		return nil
	case event.FieldStepID:
		m.ResetStepID()
		return nil
	case event.FieldType:
		m.ResetType()
		return nil
	case event.FieldSeq:
		m.ResetSeq()
		return nil
	case event.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// ProcessDefinitionMutation represents an operation that mutates the ProcessDefinition nodes in the graph.
type ProcessDefinitionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	name                *string
	version             *string
	status              *processdefinition.Status
	steps               *[]models.StepDefinition
	appendsteps         []models.StepDefinition
	triggers            *[]models.Trigger
	appendtriggers      []models.Trigger
	output              **models.OutputConfig
	created_by          *string
	owner_team          *string
	created_at          *time.Time
	published_at        *time.Time
	max_concurrent      *int
	addmax_concurrent   *int
	max_cost            *float64
	addmax_cost         *float64
	priority            *string
	data_classification *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ProcessDefinition, error)
	predicates          []predicate.ProcessDefinition
}

var _ ent.Mutation = (*ProcessDefinitionMutation)(nil)

// processdefinitionOption allows management of the mutation configuration using functional options.
type processdefinitionOption func(*ProcessDefinitionMutation)

// newProcessDefinitionMutation creates new mutation for the ProcessDefinition entity.
func newProcessDefinitionMutation(c config, op Op, opts ...processdefinitionOption) *ProcessDefinitionMutation {
	m := &ProcessDefinitionMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessDefinition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessDefinitionID sets the ID field of the mutation.
func withProcessDefinitionID(id string) processdefinitionOption {
	return func(m *ProcessDefinitionMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessDefinition
		)
		m.oldValue = func(ctx context.Context) (*ProcessDefinition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessDefinition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessDefinition sets the old ProcessDefinition of the mutation.
func withProcessDefinition(node *ProcessDefinition) processdefinitionOption {
	return func(m *ProcessDefinitionMutation) {
		m.oldValue = func(context.Context) (*ProcessDefinition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessDefinitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessDefinitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessDefinition entities.
func (m *ProcessDefinitionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessDefinitionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessDefinitionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessDefinition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProcessDefinitionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProcessDefinitionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ProcessDefinition entity.
// If the ProcessDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessDefinitionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProcessDefinitionMutation) ResetName() {
	m.name = nil
}

// SetVersion sets the "version" field.
func (m *ProcessDefinitionMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *ProcessDefinitionMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ProcessDefinition entity.
// If the ProcessDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessDefinitionMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ResetVersion resets all changes to the "version" field.
func (m *ProcessDefinitionMutation) ResetVersion() {
	m.version = nil
}

// SetStatus sets the "status" field.
func (m *ProcessDefinitionMutation) SetStatus(pr processdefinition.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessDefinitionMutation) Status() (r processdefinition.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessDefinition entity.
// If the ProcessDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessDefinitionMutation) OldStatus(ctx context.Context) (v processdefinition.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessDefinitionMutation) ResetStatus() {
	m.status = nil
}

// SetSteps sets the "steps" field.
func (m *ProcessDefinitionMutation) SetSteps(md []models.StepDefinition) {
	m.steps = &md
	m.appendsteps = nil
}

// Steps returns the value of the "steps" field in the mutation.
func (m *ProcessDefinitionMutation) Steps() (r []models.StepDefinition, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the ProcessDefinition entity.
// If the ProcessDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessDefinitionMutation) OldSteps(ctx context.Context) (v []models.StepDefinition, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// AppendSteps adds md to the "steps" field.
func (m *ProcessDefinitionMutation) AppendSteps(md []models.StepDefinition) {
	m.appendsteps = append(m.appendsteps, md...)
}

// AppendedSteps returns the list of values that were appended to the "steps" field in this mutation.
func (m *ProcessDefinitionMutation) AppendedSteps() ([]models.StepDefinition, bool) {
	if len(m.appendsteps) == 0 {
		return nil, false
	}
	return m.appendsteps, true
}

// ResetSteps resets all changes to the "steps" field.
func (m *ProcessDefinitionMutation) ResetSteps() {
	m.steps = nil
	m.appendsteps = nil
}

// SetTriggers sets the "triggers" field.
func (m *ProcessDefinitionMutation) SetTriggers(value []models.Trigger) {
	m.triggers = &value
	m.appendtriggers = nil
}

// Triggers returns the value of the "triggers" field in the mutation.
func (m *ProcessDefinitionMutation) Triggers() (r []models.Trigger, exists bool) {
	v := m.triggers
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggers returns the old "triggers" field's value of the ProcessDefinition entity.
// If the ProcessDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessDefinitionMutation) OldTriggers(ctx context.Context) (v []models.Trigger, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggers: %w", err)
	}
	return oldValue.Triggers, nil
}

// AppendTriggers adds value to the "triggers" field.
func (m *ProcessDefinitionMutation) AppendTriggers(value []models.Trigger) {
	m.appendtriggers = append(m.appendtriggers, value...)
}

// AppendedTriggers returns the list of values that were appended to the "triggers" field in this mutation.
func (m *ProcessDefinitionMutation) AppendedTriggers() ([]models.Trigger, bool) {
	if len(m.appendtriggers) == 0 {
		return nil, false
	}
	return m.appendtriggers, true
}

// ClearTriggers clears the value of the "triggers" field.
func (m *ProcessDefinitionMutation) ClearTriggers() {
	m.triggers = nil
	m.appendtriggers = nil
	m.clearedFields[processdefinition.FieldTriggers] = struct{}{}
}

// TriggersCleared returns if the "triggers" field was cleared in this mutation.
func (m *ProcessDefinitionMutation) TriggersCleared() bool {
	_, ok := m.clearedFields[processdefinition.FieldTriggers]
	return ok
}

// ResetTriggers resets all changes to the "triggers" field.
func (m *ProcessDefinitionMutation) ResetTriggers() {
	m.triggers = nil
	m.appendtriggers = nil
	delete(m.clearedFields, processdefinition.FieldTriggers)
}

// SetOutput sets the "output" field.
func (m *ProcessDefinitionMutation) SetOutput(mc *models.OutputConfig) {
	m.output = &mc
}

// Output returns the value of the "output" field in the mutation.
func (m *ProcessDefinitionMutation) Output() (r *models.OutputConfig, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the ProcessDefinition entity.
// If the ProcessDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessDefinitionMutation) OldOutput(ctx context.Context) (v *models.OutputConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *ProcessDefinitionMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[processdefinition.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *ProcessDefinitionMutation) OutputCleared() bool {
	_, ok := m.clearedFields[processdefinition.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *ProcessDefinitionMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, processdefinition.FieldOutput)
}

// SetCreatedBy sets the "created_by" field.
func (m *ProcessDefinitionMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ProcessDefinitionMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the ProcessDefinition entity.
// If the ProcessDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessDefinitionMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ProcessDefinitionMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetOwnerTeam sets the "owner_team" field.
func (m *ProcessDefinitionMutation) SetOwnerTeam(s string) {
	m.owner_team = &s
}

// OwnerTeam returns the value of the "owner_team" field in the mutation.
func (m *ProcessDefinitionMutation) OwnerTeam() (r string, exists bool) {
	v := m.owner_team
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerTeam returns the old "owner_team" field's value of the ProcessDefinition entity.
// If the ProcessDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessDefinitionMutation) OldOwnerTeam(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerTeam is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerTeam requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerTeam: %w", err)
	}
	return oldValue.OwnerTeam, nil
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (m *ProcessDefinitionMutation) ClearOwnerTeam() {
	m.owner_team = nil
	m.clearedFields[processdefinition.FieldOwnerTeam] = struct{}{}
}

// OwnerTeamCleared returns if the "owner_team" field was cleared in this mutation.
func (m *ProcessDefinitionMutation) OwnerTeamCleared() bool {
	_, ok := m.clearedFields[processdefinition.FieldOwnerTeam]
	return ok
}

// ResetOwnerTeam resets all changes to the "owner_team" field.
func (m *ProcessDefinitionMutation) ResetOwnerTeam() {
	m.owner_team = nil
	delete(m.clearedFields, processdefinition.FieldOwnerTeam)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessDefinitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessDefinitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcessDefinition entity.
// If the ProcessDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessDefinitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcessDefinitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *ProcessDefinitionMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *ProcessDefinitionMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the ProcessDefinition entity.
// If the ProcessDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessDefinitionMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *ProcessDefinitionMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[processdefinition.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *ProcessDefinitionMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[processdefinition.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *ProcessDefinitionMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, processdefinition.FieldPublishedAt)
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (m *ProcessDefinitionMutation) SetMaxConcurrent(i int) {
	m.max_concurrent = &i
	m.addmax_concurrent = nil
}

// MaxConcurrent returns the value of the "max_concurrent" field in the mutation.
func (m *ProcessDefinitionMutation) MaxConcurrent() (r int, exists bool) {
	v := m.max_concurrent
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxConcurrent returns the old "max_concurrent" field's value of the ProcessDefinition entity.
// If the ProcessDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessDefinitionMutation) OldMaxConcurrent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxConcurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxConcurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxConcurrent: %w", err)
	}
	return oldValue.MaxConcurrent, nil
}

// AddMaxConcurrent adds i to the "max_concurrent" field.
func (m *ProcessDefinitionMutation) AddMaxConcurrent(i int) {
	if m.addmax_concurrent != nil {
		*m.addmax_concurrent += i
	} else {
		m.addmax_concurrent = &i
	}
}

// AddedMaxConcurrent returns the value that was added to the "max_concurrent" field in this mutation.
func (m *ProcessDefinitionMutation) AddedMaxConcurrent() (r int, exists bool) {
	v := m.addmax_concurrent
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxConcurrent resets all changes to the "max_concurrent" field.
func (m *ProcessDefinitionMutation) ResetMaxConcurrent() {
	m.max_concurrent = nil
	m.addmax_concurrent = nil
}

// SetMaxCost sets the "max_cost" field.
func (m *ProcessDefinitionMutation) SetMaxCost(f float64) {
	m.max_cost = &f
	m.addmax_cost = nil
}

// MaxCost returns the value of the "max_cost" field in the mutation.
func (m *ProcessDefinitionMutation) MaxCost() (r float64, exists bool) {
	v := m.max_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxCost returns the old "max_cost" field's value of the ProcessDefinition entity.
// If the ProcessDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessDefinitionMutation) OldMaxCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxCost: %w", err)
	}
	return oldValue.MaxCost, nil
}

// AddMaxCost adds f to the "max_cost" field.
func (m *ProcessDefinitionMutation) AddMaxCost(f float64) {
	if m.addmax_cost != nil {
		*m.addmax_cost += f
	} else {
		m.addmax_cost = &f
	}
}

// AddedMaxCost returns the value that was added to the "max_cost" field in this mutation.
func (m *ProcessDefinitionMutation) AddedMaxCost() (r float64, exists bool) {
	v := m.addmax_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxCost resets all changes to the "max_cost" field.
func (m *ProcessDefinitionMutation) ResetMaxCost() {
	m.max_cost = nil
	m.addmax_cost = nil
}

// SetPriority sets the "priority" field.
func (m *ProcessDefinitionMutation) SetPriority(s string) {
	m.priority = &s
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ProcessDefinitionMutation) Priority() (r string, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the ProcessDefinition entity.
// If the ProcessDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessDefinitionMutation) OldPriority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ClearPriority clears the value of the "priority" field.
func (m *ProcessDefinitionMutation) ClearPriority() {
	m.priority = nil
	m.clearedFields[processdefinition.FieldPriority] = struct{}{}
}

// PriorityCleared returns if the "priority" field was cleared in this mutation.
func (m *ProcessDefinitionMutation) PriorityCleared() bool {
	_, ok := m.clearedFields[processdefinition.FieldPriority]
	return ok
}

// ResetPriority resets all changes to the "priority" field.
func (m *ProcessDefinitionMutation) ResetPriority() {
	m.priority = nil
	delete(m.clearedFields, processdefinition.FieldPriority)
}

// SetDataClassification sets the "data_classification" field.
func (m *ProcessDefinitionMutation) SetDataClassification(s string) {
	m.data_classification = &s
}

// DataClassification returns the value of the "data_classification" field in the mutation.
func (m *ProcessDefinitionMutation) DataClassification() (r string, exists bool) {
	v := m.data_classification
	if v == nil {
		return
	}
	return *v, true
}

// OldDataClassification returns the old "data_classification" field's value of the ProcessDefinition entity.
// If the ProcessDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessDefinitionMutation) OldDataClassification(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataClassification: %w", err)
	}
	return oldValue.DataClassification, nil
}

// ClearDataClassification clears the value of the "data_classification" field.
func (m *ProcessDefinitionMutation) ClearDataClassification() {
	m.data_classification = nil
	m.clearedFields[processdefinition.FieldDataClassification] = struct{}{}
}

// DataClassificationCleared returns if the "data_classification" field was cleared in this mutation.
func (m *ProcessDefinitionMutation) DataClassificationCleared() bool {
	_, ok := m.clearedFields[processdefinition.FieldDataClassification]
	return ok
}

// ResetDataClassification resets all changes to the "data_classification" field.
func (m *ProcessDefinitionMutation) ResetDataClassification() {
	m.data_classification = nil
	delete(m.clearedFields, processdefinition.FieldDataClassification)
}

// Where appends a list predicates to the ProcessDefinitionMutation builder.
func (m *ProcessDefinitionMutation) Where(ps ...predicate.ProcessDefinition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessDefinitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessDefinitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessDefinition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessDefinitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessDefinitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessDefinition).
func (m *ProcessDefinitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessDefinitionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.name != nil {
		fields = append(fields, processdefinition.FieldName)
	}
	if m.version != nil {
		fields = append(fields, processdefinition.FieldVersion)
	}
	if m.status != nil {
		fields = append(fields, processdefinition.FieldStatus)
	}
	if m.steps != nil {
		fields = append(fields, processdefinition.FieldSteps)
	}
	if m.triggers != nil {
		fields = append(fields, processdefinition.FieldTriggers)
	}
	if m.output != nil {
		fields = append(fields, processdefinition.FieldOutput)
	}
	if m.created_by != nil {
		fields = append(fields, processdefinition.FieldCreatedBy)
	}
	if m.owner_team != nil {
		fields = append(fields, processdefinition.FieldOwnerTeam)
	}
	if m.created_at != nil {
		fields = append(fields, processdefinition.FieldCreatedAt)
	}
	if m.published_at != nil {
		fields = append(fields, processdefinition.FieldPublishedAt)
	}
	if m.max_concurrent != nil {
		fields = append(fields, processdefinition.FieldMaxConcurrent)
	}
	if m.max_cost != nil {
		fields = append(fields, processdefinition.FieldMaxCost)
	}
	if m.priority != nil {
		fields = append(fields, processdefinition.FieldPriority)
	}
	if m.data_classification != nil {
		fields = append(fields, processdefinition.FieldDataClassification)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessDefinitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processdefinition.FieldName:
		return m.Name()
	case processdefinition.FieldVersion:
		return m.Version()
	case processdefinition.FieldStatus:
		return m.Status()
	case processdefinition.FieldSteps:
		return m.Steps()
	case processdefinition.FieldTriggers:
		return m.Triggers()
	case processdefinition.FieldOutput:
		return m.Output()
	case processdefinition.FieldCreatedBy:
		return m.CreatedBy()
	case processdefinition.FieldOwnerTeam:
		return m.OwnerTeam()
	case processdefinition.FieldCreatedAt:
		return m.CreatedAt()
	case processdefinition.FieldPublishedAt:
		return m.PublishedAt()
	case processdefinition.FieldMaxConcurrent:
		return m.MaxConcurrent()
	case processdefinition.FieldMaxCost:
		return m.MaxCost()
	case processdefinition.FieldPriority:
		return m.Priority()
	case processdefinition.FieldDataClassification:
		return m.DataClassification()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessDefinitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processdefinition.FieldName:
		return m.OldName(ctx)
	case processdefinition.FieldVersion:
		return m.OldVersion(ctx)
	case processdefinition.FieldStatus:
		return m.OldStatus(ctx)
	case processdefinition.FieldSteps:
		return m.OldSteps(ctx)
	case processdefinition.FieldTriggers:
		return m.OldTriggers(ctx)
	case processdefinition.FieldOutput:
		return m.OldOutput(ctx)
	case processdefinition.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case processdefinition.FieldOwnerTeam:
		return m.OldOwnerTeam(ctx)
	case processdefinition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case processdefinition.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case processdefinition.FieldMaxConcurrent:
		return m.OldMaxConcurrent(ctx)
	case processdefinition.FieldMaxCost:
		return m.OldMaxCost(ctx)
	case processdefinition.FieldPriority:
		return m.OldPriority(ctx)
	case processdefinition.FieldDataClassification:
		return m.OldDataClassification(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessDefinition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessDefinitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processdefinition.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case processdefinition.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case processdefinition.FieldStatus:
		v, ok := value.(processdefinition.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processdefinition.FieldSteps:
		v, ok := value.([]models.StepDefinition)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	case processdefinition.FieldTriggers:
		v, ok := value.([]models.Trigger)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggers(v)
		return nil
	case processdefinition.FieldOutput:
		v, ok := value.(*models.OutputConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case processdefinition.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case processdefinition.FieldOwnerTeam:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerTeam(v)
		return nil
	case processdefinition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case processdefinition.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case processdefinition.FieldMaxConcurrent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxConcurrent(v)
		return nil
	case processdefinition.FieldMaxCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxCost(v)
		return nil
	case processdefinition.FieldPriority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case processdefinition.FieldDataClassification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataClassification(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessDefinition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessDefinitionMutation) AddedFields() []string {
	var fields []string
	if m.addmax_concurrent != nil {
		fields = append(fields, processdefinition.FieldMaxConcurrent)
	}
	if m.addmax_cost != nil {
		fields = append(fields, processdefinition.FieldMaxCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessDefinitionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processdefinition.FieldMaxConcurrent:
		return m.AddedMaxConcurrent()
	case processdefinition.FieldMaxCost:
		return m.AddedMaxCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessDefinitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processdefinition.FieldMaxConcurrent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxConcurrent(v)
		return nil
	case processdefinition.FieldMaxCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxCost(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessDefinition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessDefinitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processdefinition.FieldTriggers) {
		fields = append(fields, processdefinition.FieldTriggers)
	}
	if m.FieldCleared(processdefinition.FieldOutput) {
		fields = append(fields, processdefinition.FieldOutput)
	}
	if m.FieldCleared(processdefinition.FieldOwnerTeam) {
		fields = append(fields, processdefinition.FieldOwnerTeam)
	}
	if m.FieldCleared(processdefinition.FieldPublishedAt) {
		fields = append(fields, processdefinition.FieldPublishedAt)
	}
	if m.FieldCleared(processdefinition.FieldPriority) {
		fields = append(fields, processdefinition.FieldPriority)
	}
	if m.FieldCleared(processdefinition.FieldDataClassification) {
		fields = append(fields, processdefinition.FieldDataClassification)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessDefinitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessDefinitionMutation) ClearField(name string) error {
	switch name {
	case processdefinition.FieldTriggers:
		m.ClearTriggers()
		return nil
	case processdefinition.FieldOutput:
		m.ClearOutput()
		return nil
	case processdefinition.FieldOwnerTeam:
		m.ClearOwnerTeam()
		return nil
	case processdefinition.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case processdefinition.FieldPriority:
		m.ClearPriority()
		return nil
	case processdefinition.FieldDataClassification:
		m.ClearDataClassification()
		return nil
	}
	return fmt.Errorf("unknown ProcessDefinition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessDefinitionMutation) ResetField(name string) error {
	switch name {
	case processdefinition.FieldName:
		m.ResetName()
		return nil
	case processdefinition.FieldVersion:
		m.ResetVersion()
		return nil
	case processdefinition.FieldStatus:
		m.ResetStatus()
		return nil
	case processdefinition.FieldSteps:
		m.ResetSteps()
		return nil
	case processdefinition.FieldTriggers:
		m.ResetTriggers()
		return nil
	case processdefinition.FieldOutput:
		m.ResetOutput()
		return nil
	case processdefinition.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case processdefinition.FieldOwnerTeam:
		m.ResetOwnerTeam()
		return nil
	case processdefinition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case processdefinition.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case processdefinition.FieldMaxConcurrent:
		m.ResetMaxConcurrent()
		return nil
	case processdefinition.FieldMaxCost:
		m.ResetMaxCost()
		return nil
	case processdefinition.FieldPriority:
		m.ResetPriority()
		return nil
	case processdefinition.FieldDataClassification:
		m.ResetDataClassification()
		return nil
	}
	return fmt.Errorf("unknown ProcessDefinition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessDefinitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessDefinitionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessDefinitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessDefinitionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessDefinitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessDefinitionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessDefinitionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProcessDefinition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessDefinitionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProcessDefinition edge %s", name)
}

// ProcessExecutionMutation represents an operation that mutates the ProcessExecution nodes in the graph.
type ProcessExecutionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	process_id      *string
	process_name    *string
	process_version *string
	status          *processexecution.Status
	triggered_by    *models.TriggeredBy
	input_data      *map[string]interface{}
	output          *map[string]interface{}
	started_at      *time.Time
	completed_at    *time.Time
	total_cost      *float64
	addtotal_cost   *float64
	steps           *map[string]*models.StepExecution
	owner_team      *string
	owner_user      *string
	error           *string
	error_kind      *string
	seq             *int64
	addseq          *int64
	updated_at      *time.Time
	pod_id          *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ProcessExecution, error)
	predicates      []predicate.ProcessExecution
}

var _ ent.Mutation = (*ProcessExecutionMutation)(nil)

// processexecutionOption allows management of the mutation configuration using functional options.
type processexecutionOption func(*ProcessExecutionMutation)

// newProcessExecutionMutation creates new mutation for the ProcessExecution entity.
func newProcessExecutionMutation(c config, op Op, opts ...processexecutionOption) *ProcessExecutionMutation {
	m := &ProcessExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessExecutionID sets the ID field of the mutation.
func withProcessExecutionID(id string) processexecutionOption {
	return func(m *ProcessExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessExecution
		)
		m.oldValue = func(ctx context.Context) (*ProcessExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessExecution sets the old ProcessExecution of the mutation.
func withProcessExecution(node *ProcessExecution) processexecutionOption {
	return func(m *ProcessExecutionMutation) {
		m.oldValue = func(context.Context) (*ProcessExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessExecution entities.
func (m *ProcessExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProcessID sets the "process_id" field.
func (m *ProcessExecutionMutation) SetProcessID(s string) {
	m.process_id = &s
}

// ProcessID returns the value of the "process_id" field in the mutation.
func (m *ProcessExecutionMutation) ProcessID() (r string, exists bool) {
	v := m.process_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessID returns the old "process_id" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldProcessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessID: %w", err)
	}
	return oldValue.ProcessID, nil
}

// ResetProcessID resets all changes to the "process_id" field.
func (m *ProcessExecutionMutation) ResetProcessID() {
	m.process_id = nil
}

// SetProcessName sets the "process_name" field.
func (m *ProcessExecutionMutation) SetProcessName(s string) {
	m.process_name = &s
}

// ProcessName returns the value of the "process_name" field in the mutation.
func (m *ProcessExecutionMutation) ProcessName() (r string, exists bool) {
	v := m.process_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessName returns the old "process_name" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldProcessName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessName: %w", err)
	}
	return oldValue.ProcessName, nil
}

// ResetProcessName resets all changes to the "process_name" field.
func (m *ProcessExecutionMutation) ResetProcessName() {
	m.process_name = nil
}

// SetProcessVersion sets the "process_version" field.
func (m *ProcessExecutionMutation) SetProcessVersion(s string) {
	m.process_version = &s
}

// ProcessVersion returns the value of the "process_version" field in the mutation.
func (m *ProcessExecutionMutation) ProcessVersion() (r string, exists bool) {
	v := m.process_version
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessVersion returns the old "process_version" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldProcessVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessVersion: %w", err)
	}
	return oldValue.ProcessVersion, nil
}

// ResetProcessVersion resets all changes to the "process_version" field.
func (m *ProcessExecutionMutation) ResetProcessVersion() {
	m.process_version = nil
}

// SetStatus sets the "status" field.
func (m *ProcessExecutionMutation) SetStatus(pr processexecution.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessExecutionMutation) Status() (r processexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldStatus(ctx context.Context) (v processexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *ProcessExecutionMutation) SetTriggeredBy(mb models.TriggeredBy) {
	m.triggered_by = &mb
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *ProcessExecutionMutation) TriggeredBy() (r models.TriggeredBy, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldTriggeredBy(ctx context.Context) (v models.TriggeredBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *ProcessExecutionMutation) ResetTriggeredBy() {
	m.triggered_by = nil
}

// SetInputData sets the "input_data" field.
func (m *ProcessExecutionMutation) SetInputData(value map[string]interface{}) {
	m.input_data = &value
}

// InputData returns the value of the "input_data" field in the mutation.
func (m *ProcessExecutionMutation) InputData() (r map[string]interface{}, exists bool) {
	v := m.input_data
	if v == nil {
		return
	}
	return *v, true
}

// OldInputData returns the old "input_data" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldInputData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputData: %w", err)
	}
	return oldValue.InputData, nil
}

// ClearInputData clears the value of the "input_data" field.
func (m *ProcessExecutionMutation) ClearInputData() {
	m.input_data = nil
	m.clearedFields[processexecution.FieldInputData] = struct{}{}
}

// InputDataCleared returns if the "input_data" field was cleared in this mutation.
func (m *ProcessExecutionMutation) InputDataCleared() bool {
	_, ok := m.clearedFields[processexecution.FieldInputData]
	return ok
}

// ResetInputData resets all changes to the "input_data" field.
func (m *ProcessExecutionMutation) ResetInputData() {
	m.input_data = nil
	delete(m.clearedFields, processexecution.FieldInputData)
}

// SetOutput sets the "output" field.
func (m *ProcessExecutionMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *ProcessExecutionMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *ProcessExecutionMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[processexecution.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *ProcessExecutionMutation) OutputCleared() bool {
	_, ok := m.clearedFields[processexecution.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *ProcessExecutionMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, processexecution.FieldOutput)
}

// SetStartedAt sets the "started_at" field.
func (m *ProcessExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ProcessExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ProcessExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ProcessExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ProcessExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ProcessExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[processexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ProcessExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[processexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ProcessExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, processexecution.FieldCompletedAt)
}

// SetTotalCost sets the "total_cost" field.
func (m *ProcessExecutionMutation) SetTotalCost(f float64) {
	m.total_cost = &f
	m.addtotal_cost = nil
}

// TotalCost returns the value of the "total_cost" field in the mutation.
func (m *ProcessExecutionMutation) TotalCost() (r float64, exists bool) {
	v := m.total_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCost returns the old "total_cost" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldTotalCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCost: %w", err)
	}
	return oldValue.TotalCost, nil
}

// AddTotalCost adds f to the "total_cost" field.
func (m *ProcessExecutionMutation) AddTotalCost(f float64) {
	if m.addtotal_cost != nil {
		*m.addtotal_cost += f
	} else {
		m.addtotal_cost = &f
	}
}

// AddedTotalCost returns the value that was added to the "total_cost" field in this mutation.
func (m *ProcessExecutionMutation) AddedTotalCost() (r float64, exists bool) {
	v := m.addtotal_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCost resets all changes to the "total_cost" field.
func (m *ProcessExecutionMutation) ResetTotalCost() {
	m.total_cost = nil
	m.addtotal_cost = nil
}

// SetSteps sets the "steps" field.
func (m *ProcessExecutionMutation) SetSteps(me map[string]*models.StepExecution) {
	m.steps = &me
}

// Steps returns the value of the "steps" field in the mutation.
func (m *ProcessExecutionMutation) Steps() (r map[string]*models.StepExecution, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldSteps(ctx context.Context) (v map[string]*models.StepExecution, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// ResetSteps resets all changes to the "steps" field.
func (m *ProcessExecutionMutation) ResetSteps() {
	m.steps = nil
}

// SetOwnerTeam sets the "owner_team" field.
func (m *ProcessExecutionMutation) SetOwnerTeam(s string) {
	m.owner_team = &s
}

// OwnerTeam returns the value of the "owner_team" field in the mutation.
func (m *ProcessExecutionMutation) OwnerTeam() (r string, exists bool) {
	v := m.owner_team
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerTeam returns the old "owner_team" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldOwnerTeam(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerTeam is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerTeam requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerTeam: %w", err)
	}
	return oldValue.OwnerTeam, nil
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (m *ProcessExecutionMutation) ClearOwnerTeam() {
	m.owner_team = nil
	m.clearedFields[processexecution.FieldOwnerTeam] = struct{}{}
}

// OwnerTeamCleared returns if the "owner_team" field was cleared in this mutation.
func (m *ProcessExecutionMutation) OwnerTeamCleared() bool {
	_, ok := m.clearedFields[processexecution.FieldOwnerTeam]
	return ok
}

// ResetOwnerTeam resets all changes to the "owner_team" field.
func (m *ProcessExecutionMutation) ResetOwnerTeam() {
	m.owner_team = nil
	delete(m.clearedFields, processexecution.FieldOwnerTeam)
}

// SetOwnerUser sets the "owner_user" field.
func (m *ProcessExecutionMutation) SetOwnerUser(s string) {
	m.owner_user = &s
}

// OwnerUser returns the value of the "owner_user" field in the mutation.
func (m *ProcessExecutionMutation) OwnerUser() (r string, exists bool) {
	v := m.owner_user
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUser returns the old "owner_user" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldOwnerUser(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUser: %w", err)
	}
	return oldValue.OwnerUser, nil
}

// ClearOwnerUser clears the value of the "owner_user" field.
func (m *ProcessExecutionMutation) ClearOwnerUser() {
	m.owner_user = nil
	m.clearedFields[processexecution.FieldOwnerUser] = struct{}{}
}

// OwnerUserCleared returns if the "owner_user" field was cleared in this mutation.
func (m *ProcessExecutionMutation) OwnerUserCleared() bool {
	_, ok := m.clearedFields[processexecution.FieldOwnerUser]
	return ok
}

// ResetOwnerUser resets all changes to the "owner_user" field.
func (m *ProcessExecutionMutation) ResetOwnerUser() {
	m.owner_user = nil
	delete(m.clearedFields, processexecution.FieldOwnerUser)
}

// SetError sets the "error" field.
func (m *ProcessExecutionMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *ProcessExecutionMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *ProcessExecutionMutation) ClearError() {
	m.error = nil
	m.clearedFields[processexecution.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *ProcessExecutionMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[processexecution.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *ProcessExecutionMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, processexecution.FieldError)
}

// SetErrorKind sets the "error_kind" field.
func (m *ProcessExecutionMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *ProcessExecutionMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldErrorKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *ProcessExecutionMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[processexecution.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *ProcessExecutionMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[processexecution.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *ProcessExecutionMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, processexecution.FieldErrorKind)
}

// SetSeq sets the "seq" field.
func (m *ProcessExecutionMutation) SetSeq(i int64) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *ProcessExecutionMutation) Seq() (r int64, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *ProcessExecutionMutation) AddSeq(i int64) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *ProcessExecutionMutation) AddedSeq() (r int64, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *ProcessExecutionMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProcessExecutionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProcessExecutionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProcessExecutionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPodID sets the "pod_id" field.
func (m *ProcessExecutionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ProcessExecutionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the ProcessExecution entity.
// If the ProcessExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessExecutionMutation) OldPodID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ProcessExecutionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[processexecution.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ProcessExecutionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[processexecution.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ProcessExecutionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, processexecution.FieldPodID)
}

// Where appends a list predicates to the ProcessExecutionMutation builder.
func (m *ProcessExecutionMutation) Where(ps ...predicate.ProcessExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessExecution).
func (m *ProcessExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessExecutionMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.process_id != nil {
		fields = append(fields, processexecution.FieldProcessID)
	}
	if m.process_name != nil {
		fields = append(fields, processexecution.FieldProcessName)
	}
	if m.process_version != nil {
		fields = append(fields, processexecution.FieldProcessVersion)
	}
	if m.status != nil {
		fields = append(fields, processexecution.FieldStatus)
	}
	if m.triggered_by != nil {
		fields = append(fields, processexecution.FieldTriggeredBy)
	}
	if m.input_data != nil {
		fields = append(fields, processexecution.FieldInputData)
	}
	if m.output != nil {
		fields = append(fields, processexecution.FieldOutput)
	}
	if m.started_at != nil {
		fields = append(fields, processexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, processexecution.FieldCompletedAt)
	}
	if m.total_cost != nil {
		fields = append(fields, processexecution.FieldTotalCost)
	}
	if m.steps != nil {
		fields = append(fields, processexecution.FieldSteps)
	}
	if m.owner_team != nil {
		fields = append(fields, processexecution.FieldOwnerTeam)
	}
	if m.owner_user != nil {
		fields = append(fields, processexecution.FieldOwnerUser)
	}
	if m.error != nil {
		fields = append(fields, processexecution.FieldError)
	}
	if m.error_kind != nil {
		fields = append(fields, processexecution.FieldErrorKind)
	}
	if m.seq != nil {
		fields = append(fields, processexecution.FieldSeq)
	}
	if m.updated_at != nil {
		fields = append(fields, processexecution.FieldUpdatedAt)
	}
	if m.pod_id != nil {
		fields = append(fields, processexecution.FieldPodID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processexecution.FieldProcessID:
		return m.ProcessID()
	case processexecution.FieldProcessName:
		return m.ProcessName()
	case processexecution.FieldProcessVersion:
		return m.ProcessVersion()
	case processexecution.FieldStatus:
		return m.Status()
	case processexecution.FieldTriggeredBy:
		return m.TriggeredBy()
	case processexecution.FieldInputData:
		return m.InputData()
	case processexecution.FieldOutput:
		return m.Output()
	case processexecution.FieldStartedAt:
		return m.StartedAt()
	case processexecution.FieldCompletedAt:
		return m.CompletedAt()
	case processexecution.FieldTotalCost:
		return m.TotalCost()
	case processexecution.FieldSteps:
		return m.Steps()
	case processexecution.FieldOwnerTeam:
		return m.OwnerTeam()
	case processexecution.FieldOwnerUser:
		return m.OwnerUser()
	case processexecution.FieldError:
		return m.Error()
	case processexecution.FieldErrorKind:
		return m.ErrorKind()
	case processexecution.FieldSeq:
		return m.Seq()
	case processexecution.FieldUpdatedAt:
		return m.UpdatedAt()
	case processexecution.FieldPodID:
		return m.PodID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processexecution.FieldProcessID:
		return m.OldProcessID(ctx)
	case processexecution.FieldProcessName:
		return m.OldProcessName(ctx)
	case processexecution.FieldProcessVersion:
		return m.OldProcessVersion(ctx)
	case processexecution.FieldStatus:
		return m.OldStatus(ctx)
	case processexecution.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case processexecution.FieldInputData:
		return m.OldInputData(ctx)
	case processexecution.FieldOutput:
		return m.OldOutput(ctx)
	case processexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case processexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case processexecution.FieldTotalCost:
		return m.OldTotalCost(ctx)
	case processexecution.FieldSteps:
		return m.OldSteps(ctx)
	case processexecution.FieldOwnerTeam:
		return m.OldOwnerTeam(ctx)
	case processexecution.FieldOwnerUser:
		return m.OldOwnerUser(ctx)
	case processexecution.FieldError:
		return m.OldError(ctx)
	case processexecution.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case processexecution.FieldSeq:
		return m.OldSeq(ctx)
	case processexecution.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case processexecution.FieldPodID:
		return m.OldPodID(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processexecution.FieldProcessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessID(v)
		return nil
	case processexecution.FieldProcessName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessName(v)
		return nil
	case processexecution.FieldProcessVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessVersion(v)
		return nil
	case processexecution.FieldStatus:
		v, ok := value.(processexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processexecution.FieldTriggeredBy:
		v, ok := value.(models.TriggeredBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case processexecution.FieldInputData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputData(v)
		return nil
	case processexecution.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case processexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case processexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case processexecution.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCost(v)
		return nil
	case processexecution.FieldSteps:
		v, ok := value.(map[string]*models.StepExecution)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	case processexecution.FieldOwnerTeam:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerTeam(v)
		return nil
	case processexecution.FieldOwnerUser:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUser(v)
		return nil
	case processexecution.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case processexecution.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case processexecution.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case processexecution.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case processexecution.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_cost != nil {
		fields = append(fields, processexecution.FieldTotalCost)
	}
	if m.addseq != nil {
		fields = append(fields, processexecution.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processexecution.FieldTotalCost:
		return m.AddedTotalCost()
	case processexecution.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processexecution.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCost(v)
		return nil
	case processexecution.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processexecution.FieldInputData) {
		fields = append(fields, processexecution.FieldInputData)
	}
	if m.FieldCleared(processexecution.FieldOutput) {
		fields = append(fields, processexecution.FieldOutput)
	}
	if m.FieldCleared(processexecution.FieldCompletedAt) {
		fields = append(fields, processexecution.FieldCompletedAt)
	}
	if m.FieldCleared(processexecution.FieldOwnerTeam) {
		fields = append(fields, processexecution.FieldOwnerTeam)
	}
	if m.FieldCleared(processexecution.FieldOwnerUser) {
		fields = append(fields, processexecution.FieldOwnerUser)
	}
	if m.FieldCleared(processexecution.FieldError) {
		fields = append(fields, processexecution.FieldError)
	}
	if m.FieldCleared(processexecution.FieldErrorKind) {
		fields = append(fields, processexecution.FieldErrorKind)
	}
	if m.FieldCleared(processexecution.FieldPodID) {
		fields = append(fields, processexecution.FieldPodID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessExecutionMutation) ClearField(name string) error {
	switch name {
	case processexecution.FieldInputData:
		m.ClearInputData()
		return nil
	case processexecution.FieldOutput:
		m.ClearOutput()
		return nil
	case processexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case processexecution.FieldOwnerTeam:
		m.ClearOwnerTeam()
		return nil
	case processexecution.FieldOwnerUser:
		m.ClearOwnerUser()
		return nil
	case processexecution.FieldError:
		m.ClearError()
		return nil
	case processexecution.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case processexecution.FieldPodID:
		m.ClearPodID()
		return nil
	}
	return fmt.Errorf("unknown ProcessExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessExecutionMutation) ResetField(name string) error {
	switch name {
	case processexecution.FieldProcessID:
		m.ResetProcessID()
		return nil
	case processexecution.FieldProcessName:
		m.ResetProcessName()
		return nil
	case processexecution.FieldProcessVersion:
		m.ResetProcessVersion()
		return nil
	case processexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case processexecution.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case processexecution.FieldInputData:
		m.ResetInputData()
		return nil
	case processexecution.FieldOutput:
		m.ResetOutput()
		return nil
	case processexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case processexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case processexecution.FieldTotalCost:
		m.ResetTotalCost()
		return nil
	case processexecution.FieldSteps:
		m.ResetSteps()
		return nil
	case processexecution.FieldOwnerTeam:
		m.ResetOwnerTeam()
		return nil
	case processexecution.FieldOwnerUser:
		m.ResetOwnerUser()
		return nil
	case processexecution.FieldError:
		m.ResetError()
		return nil
	case processexecution.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case processexecution.FieldSeq:
		m.ResetSeq()
		return nil
	case processexecution.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case processexecution.FieldPodID:
		m.ResetPodID()
		return nil
	}
	return fmt.Errorf("unknown ProcessExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessExecutionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessExecutionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessExecutionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProcessExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessExecutionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProcessExecution edge %s", name)
}

// ScheduleMutation represents an operation that mutates the Schedule nodes in the graph.
type ScheduleMutation struct {
	config
	op            Op
	typ           string
	id            *string
	process_id    *string
	process_name  *string
	cron          *string
	timezone      *string
	enabled       *bool
	last_fired_at *time.Time
	next_fire_at  *time.Time
	owner_user    *string
	owner_team    *string
	input         *map[string]interface{}
	lock_token    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Schedule, error)
	predicates    []predicate.Schedule
}

var _ ent.Mutation = (*ScheduleMutation)(nil)

// scheduleOption allows management of the mutation configuration using functional options.
type scheduleOption func(*ScheduleMutation)

// newScheduleMutation creates new mutation for the Schedule entity.
func newScheduleMutation(c config, op Op, opts ...scheduleOption) *ScheduleMutation {
	m := &ScheduleMutation{
		config:        c,
		op:            op,
		typ:           TypeSchedule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduleID sets the ID field of the mutation.
func withScheduleID(id string) scheduleOption {
	return func(m *ScheduleMutation) {
		var (
			err   error
			once  sync.Once
			value *Schedule
		)
		m.oldValue = func(ctx context.Context) (*Schedule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Schedule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchedule sets the old Schedule of the mutation.
func withSchedule(node *Schedule) scheduleOption {
	return func(m *ScheduleMutation) {
		m.oldValue = func(context.Context) (*Schedule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Schedule entities.
func (m *ScheduleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Schedule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProcessID sets the "process_id" field.
func (m *ScheduleMutation) SetProcessID(s string) {
	m.process_id = &s
}

// ProcessID returns the value of the "process_id" field in the mutation.
func (m *ScheduleMutation) ProcessID() (r string, exists bool) {
	v := m.process_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessID returns the old "process_id" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldProcessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessID: %w", err)
	}
	return oldValue.ProcessID, nil
}

// ResetProcessID resets all changes to the "process_id" field.
func (m *ScheduleMutation) ResetProcessID() {
	m.process_id = nil
}

// SetProcessName sets the "process_name" field.
func (m *ScheduleMutation) SetProcessName(s string) {
	m.process_name = &s
}

// ProcessName returns the value of the "process_name" field in the mutation.
func (m *ScheduleMutation) ProcessName() (r string, exists bool) {
	v := m.process_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessName returns the old "process_name" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldProcessName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessName: %w", err)
	}
	return oldValue.ProcessName, nil
}

// ResetProcessName resets all changes to the "process_name" field.
func (m *ScheduleMutation) ResetProcessName() {
	m.process_name = nil
}

// SetCron sets the "cron" field.
func (m *ScheduleMutation) SetCron(s string) {
	m.cron = &s
}

// Cron returns the value of the "cron" field in the mutation.
func (m *ScheduleMutation) Cron() (r string, exists bool) {
	v := m.cron
	if v == nil {
		return
	}
	return *v, true
}

// OldCron returns the old "cron" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldCron(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCron is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCron requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCron: %w", err)
	}
	return oldValue.Cron, nil
}

// ResetCron resets all changes to the "cron" field.
func (m *ScheduleMutation) ResetCron() {
	m.cron = nil
}

// SetTimezone sets the "timezone" field.
func (m *ScheduleMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *ScheduleMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ClearTimezone clears the value of the "timezone" field.
func (m *ScheduleMutation) ClearTimezone() {
	m.timezone = nil
	m.clearedFields[schedule.FieldTimezone] = struct{}{}
}

// TimezoneCleared returns if the "timezone" field was cleared in this mutation.
func (m *ScheduleMutation) TimezoneCleared() bool {
	_, ok := m.clearedFields[schedule.FieldTimezone]
	return ok
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *ScheduleMutation) ResetTimezone() {
	m.timezone = nil
	delete(m.clearedFields, schedule.FieldTimezone)
}

// SetEnabled sets the "enabled" field.
func (m *ScheduleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ScheduleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ScheduleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetLastFiredAt sets the "last_fired_at" field.
func (m *ScheduleMutation) SetLastFiredAt(t time.Time) {
	m.last_fired_at = &t
}

// LastFiredAt returns the value of the "last_fired_at" field in the mutation.
func (m *ScheduleMutation) LastFiredAt() (r time.Time, exists bool) {
	v := m.last_fired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFiredAt returns the old "last_fired_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldLastFiredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFiredAt: %w", err)
	}
	return oldValue.LastFiredAt, nil
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (m *ScheduleMutation) ClearLastFiredAt() {
	m.last_fired_at = nil
	m.clearedFields[schedule.FieldLastFiredAt] = struct{}{}
}

// LastFiredAtCleared returns if the "last_fired_at" field was cleared in this mutation.
func (m *ScheduleMutation) LastFiredAtCleared() bool {
	_, ok := m.clearedFields[schedule.FieldLastFiredAt]
	return ok
}

// ResetLastFiredAt resets all changes to the "last_fired_at" field.
func (m *ScheduleMutation) ResetLastFiredAt() {
	m.last_fired_at = nil
	delete(m.clearedFields, schedule.FieldLastFiredAt)
}

// SetNextFireAt sets the "next_fire_at" field.
func (m *ScheduleMutation) SetNextFireAt(t time.Time) {
	m.next_fire_at = &t
}

// NextFireAt returns the value of the "next_fire_at" field in the mutation.
func (m *ScheduleMutation) NextFireAt() (r time.Time, exists bool) {
	v := m.next_fire_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextFireAt returns the old "next_fire_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldNextFireAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextFireAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextFireAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextFireAt: %w", err)
	}
	return oldValue.NextFireAt, nil
}

// ResetNextFireAt resets all changes to the "next_fire_at" field.
func (m *ScheduleMutation) ResetNextFireAt() {
	m.next_fire_at = nil
}

// SetOwnerUser sets the "owner_user" field.
func (m *ScheduleMutation) SetOwnerUser(s string) {
	m.owner_user = &s
}

// OwnerUser returns the value of the "owner_user" field in the mutation.
func (m *ScheduleMutation) OwnerUser() (r string, exists bool) {
	v := m.owner_user
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUser returns the old "owner_user" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldOwnerUser(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUser: %w", err)
	}
	return oldValue.OwnerUser, nil
}

// ResetOwnerUser resets all changes to the "owner_user" field.
func (m *ScheduleMutation) ResetOwnerUser() {
	m.owner_user = nil
}

// SetOwnerTeam sets the "owner_team" field.
func (m *ScheduleMutation) SetOwnerTeam(s string) {
	m.owner_team = &s
}

// OwnerTeam returns the value of the "owner_team" field in the mutation.
func (m *ScheduleMutation) OwnerTeam() (r string, exists bool) {
	v := m.owner_team
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerTeam returns the old "owner_team" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldOwnerTeam(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerTeam is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerTeam requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerTeam: %w", err)
	}
	return oldValue.OwnerTeam, nil
}

// ClearOwnerTeam clears the value of the "owner_team" field.
func (m *ScheduleMutation) ClearOwnerTeam() {
	m.owner_team = nil
	m.clearedFields[schedule.FieldOwnerTeam] = struct{}{}
}

// OwnerTeamCleared returns if the "owner_team" field was cleared in this mutation.
func (m *ScheduleMutation) OwnerTeamCleared() bool {
	_, ok := m.clearedFields[schedule.FieldOwnerTeam]
	return ok
}

// ResetOwnerTeam resets all changes to the "owner_team" field.
func (m *ScheduleMutation) ResetOwnerTeam() {
	m.owner_team = nil
	delete(m.clearedFields, schedule.FieldOwnerTeam)
}

// SetInput sets the "input" field.
func (m *ScheduleMutation) SetInput(value map[string]interface{}) {
	m.input = &value
}

// Input returns the value of the "input" field in the mutation.
func (m *ScheduleMutation) Input() (r map[string]interface{}, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *ScheduleMutation) ClearInput() {
	m.input = nil
	m.clearedFields[schedule.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *ScheduleMutation) InputCleared() bool {
	_, ok := m.clearedFields[schedule.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *ScheduleMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, schedule.FieldInput)
}

// SetLockToken sets the "lock_token" field.
func (m *ScheduleMutation) SetLockToken(s string) {
	m.lock_token = &s
}

// LockToken returns the value of the "lock_token" field in the mutation.
func (m *ScheduleMutation) LockToken() (r string, exists bool) {
	v := m.lock_token
	if v == nil {
		return
	}
	return *v, true
}

// OldLockToken returns the old "lock_token" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldLockToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockToken: %w", err)
	}
	return oldValue.LockToken, nil
}

// ClearLockToken clears the value of the "lock_token" field.
func (m *ScheduleMutation) ClearLockToken() {
	m.lock_token = nil
	m.clearedFields[schedule.FieldLockToken] = struct{}{}
}

// LockTokenCleared returns if the "lock_token" field was cleared in this mutation.
func (m *ScheduleMutation) LockTokenCleared() bool {
	_, ok := m.clearedFields[schedule.FieldLockToken]
	return ok
}

// ResetLockToken resets all changes to the "lock_token" field.
func (m *ScheduleMutation) ResetLockToken() {
	m.lock_token = nil
	delete(m.clearedFields, schedule.FieldLockToken)
}

// Where appends a list predicates to the ScheduleMutation builder.
func (m *ScheduleMutation) Where(ps ...predicate.Schedule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Schedule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Schedule).
func (m *ScheduleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduleMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.process_id != nil {
		fields = append(fields, schedule.FieldProcessID)
	}
	if m.process_name != nil {
		fields = append(fields, schedule.FieldProcessName)
	}
	if m.cron != nil {
		fields = append(fields, schedule.FieldCron)
	}
	if m.timezone != nil {
		fields = append(fields, schedule.FieldTimezone)
	}
	if m.enabled != nil {
		fields = append(fields, schedule.FieldEnabled)
	}
	if m.last_fired_at != nil {
		fields = append(fields, schedule.FieldLastFiredAt)
	}
	if m.next_fire_at != nil {
		fields = append(fields, schedule.FieldNextFireAt)
	}
	if m.owner_user != nil {
		fields = append(fields, schedule.FieldOwnerUser)
	}
	if m.owner_team != nil {
		fields = append(fields, schedule.FieldOwnerTeam)
	}
	if m.input != nil {
		fields = append(fields, schedule.FieldInput)
	}
	if m.lock_token != nil {
		fields = append(fields, schedule.FieldLockToken)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schedule.FieldProcessID:
		return m.ProcessID()
	case schedule.FieldProcessName:
		return m.ProcessName()
	case schedule.FieldCron:
		return m.Cron()
	case schedule.FieldTimezone:
		return m.Timezone()
	case schedule.FieldEnabled:
		return m.Enabled()
	case schedule.FieldLastFiredAt:
		return m.LastFiredAt()
	case schedule.FieldNextFireAt:
		return m.NextFireAt()
	case schedule.FieldOwnerUser:
		return m.OwnerUser()
	case schedule.FieldOwnerTeam:
		return m.OwnerTeam()
	case schedule.FieldInput:
		return m.Input()
	case schedule.FieldLockToken:
		return m.LockToken()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schedule.FieldProcessID:
		return m.OldProcessID(ctx)
	case schedule.FieldProcessName:
		return m.OldProcessName(ctx)
	case schedule.FieldCron:
		return m.OldCron(ctx)
	case schedule.FieldTimezone:
		return m.OldTimezone(ctx)
	case schedule.FieldEnabled:
		return m.OldEnabled(ctx)
	case schedule.FieldLastFiredAt:
		return m.OldLastFiredAt(ctx)
	case schedule.FieldNextFireAt:
		return m.OldNextFireAt(ctx)
	case schedule.FieldOwnerUser:
		return m.OldOwnerUser(ctx)
	case schedule.FieldOwnerTeam:
		return m.OldOwnerTeam(ctx)
	case schedule.FieldInput:
		return m.OldInput(ctx)
	case schedule.FieldLockToken:
		return m.OldLockToken(ctx)
	}
	return nil, fmt.Errorf("unknown Schedule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schedule.FieldProcessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessID(v)
		return nil
	case schedule.FieldProcessName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessName(v)
		return nil
	case schedule.FieldCron:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCron(v)
		return nil
	case schedule.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case schedule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case schedule.FieldLastFiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFiredAt(v)
		return nil
	case schedule.FieldNextFireAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextFireAt(v)
		return nil
	case schedule.FieldOwnerUser:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUser(v)
		return nil
	case schedule.FieldOwnerTeam:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerTeam(v)
		return nil
	case schedule.FieldInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case schedule.FieldLockToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockToken(v)
		return nil
	}
	return fmt.Errorf("unknown Schedule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Schedule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(schedule.FieldTimezone) {
		fields = append(fields, schedule.FieldTimezone)
	}
	if m.FieldCleared(schedule.FieldLastFiredAt) {
		fields = append(fields, schedule.FieldLastFiredAt)
	}
	if m.FieldCleared(schedule.FieldOwnerTeam) {
		fields = append(fields, schedule.FieldOwnerTeam)
	}
	if m.FieldCleared(schedule.FieldInput) {
		fields = append(fields, schedule.FieldInput)
	}
	if m.FieldCleared(schedule.FieldLockToken) {
		fields = append(fields, schedule.FieldLockToken)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduleMutation) ClearField(name string) error {
	switch name {
	case schedule.FieldTimezone:
		m.ClearTimezone()
		return nil
	case schedule.FieldLastFiredAt:
		m.ClearLastFiredAt()
		return nil
	case schedule.FieldOwnerTeam:
		m.ClearOwnerTeam()
		return nil
	case schedule.FieldInput:
		m.ClearInput()
		return nil
	case schedule.FieldLockToken:
		m.ClearLockToken()
		return nil
	}
	return fmt.Errorf("unknown Schedule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduleMutation) ResetField(name string) error {
	switch name {
	case schedule.FieldProcessID:
		m.ResetProcessID()
		return nil
	case schedule.FieldProcessName:
		m.ResetProcessName()
		return nil
	case schedule.FieldCron:
		m.ResetCron()
		return nil
	case schedule.FieldTimezone:
		m.ResetTimezone()
		return nil
	case schedule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case schedule.FieldLastFiredAt:
		m.ResetLastFiredAt()
		return nil
	case schedule.FieldNextFireAt:
		m.ResetNextFireAt()
		return nil
	case schedule.FieldOwnerUser:
		m.ResetOwnerUser()
		return nil
	case schedule.FieldOwnerTeam:
		m.ResetOwnerTeam()
		return nil
	case schedule.FieldInput:
		m.ResetInput()
		return nil
	case schedule.FieldLockToken:
		m.ResetLockToken()
		return nil
	}
	return fmt.Errorf("unknown Schedule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Schedule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Schedule edge %s", name)
}

// StepOutputMutation represents an operation that mutates the StepOutput nodes in the graph.
type StepOutputMutation struct {
	config
	op            Op
	typ           string
	id            *int
	execution_id  *string
	step_id       *string
	output        *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StepOutput, error)
	predicates    []predicate.StepOutput
}

var _ ent.Mutation = (*StepOutputMutation)(nil)

// stepoutputOption allows management of the mutation configuration using functional options.
type stepoutputOption func(*StepOutputMutation)

// newStepOutputMutation creates new mutation for the StepOutput entity.
func newStepOutputMutation(c config, op Op, opts ...stepoutputOption) *StepOutputMutation {
	m := &StepOutputMutation{
		config:        c,
		op:            op,
		typ:           TypeStepOutput,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepOutputID sets the ID field of the mutation.
func withStepOutputID(id int) stepoutputOption {
	return func(m *StepOutputMutation) {
		var (
			err   error
			once  sync.Once
			value *StepOutput
		)
		m.oldValue = func(ctx context.Context) (*StepOutput, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepOutput.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepOutput sets the old StepOutput of the mutation.
func withStepOutput(node *StepOutput) stepoutputOption {
	return func(m *StepOutputMutation) {
		m.oldValue = func(context.Context) (*StepOutput, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepOutputMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepOutputMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepOutputMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepOutputMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepOutput.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *StepOutputMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *StepOutputMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the StepOutput entity.
// If the StepOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepOutputMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *StepOutputMutation) ResetExecutionID() {
	m.execution_id = nil
}

// SetStepID sets the "step_id" field.
func (m *StepOutputMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *StepOutputMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the StepOutput entity.
// If the StepOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepOutputMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *StepOutputMutation) ResetStepID() {
	m.step_id = nil
}

// SetOutput sets the "output" field.
func (m *StepOutputMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *StepOutputMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the StepOutput entity.
// If the StepOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepOutputMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ResetOutput resets all changes to the "output" field.
func (m *StepOutputMutation) ResetOutput() {
	m.output = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StepOutputMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StepOutputMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StepOutput entity.
// If the StepOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepOutputMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StepOutputMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StepOutputMutation builder.
func (m *StepOutputMutation) Where(ps ...predicate.StepOutput) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepOutputMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepOutputMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepOutput, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepOutputMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepOutputMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepOutput).
func (m *StepOutputMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepOutputMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.execution_id != nil {
		fields = append(fields, stepoutput.FieldExecutionID)
	}
	if m.step_id != nil {
		fields = append(fields, stepoutput.FieldStepID)
	}
	if m.output != nil {
		fields = append(fields, stepoutput.FieldOutput)
	}
	if m.created_at != nil {
		fields = append(fields, stepoutput.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepOutputMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stepoutput.FieldExecutionID:
		return m.ExecutionID()
	case stepoutput.FieldStepID:
		return m.StepID()
	case stepoutput.FieldOutput:
		return m.Output()
	case stepoutput.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepOutputMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stepoutput.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case stepoutput.FieldStepID:
		return m.OldStepID(ctx)
	case stepoutput.FieldOutput:
		return m.OldOutput(ctx)
	case stepoutput.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StepOutput field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepOutputMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stepoutput.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case stepoutput.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case stepoutput.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case stepoutput.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StepOutput field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepOutputMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepOutputMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepOutputMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StepOutput numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepOutputMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepOutputMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepOutputMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StepOutput nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepOutputMutation) ResetField(name string) error {
	switch name {
	case stepoutput.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case stepoutput.FieldStepID:
		m.ResetStepID()
		return nil
	case stepoutput.FieldOutput:
		m.ResetOutput()
		return nil
	case stepoutput.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StepOutput field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepOutputMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepOutputMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepOutputMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepOutputMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepOutputMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepOutputMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepOutputMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StepOutput unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepOutputMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StepOutput edge %s", name)
}
