// Code generated by ent, DO NOT EDIT.

package approval

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/trinity-ai/trinity/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldID, id))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldExecutionID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldStepID, v))
}

// Deadline applies equality check predicate on the "deadline" field. It's identical to DeadlineEQ.
func Deadline(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldDeadline, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldTitle, v))
}

// DecidedBy applies equality check predicate on the "decided_by" field. It's identical to DecidedByEQ.
func DecidedBy(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldDecidedBy, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldComment, v))
}

// DecisionAt applies equality check predicate on the "decision_at" field. It's identical to DecisionAtEQ.
func DecisionAt(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldDecisionAt, v))
}

// RequestedAt applies equality check predicate on the "requested_at" field. It's identical to RequestedAtEQ.
func RequestedAt(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldRequestedAt, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldExecutionID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldStepID, v))
}

// DeadlineEQ applies the EQ predicate on the "deadline" field.
func DeadlineEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldDeadline, v))
}

// DeadlineNEQ applies the NEQ predicate on the "deadline" field.
func DeadlineNEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldDeadline, v))
}

// DeadlineIn applies the In predicate on the "deadline" field.
func DeadlineIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldDeadline, vs...))
}

// DeadlineNotIn applies the NotIn predicate on the "deadline" field.
func DeadlineNotIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldDeadline, vs...))
}

// DeadlineGT applies the GT predicate on the "deadline" field.
func DeadlineGT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldDeadline, v))
}

// DeadlineGTE applies the GTE predicate on the "deadline" field.
func DeadlineGTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldDeadline, v))
}

// DeadlineLT applies the LT predicate on the "deadline" field.
func DeadlineLT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldDeadline, v))
}

// DeadlineLTE applies the LTE predicate on the "deadline" field.
func DeadlineLTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldDeadline, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldStatus, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldTitle, v))
}

// ArtifactsIsNil applies the IsNil predicate on the "artifacts" field.
func ArtifactsIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldArtifacts))
}

// ArtifactsNotNil applies the NotNil predicate on the "artifacts" field.
func ArtifactsNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldArtifacts))
}

// DecidedByEQ applies the EQ predicate on the "decided_by" field.
func DecidedByEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldDecidedBy, v))
}

// DecidedByNEQ applies the NEQ predicate on the "decided_by" field.
func DecidedByNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldDecidedBy, v))
}

// DecidedByIn applies the In predicate on the "decided_by" field.
func DecidedByIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldDecidedBy, vs...))
}

// DecidedByNotIn applies the NotIn predicate on the "decided_by" field.
func DecidedByNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldDecidedBy, vs...))
}

// DecidedByGT applies the GT predicate on the "decided_by" field.
func DecidedByGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldDecidedBy, v))
}

// DecidedByGTE applies the GTE predicate on the "decided_by" field.
func DecidedByGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldDecidedBy, v))
}

// DecidedByLT applies the LT predicate on the "decided_by" field.
func DecidedByLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldDecidedBy, v))
}

// DecidedByLTE applies the LTE predicate on the "decided_by" field.
func DecidedByLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldDecidedBy, v))
}

// DecidedByContains applies the Contains predicate on the "decided_by" field.
func DecidedByContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldDecidedBy, v))
}

// DecidedByHasPrefix applies the HasPrefix predicate on the "decided_by" field.
func DecidedByHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldDecidedBy, v))
}

// DecidedByHasSuffix applies the HasSuffix predicate on the "decided_by" field.
func DecidedByHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldDecidedBy, v))
}

// DecidedByIsNil applies the IsNil predicate on the "decided_by" field.
func DecidedByIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldDecidedBy))
}

// DecidedByNotNil applies the NotNil predicate on the "decided_by" field.
func DecidedByNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldDecidedBy))
}

// DecidedByEqualFold applies the EqualFold predicate on the "decided_by" field.
func DecidedByEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldDecidedBy, v))
}

// DecidedByContainsFold applies the ContainsFold predicate on the "decided_by" field.
func DecidedByContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldDecidedBy, v))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldComment, v))
}

// CommentIsNil applies the IsNil predicate on the "comment" field.
func CommentIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldComment))
}

// CommentNotNil applies the NotNil predicate on the "comment" field.
func CommentNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldComment))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldComment, v))
}

// DecisionAtEQ applies the EQ predicate on the "decision_at" field.
func DecisionAtEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldDecisionAt, v))
}

// DecisionAtNEQ applies the NEQ predicate on the "decision_at" field.
func DecisionAtNEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldDecisionAt, v))
}

// DecisionAtIn applies the In predicate on the "decision_at" field.
func DecisionAtIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldDecisionAt, vs...))
}

// DecisionAtNotIn applies the NotIn predicate on the "decision_at" field.
func DecisionAtNotIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldDecisionAt, vs...))
}

// DecisionAtGT applies the GT predicate on the "decision_at" field.
func DecisionAtGT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldDecisionAt, v))
}

// DecisionAtGTE applies the GTE predicate on the "decision_at" field.
func DecisionAtGTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldDecisionAt, v))
}

// DecisionAtLT applies the LT predicate on the "decision_at" field.
func DecisionAtLT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldDecisionAt, v))
}

// DecisionAtLTE applies the LTE predicate on the "decision_at" field.
func DecisionAtLTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldDecisionAt, v))
}

// DecisionAtIsNil applies the IsNil predicate on the "decision_at" field.
func DecisionAtIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldDecisionAt))
}

// DecisionAtNotNil applies the NotNil predicate on the "decision_at" field.
func DecisionAtNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldDecisionAt))
}

// RequestedAtEQ applies the EQ predicate on the "requested_at" field.
func RequestedAtEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldRequestedAt, v))
}

// RequestedAtNEQ applies the NEQ predicate on the "requested_at" field.
func RequestedAtNEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldRequestedAt, v))
}

// RequestedAtIn applies the In predicate on the "requested_at" field.
func RequestedAtIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldRequestedAt, vs...))
}

// RequestedAtNotIn applies the NotIn predicate on the "requested_at" field.
func RequestedAtNotIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldRequestedAt, vs...))
}

// RequestedAtGT applies the GT predicate on the "requested_at" field.
func RequestedAtGT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldRequestedAt, v))
}

// RequestedAtGTE applies the GTE predicate on the "requested_at" field.
func RequestedAtGTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldRequestedAt, v))
}

// RequestedAtLT applies the LT predicate on the "requested_at" field.
func RequestedAtLT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldRequestedAt, v))
}

// RequestedAtLTE applies the LTE predicate on the "requested_at" field.
func RequestedAtLTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldRequestedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Approval) predicate.Approval {
	return predicate.Approval(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Approval) predicate.Approval {
	return predicate.Approval(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Approval) predicate.Approval {
	return predicate.Approval(sql.NotPredicates(p))
}
