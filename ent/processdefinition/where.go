// Code generated by ent, DO NOT EDIT.

package processdefinition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/trinity-ai/trinity/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldName, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldVersion, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldCreatedBy, v))
}

// OwnerTeam applies equality check predicate on the "owner_team" field. It's identical to OwnerTeamEQ.
func OwnerTeam(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldOwnerTeam, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldCreatedAt, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldPublishedAt, v))
}

// MaxConcurrent applies equality check predicate on the "max_concurrent" field. It's identical to MaxConcurrentEQ.
func MaxConcurrent(v int) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldMaxConcurrent, v))
}

// MaxCost applies equality check predicate on the "max_cost" field. It's identical to MaxCostEQ.
func MaxCost(v float64) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldMaxCost, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldPriority, v))
}

// DataClassification applies equality check predicate on the "data_classification" field. It's identical to DataClassificationEQ.
func DataClassification(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldDataClassification, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldContainsFold(FieldName, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLTE(FieldVersion, v))
}

// VersionContains applies the Contains predicate on the "version" field.
func VersionContains(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldContains(FieldVersion, v))
}

// VersionHasPrefix applies the HasPrefix predicate on the "version" field.
func VersionHasPrefix(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldHasPrefix(FieldVersion, v))
}

// VersionHasSuffix applies the HasSuffix predicate on the "version" field.
func VersionHasSuffix(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldHasSuffix(FieldVersion, v))
}

// VersionEqualFold applies the EqualFold predicate on the "version" field.
func VersionEqualFold(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEqualFold(FieldVersion, v))
}

// VersionContainsFold applies the ContainsFold predicate on the "version" field.
func VersionContainsFold(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldContainsFold(FieldVersion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotIn(FieldStatus, vs...))
}

// TriggersIsNil applies the IsNil predicate on the "triggers" field.
func TriggersIsNil() predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIsNull(FieldTriggers))
}

// TriggersNotNil applies the NotNil predicate on the "triggers" field.
func TriggersNotNil() predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotNull(FieldTriggers))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotNull(FieldOutput))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldContainsFold(FieldCreatedBy, v))
}

// OwnerTeamEQ applies the EQ predicate on the "owner_team" field.
func OwnerTeamEQ(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldOwnerTeam, v))
}

// OwnerTeamNEQ applies the NEQ predicate on the "owner_team" field.
func OwnerTeamNEQ(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNEQ(FieldOwnerTeam, v))
}

// OwnerTeamIn applies the In predicate on the "owner_team" field.
func OwnerTeamIn(vs ...string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIn(FieldOwnerTeam, vs...))
}

// OwnerTeamNotIn applies the NotIn predicate on the "owner_team" field.
func OwnerTeamNotIn(vs ...string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotIn(FieldOwnerTeam, vs...))
}

// OwnerTeamGT applies the GT predicate on the "owner_team" field.
func OwnerTeamGT(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGT(FieldOwnerTeam, v))
}

// OwnerTeamGTE applies the GTE predicate on the "owner_team" field.
func OwnerTeamGTE(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGTE(FieldOwnerTeam, v))
}

// OwnerTeamLT applies the LT predicate on the "owner_team" field.
func OwnerTeamLT(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLT(FieldOwnerTeam, v))
}

// OwnerTeamLTE applies the LTE predicate on the "owner_team" field.
func OwnerTeamLTE(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLTE(FieldOwnerTeam, v))
}

// OwnerTeamContains applies the Contains predicate on the "owner_team" field.
func OwnerTeamContains(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldContains(FieldOwnerTeam, v))
}

// OwnerTeamHasPrefix applies the HasPrefix predicate on the "owner_team" field.
func OwnerTeamHasPrefix(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldHasPrefix(FieldOwnerTeam, v))
}

// OwnerTeamHasSuffix applies the HasSuffix predicate on the "owner_team" field.
func OwnerTeamHasSuffix(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldHasSuffix(FieldOwnerTeam, v))
}

// OwnerTeamIsNil applies the IsNil predicate on the "owner_team" field.
func OwnerTeamIsNil() predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIsNull(FieldOwnerTeam))
}

// OwnerTeamNotNil applies the NotNil predicate on the "owner_team" field.
func OwnerTeamNotNil() predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotNull(FieldOwnerTeam))
}

// OwnerTeamEqualFold applies the EqualFold predicate on the "owner_team" field.
func OwnerTeamEqualFold(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEqualFold(FieldOwnerTeam, v))
}

// OwnerTeamContainsFold applies the ContainsFold predicate on the "owner_team" field.
func OwnerTeamContainsFold(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldContainsFold(FieldOwnerTeam, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLTE(FieldCreatedAt, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotNull(FieldPublishedAt))
}

// MaxConcurrentEQ applies the EQ predicate on the "max_concurrent" field.
func MaxConcurrentEQ(v int) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldMaxConcurrent, v))
}

// MaxConcurrentNEQ applies the NEQ predicate on the "max_concurrent" field.
func MaxConcurrentNEQ(v int) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNEQ(FieldMaxConcurrent, v))
}

// MaxConcurrentIn applies the In predicate on the "max_concurrent" field.
func MaxConcurrentIn(vs ...int) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIn(FieldMaxConcurrent, vs...))
}

// MaxConcurrentNotIn applies the NotIn predicate on the "max_concurrent" field.
func MaxConcurrentNotIn(vs ...int) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotIn(FieldMaxConcurrent, vs...))
}

// MaxConcurrentGT applies the GT predicate on the "max_concurrent" field.
func MaxConcurrentGT(v int) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGT(FieldMaxConcurrent, v))
}

// MaxConcurrentGTE applies the GTE predicate on the "max_concurrent" field.
func MaxConcurrentGTE(v int) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGTE(FieldMaxConcurrent, v))
}

// MaxConcurrentLT applies the LT predicate on the "max_concurrent" field.
func MaxConcurrentLT(v int) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLT(FieldMaxConcurrent, v))
}

// MaxConcurrentLTE applies the LTE predicate on the "max_concurrent" field.
func MaxConcurrentLTE(v int) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLTE(FieldMaxConcurrent, v))
}

// MaxCostEQ applies the EQ predicate on the "max_cost" field.
func MaxCostEQ(v float64) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldMaxCost, v))
}

// MaxCostNEQ applies the NEQ predicate on the "max_cost" field.
func MaxCostNEQ(v float64) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNEQ(FieldMaxCost, v))
}

// MaxCostIn applies the In predicate on the "max_cost" field.
func MaxCostIn(vs ...float64) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIn(FieldMaxCost, vs...))
}

// MaxCostNotIn applies the NotIn predicate on the "max_cost" field.
func MaxCostNotIn(vs ...float64) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotIn(FieldMaxCost, vs...))
}

// MaxCostGT applies the GT predicate on the "max_cost" field.
func MaxCostGT(v float64) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGT(FieldMaxCost, v))
}

// MaxCostGTE applies the GTE predicate on the "max_cost" field.
func MaxCostGTE(v float64) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGTE(FieldMaxCost, v))
}

// MaxCostLT applies the LT predicate on the "max_cost" field.
func MaxCostLT(v float64) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLT(FieldMaxCost, v))
}

// MaxCostLTE applies the LTE predicate on the "max_cost" field.
func MaxCostLTE(v float64) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLTE(FieldMaxCost, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLTE(FieldPriority, v))
}

// PriorityContains applies the Contains predicate on the "priority" field.
func PriorityContains(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldContains(FieldPriority, v))
}

// PriorityHasPrefix applies the HasPrefix predicate on the "priority" field.
func PriorityHasPrefix(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldHasPrefix(FieldPriority, v))
}

// PriorityHasSuffix applies the HasSuffix predicate on the "priority" field.
func PriorityHasSuffix(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldHasSuffix(FieldPriority, v))
}

// PriorityIsNil applies the IsNil predicate on the "priority" field.
func PriorityIsNil() predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIsNull(FieldPriority))
}

// PriorityNotNil applies the NotNil predicate on the "priority" field.
func PriorityNotNil() predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotNull(FieldPriority))
}

// PriorityEqualFold applies the EqualFold predicate on the "priority" field.
func PriorityEqualFold(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEqualFold(FieldPriority, v))
}

// PriorityContainsFold applies the ContainsFold predicate on the "priority" field.
func PriorityContainsFold(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldContainsFold(FieldPriority, v))
}

// DataClassificationEQ applies the EQ predicate on the "data_classification" field.
func DataClassificationEQ(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEQ(FieldDataClassification, v))
}

// DataClassificationNEQ applies the NEQ predicate on the "data_classification" field.
func DataClassificationNEQ(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNEQ(FieldDataClassification, v))
}

// DataClassificationIn applies the In predicate on the "data_classification" field.
func DataClassificationIn(vs ...string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIn(FieldDataClassification, vs...))
}

// DataClassificationNotIn applies the NotIn predicate on the "data_classification" field.
func DataClassificationNotIn(vs ...string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotIn(FieldDataClassification, vs...))
}

// DataClassificationGT applies the GT predicate on the "data_classification" field.
func DataClassificationGT(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGT(FieldDataClassification, v))
}

// DataClassificationGTE applies the GTE predicate on the "data_classification" field.
func DataClassificationGTE(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldGTE(FieldDataClassification, v))
}

// DataClassificationLT applies the LT predicate on the "data_classification" field.
func DataClassificationLT(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLT(FieldDataClassification, v))
}

// DataClassificationLTE applies the LTE predicate on the "data_classification" field.
func DataClassificationLTE(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldLTE(FieldDataClassification, v))
}

// DataClassificationContains applies the Contains predicate on the "data_classification" field.
func DataClassificationContains(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldContains(FieldDataClassification, v))
}

// DataClassificationHasPrefix applies the HasPrefix predicate on the "data_classification" field.
func DataClassificationHasPrefix(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldHasPrefix(FieldDataClassification, v))
}

// DataClassificationHasSuffix applies the HasSuffix predicate on the "data_classification" field.
func DataClassificationHasSuffix(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldHasSuffix(FieldDataClassification, v))
}

// DataClassificationIsNil applies the IsNil predicate on the "data_classification" field.
func DataClassificationIsNil() predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldIsNull(FieldDataClassification))
}

// DataClassificationNotNil applies the NotNil predicate on the "data_classification" field.
func DataClassificationNotNil() predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldNotNull(FieldDataClassification))
}

// DataClassificationEqualFold applies the EqualFold predicate on the "data_classification" field.
func DataClassificationEqualFold(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldEqualFold(FieldDataClassification, v))
}

// DataClassificationContainsFold applies the ContainsFold predicate on the "data_classification" field.
func DataClassificationContainsFold(v string) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.FieldContainsFold(FieldDataClassification, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessDefinition) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessDefinition) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessDefinition) predicate.ProcessDefinition {
	return predicate.ProcessDefinition(sql.NotPredicates(p))
}
