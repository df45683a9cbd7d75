// Code generated by ent, DO NOT EDIT.

package auditentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/trinity-ai/trinity/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldID, id))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldTimestamp, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldActor, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldAction, v))
}

// ResourceType applies equality check predicate on the "resource_type" field. It's identical to ResourceTypeEQ.
func ResourceType(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldResourceType, v))
}

// ResourceID applies equality check predicate on the "resource_id" field. It's identical to ResourceIDEQ.
func ResourceID(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldResourceID, v))
}

// IP applies equality check predicate on the "ip" field. It's identical to IPEQ.
func IP(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldIP, v))
}

// UserAgent applies equality check predicate on the "user_agent" field. It's identical to UserAgentEQ.
func UserAgent(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldUserAgent, v))
}

// DataClassification applies equality check predicate on the "data_classification" field. It's identical to DataClassificationEQ.
func DataClassification(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldDataClassification, v))
}

// RetentionDays applies equality check predicate on the "retention_days" field. It's identical to RetentionDaysEQ.
func RetentionDays(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldRetentionDays, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldTimestamp, v))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldActor, v))
}

// ActorContains applies the Contains predicate on the "actor" field.
func ActorContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldActor, v))
}

// ActorHasPrefix applies the HasPrefix predicate on the "actor" field.
func ActorHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldActor, v))
}

// ActorHasSuffix applies the HasSuffix predicate on the "actor" field.
func ActorHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldActor, v))
}

// ActorEqualFold applies the EqualFold predicate on the "actor" field.
func ActorEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldActor, v))
}

// ActorContainsFold applies the ContainsFold predicate on the "actor" field.
func ActorContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldActor, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldAction, v))
}

// ResourceTypeEQ applies the EQ predicate on the "resource_type" field.
func ResourceTypeEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldResourceType, v))
}

// ResourceTypeNEQ applies the NEQ predicate on the "resource_type" field.
func ResourceTypeNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldResourceType, v))
}

// ResourceTypeIn applies the In predicate on the "resource_type" field.
func ResourceTypeIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldResourceType, vs...))
}

// ResourceTypeNotIn applies the NotIn predicate on the "resource_type" field.
func ResourceTypeNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldResourceType, vs...))
}

// ResourceTypeGT applies the GT predicate on the "resource_type" field.
func ResourceTypeGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldResourceType, v))
}

// ResourceTypeGTE applies the GTE predicate on the "resource_type" field.
func ResourceTypeGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldResourceType, v))
}

// ResourceTypeLT applies the LT predicate on the "resource_type" field.
func ResourceTypeLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldResourceType, v))
}

// ResourceTypeLTE applies the LTE predicate on the "resource_type" field.
func ResourceTypeLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldResourceType, v))
}

// ResourceTypeContains applies the Contains predicate on the "resource_type" field.
func ResourceTypeContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldResourceType, v))
}

// ResourceTypeHasPrefix applies the HasPrefix predicate on the "resource_type" field.
func ResourceTypeHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldResourceType, v))
}

// ResourceTypeHasSuffix applies the HasSuffix predicate on the "resource_type" field.
func ResourceTypeHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldResourceType, v))
}

// ResourceTypeEqualFold applies the EqualFold predicate on the "resource_type" field.
func ResourceTypeEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldResourceType, v))
}

// ResourceTypeContainsFold applies the ContainsFold predicate on the "resource_type" field.
func ResourceTypeContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldResourceType, v))
}

// ResourceIDEQ applies the EQ predicate on the "resource_id" field.
func ResourceIDEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldResourceID, v))
}

// ResourceIDNEQ applies the NEQ predicate on the "resource_id" field.
func ResourceIDNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldResourceID, v))
}

// ResourceIDIn applies the In predicate on the "resource_id" field.
func ResourceIDIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldResourceID, vs...))
}

// ResourceIDNotIn applies the NotIn predicate on the "resource_id" field.
func ResourceIDNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldResourceID, vs...))
}

// ResourceIDGT applies the GT predicate on the "resource_id" field.
func ResourceIDGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldResourceID, v))
}

// ResourceIDGTE applies the GTE predicate on the "resource_id" field.
func ResourceIDGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldResourceID, v))
}

// ResourceIDLT applies the LT predicate on the "resource_id" field.
func ResourceIDLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldResourceID, v))
}

// ResourceIDLTE applies the LTE predicate on the "resource_id" field.
func ResourceIDLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldResourceID, v))
}

// ResourceIDContains applies the Contains predicate on the "resource_id" field.
func ResourceIDContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldResourceID, v))
}

// ResourceIDHasPrefix applies the HasPrefix predicate on the "resource_id" field.
func ResourceIDHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldResourceID, v))
}

// ResourceIDHasSuffix applies the HasSuffix predicate on the "resource_id" field.
func ResourceIDHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldResourceID, v))
}

// ResourceIDEqualFold applies the EqualFold predicate on the "resource_id" field.
func ResourceIDEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldResourceID, v))
}

// ResourceIDContainsFold applies the ContainsFold predicate on the "resource_id" field.
func ResourceIDContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldResourceID, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotNull(FieldDetails))
}

// IPEQ applies the EQ predicate on the "ip" field.
func IPEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldIP, v))
}

// IPNEQ applies the NEQ predicate on the "ip" field.
func IPNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldIP, v))
}

// IPIn applies the In predicate on the "ip" field.
func IPIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldIP, vs...))
}

// IPNotIn applies the NotIn predicate on the "ip" field.
func IPNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldIP, vs...))
}

// IPGT applies the GT predicate on the "ip" field.
func IPGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldIP, v))
}

// IPGTE applies the GTE predicate on the "ip" field.
func IPGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldIP, v))
}

// IPLT applies the LT predicate on the "ip" field.
func IPLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldIP, v))
}

// IPLTE applies the LTE predicate on the "ip" field.
func IPLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldIP, v))
}

// IPContains applies the Contains predicate on the "ip" field.
func IPContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldIP, v))
}

// IPHasPrefix applies the HasPrefix predicate on the "ip" field.
func IPHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldIP, v))
}

// IPHasSuffix applies the HasSuffix predicate on the "ip" field.
func IPHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldIP, v))
}

// IPIsNil applies the IsNil predicate on the "ip" field.
func IPIsNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIsNull(FieldIP))
}

// IPNotNil applies the NotNil predicate on the "ip" field.
func IPNotNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotNull(FieldIP))
}

// IPEqualFold applies the EqualFold predicate on the "ip" field.
func IPEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldIP, v))
}

// IPContainsFold applies the ContainsFold predicate on the "ip" field.
func IPContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldIP, v))
}

// UserAgentEQ applies the EQ predicate on the "user_agent" field.
func UserAgentEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldUserAgent, v))
}

// UserAgentNEQ applies the NEQ predicate on the "user_agent" field.
func UserAgentNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldUserAgent, v))
}

// UserAgentIn applies the In predicate on the "user_agent" field.
func UserAgentIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldUserAgent, vs...))
}

// UserAgentNotIn applies the NotIn predicate on the "user_agent" field.
func UserAgentNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldUserAgent, vs...))
}

// UserAgentGT applies the GT predicate on the "user_agent" field.
func UserAgentGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldUserAgent, v))
}

// UserAgentGTE applies the GTE predicate on the "user_agent" field.
func UserAgentGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldUserAgent, v))
}

// UserAgentLT applies the LT predicate on the "user_agent" field.
func UserAgentLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldUserAgent, v))
}

// UserAgentLTE applies the LTE predicate on the "user_agent" field.
func UserAgentLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldUserAgent, v))
}

// UserAgentContains applies the Contains predicate on the "user_agent" field.
func UserAgentContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldUserAgent, v))
}

// UserAgentHasPrefix applies the HasPrefix predicate on the "user_agent" field.
func UserAgentHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldUserAgent, v))
}

// UserAgentHasSuffix applies the HasSuffix predicate on the "user_agent" field.
func UserAgentHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldUserAgent, v))
}

// UserAgentIsNil applies the IsNil predicate on the "user_agent" field.
func UserAgentIsNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIsNull(FieldUserAgent))
}

// UserAgentNotNil applies the NotNil predicate on the "user_agent" field.
func UserAgentNotNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotNull(FieldUserAgent))
}

// UserAgentEqualFold applies the EqualFold predicate on the "user_agent" field.
func UserAgentEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldUserAgent, v))
}

// UserAgentContainsFold applies the ContainsFold predicate on the "user_agent" field.
func UserAgentContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldUserAgent, v))
}

// DataClassificationEQ applies the EQ predicate on the "data_classification" field.
func DataClassificationEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldDataClassification, v))
}

// DataClassificationNEQ applies the NEQ predicate on the "data_classification" field.
func DataClassificationNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldDataClassification, v))
}

// DataClassificationIn applies the In predicate on the "data_classification" field.
func DataClassificationIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldDataClassification, vs...))
}

// DataClassificationNotIn applies the NotIn predicate on the "data_classification" field.
func DataClassificationNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldDataClassification, vs...))
}

// DataClassificationGT applies the GT predicate on the "data_classification" field.
func DataClassificationGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldDataClassification, v))
}

// DataClassificationGTE applies the GTE predicate on the "data_classification" field.
func DataClassificationGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldDataClassification, v))
}

// DataClassificationLT applies the LT predicate on the "data_classification" field.
func DataClassificationLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldDataClassification, v))
}

// DataClassificationLTE applies the LTE predicate on the "data_classification" field.
func DataClassificationLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldDataClassification, v))
}

// DataClassificationContains applies the Contains predicate on the "data_classification" field.
func DataClassificationContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldDataClassification, v))
}

// DataClassificationHasPrefix applies the HasPrefix predicate on the "data_classification" field.
func DataClassificationHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldDataClassification, v))
}

// DataClassificationHasSuffix applies the HasSuffix predicate on the "data_classification" field.
func DataClassificationHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldDataClassification, v))
}

// DataClassificationIsNil applies the IsNil predicate on the "data_classification" field.
func DataClassificationIsNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIsNull(FieldDataClassification))
}

// DataClassificationNotNil applies the NotNil predicate on the "data_classification" field.
func DataClassificationNotNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotNull(FieldDataClassification))
}

// DataClassificationEqualFold applies the EqualFold predicate on the "data_classification" field.
func DataClassificationEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldDataClassification, v))
}

// DataClassificationContainsFold applies the ContainsFold predicate on the "data_classification" field.
func DataClassificationContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldDataClassification, v))
}

// RetentionDaysEQ applies the EQ predicate on the "retention_days" field.
func RetentionDaysEQ(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldRetentionDays, v))
}

// RetentionDaysNEQ applies the NEQ predicate on the "retention_days" field.
func RetentionDaysNEQ(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldRetentionDays, v))
}

// RetentionDaysIn applies the In predicate on the "retention_days" field.
func RetentionDaysIn(vs ...int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldRetentionDays, vs...))
}

// RetentionDaysNotIn applies the NotIn predicate on the "retention_days" field.
func RetentionDaysNotIn(vs ...int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldRetentionDays, vs...))
}

// RetentionDaysGT applies the GT predicate on the "retention_days" field.
func RetentionDaysGT(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldRetentionDays, v))
}

// RetentionDaysGTE applies the GTE predicate on the "retention_days" field.
func RetentionDaysGTE(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldRetentionDays, v))
}

// RetentionDaysLT applies the LT predicate on the "retention_days" field.
func RetentionDaysLT(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldRetentionDays, v))
}

// RetentionDaysLTE applies the LTE predicate on the "retention_days" field.
func RetentionDaysLTE(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldRetentionDays, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditEntry) predicate.AuditEntry {
	return predicate.AuditEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditEntry) predicate.AuditEntry {
	return predicate.AuditEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditEntry) predicate.AuditEntry {
	return predicate.AuditEntry(sql.NotPredicates(p))
}
