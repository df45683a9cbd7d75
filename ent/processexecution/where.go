// Code generated by ent, DO NOT EDIT.

package processexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/trinity-ai/trinity/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContainsFold(FieldID, id))
}

// ProcessID applies equality check predicate on the "process_id" field. It's identical to ProcessIDEQ.
func ProcessID(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldProcessID, v))
}

// ProcessName applies equality check predicate on the "process_name" field. It's identical to ProcessNameEQ.
func ProcessName(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldProcessName, v))
}

// ProcessVersion applies equality check predicate on the "process_version" field. It's identical to ProcessVersionEQ.
func ProcessVersion(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldProcessVersion, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// TotalCost applies equality check predicate on the "total_cost" field. It's identical to TotalCostEQ.
func TotalCost(v float64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldTotalCost, v))
}

// OwnerTeam applies equality check predicate on the "owner_team" field. It's identical to OwnerTeamEQ.
func OwnerTeam(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldOwnerTeam, v))
}

// OwnerUser applies equality check predicate on the "owner_user" field. It's identical to OwnerUserEQ.
func OwnerUser(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldOwnerUser, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldError, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldErrorKind, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldSeq, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldUpdatedAt, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldPodID, v))
}

// ProcessIDEQ applies the EQ predicate on the "process_id" field.
func ProcessIDEQ(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldProcessID, v))
}

// ProcessIDNEQ applies the NEQ predicate on the "process_id" field.
func ProcessIDNEQ(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNEQ(FieldProcessID, v))
}

// ProcessIDIn applies the In predicate on the "process_id" field.
func ProcessIDIn(vs ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIn(FieldProcessID, vs...))
}

// ProcessIDNotIn applies the NotIn predicate on the "process_id" field.
func ProcessIDNotIn(vs ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotIn(FieldProcessID, vs...))
}

// ProcessIDGT applies the GT predicate on the "process_id" field.
func ProcessIDGT(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGT(FieldProcessID, v))
}

// ProcessIDGTE applies the GTE predicate on the "process_id" field.
func ProcessIDGTE(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGTE(FieldProcessID, v))
}

// ProcessIDLT applies the LT predicate on the "process_id" field.
func ProcessIDLT(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLT(FieldProcessID, v))
}

// ProcessIDLTE applies the LTE predicate on the "process_id" field.
func ProcessIDLTE(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLTE(FieldProcessID, v))
}

// ProcessIDContains applies the Contains predicate on the "process_id" field.
func ProcessIDContains(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContains(FieldProcessID, v))
}

// ProcessIDHasPrefix applies the HasPrefix predicate on the "process_id" field.
func ProcessIDHasPrefix(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldHasPrefix(FieldProcessID, v))
}

// ProcessIDHasSuffix applies the HasSuffix predicate on the "process_id" field.
func ProcessIDHasSuffix(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldHasSuffix(FieldProcessID, v))
}

// ProcessIDEqualFold applies the EqualFold predicate on the "process_id" field.
func ProcessIDEqualFold(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEqualFold(FieldProcessID, v))
}

// ProcessIDContainsFold applies the ContainsFold predicate on the "process_id" field.
func ProcessIDContainsFold(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContainsFold(FieldProcessID, v))
}

// ProcessNameEQ applies the EQ predicate on the "process_name" field.
func ProcessNameEQ(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldProcessName, v))
}

// ProcessNameNEQ applies the NEQ predicate on the "process_name" field.
func ProcessNameNEQ(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNEQ(FieldProcessName, v))
}

// ProcessNameIn applies the In predicate on the "process_name" field.
func ProcessNameIn(vs ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIn(FieldProcessName, vs...))
}

// ProcessNameNotIn applies the NotIn predicate on the "process_name" field.
func ProcessNameNotIn(vs ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotIn(FieldProcessName, vs...))
}

// ProcessNameGT applies the GT predicate on the "process_name" field.
func ProcessNameGT(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGT(FieldProcessName, v))
}

// ProcessNameGTE applies the GTE predicate on the "process_name" field.
func ProcessNameGTE(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGTE(FieldProcessName, v))
}

// ProcessNameLT applies the LT predicate on the "process_name" field.
func ProcessNameLT(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLT(FieldProcessName, v))
}

// ProcessNameLTE applies the LTE predicate on the "process_name" field.
func ProcessNameLTE(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLTE(FieldProcessName, v))
}

// ProcessNameContains applies the Contains predicate on the "process_name" field.
func ProcessNameContains(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContains(FieldProcessName, v))
}

// ProcessNameHasPrefix applies the HasPrefix predicate on the "process_name" field.
func ProcessNameHasPrefix(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldHasPrefix(FieldProcessName, v))
}

// ProcessNameHasSuffix applies the HasSuffix predicate on the "process_name" field.
func ProcessNameHasSuffix(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldHasSuffix(FieldProcessName, v))
}

// ProcessNameEqualFold applies the EqualFold predicate on the "process_name" field.
func ProcessNameEqualFold(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEqualFold(FieldProcessName, v))
}

// ProcessNameContainsFold applies the ContainsFold predicate on the "process_name" field.
func ProcessNameContainsFold(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContainsFold(FieldProcessName, v))
}

// ProcessVersionEQ applies the EQ predicate on the "process_version" field.
func ProcessVersionEQ(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldProcessVersion, v))
}

// ProcessVersionNEQ applies the NEQ predicate on the "process_version" field.
func ProcessVersionNEQ(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNEQ(FieldProcessVersion, v))
}

// ProcessVersionIn applies the In predicate on the "process_version" field.
func ProcessVersionIn(vs ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIn(FieldProcessVersion, vs...))
}

// ProcessVersionNotIn applies the NotIn predicate on the "process_version" field.
func ProcessVersionNotIn(vs ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotIn(FieldProcessVersion, vs...))
}

// ProcessVersionGT applies the GT predicate on the "process_version" field.
func ProcessVersionGT(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGT(FieldProcessVersion, v))
}

// ProcessVersionGTE applies the GTE predicate on the "process_version" field.
func ProcessVersionGTE(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGTE(FieldProcessVersion, v))
}

// ProcessVersionLT applies the LT predicate on the "process_version" field.
func ProcessVersionLT(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLT(FieldProcessVersion, v))
}

// ProcessVersionLTE applies the LTE predicate on the "process_version" field.
func ProcessVersionLTE(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLTE(FieldProcessVersion, v))
}

// ProcessVersionContains applies the Contains predicate on the "process_version" field.
func ProcessVersionContains(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContains(FieldProcessVersion, v))
}

// ProcessVersionHasPrefix applies the HasPrefix predicate on the "process_version" field.
func ProcessVersionHasPrefix(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldHasPrefix(FieldProcessVersion, v))
}

// ProcessVersionHasSuffix applies the HasSuffix predicate on the "process_version" field.
func ProcessVersionHasSuffix(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldHasSuffix(FieldProcessVersion, v))
}

// ProcessVersionEqualFold applies the EqualFold predicate on the "process_version" field.
func ProcessVersionEqualFold(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEqualFold(FieldProcessVersion, v))
}

// ProcessVersionContainsFold applies the ContainsFold predicate on the "process_version" field.
func ProcessVersionContainsFold(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContainsFold(FieldProcessVersion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// InputDataIsNil applies the IsNil predicate on the "input_data" field.
func InputDataIsNil() predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIsNull(FieldInputData))
}

// InputDataNotNil applies the NotNil predicate on the "input_data" field.
func InputDataNotNil() predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotNull(FieldInputData))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotNull(FieldOutput))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotNull(FieldCompletedAt))
}

// TotalCostEQ applies the EQ predicate on the "total_cost" field.
func TotalCostEQ(v float64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldTotalCost, v))
}

// TotalCostNEQ applies the NEQ predicate on the "total_cost" field.
func TotalCostNEQ(v float64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNEQ(FieldTotalCost, v))
}

// TotalCostIn applies the In predicate on the "total_cost" field.
func TotalCostIn(vs ...float64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIn(FieldTotalCost, vs...))
}

// TotalCostNotIn applies the NotIn predicate on the "total_cost" field.
func TotalCostNotIn(vs ...float64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotIn(FieldTotalCost, vs...))
}

// TotalCostGT applies the GT predicate on the "total_cost" field.
func TotalCostGT(v float64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGT(FieldTotalCost, v))
}

// TotalCostGTE applies the GTE predicate on the "total_cost" field.
func TotalCostGTE(v float64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGTE(FieldTotalCost, v))
}

// TotalCostLT applies the LT predicate on the "total_cost" field.
func TotalCostLT(v float64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLT(FieldTotalCost, v))
}

// TotalCostLTE applies the LTE predicate on the "total_cost" field.
func TotalCostLTE(v float64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLTE(FieldTotalCost, v))
}

// OwnerTeamEQ applies the EQ predicate on the "owner_team" field.
func OwnerTeamEQ(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldOwnerTeam, v))
}

// OwnerTeamNEQ applies the NEQ predicate on the "owner_team" field.
func OwnerTeamNEQ(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNEQ(FieldOwnerTeam, v))
}

// OwnerTeamIn applies the In predicate on the "owner_team" field.
func OwnerTeamIn(vs ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIn(FieldOwnerTeam, vs...))
}

// OwnerTeamNotIn applies the NotIn predicate on the "owner_team" field.
func OwnerTeamNotIn(vs ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotIn(FieldOwnerTeam, vs...))
}

// OwnerTeamGT applies the GT predicate on the "owner_team" field.
func OwnerTeamGT(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGT(FieldOwnerTeam, v))
}

// OwnerTeamGTE applies the GTE predicate on the "owner_team" field.
func OwnerTeamGTE(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGTE(FieldOwnerTeam, v))
}

// OwnerTeamLT applies the LT predicate on the "owner_team" field.
func OwnerTeamLT(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLT(FieldOwnerTeam, v))
}

// OwnerTeamLTE applies the LTE predicate on the "owner_team" field.
func OwnerTeamLTE(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLTE(FieldOwnerTeam, v))
}

// OwnerTeamContains applies the Contains predicate on the "owner_team" field.
func OwnerTeamContains(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContains(FieldOwnerTeam, v))
}

// OwnerTeamHasPrefix applies the HasPrefix predicate on the "owner_team" field.
func OwnerTeamHasPrefix(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldHasPrefix(FieldOwnerTeam, v))
}

// OwnerTeamHasSuffix applies the HasSuffix predicate on the "owner_team" field.
func OwnerTeamHasSuffix(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldHasSuffix(FieldOwnerTeam, v))
}

// OwnerTeamIsNil applies the IsNil predicate on the "owner_team" field.
func OwnerTeamIsNil() predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIsNull(FieldOwnerTeam))
}

// OwnerTeamNotNil applies the NotNil predicate on the "owner_team" field.
func OwnerTeamNotNil() predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotNull(FieldOwnerTeam))
}

// OwnerTeamEqualFold applies the EqualFold predicate on the "owner_team" field.
func OwnerTeamEqualFold(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEqualFold(FieldOwnerTeam, v))
}

// OwnerTeamContainsFold applies the ContainsFold predicate on the "owner_team" field.
func OwnerTeamContainsFold(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContainsFold(FieldOwnerTeam, v))
}

// OwnerUserEQ applies the EQ predicate on the "owner_user" field.
func OwnerUserEQ(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldOwnerUser, v))
}

// OwnerUserNEQ applies the NEQ predicate on the "owner_user" field.
func OwnerUserNEQ(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNEQ(FieldOwnerUser, v))
}

// OwnerUserIn applies the In predicate on the "owner_user" field.
func OwnerUserIn(vs ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIn(FieldOwnerUser, vs...))
}

// OwnerUserNotIn applies the NotIn predicate on the "owner_user" field.
func OwnerUserNotIn(vs ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotIn(FieldOwnerUser, vs...))
}

// OwnerUserGT applies the GT predicate on the "owner_user" field.
func OwnerUserGT(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGT(FieldOwnerUser, v))
}

// OwnerUserGTE applies the GTE predicate on the "owner_user" field.
func OwnerUserGTE(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGTE(FieldOwnerUser, v))
}

// OwnerUserLT applies the LT predicate on the "owner_user" field.
func OwnerUserLT(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLT(FieldOwnerUser, v))
}

// OwnerUserLTE applies the LTE predicate on the "owner_user" field.
func OwnerUserLTE(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLTE(FieldOwnerUser, v))
}

// OwnerUserContains applies the Contains predicate on the "owner_user" field.
func OwnerUserContains(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContains(FieldOwnerUser, v))
}

// OwnerUserHasPrefix applies the HasPrefix predicate on the "owner_user" field.
func OwnerUserHasPrefix(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldHasPrefix(FieldOwnerUser, v))
}

// OwnerUserHasSuffix applies the HasSuffix predicate on the "owner_user" field.
func OwnerUserHasSuffix(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldHasSuffix(FieldOwnerUser, v))
}

// OwnerUserIsNil applies the IsNil predicate on the "owner_user" field.
func OwnerUserIsNil() predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIsNull(FieldOwnerUser))
}

// OwnerUserNotNil applies the NotNil predicate on the "owner_user" field.
func OwnerUserNotNil() predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotNull(FieldOwnerUser))
}

// OwnerUserEqualFold applies the EqualFold predicate on the "owner_user" field.
func OwnerUserEqualFold(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEqualFold(FieldOwnerUser, v))
}

// OwnerUserContainsFold applies the ContainsFold predicate on the "owner_user" field.
func OwnerUserContainsFold(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContainsFold(FieldOwnerUser, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContainsFold(FieldError, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContainsFold(FieldErrorKind, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int64) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLTE(FieldSeq, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLTE(FieldUpdatedAt, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.FieldContainsFold(FieldPodID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessExecution) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessExecution) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessExecution) predicate.ProcessExecution {
	return predicate.ProcessExecution(sql.NotPredicates(p))
}
