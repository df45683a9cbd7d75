// Code generated by ent, DO NOT EDIT.

package schedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/trinity-ai/trinity/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldID, id))
}

// ProcessID applies equality check predicate on the "process_id" field. It's identical to ProcessIDEQ.
func ProcessID(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldProcessID, v))
}

// ProcessName applies equality check predicate on the "process_name" field. It's identical to ProcessNameEQ.
func ProcessName(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldProcessName, v))
}

// Cron applies equality check predicate on the "cron" field. It's identical to CronEQ.
func Cron(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldCron, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldTimezone, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldEnabled, v))
}

// LastFiredAt applies equality check predicate on the "last_fired_at" field. It's identical to LastFiredAtEQ.
func LastFiredAt(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLastFiredAt, v))
}

// NextFireAt applies equality check predicate on the "next_fire_at" field. It's identical to NextFireAtEQ.
func NextFireAt(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldNextFireAt, v))
}

// OwnerUser applies equality check predicate on the "owner_user" field. It's identical to OwnerUserEQ.
func OwnerUser(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldOwnerUser, v))
}

// OwnerTeam applies equality check predicate on the "owner_team" field. It's identical to OwnerTeamEQ.
func OwnerTeam(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldOwnerTeam, v))
}

// LockToken applies equality check predicate on the "lock_token" field. It's identical to LockTokenEQ.
func LockToken(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLockToken, v))
}

// ProcessIDEQ applies the EQ predicate on the "process_id" field.
func ProcessIDEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldProcessID, v))
}

// ProcessIDNEQ applies the NEQ predicate on the "process_id" field.
func ProcessIDNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldProcessID, v))
}

// ProcessIDIn applies the In predicate on the "process_id" field.
func ProcessIDIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldProcessID, vs...))
}

// ProcessIDNotIn applies the NotIn predicate on the "process_id" field.
func ProcessIDNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldProcessID, vs...))
}

// ProcessIDGT applies the GT predicate on the "process_id" field.
func ProcessIDGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldProcessID, v))
}

// ProcessIDGTE applies the GTE predicate on the "process_id" field.
func ProcessIDGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldProcessID, v))
}

// ProcessIDLT applies the LT predicate on the "process_id" field.
func ProcessIDLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldProcessID, v))
}

// ProcessIDLTE applies the LTE predicate on the "process_id" field.
func ProcessIDLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldProcessID, v))
}

// ProcessIDContains applies the Contains predicate on the "process_id" field.
func ProcessIDContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldProcessID, v))
}

// ProcessIDHasPrefix applies the HasPrefix predicate on the "process_id" field.
func ProcessIDHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldProcessID, v))
}

// ProcessIDHasSuffix applies the HasSuffix predicate on the "process_id" field.
func ProcessIDHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldProcessID, v))
}

// ProcessIDEqualFold applies the EqualFold predicate on the "process_id" field.
func ProcessIDEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldProcessID, v))
}

// ProcessIDContainsFold applies the ContainsFold predicate on the "process_id" field.
func ProcessIDContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldProcessID, v))
}

// ProcessNameEQ applies the EQ predicate on the "process_name" field.
func ProcessNameEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldProcessName, v))
}

// ProcessNameNEQ applies the NEQ predicate on the "process_name" field.
func ProcessNameNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldProcessName, v))
}

// ProcessNameIn applies the In predicate on the "process_name" field.
func ProcessNameIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldProcessName, vs...))
}

// ProcessNameNotIn applies the NotIn predicate on the "process_name" field.
func ProcessNameNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldProcessName, vs...))
}

// ProcessNameGT applies the GT predicate on the "process_name" field.
func ProcessNameGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldProcessName, v))
}

// ProcessNameGTE applies the GTE predicate on the "process_name" field.
func ProcessNameGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldProcessName, v))
}

// ProcessNameLT applies the LT predicate on the "process_name" field.
func ProcessNameLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldProcessName, v))
}

// ProcessNameLTE applies the LTE predicate on the "process_name" field.
func ProcessNameLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldProcessName, v))
}

// ProcessNameContains applies the Contains predicate on the "process_name" field.
func ProcessNameContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldProcessName, v))
}

// ProcessNameHasPrefix applies the HasPrefix predicate on the "process_name" field.
func ProcessNameHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldProcessName, v))
}

// ProcessNameHasSuffix applies the HasSuffix predicate on the "process_name" field.
func ProcessNameHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldProcessName, v))
}

// ProcessNameEqualFold applies the EqualFold predicate on the "process_name" field.
func ProcessNameEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldProcessName, v))
}

// ProcessNameContainsFold applies the ContainsFold predicate on the "process_name" field.
func ProcessNameContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldProcessName, v))
}

// CronEQ applies the EQ predicate on the "cron" field.
func CronEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldCron, v))
}

// CronNEQ applies the NEQ predicate on the "cron" field.
func CronNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldCron, v))
}

// CronIn applies the In predicate on the "cron" field.
func CronIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldCron, vs...))
}

// CronNotIn applies the NotIn predicate on the "cron" field.
func CronNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldCron, vs...))
}

// CronGT applies the GT predicate on the "cron" field.
func CronGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldCron, v))
}

// CronGTE applies the GTE predicate on the "cron" field.
func CronGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldCron, v))
}

// CronLT applies the LT predicate on the "cron" field.
func CronLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldCron, v))
}

// CronLTE applies the LTE predicate on the "cron" field.
func CronLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldCron, v))
}

// CronContains applies the Contains predicate on the "cron" field.
func CronContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldCron, v))
}

// CronHasPrefix applies the HasPrefix predicate on the "cron" field.
func CronHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldCron, v))
}

// CronHasSuffix applies the HasSuffix predicate on the "cron" field.
func CronHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldCron, v))
}

// CronEqualFold applies the EqualFold predicate on the "cron" field.
func CronEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldCron, v))
}

// CronContainsFold applies the ContainsFold predicate on the "cron" field.
func CronContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldCron, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneIsNil applies the IsNil predicate on the "timezone" field.
func TimezoneIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldTimezone))
}

// TimezoneNotNil applies the NotNil predicate on the "timezone" field.
func TimezoneNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldTimezone))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldTimezone, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldEnabled, v))
}

// LastFiredAtEQ applies the EQ predicate on the "last_fired_at" field.
func LastFiredAtEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLastFiredAt, v))
}

// LastFiredAtNEQ applies the NEQ predicate on the "last_fired_at" field.
func LastFiredAtNEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldLastFiredAt, v))
}

// LastFiredAtIn applies the In predicate on the "last_fired_at" field.
func LastFiredAtIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldLastFiredAt, vs...))
}

// LastFiredAtNotIn applies the NotIn predicate on the "last_fired_at" field.
func LastFiredAtNotIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldLastFiredAt, vs...))
}

// LastFiredAtGT applies the GT predicate on the "last_fired_at" field.
func LastFiredAtGT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldLastFiredAt, v))
}

// LastFiredAtGTE applies the GTE predicate on the "last_fired_at" field.
func LastFiredAtGTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldLastFiredAt, v))
}

// LastFiredAtLT applies the LT predicate on the "last_fired_at" field.
func LastFiredAtLT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldLastFiredAt, v))
}

// LastFiredAtLTE applies the LTE predicate on the "last_fired_at" field.
func LastFiredAtLTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldLastFiredAt, v))
}

// LastFiredAtIsNil applies the IsNil predicate on the "last_fired_at" field.
func LastFiredAtIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldLastFiredAt))
}

// LastFiredAtNotNil applies the NotNil predicate on the "last_fired_at" field.
func LastFiredAtNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldLastFiredAt))
}

// NextFireAtEQ applies the EQ predicate on the "next_fire_at" field.
func NextFireAtEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldNextFireAt, v))
}

// NextFireAtNEQ applies the NEQ predicate on the "next_fire_at" field.
func NextFireAtNEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldNextFireAt, v))
}

// NextFireAtIn applies the In predicate on the "next_fire_at" field.
func NextFireAtIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldNextFireAt, vs...))
}

// NextFireAtNotIn applies the NotIn predicate on the "next_fire_at" field.
func NextFireAtNotIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldNextFireAt, vs...))
}

// NextFireAtGT applies the GT predicate on the "next_fire_at" field.
func NextFireAtGT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldNextFireAt, v))
}

// NextFireAtGTE applies the GTE predicate on the "next_fire_at" field.
func NextFireAtGTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldNextFireAt, v))
}

// NextFireAtLT applies the LT predicate on the "next_fire_at" field.
func NextFireAtLT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldNextFireAt, v))
}

// NextFireAtLTE applies the LTE predicate on the "next_fire_at" field.
func NextFireAtLTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldNextFireAt, v))
}

// OwnerUserEQ applies the EQ predicate on the "owner_user" field.
func OwnerUserEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldOwnerUser, v))
}

// OwnerUserNEQ applies the NEQ predicate on the "owner_user" field.
func OwnerUserNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldOwnerUser, v))
}

// OwnerUserIn applies the In predicate on the "owner_user" field.
func OwnerUserIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldOwnerUser, vs...))
}

// OwnerUserNotIn applies the NotIn predicate on the "owner_user" field.
func OwnerUserNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldOwnerUser, vs...))
}

// OwnerUserGT applies the GT predicate on the "owner_user" field.
func OwnerUserGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldOwnerUser, v))
}

// OwnerUserGTE applies the GTE predicate on the "owner_user" field.
func OwnerUserGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldOwnerUser, v))
}

// OwnerUserLT applies the LT predicate on the "owner_user" field.
func OwnerUserLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldOwnerUser, v))
}

// OwnerUserLTE applies the LTE predicate on the "owner_user" field.
func OwnerUserLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldOwnerUser, v))
}

// OwnerUserContains applies the Contains predicate on the "owner_user" field.
func OwnerUserContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldOwnerUser, v))
}

// OwnerUserHasPrefix applies the HasPrefix predicate on the "owner_user" field.
func OwnerUserHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldOwnerUser, v))
}

// OwnerUserHasSuffix applies the HasSuffix predicate on the "owner_user" field.
func OwnerUserHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldOwnerUser, v))
}

// OwnerUserEqualFold applies the EqualFold predicate on the "owner_user" field.
func OwnerUserEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldOwnerUser, v))
}

// OwnerUserContainsFold applies the ContainsFold predicate on the "owner_user" field.
func OwnerUserContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldOwnerUser, v))
}

// OwnerTeamEQ applies the EQ predicate on the "owner_team" field.
func OwnerTeamEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldOwnerTeam, v))
}

// OwnerTeamNEQ applies the NEQ predicate on the "owner_team" field.
func OwnerTeamNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldOwnerTeam, v))
}

// OwnerTeamIn applies the In predicate on the "owner_team" field.
func OwnerTeamIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldOwnerTeam, vs...))
}

// OwnerTeamNotIn applies the NotIn predicate on the "owner_team" field.
func OwnerTeamNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldOwnerTeam, vs...))
}

// OwnerTeamGT applies the GT predicate on the "owner_team" field.
func OwnerTeamGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldOwnerTeam, v))
}

// OwnerTeamGTE applies the GTE predicate on the "owner_team" field.
func OwnerTeamGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldOwnerTeam, v))
}

// OwnerTeamLT applies the LT predicate on the "owner_team" field.
func OwnerTeamLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldOwnerTeam, v))
}

// OwnerTeamLTE applies the LTE predicate on the "owner_team" field.
func OwnerTeamLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldOwnerTeam, v))
}

// OwnerTeamContains applies the Contains predicate on the "owner_team" field.
func OwnerTeamContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldOwnerTeam, v))
}

// OwnerTeamHasPrefix applies the HasPrefix predicate on the "owner_team" field.
func OwnerTeamHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldOwnerTeam, v))
}

// OwnerTeamHasSuffix applies the HasSuffix predicate on the "owner_team" field.
func OwnerTeamHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldOwnerTeam, v))
}

// OwnerTeamIsNil applies the IsNil predicate on the "owner_team" field.
func OwnerTeamIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldOwnerTeam))
}

// OwnerTeamNotNil applies the NotNil predicate on the "owner_team" field.
func OwnerTeamNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldOwnerTeam))
}

// OwnerTeamEqualFold applies the EqualFold predicate on the "owner_team" field.
func OwnerTeamEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldOwnerTeam, v))
}

// OwnerTeamContainsFold applies the ContainsFold predicate on the "owner_team" field.
func OwnerTeamContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldOwnerTeam, v))
}

// InputIsNil applies the IsNil predicate on the "input" field.
func InputIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldInput))
}

// InputNotNil applies the NotNil predicate on the "input" field.
func InputNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldInput))
}

// LockTokenEQ applies the EQ predicate on the "lock_token" field.
func LockTokenEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLockToken, v))
}

// LockTokenNEQ applies the NEQ predicate on the "lock_token" field.
func LockTokenNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldLockToken, v))
}

// LockTokenIn applies the In predicate on the "lock_token" field.
func LockTokenIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldLockToken, vs...))
}

// LockTokenNotIn applies the NotIn predicate on the "lock_token" field.
func LockTokenNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldLockToken, vs...))
}

// LockTokenGT applies the GT predicate on the "lock_token" field.
func LockTokenGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldLockToken, v))
}

// LockTokenGTE applies the GTE predicate on the "lock_token" field.
func LockTokenGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldLockToken, v))
}

// LockTokenLT applies the LT predicate on the "lock_token" field.
func LockTokenLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldLockToken, v))
}

// LockTokenLTE applies the LTE predicate on the "lock_token" field.
func LockTokenLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldLockToken, v))
}

// LockTokenContains applies the Contains predicate on the "lock_token" field.
func LockTokenContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldLockToken, v))
}

// LockTokenHasPrefix applies the HasPrefix predicate on the "lock_token" field.
func LockTokenHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldLockToken, v))
}

// LockTokenHasSuffix applies the HasSuffix predicate on the "lock_token" field.
func LockTokenHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldLockToken, v))
}

// LockTokenIsNil applies the IsNil predicate on the "lock_token" field.
func LockTokenIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldLockToken))
}

// LockTokenNotNil applies the NotNil predicate on the "lock_token" field.
func LockTokenNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldLockToken))
}

// LockTokenEqualFold applies the EqualFold predicate on the "lock_token" field.
func LockTokenEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldLockToken, v))
}

// LockTokenContainsFold applies the ContainsFold predicate on the "lock_token" field.
func LockTokenContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldLockToken, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Schedule) predicate.Schedule {
	return predicate.Schedule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Schedule) predicate.Schedule {
	return predicate.Schedule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Schedule) predicate.Schedule {
	return predicate.Schedule(sql.NotPredicates(p))
}
