// Code generated by ent, DO NOT EDIT.

package schedule

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the schedule type in the database.
	Label = "schedule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "schedule_id"
	// FieldProcessID holds the string denoting the process_id field in the database.
	FieldProcessID = "process_id"
	// FieldProcessName holds the string denoting the process_name field in the database.
	FieldProcessName = "process_name"
	// FieldCron holds the string denoting the cron field in the database.
	FieldCron = "cron"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldLastFiredAt holds the string denoting the last_fired_at field in the database.
	FieldLastFiredAt = "last_fired_at"
	// FieldNextFireAt holds the string denoting the next_fire_at field in the database.
	FieldNextFireAt = "next_fire_at"
	// FieldOwnerUser holds the string denoting the owner_user field in the database.
	FieldOwnerUser = "owner_user"
	// FieldOwnerTeam holds the string denoting the owner_team field in the database.
	FieldOwnerTeam = "owner_team"
	// FieldInput holds the string denoting the input field in the database.
	FieldInput = "input"
	// FieldLockToken holds the string denoting the lock_token field in the database.
	FieldLockToken = "lock_token"
	// Table holds the table name of the schedule in the database.
	Table = "schedules"
)

// Columns holds all SQL columns for schedule fields.
var Columns = []string{
	FieldID,
	FieldProcessID,
	FieldProcessName,
	FieldCron,
	FieldTimezone,
	FieldEnabled,
	FieldLastFiredAt,
	FieldNextFireAt,
	FieldOwnerUser,
	FieldOwnerTeam,
	FieldInput,
	FieldLockToken,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultLockToken holds the default value on creation for the "lock_token" field.
	DefaultLockToken string
)

// OrderOption defines the ordering options for the Schedule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProcessID orders the results by the process_id field.
func ByProcessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessID, opts...).ToFunc()
}

// ByProcessName orders the results by the process_name field.
func ByProcessName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessName, opts...).ToFunc()
}

// ByCron orders the results by the cron field.
func ByCron(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCron, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByLastFiredAt orders the results by the last_fired_at field.
func ByLastFiredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastFiredAt, opts...).ToFunc()
}

// ByNextFireAt orders the results by the next_fire_at field.
func ByNextFireAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextFireAt, opts...).ToFunc()
}

// ByOwnerUser orders the results by the owner_user field.
func ByOwnerUser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerUser, opts...).ToFunc()
}

// ByOwnerTeam orders the results by the owner_team field.
func ByOwnerTeam(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerTeam, opts...).ToFunc()
}

// ByLockToken orders the results by the lock_token field.
func ByLockToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockToken, opts...).ToFunc()
}
