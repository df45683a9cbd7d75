// Code generated by ent, DO NOT EDIT.

package auditentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the auditentry type in the database.
	Label = "audit_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "audit_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldActor holds the string denoting the actor field in the database.
	FieldActor = "actor"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldResourceType holds the string denoting the resource_type field in the database.
	FieldResourceType = "resource_type"
	// FieldResourceID holds the string denoting the resource_id field in the database.
	FieldResourceID = "resource_id"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldIP holds the string denoting the ip field in the database.
	FieldIP = "ip"
	// FieldUserAgent holds the string denoting the user_agent field in the database.
	FieldUserAgent = "user_agent"
	// FieldDataClassification holds the string denoting the data_classification field in the database.
	FieldDataClassification = "data_classification"
	// FieldRetentionDays holds the string denoting the retention_days field in the database.
	FieldRetentionDays = "retention_days"
	// Table holds the table name of the auditentry in the database.
	Table = "audit_entries"
)

// Columns holds all SQL columns for auditentry fields.
var Columns = []string{
	FieldID,
	FieldTimestamp,
	FieldActor,
	FieldAction,
	FieldResourceType,
	FieldResourceID,
	FieldDetails,
	FieldIP,
	FieldUserAgent,
	FieldDataClassification,
	FieldRetentionDays,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// OrderOption defines the ordering options for the AuditEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByActor orders the results by the actor field.
func ByActor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActor, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByResourceType orders the results by the resource_type field.
func ByResourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceType, opts...).ToFunc()
}

// ByResourceID orders the results by the resource_id field.
func ByResourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceID, opts...).ToFunc()
}

// ByIP orders the results by the ip field.
func ByIP(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIP, opts...).ToFunc()
}

// ByUserAgent orders the results by the user_agent field.
func ByUserAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserAgent, opts...).ToFunc()
}

// ByDataClassification orders the results by the data_classification field.
func ByDataClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataClassification, opts...).ToFunc()
}

// ByRetentionDays orders the results by the retention_days field.
func ByRetentionDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetentionDays, opts...).ToFunc()
}
