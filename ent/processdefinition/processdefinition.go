// Code generated by ent, DO NOT EDIT.

package processdefinition

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the processdefinition type in the database.
	Label = "process_definition"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "definition_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// FieldTriggers holds the string denoting the triggers field in the database.
	FieldTriggers = "triggers"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldOwnerTeam holds the string denoting the owner_team field in the database.
	FieldOwnerTeam = "owner_team"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPublishedAt holds the string denoting the published_at field in the database.
	FieldPublishedAt = "published_at"
	// FieldMaxConcurrent holds the string denoting the max_concurrent field in the database.
	FieldMaxConcurrent = "max_concurrent"
	// FieldMaxCost holds the string denoting the max_cost field in the database.
	FieldMaxCost = "max_cost"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldDataClassification holds the string denoting the data_classification field in the database.
	FieldDataClassification = "data_classification"
	// Table holds the table name of the processdefinition in the database.
	Table = "process_definitions"
)

// Columns holds all SQL columns for processdefinition fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldVersion,
	FieldStatus,
	FieldSteps,
	FieldTriggers,
	FieldOutput,
	FieldCreatedBy,
	FieldOwnerTeam,
	FieldCreatedAt,
	FieldPublishedAt,
	FieldMaxConcurrent,
	FieldMaxCost,
	FieldPriority,
	FieldDataClassification,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultMaxConcurrent holds the default value on creation for the "max_concurrent" field.
	DefaultMaxConcurrent int
	// DefaultMaxCost holds the default value on creation for the "max_cost" field.
	DefaultMaxCost float64
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return nil
	default:
		return fmt.Errorf("processdefinition: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ProcessDefinition queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByOwnerTeam orders the results by the owner_team field.
func ByOwnerTeam(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerTeam, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPublishedAt orders the results by the published_at field.
func ByPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedAt, opts...).ToFunc()
}

// ByMaxConcurrent orders the results by the max_concurrent field.
func ByMaxConcurrent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxConcurrent, opts...).ToFunc()
}

// ByMaxCost orders the results by the max_cost field.
func ByMaxCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxCost, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByDataClassification orders the results by the data_classification field.
func ByDataClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataClassification, opts...).ToFunc()
}
