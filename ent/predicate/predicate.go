// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Approval is the predicate function for approval builders.
type Approval func(*sql.Selector)

// AuditEntry is the predicate function for auditentry builders.
type AuditEntry func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ProcessDefinition is the predicate function for processdefinition builders.
type ProcessDefinition func(*sql.Selector)

// ProcessExecution is the predicate function for processexecution builders.
type ProcessExecution func(*sql.Selector)

// Schedule is the predicate function for schedule builders.
type Schedule func(*sql.Selector)

// StepOutput is the predicate function for stepoutput builders.
type StepOutput func(*sql.Selector)
