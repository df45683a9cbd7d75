package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Approval holds the schema definition for the Approval entity.
type Approval struct {
	ent.Schema
}

// Fields of the Approval.
func (Approval) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("approval_id").
			Unique().
			Immutable(),
		field.String("execution_id"),
		field.String("step_id"),
		field.JSON("approvers", []string{}),
		field.Time("deadline"),
		field.Enum("status").
			Values("pending", "approved", "rejected", "changes_requested", "timed_out").
			Default("pending"),
		field.String("title").
			Optional(),
		field.JSON("artifacts", []string{}).
			Optional(),
		field.String("decided_by").
			Optional(),
		field.String("comment").
			Optional(),
		field.Time("decision_at").
			Optional().
			Nillable(),
		field.Time("requested_at"),
	}
}

// Indexes of the Approval.
func (Approval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id"),
		index.Fields("status", "deadline"),
	}
}
