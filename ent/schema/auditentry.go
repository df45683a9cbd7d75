package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEntry holds the schema definition for the AuditEntry entity.
// Append-only: rows are inserted, never updated; cleanup deletes rows past
// their retention window.
type AuditEntry struct {
	ent.Schema
}

// Fields of the AuditEntry.
func (AuditEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("actor").
			Immutable(),
		field.String("action").
			Immutable(),
		field.String("resource_type").
			Immutable(),
		field.String("resource_id").
			Immutable(),
		field.JSON("details", map[string]any{}).
			Optional().
			Immutable(),
		field.String("ip").
			Optional().
			Immutable(),
		field.String("user_agent").
			Optional().
			Immutable(),
		field.String("data_classification").
			Optional().
			Immutable(),
		field.Int("retention_days").
			Immutable(),
	}
}

// Indexes of the AuditEntry.
func (AuditEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("actor"),
		index.Fields("action"),
		index.Fields("resource_type", "resource_id"),
		index.Fields("timestamp"),
	}
}
