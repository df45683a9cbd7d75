package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: the persisted
// outbox row behind WebSocket catchup.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("execution_id"),
		field.String("process_id").
			Optional(),
		field.String("step_id").
			Optional(),
		field.String("type"),
		field.Int64("seq").
			Comment("Strictly monotonic per execution"),
		field.Time("timestamp").
			Default(time.Now),
		field.JSON("payload", map[string]any{}).
			Optional(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "seq").
			Unique(),
		index.Fields("timestamp"),
	}
}
