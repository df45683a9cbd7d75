package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Schedule holds the schema definition for the Schedule entity.
type Schedule struct {
	ent.Schema
}

// Fields of the Schedule.
func (Schedule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("schedule_id").
			Unique().
			Immutable(),
		field.String("process_id"),
		field.String("process_name"),
		field.String("cron"),
		field.String("timezone").
			Optional(),
		field.Bool("enabled").
			Default(true),
		field.Time("last_fired_at").
			Optional().
			Nillable(),
		field.Time("next_fire_at"),
		field.String("owner_user"),
		field.String("owner_team").
			Optional(),
		field.JSON("input", map[string]any{}).
			Optional(),
		field.String("lock_token").
			Optional().
			Default("").
			Comment("Fire lock; empty when unlocked"),
	}
}

// Indexes of the Schedule.
func (Schedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled", "next_fire_at"),
		index.Fields("process_name"),
	}
}
