package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/trinity-ai/trinity/pkg/models"
)

// ProcessExecution holds the schema definition for the ProcessExecution entity.
type ProcessExecution struct {
	ent.Schema
}

// Fields of the ProcessExecution.
func (ProcessExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("process_id"),
		field.String("process_name"),
		field.String("process_version"),
		field.Enum("status").
			Values("pending", "running", "paused", "completed", "failed", "cancelled").
			Default("pending"),
		field.JSON("triggered_by", models.TriggeredBy{}),
		field.JSON("input_data", map[string]any{}).
			Optional(),
		field.JSON("output", map[string]any{}).
			Optional(),
		field.Time("started_at"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Float("total_cost").
			Default(0),
		field.JSON("steps", map[string]*models.StepExecution{}).
			Comment("Per-step runtime state"),
		field.String("owner_team").
			Optional(),
		field.String("owner_user").
			Optional(),
		field.String("error").
			Optional(),
		field.String("error_kind").
			Optional(),
		field.Int64("seq").
			Default(0).
			Comment("Last event sequence; doubles as the optimistic-concurrency token"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Heartbeat for the recovery scan"),
		field.String("pod_id").
			Optional().
			Comment("For multi-replica coordination"),
	}
}

// Indexes of the ProcessExecution.
func (ProcessExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("process_name", "status"),
		index.Fields("owner_user"),
		index.Fields("status", "updated_at"),
		index.Fields("started_at"),
	}
}
