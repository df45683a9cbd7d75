package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/trinity-ai/trinity/pkg/models"
)

// ProcessDefinition holds the schema definition for the ProcessDefinition entity.
type ProcessDefinition struct {
	ent.Schema
}

// Fields of the ProcessDefinition.
func (ProcessDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("definition_id").
			Unique().
			Immutable(),
		field.String("name").
			Comment("Process name; unique together with version"),
		field.String("version"),
		field.Enum("status").
			Values("draft", "published", "archived").
			Default("draft"),
		field.JSON("steps", []models.StepDefinition{}).
			Comment("Full step DAG; immutable once published"),
		field.JSON("triggers", []models.Trigger{}).
			Optional(),
		field.JSON("output", &models.OutputConfig{}).
			Optional(),
		field.String("created_by"),
		field.String("owner_team").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("published_at").
			Optional().
			Nillable(),
		field.Int("max_concurrent").
			Default(0).
			Comment("Per-process running instance cap; 0 uses the engine default"),
		field.Float("max_cost").
			Default(0).
			Comment("Cumulative execution cost cap; 0 is unlimited"),
		field.String("priority").
			Optional().
			Comment("Agent queue priority: high, normal, low"),
		field.String("data_classification").
			Optional(),
	}
}

// Indexes of the ProcessDefinition.
func (ProcessDefinition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "version").
			Unique(),
		index.Fields("name", "status"),
		index.Fields("status"),
	}
}
