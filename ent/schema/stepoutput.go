package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepOutput holds the schema definition for the StepOutput entity: the
// step output store keyed by (execution_id, step_id).
type StepOutput struct {
	ent.Schema
}

// Fields of the StepOutput.
func (StepOutput) Fields() []ent.Field {
	return []ent.Field{
		field.String("execution_id"),
		field.String("step_id"),
		field.JSON("output", map[string]any{}),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the StepOutput.
func (StepOutput) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "step_id").
			Unique(),
	}
}
