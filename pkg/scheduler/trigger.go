package scheduler

import (
	"context"
	"log/slog"

	"github.com/trinity-ai/trinity/pkg/models"
)

// ProcessStarter is the slice of the engine the trigger adapter needs.
type ProcessStarter interface {
	Start(ctx context.Context, def *models.ProcessDefinition, input map[string]any, trig models.TriggeredBy) (string, error)
}

// DefinitionSource resolves the currently published version of a process.
type DefinitionSource interface {
	GetPublishedDefinitionByName(ctx context.Context, name string) (*models.ProcessDefinition, error)
}

// EngineTrigger starts executions for fired schedules. The published version
// is resolved at fire time, so republishing a process takes effect on the
// next tick without touching its schedules.
type EngineTrigger struct {
	starter     ProcessStarter
	definitions DefinitionSource
	logger      *slog.Logger
}

// NewEngineTrigger creates the adapter.
func NewEngineTrigger(starter ProcessStarter, definitions DefinitionSource, logger *slog.Logger) *EngineTrigger {
	return &EngineTrigger{
		starter:     starter,
		definitions: definitions,
		logger:      logger.With("component", "schedule_trigger"),
	}
}

// TriggerScheduled implements Trigger.
func (t *EngineTrigger) TriggerScheduled(ctx context.Context, sched *models.Schedule) error {
	def, err := t.definitions.GetPublishedDefinitionByName(ctx, sched.ProcessName)
	if err != nil {
		return err
	}

	executionID, err := t.starter.Start(ctx, def, sched.Input, models.TriggeredBy{
		Kind:       models.TriggerSchedule,
		Actor:      sched.OwnerUser,
		ScheduleID: sched.ID,
	})
	if err != nil {
		return err
	}
	t.logger.Info("Scheduled execution started",
		"schedule_id", sched.ID, "process", sched.ProcessName, "execution_id", executionID)
	return nil
}
