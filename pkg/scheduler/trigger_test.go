package scheduler

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
)

type fakeStarter struct {
	trig models.TriggeredBy
	def  *models.ProcessDefinition
	err  error
}

func (f *fakeStarter) Start(_ context.Context, def *models.ProcessDefinition, _ map[string]any, trig models.TriggeredBy) (string, error) {
	f.def = def
	f.trig = trig
	if f.err != nil {
		return "", f.err
	}
	return "exec-1", nil
}

type fakeDefinitions struct {
	def *models.ProcessDefinition
}

func (f *fakeDefinitions) GetPublishedDefinitionByName(_ context.Context, name string) (*models.ProcessDefinition, error) {
	if f.def == nil || f.def.Name != name {
		return nil, models.NewError(models.KindNotFound, "no published definition named %q", name)
	}
	return f.def, nil
}

func TestEngineTrigger_StartsPublishedDefinition(t *testing.T) {
	def := &models.ProcessDefinition{ID: "def-1", Name: "nightly-report", Status: models.DefinitionPublished}
	starter := &fakeStarter{}
	trigger := NewEngineTrigger(starter, &fakeDefinitions{def: def}, slog.Default())

	sched := &models.Schedule{
		ID:          "sched-1",
		ProcessName: "nightly-report",
		OwnerUser:   "alice",
		Input:       map[string]any{"day": "monday"},
	}
	require.NoError(t, trigger.TriggerScheduled(context.Background(), sched))

	assert.Equal(t, "def-1", starter.def.ID)
	assert.Equal(t, models.TriggerSchedule, starter.trig.Kind)
	assert.Equal(t, "alice", starter.trig.Actor)
	assert.Equal(t, "sched-1", starter.trig.ScheduleID)
}

func TestEngineTrigger_MissingDefinition(t *testing.T) {
	starter := &fakeStarter{}
	trigger := NewEngineTrigger(starter, &fakeDefinitions{}, slog.Default())

	err := trigger.TriggerScheduled(context.Background(), &models.Schedule{ID: "sched-1", ProcessName: "gone"})
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindNotFound))
	assert.Nil(t, starter.def)
}

func TestEngineTrigger_PropagatesStartError(t *testing.T) {
	def := &models.ProcessDefinition{ID: "def-1", Name: "nightly-report", Status: models.DefinitionPublished}
	starter := &fakeStarter{err: models.NewError(models.KindLimitExceeded, "too many running instances")}
	trigger := NewEngineTrigger(starter, &fakeDefinitions{def: def}, slog.Default())

	err := trigger.TriggerScheduled(context.Background(), &models.Schedule{ID: "sched-1", ProcessName: "nightly-report"})
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindLimitExceeded))
}
