package events

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
)

type fakeNotifier struct {
	mu    sync.Mutex
	calls []fakeAwarenessCall
}

type fakeAwarenessCall struct {
	agent   string
	payload map[string]any
}

func (f *fakeNotifier) NotifyAwareness(_ context.Context, agentName string, payload map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fakeAwarenessCall{agent: agentName, payload: payload})
	return nil
}

func (f *fakeNotifier) snapshot() []fakeAwarenessCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fakeAwarenessCall(nil), f.calls...)
}

type fakeDefinitions struct {
	mu    sync.Mutex
	def   *models.ProcessDefinition
	loads int
}

func (f *fakeDefinitions) GetDefinition(_ context.Context, id string) (*models.ProcessDefinition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.def == nil || f.def.ID != id {
		return nil, models.NewError(models.KindNotFound, "process definition %s not found", id)
	}
	return f.def, nil
}

func awarenessTestDef() *models.ProcessDefinition {
	return &models.ProcessDefinition{
		ID:      "def-1",
		Name:    "incident-triage",
		Version: "1.0.0",
		Steps: []models.StepDefinition{
			{
				ID:             "triage",
				Kind:           models.StepAgentTask,
				InformedAgents: []string{"oncall-agent", "reporting-agent"},
				AgentTask:      &models.AgentTaskConfig{AgentName: "triage-agent", MessageTemplate: "go"},
			},
			{
				ID:        "summarize",
				Kind:      models.StepAgentTask,
				AgentTask: &models.AgentTaskConfig{AgentName: "summary-agent", MessageTemplate: "go"},
			},
		},
	}
}

func TestAwarenessSink_NotifiesInformedAgents(t *testing.T) {
	notifier := &fakeNotifier{}
	defs := &fakeDefinitions{def: awarenessTestDef()}
	sink := NewAwarenessSink(notifier, defs, slog.Default())

	sink.Handle(models.Event{
		Type:        models.EventStepCompleted,
		ExecutionID: "exec-1",
		ProcessID:   "def-1",
		StepID:      "triage",
		Seq:         3,
		Payload:     map[string]any{"cost": 0.2},
	})

	require.Eventually(t, func() bool {
		return len(notifier.snapshot()) == 2
	}, time.Second, 10*time.Millisecond)

	calls := notifier.snapshot()
	assert.Equal(t, "oncall-agent", calls[0].agent)
	assert.Equal(t, "reporting-agent", calls[1].agent)
	assert.Equal(t, models.EventStepCompleted, calls[0].payload["type"])
	assert.Equal(t, "exec-1", calls[0].payload["execution_id"])
	assert.Equal(t, "triage", calls[0].payload["step_id"])
	assert.Equal(t, map[string]any{"cost": 0.2}, calls[0].payload["payload"])
}

func TestAwarenessSink_SkipsStepsWithoutInformedAgents(t *testing.T) {
	notifier := &fakeNotifier{}
	defs := &fakeDefinitions{def: awarenessTestDef()}
	sink := NewAwarenessSink(notifier, defs, slog.Default())

	sink.Handle(models.Event{
		Type:        models.EventStepCompleted,
		ExecutionID: "exec-1",
		ProcessID:   "def-1",
		StepID:      "summarize",
		Seq:         5,
	})
	// Process-level events carry no step and are never forwarded.
	sink.Handle(models.Event{
		Type:        models.EventProcessCompleted,
		ExecutionID: "exec-1",
		ProcessID:   "def-1",
		Seq:         6,
	})

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, notifier.snapshot())
}

func TestAwarenessSink_CachesDefinitionLookup(t *testing.T) {
	notifier := &fakeNotifier{}
	defs := &fakeDefinitions{def: awarenessTestDef()}
	sink := NewAwarenessSink(notifier, defs, slog.Default())

	for i := 0; i < 5; i++ {
		sink.Handle(models.Event{
			Type:        models.EventStepStarted,
			ExecutionID: "exec-1",
			ProcessID:   "def-1",
			StepID:      "triage",
			Seq:         int64(i + 1),
		})
	}

	require.Eventually(t, func() bool {
		return len(notifier.snapshot()) == 10
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, defs.loads)
}

func TestAwarenessSink_MissingDefinitionCachedAsEmpty(t *testing.T) {
	notifier := &fakeNotifier{}
	defs := &fakeDefinitions{}
	sink := NewAwarenessSink(notifier, defs, slog.Default())

	for i := 0; i < 3; i++ {
		sink.Handle(models.Event{
			Type:        models.EventStepStarted,
			ExecutionID: "exec-1",
			ProcessID:   "def-missing",
			StepID:      "triage",
			Seq:         int64(i + 1),
		})
	}

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, notifier.snapshot())
	assert.Equal(t, 1, defs.loads)
}
