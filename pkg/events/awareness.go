package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/trinity-ai/trinity/pkg/models"
)

// AwarenessNotifier forwards event payloads to agent runtimes. Implemented
// by gateway.AgentGateway.
type AwarenessNotifier interface {
	NotifyAwareness(ctx context.Context, agentName string, payload map[string]any) error
}

// DefinitionSource loads process definitions for informed-agent lookup.
// Implemented by services.DefinitionService.
type DefinitionSource interface {
	GetDefinition(ctx context.Context, id string) (*models.ProcessDefinition, error)
}

// AwarenessSink forwards step events to the agents listed as informed on the
// step definition. Notifications are best effort and run off the dispatch
// goroutine; failures are logged and dropped.
type AwarenessSink struct {
	notifier    AwarenessNotifier
	definitions DefinitionSource
	logger      *slog.Logger

	mu    sync.Mutex
	steps map[string]map[string][]string // process_id -> step_id -> informed agents
}

// NewAwarenessSink creates the sink. Definitions are immutable once
// published, so the informed-agent lookup is cached per process.
func NewAwarenessSink(notifier AwarenessNotifier, definitions DefinitionSource, logger *slog.Logger) *AwarenessSink {
	return &AwarenessSink{
		notifier:    notifier,
		definitions: definitions,
		logger:      logger.With("component", "awareness_sink"),
		steps:       make(map[string]map[string][]string),
	}
}

// Handle implements Sink.
func (s *AwarenessSink) Handle(evt models.Event) {
	if evt.StepID == "" || evt.ProcessID == "" {
		return
	}
	agents := s.informedAgents(evt.ProcessID, evt.StepID)
	if len(agents) == 0 {
		return
	}

	payload := map[string]any{
		"type":         evt.Type,
		"execution_id": evt.ExecutionID,
		"step_id":      evt.StepID,
		"seq":          evt.Seq,
	}
	if evt.Payload != nil {
		payload["payload"] = evt.Payload
	}

	go func() {
		for _, agent := range agents {
			if err := s.notifier.NotifyAwareness(context.Background(), agent, payload); err != nil {
				s.logger.Warn("Awareness notification failed",
					"agent", agent, "type", evt.Type, "execution_id", evt.ExecutionID, "error", err)
			}
		}
	}()
}

func (s *AwarenessSink) informedAgents(processID, stepID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	byStep, ok := s.steps[processID]
	if !ok {
		byStep = s.loadLocked(processID)
	}
	return byStep[stepID]
}

// loadLocked populates the cache for one process. A failed load caches an
// empty map; retrying on every event would hammer the store for the same
// missing definition.
func (s *AwarenessSink) loadLocked(processID string) map[string][]string {
	byStep := make(map[string][]string)
	def, err := s.definitions.GetDefinition(context.Background(), processID)
	if err != nil {
		s.logger.Warn("Failed to load definition for awareness lookup",
			"process_id", processID, "error", err)
	} else {
		for _, step := range def.Steps {
			if len(step.InformedAgents) > 0 {
				byStep[step.ID] = step.InformedAgents
			}
		}
	}
	s.steps[processID] = byStep
	return byStep
}
