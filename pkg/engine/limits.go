package engine

import (
	"context"

	"github.com/trinity-ai/trinity/pkg/config"
	"github.com/trinity-ai/trinity/pkg/models"
)

// LimitService enforces concurrency caps on new executions: a global cap
// across all processes and a per-process instance cap. Checks read the store
// counts, so they are best-effort under races; the caps are operational
// guardrails, not hard isolation.
type LimitService struct {
	store ExecutionStore
	cfg   *config.EngineConfig
}

// NewLimitService creates a limit checker over the execution store.
func NewLimitService(store ExecutionStore, cfg *config.EngineConfig) *LimitService {
	return &LimitService{store: store, cfg: cfg}
}

// CheckStart returns a limit_exceeded error when starting another execution
// of def would breach the global or per-process cap.
func (l *LimitService) CheckStart(ctx context.Context, def *models.ProcessDefinition) error {
	global, err := l.store.CountRunning(ctx)
	if err != nil {
		return models.WrapError(models.KindInternalError, err, "count running executions")
	}
	if global >= l.cfg.MaxConcurrentExecutions {
		return models.NewError(models.KindLimitExceeded,
			"global execution limit reached (%d running)", global).
			WithDetails(map[string]any{"scope": "global", "limit": l.cfg.MaxConcurrentExecutions})
	}

	max := def.MaxConcurrent
	if max <= 0 {
		max = l.cfg.DefaultMaxInstances
	}
	running, err := l.store.CountRunningForProcess(ctx, def.Name)
	if err != nil {
		return models.WrapError(models.KindInternalError, err, "count running executions for %s", def.Name)
	}
	if running >= max {
		return models.NewError(models.KindLimitExceeded,
			"process %q instance limit reached (%d running)", def.Name, running).
			WithDetails(map[string]any{"scope": "per_process", "limit": max})
	}
	return nil
}
