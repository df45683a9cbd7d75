// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/trinity-ai/trinity/pkg/config"
	"github.com/trinity-ai/trinity/pkg/services"
)

// Service periodically enforces retention policies:
//   - Purges terminal executions past the retention window, together with
//     their stored events and step outputs
//   - Deletes audit entries older than their own retention window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config           *config.RetentionConfig
	executionService *services.ExecutionService
	eventService     *services.EventService
	outputService    *services.OutputService
	auditService     *services.AuditService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	executionService *services.ExecutionService,
	eventService *services.EventService,
	outputService *services.OutputService,
	auditService *services.AuditService,
) *Service {
	return &Service{
		config:           cfg,
		executionService: executionService,
		eventService:     eventService,
		outputService:    outputService,
		auditService:     auditService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"execution_retention_days", s.config.ExecutionRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeExpiredExecutions(ctx)
	s.cleanupExpiredAudit(ctx)
}

func (s *Service) purgeExpiredExecutions(_ context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.ExecutionRetentionDays)

	ids, err := s.executionService.PurgeTerminalExecutions(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: execution purge failed", "error", err)
		return
	}
	if len(ids) == 0 {
		return
	}

	events, err := s.eventService.CleanupEventsForExecutions(context.Background(), ids)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
	}
	outputs, err := s.outputService.CleanupOutputsForExecutions(context.Background(), ids)
	if err != nil {
		slog.Error("Retention: output cleanup failed", "error", err)
	}

	slog.Info("Retention: purged expired executions",
		"executions", len(ids), "events", events, "outputs", outputs)
}

func (s *Service) cleanupExpiredAudit(_ context.Context) {
	count, err := s.auditService.CleanupExpiredAudit(context.Background())
	if err != nil {
		slog.Error("Retention: audit cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up expired audit entries", "count", count)
	}
}
