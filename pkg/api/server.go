// Package api provides the HTTP and WebSocket surface of the Trinity
// orchestrator: process definition management, execution triggering and
// control, approval decisions, schedules, the audit log and live event
// streaming.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/trinity-ai/trinity/pkg/audit"
	"github.com/trinity-ai/trinity/pkg/auth"
	"github.com/trinity-ai/trinity/pkg/config"
	"github.com/trinity-ai/trinity/pkg/database"
	"github.com/trinity-ai/trinity/pkg/events"
	"github.com/trinity-ai/trinity/pkg/models"
	"github.com/trinity-ai/trinity/pkg/recovery"
	"github.com/trinity-ai/trinity/pkg/services"
)

// orchestrator is the slice of the engine facade the handlers need.
type orchestrator interface {
	Start(ctx context.Context, def *models.ProcessDefinition, input map[string]any, trig models.TriggeredBy) (string, error)
	Cancel(ctx context.Context, executionID, actor, reason string) error
	SubmitApproval(ctx context.Context, approvalID string, status models.ApprovalStatus, actor, comment string) error
	ActiveCount() int
}

// definitionStore is implemented by services.DefinitionService.
type definitionStore interface {
	CreateDefinition(ctx context.Context, def *models.ProcessDefinition) error
	SaveDefinition(ctx context.Context, def *models.ProcessDefinition) error
	GetDefinition(ctx context.Context, id string) (*models.ProcessDefinition, error)
	GetPublishedDefinitionByName(ctx context.Context, name string) (*models.ProcessDefinition, error)
	ListDefinitions(ctx context.Context, name string, status models.DefinitionStatus, limit, offset int) ([]*models.ProcessDefinition, error)
	ArchivePublished(ctx context.Context, name string) error
	DeleteDefinition(ctx context.Context, id string) error
}

// executionStore is implemented by services.ExecutionService.
type executionStore interface {
	GetExecution(ctx context.Context, id string) (*models.ProcessExecution, error)
	ListExecutions(ctx context.Context, filter services.ExecutionFilter) ([]*models.ProcessExecution, error)
}

// approvalStore is implemented by services.ApprovalService.
type approvalStore interface {
	GetApproval(ctx context.Context, id string) (*models.Approval, error)
	ListApprovalsForExecution(ctx context.Context, executionID string) ([]*models.Approval, error)
	ListPendingForApprover(ctx context.Context, user string) ([]*models.Approval, error)
}

// scheduleStore is implemented by services.ScheduleService.
type scheduleStore interface {
	CreateSchedule(ctx context.Context, sched *models.Schedule) error
	GetSchedule(ctx context.Context, id string) (*models.Schedule, error)
	ListSchedules(ctx context.Context, processName string) ([]*models.Schedule, error)
	UpdateSchedule(ctx context.Context, sched *models.Schedule) error
	DeleteSchedule(ctx context.Context, id string) error
}

// auditStore is implemented by services.AuditService.
type auditStore interface {
	GetAuditEntry(ctx context.Context, id string) (*models.AuditEntry, error)
	ListAuditEntries(ctx context.Context, filter models.AuditFilter, limit, offset int) ([]*models.AuditEntry, error)
}

// scheduleTrigger fires a schedule immediately, outside its cron cadence.
// Implemented by the scheduler's engine adapter.
type scheduleTrigger interface {
	TriggerScheduled(ctx context.Context, sched *models.Schedule) error
}

// recoveryReporter exposes the startup recovery outcome. Implemented by
// recovery.Service.
type recoveryReporter interface {
	LastReport() *recovery.Report
}

// Deps bundles the collaborators the server routes requests to.
type Deps struct {
	DB          *database.Client
	Definitions definitionStore
	Executions  executionStore
	Approvals   approvalStore
	Schedules   scheduleStore
	Audits      auditStore
	Engine      orchestrator
	Trigger     scheduleTrigger
	Recovery    recoveryReporter
	Authz       *auth.Service
	Recorder    *audit.Recorder
	ConnManager *events.ConnectionManager
	Logger      *slog.Logger
}

// Server hosts the REST API and the WebSocket event stream.
type Server struct {
	cfg  *config.Config
	echo *echo.Echo
	http *http.Server

	db          *database.Client
	definitions definitionStore
	executions  executionStore
	approvals   approvalStore
	schedules   scheduleStore
	audits      auditStore
	engine      orchestrator
	trigger     scheduleTrigger
	recovery    recoveryReporter
	authz       *auth.Service
	recorder    *audit.Recorder
	connManager *events.ConnectionManager
	logger      *slog.Logger

	recoveryDone atomic.Bool
}

// NewServer wires the routes. Call MarkRecoveryDone once startup recovery has
// finished; until then write operations are rejected with 503.
func NewServer(cfg *config.Config, deps Deps) *Server {
	s := &Server{
		cfg:         cfg,
		echo:        echo.New(),
		db:          deps.DB,
		definitions: deps.Definitions,
		executions:  deps.Executions,
		approvals:   deps.Approvals,
		schedules:   deps.Schedules,
		audits:      deps.Audits,
		engine:      deps.Engine,
		trigger:     deps.Trigger,
		recovery:    deps.Recovery,
		authz:       deps.Authz,
		recorder:    deps.Recorder,
		connManager: deps.ConnManager,
		logger:      deps.Logger.With("component", "api"),
	}
	s.registerRoutes()
	return s
}

// MarkRecoveryDone opens the API for write operations.
func (s *Server) MarkRecoveryDone() {
	s.recoveryDone.Store(true)
}

func (s *Server) registerRoutes() {
	s.echo.Use(securityHeaders())
	s.echo.Use(s.requestLogger())

	s.echo.GET("/health", s.healthHandler)
	s.echo.GET("/ws/events", s.websocketHandler, requireIdentity())

	v1 := s.echo.Group("/api/v1")
	v1.Use(requireIdentity())
	v1.Use(s.recoveryGate())

	v1.POST("/processes", s.createProcessHandler)
	v1.GET("/processes", s.listProcessesHandler)
	v1.GET("/processes/:id", s.getProcessHandler)
	v1.PUT("/processes/:id", s.updateProcessHandler)
	v1.DELETE("/processes/:id", s.deleteProcessHandler)
	v1.POST("/processes/:id/publish", s.publishProcessHandler)

	v1.POST("/executions", s.triggerExecutionHandler)
	v1.GET("/executions", s.listExecutionsHandler)
	v1.GET("/executions/recovery/status", s.recoveryStatusHandler)
	v1.GET("/executions/:id", s.getExecutionHandler)
	v1.POST("/executions/:id/cancel", s.cancelExecutionHandler)
	v1.GET("/executions/:id/approvals", s.listExecutionApprovalsHandler)

	v1.GET("/approvals", s.listPendingApprovalsHandler)
	v1.POST("/approvals/:approval_id/decide", s.decideApprovalHandler)

	v1.POST("/schedules", s.createScheduleHandler)
	v1.GET("/schedules", s.listSchedulesHandler)
	v1.GET("/schedules/:id", s.getScheduleHandler)
	v1.DELETE("/schedules/:id", s.deleteScheduleHandler)
	v1.POST("/schedules/:id/enable", s.enableScheduleHandler)
	v1.POST("/schedules/:id/disable", s.disableScheduleHandler)
	v1.POST("/schedules/:id/trigger", s.triggerScheduleHandler)

	v1.GET("/audit", s.listAuditHandler)
	v1.GET("/audit/:id", s.getAuditHandler)
}

// Start serves HTTP on the configured listen address and blocks until the
// listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              s.cfg.System.ListenAddr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("API server listening", "addr", s.cfg.System.ListenAddr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
