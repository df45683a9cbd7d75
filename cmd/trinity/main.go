// Trinity orchestrator server — hosts the HTTP/WebSocket API, runs the
// process engine, the cron scheduler and the per-agent execution queue.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/trinity-ai/trinity/pkg/api"
	"github.com/trinity-ai/trinity/pkg/audit"
	"github.com/trinity-ai/trinity/pkg/auth"
	"github.com/trinity-ai/trinity/pkg/cleanup"
	"github.com/trinity-ai/trinity/pkg/config"
	"github.com/trinity-ai/trinity/pkg/database"
	"github.com/trinity-ai/trinity/pkg/engine"
	"github.com/trinity-ai/trinity/pkg/events"
	"github.com/trinity-ai/trinity/pkg/gateway"
	"github.com/trinity-ai/trinity/pkg/masking"
	"github.com/trinity-ai/trinity/pkg/notify"
	"github.com/trinity-ai/trinity/pkg/queue"
	"github.com/trinity-ai/trinity/pkg/recovery"
	"github.com/trinity-ai/trinity/pkg/scheduler"
	"github.com/trinity-ai/trinity/pkg/services"
	"github.com/trinity-ai/trinity/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting Trinity",
		"version", version.Full(),
		"config_dir", *configDir)

	ctx := context.Background()
	logger := slog.Default()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	definitionService := services.NewDefinitionService(dbClient.Client)
	executionService := services.NewExecutionService(dbClient.Client)
	approvalService := services.NewApprovalService(dbClient.Client)
	scheduleService := services.NewScheduleService(dbClient.Client)
	auditService := services.NewAuditService(dbClient.Client, dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	outputService := services.NewOutputService(dbClient.Client)
	slog.Info("Services initialized")

	authz := auth.NewService()
	maskingService := masking.NewService(logger)
	recorder := audit.NewRecorder(auditService, logger)
	recorder.SetMasker(maskingService)

	// 4. Event bus and WebSocket streaming
	bus := events.NewBus(cfg.Engine.EventBufferSize, logger)
	connManager := events.NewConnectionManager(eventService,
		api.NewChannelAuthorizer(authz, executionService), 10*time.Second)
	bus.Subscribe(connManager.Sink())
	bus.Subscribe(recorder.Sink())

	// 5. Agent gateway, notification router, execution queue
	agentGateway := gateway.NewHTTPGateway(cfg.AgentEndpoints(), nil, logger)
	bus.Subscribe(events.NewAwarenessSink(agentGateway, definitionService, logger))

	sinks := make(map[string]notify.Sink)
	if cfg.Notifications.Slack.Enabled {
		sinks["slack"] = notify.NewSlackSink(os.Getenv(cfg.Notifications.Slack.TokenEnv), logger)
	}
	if len(cfg.Notifications.WebhookEndpoints) > 0 {
		sinks["webhook"] = notify.NewWebhookSink(cfg.Notifications.WebhookEndpoints, nil, logger)
	}
	notifier := notify.NewRouter(sinks, logger)
	notifier.SetMasker(maskingService)

	execQueue := queue.NewAgentExecutionQueue(cfg.Queue, logger)
	if err := execQueue.Start(ctx); err != nil {
		slog.Error("Failed to start agent queue", "error", err)
		os.Exit(1)
	}

	// 6. Engine
	eng := engine.New(engine.Stores{
		Executions:  executionService,
		Definitions: definitionService,
		Approvals:   approvalService,
		Outputs:     outputService,
	}, execQueue, agentGateway, notifier, bus, cfg.Engine, cfg.Queue, logger)
	bus.Subscribe(eng.ChildTerminalSink())

	// 7. Scheduler (clear fire locks left by a previous crash first)
	if released, err := scheduleService.ReleaseStaleLocks(ctx); err != nil {
		slog.Error("Failed to release stale schedule locks", "error", err)
	} else if released > 0 {
		slog.Info("Released stale schedule locks", "count", released)
	}
	trigger := scheduler.NewEngineTrigger(eng, definitionService, logger)
	sched := scheduler.New(scheduleService, trigger, logger)
	sched.Start(ctx)

	// 8. Retention cleanup
	cleanupService := cleanup.NewService(cfg.Retention, executionService, eventService, outputService, auditService)
	cleanupService.Start(ctx)

	// 9. HTTP server
	recoveryService := recovery.New(executionService, definitionService, eng, bus, cfg.Recovery.MaxAge, logger)
	server := api.NewServer(cfg, api.Deps{
		DB:          dbClient,
		Definitions: definitionService,
		Executions:  executionService,
		Approvals:   approvalService,
		Schedules:   scheduleService,
		Audits:      auditService,
		Engine:      eng,
		Trigger:     trigger,
		Recovery:    recoveryService,
		Authz:       authz,
		Recorder:    recorder,
		ConnManager: connManager,
		Logger:      logger,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 10. Startup recovery: resume interrupted executions. Write operations
	// stay gated behind 503 until the scan finishes.
	go func() {
		report, err := recoveryService.Run(ctx, cfg.Recovery.DryRun)
		if err != nil {
			slog.Error("Startup recovery failed", "error", err)
		} else {
			slog.Info("Startup recovery complete",
				"scanned", report.Scanned, "resumed", report.Resumed,
				"retried", report.Retried, "failed", report.Failed, "skipped", report.Skipped)
		}
		server.MarkRecoveryDone()
	}()

	slog.Info("Trinity started successfully",
		"listen_addr", cfg.System.ListenAddr,
		"agents", cfg.AgentRegistry.Len())

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: stop intake first, then drain the queue.
	sched.Stop()

	queueShutdownCtx, queueCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer queueCancel()

	done := make(chan struct{})
	go func() {
		execQueue.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Agent queue stopped gracefully")
	case <-queueShutdownCtx.Done():
		slog.Warn("Queue shutdown timeout exceeded — interrupted executions will be recovered on restart")
	}

	cleanupService.Stop()
	bus.Close()

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
