package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/taskify/internal/taskify/http"
	"github.com/aussiebroadwan/taskify/internal/taskify/service"
	"github.com/aussiebroadwan/taskify/internal/taskify/store"
	"github.com/aussiebroadwan/taskify/internal/taskify/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskify/pkg/cryptox"
	"github.com/aussiebroadwan/taskify/pkg/jwtx"
	"github.com/aussiebroadwan/taskify/pkg/metricsx"
	"github.com/aussiebroadwan/taskify/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application holds the Taskify server and everything it depends on.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db         store.Store
	keyManager *jwtx.KeyManager
	registry   *prometheus.Registry
	metrics    *metricsx.Metrics

	// Services
	accountService      *service.AccountService
	workspaceService    *service.WorkspaceService
	membershipService   *service.MembershipService
	projectService      *service.ProjectService
	sprintService       *service.SprintService
	issueService        *service.IssueService
	commentService      *service.CommentService
	dashboardService    *service.DashboardService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "taskify",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keyManager, err := InitKeys(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.keyManager = keyManager

	app.registry = prometheus.NewRegistry()
	app.metrics = metricsx.NewMetrics(app.registry)

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("taskify starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down taskify...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("taskify stopped")
	return nil
}

// Handler exposes the router, mainly for tests that drive the app without a
// listener.
func (app *Application) Handler() http.Handler { return app.router }

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	authz := &service.Authorizer{Store: app.db, Metrics: app.metrics}

	app.accountService = &service.AccountService{
		Store:      app.db,
		KeyManager: app.keyManager,
		Issuer:     app.cfg.Issuer,
		AccessTTL:  app.cfg.AccessTokenTTL,
		ResetTTL:   app.cfg.ResetTokenTTL,
		PublicURL:  app.cfg.PublicURL,
	}
	app.workspaceService = &service.WorkspaceService{Store: app.db, Authz: authz}
	app.membershipService = &service.MembershipService{
		Store:      app.db,
		Authz:      authz,
		Metrics:    app.metrics,
		AutoAccept: app.cfg.InviteAutoAccept,
	}
	app.projectService = &service.ProjectService{Store: app.db, Authz: authz}
	app.sprintService = &service.SprintService{Store: app.db, Authz: authz}
	app.issueService = &service.IssueService{Store: app.db, Authz: authz, Metrics: app.metrics}
	app.commentService = &service.CommentService{Store: app.db, Authz: authz}
	app.dashboardService = &service.DashboardService{Store: app.db}

	if app.cfg.InviteAutoAccept {
		app.logger.Warn("invites are accepted on creation (TASKIFY_INVITE_AUTO_ACCEPT)")
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier,
		BuildVersion,
		app.db,
		app.logger,
		app.registry,
		app.metrics,
	)

	router.AccountService = app.accountService
	router.WorkspaceService = app.workspaceService
	router.MembershipService = app.membershipService
	router.ProjectService = app.projectService
	router.SprintService = app.sprintService
	router.IssueService = app.issueService
	router.CommentService = app.commentService
	router.DashboardService = app.dashboardService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
