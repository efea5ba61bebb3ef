package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/timension/internal/catalog"
	"github.com/phrazzld/timension/internal/config"
	"github.com/phrazzld/timension/internal/content"
	"github.com/phrazzld/timension/internal/events"
	"github.com/phrazzld/timension/internal/generation"
	"github.com/phrazzld/timension/internal/platform/gemini"
	"github.com/phrazzld/timension/internal/platform/postgres"
	"github.com/phrazzld/timension/internal/service"
	"github.com/phrazzld/timension/internal/service/auth"
	"github.com/phrazzld/timension/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore    store.UserStore
	profileStore store.ProfileStore

	// Services
	content        *content.Service
	catalog        *catalog.Catalog
	authService    *auth.Service
	profileService service.ProfileService

	// Event system
	eventEmitter *events.InMemoryEventEmitter
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration, logger, and database connection that
// must be established before application initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.catalog, err = catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	model, err := newModel(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, err
	}
	app.content = content.New(model, logger)

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.profileStore = postgres.NewPostgresProfileStore(db, logger)

	// Initialize event emitter
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewLoggingHandler(logger))

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"refresh_token_lifetime_minutes", cfg.Auth.RefreshTokenLifetimeMinutes)

	app.authService, err = auth.NewService(cfg.Auth, auth.Dependencies{
		DB:       db,
		Users:    app.userStore,
		Profiles: app.profileStore,
		Tokens:   jwtService,
		Hasher:   auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		Verifier: auth.NewBcryptVerifier(),
		Events:   app.eventEmitter,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	if cfg.Auth.OfflineDemo {
		logger.Warn("Offline demo sign-in is enabled: an unreachable user store yields demo sessions")
	}

	app.profileService = service.NewProfileService(app.profileStore, logger)

	logger.Info("Application initialized successfully", "content_mode", contentMode(cfg))
	return app, nil
}

// newModel builds the Gemini model, or returns nil when no credential is
// configured so the content service serves fallbacks.
func newModel(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Model, error) {
	if !cfg.HasCredential() {
		logger.Warn("No Gemini API key configured, serving fallback content")
		return nil, nil
	}

	model, err := gemini.NewModel(ctx, logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini model: %w", err)
	}
	logger.Info("Gemini model initialized", "model", cfg.ModelName)
	return model, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// shutdownTimeout is how long in-flight requests get to finish.
func (app *application) shutdownTimeout() time.Duration {
	if app.config.Server.ShutdownTimeoutSeconds > 0 {
		return time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
	}
	return 10 * time.Second
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		closeDB(app.db, app.logger)
	}
	app.logger.Info("Application shutdown completed")
}
