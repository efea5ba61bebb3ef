package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/phrazzld/timension/internal/config"
	"github.com/phrazzld/timension/internal/platform/postgres"
	"github.com/phrazzld/timension/internal/redact"
)

const dbPingTimeout = 5 * time.Second

// setupAppDatabase opens the database pool and checks that the database
// answers. When it does not, the pool is still returned with reachable set
// to false if auth.offline_demo is enabled; otherwise it is an error.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (db *sql.DB, reachable bool, err error) {
	db, err = sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open database connection: %s", redact.Error(err))
	}

	configurePool(db, cfg.Database)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		if cfg.Auth.OfflineDemo {
			logger.Warn("Database unreachable, starting with offline demo sessions only",
				"error", redact.Error(err))
			return db, false, nil
		}
		closeDB(db, logger)
		return nil, false, fmt.Errorf("failed to ping database: %s", redact.Error(err))
	}

	logger.Info("Database connection established",
		"max_open_conns", cfg.Database.MaxOpenConns)
	return db, true, nil
}

func configurePool(db *sql.DB, cfg config.DatabaseConfig) {
	maxOpen := cfg.MaxOpenConns
	if maxOpen < 1 {
		maxOpen = 10
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(max(1, maxOpen/2))
	db.SetConnMaxLifetime(5 * time.Minute)
}

// runMigrations applies a goose command against the embedded migrations.
func runMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger, command string, args ...string) error {
	start := time.Now()
	if err := postgres.Migrate(ctx, db, logger, command, args...); err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}
	logger.Info("Migration command completed",
		"command", command,
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}

func closeDB(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("Error closing database connection", "error", redact.Error(err))
	}
}
