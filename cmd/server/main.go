// Package main implements the Timension API server, which serves the
// generated newspaper content and the traveler accounts behind it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file (defaults to ./config.yaml when present)")
	migrateCmd := flag.String("migrate", "", "Run a migration command (up, down, redo, reset, status, version) and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, *migrateCmd, flag.Args()); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging and the database, then either
// executes a migration command or serves HTTP until ctx is done. With
// auth.offline_demo enabled the server also starts against an unreachable
// database; migrations are then skipped.
func run(ctx context.Context, configPath, migrateCmd string, migrateArgs []string) error {
	cfg, err := loadAppConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, reachable, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer closeDB(db, logger)
		if !reachable {
			return errors.New("cannot run migrations: database unreachable")
		}
		return runMigrations(ctx, db, logger, migrateCmd, migrateArgs...)
	}

	if reachable {
		if err := runMigrations(ctx, db, logger, "up"); err != nil {
			closeDB(db, logger)
			return err
		}
	}

	app, err := newApplication(ctx, cfg, logger, db)
	if err != nil {
		closeDB(db, logger)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
