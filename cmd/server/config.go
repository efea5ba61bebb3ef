package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/timension/internal/config"
)

// loadAppConfig loads the application configuration from environment
// variables and the optional config file. The server needs a database and
// a token secret on top of what config.Validate checks.
func loadAppConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("failed to load configuration: database.url is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("failed to load configuration: auth.jwt_secret is required")
	}

	// Log basic configuration details after successful loading
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"content_mode", contentMode(cfg))
	slog.Debug("Auth configuration",
		"jwt_secret_present", true,
		"offline_demo", cfg.Auth.OfflineDemo)

	return cfg, nil
}

func contentMode(cfg *config.Config) string {
	if cfg.LLM.HasCredential() {
		return "live"
	}
	return "fallback"
}
