package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/phrazzld/timension/internal/catalog"
	"github.com/phrazzld/timension/internal/config"
	"github.com/phrazzld/timension/internal/content"
	"github.com/phrazzld/timension/internal/platform/gemini"
	"github.com/phrazzld/timension/internal/platform/logger"
	"github.com/spf13/cobra"
)

// contentFactory builds the content service from the loaded configuration.
type contentFactory func(ctx context.Context, cfg *config.Config, log *slog.Logger) (*content.Service, error)

// defaultContentFactory uses Gemini when a credential is configured and
// fallbacks otherwise.
func defaultContentFactory(ctx context.Context, cfg *config.Config, log *slog.Logger) (*content.Service, error) {
	if !cfg.LLM.HasCredential() {
		log.Warn("no Gemini API key configured, printing fallback content")
		return content.New(nil, log), nil
	}

	model, err := gemini.NewModel(ctx, log, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini model: %w", err)
	}
	return content.New(model, log), nil
}

type cli struct {
	configPath string
	logLevel   string

	newContent contentFactory
	content    *content.Service
	catalog    *catalog.Catalog
}

func newRootCmd(factory contentFactory) *cobra.Command {
	c := &cli{newContent: factory}

	root := &cobra.Command{
		Use:          "timension",
		Short:        "Print generated newspaper content",
		Long:         "timension calls the Timension content service and prints each result as indented JSON.\nWithout a Gemini API key every command prints its fallback content.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to config file")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	root.AddCommand(
		c.headlineCmd(),
		c.chatCmd(),
		c.exploreCmd(),
		c.timelineCmd(),
		c.missionCmd(),
		c.rippleCmd(),
		c.chaosCmd(),
		c.mentorsCmd(),
		c.portalsCmd(),
		c.chronicleCmd(),
	)
	return root
}

// setup loads configuration, logs to stderr and builds the services.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadFile(c.configPath)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.Server.LogLevel = c.logLevel
	}

	log, err := logger.Setup(logger.LoggerConfig{
		Level:  cfg.Server.LogLevel,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	c.catalog, err = catalog.Default()
	if err != nil {
		return err
	}

	c.content, err = c.newContent(cmd.Context(), cfg, log)
	return err
}

// printJSON writes v to the command's output as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
