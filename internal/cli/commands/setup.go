package commands

import (
	"log/slog"
	"os"

	"github.com/leapstack-labs/logviews/internal/cli/config"
	"github.com/leapstack-labs/logviews/internal/cli/output"
	"github.com/leapstack-labs/logviews/internal/lookup"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg        *config.Config
	Logger     *slog.Logger
	Renderer   *output.Renderer
	CacheTypes *lookup.Registry
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:        cfg,
		Logger:     logger,
		Renderer:   r,
		CacheTypes: lookup.DefaultRegistry(),
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	return &config.Config{
		OutputFormat: getEnvOrDefault("LOGVIEWS_OUTPUT", config.DefaultOutput),
		LogLevel:     getEnvOrDefault("LOGVIEWS_LOG_LEVEL", config.DefaultLogLevel),
		Verbose:      os.Getenv("LOGVIEWS_VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
