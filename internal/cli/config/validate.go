package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/logviews/internal/cli/output"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(output.Modes(), c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (expected one of: %s)", c.OutputFormat, strings.Join(output.Modes(), ", "))
	}

	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log_level %q (expected one of: %s)", c.LogLevel, strings.Join(logLevels, ", "))
	}

	for name, streams := range c.StreamCategories {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("stream_categories: category name must not be empty")
		}
		for _, id := range streams {
			if id == "" {
				return fmt.Errorf("stream_categories.%s: stream id must not be empty", name)
			}
		}
	}

	return nil
}
