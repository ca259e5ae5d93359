// Package config provides configuration management for the logviews CLI.
package config

import (
	"github.com/leapstack-labs/logviews/internal/lookup"
	"github.com/leapstack-labs/logviews/pkg/core"
)

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat     string                      `koanf:"output"`
	Verbose          bool                        `koanf:"verbose"`
	LogLevel         string                      `koanf:"log_level"`
	StreamCategories map[string][]string         `koanf:"stream_categories"`
	Scopes           map[string]lookup.ScopeRule `koanf:"scopes"`

	// ProjectRoot is the directory the config file was found in (or CWD).
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultOutput   = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel = "warn"
	ConfigFileName  = "logviews.yaml"
	EnvPrefix       = "LOGVIEWS_"
)

// Categories returns the configured stream categories as a resolver.
func (c *Config) Categories() core.StreamCategories {
	categories := make(core.StreamCategories, len(c.StreamCategories))
	for name, streams := range c.StreamCategories {
		categories[name] = append([]string(nil), streams...)
	}
	return categories
}

// ScopeRules returns the built-in entity scopes with configured scopes applied on top.
func (c *Config) ScopeRules() lookup.Scopes {
	return lookup.DefaultScopes().Merge(lookup.Scopes(c.Scopes))
}
