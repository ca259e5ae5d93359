package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `output: markdown
log_level: info
stream_categories:
  "illuminate:auth": [auth-1, auth-2]
  "illuminate:dns": [dns-1]
scopes:
  partner:
    mutable: true
    deletable: false
`

func newTestFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.StringP("output", "o", "", "")
	flags.BoolP("verbose", "v", false, "")
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.StreamCategories)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0600))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Equal(t, path, GetConfigFileUsed())

	categories := cfg.Categories()
	assert.Equal(t, []string{"auth-1", "auth-2"}, categories.StreamsForCategory("illuminate:auth"))
	assert.Equal(t, []string{"dns-1"}, categories.StreamsForCategory("illuminate:dns"))

	scopes := cfg.ScopeRules()
	assert.True(t, scopes.IsMutable("PARTNER"))
	assert.False(t, scopes.IsDeletable("PARTNER"))
	assert.False(t, scopes.IsMutable("ILLUMINATE"), "built-in scopes are kept")
}

func TestLoadConfig_SearchesUpward(t *testing.T) {
	ResetConfig()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte(testConfigYAML), 0600))
	nested := filepath.Join(root, "views", "dashboards")
	require.NoError(t, os.MkdirAll(nested, 0750))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, filepath.Join(root, ConfigFileName), GetConfigFileUsed())
}

func TestLoadConfig_Precedence(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0600))

	t.Setenv("LOGVIEWS_OUTPUT", "text")
	t.Setenv("LOGVIEWS_LOG_LEVEL", "error")

	t.Run("env overrides file", func(t *testing.T) {
		cfg, err := LoadConfig(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.OutputFormat)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("flags override env", func(t *testing.T) {
		cfg, err := LoadConfig(path, newTestFlags(t, "--output", "json", "--log-level", "debug"))
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.OutputFormat)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("unset flags do not override", func(t *testing.T) {
		cfg, err := LoadConfig(path, newTestFlags(t))
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.OutputFormat)
	})
}

func TestLoadConfig_VerboseForcesDebug(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", newTestFlags(t, "-v"))
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{name: "bad output", content: "output: html\n", errSubstr: "invalid output format"},
		{name: "bad log level", content: "log_level: chatty\n", errSubstr: "invalid log_level"},
		{name: "empty stream id", content: "stream_categories:\n  web: [\"\"]\n", errSubstr: "stream id must not be empty"},
		{name: "malformed yaml", content: "output: [\n", errSubstr: "error reading config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			path := filepath.Join(t.TempDir(), ConfigFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			_, err := LoadConfig(path, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	ResetConfig()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(&Config{LogLevel: "info"}, buf)

	logger.Debug("hidden")
	logger.Info("shown", "view", "dashboard")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "view=dashboard")
}

func TestGetLogger_Fallback(t *testing.T) {
	ctx := WithLogger(t.Context(), nil)
	assert.NotNil(t, GetLogger(ctx))
	assert.NotNil(t, GetLogger(t.Context()))
}
