package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/logviews/internal/cli/config"
	"github.com/leapstack-labs/logviews/internal/cli/output"
	"github.com/leapstack-labs/logviews/internal/lookup"
)

// generateSchemaDocs generates the configuration reference.
func generateSchemaDocs(outDir string) error {
	log.Printf("Generating schema docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := generateConfigurationDoc(outDir); err != nil {
		return fmt.Errorf("failed to generate configuration.md: %w", err)
	}
	log.Printf("  Generated configuration.md")

	return nil
}

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
}

// getConfigSchema returns the configuration schema definition.
// This is based on internal/cli/config/types.go Config.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "output", Type: "string", Default: config.DefaultOutput, Description: "Output format: " + joinModes()},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Verbose output, forces log_level debug"},
		{Name: "log_level", Type: "string", Default: config.DefaultLogLevel, Description: "Log level: debug, info, warn, error"},
		{Name: "stream_categories", Type: "map[string][]string", Description: "Stream IDs per stream category, used to expand stream_category filters"},
		{Name: "scopes", Type: "map[string]{mutable, deletable}", Description: "Entity scope rules, merged over the built-in DEFAULT and ILLUMINATE scopes"},
	}
}

func joinModes() string {
	return strings.Join(output.Modes(), ", ")
}

// generateConfigurationDoc generates the configuration reference page.
func generateConfigurationDoc(outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "logviews configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("logviews is configured via `%s`, searched from the working directory upward. "+
		"Keys can be overridden with `%s` environment variables and command-line flags.", config.ConfigFileName, config.EnvPrefix))

	w.Header(2, "Settings")
	headers := []string{"Field", "Type", "Default", "Description"}
	var rows [][]string
	for _, f := range getConfigSchema() {
		defVal := f.Default
		if defVal == "" {
			defVal = "-"
		}
		rows = append(rows, []string{InlineCode(f.Name), f.Type, InlineCode(defVal), f.Description})
	}
	w.Table(headers, rows)

	w.Header(2, "Built-in Scopes")
	w.Paragraph("Entities without scope metadata belong to `DEFAULT`. Unknown scopes are read-only.")

	scopes := lookup.DefaultScopes()
	names := make([]string, 0, len(scopes))
	for name := range scopes {
		names = append(names, name)
	}
	sort.Strings(names)

	var scopeRows [][]string
	for _, name := range names {
		rule := scopes[name]
		scopeRows = append(scopeRows, []string{InlineCode(name), yesNo(rule.Mutable), yesNo(rule.Deletable)})
	}
	w.Table([]string{"Scope", "Editable", "Deletable"}, scopeRows)

	w.Header(2, "Full Configuration Example")
	w.CodeBlock("yaml", `# logviews.yaml
output: auto
log_level: warn

stream_categories:
  authentication:
    - 5f1a3c2e9d1b4a0012345678
    - 5f1a3c2e9d1b4a0087654321

scopes:
  ILLUMINATE:
    mutable: false
    deletable: false`)

	filename := filepath.Join(outDir, "configuration.md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
