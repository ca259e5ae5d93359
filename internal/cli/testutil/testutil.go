// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/leapstack-labs/logviews/internal/cli/output"
)

// Paths of the files written by SetupTestProject, relative to the project root.
const (
	ConfigFile    = "logviews.yaml"
	DashboardView = "views/dashboard.yaml"
	SearchView    = "views/search.yaml"
	EmptySearch   = "views/empty.json"
	CachesFile    = "caches.yaml"
)

var projectFiles = map[string]string{
	ConfigFile: `output: json
log_level: warn
stream_categories:
  authentication: [auth-stream-1, auth-stream-2]
scopes:
  illuminate:
    mutable: false
    deletable: true
`,
	DashboardView: `view_type: DASHBOARD
widget:
  id: widget-1
  type: aggregation
  streams: [stream-a, stream-b]
  timerange: {type: relative, from: 3600}
  query: {type: elasticsearch, query_string: "action:login"}
global_override:
  timerange: {type: keyword, keyword: "last five minutes"}
`,
	SearchView: `view_type: SEARCH
current_query:
  id: query-1
  filter:
    type: or
    filters:
      - {type: stream, id: stream-x}
      - {type: stream_category, category: authentication}
      - {type: stream, id: auth-stream-1}
  timerange: {type: relative, from: 900}
  query: {type: elasticsearch, query_string: "level:error"}
`,
	EmptySearch: `{"view_type": "SEARCH"}`,
	CachesFile: `caches:
  - id: c1
    name: users
    title: User cache
    config:
      type: guava_cache
      max_size: 10000
      expire_after_access: 60
      expire_after_access_unit: SECONDS
  - id: c2
    name: geo
    title: Geo cache
    config:
      type: none
    _metadata:
      scope: ILLUMINATE
`,
}

// SetupTestProject creates a temporary project with a config file, views and caches.
func SetupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	for name, content := range projectFiles {
		path := filepath.Join(tmpDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	return tmpDir
}

// TestRenderer wraps a Renderer with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a renderer writing to buffers.
func NewTestRenderer(mode output.Mode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// NewTestRendererMarkdown creates a new test renderer in markdown mode.
func NewTestRendererMarkdown() *TestRenderer {
	return NewTestRenderer(output.ModeMarkdown, false)
}

// NewTestRendererJSON creates a new test renderer in JSON mode.
func NewTestRendererJSON() *TestRenderer {
	return NewTestRenderer(output.ModeJSON, false)
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown performs basic markdown validation.
// It checks for unclosed code fences and empty headers.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	fenceCount := strings.Count(md, "```")
	if fenceCount%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", fenceCount)
	}

	lines := strings.Split(md, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}
