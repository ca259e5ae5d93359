package drilldown

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/leapstack-labs/logviews/internal/testutil"
	"github.com/leapstack-labs/logviews/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadQueryFile treats the whole file as the query string of a dashboard widget.
func loadQueryFile(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, err
	}
	text := strings.TrimSpace(string(data))
	if text == "broken" {
		return Input{}, errors.New("broken document")
	}
	return Input{
		ViewType: core.ViewTypeDashboard,
		Widget:   core.Widget{Streams: []string{"s1"}, Query: core.ElasticsearchQueryString(text)},
	}, nil
}

type result struct {
	d   *core.Drilldown
	err error
}

func TestWatcher_ResolvesOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "view.txt")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0600))

	logger, logs := testutil.NewCapturingLogger()
	w := NewWatcher(path, loadQueryFile, logger)
	w.Debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan result, 64)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(d *core.Drilldown, err error) {
			results <- result{d: d, err: err}
		})
	}()

	first := waitResult(t, results, hasQuery("first"))
	require.NoError(t, first.err)

	require.NoError(t, os.WriteFile(path, []byte("broken"), 0600))
	failed := waitResult(t, results, func(r result) bool { return r.err != nil })
	assert.Nil(t, failed.d)
	assert.Contains(t, logs.String(), "failed to load view document")
	assert.Contains(t, logs.String(), "broken document")

	require.NoError(t, os.WriteFile(path, []byte("second"), 0600))
	second := waitResult(t, results, hasQuery("second"))
	assert.Equal(t, []string{"s1"}, second.d.Streams)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing", "view.txt"), loadQueryFile, testutil.NewTestLogger(t))
	err := w.Run(context.Background(), func(*core.Drilldown, error) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}

func hasQuery(q string) func(result) bool {
	return func(r result) bool {
		return r.err == nil && r.d != nil && r.d.Query.QueryString == q
	}
}

// waitResult skips intermediate resolutions until one matches.
func waitResult(t *testing.T, results <-chan result, match func(result) bool) result {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case r := <-results:
			if match(r) {
				return r
			}
		case <-timeout:
			t.Fatal("timed out waiting for resolution")
			return result{}
		}
	}
}
