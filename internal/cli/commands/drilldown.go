package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/leapstack-labs/logviews/internal/cli/output"
	"github.com/leapstack-labs/logviews/internal/document"
	"github.com/leapstack-labs/logviews/internal/drilldown"
	"github.com/leapstack-labs/logviews/pkg/core"
	"github.com/spf13/cobra"
)

// NewDrilldownCommand creates the drilldown command.
func NewDrilldownCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "drilldown <view-file>",
		Short: "Resolve the drill-down context of a widget",
		Long: `Resolve the streams, time range and query that a widget's interactive
elements use to scope a follow-up search.

On dashboards, streams come from the widget while the time range and query
fall back from the global override to the widget to a default (last 300
seconds, empty query). On searches, the current query supplies everything,
with stream categories expanded through the configured stream_categories.
Without a current query, drill-down is disabled.

The view file is YAML or JSON with view_type, widget, global_override and
current_query sections.`,
		Example: `  # Resolve a dashboard widget
  logviews drilldown views/dashboard.yaml

  # Resolve as JSON for scripts
  logviews drilldown views/search.json --output json

  # Re-resolve whenever the file changes
  logviews drilldown views/dashboard.yaml --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			if watch {
				return runDrilldownWatch(cmd, cmdCtx, args[0])
			}
			return runDrilldown(cmdCtx, args[0])
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-resolve whenever the view file changes")

	return cmd
}

// viewLoader loads view documents and applies the configured stream categories.
func viewLoader(cmdCtx *CommandContext) drilldown.LoadFunc {
	categories := cmdCtx.Cfg.Categories()
	return func(path string) (drilldown.Input, error) {
		in, err := document.LoadView(path)
		if err != nil {
			return drilldown.Input{}, err
		}
		in.Categories = categories
		return in, nil
	}
}

func runDrilldown(cmdCtx *CommandContext, path string) error {
	in, err := viewLoader(cmdCtx)(path)
	if err != nil {
		return err
	}

	d := drilldown.Resolve(in)
	cmdCtx.Logger.Debug("resolved drilldown",
		slog.String("path", path),
		slog.String("view_type", in.ViewType.String()),
		slog.Bool("enabled", d != nil))

	return renderDrilldown(cmdCtx.Renderer, in.ViewType, d)
}

func runDrilldownWatch(cmd *cobra.Command, cmdCtx *CommandContext, path string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return watchDrilldown(ctx, cmdCtx, path)
}

func watchDrilldown(ctx context.Context, cmdCtx *CommandContext, path string) error {
	r := cmdCtx.Renderer
	w := drilldown.NewWatcher(path, viewLoader(cmdCtx), cmdCtx.Logger)

	if r.EffectiveMode() != output.ModeJSON {
		r.Muted(fmt.Sprintf("Watching %s (Ctrl+C to stop)", path))
	}

	return w.Run(ctx, func(d *core.Drilldown, err error) {
		if err != nil {
			if r.EffectiveMode() == output.ModeJSON {
				_ = r.JSON(map[string]string{"error": err.Error()})
				return
			}
			r.Error(err.Error())
			return
		}
		_ = renderDrilldown(r, "", d)
	})
}

func renderDrilldown(r *output.Renderer, viewType core.ViewType, d *core.Drilldown) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(struct {
			Enabled   bool            `json:"enabled"`
			Drilldown *core.Drilldown `json:"drilldown"`
		}{Enabled: d != nil, Drilldown: d})
	}

	if d == nil {
		msg := "Drill-down disabled: no current query"
		if viewType != "" {
			msg = fmt.Sprintf("Drill-down disabled: %s view has no current query", viewType)
		}
		r.Warning(msg)
		return nil
	}

	streams := "(none)"
	if len(d.Streams) > 0 {
		streams = strings.Join(d.Streams, ", ")
	}
	query := d.Query.QueryString
	if query == "" {
		query = "(empty)"
	}

	r.Header(1, "Drilldown")
	r.KeyValue("Streams", streams)
	r.KeyValue("Time range", d.TimeRange.String())
	r.KeyValue("Query", fmt.Sprintf("%s (%s)", query, d.Query.Type))
	return nil
}
