package commands

import (
	"log/slog"
	"strings"

	"github.com/leapstack-labs/logviews/internal/cli/output"
	"github.com/leapstack-labs/logviews/internal/document"
	"github.com/leapstack-labs/logviews/internal/lookup"
	"github.com/spf13/cobra"
)

// NewCachesCommand creates the caches command.
func NewCachesCommand() *cobra.Command {
	var listTypes bool

	cmd := &cobra.Command{
		Use:   "caches [caches-file]",
		Short: "Describe lookup-table caches",
		Long: `Describe lookup-table caches the way the configuration screen shows them:
the cache type's display name, a type-specific settings summary, and whether
the cache may be edited or deleted given its scope.

Use --types to list the registered cache types instead.`,
		Example: `  # Describe caches from a file
  logviews caches caches.yaml

  # List available cache types
  logviews caches --types`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			if listTypes || len(args) == 0 {
				return renderCacheTypes(cmdCtx.Renderer, cmdCtx.CacheTypes.Types())
			}

			caches, err := document.LoadCaches(args[0])
			if err != nil {
				return err
			}

			scopes := cmdCtx.Cfg.ScopeRules()
			views := make([]lookup.CacheView, 0, len(caches))
			for _, c := range caches {
				view, err := cmdCtx.CacheTypes.Describe(c, scopes)
				if err != nil {
					return err
				}
				views = append(views, view)
			}

			cmdCtx.Logger.Debug("described caches",
				slog.String("path", args[0]),
				slog.Int("count", len(views)))

			return renderCaches(cmdCtx.Renderer, views)
		},
	}

	cmd.Flags().BoolVar(&listTypes, "types", false, "List registered cache types")

	return cmd
}

func renderCacheTypes(r *output.Renderer, types []lookup.CacheType) error {
	if r.EffectiveMode() == output.ModeJSON {
		type typeJSON struct {
			Type        string `json:"type"`
			DisplayName string `json:"display_name"`
		}
		out := make([]typeJSON, 0, len(types))
		for _, t := range types {
			out = append(out, typeJSON{Type: t.Type, DisplayName: t.DisplayName})
		}
		return r.JSON(out)
	}

	rows := make([][]string, 0, len(types))
	for _, t := range types {
		rows = append(rows, []string{t.Type, t.DisplayName})
	}
	r.Table([]string{"Type", "Name"}, rows)
	return nil
}

func renderCaches(r *output.Renderer, views []lookup.CacheView) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(views)
	}

	if len(views) == 0 {
		r.Muted("No caches defined")
		return nil
	}

	for i, v := range views {
		if i > 0 {
			r.Println()
		}
		title := v.Title
		if title == "" {
			title = v.Name
		}
		r.Header(2, title)
		if v.Description != "" {
			r.Muted(v.Description)
		}
		r.KeyValue("Name", v.Name)
		r.KeyValue("Type", v.TypeDisplayName)
		for _, line := range v.Summary {
			r.KeyValue(line.Label, line.Value)
		}
		r.KeyValue("Scope", v.Scope)
		r.KeyValue("Actions", cacheActions(v))
	}
	return nil
}

func cacheActions(v lookup.CacheView) string {
	var actions []string
	if v.Editable {
		actions = append(actions, "edit")
	}
	if v.Deletable {
		actions = append(actions, "delete")
	}
	if len(actions) == 0 {
		return "read-only"
	}
	return strings.Join(actions, ", ")
}

