package commands

import (
	"strings"

	"github.com/leapstack-labs/logviews/internal/aggregation"
	"github.com/leapstack-labs/logviews/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewActionsCommand creates the actions command.
func NewActionsCommand() *cobra.Command {
	var (
		configured []string
		selectKey  string
	)

	cmd := &cobra.Command{
		Use:   "actions",
		Short: "List aggregation wizard actions that can still be added",
		Long: `List the sections of the aggregation wizard (metric, group by, sort,
visualization) that are not configured on a widget yet.

With --select, validate that the given action can be created and print it.`,
		Example: `  # All actions
  logviews actions

  # Actions left once metric and sort are configured
  logviews actions --configured metric,sort

  # Validate a selection
  logviews actions --configured metric --select groupBy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			actions := aggregation.DefaultActions()

			if selectKey != "" {
				action, err := aggregation.Select(actions, configured, selectKey)
				if err != nil {
					return err
				}
				cmdCtx.Logger.Debug("selected aggregation action", "key", action.Key)
				return renderSelectedAction(cmdCtx.Renderer, action)
			}

			options := aggregation.AvailableOptions(actions, configured)
			return renderOptions(cmdCtx.Renderer, options)
		},
	}

	cmd.Flags().StringSliceVar(&configured, "configured", nil, "Action keys already configured on the widget")
	cmd.Flags().StringVar(&selectKey, "select", "", "Action key to create")

	_ = cmd.RegisterFlagCompletionFunc("select", completeActionKeys)
	_ = cmd.RegisterFlagCompletionFunc("configured", completeActionKeys)

	return cmd
}

func completeActionKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	actions := aggregation.DefaultActions()
	keys := make([]string, 0, len(actions))
	for _, a := range actions {
		keys = append(keys, a.Key)
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}

func renderOptions(r *output.Renderer, options []aggregation.Option) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(options)
	}

	if len(options) == 0 {
		r.Muted("All aggregation actions are configured")
		return nil
	}

	rows := make([][]string, 0, len(options))
	for _, o := range options {
		rows = append(rows, []string{o.Value, o.Label})
	}
	r.Table([]string{"Key", "Label"}, rows)
	return nil
}

func renderSelectedAction(r *output.Renderer, action aggregation.Action) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(action)
	}
	r.Success("Added " + strings.ToLower(action.Label) + " section")
	return nil
}
