package commands

import (
	"github.com/spf13/cobra"

	"github.com/ephemeralci/burnin/cmd/burnin/handlers"
)

// Cleanup returns the command for deleting leaked resources by selector.
func Cleanup() *cobra.Command {
	var opts handlers.CleanupOptions

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete leaked resources by scope, run id, or label",
		Long: `Delete resources left behind by crashed or kept runs.

At least one selector is required. Deleting by scope id follows resource
dependency order; --wait polls server deletion to completion.

Examples:
  # Delete everything a kept run created
  burnin cleanup --scope-id burnin-dev-local-20240101000000

  # Delete everything a CI run left behind, waiting for completion
  burnin cleanup --run-id 12345 --wait

  # Delete by arbitrary label
  burnin cleanup --label burnin.io/environment=staging`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Cleanup(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.ScopeID, "scope-id", "", "Scope id to delete")
	cmd.Flags().StringVar(&opts.RunID, "run-id", "", "CI run id to clean up")
	cmd.Flags().StringArrayVar(&opts.Labels, "label", nil, "Additional labels in key=value form (repeatable)")
	cmd.Flags().BoolVar(&opts.Wait, "wait", false, "Wait for server deletion to complete")

	return cmd
}
