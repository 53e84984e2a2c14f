package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ephemeralci/burnin/cmd/burnin/handlers"
)

// ExitError carries a non-zero process exit code through cobra's error
// return. main unwraps it so CI systems see the real code instead of a
// flat 1.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("validation run failed (exit code %d)", e.Code)
}

// Run returns the command for executing a full validation session.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: burnin.yaml)
//	--scope-id: Pin the resource scope id instead of deriving one
//	--tool-env: Pin the project tool environment name
//	--keep: Keep the scope after the run for inspection
//
// Environment variables:
//
//	BURNIN_TOKEN: Cloud API token (required)
//	CI, CI_RUN_ID, CI_REPOSITORY, CI_ENV_LABEL: CI context for naming
func Run() *cobra.Command {
	var opts handlers.RunOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Provision an ephemeral scope, validate it, and clean up",
		Long: `Run one full validation session.

Capabilities are detected from the working tree: a project tool manifest
enables tool-driven provisioning, a template path enables the template
deployment stages. The scope is always deleted afterwards unless --keep is
given or the scope existed before the run.

Exit codes:
  0  validation passed
  2  a required local tool is missing
  3  a pipeline stage failed after retries
  4  the scope contained no resources

Examples:
  # Run with burnin.yaml in the current directory
  burnin run

  # Run against a pinned scope (reused, never deleted)
  burnin run --scope-id burnin-dev-pinned

  # Keep the scope for post-mortem inspection
  burnin run --keep`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if code := handlers.Run(cmd.Context(), opts); code != 0 {
				return &ExitError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: burnin.yaml)")
	cmd.Flags().StringVar(&opts.ScopeID, "scope-id", "", "Pin the resource scope id")
	cmd.Flags().StringVar(&opts.ToolEnv, "tool-env", "", "Pin the project tool environment name")
	cmd.Flags().BoolVar(&opts.Keep, "keep", false, "Keep the scope after the run")

	return cmd
}
