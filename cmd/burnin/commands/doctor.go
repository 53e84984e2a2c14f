package commands

import (
	"github.com/spf13/cobra"

	"github.com/ephemeralci/burnin/cmd/burnin/handlers"
)

// Doctor returns the command for diagnosing a working tree offline.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: burnin.yaml)
//	--json: Output in JSON format
func Doctor() *cobra.Command {
	var configPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Report detected capabilities and derived names",
		Long: `Diagnose the working tree without touching the cloud.

Shows which pipeline stages a run would execute, the names it would derive,
and whether the required tools and token are available.

Examples:
  # Human-readable report
  burnin doctor

  # Machine-readable report
  burnin doctor --json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Doctor(configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: burnin.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
