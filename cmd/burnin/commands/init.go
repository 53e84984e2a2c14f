package commands

import (
	"github.com/spf13/cobra"

	"github.com/ephemeralci/burnin/cmd/burnin/handlers"
)

// Init returns the command for creating a starter configuration file.
func Init() *cobra.Command {
	var output string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter configuration file",
		Long: `Create a starter burnin.yaml.

On an interactive terminal this runs a short wizard; otherwise it writes a
configuration with defaults.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Init(output, force)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default: burnin.yaml)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
