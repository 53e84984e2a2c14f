// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the burnin CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "burnin",
		Short:         "Provision, validate and tear down ephemeral cloud resources",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(Init())
	cmd.AddCommand(Run())
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Cleanup())
	cmd.AddCommand(Version())

	return cmd
}
