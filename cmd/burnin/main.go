// Package main is the entry point for the burnin CLI.
//
// burnin provisions an ephemeral scope of cloud resources, validates that
// provisioning actually produced something, and tears everything down
// again. It is built for CI: one shot, deterministic exit codes, cleanup on
// every path out.
//
// Commands: init, run, doctor, cleanup, version.
//
// For detailed usage information, run:
//
//	burnin --help
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ephemeralci/burnin/cmd/burnin/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
