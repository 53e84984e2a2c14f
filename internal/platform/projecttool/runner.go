// Package projecttool drives the optional external provisioning tool. The
// tool manages its own named environments layered on top of the ephemeral
// scope; burnin only ever invokes it non-interactively.
package projecttool

import (
	"context"

	"github.com/ephemeralci/burnin/internal/util/execx"
)

// Driver defines the project tool operations the orchestrator consumes.
type Driver interface {
	// NewEnv creates a named tool environment.
	NewEnv(ctx context.Context, name string) error

	// SelectEnv switches the tool to an existing environment.
	SelectEnv(ctx context.Context, name string) error

	// SetVar sets an environment variable in the selected environment.
	SetVar(ctx context.Context, key, value string) error

	// Provision runs the tool's provisioning command.
	Provision(ctx context.Context, noPrompt bool) error

	// Down runs the tool's teardown command.
	Down(ctx context.Context, purge, force bool) error

	// SetConfigFlag toggles a tool configuration flag.
	SetConfigFlag(ctx context.Context, flag string, on bool) error
}

// runCommand is swapped in tests.
var runCommand = execx.Run

// Runner invokes the project tool binary.
type Runner struct {
	binary string
	dir    string
}

// NewRunner creates a runner for the given binary, executing in dir.
func NewRunner(binary, dir string) *Runner {
	return &Runner{binary: binary, dir: dir}
}

func (r *Runner) NewEnv(ctx context.Context, name string) error {
	return runCommand(ctx, r.dir, r.binary, "env", "new", name, "--no-prompt")
}

func (r *Runner) SelectEnv(ctx context.Context, name string) error {
	return runCommand(ctx, r.dir, r.binary, "env", "select", name)
}

func (r *Runner) SetVar(ctx context.Context, key, value string) error {
	return runCommand(ctx, r.dir, r.binary, "env", "set", key, value)
}

func (r *Runner) Provision(ctx context.Context, noPrompt bool) error {
	args := []string{"provision"}
	if noPrompt {
		args = append(args, "--no-prompt")
	}
	return runCommand(ctx, r.dir, r.binary, args...)
}

func (r *Runner) Down(ctx context.Context, purge, force bool) error {
	args := []string{"down"}
	if purge {
		args = append(args, "--purge")
	}
	if force {
		args = append(args, "--force")
	}
	return runCommand(ctx, r.dir, r.binary, args...)
}

func (r *Runner) SetConfigFlag(ctx context.Context, flag string, on bool) error {
	value := "off"
	if on {
		value = "on"
	}
	return runCommand(ctx, r.dir, r.binary, "config", "set", flag, value)
}
