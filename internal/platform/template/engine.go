// Package template drives the external template engine: syntax builds,
// dry-run validations, and real deployments against an ephemeral scope.
package template

import (
	"context"

	"github.com/ephemeralci/burnin/internal/util/execx"
)

// Engine defines the template operations the orchestrator consumes.
type Engine interface {
	// Build compiles the template for syntax correctness.
	Build(ctx context.Context, templatePath string) error

	// ValidateDeployment dry-runs a deployment against the scope.
	// paramsPath may be empty for an unparameterized validation.
	ValidateDeployment(ctx context.Context, scopeName, deploymentID, templatePath, paramsPath string) error

	// CreateDeployment executes the real deployment.
	CreateDeployment(ctx context.Context, scopeName, deploymentID, templatePath, paramsPath string) error
}

// runCommand is swapped in tests.
var runCommand = execx.Run

// CLI invokes the template engine binary.
type CLI struct {
	binary string
	dir    string
}

// NewCLI creates an engine for the given binary, executing in dir.
func NewCLI(binary, dir string) *CLI {
	return &CLI{binary: binary, dir: dir}
}

func (c *CLI) Build(ctx context.Context, templatePath string) error {
	return runCommand(ctx, c.dir, c.binary, "build", templatePath)
}

func (c *CLI) ValidateDeployment(ctx context.Context, scopeName, deploymentID, templatePath, paramsPath string) error {
	return runCommand(ctx, c.dir, c.binary, deploymentArgs("validate", scopeName, deploymentID, templatePath, paramsPath)...)
}

func (c *CLI) CreateDeployment(ctx context.Context, scopeName, deploymentID, templatePath, paramsPath string) error {
	return runCommand(ctx, c.dir, c.binary, deploymentArgs("deploy", scopeName, deploymentID, templatePath, paramsPath)...)
}

// deploymentArgs builds the shared argument list for validate and deploy.
// The parameters file travels with the deployment only when present.
func deploymentArgs(verb, scopeName, deploymentID, templatePath, paramsPath string) []string {
	args := []string{
		verb,
		"--scope", scopeName,
		"--name", deploymentID,
		"--template", templatePath,
	}
	if paramsPath != "" {
		args = append(args, "--parameters", paramsPath)
	}
	return args
}
