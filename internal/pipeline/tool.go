package pipeline

import (
	"fmt"
)

// scopeVarName is the tool environment variable binding the tool to the
// already-created scope instead of one it would create itself.
const scopeVarName = "SCOPE_ID"

// stacksFlag is the tool's experimental deployment-stacks capability,
// enabled best effort.
const stacksFlag = "alpha.deployment.stacks"

// ToolStage provisions through the project tool's own environment.
type ToolStage struct{}

func (s *ToolStage) Name() string { return "tool" }

func (s *ToolStage) Run(ctx *Context) error {
	envName := ctx.Session.ToolEnvName
	budget := ctx.Config.Retry.Tool

	// A fresh environment per run; an existing one (pinned override) is
	// selected instead.
	if err := ctx.Tool.NewEnv(ctx, envName); err != nil {
		ctx.Observer.Printf("[%s] environment %s not created (%v), selecting instead", s.Name(), envName, err)
		if err := ctx.Tool.SelectEnv(ctx, envName); err != nil {
			return fmt.Errorf("failed to create or select tool environment %q: %w", envName, err)
		}
	}

	err := ctx.retryOp(s.Name(), budget, nil, func() error {
		return ctx.Tool.SetVar(ctx, scopeVarName, ctx.Session.ScopeID)
	})
	if err != nil {
		return fmt.Errorf("failed to bind tool environment to scope: %w", err)
	}

	// Best effort: only the provisioning command itself is load-bearing.
	if err := ctx.Tool.SetConfigFlag(ctx, stacksFlag, true); err != nil {
		ctx.Observer.Event(Event{
			Type:    EventCleanupWarning,
			Stage:   s.Name(),
			Message: fmt.Sprintf("could not enable %s: %v", stacksFlag, err),
		})
	}

	err = ctx.retryOp(s.Name(), budget, nil, func() error {
		return ctx.Tool.Provision(ctx, true)
	})
	if err != nil {
		return fmt.Errorf("tool provisioning failed: %w", err)
	}
	return nil
}
