package pipeline

import (
	"fmt"
)

// TemplateStage builds the template, dry-runs a validation deployment, then
// executes the real deployment with the same parameter policy.
type TemplateStage struct{}

func (s *TemplateStage) Name() string { return "template" }

func (s *TemplateStage) Run(ctx *Context) error {
	budget := ctx.Config.Retry.Template
	templatePath := ctx.Config.Template.Path

	paramsPath := ""
	if ctx.Session.Capabilities.HasParametersFile {
		paramsPath = ctx.Config.Template.ParametersPath
	}

	err := ctx.retryOp(s.Name(), budget, nil, func() error {
		return ctx.Template.Build(ctx, templatePath)
	})
	if err != nil {
		return fmt.Errorf("template build failed: %w", err)
	}

	err = ctx.retryOp(s.Name(), budget, nil, func() error {
		return ctx.Template.ValidateDeployment(ctx, ctx.Session.ScopeID, ctx.Session.DeploymentID, templatePath, paramsPath)
	})
	if err != nil {
		return fmt.Errorf("deployment validation failed: %w", err)
	}

	err = ctx.retryOp(s.Name(), budget, nil, func() error {
		return ctx.Template.CreateDeployment(ctx, ctx.Session.ScopeID, ctx.Session.DeploymentID, templatePath, paramsPath)
	})
	if err != nil {
		return fmt.Errorf("deployment failed: %w", err)
	}
	return nil
}
