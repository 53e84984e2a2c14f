package pipeline

import (
	"fmt"

	"github.com/ephemeralci/burnin/internal/platform/cloud"
)

// SmokeStage asserts the scope contains at least one resource. An empty
// scope after a nominally successful pipeline means nothing verifiable was
// produced, which is an error, not a warning.
type SmokeStage struct{}

func (s *SmokeStage) Name() string { return "smoke" }

func (s *SmokeStage) Run(ctx *Context) error {
	budget := ctx.Config.Retry.Smoke

	var count int
	err := ctx.retryOp(s.Name(), budget, cloud.IsTransient, func() error {
		var countErr error
		count, countErr = ctx.Cloud.CountResources(ctx, ctx.Session.ScopeID)
		return countErr
	})
	if err != nil {
		return fmt.Errorf("failed to count resources in scope %q: %w", ctx.Session.ScopeID, err)
	}

	if count < 1 {
		return fmt.Errorf("%w: scope %q", ErrNoResources, ctx.Session.ScopeID)
	}

	ctx.Observer.Printf("[%s] scope %s contains %d resources", s.Name(), ctx.Session.ScopeID, count)
	return nil
}
