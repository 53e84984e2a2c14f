package pipeline

import (
	"context"

	"github.com/ephemeralci/burnin/internal/config"
	"github.com/ephemeralci/burnin/internal/platform/cloud"
	"github.com/ephemeralci/burnin/internal/platform/projecttool"
	"github.com/ephemeralci/burnin/internal/platform/template"
	"github.com/ephemeralci/burnin/internal/session"
	"github.com/ephemeralci/burnin/internal/util/retry"
)

// Context wraps all dependencies and state needed by pipeline stages.
type Context struct {
	context.Context
	Config   *config.Config
	Session  *session.Session
	Cloud    cloud.ScopeManager
	Tool     projecttool.Driver
	Template template.Engine
	Observer Observer
}

// NewContext creates a new pipeline context.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	sess *session.Session,
	cloudClient cloud.ScopeManager,
	tool projecttool.Driver,
	tmpl template.Engine,
) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Session:  sess,
		Cloud:    cloudClient,
		Tool:     tool,
		Template: tmpl,
		Observer: NewConsoleObserver(),
	}
}

// retryOp runs op under the stage's retry budget, logging every failed
// attempt. A nil classifier retries all failures uniformly.
func (c *Context) retryOp(stage string, budget config.StageBudget, classifier func(error) bool, op func() error) error {
	return retry.Do(c, op,
		retry.WithMaxAttempts(budget.Attempts),
		retry.WithDelay(budget.Delay.AsDuration()),
		retry.WithClassifier(classifier),
		retry.WithNotify(func(attempt int, err error) {
			c.Observer.Printf("[%s] attempt %d/%d failed: %v", stage, attempt, budget.Attempts, err)
		}))
}
