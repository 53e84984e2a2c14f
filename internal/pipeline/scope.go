package pipeline

import (
	"fmt"

	"github.com/ephemeralci/burnin/internal/platform/cloud"
	"github.com/ephemeralci/burnin/internal/util/labels"
)

// ScopeStage creates the ephemeral scope, or adopts a pinned one.
type ScopeStage struct{}

func (s *ScopeStage) Name() string { return "scope" }

// Run creates the scope with the derived id. ScopeCreated is set the moment
// creation succeeds, before anything else can fail, so cleanup always knows
// whether a delete is owed. A pre-existing scope (a caller pinned the id to
// resume against it) is reused and left alone at cleanup.
func (s *ScopeStage) Run(ctx *Context) error {
	scopeID := ctx.Session.ScopeID
	budget := ctx.Config.Retry.Scope

	var exists bool
	err := ctx.retryOp(s.Name(), budget, cloud.IsTransient, func() error {
		var lookupErr error
		exists, lookupErr = ctx.Cloud.ScopeExists(ctx, scopeID)
		return lookupErr
	})
	if err != nil {
		return fmt.Errorf("failed to check scope %q: %w", scopeID, err)
	}

	if exists {
		ctx.Observer.Event(Event{
			Type:     EventScopeReused,
			Stage:    s.Name(),
			Resource: scopeID,
			Message:  "scope already exists, reusing without taking ownership",
		})
		return nil
	}

	tags := labels.NewTagBuilder(scopeID).
		WithEnvironment(ctx.Config.EnvLabel).
		WithTTL(ctx.Config.TTL).
		WithRepositoryIfSet(ctx.Config.CI.Repository).
		WithRunIDIfSet(ctx.Config.CI.RunID).
		Build()

	var id string
	err = ctx.retryOp(s.Name(), budget, cloud.IsTransient, func() error {
		var createErr error
		id, createErr = ctx.Cloud.CreateScope(ctx, scopeID, ctx.Config.Location, tags)
		return createErr
	})
	if err != nil {
		return fmt.Errorf("failed to create scope %q: %w", scopeID, err)
	}

	// Owed a delete from this point on, no matter what fails next.
	ctx.Session.ScopeCreated = true

	ctx.Observer.Event(Event{
		Type:     EventScopeCreated,
		Stage:    s.Name(),
		Resource: scopeID,
		Message:  "scope created",
		Fields:   map[string]string{"id": id},
	})
	return nil
}
