package session

import (
	"context"
	"sync"
	"time"
)

// ScopeDeleter is the slice of the cloud client the guard needs.
type ScopeDeleter interface {
	DeleteScope(ctx context.Context, name string, wait bool) error
}

// ToolReleaser is the slice of the project tool driver the guard needs.
type ToolReleaser interface {
	SelectEnv(ctx context.Context, name string) error
	Down(ctx context.Context, purge, force bool) error
}

// Logger matches the pipeline observer's Printf.
type Logger interface {
	Printf(format string, v ...interface{})
}

// releaseTimeout bounds cleanup work. The process is about to exit; a stuck
// teardown must not hang the run.
const releaseTimeout = 2 * time.Minute

// Guard guarantees teardown of everything a session created. It is
// constructed before the first mutating call and released exactly once on
// every exit path, interruption included.
//
// Release is best effort: its own failures are logged as warnings and never
// alter the exit code it was handed.
type Guard struct {
	session *Session
	cloud   ScopeDeleter
	tool    ToolReleaser
	log     Logger

	// Keep suppresses scope deletion for post-mortem inspection. The tool
	// teardown still runs.
	Keep bool

	once sync.Once
}

// NewGuard creates a cleanup guard for the session.
func NewGuard(s *Session, cloud ScopeDeleter, tool ToolReleaser, log Logger) *Guard {
	return &Guard{
		session: s,
		cloud:   cloud,
		tool:    tool,
		log:     log,
	}
}

// Release tears down the session's resources and returns exitCode unchanged.
// Safe to call from multiple paths; only the first call does work.
//
// The teardown runs under a fresh background context so that a cancelled run
// context cannot skip it. Order matters: the tool's own state is cleared
// before the scope is removed, so sub-resources the tool tracks outside the
// scope's resource list are not orphaned.
func (g *Guard) Release(exitCode int) int {
	g.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()

		g.log.Printf("[Cleanup] Releasing session (scope=%s, created=%t, exit=%d)",
			g.session.ScopeID, g.session.ScopeCreated, exitCode)

		if g.session.Capabilities.UsesProjectTool && g.tool != nil {
			g.releaseTool(ctx)
		}

		switch {
		case !g.session.ScopeCreated:
			g.log.Printf("[Cleanup] Scope %s was not created by this run, leaving it alone", g.session.ScopeID)
		case g.Keep:
			g.log.Printf("[Cleanup] Keeping scope %s as requested (--keep); delete it with: burnin cleanup --scope-id %s",
				g.session.ScopeID, g.session.ScopeID)
		default:
			// Fire and forget: deletion completion is not awaited.
			if err := g.cloud.DeleteScope(ctx, g.session.ScopeID, false); err != nil {
				g.log.Printf("[Cleanup] Warning: failed to delete scope %s: %v", g.session.ScopeID, err)
			} else {
				g.log.Printf("[Cleanup] Scope %s delete issued", g.session.ScopeID)
			}
		}
	})
	return exitCode
}

// releaseTool runs the project tool's own teardown with forceful,
// non-interactive flags.
func (g *Guard) releaseTool(ctx context.Context) {
	if g.session.ToolEnvName == "" {
		return
	}
	g.log.Printf("[Cleanup] Tearing down project tool environment %s", g.session.ToolEnvName)
	if err := g.tool.SelectEnv(ctx, g.session.ToolEnvName); err != nil {
		g.log.Printf("[Cleanup] Warning: failed to select tool environment: %v", err)
		return
	}
	if err := g.tool.Down(ctx, true, true); err != nil {
		g.log.Printf("[Cleanup] Warning: project tool teardown failed: %v", err)
	}
}
