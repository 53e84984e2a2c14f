package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/ephemeralci/burnin/internal/capability"
	"github.com/ephemeralci/burnin/internal/config"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// Session is the unit of ephemeral state for one run. It is created once at
// start, mutated only by the stage that owns each field, and read by the
// cleanup guard at process end. Never shared across runs, never persisted.
type Session struct {
	// ScopeID names the ephemeral resource scope. Unique per run unless a
	// caller pinned it explicitly.
	ScopeID string

	// ScopeCreated is true only after this run created the scope itself.
	// Cleanup may only delete the scope when this is true.
	ScopeCreated bool

	// DeploymentID names the provisioning/validation invocation. Always
	// time-derived: several deployments may target the same scope.
	DeploymentID string

	// ToolEnvName is the project tool's own environment name. Set only
	// when the tool is in use.
	ToolEnvName string

	// Capabilities is fixed at detection time.
	Capabilities capability.Capabilities

	// ExitCode is the process's final result code. Cleanup preserves it
	// exactly.
	ExitCode int
}

// New derives a session from configuration and detected capabilities.
func New(cfg *config.Config, caps capability.Capabilities) *Session {
	now := timeNow().UTC()

	s := &Session{
		ScopeID:      deriveScopeID(cfg, now),
		DeploymentID: fmt.Sprintf("%s-deploy-%s", cfg.Prefix, now.Format(timestampLayout)),
		Capabilities: caps,
	}
	if caps.UsesProjectTool {
		s.ToolEnvName = deriveToolEnvName(cfg, now)
	}
	return s
}

const timestampLayout = "20060102150405"

// deriveScopeID picks the scope identifier in priority order: explicit
// override verbatim, CI run composition, timestamp fallback.
//
// The run id keeps concurrent CI runs from contending for a scope; the
// override enables idempotent reuse against a known scope.
func deriveScopeID(cfg *config.Config, now time.Time) string {
	if cfg.ScopeIDOverride != "" {
		return cfg.ScopeIDOverride
	}
	if cfg.CI.IsCI && cfg.CI.RunID != "" {
		return joinSegments(cfg.Prefix, cfg.EnvLabel, repoShort(cfg.CI.Repository), cfg.CI.RunID)
	}
	return joinSegments(cfg.Prefix, cfg.EnvLabel, "local", now.Format(timestampLayout))
}

// deriveToolEnvName follows the same composition as the scope id with an
// "env" marker segment, so tool environments stay unique per CI run too.
func deriveToolEnvName(cfg *config.Config, now time.Time) string {
	if cfg.ToolEnvOverride != "" {
		return cfg.ToolEnvOverride
	}
	if cfg.CI.IsCI && cfg.CI.RunID != "" {
		return joinSegments(cfg.Prefix, "env", cfg.EnvLabel, cfg.CI.RunID)
	}
	return joinSegments(cfg.Prefix, "env", cfg.EnvLabel, now.Format(timestampLayout))
}

// repoShort keeps only the repository name from an owner/repo composition.
func repoShort(repository string) string {
	if repository == "" {
		return "repo"
	}
	if i := strings.LastIndex(repository, "/"); i >= 0 {
		repository = repository[i+1:]
	}
	return repository
}

// joinSegments sanitizes and joins name segments, dropping empties.
func joinSegments(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if s := sanitizeSegment(seg); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "-")
}

// sanitizeSegment lowercases a segment and strips everything that is not
// alphanumeric or a hyphen, so derived names survive cloud naming rules.
func sanitizeSegment(seg string) string {
	seg = strings.ToLower(seg)
	var b strings.Builder
	for _, r := range seg {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == '_' || r == '.' || r == ' ':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
