package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ephemeralci/burnin/internal/config"
	"github.com/ephemeralci/burnin/internal/util/labels"
)

// loadCIContext reads the environment-derived context (token included).
var loadCIContext = config.LoadCI

// CleanupOptions carries the cleanup command's flag values.
type CleanupOptions struct {
	ScopeID string
	RunID   string
	Labels  []string
	Wait    bool
}

// Cleanup handles the cleanup command: it deletes leaked resources matching
// the given selector. This is the recovery path for scopes that outlived
// their run (crashed process, --keep, external kill).
func Cleanup(ctx context.Context, opts CleanupOptions) error {
	selector := make(map[string]string)
	if opts.ScopeID != "" {
		selector[labels.KeyScope] = opts.ScopeID
	}
	if opts.RunID != "" {
		selector[labels.KeyRunID] = opts.RunID
	}
	for _, l := range opts.Labels {
		parts := strings.SplitN(l, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return fmt.Errorf("invalid label %q (expected key=value)", l)
		}
		selector[parts[0]] = parts[1]
	}
	if len(selector) == 0 {
		return fmt.Errorf("at least one of --scope-id, --run-id or --label is required")
	}

	ci, err := loadCIContext()
	if err != nil {
		return err
	}
	if ci.Token == "" {
		return fmt.Errorf("BURNIN_TOKEN is not set")
	}
	client := newCloudClient(ci.Token)

	// A pure scope selector takes the scope-delete path, which knows about
	// dependency order and can wait for completion.
	if opts.ScopeID != "" && len(selector) == 1 {
		log.Printf("Deleting scope %s (wait=%t)", opts.ScopeID, opts.Wait)
		if err := client.DeleteScope(ctx, opts.ScopeID, opts.Wait); err != nil {
			return fmt.Errorf("scope deletion failed: %w", err)
		}
		log.Printf("Scope %s deleted", opts.ScopeID)
		return nil
	}

	log.Printf("Cleaning up resources matching %v", selector)
	if err := client.CleanupByLabel(ctx, selector); err != nil {
		return fmt.Errorf("cleanup failed: %w", err)
	}
	log.Printf("Cleanup completed")
	return nil
}
