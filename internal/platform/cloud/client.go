package cloud

import "context"

// ScopeManager defines the cloud operations the orchestrator consumes.
type ScopeManager interface {
	// CreateScope creates the marker resource anchoring an ephemeral
	// scope and returns its id. Tags are best-effort metadata.
	CreateScope(ctx context.Context, name, location string, tags map[string]string) (string, error)

	// ScopeExists reports whether a scope marker with this name exists.
	ScopeExists(ctx context.Context, name string) (bool, error)

	// CountResources counts the resources in a scope, the marker excluded.
	CountResources(ctx context.Context, name string) (int, error)

	// DeleteScope deletes every resource in the scope, marker included.
	// With wait=false deletion requests are issued without polling for
	// completion.
	DeleteScope(ctx context.Context, name string, wait bool) error

	// CleanupByLabel deletes all resources matching the label selector.
	// Used by the standalone cleanup path to reap leaked scopes.
	CleanupByLabel(ctx context.Context, labelSelector map[string]string) error
}
