package labels

// Standard label keys for ephemeral scope resources.
const (
	// KeyScope identifies which ephemeral scope a resource belongs to.
	KeyScope = "burnin.io/scope"

	// KeyManagedBy identifies the management system.
	KeyManagedBy = "burnin.io/managed-by"

	// KeyEnvironment carries the target environment label (dev, staging, ...).
	KeyEnvironment = "burnin.io/environment"

	// KeyTTL is a best-effort hint for external reapers; burnin itself
	// deletes scopes at the end of every run.
	KeyTTL = "burnin.io/ttl"

	// KeyRepository records the source repository that triggered the run.
	KeyRepository = "burnin.io/repository"

	// KeyRunID records the CI run identifier, when present.
	KeyRunID = "burnin.io/run-id"

	// KeyMarker is set on the placement group that anchors a scope.
	KeyMarker = "burnin.io/marker"
)

// ManagedBy values
const (
	ManagedByBurnin = "burnin"
)

// TagBuilder provides a fluent interface for building scope resource labels.
type TagBuilder struct {
	labels map[string]string
}

// NewTagBuilder creates a tag builder with the scope and managed-by labels
// pre-set.
func NewTagBuilder(scopeID string) *TagBuilder {
	return &TagBuilder{
		labels: map[string]string{
			KeyScope:     scopeID,
			KeyManagedBy: ManagedByBurnin,
		},
	}
}

// WithEnvironment adds the environment label.
func (tb *TagBuilder) WithEnvironment(env string) *TagBuilder {
	return tb.set(KeyEnvironment, env)
}

// WithTTL adds the TTL hint label.
func (tb *TagBuilder) WithTTL(ttl string) *TagBuilder {
	return tb.set(KeyTTL, ttl)
}

// WithRepositoryIfSet adds the repository label only when repo is non-empty.
// Tag metadata is best effort; CI context is not always available.
func (tb *TagBuilder) WithRepositoryIfSet(repo string) *TagBuilder {
	if repo == "" {
		return tb
	}
	return tb.set(KeyRepository, repo)
}

// WithRunIDIfSet adds the run-id label only when runID is non-empty.
func (tb *TagBuilder) WithRunIDIfSet(runID string) *TagBuilder {
	if runID == "" {
		return tb
	}
	return tb.set(KeyRunID, runID)
}

// WithMarker marks the resource as the scope's anchor, excluded from
// resource counting.
func (tb *TagBuilder) WithMarker() *TagBuilder {
	return tb.set(KeyMarker, "true")
}

// Merge adds all labels from the provided map.
func (tb *TagBuilder) Merge(extra map[string]string) *TagBuilder {
	for k, v := range extra {
		tb.labels[k] = v
	}
	return tb
}

// Build returns a copy of the labels map.
// Returns a copy to prevent external mutations.
func (tb *TagBuilder) Build() map[string]string {
	result := make(map[string]string, len(tb.labels))
	for k, v := range tb.labels {
		result[k] = v
	}
	return result
}

func (tb *TagBuilder) set(k, v string) *TagBuilder {
	tb.labels[k] = v
	return tb
}

// SelectorForScope returns a label selector string matching every resource
// in a scope, the marker included.
func SelectorForScope(scopeID string) string {
	return KeyScope + "=" + scopeID
}
