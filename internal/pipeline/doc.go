// Package pipeline executes the validation run as a linear sequence of
// stages against an ephemeral scope. Optional stages are assembled from the
// detected capabilities; a skipped stage is never added, so skipping is
// structural rather than a fake success. Every external call is wrapped by
// the retry executor with a stage-specific budget.
package pipeline
