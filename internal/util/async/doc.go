// Package async provides utilities for parallel task execution.
//
// It contains a small generic helper for running several operations
// concurrently and collecting the first failure. The cloud client uses it
// to fan out per-resource-type queries.
package async
