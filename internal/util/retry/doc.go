// Package retry re-invokes fallible operations with a fixed inter-attempt
// delay. Every failure is treated as potentially transient unless a
// classifier or a Fatal marker says otherwise.
package retry
