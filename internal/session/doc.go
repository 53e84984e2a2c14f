// Package session owns the ephemeral state of one validation run: the
// derived scope and deployment identifiers, the capability set, and the
// cleanup guard that guarantees teardown on every exit path.
package session
