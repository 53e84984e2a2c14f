// Package cloud wraps the Hetzner Cloud API behind a scope-oriented client.
//
// An ephemeral scope is modeled as a marker placement group named after the
// scope plus a burnin.io/scope label stamped on every resource a run
// creates. Everything the package does - create, count, delete - works off
// that label.
package cloud
