// Package labels provides consistent labeling for ephemeral scope resources.
//
// Every resource a validation run creates carries the same label set so that
// scopes can be identified, counted, and cleaned up by selector alone.
// Standard label keys use the burnin.io domain prefix for namespacing.
package labels
