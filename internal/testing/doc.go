// Package testing provides shared mocks and builders for unit tests.
//
// It centralizes testify mocks for the platform collaborators (cloud scope
// manager, project tool driver, template engine) so pipeline and handler
// tests do not each grow their own.
package testing
