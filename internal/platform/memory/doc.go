// Package memory provides map-backed implementations of the store
// interfaces. It is used when no database URL is configured and in tests
// that exercise the service and API layers end to end.
package memory
