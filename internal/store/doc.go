// Package store defines the persistence interfaces for authors and courses,
// the sentinel errors implementations return, and transaction helpers.
// Business logic depends on these interfaces only, never on a concrete
// database.
package store
