// Package domain contains the core business entities of the course library:
// authors and the courses they own. It is independent of any storage or
// transport concerns.
package domain
