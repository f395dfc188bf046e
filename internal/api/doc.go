// Package api handles incoming HTTP requests for the course library: it
// decodes and validates request bodies, calls the author and course
// services, and maps their results and errors onto HTTP responses.
// Validation failures are rendered as problem documents whose status is
// fixed at construction.
package api
