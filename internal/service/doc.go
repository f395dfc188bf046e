// Package service contains the use cases of the course library. It
// coordinates the domain, the validation gate, the reconciliation engine and
// the store interfaces, and never depends on a concrete store.
//
// Key components:
//
//  1. AuthorService lists, fetches and creates authors. An author may be
//     created together with its first courses in one transaction.
//  2. CourseService covers the course lifecycle: list, get, create, full
//     replacement with upsert, partial update through reconcile, and delete.
//
// Error handling:
//   - Expected conditions surface as the sentinels in errors.go.
//   - Client errors from the patch and validation packages pass through
//     unchanged so the API layer can render them.
//   - Anything else is wrapped in a *ServiceError.
package service
