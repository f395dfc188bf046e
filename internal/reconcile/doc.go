// Package reconcile turns a parsed patch sequence into a persisted course.
//
// A reconciliation walks a fixed sequence of states:
//
//	Start → AuthorChecked → ResourceLookedUp → CreateViaPatch | UpdateViaPatch
//	      → Applied → Validated → Committed
//
// and ends in Rejected when the patch cannot be applied or the resulting
// document fails validation. A missing course is created from a blank
// document under the identifier the caller addressed. Nothing is written
// unless the patched document is valid.
package reconcile
