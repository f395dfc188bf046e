// Package patch implements the partial-update model for courses: a typed
// representation of RFC 6902 style operations (add, remove, replace, move,
// copy, test) addressed at the editable fields of a course, and an applier
// that runs a sequence of them against a Document.
//
// The document shape is flat, two string fields, so pointers resolve to a
// Field rather than walking a tree. Parsing rejects anything that does not
// name one of those fields; applying is all-or-nothing.
package patch
