package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind is the operation name as it appears in the "op" member.
type Kind string

// Supported operation kinds.
const (
	OpAdd     Kind = "add"
	OpRemove  Kind = "remove"
	OpReplace Kind = "replace"
	OpMove    Kind = "move"
	OpCopy    Kind = "copy"
	OpTest    Kind = "test"
)

// Operation is one parsed edit instruction. From is set for move and copy
// only; Value is meaningful for add, replace and test only.
type Operation struct {
	Kind  Kind
	Path  Field
	From  Field
	Value string
}

// RawOperation is an operation descriptor as decoded from a request body.
// Pointers and the raw value distinguish an absent member from an empty one.
type RawOperation struct {
	Op    string          `json:"op"`
	Path  *string         `json:"path,omitempty"`
	From  *string         `json:"from,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// ParseJSON decodes a JSON array of operation descriptors and parses it.
// An empty array is a valid, empty sequence.
func ParseJSON(data []byte) ([]Operation, error) {
	var raw []RawOperation
	// A literal null decodes without error but leaves raw nil.
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return nil, &MalformedPatchError{
			Index:  -1,
			Reason: "body must be a JSON array of patch operations",
		}
	}
	return Parse(raw)
}

// Parse converts raw descriptors into typed operations, preserving order.
// It fails on the first descriptor that is not a well-formed operation on
// an editable field.
func Parse(raw []RawOperation) ([]Operation, error) {
	ops := make([]Operation, 0, len(raw))
	for i, r := range raw {
		op, err := parseOperation(i, r)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseOperation(index int, r RawOperation) (Operation, error) {
	malformed := func(format string, args ...any) error {
		return &MalformedPatchError{Index: index, Op: r.Op, Reason: fmt.Sprintf(format, args...)}
	}

	kind := Kind(r.Op)
	switch kind {
	case OpAdd, OpRemove, OpReplace, OpMove, OpCopy, OpTest:
	case "":
		return Operation{}, malformed("op is required")
	default:
		return Operation{}, malformed("unsupported operation %q", r.Op)
	}

	if r.Path == nil {
		return Operation{}, malformed("path is required")
	}
	path, ok := resolvePointer(*r.Path)
	if !ok {
		return Operation{}, malformed("path %q does not address an editable field", *r.Path)
	}

	op := Operation{Kind: kind, Path: path}

	switch kind {
	case OpAdd, OpReplace, OpTest:
		if r.Value == nil {
			return Operation{}, malformed("value is required")
		}
		value, err := decodeValue(r.Value)
		if err != nil {
			return Operation{}, malformed("value for %s must be a string", path.Pointer())
		}
		op.Value = value
	case OpMove, OpCopy:
		if r.From == nil {
			return Operation{}, malformed("from is required")
		}
		from, ok := resolvePointer(*r.From)
		if !ok {
			return Operation{}, malformed("from %q does not address an editable field", *r.From)
		}
		op.From = from
	}

	return op, nil
}

// decodeValue accepts a JSON string or null; null reads as the empty string.
func decodeValue(raw json.RawMessage) (string, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}
