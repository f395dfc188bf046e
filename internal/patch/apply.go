package patch

// Apply runs ops against a copy of base in order. If any operation fails, the
// zero Document and an *ApplyError are returned; base is never modified and
// no partially patched document escapes.
func Apply(base Document, ops []Operation) (Document, error) {
	doc := base
	for i, op := range ops {
		if err := doc.apply(op); err != nil {
			return Document{}, &ApplyError{
				Index: i,
				Op:    op.Kind,
				Path:  op.Path.Pointer(),
				Err:   err,
			}
		}
	}
	return doc, nil
}

func (d *Document) apply(op Operation) error {
	switch op.Kind {
	case OpAdd, OpReplace:
		// Scalar fields only, so add and replace both overwrite.
		d.set(op.Path, op.Value)
	case OpRemove:
		d.set(op.Path, "")
	case OpMove:
		if op.From == op.Path {
			return ErrInvalidPath
		}
		value := d.Get(op.From)
		d.set(op.From, "")
		d.set(op.Path, value)
	case OpCopy:
		d.set(op.Path, d.Get(op.From))
	case OpTest:
		if d.Get(op.Path) != op.Value {
			return ErrTestFailed
		}
	default:
		return ErrInvalidPath
	}
	return nil
}
