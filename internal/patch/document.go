package patch

import (
	"strings"
)

// Field identifies one editable field of a course document.
type Field int

// Editable fields, in declaration order.
const (
	FieldTitle Field = iota + 1
	FieldDescription
)

// fieldNames maps each field to its JSON name.
var fieldNames = map[Field]string{
	FieldTitle:       "title",
	FieldDescription: "description",
}

// String returns the JSON name of the field.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// Pointer returns the JSON pointer addressing the field.
func (f Field) Pointer() string {
	return "/" + f.String()
}

// Document is the updatable view of a course.
type Document struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Get returns the current value of a field.
func (d Document) Get(f Field) string {
	switch f {
	case FieldTitle:
		return d.Title
	case FieldDescription:
		return d.Description
	default:
		return ""
	}
}

// set assigns a field. Unknown fields are ignored; parsing never produces them.
func (d *Document) set(f Field, value string) {
	switch f {
	case FieldTitle:
		d.Title = value
	case FieldDescription:
		d.Description = value
	}
}

var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

// resolvePointer maps a JSON pointer onto a document field. Names match
// case-insensitively; the root pointer, nested pointers and unknown names
// do not resolve.
func resolvePointer(pointer string) (Field, bool) {
	if !strings.HasPrefix(pointer, "/") {
		return 0, false
	}

	token := pointer[1:]
	if strings.Contains(token, "/") {
		return 0, false
	}
	token = pointerUnescaper.Replace(token)

	for field, name := range fieldNames {
		if strings.EqualFold(token, name) {
			return field, true
		}
	}
	return 0, false
}
