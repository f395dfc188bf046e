// Package validation is the gate every course document passes through before
// it is persisted. It evaluates the declared field constraints of a profile
// plus the title/description cross-field rule and reports every violation,
// not just the first.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/phrazzld/course-library-api/internal/patch"
)

// Code identifies the rule a violation broke.
type Code string

// Violation codes.
const (
	CodeRequired                       Code = "Required"
	CodeMaxLength                      Code = "MaxLength"
	CodeDescriptionMustDifferFromTitle Code = "DescriptionMustDifferFromTitle"
	CodeInvalid                        Code = "Invalid"
)

// Field length limits.
const (
	TitleMaxLength       = 100
	DescriptionMaxLength = 1500
)

// Violation is one failed rule on one field.
type Violation struct {
	Field   string `json:"field"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Error carries the full list of violations for a rejected document.
type Error struct {
	Violations []Violation
}

// Error implements the error interface.
func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Code))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Profile selects the constraint set active for an operation context.
// Full replacement requires a description; creation and patching by default
// do not.
type Profile struct {
	Name               string
	RequireDescription bool
}

// Built-in profiles.
var (
	ManipulationProfile = Profile{Name: "manipulation"}
	UpdateProfile       = Profile{Name: "update", RequireDescription: true}
)

// ProfileByName returns the built-in profile with the given name.
func ProfileByName(name string) (Profile, error) {
	switch name {
	case ManipulationProfile.Name:
		return ManipulationProfile, nil
	case UpdateProfile.Name:
		return UpdateProfile, nil
	default:
		return Profile{}, fmt.Errorf("unknown validation profile %q", name)
	}
}

type fieldRule struct {
	field patch.Field
	tag   string
}

// rules returns the field constraints in declaration order.
func (p Profile) rules() []fieldRule {
	descriptionTag := fmt.Sprintf("max=%d", DescriptionMaxLength)
	if p.RequireDescription {
		descriptionTag = "required,notblank," + descriptionTag
	}
	return []fieldRule{
		{field: patch.FieldTitle, tag: fmt.Sprintf("required,notblank,max=%d", TitleMaxLength)},
		{field: patch.FieldDescription, tag: descriptionTag},
	}
}

// validate is shared; validator instances are safe for concurrent use.
var validate = newValidator()

// newValidator adds notblank, which rejects whitespace-only strings that
// pass required.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		// ALLOW-PANIC: static registration cannot fail at runtime
		panic(err)
	}
	return v
}

// Validate evaluates every rule of the profile against doc and returns all
// violations in declaration order: title, description, then the cross-field
// rule. An empty result means the document is valid.
func Validate(doc patch.Document, profile Profile) []Violation {
	var violations []Violation

	for _, rule := range profile.rules() {
		err := validate.Var(doc.Get(rule.field), rule.tag)
		violations = append(violations, toViolations(rule.field, err)...)
	}

	// Only a non-empty description can collide with the title.
	if doc.Description != "" {
		if err := validate.VarWithValue(doc.Description, doc.Title, "nefield"); err != nil {
			violations = append(violations, Violation{
				Field:   patch.FieldDescription.String(),
				Code:    CodeDescriptionMustDifferFromTitle,
				Message: "The provided description should be different from the title.",
			})
		}
	}

	return violations
}

// Check runs Validate and wraps any violations in an *Error.
func Check(doc patch.Document, profile Profile) error {
	if violations := Validate(doc, profile); len(violations) > 0 {
		return &Error{Violations: violations}
	}
	return nil
}

func toViolations(field patch.Field, err error) []Violation {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Violation{{Field: field.String(), Code: CodeInvalid, Message: err.Error()}}
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, violationFor(field, fe))
	}
	return violations
}

func violationFor(field patch.Field, fe validator.FieldError) Violation {
	name := field.String()
	switch fe.Tag() {
	case "required", "notblank":
		message := fmt.Sprintf("The %s field is required.", name)
		if field == patch.FieldTitle {
			message = "You should fill out a title."
		}
		return Violation{Field: name, Code: CodeRequired, Message: message}
	case "max":
		return Violation{
			Field:   name,
			Code:    CodeMaxLength,
			Message: fmt.Sprintf("The %s field must be at most %s characters long.", name, fe.Param()),
		}
	default:
		return Violation{Field: name, Code: CodeInvalid, Message: fmt.Sprintf("The %s field is invalid.", name)}
	}
}
