package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Author-specific validation errors
var (
	// ErrAuthorIDEmpty is returned when an author ID is nil.
	ErrAuthorIDEmpty = fmt.Errorf("%w: author ID cannot be empty", ErrInvalidID)

	// ErrAuthorNameEmpty is returned when the first or last name is blank.
	ErrAuthorNameEmpty = fmt.Errorf("%w: author name cannot be empty", ErrValidation)

	// ErrAuthorBirthDateInvalid is returned when the date of birth is zero or in the future.
	ErrAuthorBirthDateInvalid = fmt.Errorf("%w: author date of birth is invalid", ErrValidation)
)

// Author is a person who owns courses in the library.
type Author struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	DateOfBirth  time.Time
	MainCategory string
}

// NewAuthor creates an Author with a freshly generated ID.
// Returns an error if validation fails.
func NewAuthor(firstName, lastName string, dateOfBirth time.Time, mainCategory string) (*Author, error) {
	author := &Author{
		ID:           uuid.New(),
		FirstName:    firstName,
		LastName:     lastName,
		DateOfBirth:  dateOfBirth,
		MainCategory: mainCategory,
	}

	if err := author.Validate(); err != nil {
		return nil, err
	}

	return author, nil
}

// Validate checks the invariants every stored author must satisfy.
func (a *Author) Validate() error {
	if a.ID == uuid.Nil {
		return ErrAuthorIDEmpty
	}

	if strings.TrimSpace(a.FirstName) == "" || strings.TrimSpace(a.LastName) == "" {
		return ErrAuthorNameEmpty
	}

	if a.DateOfBirth.IsZero() || a.DateOfBirth.After(time.Now().UTC()) {
		return ErrAuthorBirthDateInvalid
	}

	return nil
}

// Name returns the display name, first name followed by last name.
func (a *Author) Name() string {
	return a.FirstName + " " + a.LastName
}

// AgeAt returns the author's age in whole years at the given instant.
func (a *Author) AgeAt(now time.Time) int {
	dob := a.DateOfBirth.In(now.Location())
	age := now.Year() - dob.Year()

	// Birthday not reached yet this year
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}

	if age < 0 {
		return 0
	}
	return age
}
