package validation

import (
	"strings"
	"testing"

	"github.com/phrazzld/course-library-api/internal/patch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(violations []Violation) []Code {
	out := make([]Code, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Code)
	}
	return out
}

func TestValidate(t *testing.T) {
	longTitle := strings.Repeat("t", TitleMaxLength+1)
	longDescription := strings.Repeat("d", DescriptionMaxLength+1)

	tests := []struct {
		name    string
		doc     patch.Document
		profile Profile
		want    []Code
		fields  []string
	}{
		{
			name:    "valid document",
			doc:     patch.Document{Title: "A", Description: "B"},
			profile: ManipulationProfile,
			want:    []Code{},
		},
		{
			name:    "description optional by default",
			doc:     patch.Document{Title: "A"},
			profile: ManipulationProfile,
			want:    []Code{},
		},
		{
			name:    "empty title only reports required",
			doc:     patch.Document{},
			profile: ManipulationProfile,
			want:    []Code{CodeRequired},
			fields:  []string{"title"},
		},
		{
			name:    "whitespace title reports required",
			doc:     patch.Document{Title: " \t\n"},
			profile: ManipulationProfile,
			want:    []Code{CodeRequired},
			fields:  []string{"title"},
		},
		{
			name:    "whitespace description allowed when optional",
			doc:     patch.Document{Title: "A", Description: "  "},
			profile: ManipulationProfile,
			want:    []Code{},
		},
		{
			name:    "whitespace description under update profile",
			doc:     patch.Document{Title: "A", Description: "  "},
			profile: UpdateProfile,
			want:    []Code{CodeRequired},
			fields:  []string{"description"},
		},
		{
			name:    "description equal to title",
			doc:     patch.Document{Title: "X", Description: "X"},
			profile: ManipulationProfile,
			want:    []Code{CodeDescriptionMustDifferFromTitle},
			fields:  []string{"description"},
		},
		{
			name:    "comparison is case-sensitive",
			doc:     patch.Document{Title: "X", Description: "x"},
			profile: ManipulationProfile,
			want:    []Code{},
		},
		{
			name:    "comparison does not trim",
			doc:     patch.Document{Title: "X", Description: "X "},
			profile: ManipulationProfile,
			want:    []Code{},
		},
		{
			name:    "title too long",
			doc:     patch.Document{Title: longTitle},
			profile: ManipulationProfile,
			want:    []Code{CodeMaxLength},
			fields:  []string{"title"},
		},
		{
			name:    "title at limit",
			doc:     patch.Document{Title: strings.Repeat("é", TitleMaxLength)},
			profile: ManipulationProfile,
			want:    []Code{},
		},
		{
			name:    "every rule collected in declaration order",
			doc:     patch.Document{Title: longDescription, Description: longDescription},
			profile: ManipulationProfile,
			want:    []Code{CodeMaxLength, CodeMaxLength, CodeDescriptionMustDifferFromTitle},
			fields:  []string{"title", "description", "description"},
		},
		{
			name:    "update profile requires description",
			doc:     patch.Document{Title: "A"},
			profile: UpdateProfile,
			want:    []Code{CodeRequired},
			fields:  []string{"description"},
		},
		{
			name:    "update profile with both missing",
			doc:     patch.Document{},
			profile: UpdateProfile,
			want:    []Code{CodeRequired, CodeRequired},
			fields:  []string{"title", "description"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Validate(tc.doc, tc.profile)
			assert.Equal(t, tc.want, codes(got))
			for i, field := range tc.fields {
				assert.Equal(t, field, got[i].Field)
				assert.NotEmpty(t, got[i].Message)
			}
		})
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	doc := patch.Document{Title: "", Description: strings.Repeat("d", DescriptionMaxLength+1)}
	first := Validate(doc, UpdateProfile)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Validate(doc, UpdateProfile))
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(patch.Document{Title: "A"}, ManipulationProfile))

	err := Check(patch.Document{Title: "X", Description: "X"}, ManipulationProfile)
	var validationErr *Error
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Violations, 1)
	assert.Equal(t, "The provided description should be different from the title.", validationErr.Violations[0].Message)
	assert.Contains(t, err.Error(), "DescriptionMustDifferFromTitle")
}

func TestProfileByName(t *testing.T) {
	p, err := ProfileByName("update")
	require.NoError(t, err)
	assert.True(t, p.RequireDescription)

	p, err = ProfileByName("manipulation")
	require.NoError(t, err)
	assert.False(t, p.RequireDescription)

	_, err = ProfileByName("strict")
	assert.Error(t, err)
}
