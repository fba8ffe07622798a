package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aladdinnow/forms-service/internal/domain"
	"github.com/aladdinnow/forms-service/internal/platform/validate"
)

type item struct {
	Field string `json:"field" validate:"required,field_kind"`
	Value string `json:"value"`
}

type batch struct {
	Fields []item `json:"fields" validate:"required,min=1,max=3,dive"`
	Note   string `json:"-" validate:"max=2"`
}

func TestStruct_Valid(t *testing.T) {
	t.Parallel()

	v := validate.MustNew()
	err := v.Struct(batch{Fields: []item{{Field: "email"}, {Field: "phone", Value: "x"}}})
	require.NoError(t, err)
}

func TestStruct_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  batch
		fields map[string]string
	}{
		{
			name:   "missing fields",
			input:  batch{},
			fields: map[string]string{"fields": "is required"},
		},
		{
			name:   "empty fields",
			input:  batch{Fields: []item{}},
			fields: map[string]string{"fields": "must contain at least 1 item(s)"},
		},
		{
			name:   "too many fields",
			input:  batch{Fields: []item{{Field: "email"}, {Field: "email"}, {Field: "email"}, {Field: "email"}}},
			fields: map[string]string{"fields": "must contain at most 3 item(s)"},
		},
		{
			name:  "bad kind and missing kind",
			input: batch{Fields: []item{{Field: "email"}, {Field: "zip"}, {}}},
			fields: map[string]string{
				"fields[1].field": `unsupported field kind "zip"`,
				"fields[2].field": "is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validate.MustNew().Struct(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.fields, verr.Fields)
		})
	}
}

func TestStruct_IgnoredJSONFieldUsesGoName(t *testing.T) {
	t.Parallel()

	err := validate.MustNew().Struct(batch{Fields: []item{{Field: "email"}}, Note: "long"})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "Note")
}

func TestVar_FieldKind(t *testing.T) {
	t.Parallel()

	v := validate.MustNew()

	for _, kind := range []string{"email", "password", "password_confirmation", "business_name", "phone"} {
		assert.NoError(t, v.Var("field", kind, "required,field_kind"), kind)
	}

	err := v.Var("field", "ssn", "required,field_kind")
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, `unsupported field kind "ssn"`, verr.Fields["field"])
}

func TestStruct_NonStructIsNotValidationError(t *testing.T) {
	t.Parallel()

	err := validate.MustNew().Struct(42)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}
