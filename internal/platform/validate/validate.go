// Package validate checks the shape of inbound request DTOs with
// go-playground/validator. Content rules for form fields live in
// domain/validation; this package only rejects malformed requests.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aladdinnow/forms-service/internal/domain"
	"github.com/aladdinnow/forms-service/internal/domain/validation"
)

// TagFieldKind accepts a string naming a supported validation.Kind.
const TagFieldKind = "field_kind"

// Validator wraps a configured *validator.Validate. It is safe for
// concurrent use once built.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator that reports fields by their JSON names and knows
// the custom tags used by the HTTP DTOs.
func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation(TagFieldKind, fieldKind); err != nil {
		return nil, fmt.Errorf("registering %s: %w", TagFieldKind, err)
	}

	return &Validator{v: v}, nil
}

// MustNew is New for package-level wiring where a failure is a programming
// error.
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Struct validates s against its `validate` tags. Violations come back as a
// *domain.ValidationError keyed by JSON path (e.g. "fields[1].field").
func (val *Validator) Struct(s any) error {
	return toDomain(val.v.Struct(s))
}

// Var validates a single value against tag. Violations are reported under
// name.
func (val *Validator) Var(name string, field any, tag string) error {
	err := val.v.Var(field, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	return &domain.ValidationError{Fields: map[string]string{name: message(verrs[0])}}
}

func fieldKind(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return validation.Kind(fl.Field().String()).IsValid()
}

func toDomain(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[path(fe)] = message(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

// path drops the top-level struct name from the namespace.
func path(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + fe.Param()
	case TagFieldKind:
		return fmt.Sprintf("unsupported field kind %q", fmt.Sprint(fe.Value()))
	default:
		return "is invalid"
	}
}
