// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"locgate/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator validates request structs using `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return FieldErrors(fieldErrs)
		}

		return errors.WithStack(err)
	}

	return nil
}

// FieldErrors lists the failing fields of a request.
type FieldErrors validator.ValidationErrors

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field()+" failed on "+fe.Tag())
	}

	return strings.Join(parts, "; ")
}

// Details maps each failing field to the rule it broke.
func (e FieldErrors) Details() map[string]string {
	details := make(map[string]string, len(e))
	for _, fe := range e {
		details[fe.Field()] = fe.Tag()
	}

	return details
}
