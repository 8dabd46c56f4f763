// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"routecast/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// FieldError describes one rejected field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationErrors is returned by Validate when a struct fails its rules.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + " failed " + fe.Rule
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New reports fields by their JSON names.
func New() *Validator {
	v := playground.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &Validator{validate: v}
}

func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, FieldError{
			Field: strings.TrimPrefix(fe.Namespace(), topLevel(fe.Namespace())),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return out
}

// topLevel returns the struct name prefix of a namespace such as "RouteRequest.start.lat".
func topLevel(namespace string) string {
	if idx := strings.IndexByte(namespace, '.'); idx >= 0 {
		return namespace[:idx+1]
	}

	return ""
}
