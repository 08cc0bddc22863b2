package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError represents a model validation error.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the model for structural issues.
// Returns all validation errors found (not just the first).
func (pm *ProjectModel) Validate() []error {
	var result []error

	if err := validate.Struct(pm); err != nil {
		var valErrs validator.ValidationErrors
		if !errors.As(err, &valErrs) {
			return []error{err}
		}
		for _, fe := range valErrs {
			result = append(result, &ValidationError{
				Code:    "invalid_" + fe.Tag(),
				Message: trimNamespace(fe.Namespace()) + ": " + FormatFieldError(fe),
			})
		}
	}

	// Name checks the validator tags cannot express.
	for _, svc := range pm.RestServices {
		result = appendNameError(result, fmt.Sprintf("service %q", svc.Name), svc.Name)
		for _, m := range svc.Methods {
			result = appendNameError(result, fmt.Sprintf("method %s.%q", svc.Name, m.Name), m.Name)
			for _, p := range m.Params {
				result = appendNameError(result, fmt.Sprintf("parameter %s.%s %q", svc.Name, m.Name, p.Name), p.Name)
			}
		}
	}

	return result
}

// appendNameError appends an invalid_name error for name to errs when name is
// not valid UTF-8 or has surrounding whitespace.
func appendNameError(errs []error, label, name string) []error {
	var problem string
	switch {
	case !utf8.ValidString(name):
		problem = "name is not valid UTF-8"
	case name != strings.TrimSpace(name):
		problem = "name has surrounding whitespace"
	default:
		return errs
	}
	return append(errs, &ValidationError{Code: "invalid_name", Message: label + ": " + problem})
}

// ValidateErr is Validate with the problems joined into a single error, or nil.
func (pm *ProjectModel) ValidateErr() error {
	return errors.Join(pm.Validate()...)
}

// trimNamespace drops the root struct name from a validator namespace:
// "ProjectModel.RestServices[0].Name" becomes "RestServices[0].Name".
func trimNamespace(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// FormatFieldError converts a validator.FieldError to a human-readable message.
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "unique":
		if fe.Param() != "" {
			return fmt.Sprintf("must have unique %s values", fe.Param())
		}
		return "must contain unique values"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
