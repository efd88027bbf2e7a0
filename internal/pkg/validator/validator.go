package validator

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Message turns a gin binding failure into a short user-facing summary.
// Anything that is not a field validation error (malformed JSON, wrong
// types) gets a generic message.
func Message(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "Invalid request body"
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, describe(fe))
	}
	return strings.Join(parts, "; ")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " needs at least " + fe.Param() + " entry"
	case "datetime":
		return fe.Field() + " must be a YYYY-MM-DD date"
	default:
		return fe.Field() + " is invalid"
	}
}
