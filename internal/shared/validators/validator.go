package validators

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance. Instances cache struct metadata, so callers
// validating many values of one type should keep theirs around.
func New() *Validate {
	return validator.New()
}

// FieldErrors returns the per-field failures carried by err, or nil when err is not
// a validation failure.
func FieldErrors(err error) []FieldError {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
