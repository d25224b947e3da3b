package validation

import (
	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo's Validator interface
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that checks `validate` struct tags
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate validates a request struct
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// MissingFields lists the JSON-path namespaces of the fields that failed
// validation, or nil when err is not a validation error
func MissingFields(err error) []string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Namespace())
	}
	return fields
}
