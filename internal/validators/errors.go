package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/idea-vault/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationErrors aggregates every per-field violation discovered in one
// validation pass. It implements the error interface so it can travel
// through the usual error-return plumbing, and the HTTP boundary unwraps
// it with [errors.As] to emit per-field messages.
type ValidationErrors struct {
	Fields []models.FieldError
}

// Error implements the error interface by joining all field messages.
func (v *ValidationErrors) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// add records one violation.
func (v *ValidationErrors) add(field, message string) {
	v.Fields = append(v.Fields, models.FieldError{Field: field, Message: message})
}

// orNil returns the receiver as an error when at least one violation was
// recorded, nil otherwise.
func (v *ValidationErrors) orNil() error {
	if len(v.Fields) == 0 {
		return nil
	}
	return v
}
