package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/idea-vault/models"
)

// Idea field names as they appear in request payloads.
const (
	FieldTitle                  = "title"
	FieldDescription            = "description"
	FieldProblem                = "problem"
	FieldSolution               = "solution"
	FieldTargetMarket           = "targetMarket"
	FieldUniqueValueProposition = "uniqueValueProposition"
	FieldBusinessModel          = "businessModel"
	FieldCompetitors            = "competitors"
	FieldStatus                 = "status"
)

type lengthBounds struct {
	min int
	max int
}

var ideaFieldBounds = map[string]lengthBounds{
	FieldTitle:                  {min: 5, max: 100},
	FieldDescription:            {min: 10, max: 1000},
	FieldProblem:                {min: 10, max: 500},
	FieldSolution:               {min: 10, max: 1000},
	FieldTargetMarket:           {min: 5, max: 200},
	FieldUniqueValueProposition: {min: 10, max: 300},
	FieldBusinessModel:          {min: 10, max: 500},
	FieldCompetitors:            {min: 5, max: 300},
}

// ideaFieldOrder keeps violation reporting deterministic: map iteration
// order would shuffle messages between runs.
var ideaFieldOrder = []string{
	FieldTitle,
	FieldDescription,
	FieldProblem,
	FieldSolution,
	FieldTargetMarket,
	FieldUniqueValueProposition,
	FieldBusinessModel,
	FieldCompetitors,
}

// IdeaValidator checks idea payloads against per-field length bounds and
// the status enumeration.
type IdeaValidator struct{}

func NewIdeaValidator() *IdeaValidator {
	return &IdeaValidator{}
}

// Validate checks the given models.IdeaInput. A nil return means every
// requested field passed; otherwise the returned error is a
// *ValidationErrors listing all violations found.
func (v *IdeaValidator) Validate(_ context.Context, value any, fields ...string) error {
	var input models.IdeaInput
	switch val := value.(type) {
	case models.IdeaInput:
		input = val
	case *models.IdeaInput:
		input = *val
	default:
		return fmt.Errorf("idea validator: %w", ErrUnsupportedType)
	}

	if len(fields) == 0 {
		fields = append(append([]string{}, ideaFieldOrder...), FieldStatus)
	}

	violations := &ValidationErrors{}
	for _, field := range fields {
		if field == FieldStatus {
			v.checkStatus(input.Status, violations)
			continue
		}

		bounds, known := ideaFieldBounds[field]
		if !known {
			return fmt.Errorf("idea validator: %q: %w", field, ErrUnknownField)
		}
		v.checkLength(field, ideaFieldValue(input, field), bounds, violations)
	}

	return violations.orNil()
}

func (v *IdeaValidator) checkLength(field, value string, bounds lengthBounds, violations *ValidationErrors) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		violations.add(field, field+" is required")
		return
	}

	length := utf8.RuneCountInString(trimmed)
	if length < bounds.min || length > bounds.max {
		violations.add(field, fmt.Sprintf("%s must be between %d and %d characters long", field, bounds.min, bounds.max))
	}
}

func (v *IdeaValidator) checkStatus(status models.IdeaStatus, violations *ValidationErrors) {
	// empty status is filled with the default at creation time
	if status == "" {
		return
	}
	if !status.IsValid() {
		violations.add(FieldStatus, "status must be one of: draft, submitted, reviewed, accepted, rejected")
	}
}

func ideaFieldValue(input models.IdeaInput, field string) string {
	switch field {
	case FieldTitle:
		return input.Title
	case FieldDescription:
		return input.Description
	case FieldProblem:
		return input.Problem
	case FieldSolution:
		return input.Solution
	case FieldTargetMarket:
		return input.TargetMarket
	case FieldUniqueValueProposition:
		return input.UniqueValueProposition
	case FieldBusinessModel:
		return input.BusinessModel
	case FieldCompetitors:
		return input.Competitors
	default:
		return ""
	}
}
