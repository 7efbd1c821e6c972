package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/idea-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validIdeaInput() models.IdeaInput {
	return models.IdeaInput{
		Title:                  "Smart plant watering",
		Description:            "A device that waters houseplants based on soil moisture readings.",
		Problem:                "People forget to water their plants and the plants die.",
		Solution:               "A sensor-driven pump that waters only when the soil is dry.",
		TargetMarket:           "Urban apartment dwellers with houseplants",
		UniqueValueProposition: "Fully automatic watering with no configuration needed.",
		BusinessModel:          "Hardware sales plus a subscription for replacement sensors.",
		Competitors:            "Manual watering globes, smart pots",
		Status:                 models.StatusDraft,
	}
}

// ---------------------------------------------------------------------------
// TestNewIdeaValidator
// ---------------------------------------------------------------------------

func TestNewIdeaValidator(t *testing.T) {
	v := NewIdeaValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestIdeaValidate_Dispatch
// ---------------------------------------------------------------------------

func TestIdeaValidate_Dispatch(t *testing.T) {
	v := NewIdeaValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("IdeaInput value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validIdeaInput()))
	})

	t.Run("IdeaInput pointer", func(t *testing.T) {
		in := validIdeaInput()
		require.NoError(t, v.Validate(ctx, &in))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, validIdeaInput(), "nonexistent")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestIdeaValidate_LengthBounds
// ---------------------------------------------------------------------------

func TestIdeaValidate_LengthBounds(t *testing.T) {
	v := NewIdeaValidator()
	ctx := context.Background()

	cases := []struct {
		field string
		min   int
		max   int
	}{
		{FieldTitle, 5, 100},
		{FieldDescription, 10, 1000},
		{FieldProblem, 10, 500},
		{FieldSolution, 10, 1000},
		{FieldTargetMarket, 5, 200},
		{FieldUniqueValueProposition, 10, 300},
		{FieldBusinessModel, 10, 500},
		{FieldCompetitors, 5, 300},
	}

	setField := func(in *models.IdeaInput, field, value string) {
		switch field {
		case FieldTitle:
			in.Title = value
		case FieldDescription:
			in.Description = value
		case FieldProblem:
			in.Problem = value
		case FieldSolution:
			in.Solution = value
		case FieldTargetMarket:
			in.TargetMarket = value
		case FieldUniqueValueProposition:
			in.UniqueValueProposition = value
		case FieldBusinessModel:
			in.BusinessModel = value
		case FieldCompetitors:
			in.Competitors = value
		}
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			t.Run("empty is required", func(t *testing.T) {
				in := validIdeaInput()
				setField(&in, tc.field, "")
				fields := fieldErrors(t, v.Validate(ctx, in, tc.field))
				require.Len(t, fields, 1)
				assert.Equal(t, tc.field, fields[0].Field)
				assert.Contains(t, fields[0].Message, "required")
			})

			t.Run("below minimum", func(t *testing.T) {
				in := validIdeaInput()
				setField(&in, tc.field, strings.Repeat("a", tc.min-1))
				require.Error(t, v.Validate(ctx, in, tc.field))
			})

			t.Run("at minimum", func(t *testing.T) {
				in := validIdeaInput()
				setField(&in, tc.field, strings.Repeat("a", tc.min))
				require.NoError(t, v.Validate(ctx, in, tc.field))
			})

			t.Run("at maximum", func(t *testing.T) {
				in := validIdeaInput()
				setField(&in, tc.field, strings.Repeat("a", tc.max))
				require.NoError(t, v.Validate(ctx, in, tc.field))
			})

			t.Run("above maximum", func(t *testing.T) {
				in := validIdeaInput()
				setField(&in, tc.field, strings.Repeat("a", tc.max+1))
				require.Error(t, v.Validate(ctx, in, tc.field))
			})
		})
	}
}

// ---------------------------------------------------------------------------
// TestIdeaValidate_SurroundingWhitespace
// ---------------------------------------------------------------------------

func TestIdeaValidate_SurroundingWhitespace(t *testing.T) {
	v := NewIdeaValidator()
	ctx := context.Background()

	// padding does not count toward the minimum length
	in := validIdeaInput()
	in.Title = "   abcd   "
	require.Error(t, v.Validate(ctx, in, FieldTitle))

	in.Title = "   abcde   "
	require.NoError(t, v.Validate(ctx, in, FieldTitle))
}

// ---------------------------------------------------------------------------
// TestIdeaValidate_Status
// ---------------------------------------------------------------------------

func TestIdeaValidate_Status(t *testing.T) {
	v := NewIdeaValidator()
	ctx := context.Background()

	t.Run("all known statuses accepted", func(t *testing.T) {
		for _, status := range []models.IdeaStatus{
			models.StatusDraft,
			models.StatusSubmitted,
			models.StatusReviewed,
			models.StatusAccepted,
			models.StatusRejected,
		} {
			in := validIdeaInput()
			in.Status = status
			require.NoError(t, v.Validate(ctx, in, FieldStatus), "status %q should be valid", status)
		}
	})

	t.Run("empty status left for the default", func(t *testing.T) {
		in := validIdeaInput()
		in.Status = ""
		require.NoError(t, v.Validate(ctx, in, FieldStatus))
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		in := validIdeaInput()
		in.Status = models.IdeaStatus("archived")
		fields := fieldErrors(t, v.Validate(ctx, in, FieldStatus))
		require.Len(t, fields, 1)
		assert.Equal(t, FieldStatus, fields[0].Field)
	})
}

// ---------------------------------------------------------------------------
// TestIdeaValidate_CollectsAllViolations
// ---------------------------------------------------------------------------

func TestIdeaValidate_CollectsAllViolations(t *testing.T) {
	v := NewIdeaValidator()
	ctx := context.Background()

	fields := fieldErrors(t, v.Validate(ctx, models.IdeaInput{}))
	assert.Len(t, fields, len(ideaFieldOrder))
	assert.Equal(t, ideaFieldOrder, fieldNames(fields))
}
