package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Ademola7/BlogApi/internal/errors"
	"github.com/Ademola7/BlogApi/internal/validation"
)

type sampleInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Bio   string `json:"bio" validate:"omitempty,max=10"`
}

func TestStruct(t *testing.T) {
	t.Run("accepts valid input", func(t *testing.T) {
		err := validation.Struct(sampleInput{Name: "Jane", Email: "jane@x.com"})
		assert.NoError(t, err)
	})

	t.Run("collects every violation", func(t *testing.T) {
		err := validation.Struct(sampleInput{Bio: "way too long for the limit"})

		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Len(t, validationErr.Violations, 3)
	})

	t.Run("reports wire field names", func(t *testing.T) {
		err := validation.Struct(sampleInput{Name: "Jane", Email: "not-an-email"})

		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Len(t, validationErr.Violations, 1)
		assert.Equal(t, "email", validationErr.Violations[0].Field)
		assert.Equal(t, "email must be a valid email address", validationErr.Violations[0].Message)
	})
}
