package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "organization"}
		assert.Equal(t, "organization not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "organization"}
		err2 := &NotFoundError{Entity: "organization"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrOrganizationNotFound, ErrAssetNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrOrganizationNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrOrganizationNotFound)))
		assert.False(t, IsNotFound(ErrInvalidRole))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "organization already exists with this slug or owner", ErrOrganizationExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "asset"}
		assert.Equal(t, "asset already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(fmt.Errorf("insert: %w", ErrOrganizationExists)))
		assert.False(t, IsAlreadyExists(ErrOrganizationNotFound))
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("Single error message", func(t *testing.T) {
		err := &ValidationError{Field: "slug", Message: "too short"}
		assert.Equal(t, "validation error: slug - too short", err.Error())
	})

	t.Run("List keeps every violation", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "slug", Message: "too short"},
			{Field: "ownerEmail", Message: "must be a valid email address"},
		}
		assert.Equal(t, []string{"slug", "ownerEmail"}, errs.Fields())
		assert.Contains(t, errs.Error(), "slug: too short")
		assert.Contains(t, errs.Error(), "ownerEmail: must be a valid email address")
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("email", "invalid")))
		assert.True(t, IsValidation(ValidationErrors{{Field: "slug", Message: "x"}}))
		assert.False(t, IsValidation(ErrOrganizationNotFound))
	})
}

func TestOnboardingError(t *testing.T) {
	t.Run("Kind drives the default message", func(t *testing.T) {
		err := NewOnboardingError(KindSlugTaken, nil)
		assert.Equal(t, "This portal URL is already taken. Please choose another.", err.Message)
		assert.Equal(t, "slug_taken: This portal URL is already taken. Please choose another.", err.Error())
	})

	t.Run("errors.Is matches on kind", func(t *testing.T) {
		err := NewOnboardingError(KindDuplicateOwner, nil)
		assert.True(t, errors.Is(err, ErrDuplicateOwner))
		assert.False(t, errors.Is(err, ErrSlugTaken))
	})

	t.Run("Cause stays reachable", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := NewOnboardingError(KindPersistenceFailed, cause)
		assert.True(t, errors.Is(err, cause))
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("KindOf", func(t *testing.T) {
		assert.Equal(t, KindUploadFailed, KindOf(fmt.Errorf("x: %w", NewOnboardingError(KindUploadFailed, nil))))
		assert.Equal(t, KindInternalError, KindOf(errors.New("plain")))
	})

	t.Run("Unknown kind falls back to the generic message", func(t *testing.T) {
		assert.Equal(t, "An unexpected error occurred. Please try again", Kind("other").Message())
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewAuthenticationError", func(t *testing.T) {
		err := NewAuthenticationError("token expired")
		assert.Equal(t, "token expired", err.Error())
		assert.True(t, IsAuthentication(err))
		assert.True(t, IsAuthentication(ErrPrincipalNotFound))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		err := NewConfigurationError("bucket missing")
		assert.True(t, IsConfiguration(err))
		assert.False(t, IsConfiguration(ErrInvalidRole))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})
}
