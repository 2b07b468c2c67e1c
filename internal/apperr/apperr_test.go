package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse-backend/internal/apperr"
)

func TestKindOfSurvivesWrapping(t *testing.T) {
	base := apperr.New(apperr.KindConflict, "subdomain is already in use")
	wrapped := fmt.Errorf("signup failed: %w", base)

	require.Equal(t, apperr.KindConflict, apperr.KindOf(wrapped))
	require.True(t, errors.Is(wrapped, base))
}

func TestKindOfUnclassifiedIsInternal(t *testing.T) {
	require.Equal(t, apperr.KindInternal, apperr.KindOf(errors.New("boom")))
	require.Equal(t, apperr.KindInternal, apperr.KindOf(nil))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Wrap(apperr.KindInternal, "database unavailable", cause)

	require.Equal(t, "database unavailable", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestValidationCollectsAllViolations(t *testing.T) {
	require.NoError(t, apperr.Validation(nil))

	err := apperr.Validation([]string{"Email is required", "Password is required"})
	require.Error(t, err)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	var v *apperr.ValidationError
	require.True(t, errors.As(err, &v))
	require.Len(t, v.Violations, 2)
}
