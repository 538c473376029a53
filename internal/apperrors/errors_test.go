package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/property_finance/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	err := apperrors.NewAppError(400, "invalid date", apperrors.ErrValidation)
	assert.Equal(t, "invalid date: validation error", err.Error())
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	wrapped := fmt.Errorf("handler: %w", err)
	var appErr *apperrors.AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, 400, appErr.Code)

	assert.Equal(t, "boom", apperrors.NewAppError(500, "boom", nil).Error())
}
