package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("name is required", "price must be a number")
	assert.Equal(t, "validation failed: name is required; price must be a number", err.Error())

	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Messages, 2)
}

func TestAsValidationWrapped(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", NewValidationError("phone number is required"))
	ve, ok := AsValidation(wrapped)
	require.True(t, ok)
	assert.Equal(t, []string{"phone number is required"}, ve.Messages)
}

func TestAsValidationOtherError(t *testing.T) {
	_, ok := AsValidation(ErrProductNotFound)
	assert.False(t, ok)

	_, ok = AsValidation(nil)
	assert.False(t, ok)
}
