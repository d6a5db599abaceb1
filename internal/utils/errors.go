package utils

import (
	"errors"
	"strings"
)

// Common application errors used across services.
var (
	ErrProductNotFound  = errors.New("PRODUCT_NOT_FOUND")
	ErrCategoryNotFound = errors.New("CATEGORY_NOT_FOUND")
	ErrBrandNotFound    = errors.New("BRAND_NOT_FOUND")
	ErrOrderNotFound    = errors.New("ORDER_NOT_FOUND")
	ErrReviewNotFound   = errors.New("REVIEW_NOT_FOUND")
	ErrDuplicateSKU     = errors.New("DUPLICATE_SKU")
	ErrInvalidSession   = errors.New("INVALID_SESSION")
	ErrInvalidPassword  = errors.New("INVALID_PASSWORD")
	ErrUploadRejected   = errors.New("UPLOAD_REJECTED")
)

// ValidationError carries every violated constraint of a request so the
// caller sees all of them at once, not just the first.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError builds a ValidationError from one or more messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// AsValidation returns the ValidationError wrapped in err, if any.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
