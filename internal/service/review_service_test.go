package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestValidateSubmitReviewOK(t *testing.T) {
	req := &SubmitReviewRequest{Name: "Jane", Rating: intPtr(4), Comment: "Great phone"}
	assert.Empty(t, ValidateSubmitReview(req))
}

func TestValidateSubmitReviewMissingFields(t *testing.T) {
	req := &SubmitReviewRequest{}
	violations := ValidateSubmitReview(req)
	require.Len(t, violations, 3)
	assert.Contains(t, violations[0], "name")
	assert.Contains(t, violations[1], "comment")
	assert.Contains(t, violations[2], "rating")
}

func TestValidateSubmitReviewRatingBounds(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		req := &SubmitReviewRequest{Name: "Jane", Rating: intPtr(rating), Comment: "ok"}
		violations := ValidateSubmitReview(req)
		require.Len(t, violations, 1, "rating=%d", rating)
		assert.Contains(t, violations[0], "between 1 and 5")
	}
	for _, rating := range []int{1, 3, 5} {
		req := &SubmitReviewRequest{Name: "Jane", Rating: intPtr(rating), Comment: "ok"}
		assert.Empty(t, ValidateSubmitReview(req), "rating=%d", rating)
	}
}

func TestValidateSubmitReviewBlankName(t *testing.T) {
	req := &SubmitReviewRequest{Name: "   ", Rating: intPtr(3), Comment: "ok"}
	violations := ValidateSubmitReview(req)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "name")
}
