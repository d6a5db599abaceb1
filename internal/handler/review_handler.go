package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/snaapco/snaap_api/internal/service"
	"github.com/snaapco/snaap_api/internal/utils"
)

// ReviewHandler handles public review submission/reads and admin moderation.
type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListProductReviews handles GET /api/products/:id/reviews — approved
// reviews only. The special id "all" aggregates across every product.
func (h *ReviewHandler) ListProductReviews(c *gin.Context) {
	var productID *int
	if raw := c.Param("id"); raw != "all" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.Fail(c, 400, "INVALID_ID", "Invalid product ID")
			return
		}
		productID = &id
	}

	reviews, err := h.reviewService.ListApproved(productID)
	if err != nil {
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to fetch reviews")
		return
	}

	utils.OK(c, gin.H{"reviews": reviews})
}

// SubmitReview handles POST /api/products/:id/reviews
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	var req service.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.FailValidation(c, []string{"rating must be a number between 1 and 5"})
		return
	}

	if _, err := h.reviewService.Submit(productID, &req); err != nil {
		if ve, ok := utils.AsValidation(err); ok {
			utils.FailValidation(c, ve.Messages)
			return
		}
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to submit review")
		return
	}

	utils.Created(c, gin.H{"message": "Review submitted and pending approval"})
}

// ListAllReviews handles GET /api/admin/reviews (moderation view)
func (h *ReviewHandler) ListAllReviews(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	reviews, total, err := h.reviewService.ListAll(page, limit)
	if err != nil {
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to fetch reviews")
		return
	}

	utils.OK(c, gin.H{
		"reviews":    reviews,
		"pagination": utils.NewPagination(total, page, limit),
	})
}

// ApproveReview handles PATCH /api/admin/reviews/:id/approve
func (h *ReviewHandler) ApproveReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, 400, "INVALID_ID", "Invalid review ID")
		return
	}

	review, err := h.reviewService.Approve(id)
	if err != nil {
		if errors.Is(err, utils.ErrReviewNotFound) {
			utils.Fail(c, 404, "NOT_FOUND", "Review not found")
			return
		}
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to approve review")
		return
	}

	utils.OK(c, gin.H{
		"message": "Review approved",
		"review":  review,
	})
}

// DeleteReview handles DELETE /api/admin/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, 400, "INVALID_ID", "Invalid review ID")
		return
	}

	if err := h.reviewService.Delete(id); err != nil {
		if errors.Is(err, utils.ErrReviewNotFound) {
			utils.Fail(c, 404, "NOT_FOUND", "Review not found")
			return
		}
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to delete review")
		return
	}

	utils.OK(c, gin.H{"message": "Review deleted"})
}
