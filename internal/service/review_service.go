package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/snaapco/snaap_api/internal/models"
	"github.com/snaapco/snaap_api/internal/repository"
	"github.com/snaapco/snaap_api/internal/utils"
)

// ReviewService implements the review moderation workflow: public
// submissions land pending, admins approve or delete, public reads see only
// approved reviews.
type ReviewService struct {
	reviewRepo *repository.ReviewRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

// SubmitReviewRequest is the public review submission payload. Rating
// arrives as a raw JSON number or string so out-of-range and non-numeric
// values both surface as validation errors.
type SubmitReviewRequest struct {
	Name     string `json:"name"`
	Whatsapp string `json:"whatsapp"`
	Rating   *int   `json:"rating"`
	Comment  string `json:"comment"`
}

// ValidateSubmitReview collects every violated constraint of the request.
func ValidateSubmitReview(req *SubmitReviewRequest) []string {
	var violations []string
	if strings.TrimSpace(req.Name) == "" {
		violations = append(violations, "name is required")
	}
	if strings.TrimSpace(req.Comment) == "" {
		violations = append(violations, "comment is required")
	}
	if req.Rating == nil {
		violations = append(violations, "rating is required")
	} else if *req.Rating < 1 || *req.Rating > 5 {
		violations = append(violations, "rating must be a number between 1 and 5")
	}
	return violations
}

// Submit stores a new review pending approval.
func (s *ReviewService) Submit(productID int, req *SubmitReviewRequest) (*models.Review, error) {
	if violations := ValidateSubmitReview(req); len(violations) > 0 {
		return nil, utils.NewValidationError(violations...)
	}

	review := &models.Review{
		ProductID: productID,
		Name:      req.Name,
		Rating:    *req.Rating,
		Comment:   req.Comment,
	}
	if req.Whatsapp != "" {
		w := req.Whatsapp
		review.Whatsapp = &w
	}

	if err := s.reviewRepo.Create(review); err != nil {
		log.Error().Err(err).Int("product_id", productID).Msg("Failed to store review")
		return nil, fmt.Errorf("failed to store review: %w", err)
	}
	return review, nil
}

// ListApproved returns approved reviews newest first; nil productID means
// all products.
func (s *ReviewService) ListApproved(productID *int) ([]models.Review, error) {
	return s.reviewRepo.ListApproved(productID)
}

// ListAll returns every review for moderation, paginated newest first.
func (s *ReviewService) ListAll(page, limit int) ([]models.Review, int, error) {
	return s.reviewRepo.ListAll(page, limit)
}

// Approve marks a review approved. Idempotent: re-approving succeeds.
func (s *ReviewService) Approve(id int) (*models.Review, error) {
	review, err := s.reviewRepo.Approve(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to approve review: %w", err)
	}
	return review, nil
}

// Delete removes a review in any state.
func (s *ReviewService) Delete(id int) error {
	if err := s.reviewRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrReviewNotFound
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}
