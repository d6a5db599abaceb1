package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/snaapco/snaap_api/internal/models"
)

// ReviewRepository handles data access for product reviews.
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review. Reviews always start unapproved.
func (r *ReviewRepository) Create(rev *models.Review) error {
	const q = `
        INSERT INTO reviews (product_id, name, whatsapp, rating, comment, is_approved)
        VALUES ($1, $2, $3, $4, $5, false)
        RETURNING id, is_approved, created_at`
	return r.db.QueryRowx(q,
		rev.ProductID, rev.Name, rev.Whatsapp, rev.Rating, rev.Comment,
	).Scan(&rev.ID, &rev.IsApproved, &rev.CreatedAt)
}

// ListApproved returns approved reviews newest first. A nil productID means
// reviews across all products (homepage aggregate).
func (r *ReviewRepository) ListApproved(productID *int) ([]models.Review, error) {
	q := `SELECT id, product_id, name, whatsapp, rating, comment, is_approved, created_at
          FROM reviews WHERE is_approved = true`
	args := []interface{}{}
	if productID != nil {
		q += ` AND product_id = $1`
		args = append(args, *productID)
	}
	q += ` ORDER BY created_at DESC, id DESC`

	reviews := []models.Review{}
	if err := r.db.Select(&reviews, q, args...); err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListAll returns one page of reviews in every approval state, newest first,
// with the product name resolved where the product still exists. Returns the
// total review count alongside.
func (r *ReviewRepository) ListAll(page, limit int) ([]models.Review, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM reviews`); err != nil {
		return nil, 0, err
	}

	const q = `
        SELECT r.id, r.product_id, r.name, r.whatsapp, r.rating, r.comment,
               r.is_approved, r.created_at, p.name AS product_name
        FROM reviews r
        LEFT JOIN products p ON p.id = r.product_id
        ORDER BY r.created_at DESC, r.id DESC
        LIMIT $1 OFFSET $2`

	reviews := []models.Review{}
	if err := r.db.Select(&reviews, q, limit, (page-1)*limit); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// Approve marks a review approved and returns the updated record. Approving
// an already-approved review is a no-op, not an error. Returns
// sql.ErrNoRows when the id is unknown.
func (r *ReviewRepository) Approve(id int) (*models.Review, error) {
	const q = `
        UPDATE reviews SET is_approved = true WHERE id = $1
        RETURNING id, product_id, name, whatsapp, rating, comment, is_approved, created_at`
	var rev models.Review
	if err := r.db.Get(&rev, q, id); err != nil {
		return nil, err
	}
	return &rev, nil
}

// Delete removes a review in any state. Returns sql.ErrNoRows when absent.
func (r *ReviewRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
