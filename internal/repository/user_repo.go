package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/snaapco/snaap_api/internal/models"
)

// UserRepository handles data access for the user directory.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// ListCustomers returns one page of customer-role users plus the total
// matching count. Search matches name or email case-insensitively.
func (r *UserRepository) ListCustomers(search string, page, limit int) ([]models.User, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	where := `WHERE role = 'customer'`
	args := []interface{}{}
	argIdx := 1
	if search != "" {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+search+"%")
		argIdx++
	}

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM users `+where, args...); err != nil {
		return nil, 0, err
	}

	listQuery := fmt.Sprintf(
		`SELECT * FROM users %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		where, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	users := []models.User{}
	if err := r.db.Select(&users, listQuery, args...); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// CountCustomers returns the total number of customer-role users.
func (r *UserRepository) CountCustomers() (int, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(1) FROM users WHERE role = 'customer'`); err != nil {
		return 0, err
	}
	return n, nil
}
