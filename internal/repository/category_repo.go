package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/snaapco/snaap_api/internal/models"
)

// CategoryRepository handles data access for the admin-managed category
// catalog. The set of categories in use by products lives on
// ProductRepository.DistinctCategories and can legitimately diverge.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetAll returns all categories ordered by name.
func (r *CategoryRepository) GetAll() ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.db.Select(&categories, `SELECT * FROM categories ORDER BY name`); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID returns a single category by id.
func (r *CategoryRepository) GetByID(id int) (*models.Category, error) {
	var c models.Category
	if err := r.db.Get(&c, `SELECT * FROM categories WHERE id = $1 LIMIT 1`, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new category.
func (r *CategoryRepository) Create(c *models.Category) error {
	const q = `
        INSERT INTO categories (name, description, icon)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(q, c.Name, c.Description, c.Icon).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Update rewrites an existing category.
func (r *CategoryRepository) Update(c *models.Category) error {
	const q = `
        UPDATE categories SET name = $2, description = $3, icon = $4, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at`
	return r.db.QueryRowx(q, c.ID, c.Name, c.Description, c.Icon).Scan(&c.UpdatedAt)
}

// Delete removes a category by id. Returns sql.ErrNoRows when absent.
func (r *CategoryRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
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
