package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/snaapco/snaap_api/internal/models"
)

// BrandRepository handles data access for the admin-managed brand catalog.
type BrandRepository struct {
	db *sqlx.DB
}

// NewBrandRepository creates a new BrandRepository.
func NewBrandRepository(db *sqlx.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// GetAll returns all brands ordered by name.
func (r *BrandRepository) GetAll() ([]models.Brand, error) {
	brands := []models.Brand{}
	if err := r.db.Select(&brands, `SELECT * FROM brands ORDER BY name`); err != nil {
		return nil, err
	}
	return brands, nil
}

// GetByID returns a single brand by id.
func (r *BrandRepository) GetByID(id int) (*models.Brand, error) {
	var b models.Brand
	if err := r.db.Get(&b, `SELECT * FROM brands WHERE id = $1 LIMIT 1`, id); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a new brand.
func (r *BrandRepository) Create(b *models.Brand) error {
	const q = `
        INSERT INTO brands (name, description, logo)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(q, b.Name, b.Description, b.Logo).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// Update rewrites an existing brand.
func (r *BrandRepository) Update(b *models.Brand) error {
	const q = `
        UPDATE brands SET name = $2, description = $3, logo = $4, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at`
	return r.db.QueryRowx(q, b.ID, b.Name, b.Description, b.Logo).Scan(&b.UpdatedAt)
}

// Delete removes a brand by id. Returns sql.ErrNoRows when absent.
func (r *BrandRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM brands WHERE id = $1`, id)
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
