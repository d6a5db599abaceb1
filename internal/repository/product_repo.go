package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/snaapco/snaap_api/internal/models"
)

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Listing sort keys accepted by the catalog.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortPopular   = "popular"
)

// ListParams holds catalog listing filters. Zero values mean "no filter".
// All supplied filters apply conjunctively.
type ListParams struct {
	Category   string
	Brand      string
	Featured   *bool
	NewRelease *bool
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
	Sort       string
	Page       int
	Limit      int
}

// normalize applies pagination defaults and caps.
func (p *ListParams) normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 12
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// whereClause builds the dynamic WHERE clause and its positional args.
func (p *ListParams) whereClause() (string, []interface{}) {
	where := "WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if p.Category != "" {
		where += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, p.Category)
		argIdx++
	}
	if p.Brand != "" {
		where += fmt.Sprintf(" AND brand = $%d", argIdx)
		args = append(args, p.Brand)
		argIdx++
	}
	if p.Featured != nil {
		where += fmt.Sprintf(" AND is_featured = $%d", argIdx)
		args = append(args, *p.Featured)
		argIdx++
	}
	if p.NewRelease != nil {
		where += fmt.Sprintf(" AND is_new_release = $%d", argIdx)
		args = append(args, *p.NewRelease)
		argIdx++
	}
	if p.MinPrice != nil {
		where += fmt.Sprintf(" AND price >= $%d", argIdx)
		args = append(args, *p.MinPrice)
		argIdx++
	}
	if p.MaxPrice != nil {
		where += fmt.Sprintf(" AND price <= $%d", argIdx)
		args = append(args, *p.MaxPrice)
		argIdx++
	}
	if p.Search != "" {
		where += fmt.Sprintf(
			" AND (name ILIKE $%d OR short_description ILIKE $%d OR full_description ILIKE $%d OR tags::text ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx)
		args = append(args, "%"+p.Search+"%")
		argIdx++
	}
	return where, args
}

// orderClause maps the sort key to a deterministic ORDER BY. The id column
// always breaks ties so a fixed filter set paginates without skips or
// duplicates.
func (p *ListParams) orderClause() string {
	switch p.Sort {
	case SortPriceLow:
		return "ORDER BY price ASC, id ASC"
	case SortPriceHigh:
		return "ORDER BY price DESC, id DESC"
	case SortPopular:
		return "ORDER BY is_featured DESC, created_at DESC, id DESC"
	default: // SortNewest and unrecognized keys
		return "ORDER BY created_at DESC, id DESC"
	}
}

// List returns one page of matching products plus the total matching count.
// A page beyond the end returns an empty slice with the true total.
func (r *ProductRepository) List(params *ListParams) ([]models.Product, int, error) {
	params.normalize()
	where, args := params.whereClause()

	countQuery := `SELECT COUNT(1) FROM products ` + where
	var total int
	if err := r.db.Get(&total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	listQuery := fmt.Sprintf(`SELECT * FROM products %s %s LIMIT $%d OFFSET $%d`,
		where, params.orderClause(), len(args)+1, len(args)+2)
	args = append(args, params.Limit, offset)

	products := []models.Product{}
	if err := r.db.Select(&products, listQuery, args...); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID returns a single product by id.
func (r *ProductRepository) GetByID(id int) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE id = $1 LIMIT 1`
	var p models.Product
	if err := r.db.Get(&p, q, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new product and fills in generated columns.
func (r *ProductRepository) Create(p *models.Product) error {
	const q = `
        INSERT INTO products (
            sku, name, brand, category, model, price, discount_price, currency,
            is_on_sale, stock_quantity, in_stock, specs, images, thumbnail,
            video_url, short_description, full_description, key_features, tags,
            is_featured, is_new_release, warranty_period, return_policy_days
        ) VALUES (
            $1,$2,$3,$4,$5,$6,$7,$8,
            $9,$10,$11,$12,$13,$14,
            $15,$16,$17,$18,$19,
            $20,$21,$22,$23
        ) RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(q,
		p.SKU, p.Name, p.Brand, p.Category, p.Model, p.Price, p.DiscountPrice, p.Currency,
		p.IsOnSale, p.StockQuantity, p.InStock, p.Specs, p.Images, p.Thumbnail,
		p.VideoURL, p.ShortDescription, p.FullDescription, p.KeyFeatures, p.Tags,
		p.IsFeatured, p.IsNewRelease, p.WarrantyPeriod, p.ReturnPolicyDays,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update rewrites an existing product.
func (r *ProductRepository) Update(p *models.Product) error {
	const q = `
        UPDATE products SET
            sku = $2, name = $3, brand = $4, category = $5, model = $6,
            price = $7, discount_price = $8, currency = $9, is_on_sale = $10,
            stock_quantity = $11, in_stock = $12, specs = $13, images = $14,
            thumbnail = $15, video_url = $16, short_description = $17,
            full_description = $18, key_features = $19, tags = $20,
            is_featured = $21, is_new_release = $22, warranty_period = $23,
            return_policy_days = $24, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at`

	return r.db.QueryRowx(q,
		p.ID, p.SKU, p.Name, p.Brand, p.Category, p.Model,
		p.Price, p.DiscountPrice, p.Currency, p.IsOnSale,
		p.StockQuantity, p.InStock, p.Specs, p.Images,
		p.Thumbnail, p.VideoURL, p.ShortDescription,
		p.FullDescription, p.KeyFeatures, p.Tags,
		p.IsFeatured, p.IsNewRelease, p.WarrantyPeriod,
		p.ReturnPolicyDays,
	).Scan(&p.UpdatedAt)
}

// Delete removes a product by id. Returns sql.ErrNoRows when absent.
func (r *ProductRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, id)
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

// DistinctCategories returns the category names actually in use by
// products. This deliberately differs from the admin-managed category
// catalog, which may contain categories with zero products.
func (r *ProductRepository) DistinctCategories() ([]string, error) {
	const q = `SELECT DISTINCT category FROM products WHERE category != '' ORDER BY category`
	categories := []string{}
	if err := r.db.Select(&categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}

// DistinctBrands returns the brand names actually in use by products.
func (r *ProductRepository) DistinctBrands() ([]string, error) {
	const q = `SELECT DISTINCT brand FROM products WHERE brand != '' ORDER BY brand`
	brands := []string{}
	if err := r.db.Select(&brands, q); err != nil {
		return nil, err
	}
	return brands, nil
}

// CountByCategory returns the product tally per category for the dashboard.
func (r *ProductRepository) CountByCategory() ([]models.CategoryCount, error) {
	const q = `SELECT category, COUNT(1) AS count FROM products GROUP BY category ORDER BY count DESC, category`
	counts := []models.CategoryCount{}
	if err := r.db.Select(&counts, q); err != nil {
		return nil, err
	}
	return counts, nil
}
