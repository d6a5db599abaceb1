package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/snaapco/snaap_api/internal/models"
)

// OrderRepository handles data access for orders and their line items.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts an order and its items in one transaction.
func (r *OrderRepository) Create(order *models.Order) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const orderQ = `
        INSERT INTO orders (order_code, phone, status, total_amount)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`
	if err := tx.QueryRowx(orderQ,
		order.OrderCode, order.Phone, order.Status, order.TotalAmount,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	const itemQ = `
        INSERT INTO order_items (order_id, product_id, quantity, unit_price)
        VALUES ($1, $2, $3, $4)
        RETURNING id`
	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRowx(itemQ,
			item.OrderID, item.ProductID, item.Quantity, item.UnitPrice,
		).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// OrderListParams holds filters for the admin order listing.
type OrderListParams struct {
	Status string
	Search string
	Page   int
	Limit  int
}

func (p *OrderListParams) normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

func (p *OrderListParams) whereClause() (string, []interface{}) {
	where := "WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if p.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, p.Status)
		argIdx++
	}
	if p.Search != "" {
		where += fmt.Sprintf(" AND (phone ILIKE $%d OR order_code ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+p.Search+"%")
		argIdx++
	}
	return where, args
}

// List returns one page of orders, newest first, with items attached, plus
// the total matching count.
func (r *OrderRepository) List(params *OrderListParams) ([]models.Order, int, error) {
	params.normalize()
	where, args := params.whereClause()

	countQuery := `SELECT COUNT(1) FROM orders ` + where
	var total int
	if err := r.db.Get(&total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	listQuery := fmt.Sprintf(
		`SELECT * FROM orders %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, params.Limit, offset)

	orders := []models.Order{}
	if err := r.db.Select(&orders, listQuery, args...); err != nil {
		return nil, 0, err
	}

	if err := r.attachItems(orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// GetByCode returns a single order with items by its external code.
func (r *OrderRepository) GetByCode(code string) (*models.Order, error) {
	const q = `SELECT * FROM orders WHERE order_code = $1 LIMIT 1`
	var o models.Order
	if err := r.db.Get(&o, q, code); err != nil {
		return nil, err
	}

	orders := []models.Order{o}
	if err := r.attachItems(orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// attachItems loads the line items for a batch of orders in one query.
func (r *OrderRepository) attachItems(orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int, len(orders))
	byID := make(map[int]*models.Order, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		orders[i].Items = []models.OrderItem{}
		byID[orders[i].ID] = &orders[i]
	}

	query, args, err := sqlx.In(
		`SELECT id, order_id, product_id, quantity, unit_price
         FROM order_items WHERE order_id IN (?) ORDER BY id`, ids)
	if err != nil {
		return err
	}
	query = r.db.Rebind(query)

	items := []models.OrderItem{}
	if err := r.db.Select(&items, query, args...); err != nil {
		return err
	}

	for _, item := range items {
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	return nil
}

// UpdateStatus sets the status of an order by its external code and returns
// the updated record. Returns sql.ErrNoRows when the code is unknown.
func (r *OrderRepository) UpdateStatus(code string, status models.OrderStatus) (*models.Order, error) {
	const q = `UPDATE orders SET status = $2, updated_at = NOW() WHERE order_code = $1 RETURNING *`
	var o models.Order
	if err := r.db.Get(&o, q, code, status); err != nil {
		return nil, err
	}

	orders := []models.Order{o}
	if err := r.attachItems(orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// Delete removes an order (items cascade). Returns sql.ErrNoRows when absent.
func (r *OrderRepository) Delete(code string) error {
	res, err := r.db.Exec(`DELETE FROM orders WHERE order_code = $1`, code)
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

// OrderStats aggregates the topline dashboard numbers. Revenue counts only
// delivered orders, the completed-equivalent status.
type OrderStats struct {
	TotalRevenue  float64 `db:"total_revenue"`
	TotalOrders   int     `db:"total_orders"`
	PendingOrders int     `db:"pending_orders"`
}

// GetStats computes order statistics in a single aggregate query.
func (r *OrderRepository) GetStats() (*OrderStats, error) {
	const q = `
        SELECT
            COALESCE(SUM(total_amount) FILTER (WHERE status = 'delivered'), 0) AS total_revenue,
            COUNT(1) AS total_orders,
            COUNT(1) FILTER (WHERE status = 'pending') AS pending_orders
        FROM orders`
	var stats OrderStats
	if err := r.db.Get(&stats, q); err != nil {
		return nil, err
	}
	return &stats, nil
}

// MonthlySale is revenue grouped by year-month of order creation.
type MonthlySale struct {
	Month string  `db:"month" json:"month"`
	Total float64 `db:"total" json:"total"`
}

// SalesByMonth returns delivered-order revenue for the trailing N months,
// newest month first. Callers wanting chronological order reverse the slice.
func (r *OrderRepository) SalesByMonth(months int) ([]MonthlySale, error) {
	const q = `
        SELECT to_char(created_at, 'YYYY-MM') AS month,
               COALESCE(SUM(total_amount), 0) AS total
        FROM orders
        WHERE status = 'delivered'
        GROUP BY 1
        ORDER BY 1 DESC
        LIMIT $1`
	sales := []MonthlySale{}
	if err := r.db.Select(&sales, q, months); err != nil {
		return nil, err
	}
	return sales, nil
}
