package models

import "time"

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the five known statuses. Transitions
// between valid statuses are deliberately unrestricted so admins can correct
// mislabeled orders.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a customer order placed through the storefront. Orders are keyed
// externally by OrderCode; the serial id stays internal.
type Order struct {
	ID          int         `db:"id" json:"-"`
	OrderCode   string      `db:"order_code" json:"orderId"`
	Phone       string      `db:"phone" json:"phone"`
	Status      OrderStatus `db:"status" json:"status"`
	TotalAmount float64     `db:"total_amount" json:"totalAmount"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updatedAt"`

	Items []OrderItem `db:"-" json:"products"`
}

// OrderItem is a single line of an order. UnitPrice is snapshotted at
// creation so later price edits do not change historical totals.
type OrderItem struct {
	ID        int     `db:"id" json:"-"`
	OrderID   int     `db:"order_id" json:"-"`
	ProductID int     `db:"product_id" json:"productId"`
	Quantity  int     `db:"quantity" json:"quantity"`
	UnitPrice float64 `db:"unit_price" json:"unitPrice"`

	Product *OrderProductSummary `db:"-" json:"product,omitempty"`
}

// OrderProductSummary is the display projection of a referenced product.
// When the product has since been deleted, Available is false and Name holds
// a placeholder instead of failing the containing read.
type OrderProductSummary struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Image     string  `json:"image,omitempty"`
	Available bool    `json:"available"`
}
