package service

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/snaapco/snaap_api/internal/models"
	"github.com/snaapco/snaap_api/internal/repository"
	"github.com/snaapco/snaap_api/internal/utils"
)

// phonePattern accepts an international number: plus sign, country code,
// nine subscriber digits (e.g. +254712345678).
var phonePattern = regexp.MustCompile(`^\+[1-9]\d{0,2}\d{9}$`)

// OrderService manages the order lifecycle and the dashboard aggregation.
type OrderService struct {
	orderRepo   *repository.OrderRepository
	productRepo *repository.ProductRepository
	userRepo    *repository.UserRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo *repository.OrderRepository,
	productRepo *repository.ProductRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{orderRepo: orderRepo, productRepo: productRepo, userRepo: userRepo}
}

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	Products []OrderItemRequest `json:"products"`
	Phone    string             `json:"phone"`
}

// CreateOrderResult carries the generated order identity and the outbound
// WhatsApp contact link.
type CreateOrderResult struct {
	OrderCode    string
	WhatsappLink string
}

// ValidateCreateOrder collects every violated constraint of the request.
func ValidateCreateOrder(req *CreateOrderRequest) []string {
	var violations []string
	if len(req.Products) == 0 {
		violations = append(violations, "products must be a non-empty array")
	}
	for _, item := range req.Products {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			violations = append(violations, "each product entry needs a productId and a positive quantity")
			break
		}
	}
	if req.Phone == "" {
		violations = append(violations, "phone number is required")
	} else if !phonePattern.MatchString(req.Phone) {
		violations = append(violations, "phone number must be in +<countrycode>XXXXXXXXX format")
	}
	return violations
}

// WhatsappLink builds the outbound deep link confirming an order.
func WhatsappLink(phone, orderCode string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.PathEscape("Order confirmed: "+orderCode))
}

// CreateOrder validates and persists a new pending order. The total is
// computed from current product prices; unknown product ids are accepted
// with a zero-price line, matching the decoupled inventory design.
func (s *OrderService) CreateOrder(req *CreateOrderRequest) (*CreateOrderResult, error) {
	if violations := ValidateCreateOrder(req); len(violations) > 0 {
		return nil, utils.NewValidationError(violations...)
	}

	code, err := utils.GenerateOrderCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order code: %w", err)
	}

	order := &models.Order{
		OrderCode: code,
		Phone:     req.Phone,
		Status:    models.OrderStatusPending,
	}
	for _, item := range req.Products {
		product, lookupErr := s.productRepo.GetByID(item.ProductID)
		unitPrice, err := priceLine(product, lookupErr)
		if err != nil {
			log.Error().Err(err).Int("product_id", item.ProductID).Msg("Failed to price order line")
			return nil, err
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
		})
		order.TotalAmount += unitPrice * float64(item.Quantity)
	}

	if err := s.orderRepo.Create(order); err != nil {
		log.Error().Err(err).Msg("Failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	log.Info().Str("order", code).Str("phone", req.Phone).Msg("Order created")
	return &CreateOrderResult{
		OrderCode:    code,
		WhatsappLink: WhatsappLink(req.Phone, code),
	}, nil
}

// priceLine maps a product lookup result to the line's unit price. An
// unknown product prices at zero; any other lookup failure aborts the
// order so a store fault never understates the total.
func priceLine(product *models.Product, lookupErr error) (float64, error) {
	if lookupErr != nil {
		if errors.Is(lookupErr, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to price order line: %w", lookupErr)
	}
	return product.Price, nil
}

// ListOrdersRequest holds listing filters for orders.
type ListOrdersRequest struct {
	Status  string
	Search  string
	Page    int
	Limit   int
	BaseURL string
}

// ListOrdersResult is one page of orders plus the total matching count.
type ListOrdersResult struct {
	Orders []models.Order
	Total  int
	Page   int
	Limit  int
}

// ListOrders returns a filtered, newest-first page of orders with product
// summaries populated.
func (s *OrderService) ListOrders(req *ListOrdersRequest) (*ListOrdersResult, error) {
	params := &repository.OrderListParams{
		Status: req.Status,
		Search: req.Search,
		Page:   req.Page,
		Limit:  req.Limit,
	}
	orders, total, err := s.orderRepo.List(params)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	for i := range orders {
		s.populateItems(&orders[i], req.BaseURL)
	}
	return &ListOrdersResult{Orders: orders, Total: total, Page: params.Page, Limit: params.Limit}, nil
}

// GetOrder returns one order by code with product summaries populated.
func (s *OrderService) GetOrder(code, baseURL string) (*models.Order, error) {
	order, err := s.orderRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	s.populateItems(order, baseURL)
	return order, nil
}

// UpdateStatus sets the order status. Any of the five statuses is accepted
// at any time.
func (s *OrderService) UpdateStatus(code string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, utils.NewValidationError(
			"status must be one of pending, processing, shipped, delivered, cancelled")
	}

	order, err := s.orderRepo.UpdateStatus(code, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	s.populateItems(order, "")
	log.Info().Str("order", code).Str("status", string(status)).Msg("Order status updated")
	return order, nil
}

// DeleteOrder hard-deletes an order by code.
func (s *OrderService) DeleteOrder(code string) error {
	if err := s.orderRepo.Delete(code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrOrderNotFound
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

// populateItems resolves product summaries for display. A deleted product
// degrades to a placeholder rather than failing the read.
func (s *OrderService) populateItems(order *models.Order, baseURL string) {
	for i := range order.Items {
		item := &order.Items[i]
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				log.Warn().Err(err).Int("product_id", item.ProductID).Msg("Failed to load order line product")
			}
			item.Product = &models.OrderProductSummary{
				Name:      "Product not available",
				Available: false,
			}
			continue
		}
		summary := &models.OrderProductSummary{
			Name:      product.Name,
			Price:     product.Price,
			Category:  product.Category,
			Available: true,
		}
		if len(product.Images) > 0 {
			summary.Image = AbsoluteURL(baseURL, product.Images[0])
		}
		item.Product = summary
	}
}

// DashboardStats is the assembled admin dashboard payload.
type DashboardStats struct {
	TotalRevenue   float64                  `json:"totalRevenue"`
	TotalOrders    int                      `json:"totalOrders"`
	PendingOrders  int                      `json:"pendingOrders"`
	TotalCustomers int                      `json:"totalCustomers"`
	Sales          []repository.MonthlySale `json:"sales"`
	Distribution   []models.CategoryCount   `json:"productDistribution"`
}

// Dashboard recomputes the aggregate stats from store state on every call.
func (s *OrderService) Dashboard() (*DashboardStats, error) {
	stats, err := s.orderRepo.GetStats()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate order stats: %w", err)
	}

	customers, err := s.userRepo.CountCustomers()
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	sales, err := s.orderRepo.SalesByMonth(6)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly sales: %w", err)
	}
	// Stored newest-first; the dashboard wants oldest to newest.
	for i, j := 0, len(sales)-1; i < j; i, j = i+1, j-1 {
		sales[i], sales[j] = sales[j], sales[i]
	}

	distribution, err := s.productRepo.CountByCategory()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category distribution: %w", err)
	}

	return &DashboardStats{
		TotalRevenue:   stats.TotalRevenue,
		TotalOrders:    stats.TotalOrders,
		PendingOrders:  stats.PendingOrders,
		TotalCustomers: customers,
		Sales:          sales,
		Distribution:   distribution,
	}, nil
}
