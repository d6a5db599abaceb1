package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/snaapco/snaap_api/internal/models"
	"github.com/snaapco/snaap_api/internal/service"
	"github.com/snaapco/snaap_api/internal/utils"
)

// OrderHandler handles order placement and lifecycle endpoints.
type OrderHandler struct {
	orderService *service.OrderService
	baseURL      string
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orderService *service.OrderService, baseURL string) *OrderHandler {
	return &OrderHandler{orderService: orderService, baseURL: baseURL}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	result, err := h.orderService.CreateOrder(&req)
	if err != nil {
		if ve, ok := utils.AsValidation(err); ok {
			utils.FailValidation(c, ve.Messages)
			return
		}
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to submit order")
		return
	}

	utils.Created(c, gin.H{
		"message":      "Order submitted successfully",
		"orderId":      result.OrderCode,
		"whatsappLink": result.WhatsappLink,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	req := &service.ListOrdersRequest{
		Status:  c.Query("status"),
		Search:  c.Query("search"),
		Page:    queryInt(c, "page", 1),
		Limit:   queryInt(c, "limit", 10),
		BaseURL: requestBaseURL(c, h.baseURL),
	}

	result, err := h.orderService.ListOrders(req)
	if err != nil {
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to fetch orders")
		return
	}

	utils.OK(c, gin.H{
		"count":      len(result.Orders),
		"pagination": utils.NewPagination(result.Total, result.Page, result.Limit),
		"data":       result.Orders,
	})
}

// GetOrder handles GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Param("id"), requestBaseURL(c, h.baseURL))
	if err != nil {
		if errors.Is(err, utils.ErrOrderNotFound) {
			utils.Fail(c, 404, "NOT_FOUND", "Order not found")
			return
		}
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to fetch order")
		return
	}

	utils.OK(c, gin.H{"data": order})
}

// UpdateOrderStatus handles PATCH /api/orders/:id
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		utils.FailValidation(c, []string{"order status is required"})
		return
	}

	order, err := h.orderService.UpdateStatus(c.Param("id"), models.OrderStatus(req.Status))
	if err != nil {
		if ve, ok := utils.AsValidation(err); ok {
			utils.FailValidation(c, ve.Messages)
			return
		}
		if errors.Is(err, utils.ErrOrderNotFound) {
			utils.Fail(c, 404, "NOT_FOUND", "Order not found")
			return
		}
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to update order")
		return
	}

	utils.OK(c, gin.H{
		"message": "Order updated successfully",
		"data":    order,
	})
}

// DeleteOrder handles DELETE /api/orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orderService.DeleteOrder(c.Param("id")); err != nil {
		if errors.Is(err, utils.ErrOrderNotFound) {
			utils.Fail(c, 404, "NOT_FOUND", "Order not found")
			return
		}
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to delete order")
		return
	}

	utils.OK(c, gin.H{"message": "Order deleted successfully"})
}
