package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/snaapco/snaap_api/internal/service"
	"github.com/snaapco/snaap_api/internal/utils"
)

// DashboardHandler serves the aggregated admin dashboard.
type DashboardHandler struct {
	orderService *service.OrderService
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(orderService *service.OrderService) *DashboardHandler {
	return &DashboardHandler{orderService: orderService}
}

// GetDashboard handles GET /api/admin/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	stats, err := h.orderService.Dashboard()
	if err != nil {
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to build dashboard")
		return
	}

	utils.OK(c, gin.H{"data": stats})
}
