package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/snaapco/snaap_api/internal/repository"
	"github.com/snaapco/snaap_api/internal/utils"
)

// CustomerHandler serves the admin customer listing.
type CustomerHandler struct {
	userRepo *repository.UserRepository
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(userRepo *repository.UserRepository) *CustomerHandler {
	return &CustomerHandler{userRepo: userRepo}
}

// ListCustomers handles GET /api/admin/customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	search := c.Query("search")
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	customers, total, err := h.userRepo.ListCustomers(search, page, limit)
	if err != nil {
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to fetch customers")
		return
	}

	utils.OK(c, gin.H{
		"count":      len(customers),
		"pagination": utils.NewPagination(total, page, limit),
		"data":       customers,
	})
}
