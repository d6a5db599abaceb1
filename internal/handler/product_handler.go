package handler

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/snaapco/snaap_api/internal/service"
	"github.com/snaapco/snaap_api/internal/utils"
)

// ProductHandler handles catalog reads and admin product CRUD.
type ProductHandler struct {
	catalogService *service.CatalogService
	adminService   *service.ProductAdminService
	baseURL        string
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(catalogService *service.CatalogService, adminService *service.ProductAdminService, baseURL string) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		adminService:   adminService,
		baseURL:        baseURL,
	}
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	req := &service.ListProductsRequest{
		Category:   c.Query("category"),
		Brand:      c.Query("brand"),
		Featured:   c.Query("featured"),
		NewRelease: c.Query("newRelease"),
		MinPrice:   c.Query("minPrice"),
		MaxPrice:   c.Query("maxPrice"),
		Search:     c.Query("search"),
		Sort:       c.Query("sort"),
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 12),
		BaseURL:    requestBaseURL(c, h.baseURL),
	}

	result, err := h.catalogService.ListProducts(req)
	if err != nil {
		if ve, ok := utils.AsValidation(err); ok {
			utils.FailValidation(c, ve.Messages)
			return
		}
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to fetch products")
		return
	}

	utils.OK(c, gin.H{
		"count":      len(result.Products),
		"total":      result.Total,
		"pagination": utils.NewPagination(result.Total, result.Page, result.Limit),
		"products":   result.Products,
	})
}

// GetProduct handles GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	product, err := h.catalogService.GetProduct(id, requestBaseURL(c, h.baseURL))
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Fail(c, 404, "NOT_FOUND", "Product not found")
			return
		}
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to fetch product")
		return
	}

	utils.OK(c, gin.H{"product": product})
}

// GetUsedCategories handles GET /api/products/categories — the distinct
// category names present on products, for the filter UI.
func (h *ProductHandler) GetUsedCategories(c *gin.Context) {
	categories, err := h.catalogService.UsedCategories()
	if err != nil {
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to fetch categories")
		return
	}
	utils.OK(c, gin.H{"categories": categories})
}

// GetUsedBrands handles GET /api/products/brands — the distinct brand names
// present on products.
func (h *ProductHandler) GetUsedBrands(c *gin.Context) {
	brands, err := h.catalogService.UsedBrands()
	if err != nil {
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to fetch brands")
		return
	}
	utils.OK(c, gin.H{"brands": brands})
}

// CreateProduct handles POST /api/products (multipart, admin)
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	form, files := productFormFromRequest(c)

	product, err := h.adminService.CreateProduct(form, files)
	if err != nil {
		h.failMutation(c, err, "Failed to create product")
		return
	}

	utils.Created(c, gin.H{"product": product})
}

// UpdateProduct handles PUT /api/products/:id (multipart, admin)
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	form, files := productFormFromRequest(c)

	product, err := h.adminService.UpdateProduct(id, form, files)
	if err != nil {
		h.failMutation(c, err, "Failed to update product")
		return
	}

	utils.OK(c, gin.H{"product": product})
}

// DeleteProduct handles DELETE /api/products/:id (admin)
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	if err := h.adminService.DeleteProduct(id); err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Fail(c, 404, "NOT_FOUND", "Product not found")
			return
		}
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to delete product")
		return
	}

	utils.OK(c, gin.H{"message": "Product deleted successfully"})
}

func (h *ProductHandler) failMutation(c *gin.Context, err error, fallback string) {
	if ve, ok := utils.AsValidation(err); ok {
		utils.FailValidation(c, ve.Messages)
		return
	}
	if errors.Is(err, utils.ErrProductNotFound) {
		utils.Fail(c, 404, "NOT_FOUND", "Product not found")
		return
	}
	if errors.Is(err, utils.ErrDuplicateSKU) {
		utils.Fail(c, 400, "DUPLICATE_SKU", "SKU already exists")
		return
	}
	if errors.Is(err, utils.ErrUploadRejected) {
		utils.Fail(c, 400, "UPLOAD_REJECTED", err.Error())
		return
	}
	utils.Fail(c, 500, "SERVER_ERROR", fallback)
}

// productFormFromRequest reads the multipart form fields and image files.
// existingImages may arrive as repeated fields or one CSV value.
func productFormFromRequest(c *gin.Context) (*service.ProductForm, []*multipart.FileHeader) {
	form := &service.ProductForm{
		Name:             c.PostForm("name"),
		Brand:            c.PostForm("brand"),
		Category:         c.PostForm("category"),
		Model:            c.PostForm("model"),
		Price:            c.PostForm("price"),
		DiscountPrice:    c.PostForm("discountPrice"),
		Currency:         c.PostForm("currency"),
		IsOnSale:         c.PostForm("isOnSale"),
		SKU:              c.PostForm("sku"),
		StockQuantity:    c.PostForm("stockQuantity"),
		InStock:          c.PostForm("inStock"),
		Specs:            c.PostForm("specs"),
		VideoURL:         c.PostForm("videoUrl"),
		ShortDescription: c.PostForm("shortDescription"),
		FullDescription:  c.PostForm("fullDescription"),
		KeyFeatures:      c.PostForm("keyFeatures"),
		Tags:             c.PostForm("tags"),
		IsFeatured:       c.PostForm("isFeatured"),
		IsNewRelease:     c.PostForm("isNewRelease"),
		WarrantyPeriod:   c.PostForm("warrantyPeriod"),
		ReturnPolicyDays: c.PostForm("returnPolicyDays"),
	}

	existing := c.PostFormArray("existingImages")
	if len(existing) == 1 && strings.Contains(existing[0], ",") {
		existing = strings.Split(existing[0], ",")
	}
	for _, img := range existing {
		if trimmed := strings.TrimSpace(img); trimmed != "" {
			form.ExistingImages = append(form.ExistingImages, trimmed)
		}
	}

	var files []*multipart.FileHeader
	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		files = mf.File["images"]
	}
	return form, files
}
