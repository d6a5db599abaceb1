package handler

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/snaapco/snaap_api/internal/models"
	"github.com/snaapco/snaap_api/internal/repository"
	"github.com/snaapco/snaap_api/internal/service"
	"github.com/snaapco/snaap_api/internal/utils"
)

// BrandHandler handles the admin-managed brand catalog. This is distinct
// from GET /api/products/brands, which lists the brand names actually in
// use by products.
type BrandHandler struct {
	brandRepo *repository.BrandRepository
	uploads   *service.UploadService
	baseURL   string
}

// NewBrandHandler constructs a BrandHandler.
func NewBrandHandler(brandRepo *repository.BrandRepository, uploads *service.UploadService, baseURL string) *BrandHandler {
	return &BrandHandler{brandRepo: brandRepo, uploads: uploads, baseURL: baseURL}
}

// ListBrands handles GET /api/brands
func (h *BrandHandler) ListBrands(c *gin.Context) {
	brands, err := h.brandRepo.GetAll()
	if err != nil {
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to fetch brands")
		return
	}

	base := requestBaseURL(c, h.baseURL)
	for i := range brands {
		resolveBrandLogo(&brands[i], base)
	}
	utils.OK(c, gin.H{"brands": brands})
}

// CreateBrand handles POST /api/brands (admin, optional logo upload)
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		utils.FailValidation(c, []string{"name is required"})
		return
	}

	brand := &models.Brand{
		Name:        name,
		Description: c.PostForm("description"),
	}

	if fh, err := c.FormFile("logo"); err == nil {
		path, err := h.uploads.SaveOne(fh, "brands")
		if err != nil {
			utils.Fail(c, 400, "UPLOAD_REJECTED", err.Error())
			return
		}
		brand.Logo = &path
	} else if logo := c.PostForm("logo"); logo != "" {
		brand.Logo = &logo
	}

	if err := h.brandRepo.Create(brand); err != nil {
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to create brand")
		return
	}

	resolveBrandLogo(brand, requestBaseURL(c, h.baseURL))
	utils.Created(c, gin.H{"brand": brand})
}

// UpdateBrand handles PUT /api/brands/:id (admin)
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, 400, "INVALID_ID", "Invalid brand ID")
		return
	}

	brand, err := h.brandRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Fail(c, 404, "NOT_FOUND", "Brand not found")
			return
		}
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to load brand")
		return
	}

	if name := c.PostForm("name"); name != "" {
		brand.Name = name
	}
	if desc := c.PostForm("description"); desc != "" {
		brand.Description = desc
	}
	if fh, err := c.FormFile("logo"); err == nil {
		path, err := h.uploads.SaveOne(fh, "brands")
		if err != nil {
			utils.Fail(c, 400, "UPLOAD_REJECTED", err.Error())
			return
		}
		brand.Logo = &path
	} else if logo := c.PostForm("logo"); logo != "" {
		brand.Logo = &logo
	}

	if err := h.brandRepo.Update(brand); err != nil {
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to update brand")
		return
	}

	resolveBrandLogo(brand, requestBaseURL(c, h.baseURL))
	utils.OK(c, gin.H{"brand": brand})
}

// DeleteBrand handles DELETE /api/brands/:id (admin)
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, 400, "INVALID_ID", "Invalid brand ID")
		return
	}

	if err := h.brandRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Fail(c, 404, "NOT_FOUND", "Brand not found")
			return
		}
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to delete brand")
		return
	}

	utils.OK(c, gin.H{"message": "Brand deleted successfully"})
}

func resolveBrandLogo(brand *models.Brand, base string) {
	if brand.Logo != nil && *brand.Logo != "" {
		resolved := service.AbsoluteURL(base, *brand.Logo)
		brand.Logo = &resolved
	}
}
