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

// CategoryHandler handles the admin-managed category catalog. This is
// distinct from GET /api/products/categories, which lists the category
// names actually in use by products.
type CategoryHandler struct {
	categoryRepo *repository.CategoryRepository
	uploads      *service.UploadService
	baseURL      string
}

// NewCategoryHandler constructs a CategoryHandler.
func NewCategoryHandler(categoryRepo *repository.CategoryRepository, uploads *service.UploadService, baseURL string) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo, uploads: uploads, baseURL: baseURL}
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryRepo.GetAll()
	if err != nil {
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to fetch categories")
		return
	}

	base := requestBaseURL(c, h.baseURL)
	for i := range categories {
		resolveCategoryIcon(&categories[i], base)
	}
	utils.OK(c, gin.H{"categories": categories})
}

// CreateCategory handles POST /api/categories (admin, optional icon upload)
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		utils.FailValidation(c, []string{"name is required"})
		return
	}

	category := &models.Category{
		Name:        name,
		Description: c.PostForm("description"),
	}

	if fh, err := c.FormFile("icon"); err == nil {
		path, err := h.uploads.SaveOne(fh, "categories")
		if err != nil {
			utils.Fail(c, 400, "UPLOAD_REJECTED", err.Error())
			return
		}
		category.Icon = &path
	} else if icon := c.PostForm("icon"); icon != "" {
		category.Icon = &icon
	}

	if err := h.categoryRepo.Create(category); err != nil {
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to create category")
		return
	}

	resolveCategoryIcon(category, requestBaseURL(c, h.baseURL))
	utils.Created(c, gin.H{"category": category})
}

// UpdateCategory handles PUT /api/categories/:id (admin)
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, 400, "INVALID_ID", "Invalid category ID")
		return
	}

	category, err := h.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Fail(c, 404, "NOT_FOUND", "Category not found")
			return
		}
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to load category")
		return
	}

	if name := c.PostForm("name"); name != "" {
		category.Name = name
	}
	if desc := c.PostForm("description"); desc != "" {
		category.Description = desc
	}
	if fh, err := c.FormFile("icon"); err == nil {
		path, err := h.uploads.SaveOne(fh, "categories")
		if err != nil {
			utils.Fail(c, 400, "UPLOAD_REJECTED", err.Error())
			return
		}
		category.Icon = &path
	} else if icon := c.PostForm("icon"); icon != "" {
		category.Icon = &icon
	}

	if err := h.categoryRepo.Update(category); err != nil {
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to update category")
		return
	}

	resolveCategoryIcon(category, requestBaseURL(c, h.baseURL))
	utils.OK(c, gin.H{"category": category})
}

// DeleteCategory handles DELETE /api/categories/:id (admin)
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, 400, "INVALID_ID", "Invalid category ID")
		return
	}

	if err := h.categoryRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Fail(c, 404, "NOT_FOUND", "Category not found")
			return
		}
		utils.Fail(c, 500, "SERVER_ERROR", "Failed to delete category")
		return
	}

	utils.OK(c, gin.H{"message": "Category deleted successfully"})
}

func resolveCategoryIcon(category *models.Category, base string) {
	if category.Icon != nil && *category.Icon != "" {
		resolved := service.AbsoluteURL(base, *category.Icon)
		category.Icon = &resolved
	}
}
