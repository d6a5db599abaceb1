package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/snaapco/snaap_api/internal/models"
	"github.com/snaapco/snaap_api/internal/repository"
	"github.com/snaapco/snaap_api/internal/utils"
)

// CatalogService answers public catalog reads: filtered listings, product
// detail, and the distinct category/brand sets actually in use.
type CatalogService struct {
	productRepo *repository.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(productRepo *repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// ListProductsRequest carries raw listing filters. Numeric bounds arrive as
// strings so malformed values surface as validation errors instead of being
// silently dropped.
type ListProductsRequest struct {
	Category   string
	Brand      string
	Featured   string
	NewRelease string
	MinPrice   string
	MaxPrice   string
	Search     string
	Sort       string
	Page       int
	Limit      int

	// BaseURL is the absolute prefix for rewriting stored asset paths,
	// derived from the request host or the configured override.
	BaseURL string
}

// ListProductsResult is one page of the catalog plus the total match count.
type ListProductsResult struct {
	Products []models.Product
	Total    int
	Page     int
	Limit    int
}

// ListProducts runs the catalog query. All supplied filters apply together;
// a page past the end yields an empty list with the true total.
func (s *CatalogService) ListProducts(req *ListProductsRequest) (*ListProductsResult, error) {
	params := &repository.ListParams{
		Category: req.Category,
		Brand:    req.Brand,
		Search:   req.Search,
		Sort:     req.Sort,
		Page:     req.Page,
		Limit:    req.Limit,
	}

	var violations []string
	if req.MinPrice != "" {
		v, err := strconv.ParseFloat(req.MinPrice, 64)
		if err != nil {
			violations = append(violations, "minPrice must be a number")
		} else {
			params.MinPrice = &v
		}
	}
	if req.MaxPrice != "" {
		v, err := strconv.ParseFloat(req.MaxPrice, 64)
		if err != nil {
			violations = append(violations, "maxPrice must be a number")
		} else {
			params.MaxPrice = &v
		}
	}
	if len(violations) > 0 {
		return nil, utils.NewValidationError(violations...)
	}

	if req.Featured != "" {
		featured := req.Featured == "true"
		params.Featured = &featured
	}
	if req.NewRelease != "" {
		newRelease := req.NewRelease == "true"
		params.NewRelease = &newRelease
	}

	products, total, err := s.productRepo.List(params)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	for i := range products {
		resolveProductMedia(&products[i], req.BaseURL)
	}

	return &ListProductsResult{
		Products: products,
		Total:    total,
		Page:     params.Page,
		Limit:    params.Limit,
	}, nil
}

// GetProduct returns one product with media resolved against baseURL.
func (s *CatalogService) GetProduct(id int, baseURL string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	resolveProductMedia(product, baseURL)
	return product, nil
}

// UsedCategories returns the distinct category names present on products.
// This is the filter-UI source, not the admin category catalog.
func (s *CatalogService) UsedCategories() ([]string, error) {
	return s.productRepo.DistinctCategories()
}

// UsedBrands returns the distinct brand names present on products.
func (s *CatalogService) UsedBrands() ([]string, error) {
	return s.productRepo.DistinctBrands()
}
