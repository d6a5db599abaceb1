package service

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/snaapco/snaap_api/internal/models"
	"github.com/snaapco/snaap_api/internal/repository"
	"github.com/snaapco/snaap_api/internal/utils"
)

// ProductAdminService implements admin product CRUD over multipart forms.
type ProductAdminService struct {
	productRepo *repository.ProductRepository
	uploads     *UploadService
}

// NewProductAdminService creates a new ProductAdminService.
func NewProductAdminService(productRepo *repository.ProductRepository, uploads *UploadService) *ProductAdminService {
	return &ProductAdminService{productRepo: productRepo, uploads: uploads}
}

// ProductForm carries the multipart form fields of a create/update request.
// Everything arrives as strings; parsing failures become enumerated
// validation messages.
type ProductForm struct {
	Name             string
	Brand            string
	Category         string
	Model            string
	Price            string
	DiscountPrice    string
	Currency         string
	IsOnSale         string
	SKU              string
	StockQuantity    string
	InStock          string
	Specs            string // JSON object of string keys to string values
	VideoURL         string
	ShortDescription string
	FullDescription  string
	KeyFeatures      string // comma-separated
	Tags             string // comma-separated
	IsFeatured       string
	IsNewRelease     string
	WarrantyPeriod   string
	ReturnPolicyDays string

	// ExistingImages lists already-stored relative paths to retain, in
	// order. New uploads are appended after them.
	ExistingImages []string
}

// validate collects every violated constraint of the form.
func (f *ProductForm) validate() []string {
	var violations []string
	if strings.TrimSpace(f.Name) == "" {
		violations = append(violations, "name is required")
	}
	if strings.TrimSpace(f.Brand) == "" {
		violations = append(violations, "brand is required")
	}
	if strings.TrimSpace(f.Category) == "" {
		violations = append(violations, "category is required")
	}
	if strings.TrimSpace(f.Price) == "" {
		violations = append(violations, "price is required")
	} else if _, err := strconv.ParseFloat(f.Price, 64); err != nil {
		violations = append(violations, "price must be a number")
	}
	if f.DiscountPrice != "" {
		if _, err := strconv.ParseFloat(f.DiscountPrice, 64); err != nil {
			violations = append(violations, "discountPrice must be a number")
		}
	}
	if f.StockQuantity != "" {
		if _, err := strconv.Atoi(f.StockQuantity); err != nil {
			violations = append(violations, "stockQuantity must be an integer")
		}
	}
	if f.ReturnPolicyDays != "" {
		if _, err := strconv.Atoi(f.ReturnPolicyDays); err != nil {
			violations = append(violations, "returnPolicyDays must be an integer")
		}
	}
	if f.Specs != "" {
		var m map[string]string
		if err := json.Unmarshal([]byte(f.Specs), &m); err != nil {
			violations = append(violations, "specs must be a JSON object of strings")
		}
	}
	return violations
}

// CreateProduct validates the form, stores new images, and inserts the
// product. The thumbnail defaults to the first image.
func (s *ProductAdminService) CreateProduct(form *ProductForm, files []*multipart.FileHeader) (*models.Product, error) {
	if violations := form.validate(); len(violations) > 0 {
		return nil, utils.NewValidationError(violations...)
	}

	newImages, err := s.uploads.SaveAll(files, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", utils.ErrUploadRejected, err.Error())
	}

	product := s.buildProduct(form, nil, newImages)
	if product.SKU == "" {
		product.SKU = utils.GenerateSKU(product.Name, product.Brand)
	}

	if err := s.productRepo.Create(product); err != nil {
		s.uploads.Remove(newImages)
		if isUniqueViolation(err) {
			return nil, utils.ErrDuplicateSKU
		}
		log.Error().Err(err).Msg("Failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// UpdateProduct validates the form, merges it over the stored product, and
// persists the result. Retained images come from the form's ExistingImages;
// new uploads are appended after them.
func (s *ProductAdminService) UpdateProduct(id int, form *ProductForm, files []*multipart.FileHeader) (*models.Product, error) {
	existing, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	if violations := form.validate(); len(violations) > 0 {
		return nil, utils.NewValidationError(violations...)
	}

	newImages, err := s.uploads.SaveAll(files, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", utils.ErrUploadRejected, err.Error())
	}

	product := s.buildProduct(form, existing, newImages)
	product.ID = id
	product.CreatedAt = existing.CreatedAt

	if err := s.productRepo.Update(product); err != nil {
		s.uploads.Remove(newImages)
		if isUniqueViolation(err) {
			return nil, utils.ErrDuplicateSKU
		}
		log.Error().Err(err).Int("id", id).Msg("Failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// DeleteProduct removes a product by id.
func (s *ProductAdminService) DeleteProduct(id int) error {
	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// buildProduct assembles a Product from the form. When prev is non-nil,
// empty optional fields fall back to the stored values.
func (s *ProductAdminService) buildProduct(form *ProductForm, prev *models.Product, newImages []string) *models.Product {
	p := &models.Product{}
	if prev != nil {
		*p = *prev
	} else {
		p.Currency = "KES"
		p.InStock = true
		p.ReturnPolicyDays = 30
		p.Specs = models.StringMap{}
		p.KeyFeatures = models.StringList{}
		p.Tags = models.StringList{}
	}

	p.Name = form.Name
	p.Brand = form.Brand
	p.Category = form.Category
	p.Price, _ = strconv.ParseFloat(form.Price, 64)

	if form.SKU != "" {
		p.SKU = form.SKU
	}
	if form.Model != "" {
		model := form.Model
		p.Model = &model
	}
	if form.DiscountPrice != "" {
		dp, _ := strconv.ParseFloat(form.DiscountPrice, 64)
		p.DiscountPrice = &dp
	}
	if form.Currency != "" {
		p.Currency = form.Currency
	}
	if form.IsOnSale != "" {
		p.IsOnSale = form.IsOnSale == "true"
	}
	if form.StockQuantity != "" {
		p.StockQuantity, _ = strconv.Atoi(form.StockQuantity)
	}
	if form.InStock != "" {
		p.InStock = form.InStock != "false"
	}
	if form.Specs != "" {
		specs := models.StringMap{}
		_ = json.Unmarshal([]byte(form.Specs), &specs)
		p.Specs = specs
	}
	if form.VideoURL != "" {
		v := form.VideoURL
		p.VideoURL = &v
	}
	if form.ShortDescription != "" {
		p.ShortDescription = form.ShortDescription
	}
	if form.FullDescription != "" {
		p.FullDescription = form.FullDescription
	}
	if form.KeyFeatures != "" {
		p.KeyFeatures = splitCSV(form.KeyFeatures)
	}
	if form.Tags != "" {
		p.Tags = splitCSV(form.Tags)
	}
	if form.IsFeatured != "" {
		p.IsFeatured = form.IsFeatured == "true"
	}
	if form.IsNewRelease != "" {
		p.IsNewRelease = form.IsNewRelease == "true"
	}
	if form.WarrantyPeriod != "" {
		w := form.WarrantyPeriod
		p.WarrantyPeriod = &w
	}
	if form.ReturnPolicyDays != "" {
		p.ReturnPolicyDays, _ = strconv.Atoi(form.ReturnPolicyDays)
	}

	// Retained images first, new uploads after, thumbnail from the head.
	images := append(models.StringList{}, form.ExistingImages...)
	images = append(images, newImages...)
	p.Images = images
	if len(images) > 0 {
		first := images[0]
		p.Thumbnail = &first
	} else if prev == nil {
		p.Thumbnail = nil
	}

	return p
}

func splitCSV(s string) models.StringList {
	parts := strings.Split(s, ",")
	out := models.StringList{}
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// isUniqueViolation reports whether err is a PostgreSQL unique_violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
