package service

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snaapco/snaap_api/internal/models"
)

func validProductForm() *ProductForm {
	return &ProductForm{
		Name:     "iPhone 15",
		Brand:    "Apple",
		Category: "Phones",
		Price:    "999.99",
	}
}

func TestProductFormValidateOK(t *testing.T) {
	assert.Empty(t, validProductForm().validate())
}

func TestProductFormValidateRequired(t *testing.T) {
	form := &ProductForm{}
	violations := form.validate()
	require.Len(t, violations, 4)
	assert.Contains(t, violations[0], "name")
	assert.Contains(t, violations[1], "brand")
	assert.Contains(t, violations[2], "category")
	assert.Contains(t, violations[3], "price")
}

func TestProductFormValidateNumeric(t *testing.T) {
	form := validProductForm()
	form.Price = "expensive"
	form.DiscountPrice = "cheap"
	form.StockQuantity = "many"
	form.ReturnPolicyDays = "soon"

	violations := form.validate()
	assert.Len(t, violations, 4)
}

func TestProductFormValidateSpecs(t *testing.T) {
	form := validProductForm()
	form.Specs = `{"ram":"8GB","storage":"256GB"}`
	assert.Empty(t, form.validate())

	form.Specs = `["not","an","object"]`
	violations := form.validate()
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "specs")
}

func TestBuildProductDefaults(t *testing.T) {
	svc := &ProductAdminService{}
	p := svc.buildProduct(validProductForm(), nil, nil)

	assert.Equal(t, "KES", p.Currency)
	assert.True(t, p.InStock)
	assert.Equal(t, 30, p.ReturnPolicyDays)
	assert.Equal(t, 999.99, p.Price)
	assert.Nil(t, p.Thumbnail)
}

func TestBuildProductMergesOverExisting(t *testing.T) {
	svc := &ProductAdminService{}
	prev := &models.Product{
		SKU:           "APL-IPH-1",
		Currency:      "USD",
		StockQuantity: 7,
		Images:        models.StringList{"/uploads/old.jpg"},
	}

	form := validProductForm()
	p := svc.buildProduct(form, prev, nil)

	assert.Equal(t, "APL-IPH-1", p.SKU)
	assert.Equal(t, "USD", p.Currency)
	assert.Equal(t, 7, p.StockQuantity)
	assert.Empty(t, p.Images)
}

func TestBuildProductImageOrder(t *testing.T) {
	svc := &ProductAdminService{}
	form := validProductForm()
	form.ExistingImages = []string{"/uploads/keep1.jpg", "/uploads/keep2.jpg"}

	p := svc.buildProduct(form, nil, []string{"/uploads/new1.jpg"})

	require.Len(t, p.Images, 3)
	assert.Equal(t, "/uploads/keep1.jpg", p.Images[0])
	assert.Equal(t, "/uploads/keep2.jpg", p.Images[1])
	assert.Equal(t, "/uploads/new1.jpg", p.Images[2])
	require.NotNil(t, p.Thumbnail)
	assert.Equal(t, "/uploads/keep1.jpg", *p.Thumbnail)
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, models.StringList{"a", "b", "c"}, splitCSV("a, b ,c"))
	assert.Equal(t, models.StringList{}, splitCSV(" , ,"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(assert.AnError))
}
