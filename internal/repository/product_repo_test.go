package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool      { return &b }
func f64Ptr(f float64) *float64 { return &f }

func TestListParamsNormalize(t *testing.T) {
	p := &ListParams{}
	p.normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 12, p.Limit)

	p = &ListParams{Page: -3, Limit: 500}
	p.normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.Limit)

	p = &ListParams{Page: 4, Limit: 24}
	p.normalize()
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 24, p.Limit)
}

func TestWhereClauseNoFilters(t *testing.T) {
	p := &ListParams{}
	where, args := p.whereClause()
	assert.Equal(t, "WHERE 1=1", where)
	assert.Empty(t, args)
}

func TestWhereClauseAllFilters(t *testing.T) {
	p := &ListParams{
		Category:   "Phones",
		Brand:      "Apple",
		Featured:   boolPtr(true),
		NewRelease: boolPtr(false),
		MinPrice:   f64Ptr(100),
		MaxPrice:   f64Ptr(900),
		Search:     "pro",
	}
	where, args := p.whereClause()

	assert.Contains(t, where, "category = $1")
	assert.Contains(t, where, "brand = $2")
	assert.Contains(t, where, "is_featured = $3")
	assert.Contains(t, where, "is_new_release = $4")
	assert.Contains(t, where, "price >= $5")
	assert.Contains(t, where, "price <= $6")
	assert.Contains(t, where, "name ILIKE $7")
	assert.Contains(t, where, "tags::text ILIKE $7")

	require.Len(t, args, 7)
	assert.Equal(t, "Phones", args[0])
	assert.Equal(t, "Apple", args[1])
	assert.Equal(t, true, args[2])
	assert.Equal(t, false, args[3])
	assert.Equal(t, 100.0, args[4])
	assert.Equal(t, 900.0, args[5])
	assert.Equal(t, "%pro%", args[6])
}

func TestWhereClauseSearchOnly(t *testing.T) {
	p := &ListParams{Search: "camera"}
	where, args := p.whereClause()

	assert.Contains(t, where, "short_description ILIKE $1")
	require.Len(t, args, 1)
	assert.Equal(t, "%camera%", args[0])
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		sort string
		want string
	}{
		{SortPriceLow, "ORDER BY price ASC, id ASC"},
		{SortPriceHigh, "ORDER BY price DESC, id DESC"},
		{SortPopular, "ORDER BY is_featured DESC, created_at DESC, id DESC"},
		{SortNewest, "ORDER BY created_at DESC, id DESC"},
		{"", "ORDER BY created_at DESC, id DESC"},
		{"bogus", "ORDER BY created_at DESC, id DESC"},
	}
	for _, tt := range tests {
		p := &ListParams{Sort: tt.sort}
		assert.Equal(t, tt.want, p.orderClause(), "sort=%q", tt.sort)
	}
}
