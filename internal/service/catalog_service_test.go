package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snaapco/snaap_api/internal/utils"
)

func TestListProductsRejectsBadPriceBounds(t *testing.T) {
	svc := NewCatalogService(nil)

	_, err := svc.ListProducts(&ListProductsRequest{MinPrice: "abc"})
	ve, ok := utils.AsValidation(err)
	require.True(t, ok)
	require.Len(t, ve.Messages, 1)
	assert.Contains(t, ve.Messages[0], "minPrice")

	_, err = svc.ListProducts(&ListProductsRequest{MinPrice: "abc", MaxPrice: "xyz"})
	ve, ok = utils.AsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Messages, 2)
}
