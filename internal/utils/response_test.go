package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(25, 2, 10)
	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 10, p.Limit)
}

func TestNewPaginationEmpty(t *testing.T) {
	p := NewPagination(0, 1, 10)
	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.Pages)
}

func TestNewPaginationDefaults(t *testing.T) {
	p := NewPagination(5, 0, 0)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 1, p.Pages)
}

func TestNewPaginationExactMultiple(t *testing.T) {
	p := NewPagination(30, 1, 10)
	assert.Equal(t, 3, p.Pages)
}
