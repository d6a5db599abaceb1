package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snaapco/snaap_api/internal/models"
)

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{"http://localhost:8080", "/uploads/a.jpg", "http://localhost:8080/uploads/a.jpg"},
		{"http://localhost:8080/", "/uploads/a.jpg", "http://localhost:8080/uploads/a.jpg"},
		{"http://localhost:8080", "uploads/a.jpg", "http://localhost:8080/uploads/a.jpg"},
		{"http://localhost:8080", "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"http://localhost:8080", "http://cdn.example.com/a.jpg", "http://cdn.example.com/a.jpg"},
		{"", "/uploads/a.jpg", "/uploads/a.jpg"},
		{"http://localhost:8080", "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AbsoluteURL(tt.base, tt.path), "base=%q path=%q", tt.base, tt.path)
	}
}

func TestResolveProductMediaDefaultsThumbnail(t *testing.T) {
	p := &models.Product{
		Images: models.StringList{"/uploads/one.jpg", "/uploads/two.jpg"},
	}
	resolveProductMedia(p, "http://localhost:8080")

	assert.Equal(t, "http://localhost:8080/uploads/one.jpg", p.Images[0])
	assert.Equal(t, "http://localhost:8080/uploads/two.jpg", p.Images[1])
	require.NotNil(t, p.Thumbnail)
	assert.Equal(t, "http://localhost:8080/uploads/one.jpg", *p.Thumbnail)
}

func TestResolveProductMediaKeepsExplicitThumbnail(t *testing.T) {
	thumb := "/uploads/thumb.jpg"
	p := &models.Product{
		Images:    models.StringList{"/uploads/one.jpg"},
		Thumbnail: &thumb,
	}
	resolveProductMedia(p, "http://localhost:8080")

	require.NotNil(t, p.Thumbnail)
	assert.Equal(t, "http://localhost:8080/uploads/thumb.jpg", *p.Thumbnail)
}

func TestResolveProductMediaNoImages(t *testing.T) {
	p := &models.Product{}
	resolveProductMedia(p, "http://localhost:8080")
	assert.Nil(t, p.Thumbnail)
	assert.Empty(t, p.Images)
}
