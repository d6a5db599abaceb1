package service

import (
	"strings"

	"github.com/snaapco/snaap_api/internal/models"
)

// AbsoluteURL rewrites a stored relative asset path to a fully-qualified URL
// under base. Already-absolute URLs pass through untouched.
func AbsoluteURL(base, path string) string {
	if path == "" || base == "" {
		return path
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	base = strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// resolveProductMedia rewrites every image path of p to an absolute URL,
// preserving order, and defaults the thumbnail to the first image when none
// is set.
func resolveProductMedia(p *models.Product, base string) {
	for i, img := range p.Images {
		p.Images[i] = AbsoluteURL(base, img)
	}
	if (p.Thumbnail == nil || *p.Thumbnail == "") && len(p.Images) > 0 {
		first := p.Images[0]
		p.Thumbnail = &first
	} else if p.Thumbnail != nil && *p.Thumbnail != "" {
		resolved := AbsoluteURL(base, *p.Thumbnail)
		p.Thumbnail = &resolved
	}
}
