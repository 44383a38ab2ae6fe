package views

import (
	"net/url"
	"strings"
)

// DefaultDescription and DefaultImage are used when a page sets none.
const (
	DefaultDescription = "Descripción por defecto"
	DefaultImage       = "/images/og-image.jpg"
)

// SEO is the head metadata of one page.
type SEO struct {
	Title       string
	Description string
	Canonical   string
	URL         string
	Image       string
	NoIndex     bool
}

// NewSEO resolves canonical and image URLs against siteURL.
func NewSEO(siteURL, path, title, description, image string, noIndex bool) SEO {
	if description == "" {
		description = DefaultDescription
	}
	if image == "" {
		image = DefaultImage
	}
	canonical := resolve(siteURL, path)
	return SEO{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		URL:         canonical,
		Image:       resolve(canonical, image),
		NoIndex:     noIndex,
	}
}

func resolve(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if !strings.HasPrefix(r.Path, "/") && r.Host == "" {
		r.Path = "/" + r.Path
	}
	return b.ResolveReference(r).String()
}
