package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
)

// SEOHandler serves sitemap.xml and robots.txt
type SEOHandler struct {
	siteURL string
	pages   []pageDef
}

// NewSEOHandler creates a new SEOHandler
func NewSEOHandler(siteURL string, pages []pageDef) *SEOHandler {
	return &SEOHandler{siteURL: siteURL, pages: pages}
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority,omitempty"`
}

// Sitemap handles GET /sitemap.xml
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range h.pages {
		set.URLs = append(set.URLs, sitemapURL{Loc: h.siteURL + p.Path, Priority: p.Priority})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(out)
}

// Robots handles GET /robots.txt
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", h.siteURL)
}
