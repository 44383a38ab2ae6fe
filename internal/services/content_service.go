package services

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// ErrPageNotFound is returned when no markdown file exists for a slug
var ErrPageNotFound = errors.New("page content not found")

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ContentService renders markdown page bodies from <dataDir>/pages
type ContentService struct {
	dir string
	md  goldmark.Markdown

	mu    sync.RWMutex
	pages map[string]template.HTML // cached renders
}

// NewContentService creates a ContentService rooted at dataDir
func NewContentService(dataDir string) *ContentService {
	return &ContentService{
		dir: filepath.Join(dataDir, "pages"),
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		pages: make(map[string]template.HTML),
	}
}

// Get returns the rendered body for slug, loading it on first use
func (s *ContentService) Get(slug string) (template.HTML, error) {
	if !slugPattern.MatchString(slug) {
		return "", fmt.Errorf("%w: %q", ErrPageNotFound, slug)
	}

	s.mu.RLock()
	page, cached := s.pages[slug]
	s.mu.RUnlock()
	if cached {
		return page, nil
	}

	path := filepath.Join(s.dir, slug+".md")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrPageNotFound, slug)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read page %s: %w", slug, err)
	}

	var buf bytes.Buffer
	if err := s.md.Convert(data, &buf); err != nil {
		return "", fmt.Errorf("failed to render page %s: %w", slug, err)
	}
	page = template.HTML(buf.String())

	s.mu.Lock()
	s.pages[slug] = page
	s.mu.Unlock()

	return page, nil
}
