// Package views renders the site's pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"natnails.dev/internal/models"
	"natnails.dev/internal/nav"
)

//go:embed templates
var templateFS embed.FS

// Site is the identity shared by every page.
type Site struct {
	Name     string
	URL      string
	Email    string
	Phone    string
	Location string
}

// PageData is the view model passed to the layout.
type PageData struct {
	Site   Site
	SEO    SEO
	Nav    nav.RenderModel
	Footer Footer
	Hero   *Hero

	Projects     []models.Project
	Testimonials []models.Testimonial
	Body         template.HTML

	Form   models.ContactForm
	Errors map[string]string
	Notice string
	Sent   bool
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// Funcs are available in every template.
var Funcs = template.FuncMap{
	"cn":          Cn,
	"buttonClass": ButtonClass,
	"slugify":     Slugify,
	"formatDate":  FormatDate,
	"stars": func(n int) []struct{} {
		return make([]struct{}, n)
	},
	"heroDefaults": func(h *Hero) Hero {
		if h == nil {
			return Hero{}.WithDefaults()
		}
		return h.WithDefaults()
	},
}

// NewRenderer parses the layout, partials and every page template.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout").Funcs(Funcs).ParseFS(templateFS,
		"templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		name := strings.TrimSuffix(path.Base(f), ".html")
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, f); err != nil {
			return nil, fmt.Errorf("parsing page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Has reports whether a page template exists.
func (r *Renderer) Has(page string) bool {
	_, ok := r.pages[page]
	return ok
}

// Render executes page into w. Output is buffered so a template error
// never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, page string, data PageData) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("rendering %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
