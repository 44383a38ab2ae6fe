package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"natnails.dev/internal/models"
	"natnails.dev/internal/ratelimit"
)

func sampleProjects() *models.ProjectList {
	return &models.ProjectList{Projects: []models.Project{
		{ID: "acrilico", Title: "Acrílico", Tags: []string{"acrilico", "basico"}, Featured: true},
		{ID: "gel", Title: "Gel", Tags: []string{"gel"}},
		{ID: "nail-art", Title: "Nail art", Tags: []string{"arte", "basico"}, Featured: true},
	}}
}

func TestProjectService(t *testing.T) {
	s := NewProjectService(sampleProjects())

	if got := len(s.GetAll()); got != 3 {
		t.Errorf("GetAll = %d projects, want 3", got)
	}
	if got := len(s.GetFeatured()); got != 2 {
		t.Errorf("GetFeatured = %d projects, want 2", got)
	}

	basico := s.GetByTag("basico")
	if len(basico) != 2 || basico[0].ID != "acrilico" || basico[1].ID != "nail-art" {
		t.Errorf("GetByTag(basico) = %+v", basico)
	}
	if got := s.GetByTag("nada"); got == nil || len(got) != 0 {
		t.Errorf("unknown tag should give an empty, non-nil slice, got %#v", got)
	}

	p, err := s.GetByID("gel")
	if err != nil || p.Title != "Gel" {
		t.Errorf("GetByID(gel) = %+v, %v", p, err)
	}
	if _, err := s.GetByID("nope"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectServiceReturnsCopies(t *testing.T) {
	s := NewProjectService(sampleProjects())
	all := s.GetAll()
	all[0].Title = "changed"
	if p, _ := s.GetByID("acrilico"); p.Title != "Acrílico" {
		t.Error("callers must not be able to mutate loaded projects")
	}
}

func TestTestimonialService(t *testing.T) {
	s := NewTestimonialService(&models.TestimonialList{Testimonials: []models.Testimonial{
		{ID: "1", Name: "Ana", Rating: 9},
	}})
	got := s.GetAll()
	if len(got) != 1 || got[0].Stars() != models.MaxRating {
		t.Errorf("GetAll = %+v", got)
	}
	if NewTestimonialService(nil).GetAll() == nil {
		t.Error("nil list should behave as empty")
	}
}

func TestContentService(t *testing.T) {
	dir := t.TempDir()
	pages := filepath.Join(dir, "pages")
	if err := os.MkdirAll(pages, 0755); err != nil {
		t.Fatal(err)
	}
	md := "# Nosotros\n\nSomos una **academia** de uñas.\n"
	if err := os.WriteFile(filepath.Join(pages, "nosotros.md"), []byte(md), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewContentService(dir)
	html, err := s.Get("nosotros")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !strings.Contains(string(html), `<h1 id="nosotros">Nosotros</h1>`) ||
		!strings.Contains(string(html), "<strong>academia</strong>") {
		t.Errorf("unexpected render: %s", html)
	}

	// served from cache once loaded
	if err := os.Remove(filepath.Join(pages, "nosotros.md")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get("nosotros"); err != nil {
		t.Errorf("cached Get: %v", err)
	}

	for _, slug := range []string{"missing", "../secret", "Nosotros", ""} {
		if _, err := s.Get(slug); !errors.Is(err, ErrPageNotFound) {
			t.Errorf("Get(%q): expected ErrPageNotFound, got %v", slug, err)
		}
	}
}

func TestValidateContact(t *testing.T) {
	long := strings.Repeat("a", MaxMessageLength+1)
	tests := []struct {
		name   string
		form   models.ContactForm
		fields []string
	}{
		{"valid", models.ContactForm{Name: "Ana", Email: "ana@example.com", Message: "Hola"}, nil},
		{"valid phone", models.ContactForm{Name: "Ana", Email: "ana@example.com", Phone: "+52 (33) 1234-5678", Message: "Hola"}, nil},
		{"blank", models.ContactForm{Name: "  ", Email: "", Message: "\n"}, []string{"name", "email", "message"}},
		{"bad email", models.ContactForm{Name: "Ana", Email: "ana@", Message: "Hola"}, []string{"email"}},
		{"display name email", models.ContactForm{Name: "Ana", Email: "Ana <ana@example.com>", Message: "Hola"}, []string{"email"}},
		{"bad phone", models.ContactForm{Name: "Ana", Email: "ana@example.com", Phone: "llámame", Message: "Hola"}, []string{"phone"}},
		{"short phone", models.ContactForm{Name: "Ana", Email: "ana@example.com", Phone: "1234", Message: "Hola"}, []string{"phone"}},
		{"long message", models.ContactForm{Name: "Ana", Email: "ana@example.com", Message: long}, []string{"message"}},
	}

	for _, tt := range tests {
		_, err := ValidateContact(tt.form)
		if len(tt.fields) == 0 {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tt.name, err)
			}
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected ValidationError, got %v", tt.name, err)
			continue
		}
		if len(verr.Fields) != len(tt.fields) {
			t.Errorf("%s: fields = %v, want %v", tt.name, verr.Fields, tt.fields)
		}
		for _, f := range tt.fields {
			if _, ok := verr.Fields[f]; !ok {
				t.Errorf("%s: missing error for %s", tt.name, f)
			}
		}
	}
}

type memoryStore struct {
	saved []*models.ContactSubmission
	err   error
}

func (m *memoryStore) SaveContact(_ context.Context, s *models.ContactSubmission) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, s)
	return nil
}

func TestContactSubmit(t *testing.T) {
	store := &memoryStore{}
	limiter := ratelimit.NewMemory()
	defer limiter.Close()

	s := NewContactService(store, limiter, 2, time.Minute, nil)
	fixed := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	form := models.ContactForm{Name: " Ana ", Email: "ana@example.com", Message: "Informes"}
	sub, err := s.Submit(context.Background(), form, "10.0.0.1")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sub.ID == "" || sub.Name != "Ana" || !sub.CreatedAt.Equal(fixed) || sub.RemoteAddr != "10.0.0.1" {
		t.Errorf("submission = %+v", sub)
	}

	if _, err := s.Submit(context.Background(), form, "10.0.0.1"); err != nil {
		t.Fatalf("second Submit: %v", err)
	}
	if _, err := s.Submit(context.Background(), form, "10.0.0.1"); !errors.Is(err, ErrRateLimited) {
		t.Errorf("third Submit: expected ErrRateLimited, got %v", err)
	}
	if len(store.saved) != 2 {
		t.Errorf("saved = %d, want 2", len(store.saved))
	}
}

func TestContactSubmitRetryAfter(t *testing.T) {
	limiter := ratelimit.NewMemory()
	defer limiter.Close()
	s := NewContactService(&memoryStore{}, limiter, 1, time.Minute, nil)

	form := models.ContactForm{Name: "Ana", Email: "ana@example.com", Message: "Informes"}
	if _, err := s.Submit(context.Background(), form, "10.0.0.9"); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	_, err := s.Submit(context.Background(), form, "10.0.0.9")
	var rerr *RateLimitError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if !errors.Is(err, ErrRateLimited) {
		t.Error("RateLimitError should match ErrRateLimited")
	}
	if rerr.RetryAfter <= 0 || rerr.RetryAfter > time.Minute {
		t.Errorf("RetryAfter = %v, want within the window", rerr.RetryAfter)
	}
}

func TestContactSubmitInvalidSkipsLimiter(t *testing.T) {
	store := &memoryStore{}
	limiter := ratelimit.NewMemory()
	defer limiter.Close()
	s := NewContactService(store, limiter, 1, time.Minute, nil)

	var verr *ValidationError
	if _, err := s.Submit(context.Background(), models.ContactForm{}, "10.0.0.1"); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	good := models.ContactForm{Name: "Ana", Email: "ana@example.com", Message: "Hola"}
	if _, err := s.Submit(context.Background(), good, "10.0.0.1"); err != nil {
		t.Errorf("invalid attempts should not use up the window: %v", err)
	}
}

func TestContactSubmitStoreError(t *testing.T) {
	boom := errors.New("disk full")
	s := NewContactService(&memoryStore{err: boom}, nil, 0, 0, nil)
	good := models.ContactForm{Name: "Ana", Email: "ana@example.com", Message: "Hola"}
	if _, err := s.Submit(context.Background(), good, "10.0.0.1"); !errors.Is(err, boom) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
}
