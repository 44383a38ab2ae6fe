package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Server.Addr)
	}
	if cfg.RateLimit.Limit != 5 || cfg.RateLimit.Window != 10*time.Minute {
		t.Errorf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Site.URL != "https://natnails.com.mx" {
		t.Errorf("site url = %q", cfg.Site.URL)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "natnails.yaml")
	yml := `server:
  addr: ":9090"
site:
  url: "https://staging.natnails.com.mx/"
ratelimit:
  limit: 3
  window: 30s
cors:
  allowed_origins: ["http://localhost:4321"]
`
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NATNAILS_DATA_DIR", "/srv/data")
	t.Setenv("NATNAILS_RATELIMIT__REDIS_ADDR", "redis:6379")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Site.URL != "https://staging.natnails.com.mx" {
		t.Errorf("site url should lose trailing slash, got %q", cfg.Site.URL)
	}
	if cfg.RateLimit.Limit != 3 || cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("rate limit = %+v", cfg.RateLimit)
	}
	if cfg.RateLimit.RedisAddr != "redis:6379" {
		t.Errorf("redis addr = %q", cfg.RateLimit.RedisAddr)
	}
	if cfg.DataDir != "/srv/data" {
		t.Errorf("data dir = %q", cfg.DataDir)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://localhost:4321" {
		t.Errorf("cors = %v", cfg.CORS.AllowedOrigins)
	}
	// untouched keys keep their defaults
	if cfg.Site.Name != "NatNails" {
		t.Errorf("site name = %q", cfg.Site.Name)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"relative url", func(c *Config) { c.Site.URL = "natnails.com.mx" }},
		{"no data dir", func(c *Config) { c.DataDir = "" }},
		{"no db path", func(c *Config) { c.Database.Path = "" }},
		{"negative limit", func(c *Config) { c.RateLimit.Limit = -1 }},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLoadContent(t *testing.T) {
	dir := t.TempDir()
	projects := `projects:
  - id: acrilico
    title: Uñas acrílicas
    description: Curso completo
    image: /images/acrilico.jpg
    tags: [acrilico, basico, acrilico, ""]
    featured: true
`
	testimonials := `testimonials:
  - id: t1
    name: Ana
    role: Alumna
    content: Excelente
    rating: 5
`
	if err := os.WriteFile(filepath.Join(dir, "projects.yaml"), []byte(projects), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "testimonials.yaml"), []byte(testimonials), 0644); err != nil {
		t.Fatal(err)
	}

	content, err := LoadContent(dir)
	if err != nil {
		t.Fatalf("LoadContent failed: %v", err)
	}
	p := content.Projects.Projects[0]
	if len(p.Tags) != 2 || p.Tags[0] != "acrilico" || p.Tags[1] != "basico" {
		t.Errorf("tags = %v, want [acrilico basico]", p.Tags)
	}
	if content.Testimonials.Testimonials[0].Name != "Ana" {
		t.Errorf("testimonial = %+v", content.Testimonials.Testimonials[0])
	}
}

func TestLoadContentMissing(t *testing.T) {
	if _, err := LoadContent(t.TempDir()); err == nil {
		t.Error("expected error for missing data files")
	}
}
