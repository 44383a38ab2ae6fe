package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"natnails.dev/internal/config"
	"natnails.dev/internal/middleware"
	"natnails.dev/internal/services"
	"natnails.dev/internal/views"
)

// Dependencies are the long-lived values the router is built from
type Dependencies struct {
	Config   *config.Config
	Content  *config.Content
	Contacts *services.ContactService
	Metrics  *middleware.Metrics
	Logger   *slog.Logger
	Now      func() time.Time
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(deps Dependencies) (http.Handler, error) {
	cfg := deps.Config
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Content == nil {
		deps.Content = &config.Content{}
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}

	// Initialize services
	projectService := services.NewProjectService(deps.Content.Projects)
	testimonialService := services.NewTestimonialService(deps.Content.Testimonials)
	contentService := services.NewContentService(cfg.DataDir)

	// Initialize handlers
	pageHandler := NewPageHandler(renderer, cfg, projectService, testimonialService, contentService, deps.Contacts, deps.Metrics, log, deps.Now)
	projectHandler := NewProjectHandler(projectService)
	testimonialHandler := NewTestimonialHandler(testimonialService)
	contactHandler := NewContactHandler(deps.Contacts, deps.Metrics, log)
	seoHandler := NewSEOHandler(cfg.Site.URL, pageDefs)

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/servicios", pageHandler.Services)
	r.Get("/nosotros", pageHandler.About)
	r.Get("/contacto", pageHandler.Contact)
	r.Post("/contacto", pageHandler.SubmitContact)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		r.Get("/testimonials", testimonialHandler.ListTestimonials)
		r.Post("/contact", contactHandler.Submit)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Crawlers
	r.Get("/sitemap.xml", seoHandler.Sitemap)
	r.Get("/robots.txt", seoHandler.Robots)

	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding JSON response", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
