package handlers

import (
	"net/http"

	"natnails.dev/internal/services"
)

// TestimonialHandler serves testimonials as JSON
type TestimonialHandler struct {
	testimonialService *services.TestimonialService
}

// NewTestimonialHandler creates a new TestimonialHandler
func NewTestimonialHandler(ts *services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: ts}
}

// ListTestimonials handles GET /api/testimonials
func (h *TestimonialHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.testimonialService.GetAll())
}
