package services

import "natnails.dev/internal/models"

// TestimonialService serves the loaded testimonials
type TestimonialService struct {
	testimonials *models.TestimonialList
}

// NewTestimonialService creates a new TestimonialService
func NewTestimonialService(list *models.TestimonialList) *TestimonialService {
	if list == nil {
		list = &models.TestimonialList{}
	}
	return &TestimonialService{testimonials: list}
}

// GetAll returns all testimonials
func (s *TestimonialService) GetAll() []models.Testimonial {
	out := make([]models.Testimonial, len(s.testimonials.Testimonials))
	copy(out, s.testimonials.Testimonials)
	return out
}
