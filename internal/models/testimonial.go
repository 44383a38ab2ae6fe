package models

// MaxRating is the highest star rating a testimonial can display
const MaxRating = 5

// Testimonial is a student or client quote
type Testimonial struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
	Avatar  string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Rating  int    `json:"rating" yaml:"rating"`
}

// Stars returns the rating clamped to 0..MaxRating
func (t Testimonial) Stars() int {
	if t.Rating < 0 {
		return 0
	}
	if t.Rating > MaxRating {
		return MaxRating
	}
	return t.Rating
}

// TestimonialList wraps the array of testimonials
type TestimonialList struct {
	Testimonials []Testimonial `json:"testimonials" yaml:"testimonials"`
}
