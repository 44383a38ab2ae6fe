package views

import (
	"time"

	"natnails.dev/internal/models"
)

// Hero is the full-height banner at the top of a page.
type Hero struct {
	Title    string
	Subtitle string
	CTAText  string
	CTALink  string
	Image    string
}

// WithDefaults fills the call to action when it is left empty.
func (h Hero) WithDefaults() Hero {
	if h.CTAText == "" {
		h.CTAText = "Comenzar"
	}
	if h.CTALink == "" {
		h.CTALink = "/contacto"
	}
	return h
}

const buttonBase = "inline-flex items-center justify-center font-medium rounded-lg transition-colors focus:outline-none focus:ring-2 focus:ring-offset-2"

var buttonVariants = map[string]string{
	"primary":   "bg-pink-600 hover:bg-pink-700 text-white focus:ring-pink-500",
	"secondary": "bg-gray-600 hover:bg-gray-700 text-white focus:ring-gray-500",
	"outline":   "border border-gray-300 bg-white hover:bg-gray-50 text-gray-700 focus:ring-pink-500",
}

var buttonSizes = map[string]string{
	"sm": "px-3 py-2 text-sm",
	"md": "px-4 py-2 text-base",
	"lg": "px-6 py-3 text-lg",
}

// ButtonClass returns the classes for a button. Unknown variants and
// sizes fall back to primary and md.
func ButtonClass(variant, size string, extra ...string) string {
	v, ok := buttonVariants[variant]
	if !ok {
		v = buttonVariants["primary"]
	}
	s, ok := buttonSizes[size]
	if !ok {
		s = buttonSizes["md"]
	}
	return Cn(append([]string{buttonBase, v, s}, extra...)...)
}

// Footer is the site-wide footer block.
type Footer struct {
	Company     string
	Description string
	Links       []models.NavLink
	Email       string
	Phone       string
	Location    string
	Year        int
}

// NewFooter builds the footer for the given site identity.
func NewFooter(company, description, email, phone, location string, now time.Time) Footer {
	return Footer{
		Company:     company,
		Description: description,
		Links: []models.NavLink{
			{Label: "Inicio", Href: "/"},
			{Label: "Servicios", Href: "/servicios"},
			{Label: "Contacto", Href: "/contacto"},
		},
		Email:    email,
		Phone:    phone,
		Location: location,
		Year:     now.Year(),
	}
}
