package nav

import (
	"slices"

	"natnails.dev/internal/models"
)

// BrandStyle selects how the brand mark is drawn.
type BrandStyle int

const (
	// BrandLogo renders the brand image.
	BrandLogo BrandStyle = iota
	// BrandText renders a wordmark.
	BrandText
)

// LogoURL is the hosted brand image.
const LogoURL = "https://natnails.cloud/wp-content/uploads/2023/11/cropped-Natnails-logo-mini.png"

// BrandMark is the persistent home link in the header.
type BrandMark struct {
	Style BrandStyle
	Text  string
	Image string
	Alt   string
	Href  string
}

// Config parameterises a Widget. The site's header variants are all
// expressed as values of this type.
type Config struct {
	Brand       BrandMark
	Links       []models.NavLink
	Social      []models.SocialLink
	Transparent bool
}

var logoMark = BrandMark{
	Style: BrandLogo,
	Image: LogoURL,
	Alt:   "NatNails Logo",
	Href:  "/",
}

// Floating is the logo plus centred pill menu with social icons.
func Floating() Config {
	return Config{
		Brand: logoMark,
		Links: []models.NavLink{
			{Label: "Inicio", Href: "/"},
			{Label: "Cursos", Href: "https://natnails.cloud"},
		},
		Social: slices.Clone(models.DefaultSocialLinks),
	}
}

// Classic is the full-width bar with the site's page links.
func Classic(transparent bool) Config {
	return Config{
		Brand: BrandMark{Style: BrandText, Text: "NatNails", Href: "/"},
		Links: []models.NavLink{
			{Label: "Inicio", Href: "/"},
			{Label: "Servicios", Href: "/servicios"},
			{Label: "Nosotros", Href: "/nosotros"},
			{Label: "Contacto", Href: "/contacto"},
		},
		Transparent: transparent,
	}
}

// Landing jumps between sections of a single long page.
func Landing() Config {
	return Config{
		Brand: logoMark,
		Links: []models.NavLink{
			{Label: "Inicio", Href: "#contenido"},
			{Label: "Cursos", Href: "#cursos"},
			{Label: "Testimonios", Href: "#testimonios"},
			{Label: "Contacto", Href: "/contacto"},
		},
		Social:      slices.Clone(models.DefaultSocialLinks),
		Transparent: true,
	}
}

// Variant looks up a named header configuration. Unknown names give Floating.
func Variant(name string, transparent bool) Config {
	switch name {
	case "classic":
		return Classic(transparent)
	case "landing":
		return Landing()
	default:
		cfg := Floating()
		cfg.Transparent = transparent
		return cfg
	}
}
