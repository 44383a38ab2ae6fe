package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"natnails.dev/internal/config"
	"natnails.dev/internal/middleware"
	"natnails.dev/internal/models"
	"natnails.dev/internal/nav"
	"natnails.dev/internal/services"
	"natnails.dev/internal/views"
)

// pageDef describes one public page
type pageDef struct {
	Path        string
	Template    string
	Title       string
	Description string
	Priority    string
}

var pageDefs = []pageDef{
	{Path: "/", Template: "home", Title: "NatNails | Academia profesional de uñas", Description: "Cursos profesionales de uñas en Guadalajara: acrílico, gel y nail art.", Priority: "1.0"},
	{Path: "/servicios", Template: "servicios", Title: "Servicios | NatNails", Description: "Cursos, certificaciones y servicios de NatNails.", Priority: "0.8"},
	{Path: "/nosotros", Template: "nosotros", Title: "Nosotros | NatNails", Description: "Conoce a la academia NatNails.", Priority: "0.6"},
	{Path: "/contacto", Template: "contacto", Title: "Contacto | NatNails", Description: "Escríbenos para recibir informes de nuestros cursos.", Priority: "0.6"},
}

func findPage(path string) pageDef {
	for _, p := range pageDefs {
		if p.Path == path {
			return p
		}
	}
	return pageDefs[0]
}

// PageHandler renders the HTML pages
type PageHandler struct {
	renderer     *views.Renderer
	cfg          *config.Config
	projects     *services.ProjectService
	testimonials *services.TestimonialService
	content      *services.ContentService
	contacts     *services.ContactService
	metrics      *middleware.Metrics
	log          *slog.Logger
	now          func() time.Time
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(
	renderer *views.Renderer,
	cfg *config.Config,
	ps *services.ProjectService,
	ts *services.TestimonialService,
	cs *services.ContentService,
	contacts *services.ContactService,
	m *middleware.Metrics,
	log *slog.Logger,
	now func() time.Time,
) *PageHandler {
	return &PageHandler{
		renderer:     renderer,
		cfg:          cfg,
		projects:     ps,
		testimonials: ts,
		content:      cs,
		contacts:     contacts,
		metrics:      m,
		log:          log,
		now:          now,
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, findPage("/"), nav.Landing())
	data.Hero = &views.Hero{
		Title:    "Conviértete en una profesional de las uñas",
		Subtitle: "Cursos presenciales y en línea con certificación NatNails.",
		CTAText:  "Ver cursos",
		CTALink:  "#cursos",
		Image:    "/static/images/hero.jpg",
	}
	data.Projects = h.projects.GetFeatured()
	data.Testimonials = h.testimonials.GetAll()
	h.render(w, http.StatusOK, "home", data)
}

// Services handles GET /servicios
func (h *PageHandler) Services(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, findPage("/servicios"), h.innerNav())
	data.Body = h.body("servicios")
	data.Projects = h.projects.GetAll()
	h.render(w, http.StatusOK, "servicios", data)
}

// About handles GET /nosotros
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, findPage("/nosotros"), h.innerNav())
	data.Body = h.body("nosotros")
	data.Testimonials = h.testimonials.GetAll()
	h.render(w, http.StatusOK, "nosotros", data)
}

// Contact handles GET /contacto
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, findPage("/contacto"), h.innerNav())
	data.Sent = r.URL.Query().Get("enviado") == "1"
	h.render(w, http.StatusOK, "contacto", data)
}

// SubmitContact handles POST /contacto from the HTML form
func (h *PageHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, findPage("/contacto"), h.innerNav())
	if h.contacts == nil {
		data.Notice = "El formulario no está disponible en este momento."
		h.render(w, http.StatusServiceUnavailable, "contacto", data)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		data.Notice = "No pudimos leer el formulario."
		h.render(w, http.StatusBadRequest, "contacto", data)
		return
	}
	form := models.ContactForm{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Phone:   r.PostForm.Get("phone"),
		Message: r.PostForm.Get("message"),
	}

	_, err := h.contacts.Submit(r.Context(), form, clientIP(r))
	if h.metrics != nil {
		h.metrics.ContactOutcome(contactOutcome(err))
	}
	if err == nil {
		http.Redirect(w, r, "/contacto?enviado=1", http.StatusSeeOther)
		return
	}

	data.Form = form
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		data.Errors = verr.Fields
		h.render(w, http.StatusUnprocessableEntity, "contacto", data)
	case errors.Is(err, services.ErrRateLimited):
		data.Notice = "Recibimos demasiados mensajes desde tu conexión. Intenta más tarde."
		setRetryAfter(w, err)
		h.render(w, http.StatusTooManyRequests, "contacto", data)
	default:
		h.log.Error("contact submission failed", "error", err)
		data.Notice = "No pudimos enviar tu mensaje. Intenta de nuevo."
		h.render(w, http.StatusInternalServerError, "contacto", data)
	}
}

// innerNav is the header used on every page except home
func (h *PageHandler) innerNav() nav.Config {
	return nav.Variant(h.cfg.Site.NavVariant, false)
}

// pageData assembles the shared parts of a page
func (h *PageHandler) pageData(r *http.Request, def pageDef, navCfg nav.Config) views.PageData {
	widget := nav.New(navCfg)
	widget.ApplyQuery(r.URL.Query())

	site := h.cfg.Site
	return views.PageData{
		Site: views.Site{
			Name:     site.Name,
			URL:      site.URL,
			Email:    site.Email,
			Phone:    site.Phone,
			Location: site.Location,
		},
		SEO:    views.NewSEO(site.URL, def.Path, def.Title, def.Description, "", false),
		Nav:    widget.View(def.Path),
		Footer: views.NewFooter(site.Name, site.Description, site.Email, site.Phone, site.Location, h.now()),
	}
}

// body loads markdown content, rendering nothing when the file is absent
func (h *PageHandler) body(slug string) template.HTML {
	html, err := h.content.Get(slug)
	if err != nil {
		if !errors.Is(err, services.ErrPageNotFound) {
			h.log.Error("loading page content", "page", slug, "error", err)
		}
		return ""
	}
	return html
}

// render writes a page or a bare 500 when the template fails
func (h *PageHandler) render(w http.ResponseWriter, status int, page string, data views.PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		h.log.Error("rendering page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
