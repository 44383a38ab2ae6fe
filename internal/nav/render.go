package nav

import (
	"html/template"
	"net/url"
	"strings"

	"natnails.dev/internal/models"
)

// MenuParam is the query parameter that opens the panel without JavaScript.
const MenuParam = "menu"

// Bar classes for each Background.
const (
	ClassClear  = "bg-transparent"
	ClassOpaque = "bg-white/30 border border-white/40 shadow-lg backdrop-blur-md"
)

// LinkView is a NavLink prepared for the template.
type LinkView struct {
	Label    string
	Href     string
	Anchor   bool
	External bool
}

// RenderModel is everything the header template needs.
type RenderModel struct {
	Brand       BrandMark
	Links       []LinkView
	Social      []models.SocialLink
	Transparent bool
	Background  Background
	BarClass    string
	MenuOpen    bool
	ToggleHref  string
	ToggleLabel string
	Script      template.JS
}

// View builds the render model for the page at path.
func (w *Widget) View(path string) RenderModel {
	open := w.MenuOpen()
	bg := w.Background()

	links := make([]LinkView, 0, len(w.cfg.Links))
	for _, l := range w.cfg.Links {
		links = append(links, LinkView{
			Label:    l.Label,
			Href:     l.Href,
			Anchor:   IsAnchor(l.Href),
			External: isExternal(l.Href),
		})
	}

	label := "Abrir menú"
	if open {
		label = "Cerrar menú"
	}

	return RenderModel{
		Brand:       w.cfg.Brand,
		Links:       links,
		Social:      w.cfg.Social,
		Transparent: w.cfg.Transparent,
		Background:  bg,
		BarClass:    barClass(bg),
		MenuOpen:    open,
		ToggleHref:  ToggleHref(path, open),
		ToggleLabel: label,
		Script:      Script(),
	}
}

// ApplyQuery opens the panel when the request asked for it.
func (w *Widget) ApplyQuery(q url.Values) {
	if q.Get(MenuParam) == "open" && !w.MenuOpen() {
		w.Toggle()
	}
}

// ToggleHref is the no-script fallback target of the menu button.
func ToggleHref(path string, open bool) string {
	if path == "" {
		path = "/"
	}
	if open {
		return path
	}
	return path + "?" + MenuParam + "=open"
}

func barClass(bg Background) string {
	if bg == BackgroundNone {
		return ClassClear
	}
	return ClassOpaque
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}
