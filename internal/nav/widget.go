// Package nav implements the site header: a brand mark, a desktop link
// list and a collapsible mobile panel whose look depends on scroll position.
package nav

import (
	"strings"
	"sync"
)

// ScrollThreshold is the vertical offset, in pixels, past which the page
// counts as scrolled.
const ScrollThreshold = 10

// Background is the header bar treatment.
type Background string

const (
	BackgroundNone   Background = "none"
	BackgroundOpaque Background = "opaque"
)

// BackgroundFor returns the bar treatment for the given inputs.
func BackgroundFor(transparent, scrolled bool) Background {
	if transparent && !scrolled {
		return BackgroundNone
	}
	return BackgroundOpaque
}

// IsScrolled reports whether offset is past ScrollThreshold.
func IsScrolled(offset float64) bool {
	return offset > ScrollThreshold
}

// Outcome describes what happened when a link was activated.
type Outcome struct {
	// PreventDefault is set when normal link following must be suppressed.
	PreventDefault bool
	// ScrolledTo is the id of the element brought into view, if any.
	ScrolledTo string
}

// Widget holds the header state for one page view.
type Widget struct {
	cfg Config

	mu       sync.Mutex
	menuOpen bool
	scrolled bool
	sub      *subscription
}

type subscription struct {
	cancel func()
	once   sync.Once
}

// New creates a closed, unscrolled widget.
func New(cfg Config) *Widget {
	return &Widget{cfg: cfg}
}

// Config returns the widget configuration.
func (w *Widget) Config() Config {
	return w.cfg
}

// Mount subscribes to src. A widget that is already mounted is unmounted
// first. Mount and Unmount are called from the host's lifecycle, scroll
// notifications may arrive from any goroutine.
func (w *Widget) Mount(src ScrollSource) {
	w.Unmount()

	sub := &subscription{}
	w.mu.Lock()
	w.sub = sub
	w.mu.Unlock()

	cancel := src.Subscribe(func(offset float64) {
		w.mu.Lock()
		defer w.mu.Unlock()
		// late deliveries from a released subscription are dropped
		if w.sub != sub {
			return
		}
		w.scrolled = IsScrolled(offset)
	})

	w.mu.Lock()
	sub.cancel = cancel
	released := w.sub != sub
	w.mu.Unlock()

	// unmounted while subscribing
	if released && cancel != nil {
		sub.once.Do(cancel)
	}
}

// Unmount releases the scroll subscription. It is safe to call at any time.
func (w *Widget) Unmount() {
	w.mu.Lock()
	sub := w.sub
	w.sub = nil
	var cancel func()
	if sub != nil {
		cancel = sub.cancel
	}
	w.mu.Unlock()

	if cancel != nil {
		sub.once.Do(cancel)
	}
}

// Mounted reports whether a scroll subscription is held.
func (w *Widget) Mounted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sub != nil
}

// Toggle flips the mobile panel.
func (w *Widget) Toggle() {
	w.mu.Lock()
	w.menuOpen = !w.menuOpen
	w.mu.Unlock()
}

// Select handles activation of a link. In-page anchors ("#id") suppress
// navigation and scroll the target into view; a missing target is ignored.
// Any activation closes an open panel.
func (w *Widget) Select(href string, doc Document) Outcome {
	var out Outcome
	if IsAnchor(href) {
		out.PreventDefault = true
		id := strings.TrimPrefix(href, "#")
		if doc != nil && id != "" {
			if el, ok := doc.ElementByID(id); ok {
				el.ScrollIntoView(SmoothToStart)
				out.ScrolledTo = id
			}
		}
	}

	w.mu.Lock()
	w.menuOpen = false
	w.mu.Unlock()

	return out
}

// MenuOpen reports whether the mobile panel is shown.
func (w *Widget) MenuOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.menuOpen
}

// Scrolled reports whether the page is past ScrollThreshold.
func (w *Widget) Scrolled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scrolled
}

// Background returns the current bar treatment.
func (w *Widget) Background() Background {
	return BackgroundFor(w.cfg.Transparent, w.Scrolled())
}

// IsAnchor reports whether href targets an element on the current page.
func IsAnchor(href string) bool {
	return strings.HasPrefix(href, "#")
}
