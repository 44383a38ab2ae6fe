package nav

import (
	"html/template"
	"strconv"
	"strings"
	"sync"
)

const scriptSource = `(function () {
  var nav = document.querySelector('[data-nav]');
  if (!nav) return;
  var bar = nav.querySelector('[data-nav-bar]');
  var toggle = nav.querySelector('[data-nav-toggle]');
  var panel = nav.querySelector('[data-nav-panel]');
  var transparent = nav.getAttribute('data-transparent') === 'true';
  var clear = '__CLEAR__'.split(' ');
  var opaque = '__OPAQUE__'.split(' ');
  var state = { menuOpen: panel ? !panel.hidden : false, scrolled: false };

  function paint() {
    if (bar) {
      var none = transparent && !state.scrolled;
      bar.classList.remove.apply(bar.classList, none ? opaque : clear);
      bar.classList.add.apply(bar.classList, none ? clear : opaque);
    }
    if (panel) panel.hidden = !state.menuOpen;
    if (toggle) {
      toggle.setAttribute('aria-expanded', state.menuOpen ? 'true' : 'false');
      toggle.setAttribute('data-open', state.menuOpen ? 'true' : 'false');
    }
  }

  function onScroll() {
    state.scrolled = window.scrollY > __THRESHOLD__;
    paint();
  }
  window.addEventListener('scroll', onScroll);
  window.addEventListener('pagehide', function () {
    window.removeEventListener('scroll', onScroll);
  }, { once: true });

  if (toggle) {
    toggle.addEventListener('click', function (e) {
      e.preventDefault();
      state.menuOpen = !state.menuOpen;
      paint();
    });
  }

  nav.querySelectorAll('a[data-nav-link]').forEach(function (a) {
    a.addEventListener('click', function (e) {
      var target = a.getAttribute('href') || '';
      if (target.charAt(0) === '#') {
        e.preventDefault();
        var el = target.length > 1 ? document.getElementById(target.slice(1)) : null;
        if (el) el.scrollIntoView({ behavior: 'smooth', block: 'start' });
      }
      if (state.menuOpen) {
        state.menuOpen = false;
        paint();
      }
    });
  });

  paint();
})();`

var (
	scriptOnce sync.Once
	script     template.JS
)

// Script returns the client-side counterpart of Widget.
func Script() template.JS {
	scriptOnce.Do(func() {
		r := strings.NewReplacer(
			"__CLEAR__", ClassClear,
			"__OPAQUE__", ClassOpaque,
			"__THRESHOLD__", strconv.Itoa(ScrollThreshold),
		)
		script = template.JS(r.Replace(scriptSource))
	})
	return script
}
