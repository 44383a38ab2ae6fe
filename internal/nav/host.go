package nav

// ScrollSource is the host page's vertical scroll signal.
type ScrollSource interface {
	// Subscribe registers fn for every scroll notification and returns the
	// function that removes it. Calling cancel more than once must be safe.
	Subscribe(fn func(offset float64)) (cancel func())
}

// Document resolves in-page anchor targets.
type Document interface {
	ElementByID(id string) (Element, bool)
}

// Element is a node that can be brought into view.
type Element interface {
	ScrollIntoView(opts ScrollOptions)
}

// ScrollOptions mirrors the browser's scrollIntoView options.
type ScrollOptions struct {
	Behavior string
	Block    string
}

// SmoothToStart is used for every anchor jump.
var SmoothToStart = ScrollOptions{Behavior: "smooth", Block: "start"}
