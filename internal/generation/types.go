package generation

// File is one boilerplate file, addressed by slash-separated path
// relative to the output directory
type File struct {
	Path    string
	Content string
}

// Confirmer decides whether an existing file may be overwritten
type Confirmer interface {
	Confirm(path string) (bool, error)
}

// Options control a Generate run
type Options struct {
	// Only restricts generation to paths matching any of these
	// doublestar patterns. Empty means every file.
	Only []string
	// Force overwrites existing files without asking.
	Force bool
	// Confirm is consulted for existing files when Force is false.
	// A nil Confirm skips them.
	Confirm Confirmer
	// Report is called after each file is written or skipped.
	Report func(path string, created bool)
}

// Result lists what a Generate run did
type Result struct {
	Created []string
	Skipped []string
}
