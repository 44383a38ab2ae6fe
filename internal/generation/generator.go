package generation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Generate writes the boilerplate files selected by opts under outputDir
func Generate(outputDir string, opts Options) (*Result, error) {
	files, err := Select(opts.Only)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no components match %v", opts.Only)
	}

	res := &Result{}
	for _, f := range files {
		created, err := writeFile(outputDir, f, opts)
		if err != nil {
			return res, err
		}
		if created {
			res.Created = append(res.Created, f.Path)
		} else {
			res.Skipped = append(res.Skipped, f.Path)
		}
		if opts.Report != nil {
			opts.Report(f.Path, created)
		}
	}
	return res, nil
}

// Select returns the files matching any of patterns, sorted by path
func Select(patterns []string) ([]File, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid pattern %q", p)
		}
	}

	var out []File
	for _, f := range Components {
		if len(patterns) == 0 || matchAny(patterns, f.Path) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func matchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}

// writeFile creates f under dir, reporting whether it was written
func writeFile(dir string, f File, opts Options) (bool, error) {
	path := filepath.Join(dir, filepath.FromSlash(f.Path))

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if !opts.Force {
			if opts.Confirm == nil {
				return false, nil
			}
			ok, err := opts.Confirm.Confirm(f.Path)
			if err != nil {
				return false, fmt.Errorf("confirming %s: %w", f.Path, err)
			}
			if !ok {
				return false, nil
			}
		}
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("checking %s: %w", f.Path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", f.Path, err)
	}
	if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", f.Path, err)
	}
	return true, nil
}
