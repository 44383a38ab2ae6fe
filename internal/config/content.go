package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"natnails.dev/internal/models"
)

// Content is the display data the site renders
type Content struct {
	Projects     *models.ProjectList
	Testimonials *models.TestimonialList
}

// LoadContent reads projects.yaml and testimonials.yaml from dataDir
func LoadContent(dataDir string) (*Content, error) {
	var projects models.ProjectList
	if err := loadYAML(filepath.Join(dataDir, "projects.yaml"), &projects); err != nil {
		return nil, err
	}
	for i := range projects.Projects {
		projects.Projects[i].Tags = uniqueTags(projects.Projects[i].Tags)
	}

	var testimonials models.TestimonialList
	if err := loadYAML(filepath.Join(dataDir, "testimonials.yaml"), &testimonials); err != nil {
		return nil, err
	}

	return &Content{Projects: &projects, Testimonials: &testimonials}, nil
}

// loadYAML reads and parses a single data file
func loadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// uniqueTags drops repeated and empty tags, keeping first-seen order
func uniqueTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
