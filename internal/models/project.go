package models

// Project represents a course or showcase piece shown on the site
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image" yaml:"image"`
	Tags        []string `json:"tags" yaml:"tags"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	GitHub      string   `json:"github,omitempty" yaml:"github,omitempty"`
	Featured    bool     `json:"featured" yaml:"featured"`
}

// HasTag reports whether the project carries the given tag
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}
