package services

import (
	"errors"
	"fmt"

	"natnails.dev/internal/models"
)

// ErrProjectNotFound is returned by GetByID for unknown ids
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	projects *models.ProjectList
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects *models.ProjectList) *ProjectService {
	if projects == nil {
		projects = &models.ProjectList{}
	}
	return &ProjectService{projects: projects}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	out := make([]models.Project, len(s.projects.Projects))
	copy(out, s.projects.Projects)
	return out
}

// GetFeatured returns the projects flagged for the home page
func (s *ProjectService) GetFeatured() []models.Project {
	var out []models.Project
	for _, p := range s.projects.Projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// GetByTag returns the projects carrying tag
func (s *ProjectService) GetByTag(tag string) []models.Project {
	out := []models.Project{}
	for _, p := range s.projects.Projects {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (models.Project, error) {
	for _, p := range s.projects.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}
