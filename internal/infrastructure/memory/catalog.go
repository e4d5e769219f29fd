package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/event-showcase-api/internal/domain"
)

// CatalogStore holds portfolio projects and categories for the lifetime of the
// process. Values are copied in and out so callers never share slices with the store.
type CatalogStore struct {
	mu         sync.RWMutex
	projects   map[int]domain.Project
	categories []domain.Category // display order
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{projects: make(map[int]domain.Project)}
}

func (s *CatalogStore) ListProjects(_ context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, cloneProject(p))
	}
	slices.SortFunc(out, func(a, b domain.Project) int { return a.ProjectID - b.ProjectID })
	return out, nil
}

func (s *CatalogStore) GetProject(_ context.Context, projectID int) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("project %d: %w", projectID, domain.ErrNotFound)
	}
	p = cloneProject(p)
	return &p, nil
}

func (s *CatalogStore) GetProjectBySlug(_ context.Context, slug string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.Slug == slug {
			p = cloneProject(p)
			return &p, nil
		}
	}
	return nil, fmt.Errorf("project %q: %w", slug, domain.ErrNotFound)
}

// NextProjectID returns max(id)+1, or 1 for an empty catalog.
func (s *CatalogStore) NextProjectID(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	next := 1
	for id := range s.projects {
		if id >= next {
			next = id + 1
		}
	}
	return next, nil
}

func (s *CatalogStore) PutProject(_ context.Context, p *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[p.ProjectID] = cloneProject(*p)
	return nil
}

func (s *CatalogStore) DeleteProject(_ context.Context, projectID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[projectID]; !ok {
		return fmt.Errorf("project %d: %w", projectID, domain.ErrNotFound)
	}
	delete(s.projects, projectID)
	return nil
}

func (s *CatalogStore) ListCategories(_ context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories), nil
}

func (s *CatalogStore) GetCategory(_ context.Context, categoryID string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.categoryIndex(categoryID); i >= 0 {
		c := s.categories[i]
		return &c, nil
	}
	return nil, fmt.Errorf("category %q: %w", categoryID, domain.ErrNotFound)
}

// PutCategory inserts c at the end of the list or replaces it in place.
func (s *CatalogStore) PutCategory(_ context.Context, c *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.categoryIndex(c.CategoryID); i >= 0 {
		s.categories[i] = *c
		return nil
	}
	s.categories = append(s.categories, *c)
	return nil
}

func (s *CatalogStore) DeleteCategory(_ context.Context, categoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.categoryIndex(categoryID)
	if i < 0 {
		return fmt.Errorf("category %q: %w", categoryID, domain.ErrNotFound)
	}
	s.categories = slices.Delete(s.categories, i, i+1)
	return nil
}

// Replace swaps the whole catalog in one step.
func (s *CatalogStore) Replace(_ context.Context, projects []domain.Project, categories []domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = make(map[int]domain.Project, len(projects))
	for _, p := range projects {
		s.projects[p.ProjectID] = cloneProject(p)
	}
	s.categories = slices.Clone(categories)
	return nil
}

// categoryIndex must be called with mu held.
func (s *CatalogStore) categoryIndex(categoryID string) int {
	return slices.IndexFunc(s.categories, func(c domain.Category) bool { return c.CategoryID == categoryID })
}

func cloneProject(p domain.Project) domain.Project {
	p.Gallery = slices.Clone(p.Gallery)
	p.Services = slices.Clone(p.Services)
	return p
}
