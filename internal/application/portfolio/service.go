package portfolio

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/event-showcase-api/internal/domain"
	"github.com/event-showcase-api/internal/pkg/slug"
	"github.com/event-showcase-api/internal/pkg/validate"
)

// CategoryAll is the filter value that selects every project.
const CategoryAll = "all"

type Service interface {
	ListProjects(ctx context.Context, categoryID string) ([]domain.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*domain.Project, error)
	CreateProject(ctx context.Context, input domain.ProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, projectID int, input domain.ProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID int) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, input domain.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, input domain.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error

	// Reset replaces the catalog with the demo content.
	Reset(ctx context.Context) error
}

type catalogStore interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, projectID int) (*domain.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*domain.Project, error)
	NextProjectID(ctx context.Context) (int, error)
	PutProject(ctx context.Context, p *domain.Project) error
	DeleteProject(ctx context.Context, projectID int) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*domain.Category, error)
	PutCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
	Replace(ctx context.Context, projects []domain.Project, categories []domain.Category) error
}

type service struct {
	// mu serializes writes so id allocation, slug uniqueness and the
	// category-in-use check see a stable catalog.
	mu    sync.Mutex
	store catalogStore
}

func NewService(store catalogStore) Service {
	return &service{store: store}
}

// --- projects ---

func (s *service) ListProjects(ctx context.Context, categoryID string) ([]domain.Project, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	if categoryID == "" || categoryID == CategoryAll {
		return projects, nil
	}
	return slices.DeleteFunc(projects, func(p domain.Project) bool { return p.CategoryID != categoryID }), nil
}

func (s *service) GetProjectBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	return s.store.GetProjectBySlug(ctx, slug)
}

func (s *service) CreateProject(ctx context.Context, input domain.ProjectInput) (*domain.Project, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}
	projectID, err := s.store.NextProjectID(ctx)
	if err != nil {
		return nil, err
	}
	projectSlug, err := s.resolveSlug(ctx, input, projectID, "")
	if err != nil {
		return nil, err
	}
	p := &domain.Project{ProjectID: projectID}
	apply(p, input)
	p.Slug = projectSlug
	if err := s.store.PutProject(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdateProject(ctx context.Context, projectID int, input domain.ProjectInput) (*domain.Project, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}
	// Without an explicit slug the project keeps its URL.
	projectSlug := p.Slug
	if strings.TrimSpace(input.Slug) != "" {
		if projectSlug, err = s.resolveSlug(ctx, input, projectID, p.Slug); err != nil {
			return nil, err
		}
	}
	apply(p, input)
	p.Slug = projectSlug
	if err := s.store.PutProject(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProject(ctx context.Context, projectID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.DeleteProject(ctx, projectID)
}

func (s *service) requireCategory(ctx context.Context, categoryID string) error {
	if _, err := s.store.GetCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("unknown category %q: %w", categoryID, domain.ErrBadRequest)
	}
	return nil
}

// resolveSlug normalizes an explicit slug or derives one from the title. An
// explicit slug that is taken is a conflict; a derived one gets a numeric suffix.
// current is the project's own slug, which never counts as taken.
func (s *service) resolveSlug(ctx context.Context, input domain.ProjectInput, projectID int, current string) (string, error) {
	explicit := strings.TrimSpace(input.Slug) != ""
	base := slug.Make(input.Slug)
	if !explicit {
		base = slug.Make(input.Title)
	}
	if base == "" {
		if explicit {
			return "", fmt.Errorf("slug %q has no usable characters: %w", input.Slug, domain.ErrBadRequest)
		}
		base = "projet-" + strconv.Itoa(projectID)
	}

	candidate := base
	for n := 2; ; n++ {
		taken, err := s.slugTaken(ctx, candidate, current)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		if explicit {
			return "", fmt.Errorf("slug %q already used: %w", candidate, domain.ErrConflict)
		}
		candidate = base + "-" + strconv.Itoa(n)
	}
}

func (s *service) slugTaken(ctx context.Context, candidate, current string) (bool, error) {
	if candidate == current {
		return false, nil
	}
	_, err := s.store.GetProjectBySlug(ctx, candidate)
	switch {
	case err == nil:
		return true, nil
	case isNotFound(err):
		return false, nil
	default:
		return false, err
	}
}

func apply(p *domain.Project, input domain.ProjectInput) {
	p.Title = strings.TrimSpace(input.Title)
	p.CategoryID = input.CategoryID
	p.Image = input.Image
	p.Gallery = cleanList(input.Gallery)
	p.Description = input.Description
	p.FullDescription = input.FullDescription
	p.Services = cleanList(input.Services)
	p.Client = input.Client
	p.Date = input.Date
	p.Guests = input.Guests
	p.Location = input.Location
}

// cleanList trims entries and drops empty ones and duplicates, keeping order.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// --- categories ---

func (s *service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(categories))
	for _, p := range projects {
		counts[p.CategoryID]++
	}
	for i := range categories {
		categories[i].ProjectCount = counts[categories[i].CategoryID]
	}
	return categories, nil
}

func (s *service) CreateCategory(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	categoryID := slug.Make(input.CategoryID)
	if categoryID == "" {
		categoryID = slug.Make(input.Label)
	}
	if categoryID == "" || categoryID == CategoryAll {
		return nil, fmt.Errorf("invalid category id %q: %w", categoryID, domain.ErrBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.store.GetCategory(ctx, categoryID); err == nil {
		return nil, fmt.Errorf("category %q already exists: %w", categoryID, domain.ErrConflict)
	} else if !isNotFound(err) {
		return nil, err
	}
	c := &domain.Category{
		CategoryID:  categoryID,
		Label:       strings.TrimSpace(input.Label),
		Description: input.Description,
		Color:       colorOrDefault(input.Color),
	}
	if err := s.store.PutCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) UpdateCategory(ctx context.Context, categoryID string, input domain.CategoryInput) (*domain.Category, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	if input.CategoryID != "" && input.CategoryID != categoryID {
		return nil, fmt.Errorf("category id cannot change: %w", domain.ErrBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	c.Label = strings.TrimSpace(input.Label)
	c.Description = input.Description
	c.Color = colorOrDefault(input.Color)
	if err := s.store.PutCategory(ctx, c); err != nil {
		return nil, err
	}
	c.ProjectCount, err = s.countProjects(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) DeleteCategory(ctx context.Context, categoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.store.GetCategory(ctx, categoryID); err != nil {
		return err
	}
	n, err := s.countProjects(ctx, categoryID)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("category %q still has %d projects: %w", categoryID, n, domain.ErrConflict)
	}
	return s.store.DeleteCategory(ctx, categoryID)
}

func (s *service) countProjects(ctx context.Context, categoryID string) (int, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range projects {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func colorOrDefault(color string) string {
	if color == "" {
		return domain.DefaultCategoryColor
	}
	return color
}

func (s *service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Replace(ctx, SeedProjects(), SeedCategories())
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
