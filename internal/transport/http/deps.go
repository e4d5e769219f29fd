package http

import (
	"context"
	"time"

	"github.com/event-showcase-api/internal/domain"
	jwtinfra "github.com/event-showcase-api/internal/infrastructure/jwt"
	"github.com/event-showcase-api/internal/infrastructure/mail"
)

// VerificationStore is the minimal interface the router requires from a verification-code backend.
type VerificationStore interface {
	Set(ctx context.Context, email, code string, ttl time.Duration) (*domain.VerificationEntry, error)
	Get(ctx context.Context, email string) (*domain.VerificationEntry, error)
	Delete(ctx context.Context, email string) (bool, error)
	Consume(ctx context.Context, email, code string) error
	Sweep(ctx context.Context) (int, error)
}

// CatalogStore is the minimal interface the router requires from the portfolio store.
type CatalogStore interface {
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

// QuoteStore is the minimal interface the router requires from the quote inbox.
type QuoteStore interface {
	Put(ctx context.Context, q *domain.Quote) error
	List(ctx context.Context) ([]domain.Quote, error)
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	Verifications VerificationStore
	Catalog       CatalogStore
	Quotes        QuoteStore
	Mailer        mail.Mailer
	JWTProvider   *jwtinfra.Provider
	Admin         *domain.AdminUser
}
