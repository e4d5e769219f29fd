package twofactor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/event-showcase-api/internal/domain"
	pkgtoken "github.com/event-showcase-api/internal/pkg/token"
)

// DefaultTTL is how long an issued code stays valid.
const DefaultTTL = 10 * time.Minute

type Service interface {
	// Issue creates a fresh code for email, replacing any previous one, and
	// hands it to the mailer.
	Issue(ctx context.Context, email string) (*domain.VerificationEntry, error)
	// Verify consumes the code for email. A matching code can be used once.
	Verify(ctx context.Context, email, code string) error
	// RunSweeper removes expired codes every interval until ctx is done.
	RunSweeper(ctx context.Context, interval time.Duration)
}

type codeStore interface {
	Set(ctx context.Context, email, code string, ttl time.Duration) (*domain.VerificationEntry, error)
	// Consume atomically checks code and removes the entry on a match.
	Consume(ctx context.Context, email, code string) error
	Sweep(ctx context.Context) (int, error)
}

type mailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type service struct {
	store   codeStore
	mailer  mailer
	ttl     time.Duration
	newCode func() (string, error)
}

type ServiceDeps struct {
	Store   codeStore
	Mailer  mailer
	TTL     time.Duration
	NewCode func() (string, error) // defaults to pkgtoken.NewCode
}

func NewService(deps ServiceDeps) Service {
	s := &service{
		store:   deps.Store,
		mailer:  deps.Mailer,
		ttl:     deps.TTL,
		newCode: deps.NewCode,
	}
	if s.ttl <= 0 {
		s.ttl = DefaultTTL
	}
	if s.newCode == nil {
		s.newCode = pkgtoken.NewCode
	}
	return s
}

func (s *service) Issue(ctx context.Context, email string) (*domain.VerificationEntry, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email required: %w", domain.ErrBadRequest)
	}
	code, err := s.newCode()
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}
	entry, err := s.store.Set(ctx, email, code, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("store code: %w", err)
	}
	body := fmt.Sprintf("Votre code de vérification : %s. Il expire dans %d minutes.", code, int(s.ttl.Minutes()))
	if err := s.mailer.SendEmail(ctx, email, "Votre code de vérification", body); err != nil {
		return nil, fmt.Errorf("send code: %w", err)
	}
	return entry, nil
}

func (s *service) Verify(ctx context.Context, email, code string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(code) == "" {
		return fmt.Errorf("email and code required: %w", domain.ErrBadRequest)
	}
	return s.store.Consume(ctx, email, code)
}

func (s *service) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.store.Sweep(ctx)
			if err != nil {
				slog.Warn("verification sweep failed", "err", err)
				continue
			}
			if n > 0 {
				slog.Debug("verification sweep", "removed", n)
			}
		}
	}
}
