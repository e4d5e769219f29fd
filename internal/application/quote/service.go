package quote

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/event-showcase-api/internal/domain"
	"github.com/event-showcase-api/internal/pkg/i18n"
	"github.com/event-showcase-api/internal/pkg/id"
	"github.com/event-showcase-api/internal/pkg/validate"
	"golang.org/x/text/language"
)

// Option ids accepted by the quote form. They mirror the oneof rules on
// domain.QuoteInput.
var (
	EventTypes = []string{"wedding", "corporate", "private", "festival", "other"}
	Services   = []string{"dj", "production", "organization", "technical", "mapping", "media"}
	Budgets    = []string{"1000-5000", "5000-10000", "10000-25000", "25000+", "discuss"}
)

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Options lists the choices of the quote form with labels in one language.
type Options struct {
	EventTypes []Option `json:"event_types"`
	Services   []Option `json:"services"`
	Budgets    []Option `json:"budgets"`
}

type Service interface {
	Submit(ctx context.Context, input domain.QuoteInput) (*domain.Quote, error)
	List(ctx context.Context) ([]domain.Quote, error)
	Options(tag language.Tag) Options
}

type quoteStore interface {
	Put(ctx context.Context, q *domain.Quote) error
	List(ctx context.Context) ([]domain.Quote, error)
}

type service struct {
	store quoteStore
	now   func() time.Time
}

func NewService(store quoteStore) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) Submit(ctx context.Context, input domain.QuoteInput) (*domain.Quote, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	now := s.now().UTC()
	q := &domain.Quote{
		QuoteID:     id.NewAt(now),
		EventType:   input.EventType,
		Services:    dedupe(input.Services),
		EventDate:   input.EventDate,
		GuestCount:  input.GuestCount,
		Budget:      input.Budget,
		Location:    input.Location,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Company:     input.Company,
		Description: input.Description,
		Status:      domain.QuoteStatusNew,
		CreatedAt:   now,
	}
	if err := s.store.Put(ctx, q); err != nil {
		return nil, err
	}
	slog.Info("quote request received", "quote_id", q.QuoteID, "event_type", q.EventType)
	return q, nil
}

func (s *service) List(ctx context.Context) ([]domain.Quote, error) {
	return s.store.List(ctx)
}

func (s *service) Options(tag language.Tag) Options {
	return Options{
		EventTypes: options(tag, "event_type.", EventTypes),
		Services:   options(tag, "service.", Services),
		Budgets:    options(tag, "budget.", Budgets),
	}
}

func options(tag language.Tag, prefix string, ids []string) []Option {
	out := make([]Option, len(ids))
	for i, v := range ids {
		out[i] = Option{ID: v, Label: i18n.T(tag, prefix+v)}
	}
	return out
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
