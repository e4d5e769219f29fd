package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/event-showcase-api/internal/domain"
)

// QuoteStore is the in-memory inbox of quote requests.
type QuoteStore struct {
	mu     sync.RWMutex
	quotes []domain.Quote
}

func NewQuoteStore() *QuoteStore {
	return &QuoteStore{}
}

func (s *QuoteStore) Put(_ context.Context, q *domain.Quote) error {
	c := *q
	c.Services = slices.Clone(q.Services)
	s.mu.Lock()
	s.quotes = append(s.quotes, c)
	s.mu.Unlock()
	return nil
}

// List returns quotes newest first.
func (s *QuoteStore) List(_ context.Context) ([]domain.Quote, error) {
	s.mu.RLock()
	out := slices.Clone(s.quotes)
	s.mu.RUnlock()
	slices.Reverse(out)
	return out, nil
}
