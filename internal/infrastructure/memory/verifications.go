package memory

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/event-showcase-api/internal/domain"
)

// VerificationStore keeps one-time codes in process memory, keyed by email.
// Expiry is enforced here: an expired entry is never returned from Get.
type VerificationStore struct {
	mu      sync.Mutex
	entries map[string]domain.VerificationEntry
	now     func() time.Time
}

// Option configures a VerificationStore.
type Option func(*VerificationStore)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *VerificationStore) { s.now = now }
}

func NewVerificationStore(opts ...Option) *VerificationStore {
	s := &VerificationStore{
		entries: make(map[string]domain.VerificationEntry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set stores code for email, replacing any previous entry.
func (s *VerificationStore) Set(_ context.Context, email, code string, ttl time.Duration) (*domain.VerificationEntry, error) {
	entry := domain.VerificationEntry{
		Email:     email,
		Code:      code,
		ExpiresAt: s.now().Add(ttl),
	}
	s.mu.Lock()
	s.entries[email] = entry
	s.mu.Unlock()
	slog.Debug("verification code stored", "email", email, "expires_at", entry.ExpiresAt)
	return &entry, nil
}

// Get returns the live entry for email. A missing entry yields
// domain.ErrCodeNotFound; an expired one is removed and yields domain.ErrCodeExpired.
func (s *VerificationStore) Get(_ context.Context, email string) (*domain.VerificationEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[email]
	if !ok {
		return nil, fmt.Errorf("no code for %q: %w", email, domain.ErrCodeNotFound)
	}
	if entry.Expired(s.now()) {
		delete(s.entries, email)
		return nil, fmt.Errorf("code for %q: %w", email, domain.ErrCodeExpired)
	}
	return &entry, nil
}

// Consume checks code against the live entry for email and removes the entry
// on a match. Lookup, compare and delete happen under one lock, so a code
// replaced by a later Set can never be consumed, and of two concurrent
// matching calls only one succeeds.
func (s *VerificationStore) Consume(_ context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[email]
	if !ok {
		return fmt.Errorf("no code for %q: %w", email, domain.ErrCodeNotFound)
	}
	if entry.Expired(s.now()) {
		delete(s.entries, email)
		return fmt.Errorf("code for %q: %w", email, domain.ErrCodeExpired)
	}
	if subtle.ConstantTimeCompare([]byte(entry.Code), []byte(code)) != 1 {
		return fmt.Errorf("code for %q: %w", email, domain.ErrCodeMismatch)
	}
	delete(s.entries, email)
	return nil
}

// Delete removes the entry for email and reports whether one existed.
func (s *VerificationStore) Delete(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[email]
	delete(s.entries, email)
	return ok, nil
}

// Sweep drops every expired entry and returns how many were removed.
func (s *VerificationStore) Sweep(_ context.Context) (int, error) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for email, entry := range s.entries {
		if entry.Expired(now) {
			delete(s.entries, email)
			removed++
		}
	}
	return removed, nil
}

// Len reports the number of stored entries, expired or not.
func (s *VerificationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
