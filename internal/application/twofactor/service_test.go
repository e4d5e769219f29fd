package twofactor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/event-showcase-api/internal/domain"
	"github.com/event-showcase-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// --- mocks ---

type mockCodeStore struct{ mock.Mock }

func (m *mockCodeStore) Set(ctx context.Context, email, code string, ttl time.Duration) (*domain.VerificationEntry, error) {
	args := m.Called(ctx, email, code, ttl)
	if e, _ := args.Get(0).(*domain.VerificationEntry); e != nil {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCodeStore) Consume(ctx context.Context, email, code string) error {
	return m.Called(ctx, email, code).Error(0)
}
func (m *mockCodeStore) Sweep(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

// --- helpers ---

func fixedCode(code string) func() (string, error) {
	return func() (string, error) { return code, nil }
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newMemoryService(clock *fakeClock, code string) (Service, *memory.VerificationStore, *mockMailer) {
	store := memory.NewVerificationStore(memory.WithClock(clock.Now))
	m := &mockMailer{}
	m.On("SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	svc := NewService(ServiceDeps{Store: store, Mailer: m, NewCode: fixedCode(code)})
	return svc, store, m
}

// --- Issue ---

func TestIssue_MissingEmail(t *testing.T) {
	svc := NewService(ServiceDeps{Store: &mockCodeStore{}, Mailer: &mockMailer{}})

	_, err := svc.Issue(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestIssue_StoresWithTenMinuteTTLAndMailsCode(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc, store, m := newMemoryService(clock, "123456")

	entry, err := svc.Issue(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", entry.Code)
	assert.Equal(t, clock.now.Add(10*time.Minute), entry.ExpiresAt)
	assert.Equal(t, 1, store.Len())
	m.AssertCalled(t, "SendEmail", mock.Anything, "a@b.com", mock.Anything, mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "123456")
	}))
}

func TestIssue_StoreFailure(t *testing.T) {
	store := &mockCodeStore{}
	store.On("Set", mock.Anything, "a@b.com", "123456", DefaultTTL).Return(nil, errors.New("boom"))
	svc := NewService(ServiceDeps{Store: store, Mailer: &mockMailer{}, NewCode: fixedCode("123456")})

	_, err := svc.Issue(context.Background(), "a@b.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrBadRequest)
	store.AssertExpectations(t)
}

func TestIssue_GeneratedCodeIsSixDigits(t *testing.T) {
	store := memory.NewVerificationStore()
	m := &mockMailer{}
	m.On("SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	svc := NewService(ServiceDeps{Store: store, Mailer: m})

	entry, err := svc.Issue(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Regexp(t, `^[1-9][0-9]{5}$`, entry.Code)
}

// --- Verify ---

func TestVerify_MissingFields(t *testing.T) {
	svc := NewService(ServiceDeps{Store: &mockCodeStore{}, Mailer: &mockMailer{}})

	assert.ErrorIs(t, svc.Verify(context.Background(), "", "123456"), domain.ErrBadRequest)
	assert.ErrorIs(t, svc.Verify(context.Background(), "a@b.com", ""), domain.ErrBadRequest)
	assert.Empty(t, domain.CodeReason(svc.Verify(context.Background(), "", "")))
}

func TestVerify_CorrectCodeSucceedsOnce(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc, store, _ := newMemoryService(clock, "123456")
	ctx := context.Background()

	_, err := svc.Issue(ctx, "a@b.com")
	require.NoError(t, err)

	require.NoError(t, svc.Verify(ctx, "a@b.com", "123456"))
	assert.Equal(t, 0, store.Len())

	err = svc.Verify(ctx, "a@b.com", "123456")
	assert.ErrorIs(t, err, domain.ErrCodeNotFound)
	assert.Equal(t, "not_found", domain.CodeReason(err))
}

func TestVerify_WrongCodeKeepsEntry(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc, store, _ := newMemoryService(clock, "123456")
	ctx := context.Background()

	_, err := svc.Issue(ctx, "a@b.com")
	require.NoError(t, err)

	err = svc.Verify(ctx, "a@b.com", "654321")
	assert.ErrorIs(t, err, domain.ErrCodeMismatch)
	assert.Equal(t, 1, store.Len())

	assert.NoError(t, svc.Verify(ctx, "a@b.com", "123456"))
}

func TestVerify_ExpiredCode(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc, store, _ := newMemoryService(clock, "123456")
	ctx := context.Background()

	_, err := svc.Issue(ctx, "a@b.com")
	require.NoError(t, err)
	clock.now = clock.now.Add(11 * time.Minute)

	err = svc.Verify(ctx, "a@b.com", "123456")
	assert.ErrorIs(t, err, domain.ErrCodeExpired)
	assert.Equal(t, 0, store.Len())
}

func TestVerify_ReissueReplacesCode(t *testing.T) {
	store := memory.NewVerificationStore()
	m := &mockMailer{}
	m.On("SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	codes := []string{"111111", "222222"}
	svc := NewService(ServiceDeps{Store: store, Mailer: m, NewCode: func() (string, error) {
		c := codes[0]
		codes = codes[1:]
		return c, nil
	}})
	ctx := context.Background()

	_, err := svc.Issue(ctx, "a@b.com")
	require.NoError(t, err)
	_, err = svc.Issue(ctx, "a@b.com")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Verify(ctx, "a@b.com", "111111"), domain.ErrCodeMismatch)
	assert.NoError(t, svc.Verify(ctx, "a@b.com", "222222"))
}

func TestVerify_PassesStoreOutcomeThrough(t *testing.T) {
	store := &mockCodeStore{}
	store.On("Consume", mock.Anything, "a@b.com", "123456").Return(domain.ErrCodeNotFound)
	svc := NewService(ServiceDeps{Store: store, Mailer: &mockMailer{}})

	err := svc.Verify(context.Background(), "a@b.com", "123456")
	assert.ErrorIs(t, err, domain.ErrCodeNotFound)
	store.AssertExpectations(t)
}

// reissuingStore issues a fresh code through the service right before the
// consume reaches the store, as a resend racing a verify would.
type reissuingStore struct {
	*memory.VerificationStore
	reissue func()
}

func (s *reissuingStore) Consume(ctx context.Context, email, code string) error {
	if s.reissue != nil {
		reissue := s.reissue
		s.reissue = nil
		reissue()
	}
	return s.VerificationStore.Consume(ctx, email, code)
}

func TestVerify_ReissueDuringVerifyKillsOldCode(t *testing.T) {
	m := &mockMailer{}
	m.On("SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	codes := []string{"111111", "222222"}
	store := &reissuingStore{VerificationStore: memory.NewVerificationStore()}
	svc := NewService(ServiceDeps{Store: store, Mailer: m, NewCode: func() (string, error) {
		c := codes[0]
		codes = codes[1:]
		return c, nil
	}})
	ctx := context.Background()

	_, err := svc.Issue(ctx, "a@b.com")
	require.NoError(t, err)
	store.reissue = func() {
		_, err := svc.Issue(ctx, "a@b.com")
		require.NoError(t, err)
	}

	assert.ErrorIs(t, svc.Verify(ctx, "a@b.com", "111111"), domain.ErrCodeMismatch)
	assert.NoError(t, svc.Verify(ctx, "a@b.com", "222222"))
}

// --- RunSweeper ---

func TestRunSweeper_SweepsUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	swept := make(chan struct{}, 1)
	store := &mockCodeStore{}
	store.On("Sweep", mock.Anything).Return(2, nil).Run(func(mock.Arguments) {
		select {
		case swept <- struct{}{}:
		default:
		}
	})
	svc := NewService(ServiceDeps{Store: store, Mailer: &mockMailer{}})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.RunSweeper(ctx, 5*time.Millisecond)
		close(done)
	}()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper never ran")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestRunSweeper_KeepsGoingAfterError(t *testing.T) {
	defer goleak.VerifyNone(t)

	calls := make(chan struct{}, 10)
	store := &mockCodeStore{}
	store.On("Sweep", mock.Anything).Return(0, errors.New("boom")).Run(func(mock.Arguments) {
		select {
		case calls <- struct{}{}:
		default:
		}
	})
	svc := NewService(ServiceDeps{Store: store, Mailer: &mockMailer{}})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.RunSweeper(ctx, 5*time.Millisecond)
		close(done)
	}()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("sweeper stopped after an error")
		}
	}
	cancel()
	<-done
}
