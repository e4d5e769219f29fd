package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/event-showcase-api/internal/domain"
	jwtinfra "github.com/event-showcase-api/internal/infrastructure/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AdminID is the identifier of the single configured admin account.
const AdminID = "1"

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TwoFactorRequest struct {
	Challenge string `json:"challenge" validate:"required"`
	Code      string `json:"code" validate:"required"`
}

// Session is the result of a completed sign-in.
type Session struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Admin     *domain.AdminUser `json:"admin"`
}

// LoginResult carries either a finished session or the challenge for the
// second step. Code is the issued verification code, exposed only in demo mode.
type LoginResult struct {
	TwoFactorRequired  bool      `json:"two_factor_required"`
	Challenge          string    `json:"challenge,omitempty"`
	ChallengeExpiresAt time.Time `json:"challenge_expires_at,omitzero"`
	Session            *Session  `json:"session,omitempty"`
	Code               string    `json:"-"`
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	CompleteTwoFactor(ctx context.Context, req TwoFactorRequest) (*Session, error)
	ResetPassword(ctx context.Context, email string) error
	Me(ctx context.Context, adminID string) (*domain.AdminUser, error)
}

type codeIssuer interface {
	Issue(ctx context.Context, email string) (*domain.VerificationEntry, error)
	Verify(ctx context.Context, email, code string) error
}

type tokenProvider interface {
	SignAccess(admin *domain.AdminUser) (string, time.Time, error)
	SignChallenge(email string, ttl time.Duration) (string, time.Time, error)
	Verify(token, purpose string) (*jwtinfra.Claims, error)
}

type mailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type service struct {
	admin        *domain.AdminUser
	codes        codeIssuer
	tokens       tokenProvider
	mailer       mailer
	challengeTTL time.Duration
}

type ServiceDeps struct {
	Admin        *domain.AdminUser
	Codes        codeIssuer
	Tokens       tokenProvider
	Mailer       mailer
	ChallengeTTL time.Duration
}

func NewService(deps ServiceDeps) Service {
	ttl := deps.ChallengeTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &service{
		admin:        deps.Admin,
		codes:        deps.Codes,
		tokens:       deps.Tokens,
		mailer:       deps.Mailer,
		challengeTTL: ttl,
	}
}

// NewAdmin builds the admin account. A non-empty passwordHash must be a bcrypt
// hash; otherwise password is hashed here.
func NewAdmin(email, name, passwordHash, password string, twoFactor bool) (*domain.AdminUser, error) {
	if passwordHash == "" {
		if password == "" {
			return nil, fmt.Errorf("admin password required: %w", domain.ErrBadRequest)
		}
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		passwordHash = string(h)
	} else if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, fmt.Errorf("admin password hash: %w", err)
	}
	return &domain.AdminUser{
		AdminID:          AdminID,
		Email:            email,
		Name:             name,
		PasswordHash:     passwordHash,
		TwoFactorEnabled: twoFactor,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	emailOK := strings.EqualFold(strings.TrimSpace(req.Email), s.admin.Email)
	// Compare even on an unknown email so both failures take the same time.
	pwErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password))
	if !emailOK || pwErr != nil {
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}

	if !s.admin.TwoFactorEnabled {
		sess, err := s.newSession()
		if err != nil {
			return nil, err
		}
		return &LoginResult{Session: sess}, nil
	}

	entry, err := s.codes.Issue(ctx, s.admin.Email)
	if err != nil {
		return nil, err
	}
	challenge, exp, err := s.tokens.SignChallenge(s.admin.Email, s.challengeTTL)
	if err != nil {
		return nil, fmt.Errorf("sign challenge: %w", err)
	}
	return &LoginResult{
		TwoFactorRequired:  true,
		Challenge:          challenge,
		ChallengeExpiresAt: exp,
		Code:               entry.Code,
	}, nil
}

func (s *service) CompleteTwoFactor(ctx context.Context, req TwoFactorRequest) (*Session, error) {
	claims, err := s.tokens.Verify(req.Challenge, jwtinfra.PurposeChallenge)
	if err != nil {
		return nil, fmt.Errorf("challenge: %v: %w", err, domain.ErrUnauthorized)
	}
	if !strings.EqualFold(claims.Email, s.admin.Email) {
		return nil, fmt.Errorf("challenge for unknown account: %w", domain.ErrUnauthorized)
	}
	if err := s.codes.Verify(ctx, claims.Email, req.Code); err != nil {
		return nil, err
	}
	return s.newSession()
}

func (s *service) newSession() (*Session, error) {
	token, exp, err := s.tokens.SignAccess(s.admin)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	return &Session{Token: token, ExpiresAt: exp, Admin: s.admin}, nil
}

// ResetPassword only simulates the reset mail; the admin password comes from
// configuration and cannot be changed through the API.
func (s *service) ResetPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email required: %w", domain.ErrBadRequest)
	}
	if !strings.EqualFold(email, s.admin.Email) {
		return fmt.Errorf("no account for %q: %w", email, domain.ErrNotFound)
	}
	if err := s.mailer.SendEmail(ctx, s.admin.Email, "Réinitialisation du mot de passe",
		"Une demande de réinitialisation a été reçue pour votre compte."); err != nil {
		slog.Warn("failed to send reset email", "err", err)
	}
	return nil
}

func (s *service) Me(_ context.Context, adminID string) (*domain.AdminUser, error) {
	if adminID != s.admin.AdminID {
		return nil, fmt.Errorf("admin %q: %w", adminID, domain.ErrNotFound)
	}
	return s.admin, nil
}
