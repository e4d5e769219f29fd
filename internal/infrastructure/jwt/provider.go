package jwtinfra

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/event-showcase-api/internal/config"
	"github.com/event-showcase-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. A challenge token only proves the password step and cannot be
// used as a bearer.
const (
	PurposeAccess    = "access"
	PurposeChallenge = "2fa"
)

// Claims holds the JWT payload fields.
type Claims struct {
	AdminID string `json:"admin_id,omitempty"`
	Email   string `json:"email"`
	Role    string `json:"role,omitempty"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// Provider signs and verifies RS256 JWTs.
type Provider struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	expiry     time.Duration
	now        func() time.Time
}

// NewProvider loads the PEM key pair named in cfg. Outside production a missing
// pair is replaced by a freshly generated one, so tokens do not survive restarts.
func NewProvider(cfg *config.Config) (*Provider, error) {
	privKey, pubKey, err := loadKeys(cfg.JWTPrivateKeyPath, cfg.JWTPublicKeyPath)
	if err != nil {
		if cfg.IsProduction() {
			return nil, err
		}
		slog.Warn("using ephemeral JWT key pair", "err", err)
		privKey, err = rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			return nil, fmt.Errorf("generate key: %w", err)
		}
		pubKey = &privKey.PublicKey
	}
	return NewProviderWithKey(privKey, pubKey, cfg.JWTExpiry), nil
}

func NewProviderWithKey(privKey *rsa.PrivateKey, pubKey *rsa.PublicKey, expiry time.Duration) *Provider {
	return &Provider{privateKey: privKey, publicKey: pubKey, expiry: expiry, now: time.Now}
}

func loadKeys(privPath, pubPath string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privBytes, err := os.ReadFile(privPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read private key: %w", err)
	}
	privKey, err := jwt.ParseRSAPrivateKeyFromPEM(privBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("parse private key: %w", err)
	}

	pubBytes, err := os.ReadFile(pubPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read public key: %w", err)
	}
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("parse public key: %w", err)
	}
	return privKey, pubKey, nil
}

// SignAccess issues a bearer token for an authenticated admin.
func (p *Provider) SignAccess(admin *domain.AdminUser) (string, time.Time, error) {
	expiresAt := p.now().Add(p.expiry)
	token, err := p.sign(Claims{
		AdminID: admin.AdminID,
		Email:   admin.Email,
		Role:    domain.RoleAdmin,
		Purpose: PurposeAccess,
	}, expiresAt)
	return token, expiresAt, err
}

// SignChallenge issues the short-lived token that carries a login between the
// password step and the code step.
func (p *Provider) SignChallenge(email string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := p.now().Add(ttl)
	token, err := p.sign(Claims{Email: email, Purpose: PurposeChallenge}, expiresAt)
	return token, expiresAt, err
}

func (p *Provider) sign(claims Claims, expiresAt time.Time) (string, error) {
	now := p.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(p.privateKey)
}

// Verify parses tokenStr and checks that it was issued for purpose.
func (p *Provider) Verify(tokenStr, purpose string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.publicKey, nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.Purpose != purpose {
		return nil, fmt.Errorf("token purpose %q, want %q", claims.Purpose, purpose)
	}
	return claims, nil
}
