package jwtinfra

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/event-showcase-api/internal/config"
	"github.com/event-showcase-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return NewProviderWithKey(key, &key.PublicKey, time.Hour)
}

func TestSignAccess_RoundTrip(t *testing.T) {
	p := newTestProvider(t)
	admin := &domain.AdminUser{AdminID: "admin-1", Email: "a@b.com"}

	tok, exp, err := p.SignAccess(admin)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := p.Verify(tok, PurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestVerify_ChallengeCannotBeUsedAsBearer(t *testing.T) {
	p := newTestProvider(t)

	tok, _, err := p.SignChallenge("a@b.com", time.Minute)
	require.NoError(t, err)

	_, err = p.Verify(tok, PurposeAccess)
	assert.Error(t, err)

	claims, err := p.Verify(tok, PurposeChallenge)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Empty(t, claims.Role)
}

func TestVerify_ExpiredToken(t *testing.T) {
	p := newTestProvider(t)
	now := time.Now()
	p.now = func() time.Time { return now }

	tok, _, err := p.SignChallenge("a@b.com", time.Minute)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = p.Verify(tok, PurposeChallenge)
	assert.Error(t, err)
}

func TestVerify_ForeignKeyRejected(t *testing.T) {
	p1 := newTestProvider(t)
	p2 := newTestProvider(t)

	tok, _, err := p1.SignAccess(&domain.AdminUser{AdminID: "x"})
	require.NoError(t, err)

	_, err = p2.Verify(tok, PurposeAccess)
	assert.Error(t, err)
}

func TestNewProvider_EphemeralKeyOutsideProduction(t *testing.T) {
	cfg := &config.Config{
		AppEnv:            "development",
		JWTPrivateKeyPath: "/nonexistent/private.pem",
		JWTPublicKeyPath:  "/nonexistent/public.pem",
		JWTExpiry:         time.Hour,
	}
	p, err := NewProvider(cfg)
	require.NoError(t, err)

	tok, _, err := p.SignAccess(&domain.AdminUser{AdminID: "x"})
	require.NoError(t, err)
	_, err = p.Verify(tok, PurposeAccess)
	assert.NoError(t, err)
}

func TestNewProvider_MissingKeysFailInProduction(t *testing.T) {
	cfg := &config.Config{
		AppEnv:            "production",
		JWTPrivateKeyPath: "/nonexistent/private.pem",
		JWTPublicKeyPath:  "/nonexistent/public.pem",
	}
	_, err := NewProvider(cfg)
	assert.Error(t, err)
}
