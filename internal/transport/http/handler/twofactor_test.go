package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/event-showcase-api/internal/domain"
	"github.com/event-showcase-api/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func serveWithLocale(h http.HandlerFunc, rr *httptest.ResponseRecorder, r *http.Request) {
	middleware.Locale(h).ServeHTTP(rr, r)
}

func TestSend_MissingEmail(t *testing.T) {
	h := NewTwoFactorHandler(&mockTwoFactorSvc{}, true)
	rr := httptest.NewRecorder()
	serveWithLocale(h.Send, rr, jsonReq(t, http.MethodPost, "/v1/auth/send-2fa", map[string]string{}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	res := decodeBody[ResultEnvelope](t, rr)
	assert.False(t, res.Success)
	assert.Equal(t, "Email requis", res.Message)
}

func TestSend_InvalidBody(t *testing.T) {
	h := NewTwoFactorHandler(&mockTwoFactorSvc{}, true)
	rr := httptest.NewRecorder()
	serveWithLocale(h.Send, rr, httptest.NewRequest(http.MethodPost, "/v1/auth/send-2fa", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSend_DemoModeEchoesCode(t *testing.T) {
	svc := &mockTwoFactorSvc{}
	exp := time.Now().Add(10 * time.Minute)
	svc.On("Issue", mock.Anything, "a@b.com").Return(&domain.VerificationEntry{Email: "a@b.com", Code: "123456", ExpiresAt: exp}, nil)
	h := NewTwoFactorHandler(svc, true)

	rr := httptest.NewRecorder()
	serveWithLocale(h.Send, rr, jsonReq(t, http.MethodPost, "/v1/auth/send-2fa", map[string]string{"email": "a@b.com"}))

	assert.Equal(t, http.StatusOK, rr.Code)
	res := decodeBody[ResultEnvelope](t, rr)
	assert.True(t, res.Success)
	assert.Equal(t, ModeDemo, res.Mode)
	assert.Equal(t, "123456", res.DemoCode)
	assert.Equal(t, "Code de vérification généré (mode démonstration)", res.Message)
	svc.AssertExpectations(t)
}

func TestSend_WithoutDemoModeHidesCode(t *testing.T) {
	svc := &mockTwoFactorSvc{}
	svc.On("Issue", mock.Anything, "a@b.com").Return(&domain.VerificationEntry{Code: "123456"}, nil)
	h := NewTwoFactorHandler(svc, false)

	rr := httptest.NewRecorder()
	serveWithLocale(h.Send, rr, jsonReq(t, http.MethodPost, "/v1/auth/send-2fa", map[string]string{"email": "a@b.com"}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "123456")
	assert.NotContains(t, rr.Body.String(), "demoCode")
}

func TestSend_ServiceFailure(t *testing.T) {
	svc := &mockTwoFactorSvc{}
	svc.On("Issue", mock.Anything, "a@b.com").Return(nil, errors.New("boom"))
	h := NewTwoFactorHandler(svc, true)

	rr := httptest.NewRecorder()
	serveWithLocale(h.Send, rr, jsonReq(t, http.MethodPost, "/v1/auth/send-2fa?lang=en", map[string]string{"email": "a@b.com"}))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	res := decodeBody[ResultEnvelope](t, rr)
	assert.Equal(t, "Could not generate the verification code", res.Message)
	assert.NotContains(t, res.Message, "boom")
}

func TestVerify_MissingFields(t *testing.T) {
	h := NewTwoFactorHandler(&mockTwoFactorSvc{}, true)
	rr := httptest.NewRecorder()
	serveWithLocale(h.Verify, rr, jsonReq(t, http.MethodPost, "/v1/auth/verify-2fa", map[string]string{"email": "a@b.com"}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Email et code requis", decodeBody[ResultEnvelope](t, rr).Message)
}

func TestVerify_Outcomes(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		reason  string
		message string
	}{
		{"success", nil, http.StatusOK, "", "Code vérifié avec succès"},
		{"not found", domain.ErrCodeNotFound, http.StatusBadRequest, "not_found", "Aucun code trouvé. Veuillez demander un nouveau code."},
		{"expired", domain.ErrCodeExpired, http.StatusBadRequest, "expired", "Code expiré. Veuillez demander un nouveau code."},
		{"mismatch", domain.ErrCodeMismatch, http.StatusBadRequest, "mismatch", "Code incorrect"},
		{"failure", errors.New("boom"), http.StatusInternalServerError, "", "Erreur lors de la vérification"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockTwoFactorSvc{}
			svc.On("Verify", mock.Anything, "a@b.com", "123456").Return(tc.err)
			h := NewTwoFactorHandler(svc, true)

			rr := httptest.NewRecorder()
			serveWithLocale(h.Verify, rr, jsonReq(t, http.MethodPost, "/v1/auth/verify-2fa",
				map[string]string{"email": "a@b.com", "code": "123456"}))

			assert.Equal(t, tc.status, rr.Code)
			res := decodeBody[ResultEnvelope](t, rr)
			assert.Equal(t, tc.err == nil, res.Success)
			assert.Equal(t, tc.reason, res.Reason)
			assert.Equal(t, tc.message, res.Message)
		})
	}
}
