package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/event-showcase-api/internal/application/twofactor"
	"github.com/event-showcase-api/internal/domain"
	"github.com/event-showcase-api/internal/pkg/i18n"
	"github.com/event-showcase-api/internal/transport/http/middleware"
)

// TwoFactorHandler serves the standalone send/verify code endpoints.
type TwoFactorHandler struct {
	svc  twofactor.Service
	demo bool
}

func NewTwoFactorHandler(svc twofactor.Service, demo bool) *TwoFactorHandler {
	return &TwoFactorHandler{svc: svc, demo: demo}
}

type sendCodeRequest struct {
	Email string `json:"email"`
}

type verifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

var codeMessages = map[string]string{
	"not_found": i18n.MsgCodeNotFound,
	"expired":   i18n.MsgCodeExpired,
	"mismatch":  i18n.MsgCodeMismatch,
}

func (h *TwoFactorHandler) Send(w http.ResponseWriter, r *http.Request) {
	tag := middleware.LocaleFromContext(r.Context())
	var req sendCodeRequest
	if err := decodeJSON(r, &req); err != nil || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, ResultEnvelope{Message: i18n.T(tag, i18n.MsgEmailRequired)})
		return
	}
	entry, err := h.svc.Issue(r.Context(), req.Email)
	if errors.Is(err, domain.ErrBadRequest) {
		writeJSON(w, http.StatusBadRequest, ResultEnvelope{Message: i18n.T(tag, i18n.MsgEmailRequired)})
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "issue verification code", "err", err)
		writeJSON(w, http.StatusInternalServerError, ResultEnvelope{Message: i18n.T(tag, i18n.MsgCodeIssueFailed)})
		return
	}
	res := ResultEnvelope{Success: true, Message: i18n.T(tag, i18n.MsgCodeSent), ExpiresAt: &entry.ExpiresAt}
	if h.demo {
		res.Message = i18n.T(tag, i18n.MsgCodeSentDemo)
		res.Mode = ModeDemo
		res.DemoCode = entry.Code
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *TwoFactorHandler) Verify(w http.ResponseWriter, r *http.Request) {
	tag := middleware.LocaleFromContext(r.Context())
	var req verifyCodeRequest
	if err := decodeJSON(r, &req); err != nil || req.Email == "" || req.Code == "" {
		writeJSON(w, http.StatusBadRequest, ResultEnvelope{Message: i18n.T(tag, i18n.MsgEmailCodeRequired)})
		return
	}
	err := h.svc.Verify(r.Context(), req.Email, req.Code)
	if err == nil {
		writeJSON(w, http.StatusOK, ResultEnvelope{Success: true, Message: i18n.T(tag, i18n.MsgCodeVerified)})
		return
	}
	writeCodeError(w, r, err)
}

// writeCodeError answers a failed code check with the outcome's reason.
func writeCodeError(w http.ResponseWriter, r *http.Request, err error) {
	tag := middleware.LocaleFromContext(r.Context())
	if reason := domain.CodeReason(err); reason != "" {
		writeJSON(w, http.StatusBadRequest, ResultEnvelope{Message: i18n.T(tag, codeMessages[reason]), Reason: reason})
		return
	}
	if errors.Is(err, domain.ErrBadRequest) {
		writeJSON(w, http.StatusBadRequest, ResultEnvelope{Message: i18n.T(tag, i18n.MsgEmailCodeRequired)})
		return
	}
	slog.ErrorContext(r.Context(), "verify code", "err", err)
	writeJSON(w, http.StatusInternalServerError, ResultEnvelope{Message: i18n.T(tag, i18n.MsgCodeVerifyFailed)})
}
