package handler

import (
	"errors"
	"net/http"

	"github.com/event-showcase-api/internal/application/auth"
	"github.com/event-showcase-api/internal/domain"
	"github.com/event-showcase-api/internal/pkg/i18n"
	"github.com/event-showcase-api/internal/pkg/validate"
	"github.com/event-showcase-api/internal/transport/http/middleware"
)

// SessionHandler handles the admin sign-in flow.
type SessionHandler struct {
	svc  auth.Service
	demo bool
}

func NewSessionHandler(svc auth.Service, demo bool) *SessionHandler {
	return &SessionHandler{svc: svc, demo: demo}
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	tag := middleware.LocaleFromContext(r.Context())
	var req auth.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.svc.Login(r.Context(), req)
	if errors.Is(err, domain.ErrUnauthorized) {
		writeError(w, http.StatusUnauthorized, i18n.T(tag, i18n.MsgInvalidCredentials))
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	env := LoginEnvelope{LoginResult: result}
	if result.TwoFactorRequired {
		env.Message = i18n.T(tag, i18n.MsgCodeSent)
		if h.demo {
			env.Message = i18n.T(tag, i18n.MsgCodeSentDemo)
			env.Mode = ModeDemo
			env.DemoCode = result.Code
		}
	} else {
		env.Message = i18n.T(tag, i18n.MsgSignedIn)
	}
	writeJSON(w, http.StatusOK, env)
}

func (h *SessionHandler) CompleteTwoFactor(w http.ResponseWriter, r *http.Request) {
	tag := middleware.LocaleFromContext(r.Context())
	var req auth.TwoFactorRequest
	if err := decodeJSON(r, &req); err != nil || validate.Struct(&req) != nil {
		writeJSON(w, http.StatusBadRequest, ResultEnvelope{Message: i18n.T(tag, i18n.MsgEmailCodeRequired)})
		return
	}
	sess, err := h.svc.CompleteTwoFactor(r.Context(), req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, SessionEnvelope{Session: sess, Message: i18n.T(tag, i18n.MsgSignedIn)})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, i18n.T(tag, i18n.MsgSessionExpired))
	default:
		writeCodeError(w, r, err)
	}
}

func (h *SessionHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	tag := middleware.LocaleFromContext(r.Context())
	var req struct {
		Email string `json:"email" validate:"required"`
	}
	if err := decodeJSON(r, &req); err != nil || validate.Struct(&req) != nil {
		writeError(w, http.StatusBadRequest, i18n.T(tag, i18n.MsgEmailRequired))
		return
	}
	err := h.svc.ResetPassword(r.Context(), req.Email)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: i18n.T(tag, i18n.MsgResetSent)})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, i18n.T(tag, i18n.MsgResetUnknownAccount))
	default:
		writeServiceError(w, r, err)
	}
}

func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	admin, err := h.svc.Me(r.Context(), claims.AdminID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, AdminEnvelope{Admin: admin})
}
