package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/event-showcase-api/internal/application/consent"
	"github.com/event-showcase-api/internal/domain"
)

// consentMaxAge keeps the choice for about thirteen months.
const consentMaxAge = 395 * 24 * time.Hour

// ConsentHandler reads and records the cookie-consent choice.
type ConsentHandler struct {
	svc    consent.Service
	secure bool
}

func NewConsentHandler(svc consent.Service, secure bool) *ConsentHandler {
	return &ConsentHandler{svc: svc, secure: secure}
}

func (h *ConsentHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(consent.CookieName)
	if errors.Is(err, http.ErrNoCookie) {
		writeError(w, http.StatusNotFound, "no consent recorded")
		return
	}
	rec, err := h.svc.Decode(c.Value)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ConsentEnvelope{Consent: rec})
}

func (h *ConsentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var input domain.ConsentInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rec, err := h.svc.Record(input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	value, err := h.svc.Encode(rec)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     consent.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(consentMaxAge.Seconds()),
		HttpOnly: false, // read by the cookie banner script
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, ConsentEnvelope{Consent: rec})
}
