package handler

import (
	"net/http"

	"github.com/event-showcase-api/internal/application/quote"
	"github.com/event-showcase-api/internal/domain"
	"github.com/event-showcase-api/internal/pkg/i18n"
	"github.com/event-showcase-api/internal/transport/http/middleware"
)

// QuoteHandler handles the quote form and the admin inbox.
type QuoteHandler struct {
	svc quote.Service
}

func NewQuoteHandler(svc quote.Service) *QuoteHandler { return &QuoteHandler{svc: svc} }

func (h *QuoteHandler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Options(middleware.LocaleFromContext(r.Context())))
}

func (h *QuoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input domain.QuoteInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	q, err := h.svc.Submit(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	tag := middleware.LocaleFromContext(r.Context())
	writeJSON(w, http.StatusCreated, QuoteEnvelope{Quote: q, Message: i18n.T(tag, i18n.MsgQuoteReceived)})
}

func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}
