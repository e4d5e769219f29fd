package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/event-showcase-api/internal/application/quote"
	"github.com/event-showcase-api/internal/domain"
	"github.com/event-showcase-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotes_OptionsFollowLocale(t *testing.T) {
	h := NewQuoteHandler(quote.NewService(memory.NewQuoteStore()))

	rr := httptest.NewRecorder()
	serveWithLocale(h.Options, rr, httptest.NewRequest(http.MethodGet, "/v1/quote-options", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	fr := decodeBody[quote.Options](t, rr)
	require.Len(t, fr.EventTypes, 5)
	assert.Equal(t, quote.Option{ID: "wedding", Label: "Mariage"}, fr.EventTypes[0])

	req := httptest.NewRequest(http.MethodGet, "/v1/quote-options", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.8")
	rr = httptest.NewRecorder()
	serveWithLocale(h.Options, rr, req)
	en := decodeBody[quote.Options](t, rr)
	assert.Equal(t, "Wedding", en.EventTypes[0].Label)
	assert.Equal(t, "en", rr.Header().Get("Content-Language"))
}

func TestQuotes_SubmitThenList(t *testing.T) {
	h := NewQuoteHandler(quote.NewService(memory.NewQuoteStore()))

	rr := httptest.NewRecorder()
	serveWithLocale(h.Submit, rr, jsonReq(t, http.MethodPost, "/v1/quotes", domain.QuoteInput{
		EventType: "wedding",
		Services:  []string{"dj", "mapping", "dj"},
		Budget:    "5000-10000",
		Name:      " Claire Martin ",
		Email:     "claire@example.com",
	}))
	require.Equal(t, http.StatusCreated, rr.Code)
	env := decodeBody[QuoteEnvelope](t, rr)
	assert.Equal(t, "Claire Martin", env.Quote.Name)
	assert.Equal(t, []string{"dj", "mapping"}, env.Quote.Services)
	assert.Equal(t, domain.QuoteStatusNew, env.Quote.Status)
	assert.NotEmpty(t, env.Quote.QuoteID)
	assert.Equal(t, "Demande de devis reçue, nous revenons vers vous sous 24h.", env.Message)

	rr = httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/v1/admin/quotes", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	quotes := decodeBody[[]domain.Quote](t, rr)
	require.Len(t, quotes, 1)
	assert.Equal(t, env.Quote.QuoteID, quotes[0].QuoteID)
}

func TestQuotes_SubmitInvalid(t *testing.T) {
	h := NewQuoteHandler(quote.NewService(memory.NewQuoteStore()))

	cases := map[string]domain.QuoteInput{
		"missing name":  {Email: "a@b.com"},
		"bad email":     {Name: "A", Email: "nope"},
		"bad budget":    {Name: "A", Email: "a@b.com", Budget: "cheap"},
		"bad service":   {Name: "A", Email: "a@b.com", Services: []string{"catering"}},
		"bad date":      {Name: "A", Email: "a@b.com", EventDate: "12/06/2025"},
		"bad eventtype": {Name: "A", Email: "a@b.com", EventType: "funeral"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			serveWithLocale(h.Submit, rr, jsonReq(t, http.MethodPost, "/v1/quotes", in))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}
