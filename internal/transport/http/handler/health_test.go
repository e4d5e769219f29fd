package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_Ping(t *testing.T) {
	h := NewHealthHandler("test")

	rr := httptest.NewRecorder()
	h.Ping(rr, withChiParam(httptest.NewRequest(http.MethodGet, "/health-check/ping", nil), "action", "ping"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pong", decodeBody[MessageEnvelope](t, rr).Message)

	rr = httptest.NewRecorder()
	h.Ping(rr, withChiParam(httptest.NewRequest(http.MethodGet, "/health-check/status", nil), "action", "status"))
	require.Equal(t, http.StatusOK, rr.Code)
	st := decodeBody[statusResponse](t, rr)
	assert.Equal(t, "ok", st.Status)
	assert.Equal(t, "test", st.Env)

	rr = httptest.NewRecorder()
	h.Ping(rr, withChiParam(httptest.NewRequest(http.MethodGet, "/health-check/x", nil), "action", "x"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
