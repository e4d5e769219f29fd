package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// HealthHandler handles health-check endpoints.
type HealthHandler struct {
	env     string
	started time.Time
}

func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{env: env, started: time.Now()}
}

type statusResponse struct {
	Status string `json:"status"`
	Env    string `json:"env"`
	Uptime string `json:"uptime"`
}

// Ping answers /health-check/{action}: "ping" returns pong, "status" reports
// the environment and uptime.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "action") {
	case "ping":
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "pong"})
	case "status":
		writeJSON(w, http.StatusOK, statusResponse{
			Status: "ok",
			Env:    h.env,
			Uptime: time.Since(h.started).Round(time.Second).String(),
		})
	default:
		writeError(w, http.StatusBadRequest, "unknown action")
	}
}
