package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/event-showcase-api/internal/application/auth"
	"github.com/event-showcase-api/internal/domain"
)

// ModeDemo marks responses that echo the verification code back.
const ModeDemo = "demo"

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorCode int    `json:"error_code,omitempty"`
}

// ResultEnvelope answers the verification-code endpoints.
type ResultEnvelope struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	Reason    string     `json:"reason,omitempty"`
	Mode      string     `json:"mode,omitempty"`
	DemoCode  string     `json:"demoCode,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// LoginEnvelope wraps the first sign-in step.
type LoginEnvelope struct {
	*auth.LoginResult
	Message  string `json:"message,omitempty"`
	Mode     string `json:"mode,omitempty"`
	DemoCode string `json:"demoCode,omitempty"`
}

// SessionEnvelope wraps a completed sign-in.
type SessionEnvelope struct {
	Session *auth.Session `json:"session"`
	Message string        `json:"message,omitempty"`
}

type AdminEnvelope struct {
	Admin *domain.AdminUser `json:"admin"`
}

type QuoteEnvelope struct {
	Quote   *domain.Quote `json:"quote"`
	Message string        `json:"message,omitempty"`
}

type ConsentEnvelope struct {
	Consent *domain.ConsentRecord `json:"consent"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg, ErrorCode: status})
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
