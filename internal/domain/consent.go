package domain

import "time"

const (
	ConsentAcceptAll = "accept_all"
	ConsentRejectAll = "reject_all"
	ConsentCustom    = "custom"
)

// ConsentRecord is a visitor's cookie preference. Necessary cookies cannot be refused.
type ConsentRecord struct {
	ConsentID  string    `json:"id"`
	Necessary  bool      `json:"necessary"`
	Analytics  bool      `json:"analytics"`
	Marketing  bool      `json:"marketing"`
	Functional bool      `json:"functional"`
	Timestamp  time.Time `json:"timestamp"`
}

type ConsentInput struct {
	Preset     string `json:"preset" validate:"required,oneof=accept_all reject_all custom"`
	Analytics  bool   `json:"analytics"`
	Marketing  bool   `json:"marketing"`
	Functional bool   `json:"functional"`
}
