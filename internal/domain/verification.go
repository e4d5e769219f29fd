package domain

import "time"

// VerificationEntry is a one-time code issued to an email address.
// At most one live entry exists per email; issuing a new code overwrites it.
type VerificationEntry struct {
	Email     string    `json:"email"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the entry is no longer valid at now.
func (v *VerificationEntry) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
