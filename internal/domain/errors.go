package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")

	// Verification code outcomes. Each one is also an ErrBadRequest for callers
	// that only care about the status class.
	ErrCodeNotFound = &codeError{reason: "not_found"}
	ErrCodeExpired  = &codeError{reason: "expired"}
	ErrCodeMismatch = &codeError{reason: "mismatch"}
)

type codeError struct {
	reason string
}

func (e *codeError) Error() string { return "verification code " + e.reason }

func (e *codeError) Is(target error) bool { return target == ErrBadRequest }

// Reason is the machine-readable outcome reported to clients.
func (e *codeError) Reason() string { return e.reason }

// CodeReason returns the verification outcome carried by err, or "" if err is
// not a verification code error.
func CodeReason(err error) string {
	var ce *codeError
	if errors.As(err, &ce) {
		return ce.reason
	}
	return ""
}
