package consent

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/event-showcase-api/internal/domain"
	"github.com/event-showcase-api/internal/pkg/validate"
	"github.com/google/uuid"
)

// CookieName is the cookie that carries the visitor's choice.
const CookieName = "cookieConsent"

// Service builds consent records and converts them to and from the cookie
// value. Nothing is kept server-side.
type Service interface {
	Record(input domain.ConsentInput) (*domain.ConsentRecord, error)
	Encode(rec *domain.ConsentRecord) (string, error)
	Decode(value string) (*domain.ConsentRecord, error)
}

type service struct {
	now func() time.Time
}

func NewService() Service {
	return &service{now: time.Now}
}

func (s *service) Record(input domain.ConsentInput) (*domain.ConsentRecord, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	rec := &domain.ConsentRecord{
		ConsentID: uuid.NewString(),
		Necessary: true,
		Timestamp: s.now().UTC(),
	}
	switch input.Preset {
	case domain.ConsentAcceptAll:
		rec.Analytics, rec.Marketing, rec.Functional = true, true, true
	case domain.ConsentCustom:
		rec.Analytics, rec.Marketing, rec.Functional = input.Analytics, input.Marketing, input.Functional
	}
	return rec, nil
}

// Encode returns the cookie-safe form of rec: base64url of its JSON.
func (s *service) Encode(rec *domain.ConsentRecord) (string, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (s *service) Decode(value string) (*domain.ConsentRecord, error) {
	b, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("consent cookie: %v: %w", err, domain.ErrBadRequest)
	}
	var rec domain.ConsentRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("consent cookie: %v: %w", err, domain.ErrBadRequest)
	}
	if _, err := uuid.Parse(rec.ConsentID); err != nil {
		return nil, fmt.Errorf("consent cookie id: %w", domain.ErrBadRequest)
	}
	rec.Necessary = true
	return &rec, nil
}
