package mail

import (
	"context"
	"log/slog"
)

// Mailer delivers a message to a single recipient.
type Mailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer returns a Mailer that records each message in the log instead of
// delivering it. The service never talks to a real mail server.
func NewLogMailer(logger *slog.Logger) Mailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &logMailer{logger: logger}
}

func (m *logMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	m.logger.InfoContext(ctx, "simulated email delivery",
		"to", to,
		"subject", subject,
		"body", body,
	)
	return nil
}
