package mail

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogMailer_WritesMessageToLog(t *testing.T) {
	var buf bytes.Buffer
	m := NewLogMailer(slog.New(slog.NewTextHandler(&buf, nil)))

	err := m.SendEmail(context.Background(), "a@b.com", "Votre code", "Code: 123456")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "simulated email delivery")
	assert.Contains(t, out, "to=a@b.com")
	assert.Contains(t, out, "123456")
}

func TestNewLogMailer_NilLoggerUsesDefault(t *testing.T) {
	m := NewLogMailer(nil)
	assert.NoError(t, m.SendEmail(context.Background(), "a@b.com", "s", "b"))
}
