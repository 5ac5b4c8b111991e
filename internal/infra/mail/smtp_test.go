package mail

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"apikit/config"
	"apikit/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{Email: &config.EmailConfig{
		From: "noreply@example.com",
		SMTP: config.SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p"},
	}}
}

func TestNewSMTPSender_WithoutHost(t *testing.T) {
	sender, err := NewSMTPSender(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, err)
	assert.Nil(t, sender)
}

func TestNewSMTPSender_RequiresFrom(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := newTestConfig()
	cfg.Email.From = ""
	_, err := NewSMTPSender(cfg, logger)
	require.Error(t, err)
}

func TestSMTPSender_BuildMessage(t *testing.T) {
	sender, err := NewSMTPSender(newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	s, ok := sender.(*smtpSender)
	require.True(t, ok)

	msg, err := s.buildMessage(&entity.MailJob{
		To:      "jane@example.com",
		Subject: "Reset password",
		Text:    "plain body",
		HTML:    "<p>html body</p>",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "Subject: Reset password")
	assert.Contains(t, raw, "jane@example.com")
	assert.Contains(t, raw, "plain body")
	assert.Contains(t, raw, "text/html")
}

func TestSMTPSender_BuildMessage_InvalidRecipient(t *testing.T) {
	sender, err := NewSMTPSender(newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = sender.(*smtpSender).buildMessage(&entity.MailJob{To: "not an address"})

	require.Error(t, err)
}

func TestClientOptions(t *testing.T) {
	assert.Len(t, clientOptions(config.SMTPConfig{}), 1)
	assert.Len(t, clientOptions(config.SMTPConfig{Port: 25}), 2)
	assert.Len(t, clientOptions(config.SMTPConfig{Port: 465, TLS: true, Username: "u"}), 5)
}
