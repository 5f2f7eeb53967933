package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PORT", "")
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")

	cfg := Load()

	assert.Equal(t, ":4000", cfg.HTTPAddr)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "5005")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SMTP_PORT", "2525")

	cfg := Load()

	assert.Equal(t, ":5005", cfg.HTTPAddr)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 2525, cfg.SMTPPort)
}

func TestLoad_HTTPAddrWinsOverPort(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("PORT", "5005")

	cfg := Load()
	assert.Equal(t, ":9999", cfg.HTTPAddr)
}
