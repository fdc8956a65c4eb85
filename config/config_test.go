package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo-cloud")
	t.Setenv("CLOUDINARY_API_KEY", "key-123")
	t.Setenv("CLOUDINARY_API_SECRET", "secret-456")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("EMAIL_USER", "noreply@example.com")
	t.Setenv("EMAIL_PASS", "mail-pass")

	var cfg Config
	require.NoError(t, load(&cfg))

	assert.Equal(t, "demo-cloud", cfg.CloudinaryCloudName)
	assert.Equal(t, "key-123", cfg.CloudinaryAPIKey)
	assert.Equal(t, "secret-456", cfg.CloudinaryAPISecret)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, "noreply@example.com", cfg.EmailUser)
	assert.Equal(t, "mail-pass", cfg.EmailPass)
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, load(&cfg))

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "usd", cfg.Currency)
	assert.Equal(t, 587, cfg.SMTPPort)
}
