package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"DocSpot/config"
)

func TestEmailConfigured(t *testing.T) {
	saved := config.App.SMTPHost
	defer func() { config.App.SMTPHost = saved }()

	config.App.SMTPHost = ""
	assert.False(t, EmailConfigured())

	config.App.SMTPHost = "smtp.example.com"
	assert.True(t, EmailConfigured())
}
