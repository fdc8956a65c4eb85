package utils

import (
	"gopkg.in/gomail.v2"

	"DocSpot/config"
)

// SendEmail delivers an HTML mail through the configured SMTP relay.
// Callers treat failures as best-effort.
func SendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", config.App.EmailUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		config.App.SMTPHost,
		config.App.SMTPPort,
		config.App.EmailUser,
		config.App.EmailPass,
	)

	return d.DialAndSend(m)
}

// EmailConfigured reports whether an SMTP relay is set up at all.
func EmailConfigured() bool {
	return config.App.SMTPHost != ""
}
