package utils

import (
	"errors"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailConfigured reports whether SMTP settings are present. The reminder job
// stays off without them.
func EmailConfigured() bool {
	return os.Getenv("SMTP_HOST") != "" && os.Getenv("EMAIL_USER") != ""
}

func SendEmail(to, subject, body string) error {
	if !EmailConfigured() {
		return errors.New("smtp is not configured")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}
