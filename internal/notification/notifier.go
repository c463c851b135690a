package notification

import (
	"Go2FreqSpectra/internal/config"
	"Go2FreqSpectra/internal/model"
	"fmt"
	"net/smtp"
	"strings"
)

// EmailNotifier delivers alerter summaries over SMTP. The alerter hands it
// pre-rendered HTML (the triggered-rule tables from Task.AlerterMsg), so the
// message is sent with an HTML content type.
type EmailNotifier struct {
	cfg  config.SMTPConfig
	auth smtp.Auth
}

// NewEmailNotifier creates a notifier for the configured SMTP account.
func NewEmailNotifier(cfg config.SMTPConfig) model.Notifier {
	// PlainAuth will not send credentials until the server identifies itself as a trusted one.
	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	return &EmailNotifier{cfg: cfg, auth: auth}
}

// Send mails one alert summary to the configured recipients. The comma-separated
// `to` list from the config fans out into individual RCPT addresses.
func (n *EmailNotifier) Send(subject, body string) error {
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	recipients := strings.Split(n.cfg.To, ",")

	msg := []byte("To: " + n.cfg.To + "\r\n" +
		"From: " + n.cfg.From + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		body)

	if err := smtp.SendMail(addr, n.auth, n.cfg.From, recipients, msg); err != nil {
		return fmt.Errorf("failed to send alert email: %w", err)
	}

	return nil
}
