package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"chamba_backend/internal/config"
)

// SMTPProvider sends mail through the configured SMTP relay.
type SMTPProvider struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPProvider(cfg config.EmailConfig) *SMTPProvider {
	from := cfg.FromEmail
	if from == "" {
		from = cfg.SMTPUsername
	}
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, from)
	}
	return &SMTPProvider{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   from,
	}
}

func (p *SMTPProvider) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}
	return nil
}
