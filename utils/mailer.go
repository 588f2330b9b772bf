package utils

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Mailer sends a single HTML email.
type Mailer interface {
	Send(ctx context.Context, to []string, subject string, htmlBody string) error
}

// SMTPMailer sends mail through a plain SMTP endpoint.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func NewSMTPMailer(host, port, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, User: user, Pass: pass, From: from}
}

func (m *SMTPMailer) Send(ctx context.Context, to []string, subject string, htmlBody string) error {
	if m.Host == "" {
		return fmt.Errorf("smtp mailer: no host configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Luxego Auto Spa <%s>\r\n", m.From)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Pass, m.Host)
	}

	if err := smtp.SendMail(m.Host+":"+m.Port, auth, m.From, to, []byte(msg)); err != nil {
		return fmt.Errorf("smtp mailer: send to %v failed: %w", to, err)
	}
	return nil
}

// LogMailer logs instead of sending. Used when EMAIL_ENABLED=false so
// development runs never hit a real SMTP server.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, to []string, subject string, htmlBody string) error {
	GetLogger().Info("email suppressed",
		zap.Strings("to", to),
		zap.String("subject", subject),
		zap.Int("bodyBytes", len(htmlBody)),
	)
	return nil
}
