package util

import (
	"fmt"
	"net/smtp"

	"github.com/dukastore/dukastore-backend/pkg/logger"
)

// Mail is a single outbound message
type Mail struct {
	To      string
	Subject string
	HTML    string
}

// Mailer sends mail over SMTP. Failures are logged, never retried.
type Mailer struct {
	host     string
	port     string
	from     string
	password string
}

func NewMailer(host, port, from, password string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		from:     from,
		password: password,
	}
}

// Send delivers a single message. Without SMTP credentials configured it
// only logs the message body, which keeps local development working.
func (m *Mailer) Send(mail Mail) error {
	if m.from == "" || m.password == "" {
		logger.Info("[DEV MODE] email not sent, SMTP not configured", map[string]interface{}{
			"to":      mail.To,
			"subject": mail.Subject,
		})
		return nil
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.from, mail.To, mail.Subject, mail.HTML,
	))

	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	if err := smtp.SendMail(addr, auth, m.from, []string{mail.To}, msg); err != nil {
		logger.Error("Failed to send email", err, map[string]interface{}{
			"to":      mail.To,
			"subject": mail.Subject,
		})
		return err
	}

	logger.Info("Email sent", map[string]interface{}{
		"to":      mail.To,
		"subject": mail.Subject,
	})
	return nil
}
