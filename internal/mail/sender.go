// Package mail sends playlist exports to their target address.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/bagashiz/openmusic-api/pkg/logger"
)

// Sender delivers a message with a single attachment-style body.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender delivers mail over plain SMTP with optional auth.
type SMTPSender struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPSender creates a sender for the given host and port. Auth is used
// only when a username is configured.
func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%d", host, port),
		auth: auth,
		from: from,
	}
}

// Send delivers the message. The body is sent as a JSON attachment so the
// recipient gets the export as a file.
func (s *SMTPSender) Send(to, subject, body string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: application/json; name=\"playlist.json\"\r\n")
	msg.WriteString("Content-Disposition: attachment; filename=\"playlist.json\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	return smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(msg.String()))
}

// LogSender logs mail instead of delivering it. Used when no SMTP host is
// configured, and in tests.
type LogSender struct {
	log logger.Logger
}

// NewLogSender creates a log-only sender.
func NewLogSender(log logger.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send logs the message and reports success.
func (s *LogSender) Send(to, subject, body string) error {
	s.log.Info("mail delivery skipped, no smtp host configured",
		logger.String("to", to),
		logger.String("subject", subject),
		logger.Int("body_bytes", len(body)),
	)
	return nil
}
