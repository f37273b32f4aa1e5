package email

import (
	"fmt"
	"mime"
	"net/smtp"
	"strings"
)

// Config holds SMTP configuration
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Sender sends plain-text mail.
type Sender interface {
	SendText(to []string, subject, body string) error
}

// Mailer sends mail through an SMTP relay with PLAIN auth.
type Mailer struct {
	config Config
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailer returns nil when no SMTP host is configured, so callers can
// treat a nil *Mailer as "mail disabled".
func NewMailer(config Config) *Mailer {
	if config.Host == "" {
		return nil
	}
	return &Mailer{config: config, send: smtp.SendMail}
}

// SendText sends a UTF-8 plain-text message.
func (m *Mailer) SendText(to []string, subject, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("email: no recipients")
	}

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	if err := m.send(addr, auth, m.config.From, to, m.build(to, subject, body)); err != nil {
		return fmt.Errorf("email: send: %w", err)
	}
	return nil
}

func (m *Mailer) build(to []string, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.config.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}
