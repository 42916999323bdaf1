// Package smtp delivers notification mail over SMTP.
package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"

	"cafeteria/internal/core/ports"
)

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Mailer implements ports.Mailer with net/smtp.
type Mailer struct {
	cfg Config
	now func() time.Time
}

func NewMailer(cfg Config) *Mailer {
	return &Mailer{cfg: cfg, now: time.Now}
}

// Send dials the relay under ctx, upgrades to TLS when offered and
// authenticates when credentials are configured.
func (m *Mailer) Send(ctx context.Context, mail ports.Mail) error {
	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err = client.StartTLS(&tls.Config{ServerName: m.cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}

	if m.cfg.Username != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
			if err = client.Auth(auth); err != nil {
				return fmt.Errorf("smtp auth: %w", err)
			}
		}
	}

	if err = client.Mail(m.cfg.From); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err = client.Rcpt(mail.To); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err = w.Write(m.message(mail)); err != nil {
		_ = w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("smtp data close: %w", err)
	}

	return client.Quit()
}

func (m *Mailer) message(mail ports.Mail) []byte {
	var b strings.Builder
	b.WriteString("From: " + headerValue(m.cfg.From) + "\r\n")
	b.WriteString("To: " + headerValue(mail.To) + "\r\n")
	b.WriteString("Subject: " + headerValue(mail.Subject) + "\r\n")
	b.WriteString("Date: " + m.now().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(strings.ReplaceAll(mail.Body, "\r\n", "\n"), "\n", "\r\n"))
	return []byte(b.String())
}

// headerValue strips line breaks so a value cannot inject extra headers.
func headerValue(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}

// LogMailer writes mail to the log instead of sending it. It is used when no
// SMTP host is configured.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger.With("component", "LogMailer")}
}

func (m *LogMailer) Send(ctx context.Context, mail ports.Mail) error {
	m.logger.InfoContext(ctx, "mail not sent, smtp is not configured",
		"to", mail.To,
		"subject", mail.Subject,
	)
	return nil
}
