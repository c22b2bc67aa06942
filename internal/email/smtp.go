package email

import (
	"context"
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail"

	"github.com/MKhiriev/go-member-portal/internal/config"
	"github.com/MKhiriev/go-member-portal/internal/logger"
)

// SMTPSender delivers messages through a plain SMTP relay using go-mail.
// STARTTLS is negotiated automatically when the relay offers it.
type SMTPSender struct {
	host   string
	port   int
	from   string
	user   string
	pass   string
	logger *logger.Logger
}

// NewSMTPSender constructs an [SMTPSender] from the SMTP section of cfg.
func NewSMTPSender(cfg config.Email, log *logger.Logger) *SMTPSender {
	log.Debug().Str("host", cfg.SMTP.Host).Msg("creating smtp email sender")
	return &SMTPSender{
		host:   cfg.SMTP.Host,
		port:   cfg.SMTP.Port,
		from:   cfg.From,
		user:   cfg.SMTP.User,
		pass:   cfg.SMTP.Password,
		logger: log,
	}
}

// Send delivers msg through the relay. go-mail dials synchronously, so the
// context is checked up front; an already-cancelled context never opens a
// connection.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return err
	}

	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}

	d := mail.NewDialer(s.host, s.port, s.user, s.pass)
	d.TLSConfig = &tls.Config{ServerName: s.host}

	if err := d.DialAndSend(m); err != nil {
		log.Err(err).Str("func", "*SMTPSender.Send").Str("to", msg.To).Msg("error sending email via smtp")
		return fmt.Errorf("smtp send: %w", err)
	}

	log.Debug().Str("to", msg.To).Str("subject", msg.Subject).Msg("email sent via smtp")
	return nil
}
