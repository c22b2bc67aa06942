// Package email delivers the portal's outbound mail: confirmation links,
// password reset links, one-time sign-in codes and relayed contact
// inquiries. Two [Sender] implementations exist, selected by configuration:
// an SMTP relay and a SendGrid-style HTTP API.
package email

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-member-portal/internal/config"
	"github.com/MKhiriev/go-member-portal/internal/logger"
)

// Message is one outbound email. TextBody is always set; HTMLBody is
// optional and sent as a multipart alternative when present.
type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender delivers a single message. Implementations must respect ctx
// cancellation and return promptly when the deadline passes.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender constructs the [Sender] selected by cfg.Provider.
func NewSender(cfg config.Email, log *logger.Logger) (Sender, error) {
	switch cfg.Provider {
	case "smtp":
		return NewSMTPSender(cfg, log), nil
	case "sendgrid":
		return NewSendGridSender(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown email provider: %q", cfg.Provider)
	}
}
