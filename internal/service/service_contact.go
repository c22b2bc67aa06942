package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-member-portal/internal/config"
	"github.com/MKhiriev/go-member-portal/internal/email"
	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/validators"
	"github.com/MKhiriev/go-member-portal/models"
)

// contactService is the concrete implementation of [ContactService]. It
// validates the inquiry and relays it to the administrator inbox; nothing
// is persisted.
type contactService struct {
	sender     email.Sender
	adminEmail string
	logger     *logger.Logger
}

// NewContactService constructs a [ContactService] relaying to the address
// configured in cfg.
func NewContactService(sender email.Sender, cfg config.Email, logger *logger.Logger) ContactService {
	return &contactService{
		sender:     sender,
		adminEmail: cfg.AdminEmail,
		logger:     logger,
	}
}

// Relay validates req and mails it to the administrator inbox. The visitor
// address travels in the message body so the admin can reply directly.
func (c *contactService) Relay(ctx context.Context, req models.ContactRequest) error {
	log := logger.FromContext(ctx)

	if reasons := validators.ContactRequest(req); len(reasons) > 0 {
		return NewValidationError(reasons...)
	}

	msg := email.ContactMessage(c.adminEmail, req.Name, req.Email, req.Subject, req.Message)
	if err := c.sender.Send(ctx, msg); err != nil {
		log.Err(err).Str("func", "*contactService.Relay").Msg("error relaying contact inquiry")
		return fmt.Errorf("error relaying contact inquiry: %w", err)
	}

	return nil
}
