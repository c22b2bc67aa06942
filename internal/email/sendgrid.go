package email

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-member-portal/internal/config"
	"github.com/MKhiriev/go-member-portal/internal/logger"
)

// defaultSendGridAPIURL is the public v3 mail-send endpoint, used when the
// configuration does not override it.
const defaultSendGridAPIURL = "https://api.sendgrid.com/v3/mail/send"

// SendGridSender delivers messages through the SendGrid v3 HTTP API.
type SendGridSender struct {
	client *resty.Client
	apiURL string
	apiKey string
	from   string
	logger *logger.Logger
}

// NewSendGridSender constructs a [SendGridSender] from the SendGrid section
// of cfg.
func NewSendGridSender(cfg config.Email, log *logger.Logger) *SendGridSender {
	log.Debug().Msg("creating sendgrid email sender")

	apiURL := cfg.SendGrid.APIURL
	if apiURL == "" {
		apiURL = defaultSendGridAPIURL
	}

	return &SendGridSender{
		client: resty.New(),
		apiURL: apiURL,
		apiKey: cfg.SendGrid.APIKey,
		from:   cfg.From,
		logger: log,
	}
}

// sendGridPayload mirrors the v3 mail-send request body.
type sendGridPayload struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
}

type sendGridPersonalization struct {
	To []sendGridAddress `json:"to"`
}

type sendGridAddress struct {
	Email string `json:"email"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Send posts msg to the mail-send endpoint. Any non-2xx response is
// reported as an error; the API returns 202 on success.
func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	log := logger.FromContext(ctx)

	content := []sendGridContent{{Type: "text/plain", Value: msg.TextBody}}
	if msg.HTMLBody != "" {
		content = append(content, sendGridContent{Type: "text/html", Value: msg.HTMLBody})
	}

	payload := sendGridPayload{
		Personalizations: []sendGridPersonalization{{To: []sendGridAddress{{Email: msg.To}}}},
		From:             sendGridAddress{Email: s.from},
		Subject:          msg.Subject,
		Content:          content,
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(s.apiURL)
	if err != nil {
		log.Err(err).Str("func", "*SendGridSender.Send").Str("to", msg.To).Msg("error sending email via sendgrid")
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.IsError() {
		log.Error().Str("func", "*SendGridSender.Send").Int("status", resp.StatusCode()).Msg("sendgrid rejected message")
		return fmt.Errorf("sendgrid send: unexpected status %d", resp.StatusCode())
	}

	log.Debug().Str("to", msg.To).Str("subject", msg.Subject).Msg("email sent via sendgrid")
	return nil
}
