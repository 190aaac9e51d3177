package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"teamacy_backend/internal/feature/messages/domain/entity"
	"teamacy_backend/internal/feature/messages/usecase"
)

// ResendMailer notifies the business inbox about new messages through the
// Resend HTTP API.
type ResendMailer struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that ResendMailer implements the usecase Notifier.
var _ usecase.Notifier = (*ResendMailer)(nil)

// NewResendMailer creates a new ResendMailer with the given configuration and HTTP client.
func NewResendMailer(cfg Config, client *http.Client) *ResendMailer {
	return &ResendMailer{cfg: cfg, client: client}
}

// sendRequest is the Resend /emails payload.
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// NotifyNewMessage sends a notification email describing the stored message.
// Fields are HTML-escaped and URLs in the body linkified here, at display
// time only.
func (m *ResendMailer) NotifyNewMessage(ctx context.Context, msg *entity.Message) error {
	subject := "New Enquiry - Teamacy"
	if msg.Type == entity.TypeFeedback {
		subject = "New Feedback - Teamacy"
	}

	htmlBody := fmt.Sprintf(
		"<h2>%s</h2>"+
			"<p><b>Name:</b> %s</p>"+
			"<p><b>Email:</b> %s</p>"+
			"<p><b>Subject:</b> %s</p>"+
			"<p>%s</p>",
		html.EscapeString(subject),
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Subject),
		LinkifyURLs(html.EscapeString(msg.Body)),
	)

	payload, err := json.Marshal(sendRequest{
		From:    m.cfg.Sender,
		To:      []string{m.cfg.NotifyTo},
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return err
	}

	u := m.cfg.BaseURL + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("resend http %d", res.StatusCode)
	}

	slog.Info("notification email sent", "type", msg.Type, "to", m.cfg.NotifyTo)
	return nil
}
