// Package services holds outbound integrations that sit behind the API:
// currently the email notification sent when the contact form is used.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/config"
	"portfolio-backend/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// resendEmailRequest represents the request payload for the Resend API
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
}

// resendErrorResponse represents an error response from the Resend API
type resendErrorResponse struct {
	Message string `json:"message"`
}

// ContactNotifier emails the site owner when a new contact message lands.
// Notification is best-effort: a send failure is logged and never fails the
// request that created the message.
type ContactNotifier struct {
	apiKey    string
	fromEmail string
	toEmail   string
	client    *http.Client
	logger    zerolog.Logger
}

// NewContactNotifier reads RESEND_API_KEY, RESEND_FROM_EMAIL and
// CONTACT_NOTIFY_EMAIL from config. With any of them missing the notifier is
// disabled and Notify becomes a no-op.
func NewContactNotifier(cfg config.Config) *ContactNotifier {
	return &ContactNotifier{
		apiKey:    cfg.String("RESEND_API_KEY", ""),
		fromEmail: cfg.String("RESEND_FROM_EMAIL", ""),
		toEmail:   cfg.String("CONTACT_NOTIFY_EMAIL", ""),
		client:    &http.Client{Timeout: 15 * time.Second},
		logger:    log.With().Str("component", "contactNotifier").Logger(),
	}
}

// Enabled reports whether the notifier has everything it needs to send.
func (n *ContactNotifier) Enabled() bool {
	return n.apiKey != "" && n.fromEmail != "" && n.toEmail != ""
}

// Notify sends a plain-text email describing the new contact message.
func (n *ContactNotifier) Notify(ctx context.Context, msg models.ContactMessage) error {
	if !n.Enabled() {
		return nil
	}

	payload := resendEmailRequest{
		From:    n.fromEmail,
		To:      []string{n.toEmail},
		Subject: fmt.Sprintf("New contact message from %s", msg.Name),
		Text: fmt.Sprintf("From: %s <%s>\nReceived: %s\n\n%s",
			msg.Name, msg.Email, msg.CreatedAt.Format(time.RFC1123), msg.Message),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		var errResp resendErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			return fmt.Errorf("email API returned %d: %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("email API returned %d", resp.StatusCode)
	}

	n.logger.Info().Str("messageID", msg.ID.String()).Msg("contact notification sent")
	return nil
}
