// Package crm provides a best-effort outbound webhook to the team's
// workflow-automation pipeline. Notification failures are logged and never
// block or reverse the email send that already happened.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"offerdesk_backend/platform/config"
	"offerdesk_backend/platform/logger"
)

// NotificationError reports an unreachable or rejecting webhook target.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("crm webhook: %v", e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

// OfferSent carries the offer metadata posted to the webhook after a
// successful send.
type OfferSent struct {
	SellerEmail     string    `json:"seller_email"`
	PropertyAddress string    `json:"property_address"`
	OfferAmount     string    `json:"offer_amount"`
	LeadID          string    `json:"lead_id,omitempty"`
	OpportunityID   string    `json:"opportunity_id,omitempty"`
	SentAt          time.Time `json:"sent_at"`
}

// Client posts offer notifications to a fixed webhook URL. A nil client is
// valid and drops every notification; NewClient returns nil when no URL is
// configured.
type Client struct {
	webhookURL string
	http       *http.Client
	log        *logger.Logger
}

// NewClient creates a webhook client, or nil when the integration is disabled.
func NewClient(cfg config.CRMConfig, log *logger.Logger) *Client {
	if !cfg.IsCRMEnabled() {
		return nil
	}

	return &Client{
		webhookURL: strings.TrimRight(cfg.GetCRMWebhookURL(), "/"),
		http:       &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// NotifyOfferSent fires the webhook. At-most-once: one attempt, no retry.
func (c *Client) NotifyOfferSent(ctx context.Context, event OfferSent) error {
	if c == nil {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return &NotificationError{Err: fmt.Errorf("marshal payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return &NotificationError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithContext(ctx).WebhookEvent(c.webhookURL, false, err.Error())
		return &NotificationError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(resp.Body)
		reason := fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		c.log.WithContext(ctx).WebhookEvent(c.webhookURL, false, reason)
		return &NotificationError{Err: fmt.Errorf("%s", reason)}
	}

	c.log.WithContext(ctx).WebhookEvent(c.webhookURL, true, "")
	return nil
}
