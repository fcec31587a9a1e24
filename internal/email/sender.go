// Package email provides the mail delivery adapter. One Sender interface is
// implemented by three interchangeable backends (Gmail API, SMTP, Brevo),
// selected once at startup by configuration.
package email

import (
	"context"
	"fmt"

	"offerdesk_backend/platform/config"
)

// Attachment represents a file attachment for an email.
type Attachment struct {
	Content  []byte // raw file bytes (base64-encoded by the backend as needed)
	FileName string // e.g. "Preliminary_Offer.pdf"
	MIMEType string // e.g. "application/pdf"
}

// Sender delivers offer letters to sellers and counter-offer notices to the
// internal team inbox.
type Sender interface {
	// SendOfferLetter emails the rendered letter to the seller with an HTML
	// body carrying the accept/counter links.
	SendOfferLetter(ctx context.Context, toEmail, propertyAddress, amountFormatted, acceptURL, counterURL string, letter Attachment) error
	// SendCounterNotice emails a plain-text counter-offer notification to the
	// internal team inbox. Amount and notes are included verbatim.
	SendCounterNotice(ctx context.Context, toEmail, sellerEmail, propertyAddress, counterAmount, notes string) error
	// SendCustomEmail sends an arbitrary HTML message.
	SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error
}

// AuthError reports a missing, expired or unrefreshable mail credential.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("mail credential: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// DeliveryError reports a provider rejection or a network failure during send.
type DeliveryError struct {
	Provider string
	Err      error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s send: %v", e.Provider, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// SenderConfig combines the config interfaces the backends need.
type SenderConfig interface {
	config.EmailConfig
	config.SMTPConfig
	config.GmailConfig
}

// NoopSender drops every message. Used when email is disabled.
type NoopSender struct{}

func (NoopSender) SendOfferLetter(ctx context.Context, toEmail, propertyAddress, amountFormatted, acceptURL, counterURL string, letter Attachment) error {
	return nil
}

func (NoopSender) SendCounterNotice(ctx context.Context, toEmail, sellerEmail, propertyAddress, counterAmount, notes string) error {
	return nil
}

func (NoopSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	return nil
}

// NewSender selects the delivery backend from configuration.
func NewSender(cfg SenderConfig) (Sender, error) {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}, nil
	}

	switch cfg.GetEmailProvider() {
	case "gmail":
		return NewGmailSender(cfg), nil
	case "smtp":
		return NewSMTPSender(cfg.GetSMTPHost(), cfg.GetSMTPPort(), cfg.GetSMTPUsername(), cfg.GetSMTPPassword(), cfg.GetEmailFromAddress(), cfg.GetEmailFromName()), nil
	case "brevo":
		return NewBrevoSender(cfg.GetBrevoAPIKey(), cfg.GetEmailFromAddress(), cfg.GetEmailFromName()), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.GetEmailProvider())
	}
}
