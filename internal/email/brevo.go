package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// BrevoSender implements Sender via the Brevo transactional email HTTP API.
type BrevoSender struct {
	apiKey    string
	fromName  string
	fromEmail string
	client    *http.Client
}

// NewBrevoSender creates a BrevoSender with the given API key and sender identity.
func NewBrevoSender(apiKey, fromEmail, fromName string) *BrevoSender {
	return &BrevoSender{
		apiKey:    apiKey,
		fromName:  fromName,
		fromEmail: fromEmail,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type brevoAttachment struct {
	Content string `json:"content"` // base64-encoded file content
	Name    string `json:"name"`
}

type brevoEmailRequest struct {
	Sender struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"sender"`
	To []struct {
		Email string `json:"email"`
	} `json:"to"`
	Subject     string            `json:"subject"`
	HTMLContent string            `json:"htmlContent,omitempty"`
	TextContent string            `json:"textContent,omitempty"`
	Attachment  []brevoAttachment `json:"attachment,omitempty"`
}

func (b *BrevoSender) SendOfferLetter(ctx context.Context, toEmail, propertyAddress, amountFormatted, acceptURL, counterURL string, letter Attachment) error {
	subject := fmt.Sprintf(subjectOfferFmt, propertyAddress)
	content, err := renderEmailTemplate("offer_letter.html", offerEmailData{
		PropertyAddress: propertyAddress,
		AmountFormatted: amountFormatted,
		AcceptURL:       acceptURL,
		CounterURL:      counterURL,
	})
	if err != nil {
		return err
	}
	return b.send(ctx, toEmail, subject, content, "", letter)
}

func (b *BrevoSender) SendCounterNotice(ctx context.Context, toEmail, sellerEmail, propertyAddress, counterAmount, notes string) error {
	subject := fmt.Sprintf(subjectCounterFmt, propertyAddress)
	body := counterNoticeBody(sellerEmail, propertyAddress, counterAmount, notes)
	return b.send(ctx, toEmail, subject, "", body)
}

func (b *BrevoSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	return b.send(ctx, toEmail, subject, htmlContent, "")
}

func (b *BrevoSender) send(ctx context.Context, toEmail, subject, htmlContent, textContent string, attachments ...Attachment) error {
	payload := brevoEmailRequest{
		Subject:     subject,
		HTMLContent: htmlContent,
		TextContent: textContent,
	}
	payload.Sender.Name = b.fromName
	payload.Sender.Email = b.fromEmail
	payload.To = []struct {
		Email string `json:"email"`
	}{{Email: toEmail}}

	for _, att := range attachments {
		payload.Attachment = append(payload.Attachment, brevoAttachment{
			Content: base64.StdEncoding.EncodeToString(att.Content),
			Name:    att.FileName,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.brevo.com/v3/smtp/email", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", b.apiKey)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return &DeliveryError{Provider: "brevo", Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return &DeliveryError{Provider: "brevo", Err: fmt.Errorf("status %d: %s", resp.StatusCode, string(data))}
	}

	return nil
}
