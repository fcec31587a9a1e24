package email

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements Sender over a direct SMTP connection via go-mail,
// authenticating with a username/app-password pair.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
func NewSMTPSender(host string, port int, username, password, fromEmail, fromName string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (s *SMTPSender) SendOfferLetter(ctx context.Context, toEmail, propertyAddress, amountFormatted, acceptURL, counterURL string, letter Attachment) error {
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
	return s.send(ctx, toEmail, subject, content, "", letter)
}

func (s *SMTPSender) SendCounterNotice(ctx context.Context, toEmail, sellerEmail, propertyAddress, counterAmount, notes string) error {
	subject := fmt.Sprintf(subjectCounterFmt, propertyAddress)
	body := counterNoticeBody(sellerEmail, propertyAddress, counterAmount, notes)
	return s.send(ctx, toEmail, subject, "", body)
}

func (s *SMTPSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	return s.send(ctx, toEmail, subject, htmlContent, "")
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent, textContent string, attachments ...Attachment) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	if htmlContent != "" {
		msg.SetBodyString(gomail.TypeTextHTML, htmlContent)
	} else {
		msg.SetBodyString(gomail.TypeTextPlain, textContent)
	}

	for _, att := range attachments {
		msg.AttachReader(att.FileName, bytes.NewReader(att.Content))
	}

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return &AuthError{Err: fmt.Errorf("smtp client: %w", err)}
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return &DeliveryError{Provider: "smtp", Err: err}
	}

	return nil
}
