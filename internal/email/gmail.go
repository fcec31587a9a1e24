package email

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailSender implements Sender via the Gmail API using a refreshable
// authorized-user token. The token is read from the GOOGLE_TOKEN environment
// value or a local token file; a refreshed token is written back to the file.
type GmailSender struct {
	fromName     string
	fromEmail    string
	tokenJSON    string
	tokenFile    string
	clientID     string
	clientSecret string
}

// NewGmailSender creates a GmailSender from configuration.
func NewGmailSender(cfg SenderConfig) *GmailSender {
	return &GmailSender{
		fromName:     cfg.GetEmailFromName(),
		fromEmail:    cfg.GetEmailFromAddress(),
		tokenJSON:    cfg.GetGoogleToken(),
		tokenFile:    cfg.GetGoogleTokenFile(),
		clientID:     cfg.GetGoogleClientID(),
		clientSecret: cfg.GetGoogleClientSecret(),
	}
}

// storedToken mirrors the authorized-user token JSON written by the OAuth
// consent flow (token.json).
type storedToken struct {
	AccessToken  string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	ClientID     string    `json:"client_id"`
	ClientSecret string    `json:"client_secret"`
	Expiry       time.Time `json:"expiry,omitempty"`
}

func (g *GmailSender) SendOfferLetter(ctx context.Context, toEmail, propertyAddress, amountFormatted, acceptURL, counterURL string, letter Attachment) error {
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
	return g.send(ctx, toEmail, subject, content, "", letter)
}

func (g *GmailSender) SendCounterNotice(ctx context.Context, toEmail, sellerEmail, propertyAddress, counterAmount, notes string) error {
	subject := fmt.Sprintf(subjectCounterFmt, propertyAddress)
	body := counterNoticeBody(sellerEmail, propertyAddress, counterAmount, notes)
	return g.send(ctx, toEmail, subject, "", body)
}

func (g *GmailSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	return g.send(ctx, toEmail, subject, htmlContent, "")
}

func (g *GmailSender) send(ctx context.Context, toEmail, subject, htmlContent, textContent string, attachments ...Attachment) error {
	svc, err := g.service(ctx)
	if err != nil {
		return err
	}

	raw, err := buildMIMEMessage(g.fromName, g.fromEmail, toEmail, subject, htmlContent, textContent, attachments...)
	if err != nil {
		return err
	}

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(raw),
	}
	if _, err := svc.Users.Messages.Send("me", msg).Do(); err != nil {
		return &DeliveryError{Provider: "gmail", Err: err}
	}

	return nil
}

// service loads the token, refreshes it if expired, persists the refreshed
// token, and returns an authenticated Gmail client.
func (g *GmailSender) service(ctx context.Context) (*gmail.Service, error) {
	stored, err := g.loadToken()
	if err != nil {
		return nil, &AuthError{Err: err}
	}

	clientID := stored.ClientID
	if clientID == "" {
		clientID = g.clientID
	}
	clientSecret := stored.ClientSecret
	if clientSecret == "" {
		clientSecret = g.clientSecret
	}

	oauthCfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}
	token := &oauth2.Token{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		Expiry:       stored.Expiry,
	}

	source := oauthCfg.TokenSource(ctx, token)
	fresh, err := source.Token()
	if err != nil {
		return nil, &AuthError{Err: fmt.Errorf("refresh token: %w", err)}
	}
	if fresh.AccessToken != token.AccessToken {
		g.persistToken(stored, fresh)
	}

	svc, err := gmail.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, &AuthError{Err: fmt.Errorf("gmail service: %w", err)}
	}
	return svc, nil
}

func (g *GmailSender) loadToken() (*storedToken, error) {
	raw := g.tokenJSON
	if raw == "" {
		data, err := os.ReadFile(g.tokenFile)
		if err != nil {
			return nil, fmt.Errorf("read token file %s: %w", g.tokenFile, err)
		}
		raw = string(data)
	}

	var stored storedToken
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if stored.RefreshToken == "" && stored.AccessToken == "" {
		return nil, fmt.Errorf("token has neither access nor refresh token")
	}
	return &stored, nil
}

// persistToken rewrites the token file after a refresh. Best effort: the
// refreshed token still works for this process if the write fails.
func (g *GmailSender) persistToken(stored *storedToken, fresh *oauth2.Token) {
	if g.tokenFile == "" {
		return
	}
	stored.AccessToken = fresh.AccessToken
	if fresh.RefreshToken != "" {
		stored.RefreshToken = fresh.RefreshToken
	}
	stored.Expiry = fresh.Expiry

	data, err := json.Marshal(stored)
	if err != nil {
		return
	}
	_ = os.WriteFile(g.tokenFile, data, 0o600)
}
