package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"offerdesk_backend/internal/email"
	"offerdesk_backend/internal/offers/transport"
	"offerdesk_backend/internal/pdf"
	"offerdesk_backend/platform/logger"
)

type testOffersConfig struct{}

func (testOffersConfig) GetAppBaseURL() string { return "http://localhost:8080" }
func (testOffersConfig) GetOffersDir() string  { return "offers" }
func (testOffersConfig) GetTeamEmail() string  { return "team@example.com" }

type fakeRenderer struct {
	err      error
	lastData pdf.OfferLetterData
	calls    int
}

func (r *fakeRenderer) RenderOfferLetter(_ context.Context, sellerEmail string, data pdf.OfferLetterData) (string, error) {
	r.calls++
	r.lastData = data
	if r.err != nil {
		return "", r.err
	}
	return "offers/" + sellerEmail + "_offer.pdf", nil
}

type fakeStore struct {
	err error
}

func (s fakeStore) Read(string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

type fakeSender struct {
	err        error
	calls      int
	toEmail    string
	acceptURL  string
	counterURL string
	attachment email.Attachment
}

func (s *fakeSender) SendOfferLetter(_ context.Context, toEmail, _, _, acceptURL, counterURL string, letter email.Attachment) error {
	s.calls++
	s.toEmail = toEmail
	s.acceptURL = acceptURL
	s.counterURL = counterURL
	s.attachment = letter
	return s.err
}

func (s *fakeSender) SendCounterNotice(context.Context, string, string, string, string, string) error {
	return nil
}

func (s *fakeSender) SendCustomEmail(context.Context, string, string, string) error {
	return nil
}

func newTestService(renderer *fakeRenderer, store fakeStore, sender *fakeSender) *Service {
	return New(renderer, store, sender, nil, testOffersConfig{}, "brevo", logger.New("test"))
}

func baseRequest() transport.OfferRequest {
	return transport.OfferRequest{
		SellerEmail:     "seller@example.com",
		PropertyAddress: "123 Main St",
		OfferAmount:     "250000",
	}
}

func TestSubmitOffer_Sent(t *testing.T) {
	renderer := &fakeRenderer{}
	sender := &fakeSender{}
	svc := newTestService(renderer, fakeStore{}, sender)

	result := svc.SubmitOffer(context.Background(), baseRequest())

	if result.Outcome != OutcomeSent {
		t.Fatalf("expected sent outcome, got %s", result.Outcome)
	}
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.PDFPath != "offers/seller@example.com_offer.pdf" {
		t.Fatalf("unexpected pdf path %s", result.PDFPath)
	}
	if sender.calls != 1 || sender.toEmail != "seller@example.com" {
		t.Fatalf("expected one send to seller, got %d to %s", sender.calls, sender.toEmail)
	}
	if sender.attachment.FileName != AttachmentFileName {
		t.Fatalf("unexpected attachment name %s", sender.attachment.FileName)
	}
}

func TestSubmitOffer_AppliesDefaults(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := newTestService(renderer, fakeStore{}, &fakeSender{})

	req := baseRequest()
	req.SellerName = "   "
	result := svc.SubmitOffer(context.Background(), req)

	if result.Outcome != OutcomeSent {
		t.Fatalf("expected sent outcome, got %s", result.Outcome)
	}
	if renderer.lastData.SellerName != transport.DefaultSellerName {
		t.Fatalf("expected default seller name, got %q", renderer.lastData.SellerName)
	}
	if renderer.lastData.InspectionPeriod != transport.DefaultInspectionPeriod {
		t.Fatalf("expected default inspection period, got %q", renderer.lastData.InspectionPeriod)
	}
	if renderer.lastData.Terms != transport.DefaultTerms {
		t.Fatalf("expected default terms, got %q", renderer.lastData.Terms)
	}
	if renderer.lastData.AmountFormatted != "$250,000" {
		t.Fatalf("expected formatted amount, got %q", renderer.lastData.AmountFormatted)
	}
}

func TestSubmitOffer_NegotiationLinksCarrySellerIdentity(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(&fakeRenderer{}, fakeStore{}, sender)

	svc.SubmitOffer(context.Background(), baseRequest())

	if !strings.HasPrefix(sender.acceptURL, "http://localhost:8080/accept?") {
		t.Fatalf("unexpected accept URL %s", sender.acceptURL)
	}
	if !strings.Contains(sender.acceptURL, "email=seller%40example.com") {
		t.Fatalf("expected encoded email in accept URL, got %s", sender.acceptURL)
	}
	if !strings.Contains(sender.counterURL, "address=123+Main+St") {
		t.Fatalf("expected encoded address in counter URL, got %s", sender.counterURL)
	}
}

func TestSubmitOffer_NonNumericAmount(t *testing.T) {
	renderer := &fakeRenderer{}
	sender := &fakeSender{}
	svc := newTestService(renderer, fakeStore{}, sender)

	req := baseRequest()
	req.OfferAmount = "two hundred"
	result := svc.SubmitOffer(context.Background(), req)

	if result.Outcome != OutcomeRenderFailed {
		t.Fatalf("expected render failure, got %s", result.Outcome)
	}
	var fe *pdf.FormatError
	if !errors.As(result.Err, &fe) {
		t.Fatalf("expected *pdf.FormatError, got %T", result.Err)
	}
	if renderer.calls != 0 {
		t.Fatal("renderer should not run for a malformed amount")
	}
	if sender.calls != 0 {
		t.Fatal("no email should go out for a malformed amount")
	}
}

func TestSubmitOffer_RenderFailure(t *testing.T) {
	renderer := &fakeRenderer{err: &pdf.RenderError{Err: errors.New("engine offline")}}
	sender := &fakeSender{}
	svc := newTestService(renderer, fakeStore{}, sender)

	result := svc.SubmitOffer(context.Background(), baseRequest())

	if result.Outcome != OutcomeRenderFailed {
		t.Fatalf("expected render failure, got %s", result.Outcome)
	}
	if sender.calls != 0 {
		t.Fatal("no email should go out when rendering fails")
	}
}

func TestSubmitOffer_DeliveryFailure(t *testing.T) {
	sender := &fakeSender{err: &email.DeliveryError{Provider: "brevo", Err: errors.New("rejected")}}
	svc := newTestService(&fakeRenderer{}, fakeStore{}, sender)

	result := svc.SubmitOffer(context.Background(), baseRequest())

	if result.Outcome != OutcomeDeliveryFailed {
		t.Fatalf("expected delivery failure, got %s", result.Outcome)
	}
	if result.PDFPath == "" {
		t.Fatal("expected path of the rendered letter even when delivery fails")
	}
	if sender.calls != 1 {
		t.Fatalf("expected exactly one delivery attempt, got %d", sender.calls)
	}
}
