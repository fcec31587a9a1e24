// Package service orchestrates the offer submission workflow:
// render the letter, deliver it by email, notify the CRM pipeline.
package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"offerdesk_backend/internal/crm"
	"offerdesk_backend/internal/email"
	"offerdesk_backend/internal/offers/transport"
	"offerdesk_backend/internal/pdf"
	"offerdesk_backend/platform/config"
	"offerdesk_backend/platform/logger"
	"offerdesk_backend/platform/sanitize"
)

// AttachmentFileName is the name the letter carries in the outbound email.
const AttachmentFileName = "Preliminary_Offer.pdf"

// Outcome is the real result of a submission. The HTTP handler still answers
// with the optimistic confirmation page regardless; the typed outcome exists
// so callers and tests can tell what actually happened.
type Outcome int

const (
	// OutcomeSent means the letter was rendered and the email accepted.
	OutcomeSent Outcome = iota
	// OutcomeDeliveryFailed means the letter rendered but the email did not go out.
	OutcomeDeliveryFailed
	// OutcomeRenderFailed means no letter was produced.
	OutcomeRenderFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeDeliveryFailed:
		return "delivery_failed"
	case OutcomeRenderFailed:
		return "render_failed"
	default:
		return "unknown"
	}
}

// SubmitResult reports the outcome of one offer submission.
type SubmitResult struct {
	Outcome Outcome
	PDFPath string
	Err     error
}

// Renderer produces the offer letter PDF. Satisfied by *pdf.Renderer.
type Renderer interface {
	RenderOfferLetter(ctx context.Context, sellerEmail string, data pdf.OfferLetterData) (string, error)
}

// LetterStore reads a rendered letter back for attachment. Satisfied by *pdf.Archive.
type LetterStore interface {
	Read(path string) ([]byte, error)
}

// Service runs the submission pipeline.
type Service struct {
	renderer Renderer
	store    LetterStore
	sender   email.Sender
	crm      *crm.Client
	cfg      config.OffersConfig
	provider string
	log      *logger.Logger
}

// New creates the offers service. crmClient may be nil (integration disabled).
func New(renderer Renderer, store LetterStore, sender email.Sender, crmClient *crm.Client, cfg config.OffersConfig, provider string, log *logger.Logger) *Service {
	return &Service{
		renderer: renderer,
		store:    store,
		sender:   sender,
		crm:      crmClient,
		cfg:      cfg,
		provider: provider,
		log:      log,
	}
}

// SubmitOffer applies defaults, renders the letter, emails it to the seller
// and fires the CRM webhook. Each external call is attempted exactly once.
func (s *Service) SubmitOffer(ctx context.Context, req transport.OfferRequest) SubmitResult {
	req.ApplyDefaults()
	log := s.log.WithContext(ctx)

	amountFormatted, err := pdf.FormatAmount(req.OfferAmount)
	if err != nil {
		log.RenderEvent(req.SellerEmail, "", false, err.Error())
		return SubmitResult{Outcome: OutcomeRenderFailed, Err: err}
	}

	data := pdf.OfferLetterData{
		SellerName:       req.SellerName,
		PropertyAddress:  req.PropertyAddress,
		AmountFormatted:  amountFormatted,
		Terms:            sanitize.Text(req.Terms),
		InspectionPeriod: req.InspectionPeriod,
		Financing:        req.Financing,
		CloseOfEscrow:    req.CloseOfEscrow,
	}

	path, err := s.renderer.RenderOfferLetter(ctx, req.SellerEmail, data)
	if err != nil {
		return SubmitResult{Outcome: OutcomeRenderFailed, Err: err}
	}

	letter, err := s.store.Read(path)
	if err != nil {
		log.DeliveryEvent(s.provider, req.SellerEmail, false, err.Error())
		return SubmitResult{Outcome: OutcomeDeliveryFailed, PDFPath: path, Err: err}
	}

	acceptURL, counterURL := s.negotiationLinks(req.SellerEmail, req.PropertyAddress)
	attachment := email.Attachment{
		Content:  letter,
		FileName: AttachmentFileName,
		MIMEType: "application/pdf",
	}
	if err := s.sender.SendOfferLetter(ctx, req.SellerEmail, req.PropertyAddress, amountFormatted, acceptURL, counterURL, attachment); err != nil {
		log.DeliveryEvent(s.provider, req.SellerEmail, false, err.Error())
		return SubmitResult{Outcome: OutcomeDeliveryFailed, PDFPath: path, Err: err}
	}
	log.DeliveryEvent(s.provider, req.SellerEmail, true, "")

	// Best effort: webhook failures are logged inside the client and never
	// affect the already-sent email.
	_ = s.crm.NotifyOfferSent(ctx, crm.OfferSent{
		SellerEmail:     req.SellerEmail,
		PropertyAddress: req.PropertyAddress,
		OfferAmount:     req.OfferAmount,
		LeadID:          req.LeadID,
		OpportunityID:   req.OpportunityID,
		SentAt:          time.Now().UTC(),
	})

	return SubmitResult{Outcome: OutcomeSent, PDFPath: path}
}

func (s *Service) negotiationLinks(sellerEmail, propertyAddress string) (string, string) {
	base := s.cfg.GetAppBaseURL()
	query := url.Values{}
	query.Set("email", sellerEmail)
	query.Set("address", propertyAddress)
	encoded := query.Encode()
	return fmt.Sprintf("%s/accept?%s", base, encoded), fmt.Sprintf("%s/counter?%s", base, encoded)
}
