// Package service sends counter-offer notifications to the acquisitions team.
package service

import (
	"context"

	"offerdesk_backend/internal/negotiation/transport"
	"offerdesk_backend/platform/config"
	"offerdesk_backend/platform/logger"
)

// Notifier is the slice of the email sender the negotiation flow needs.
type Notifier interface {
	SendCounterNotice(ctx context.Context, toEmail, sellerEmail, propertyAddress, counterAmount, notes string) error
}

type Service struct {
	notifier Notifier
	cfg      config.OffersConfig
	log      *logger.Logger
}

func New(notifier Notifier, cfg config.OffersConfig, log *logger.Logger) *Service {
	return &Service{notifier: notifier, cfg: cfg, log: log}
}

// SubmitCounter forwards a seller's counter offer to the team mailbox. A
// delivery failure is logged but never surfaced to the seller; the seller
// already gave their answer and the acknowledgement page must not depend on
// the team's inbox being reachable.
func (s *Service) SubmitCounter(ctx context.Context, req transport.CounterOfferRequest) {
	teamEmail := s.cfg.GetTeamEmail()
	err := s.notifier.SendCounterNotice(ctx, teamEmail, req.SellerEmail, req.PropertyAddress, req.CounterAmount, req.Notes)
	s.log.WithContext(ctx).DeliveryEvent("counter_notice", teamEmail, err == nil, errReason(err))
}

func errReason(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
