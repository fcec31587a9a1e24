// Package offers provides the offer submission bounded context module.
package offers

import (
	"offerdesk_backend/internal/crm"
	"offerdesk_backend/internal/email"
	apphttp "offerdesk_backend/internal/http"
	"offerdesk_backend/internal/offers/handler"
	"offerdesk_backend/internal/offers/service"
	"offerdesk_backend/internal/pdf"
	"offerdesk_backend/platform/config"
	"offerdesk_backend/platform/logger"
	"offerdesk_backend/platform/validator"
)

// Module is the offers bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the offers module with all its dependencies.
func NewModule(
	renderer *pdf.Renderer,
	sender email.Sender,
	crmClient *crm.Client,
	cfg interface {
		config.OffersConfig
		config.EmailConfig
	},
	val *validator.Validator,
	log *logger.Logger,
) *Module {
	svc := service.New(renderer, renderer.Archive(), sender, crmClient, cfg, cfg.GetEmailProvider(), log)
	h := handler.New(svc, val, log)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "offers"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the submission routes on the root engine.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Engine, ctx.SubmitRateLimiter.RateLimit())
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
