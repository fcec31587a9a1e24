// Package negotiation provides the seller response bounded context module.
package negotiation

import (
	"offerdesk_backend/internal/email"
	apphttp "offerdesk_backend/internal/http"
	"offerdesk_backend/internal/negotiation/handler"
	"offerdesk_backend/internal/negotiation/service"
	"offerdesk_backend/platform/config"
	"offerdesk_backend/platform/logger"
	"offerdesk_backend/platform/validator"
)

// Module is the negotiation bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the negotiation module.
func NewModule(sender email.Sender, cfg config.OffersConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(sender, cfg, log)
	h := handler.New(svc, val, log)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "negotiation"
}

// RegisterRoutes mounts the accept and counter routes on the root engine.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Engine)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
