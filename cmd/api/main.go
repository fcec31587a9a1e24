package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "offerdesk_backend/internal/http"
	"offerdesk_backend/internal/http/router"

	"offerdesk_backend/internal/crm"
	"offerdesk_backend/internal/email"
	"offerdesk_backend/internal/negotiation"
	"offerdesk_backend/internal/offers"
	"offerdesk_backend/internal/pdf"
	"offerdesk_backend/platform/config"
	"offerdesk_backend/platform/logger"
	"offerdesk_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	converter := pdf.NewGotenbergClient(cfg.GetGotenbergURL(), cfg.GetGotenbergUsername(), cfg.GetGotenbergPassword())

	archive, err := pdf.NewArchive(cfg.GetOffersDir())
	if err != nil {
		log.Error("failed to initialize offer archive", "error", err, "dir", cfg.GetOffersDir())
		panic("failed to initialize offer archive: " + err.Error())
	}

	renderer := pdf.NewRenderer(converter, archive, log)

	sender, err := email.NewSender(cfg)
	if err != nil {
		log.Error("failed to initialize email sender", "error", err)
		panic("failed to initialize email sender: " + err.Error())
	}
	log.Info("email sender initialized", "provider", cfg.GetEmailProvider(), "enabled", cfg.GetEmailEnabled())

	crmClient := crm.NewClient(cfg, log)
	if crmClient == nil {
		log.Warn("CRM_WEBHOOK_URL not configured; CRM notifications disabled")
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules
	// ========================================================================

	offersModule := offers.NewModule(renderer, sender, crmClient, cfg, val, log)
	negotiationModule := negotiation.NewModule(sender, cfg, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			offersModule,
			negotiationModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
