// Package handler serves the offer submission form and confirmation pages.
package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"offerdesk_backend/internal/offers/service"
	"offerdesk_backend/internal/offers/transport"
	"offerdesk_backend/platform/apperr"
	"offerdesk_backend/platform/httpkit"
	"offerdesk_backend/platform/logger"
	"offerdesk_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the offer submission endpoints.
type Handler struct {
	svc   *service.Service
	val   *validator.Validator
	log   *logger.Logger
	pages *template.Template
}

// New creates the offers handler.
func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	pages := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	return &Handler{svc: svc, val: val, log: log, pages: pages}
}

// RegisterRoutes mounts the submission form and the send endpoint.
func (h *Handler) RegisterRoutes(engine *gin.Engine, submitLimit gin.HandlerFunc) {
	engine.GET("/", h.Form)
	engine.POST("/send_offer", submitLimit, h.SendOffer)
}

// Form serves the offer submission form.
func (h *Handler) Form(c *gin.Context) {
	h.render(c, http.StatusOK, "form.html", nil)
}

// SendOffer handles a form submission. Downstream failures are logged and the
// confirmation page is returned regardless; only malformed input is rejected.
func (h *Handler) SendOffer(c *gin.Context) {
	var req transport.OfferRequest
	if err := c.ShouldBind(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest("Invalid form submission"))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation("Invalid form submission").WithDetails(err.Error()))
		return
	}
	req.ApplyDefaults()

	result := h.svc.SubmitOffer(c.Request.Context(), req)
	if result.Err != nil {
		h.log.WithContext(c.Request.Context()).Error("offer submission incomplete",
			"outcome", result.Outcome.String(),
			"seller_email", req.SellerEmail,
			"error", result.Err.Error(),
		)
	}

	h.render(c, http.StatusOK, "confirmation.html", req)
}

func (h *Handler) render(c *gin.Context, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, name, data); err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "Page unavailable", nil)
		return
	}
	httpkit.HTML(c, status, buf.String())
}
