// Package handler serves the accept and counter-offer pages that sellers
// reach through links in the offer email.
package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"offerdesk_backend/internal/negotiation/service"
	"offerdesk_backend/internal/negotiation/transport"
	"offerdesk_backend/platform/apperr"
	"offerdesk_backend/platform/httpkit"
	"offerdesk_backend/platform/logger"
	"offerdesk_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

type negotiationPage struct {
	SellerEmail     string
	PropertyAddress string
}

// Handler serves the negotiation response endpoints.
type Handler struct {
	svc   *service.Service
	val   *validator.Validator
	log   *logger.Logger
	pages *template.Template
}

func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	pages := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	return &Handler{svc: svc, val: val, log: log, pages: pages}
}

// RegisterRoutes mounts the accept and counter endpoints.
func (h *Handler) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/accept", h.Accept)
	engine.GET("/counter", h.CounterForm)
	engine.POST("/counter", h.SubmitCounter)
}

// Accept acknowledges an accepted offer. The page is informational; the team
// follows up out of band.
func (h *Handler) Accept(c *gin.Context) {
	page := negotiationPage{
		SellerEmail:     c.Query("email"),
		PropertyAddress: c.Query("address"),
	}
	h.render(c, http.StatusOK, "accept.html", page)
}

// CounterForm serves the counter-offer form with the seller identity carried
// in hidden fields from the email link.
func (h *Handler) CounterForm(c *gin.Context) {
	page := negotiationPage{
		SellerEmail:     c.Query("email"),
		PropertyAddress: c.Query("address"),
	}
	h.render(c, http.StatusOK, "counter_form.html", page)
}

// SubmitCounter records a counter offer and acknowledges it. The team
// notification is best effort; the seller always gets the acknowledgement.
func (h *Handler) SubmitCounter(c *gin.Context) {
	var req transport.CounterOfferRequest
	if err := c.ShouldBind(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest("Invalid counter offer submission"))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation("Invalid counter offer submission").WithDetails(err.Error()))
		return
	}

	h.svc.SubmitCounter(c.Request.Context(), req)

	h.render(c, http.StatusOK, "counter_ack.html", nil)
}

func (h *Handler) render(c *gin.Context, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, name, data); err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "Page unavailable", nil)
		return
	}
	httpkit.HTML(c, status, buf.String())
}
