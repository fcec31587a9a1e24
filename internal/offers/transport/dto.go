// Package transport defines the request shapes for the offers module.
package transport

import "strings"

// Documented defaults for optional offer fields.
const (
	DefaultSellerName       = "Homeowner"
	DefaultInspectionPeriod = "7 days"
	DefaultFinancing        = "Cash or Hard Money"
	DefaultCloseOfEscrow    = "30"
	DefaultTerms            = "Property to be sold in 'as-is' condition."
)

// OfferRequest is the offer submission form. All fields arrive as strings;
// OfferAmount is parsed and formatted downstream. LeadID and OpportunityID
// are opaque identifiers forwarded to the CRM webhook when present.
type OfferRequest struct {
	SellerName       string `form:"seller_name"`
	SellerEmail      string `form:"email" validate:"required,email"`
	PropertyAddress  string `form:"address" validate:"required"`
	OfferAmount      string `form:"offer" validate:"required"`
	InspectionPeriod string `form:"inspection_period"`
	Financing        string `form:"financing"`
	CloseOfEscrow    string `form:"close_of_escrow"`
	Terms            string `form:"terms"`
	LeadID           string `form:"lead_id"`
	OpportunityID    string `form:"opportunity_id"`
}

// ApplyDefaults fills every optional field that is blank after trimming.
func (r *OfferRequest) ApplyDefaults() {
	if strings.TrimSpace(r.SellerName) == "" {
		r.SellerName = DefaultSellerName
	}
	if strings.TrimSpace(r.InspectionPeriod) == "" {
		r.InspectionPeriod = DefaultInspectionPeriod
	}
	if strings.TrimSpace(r.Financing) == "" {
		r.Financing = DefaultFinancing
	}
	if strings.TrimSpace(r.CloseOfEscrow) == "" {
		r.CloseOfEscrow = DefaultCloseOfEscrow
	}
	if strings.TrimSpace(r.Terms) == "" {
		r.Terms = DefaultTerms
	}
}
