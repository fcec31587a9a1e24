// Package transport defines the request shapes for the negotiation module.
package transport

// CounterOfferRequest is the counter-offer submission form. It exists only to
// build the team notification; nothing is persisted.
type CounterOfferRequest struct {
	SellerEmail     string `form:"email" validate:"required,email"`
	PropertyAddress string `form:"address" validate:"required"`
	CounterAmount   string `form:"counter_offer" validate:"required"`
	Notes           string `form:"notes"`
}
