package pdf

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strconv"

	"offerdesk_backend/platform/logger"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templateFS embed.FS

// OfferLetterData holds all data substituted into the offer letter template.
// AmountFormatted carries the dollar amount with thousands separators, e.g.
// "$250,000".
type OfferLetterData struct {
	SellerName       string
	PropertyAddress  string
	AmountFormatted  string
	Terms            string
	InspectionPeriod string
	Financing        string
	CloseOfEscrow    string
}

// FormatAmount parses the raw offer amount and formats it with thousands
// separators. Returns a *FormatError when the value is not an integer.
func FormatAmount(raw string) (string, error) {
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "", &FormatError{Value: raw}
	}
	return "$" + humanize.Comma(amount), nil
}

// Renderer builds the offer letter HTML and converts it to a PDF stored in
// the archive.
type Renderer struct {
	converter Converter
	archive   *Archive
	log       *logger.Logger
}

// NewRenderer creates a renderer over the given conversion engine and archive.
func NewRenderer(converter Converter, archive *Archive, log *logger.Logger) *Renderer {
	return &Renderer{converter: converter, archive: archive, log: log}
}

// RenderOfferLetter renders the letter and writes it to
// <offers dir>/<seller_email>_offer.pdf, returning that path.
// Failures of the conversion engine or the archive surface as *RenderError.
func (r *Renderer) RenderOfferLetter(ctx context.Context, sellerEmail string, data OfferLetterData) (string, error) {
	html, err := buildLetterHTML(data)
	if err != nil {
		return "", &RenderError{Err: err}
	}

	letter, err := r.converter.ConvertHTML(ctx, html, LetterOpts())
	if err != nil {
		r.log.WithContext(ctx).RenderEvent(sellerEmail, "", false, err.Error())
		return "", &RenderError{Err: err}
	}

	path, err := r.archive.Save(sellerEmail, letter)
	if err != nil {
		r.log.WithContext(ctx).RenderEvent(sellerEmail, "", false, err.Error())
		return "", &RenderError{Err: err}
	}

	r.log.WithContext(ctx).RenderEvent(sellerEmail, path, true, "")
	return path, nil
}

// Archive exposes the underlying letter store, used by the mail adapter to
// read the attachment back.
func (r *Renderer) Archive() *Archive {
	return r.archive
}

func buildLetterHTML(data OfferLetterData) ([]byte, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/offer_letter.html")
	if err != nil {
		return nil, fmt.Errorf("parse offer letter template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute offer letter template: %w", err)
	}
	return buf.Bytes(), nil
}
