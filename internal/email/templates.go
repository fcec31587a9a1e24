package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

type offerEmailData struct {
	PropertyAddress string
	AmountFormatted string
	AcceptURL       string
	CounterURL      string
}

func renderEmailTemplate(name string, data any) (string, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}

// counterNoticeBody builds the plain-text team notification. The counter
// amount and notes appear verbatim.
func counterNoticeBody(sellerEmail, propertyAddress, counterAmount, notes string) string {
	return fmt.Sprintf(`A counteroffer has been submitted for %s.

Seller Email: %s
Counter Offer Amount: $%s
Additional Notes: %s
`, propertyAddress, sellerEmail, counterAmount, notes)
}
