package email

import (
	"strings"
	"testing"
)

func TestRenderOfferEmailTemplate(t *testing.T) {
	body, err := renderEmailTemplate("offer_letter.html", offerEmailData{
		PropertyAddress: "123 Main St",
		AmountFormatted: "$250,000",
		AcceptURL:       "http://localhost:8080/accept?email=a%40b.com",
		CounterURL:      "http://localhost:8080/counter?email=a%40b.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"123 Main St", "$250,000", "Accept Offer", "Counter This Offer"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected email body to contain %q", want)
		}
	}
	if !strings.Contains(body, "accept?email=a%40b.com") {
		t.Fatalf("expected accept link in body, got:\n%s", body)
	}
}

func TestCounterNoticeBody_Verbatim(t *testing.T) {
	body := counterNoticeBody("a@b.com", "123 Main St", "275000", "needs 45 day close")

	if !strings.Contains(body, "A counteroffer has been submitted for 123 Main St.") {
		t.Fatalf("missing intro line:\n%s", body)
	}
	if !strings.Contains(body, "Seller Email: a@b.com") {
		t.Fatalf("missing seller email:\n%s", body)
	}
	if !strings.Contains(body, "Counter Offer Amount: $275000") {
		t.Fatalf("expected raw counter amount without separators:\n%s", body)
	}
	if !strings.Contains(body, "Additional Notes: needs 45 day close") {
		t.Fatalf("expected notes verbatim:\n%s", body)
	}
}
