package email

import (
	"strings"
	"testing"
)

func TestBuildMIMEMessage_SinglePart(t *testing.T) {
	msg, err := buildMIMEMessage("CC Invest RE Team", "team@example.com", "seller@example.com", "Offer for Your Property at 123 Main St", "<p>hello</p>", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw := string(msg)
	if !strings.Contains(raw, "From: CC Invest RE Team <team@example.com>\r\n") {
		t.Fatalf("missing From header:\n%s", raw)
	}
	if !strings.Contains(raw, "To: seller@example.com\r\n") {
		t.Fatalf("missing To header:\n%s", raw)
	}
	if !strings.Contains(raw, "Content-Type: text/html") {
		t.Fatalf("expected html content type:\n%s", raw)
	}
	if !strings.HasSuffix(raw, "<p>hello</p>") {
		t.Fatalf("expected body at end of message:\n%s", raw)
	}
}

func TestBuildMIMEMessage_PlainTextFallback(t *testing.T) {
	msg, err := buildMIMEMessage("Team", "team@example.com", "seller@example.com", "Counter Offer Received for 123 Main St", "", "plain body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(msg), "Content-Type: text/plain") {
		t.Fatalf("expected plain content type:\n%s", msg)
	}
}

func TestBuildMIMEMessage_WithAttachment(t *testing.T) {
	att := Attachment{Content: []byte("%PDF-1.4 fake"), FileName: "Preliminary_Offer.pdf", MIMEType: "application/pdf"}
	msg, err := buildMIMEMessage("Team", "team@example.com", "seller@example.com", "Offer", "<p>letter attached</p>", "", att)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw := string(msg)
	if !strings.Contains(raw, "Content-Type: multipart/mixed; boundary=") {
		t.Fatalf("expected multipart message:\n%s", raw)
	}
	if !strings.Contains(raw, `attachment; filename="Preliminary_Offer.pdf"`) {
		t.Fatalf("expected attachment disposition:\n%s", raw)
	}
	if !strings.Contains(raw, "Content-Transfer-Encoding: base64") {
		t.Fatalf("expected base64 encoded attachment:\n%s", raw)
	}
}
