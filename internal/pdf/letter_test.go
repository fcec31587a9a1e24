package pdf

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"offerdesk_backend/platform/logger"
)

func TestFormatAmount(t *testing.T) {
	got, err := FormatAmount("250000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "$250,000" {
		t.Fatalf("expected $250,000, got %s", got)
	}

	got, err = FormatAmount("999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "$999" {
		t.Fatalf("expected $999, got %s", got)
	}
}

func TestFormatAmount_NonNumeric(t *testing.T) {
	_, err := FormatAmount("two hundred")
	if err == nil {
		t.Fatal("expected error for non-numeric amount")
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %T", err)
	}
	if fe.Value != "two hundred" {
		t.Fatalf("expected raw value in error, got %q", fe.Value)
	}
}

func TestBuildLetterHTML_SubstitutesFields(t *testing.T) {
	data := OfferLetterData{
		SellerName:       "Jane Seller",
		PropertyAddress:  "123 Main St",
		AmountFormatted:  "$250,000",
		Terms:            "Property to be sold in 'as-is' condition.",
		InspectionPeriod: "7 days",
		Financing:        "Cash or Hard Money",
		CloseOfEscrow:    "30",
	}

	html, err := buildLetterHTML(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := string(html)
	for _, want := range []string{"Jane Seller", "123 Main St", "$250,000", "Cash or Hard Money"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected letter to contain %q", want)
		}
	}
}

type stubConverter struct {
	out []byte
	err error
}

func (s stubConverter) ConvertHTML(_ context.Context, _ []byte, _ ConvertOpts) ([]byte, error) {
	return s.out, s.err
}

func TestRenderOfferLetter_WritesArchive(t *testing.T) {
	archive, err := NewArchive(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := NewRenderer(stubConverter{out: []byte("%PDF-1.4 fake")}, archive, logger.New("test"))

	path, err := r.RenderOfferLetter(context.Background(), "seller@example.com", OfferLetterData{SellerName: "Homeowner"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "seller@example.com_offer.pdf" {
		t.Fatalf("unexpected letter path %s", path)
	}

	letter, err := archive.Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(letter) != "%PDF-1.4 fake" {
		t.Fatalf("unexpected letter content %q", letter)
	}
}

func TestRenderOfferLetter_ConverterFailure(t *testing.T) {
	archive, err := NewArchive(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := NewRenderer(stubConverter{err: errors.New("engine offline")}, archive, logger.New("test"))

	_, err = r.RenderOfferLetter(context.Background(), "seller@example.com", OfferLetterData{})
	if err == nil {
		t.Fatal("expected error when conversion fails")
	}
	var re *RenderError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RenderError, got %T", err)
	}
}
