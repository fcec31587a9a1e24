package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"offerdesk_backend/internal/negotiation/service"
	"offerdesk_backend/platform/logger"
	"offerdesk_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type testOffersConfig struct{}

func (testOffersConfig) GetAppBaseURL() string { return "http://localhost:8080" }
func (testOffersConfig) GetOffersDir() string  { return "offers" }
func (testOffersConfig) GetTeamEmail() string  { return "team@example.com" }

type fakeNotifier struct {
	err           error
	calls         int
	toEmail       string
	sellerEmail   string
	address       string
	counterAmount string
	notes         string
}

func (n *fakeNotifier) SendCounterNotice(_ context.Context, toEmail, sellerEmail, propertyAddress, counterAmount, notes string) error {
	n.calls++
	n.toEmail = toEmail
	n.sellerEmail = sellerEmail
	n.address = propertyAddress
	n.counterAmount = counterAmount
	n.notes = notes
	return n.err
}

func newTestEngine(notifier *fakeNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.New("test")
	svc := service.New(notifier, testOffersConfig{}, log)
	h := New(svc, validator.New(), log)

	engine := gin.New()
	h.RegisterRoutes(engine)
	return engine
}

func TestAccept_EchoesPropertyAddress(t *testing.T) {
	engine := newTestEngine(&fakeNotifier{})

	req := httptest.NewRequest(http.MethodGet, "/accept?email=a%40b.com&address=123+Main+St", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Thank You!") {
		t.Fatalf("expected thank-you page, got:\n%s", body)
	}
	if !strings.Contains(body, "Your offer for 123 Main St has been accepted.") {
		t.Fatalf("expected address echo, got:\n%s", body)
	}
}

func TestCounterForm_CarriesHiddenIdentity(t *testing.T) {
	engine := newTestEngine(&fakeNotifier{})

	req := httptest.NewRequest(http.MethodGet, "/counter?email=a%40b.com&address=123+Main+St", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `name="email" value="a@b.com"`) {
		t.Fatalf("expected hidden email field, got:\n%s", body)
	}
	if !strings.Contains(body, `name="address" value="123 Main St"`) {
		t.Fatalf("expected hidden address field, got:\n%s", body)
	}
}

func TestSubmitCounter_NotifiesTeamVerbatim(t *testing.T) {
	notifier := &fakeNotifier{}
	engine := newTestEngine(notifier)

	form := url.Values{}
	form.Set("email", "a@b.com")
	form.Set("address", "123 Main St")
	form.Set("counter_offer", "275000")
	form.Set("notes", "needs 45 day close")

	req := httptest.NewRequest(http.MethodPost, "/counter", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Your counteroffer has been submitted.") {
		t.Fatalf("expected acknowledgement page, got:\n%s", rec.Body.String())
	}
	if notifier.calls != 1 {
		t.Fatalf("expected one team notification, got %d", notifier.calls)
	}
	if notifier.toEmail != "team@example.com" {
		t.Fatalf("expected notice to team mailbox, got %s", notifier.toEmail)
	}
	if notifier.counterAmount != "275000" || notifier.notes != "needs 45 day close" {
		t.Fatalf("expected verbatim counter fields, got %q and %q", notifier.counterAmount, notifier.notes)
	}
}

func TestSubmitCounter_NotificationFailureStillAcknowledges(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	engine := newTestEngine(notifier)

	form := url.Values{}
	form.Set("email", "a@b.com")
	form.Set("address", "123 Main St")
	form.Set("counter_offer", "275000")

	req := httptest.NewRequest(http.MethodPost, "/counter", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 despite notification failure, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Your counteroffer has been submitted.") {
		t.Fatalf("expected acknowledgement page, got:\n%s", rec.Body.String())
	}
}

func TestSubmitCounter_RejectsMissingAmount(t *testing.T) {
	notifier := &fakeNotifier{}
	engine := newTestEngine(notifier)

	form := url.Values{}
	form.Set("email", "a@b.com")
	form.Set("address", "123 Main St")

	req := httptest.NewRequest(http.MethodPost, "/counter", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing counter amount, got %d", rec.Code)
	}
	if notifier.calls != 0 {
		t.Fatal("no notification should go out for invalid input")
	}
}
