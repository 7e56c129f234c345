package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"server/internal/domain"
)

func TestGoal(t *testing.T) {
	app := newTestApp(&fakeCampaignAPI{campaign: &domain.Campaign{
		Goal:              &domain.Money{Value: "500.00", Currency: "usd"},
		AmountRaised:      &domain.Money{Value: "120.00", Currency: "USD"},
		TotalAmountRaised: &domain.Money{Value: "150.00", Currency: "USD"},
	}})

	rr := httptest.NewRecorder()
	app.Goal(rr, httptest.NewRequest(http.MethodGet, "/api/goal", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var payload goalResponse
	decodeBody(t, rr, &payload)
	if payload.Goal != 500 || payload.AmountRaised != 120 || payload.TotalAmountRaised != 150 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.Currency != "USD" {
		t.Fatalf("currency = %q, want USD", payload.Currency)
	}
}

func TestGoalMissingFieldsDefaultToZero(t *testing.T) {
	app := newTestApp(&fakeCampaignAPI{campaign: &domain.Campaign{}})

	rr := httptest.NewRecorder()
	app.Goal(rr, httptest.NewRequest(http.MethodGet, "/api/goal", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var payload goalResponse
	decodeBody(t, rr, &payload)
	if payload.Goal != 0 || payload.Currency != "USD" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestGoalNotFound(t *testing.T) {
	app := newTestApp(&fakeCampaignAPI{err: domain.ErrNotFound})

	rr := httptest.NewRecorder()
	app.Goal(rr, httptest.NewRequest(http.MethodGet, "/api/goal", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	var payload map[string]string
	decodeBody(t, rr, &payload)
	if payload["error"] != "Campaign data not found." {
		t.Fatalf("unexpected error message: %q", payload["error"])
	}
}
