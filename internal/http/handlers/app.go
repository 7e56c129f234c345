package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/providers/tiltify"
)

// CampaignAPI is the slice of the upstream client the handlers consume.
type CampaignAPI interface {
	FetchAllDonations(ctx context.Context) ([]domain.Donation, error)
	Campaign(ctx context.Context) (*domain.Campaign, error)
	ExchangeCode(ctx context.Context, code, redirectURI string) (*tiltify.TokenResponse, error)
}

// App carries the handler dependencies.
type App struct {
	Tiltify     CampaignAPI
	Logger      zerolog.Logger
	RedirectURI string
}

func NewApp(api CampaignAPI, logger zerolog.Logger, redirectURI string) *App {
	return &App{Tiltify: api, Logger: logger, RedirectURI: redirectURI}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// error writes the uniform failure envelope consumed by the dashboard.
func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}

// MethodNotAllowed keeps verb mismatches inside the JSON contract.
func (a *App) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	a.error(w, http.StatusMethodNotAllowed, "Method not allowed")
}
