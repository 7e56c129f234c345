package handlers

import (
	"errors"
	"net/http"

	"server/internal/domain"
)

type goalResponse struct {
	Goal              float64 `json:"goal"`
	Currency          string  `json:"currency"`
	AmountRaised      float64 `json:"amount_raised"`
	TotalAmountRaised float64 `json:"total_amount_raised"`
}

// Goal relays the campaign's fundraising goal and raised amounts.
func (a *App) Goal(w http.ResponseWriter, r *http.Request) {
	campaign, err := a.Tiltify.Campaign(r.Context())
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "Campaign data not found.")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("fetch campaign goal")
		a.error(w, http.StatusInternalServerError, "Failed to fetch donation goal: "+err.Error())
		return
	}

	currency := "USD"
	if campaign.Goal != nil {
		currency = domain.NormalizeCurrency(campaign.Goal.Currency)
	}
	a.json(w, http.StatusOK, goalResponse{
		Goal:              campaign.Goal.Float64(),
		Currency:          currency,
		AmountRaised:      campaign.AmountRaised.Float64(),
		TotalAmountRaised: campaign.TotalAmountRaised.Float64(),
	})
}
