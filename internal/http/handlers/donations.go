package handlers

import (
	"net/http"

	"server/internal/domain"
)

// Donations relays the full donation listing for the campaign.
func (a *App) Donations(w http.ResponseWriter, r *http.Request) {
	records, err := a.Tiltify.FetchAllDonations(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("fetch donations")
		a.error(w, http.StatusInternalServerError, "Failed to fetch donations: "+err.Error())
		return
	}
	a.json(w, http.StatusOK, map[string]any{"data": records})
}

// DonationsTotal sums every donation into the running campaign total.
func (a *App) DonationsTotal(w http.ResponseWriter, r *http.Request) {
	records, err := a.Tiltify.FetchAllDonations(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("fetch total donations")
		a.error(w, http.StatusInternalServerError, "Failed to fetch total donations: "+err.Error())
		return
	}
	a.json(w, http.StatusOK, domain.SumDonations(records))
}
