package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

type tokenExchangeRequest struct {
	Code string `json:"code"`
}

// TokenExchange trades an authorization code from the connect page for an
// upstream user token. No upstream call is made for malformed input.
func (a *App) TokenExchange(w http.ResponseWriter, r *http.Request) {
	var req tokenExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		a.error(w, http.StatusBadRequest, "Authorization code is required")
		return
	}

	token, err := a.Tiltify.ExchangeCode(r.Context(), req.Code, a.RedirectURI)
	if err != nil {
		a.Logger.Error().Err(err).Msg("authorization code exchange")
		a.error(w, http.StatusInternalServerError, "Token exchange failed: "+err.Error())
		return
	}
	a.json(w, http.StatusOK, token)
}
