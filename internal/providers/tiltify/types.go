package tiltify

import (
	"strings"

	"server/internal/domain"
)

type tokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Scope        string `json:"scope,omitempty"`
	Code         string `json:"code,omitempty"`
	RedirectURI  string `json:"redirect_uri,omitempty"`
}

// TokenResponse is the upstream OAuth token payload, relayed as-is to the
// connect-page flow.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope,omitempty"`
}

type donationsEnvelope struct {
	Data  []donationRecord `json:"data"`
	Links pageLinks        `json:"links"`
}

type pageLinks struct {
	Next string `json:"next"`
}

// donationRecord tolerates both historical field names for the donor comment
// (donor_comment in v5, comment in older payloads).
type donationRecord struct {
	ID           string       `json:"id"`
	Amount       domain.Money `json:"amount"`
	DonorName    string       `json:"donor_name"`
	DonorComment *string      `json:"donor_comment"`
	Comment      *string      `json:"comment"`
	CompletedAt  string       `json:"completed_at"`
}

func (r donationRecord) toDomain() domain.Donation {
	name := strings.TrimSpace(r.DonorName)
	if name == "" {
		name = domain.AnonymousDonor
	}
	comment := ""
	if r.DonorComment != nil {
		comment = strings.TrimSpace(*r.DonorComment)
	}
	if comment == "" && r.Comment != nil {
		comment = strings.TrimSpace(*r.Comment)
	}
	if comment == "" {
		comment = domain.NoCommentPlaceholder
	}
	return domain.Donation{
		ID:           r.ID,
		Amount:       r.Amount,
		DonorName:    name,
		DonorComment: comment,
		CompletedAt:  r.CompletedAt,
	}
}

type campaignEnvelope struct {
	Data *campaignRecord `json:"data"`
}

type campaignRecord struct {
	Goal              *domain.Money `json:"goal"`
	AmountRaised      *domain.Money `json:"amount_raised"`
	TotalAmountRaised *domain.Money `json:"total_amount_raised"`
}
