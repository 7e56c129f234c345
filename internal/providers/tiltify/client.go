package tiltify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/infra"
)

// ErrMissingClientSecret indicates the client was configured without credentials.
var ErrMissingClientSecret = errors.New("tiltify: client secret is required")

// ErrMissingCampaignID indicates the client was configured without a campaign.
var ErrMissingCampaignID = errors.New("tiltify: campaign id is required")

// Options configures the Tiltify API client.
type Options struct {
	ClientID       string
	ClientSecret   string
	CampaignID     string
	BaseURL        string
	PageSize       int
	TokenMargin    time.Duration
	RequestTimeout time.Duration
	HTTPClient     *http.Client
	Logger         *infra.Logger
}

// Client performs authenticated HTTP calls against the Tiltify v5 public API
// for a single campaign.
type Client struct {
	baseURL    string
	campaignID string
	pageSize   int
	httpClient *http.Client
	logger     *infra.Logger
	tokens     *TokenSource
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.ClientSecret) == "" {
		return nil, ErrMissingClientSecret
	}
	if strings.TrimSpace(opts.CampaignID) == "" {
		return nil, ErrMissingCampaignID
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://v5api.tiltify.com"
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	margin := opts.TokenMargin
	if margin <= 0 {
		margin = time.Minute
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		baseURL:    baseURL,
		campaignID: strings.TrimSpace(opts.CampaignID),
		pageSize:   pageSize,
		httpClient: httpClient,
		logger:     logger,
		tokens:     NewTokenSource(strings.TrimSpace(opts.ClientID), strings.TrimSpace(opts.ClientSecret), baseURL, margin, httpClient),
	}, nil
}

// FetchAllDonations walks every page of the campaign's donation listing and
// returns the records in upstream order. The fetch is all-or-nothing: a
// failure on any page discards everything accumulated so far.
func (c *Client) FetchAllDonations(ctx context.Context) ([]domain.Donation, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Donation, 0, c.pageSize)
	next := fmt.Sprintf("/api/public/campaigns/%s/donations?limit=%d", c.campaignID, c.pageSize)
	pages := 0
	for next != "" {
		var envelope donationsEnvelope
		if err := c.get(ctx, token, next, &envelope); err != nil {
			return nil, err
		}
		for _, record := range envelope.Data {
			records = append(records, record.toDomain())
		}
		next = envelope.Links.Next
		pages++
	}

	c.logger.Debug().
		Int("pages", pages).
		Int("records", len(records)).
		Msg("tiltify: fetched donations")
	return records, nil
}

// Campaign fetches the campaign's goal and raised amounts. It returns
// domain.ErrNotFound when the upstream carries no campaign data.
func (c *Client) Campaign(ctx context.Context) (*domain.Campaign, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var envelope campaignEnvelope
	path := "/api/public/campaigns/" + c.campaignID
	if err := c.get(ctx, token, path, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, domain.ErrNotFound
	}
	return &domain.Campaign{
		Goal:              envelope.Data.Goal,
		AmountRaised:      envelope.Data.AmountRaised,
		TotalAmountRaised: envelope.Data.TotalAmountRaised,
	}, nil
}

// ExchangeCode relays an authorization-code grant for the connect page.
func (c *Client) ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error) {
	return c.tokens.ExchangeCode(ctx, code, redirectURI)
}

// get issues an authenticated GET for an endpoint path and decodes the JSON
// body into out. The path may be relative (a pagination cursor) or absolute.
func (c *Client) get(ctx context.Context, token, path string, out any) error {
	endpoint := path
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = c.baseURL + "/" + strings.TrimLeft(path, "/")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &domain.FetchError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fetchFailure(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("path", path).
			Str("detail", strings.TrimSpace(string(detail))).
			Msg("tiltify: upstream error")
		return &domain.FetchError{Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.FetchError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func fetchFailure(err error) error {
	var uerr *url.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &uerr) && uerr.Timeout()) {
		return &domain.FetchError{Timeout: true, Err: err}
	}
	return &domain.FetchError{Err: err}
}
