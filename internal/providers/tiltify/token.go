package tiltify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"server/internal/domain"
)

const defaultExpiresIn = 3600

// TokenSource owns the single cached application access token and its expiry.
// The expiry stored already has the safety margin subtracted, so a credential
// is valid while now is strictly before it.
type TokenSource struct {
	clientID     string
	clientSecret string
	baseURL      string
	margin       time.Duration
	httpClient   *http.Client

	mu        sync.RWMutex
	token     string
	expiresAt time.Time

	group singleflight.Group
	now   func() time.Time
}

// NewTokenSource constructs a token source for the client-credentials grant.
func NewTokenSource(clientID, clientSecret, baseURL string, margin time.Duration, httpClient *http.Client) *TokenSource {
	return &TokenSource{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		margin:       margin,
		httpClient:   httpClient,
		now:          time.Now,
	}
}

// Token returns a valid bearer token, performing a client-credentials
// exchange only when no cached credential is valid. Concurrent refreshes are
// collapsed into a single upstream call; callers must not rely on that.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	if tok := ts.cached(); tok != "" {
		return tok, nil
	}
	v, err, _ := ts.group.Do("token", func() (any, error) {
		if tok := ts.cached(); tok != "" {
			return tok, nil
		}
		return ts.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (ts *TokenSource) cached() string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	if ts.token != "" && ts.now().Before(ts.expiresAt) {
		return ts.token
	}
	return ""
}

func (ts *TokenSource) refresh(ctx context.Context) (string, error) {
	payload := tokenRequest{
		GrantType:    "client_credentials",
		ClientID:     ts.clientID,
		ClientSecret: ts.clientSecret,
		Scope:        "public",
	}
	decoded, err := ts.exchange(ctx, payload)
	if err != nil {
		return "", err
	}

	expiresIn := decoded.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = defaultExpiresIn
	}
	expiry := ts.now().Add(time.Duration(expiresIn)*time.Second - ts.margin)

	// Token and expiry are written together; a reader never observes one
	// without the other.
	ts.mu.Lock()
	ts.token = decoded.AccessToken
	ts.expiresAt = expiry
	ts.mu.Unlock()

	return decoded.AccessToken, nil
}

// ExchangeCode performs an authorization-code grant for the connect-page
// flow. The result is relayed to the caller and never cached.
func (ts *TokenSource) ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error) {
	payload := tokenRequest{
		GrantType:    "authorization_code",
		ClientID:     ts.clientID,
		ClientSecret: ts.clientSecret,
		Code:         code,
		RedirectURI:  redirectURI,
	}
	return ts.exchange(ctx, payload)
}

func (ts *TokenSource) exchange(ctx context.Context, payload tokenRequest) (*TokenResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &domain.AuthError{Err: fmt.Errorf("encode token request: %w", err)}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.baseURL+"/oauth/token", bytes.NewReader(body))
	if err != nil {
		return nil, &domain.AuthError{Err: fmt.Errorf("build token request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return nil, &domain.AuthError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &domain.AuthError{Status: resp.StatusCode, Err: fmt.Errorf("token endpoint: %s", bytes.TrimSpace(detail))}
	}

	var decoded TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &domain.AuthError{Err: fmt.Errorf("decode token response: %w", err)}
	}
	if decoded.AccessToken == "" {
		return nil, &domain.AuthError{Err: fmt.Errorf("token response missing access_token")}
	}
	return &decoded, nil
}
