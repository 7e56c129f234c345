package infra

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultClientID is the public application identifier registered with
// Tiltify. It is not a secret; the client secret must always come from the
// environment.
const DefaultClientID = "ebd80fb51f67410ec181bd052955d0d53519f310befea10888a8c130c339acdf"

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv              string
	Port                string
	TiltifyAPIURL       string
	TiltifyClientID     string
	TiltifyClientSecret string
	TiltifyCampaignID   string
	TiltifyRedirectURI  string
	TokenMargin         time.Duration
	UpstreamTimeout     time.Duration
	DonationsPageSize   int
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPIdleTimeout     time.Duration
	RateLimitPerMin     int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "8080"),
		TiltifyAPIURL:       getEnv("TILTIFY_API_URL", "https://v5api.tiltify.com"),
		TiltifyClientID:     getEnv("TILTIFY_CLIENT_ID", DefaultClientID),
		TiltifyClientSecret: os.Getenv("TILTIFY_CLIENT_SECRET"),
		TiltifyCampaignID:   os.Getenv("TILTIFY_CAMPAIGN_ID"),
		TiltifyRedirectURI:  getEnv("TILTIFY_REDIRECT_URI", "http://localhost:3000/callback"),
		TokenMargin:         time.Second * time.Duration(getEnvInt("TILTIFY_TOKEN_MARGIN_SECONDS", 60)),
		UpstreamTimeout:     time.Second * time.Duration(getEnvInt("TILTIFY_TIMEOUT_SECONDS", 10)),
		DonationsPageSize:   getEnvInt("TILTIFY_PAGE_SIZE", 100),
		HTTPReadTimeout:     time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:    time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:     time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:     getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
	}

	if cfg.TiltifyClientSecret == "" {
		return nil, fmt.Errorf("TILTIFY_CLIENT_SECRET is required")
	}

	if cfg.TiltifyCampaignID == "" {
		return nil, fmt.Errorf("TILTIFY_CAMPAIGN_ID is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
