package legiscan

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
)

// Config holds the settings needed to reach the API.
type Config struct {
	// APIKey is the credential sent as the "key" parameter.
	APIKey string

	// BaseURL is the API endpoint. Defaults to domain.DefaultBaseURL.
	BaseURL string

	// RequestsPerSecond enables a proactive throttle when positive.
	RequestsPerSecond float64

	// HTTPClient overrides the HTTP client. Defaults to a client with no
	// timeout.
	HTTPClient *http.Client
}

// ConfigFromSettings builds a Config from application settings.
func ConfigFromSettings(s domain.APISettings) Config {
	return Config{
		APIKey:            s.Key,
		BaseURL:           s.BaseURL,
		RequestsPerSecond: s.RequestsPerSecond,
	}
}

// Validate checks the configuration and fills defaults.
func (c *Config) Validate() error {
	c.APIKey = strings.TrimSpace(c.APIKey)
	if c.APIKey == "" {
		return domain.ErrMissingCredential
	}

	c.BaseURL = strings.TrimSpace(c.BaseURL)
	if c.BaseURL == "" {
		c.BaseURL = domain.DefaultBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q", domain.ErrInvalidInput, c.BaseURL)
	}

	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: requests per second must not be negative", domain.ErrInvalidInput)
	}
	return nil
}
