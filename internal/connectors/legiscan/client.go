package legiscan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
	"github.com/custodia-labs/legis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/legis-cli/internal/logger"
)

// Verify interface compliance.
var _ driven.Transport = (*Client)(nil)

// Client issues requests against the LegiScan API.
type Client struct {
	endpoint *url.URL
	apiKey   string
	http     *http.Client
	limiter  *rate.Limiter
}

// NewClient creates a client. It fails with domain.ErrMissingCredential
// when no API key is configured.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	endpoint, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if endpoint.Path == "" {
		endpoint.Path = "/"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	c := &Client{
		endpoint: endpoint,
		apiKey:   cfg.APIKey,
		http:     httpClient,
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return c, nil
}

// Request performs one GET for operation and returns the parsed payload.
func (c *Client) Request(ctx context.Context, operation string, params driven.Params) (domain.Payload, error) {
	log := logger.Component("legiscan")
	requestID := uuid.NewString()
	start := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &domain.TransportError{Operation: operation, Err: fmt.Errorf("rate limit wait: %w", err)}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(operation, params), nil)
	if err != nil {
		return nil, &domain.TransportError{Operation: operation, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	log.Debug().
		Str("request_id", requestID).
		Str("op", operation).
		Interface("params", params).
		Msg("request")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Str("request_id", requestID).Err(err).Msg("request failed")
		return nil, &domain.TransportError{Operation: operation, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Operation: operation, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	log.Debug().
		Str("request_id", requestID).
		Str("op", operation).
		Int("http_status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.TransportError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var payload domain.Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &domain.TransportError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}

	if status := payload.Status(); status != domain.StatusOK {
		log.Debug().
			Str("request_id", requestID).
			Str("status", status).
			Str("alert", payload.AlertMessage()).
			Msg("upstream reported failure")
		return nil, &domain.APIStatusError{Operation: operation, Status: status, Payload: payload}
	}

	return payload, nil
}

// buildURL renders the request URL. Parameter values are stringified.
func (c *Client) buildURL(operation string, params driven.Params) string {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("op", operation)
	for k, v := range params {
		q.Set(k, fmt.Sprint(v))
	}

	u := *c.endpoint
	u.RawQuery = q.Encode()
	return u.String()
}
