package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// Config holds the gateway connection details.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// HTTPGateway talks to the payment processor's session API over HTTPS. All
// calls go through a circuit breaker so a dead gateway fails fast instead of
// tying up request handlers; failed calls are never retried here.
type HTTPGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[string]
}

// NewHTTPGateway creates a new HTTPGateway.
func NewHTTPGateway(cfg Config) *HTTPGateway {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	breaker := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:    "payment-gateway",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &HTTPGateway{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
	}
}

type sessionResponse struct {
	URL string `json:"url"`
}

// CreateSession posts the line items to the processor and returns the
// redirect URL for the hosted payment page.
func (g *HTTPGateway) CreateSession(ctx context.Context, req SessionRequest) (string, error) {
	return g.breaker.Execute(func() (string, error) {
		body, err := json.Marshal(req)
		if err != nil {
			return "", fmt.Errorf("failed to marshal session request: %w", err)
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
			g.baseURL+"/v1/checkout/sessions", bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("failed to build session request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

		resp, err := g.client.Do(httpReq)
		if err != nil {
			return "", fmt.Errorf("payment gateway request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
			payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return "", fmt.Errorf("payment gateway returned status %d: %s", resp.StatusCode, payload)
		}

		var session sessionResponse
		if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
			return "", fmt.Errorf("failed to decode session response: %w", err)
		}
		if session.URL == "" {
			return "", fmt.Errorf("payment gateway returned a session without a redirect URL")
		}
		return session.URL, nil
	})
}
