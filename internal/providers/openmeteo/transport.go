package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// ErrDecode is returned when a response body is not the JSON document we expect.
var ErrDecode = errors.New("failed to decode response")

// Options configures the outbound HTTP behaviour shared by the Open-Meteo clients.
type Options struct {
	Timeout   time.Duration
	RateLimit float64 // requests per second, <= 0 disables limiting
	Burst     int
}

// DefaultOptions returns the settings used when no configuration is supplied.
func DefaultOptions() Options {
	return Options{
		Timeout:   10 * time.Second,
		RateLimit: 10,
		Burst:     5,
	}
}

// transport performs a single GET per call. There are no retries; an open
// breaker fails fast instead of hammering an API that is already down.
type transport struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

func newTransport(name string, opts Options, logger *slog.Logger) *transport {
	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}

	return &transport{
		httpClient: &http.Client{Timeout: opts.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("circuit breaker state changed",
					"breaker", name,
					"from", from.String(),
					"to", to.String(),
				)
			},
		}),
		logger: logger,
	}
}

// getJSON issues a GET for u and decodes the body into out.
func (t *transport) getJSON(ctx context.Context, u *url.URL, out any) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}

	t.logger.Debug("fetching", "url", u.String())

	result, err := t.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}

		resp, err := t.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch: %w", err)
		}
		defer func(Body io.ReadCloser) {
			_ = Body.Close()
		}(resp.Body)

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			t.logger.Error("API returned error",
				"status_code", resp.StatusCode,
				"response_body", string(body),
			)
			return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}
		return body, nil
	})
	if err != nil {
		return err
	}

	body, ok := result.([]byte)
	if !ok {
		return fmt.Errorf("unexpected result type %T from circuit breaker", result)
	}

	if err := json.Unmarshal(body, out); err != nil {
		t.logger.Error("failed to decode response", "error", err)
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return nil
}
