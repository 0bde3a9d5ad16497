// Package upstream holds the clients for the three external services the API
// proxies: price prediction, technical indicators, and news sentiment.
//
// Every proxy call is memoized in a bounded LRU with TTL, and all failures
// (transport, non-2xx, malformed body) propagate uniformly as upstream errors
// carrying the upstream's name.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/traderflow/mse-api/internal/domain/apperr"
)

// Config carries the knobs shared by all upstream clients.
type Config struct {
	PredictionBaseURL string
	IndicatorsBaseURL string
	NewsBaseURL       string
	Timeout           time.Duration
	CacheSize         int
	CacheTTL          time.Duration
}

// newHTTPClient builds the shared outbound HTTP client: a small retry budget
// for transient failures and a hard per-call timeout so a stuck upstream
// cannot pin a request.
func newHTTPClient(timeout time.Duration) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = time.Second
	client.HTTPClient.Timeout = timeout
	client.Logger = nil
	return client
}

// getJSON performs a GET against one upstream and decodes the JSON body into
// out. Any failure is wrapped as an upstream error named after the service.
func getJSON(ctx context.Context, client *retryablehttp.Client, name, url string, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return apperr.Upstream(name, err, "failed to build %s request", name)
	}

	resp, err := client.Do(req)
	if err != nil {
		return apperr.Upstream(name, err, "%s request failed", name)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperr.Upstream(name, fmt.Errorf("unexpected status %d", resp.StatusCode), "%s returned non-success", name)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.Upstream(name, err, "failed to read %s response", name)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperr.Upstream(name, err, "failed to decode %s response", name)
	}
	return nil
}
