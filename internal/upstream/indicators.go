package upstream

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/traderflow/mse-api/internal/domain/dto"
)

const indicatorsName = "indicators"

// IndicatorsClient proxies the technical-indicators service.
type IndicatorsClient struct {
	baseURL string
	http    *retryablehttp.Client
	cache   *memoCache[[]dto.IndicatorReading]
}

func NewIndicatorsClient(cfg Config) *IndicatorsClient {
	return &IndicatorsClient{
		baseURL: cfg.IndicatorsBaseURL,
		http:    newHTTPClient(cfg.Timeout),
		cache:   newMemoCache[[]dto.IndicatorReading](cfg.CacheSize, cfg.CacheTTL),
	}
}

// GetIndicators fetches the computed readings for one (key, indicator) pair.
// The upstream's JSON array maps into dto.IndicatorReading verbatim. Results
// are memoized per (key, indicator) tuple.
func (c *IndicatorsClient) GetIndicators(ctx context.Context, key, indicator string) ([]dto.IndicatorReading, error) {
	cacheKey := key + "|" + indicator
	return c.cache.Do(cacheKey, func() ([]dto.IndicatorReading, error) {
		// shared across collapsed callers; see PredictionClient.Predict
		return c.fetch(context.WithoutCancel(ctx), key, indicator)
	})
}

func (c *IndicatorsClient) fetch(ctx context.Context, key, indicator string) ([]dto.IndicatorReading, error) {
	endpoint := fmt.Sprintf("%s/%s/indicators/%s", c.baseURL, url.PathEscape(key), url.PathEscape(indicator))

	var readings []dto.IndicatorReading
	if err := getJSON(ctx, c.http, indicatorsName, endpoint, &readings); err != nil {
		return nil, err
	}
	return readings, nil
}
