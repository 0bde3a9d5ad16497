package upstream

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/traderflow/mse-api/internal/domain/dto"
)

const newsName = "news"

// NewsClient proxies the news-sentiment service.
type NewsClient struct {
	baseURL string
	http    *retryablehttp.Client
	cache   *memoCache[dto.NewsSentiment]
}

func NewNewsClient(cfg Config) *NewsClient {
	return &NewsClient{
		baseURL: cfg.NewsBaseURL,
		http:    newHTTPClient(cfg.Timeout),
		cache:   newMemoCache[dto.NewsSentiment](cfg.CacheSize, cfg.CacheTTL),
	}
}

// Sentiment fetches the aggregated news sentiment for a company key. The body
// passes through without reshaping, and failures propagate as upstream errors
// like every other proxy.
func (c *NewsClient) Sentiment(ctx context.Context, key string) (dto.NewsSentiment, error) {
	return c.cache.Do(key, func() (dto.NewsSentiment, error) {
		// shared across collapsed callers; see PredictionClient.Predict
		return c.fetch(context.WithoutCancel(ctx), key)
	})
}

func (c *NewsClient) fetch(ctx context.Context, key string) (dto.NewsSentiment, error) {
	endpoint := fmt.Sprintf("%s/news/%s/sentiment", c.baseURL, url.PathEscape(key))

	var body dto.NewsSentiment
	if err := getJSON(ctx, c.http, newsName, endpoint, &body); err != nil {
		return dto.NewsSentiment{}, err
	}
	return body, nil
}
