package upstream

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/traderflow/mse-api/internal/domain/dto"
)

const predictionName = "prediction"

// PredictionClient proxies the price-prediction service.
type PredictionClient struct {
	baseURL string
	http    *retryablehttp.Client
	cache   *memoCache[dto.Prediction]
}

func NewPredictionClient(cfg Config) *PredictionClient {
	return &PredictionClient{
		baseURL: cfg.PredictionBaseURL,
		http:    newHTTPClient(cfg.Timeout),
		cache:   newMemoCache[dto.Prediction](cfg.CacheSize, cfg.CacheTTL),
	}
}

// Predict fetches the predicted next-day price for a company key, reshaping
// the upstream's {"symbol", "predicted_price"} body into dto.Prediction.
// Results are memoized per key.
func (c *PredictionClient) Predict(ctx context.Context, key string) (dto.Prediction, error) {
	return c.cache.Do(key, func() (dto.Prediction, error) {
		// the fetch is shared across collapsed callers and must not die with
		// the first caller's request context; the client timeout bounds it
		return c.fetch(context.WithoutCancel(ctx), key)
	})
}

func (c *PredictionClient) fetch(ctx context.Context, key string) (dto.Prediction, error) {
	endpoint := fmt.Sprintf("%s/predict?symbol=%s", c.baseURL, url.QueryEscape(key))

	var body struct {
		Symbol         string  `json:"symbol"`
		PredictedPrice float64 `json:"predicted_price"`
	}
	if err := getJSON(ctx, c.http, predictionName, endpoint, &body); err != nil {
		return dto.Prediction{}, err
	}

	return dto.Prediction{Key: body.Symbol, Prediction: body.PredictedPrice}, nil
}
