package dto

// NewsSentiment is the aggregated sentiment of recent news for a company,
// passed through from the news upstream without reshaping.
type NewsSentiment struct {
	Sentiment string  `json:"sentiment" example:"positive"`
	Score     float64 `json:"score" example:"0.87"`
}
