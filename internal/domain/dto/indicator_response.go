package dto

// IndicatorReading is one element of the indicator upstream's response array,
// passed through verbatim (field names match the upstream JSON).
type IndicatorReading struct {
	ShortName string  `json:"short_name" example:"ALK"`
	Date      string  `json:"date" example:"2024-01-02"`
	Close     float64 `json:"close" example:"105.0"`
	Min       float64 `json:"min" example:"99.0"`
	Max       float64 `json:"max" example:"106.5"`
	Volume    float64 `json:"volume" example:"1200"`
	Indicator string  `json:"indicator" example:"RSI"`
	Signal    string  `json:"signal" example:"BUY"`
}
