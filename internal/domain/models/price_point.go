package models

import "time"

// PricePoint is one daily trading record for a company, mirroring the columns
// of an MSE symbol-history export:
//
//	Date, Last trade price, Max, Min, Avg., Price %chg., Volume,
//	Turnover in BEST in denars, Total turnover in denars
type PricePoint struct {
	Date          time.Time `json:"date" example:"2024-01-02T00:00:00Z"`
	Price         float64   `json:"price" example:"105.0"`
	Max           float64   `json:"max" example:"106.5"`
	Min           float64   `json:"min" example:"99.0"`
	AveragePrice  float64   `json:"averagePrice" example:"102.3"`
	PriceChange   float64   `json:"priceChange" example:"5.0"`
	Volume        float64   `json:"volume" example:"1200"`
	BestTurnover  float64   `json:"bestTurnover" example:"122760"`
	TotalTurnover float64   `json:"totalTurnover" example:"122760"`
}
