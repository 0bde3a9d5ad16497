package dto

import "github.com/traderflow/mse-api/internal/domain/models"

// PriceHistoryResponse is one page of a company's price history, newest first.
//
// LatestPrice is a convenience field: the price of the first point in the page
// (the most recent one given descending order), or 0.0 for an empty page.
type PriceHistoryResponse struct {
	Key           string              `json:"companyKey" example:"ALK"`
	Name          string              `json:"name" example:"Alkaloid AD Skopje"`
	LatestPrice   float64             `json:"latestPrice" example:"105.0"`
	PricePoints   []models.PricePoint `json:"pricePoints"`
	Page          int                 `json:"page" example:"0"`
	Size          int                 `json:"size" example:"10"`
	TotalElements int64               `json:"totalElements" example:"42"`
	TotalPages    int                 `json:"totalPages" example:"5"`
}
