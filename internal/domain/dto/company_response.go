package dto

// CompanySummary is the list/detail view of a company: master data joined with
// the company's latest price. Companies without any price history report 0.0
// for both price fields rather than null.
type CompanySummary struct {
	Name        string  `json:"name" example:"Alkaloid AD Skopje"`
	Key         string  `json:"companyKey" example:"ALK"`
	Price       float64 `json:"price" example:"105.0"`
	PriceChange float64 `json:"priceChange" example:"5.0"`
}
