package models

// Company is one listed issuer on the exchange.
//
// Key is the short ticker-like identifier (e.g. "ALK", "KMB"). It is unique,
// immutable, and compared case-insensitively by convention: callers uppercase
// before querying. Price history rows belong to their company and are removed
// with it (ON DELETE CASCADE in the schema).
type Company struct {
	Key  string `json:"companyKey" example:"ALK"`
	Name string `json:"name" example:"Alkaloid AD Skopje"`
}

// LatestPrice is the price and percent change taken from a company's most
// recent PricePoint. Companies with no history have no LatestPrice at all;
// callers default both fields to 0.0.
type LatestPrice struct {
	Price       float64
	PriceChange float64
}
