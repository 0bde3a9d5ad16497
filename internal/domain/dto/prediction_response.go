package dto

// Prediction is the next-day price predicted by the prediction upstream,
// reshaped from its {"symbol", "predicted_price"} response.
type Prediction struct {
	Key        string  `json:"key" example:"ALK"`
	Prediction float64 `json:"prediction" example:"112.5"`
}
