package pricing

// ConvertResponse is the JSON body for GET /convert.
type ConvertResponse struct {
	From            Currency `json:"from"`
	To              Currency `json:"to"`
	OriginalAmount  float64  `json:"originalAmount"`
	ConvertedAmount float64  `json:"convertedAmount"`
}

// TaxResponse is the JSON body for GET /tva.
type TaxResponse struct {
	HT   float64 `json:"ht"`
	Rate float64 `json:"taux"`
	TTC  float64 `json:"ttc"`
}

// DiscountResponse is the JSON body for GET /remise.
type DiscountResponse struct {
	InitialPrice float64 `json:"prixInitial"`
	Percentage   float64 `json:"pourcentage"`
	FinalPrice   float64 `json:"prixFinal"`
}
