package usecase

// ConversionResponse is the success body of GET /api/exchange.
type ConversionResponse struct {
	Result float64 `json:"result"`
}

type CurrencyInfo struct {
	Code   string `json:"code"`
	Digits int    `json:"digits"`
}

type CurrenciesResponse struct {
	Currencies []CurrencyInfo `json:"currencies"`
}
