package entity

// ConversionRequest carries the raw query values. Amount stays a string until the
// usecase parses it.
type ConversionRequest struct {
	From   string `form:"from" json:"from"`
	To     string `form:"to" json:"to"`
	Amount string `form:"amount" json:"amount"`
}

// RateTable is the set of rates for one base currency, valid for a single request.
type RateTable struct {
	Base  string             `json:"base_code"`
	Rates map[string]float64 `json:"conversion_rates"`
}

// Rate returns the rate for code. Absent and non-positive rates are reported as missing.
func (t RateTable) Rate(code string) (float64, bool) {
	rate, ok := t.Rates[code]
	if !ok || rate <= 0 {
		return 0, false
	}
	return rate, true
}

type ConversionResult struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Rate   float64 `json:"rate"`
	Result float64 `json:"result"`
}
