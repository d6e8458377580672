package exchangerate

import (
	"fmt"

	"exchange-service/internal/entity"
)

const resultSuccess = "success"

// LatestResponse is the body of GET /v6/{key}/latest/{base}. Error bodies carry
// result "error" and an error-type.
type LatestResponse struct {
	Result             string             `json:"result"`
	ErrorType          string             `json:"error-type,omitempty"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix,omitempty"`
	TimeNextUpdateUnix int64              `json:"time_next_update_unix,omitempty"`
	BaseCode           string             `json:"base_code"`
	ConversionRates    map[string]float64 `json:"conversion_rates"`
}

func (r LatestResponse) ToRateTable(requestedBase string) *entity.RateTable {
	base := r.BaseCode
	if base == "" {
		base = requestedBase
	}
	return &entity.RateTable{
		Base:  base,
		Rates: r.ConversionRates,
	}
}

type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API responded with status: %d", e.StatusCode)
}

type APIError struct {
	Type string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s", e.Type)
}

type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("API request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("API response could not be decoded: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
