package entity

import (
	"fmt"
	"net/http"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindInvalidAmount
	KindConfiguration
	KindUpstreamTransport
	KindUpstreamBusiness
	KindDataNotFound
)

const (
	MsgMissingParameters = "Missing parameters"
	MsgInvalidAmount     = "Invalid amount"
	MsgConfiguration     = "API configuration error"
	MsgUnknown           = "An error occurred during conversion"
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInvalidAmount:
		return "invalid_amount"
	case KindConfiguration:
		return "configuration"
	case KindUpstreamTransport:
		return "upstream_transport"
	case KindUpstreamBusiness:
		return "upstream_business"
	case KindDataNotFound:
		return "data_not_found"
	default:
		return "unknown"
	}
}

// HTTPStatus maps a kind to the response status. Only request problems are 4xx.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindValidation, KindInvalidAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ConversionError is the only error type that reaches the HTTP boundary.
// Message is shown to the caller as is.
type ConversionError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ConversionError) Error() string {
	return e.Message
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func NewValidationError() *ConversionError {
	return &ConversionError{Kind: KindValidation, Message: MsgMissingParameters}
}

func NewInvalidAmountError(err error) *ConversionError {
	return &ConversionError{Kind: KindInvalidAmount, Message: MsgInvalidAmount, Err: err}
}

func NewConfigurationError() *ConversionError {
	return &ConversionError{Kind: KindConfiguration, Message: MsgConfiguration}
}

func NewUpstreamTransportError(err error) *ConversionError {
	return &ConversionError{Kind: KindUpstreamTransport, Message: err.Error(), Err: err}
}

func NewUpstreamBusinessError(err error) *ConversionError {
	return &ConversionError{Kind: KindUpstreamBusiness, Message: err.Error(), Err: err}
}

func NewRateNotFoundError(code string) *ConversionError {
	return &ConversionError{Kind: KindDataNotFound, Message: fmt.Sprintf("Exchange rate not found for %s", code)}
}
