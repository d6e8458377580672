package usecase

import (
	"context"
	"errors"

	"exchange-service/internal/entity"
	"exchange-service/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"
)

// defaultDigits is used for codes outside ISO 4217.
const defaultDigits = 2

const (
	// maxAmountLength caps the raw query value before it is parsed.
	maxAmountLength = 64
	// maxAmountMagnitude keeps amounts within float64 range (about 1.8e308).
	maxAmountMagnitude = 308
)

var errAmountOutOfRange = errors.New("amount out of range")

type ConversionUsecase struct {
	service    service.ConversionService
	currencies []CurrencyInfo
	logger     *logrus.Logger
}

func NewConversionUsecase(service service.ConversionService, codes []string, logger *logrus.Logger) *ConversionUsecase {
	return &ConversionUsecase{
		service:    service,
		currencies: buildCurrencyList(codes),
		logger:     logger,
	}
}

func (uc *ConversionUsecase) Convert(ctx context.Context, req entity.ConversionRequest) (*ConversionResponse, error) {
	if req.From == "" || req.To == "" || req.Amount == "" {
		uc.logger.Debugf("Missing parameters: from=%q to=%q amount=%q", req.From, req.To, req.Amount)
		return nil, entity.NewValidationError()
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		uc.logger.WithError(err).Debugf("Invalid amount %q", req.Amount)
		return nil, entity.NewInvalidAmountError(err)
	}

	result, err := uc.service.Convert(ctx, req.From, req.To, amount)
	if err != nil {
		return nil, err
	}

	return &ConversionResponse{Result: result.Result}, nil
}

// parseAmount accepts decimal strings whose magnitude fits a float64. The
// exponent is checked before any arithmetic touches the value.
func parseAmount(raw string) (decimal.Decimal, error) {
	if len(raw) > maxAmountLength {
		return decimal.Decimal{}, errAmountOutOfRange
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}

	exp := int(amount.Exponent())
	if exp < -maxAmountMagnitude || exp+amount.NumDigits() > maxAmountMagnitude {
		return decimal.Decimal{}, errAmountOutOfRange
	}

	return amount, nil
}

func (uc *ConversionUsecase) ListCurrencies() []CurrencyInfo {
	out := make([]CurrencyInfo, len(uc.currencies))
	copy(out, uc.currencies)
	return out
}

func buildCurrencyList(codes []string) []CurrencyInfo {
	list := make([]CurrencyInfo, 0, len(codes))
	for _, code := range codes {
		info := CurrencyInfo{Code: code, Digits: defaultDigits}
		if unit, err := currency.ParseISO(code); err == nil {
			info.Code = unit.String()
			info.Digits, _ = currency.Standard.Rounding(unit)
		}
		list = append(list, info)
	}
	return list
}
