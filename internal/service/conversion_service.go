package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"exchange-service/internal/adapter/exchangerate"
	"exchange-service/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const resultPlaces = 2

// ErrResultOutOfRange is returned when rate * amount does not fit a float64.
var ErrResultOutOfRange = errors.New("conversion result out of range")

type RateService struct {
	provider exchangerate.RateProvider
	apiKey   string
	logger   *logrus.Logger
}

// NewRateService keeps apiKey for the lifetime of the process. An empty key is
// accepted here and reported on every Convert call.
func NewRateService(provider exchangerate.RateProvider, apiKey string, logger *logrus.Logger) *RateService {
	return &RateService{
		provider: provider,
		apiKey:   apiKey,
		logger:   logger,
	}
}

func (r *RateService) Convert(ctx context.Context, from, to string, amount decimal.Decimal) (*entity.ConversionResult, error) {
	if r.apiKey == "" {
		r.logger.Error("API key is not set")
		return nil, entity.NewConfigurationError()
	}

	fields := logrus.Fields{"from": from, "to": to}

	table, err := r.provider.FetchLatest(ctx, r.apiKey, from)
	if err != nil {
		convErr := classifyUpstreamError(err)
		r.logger.WithError(err).WithFields(fields).WithField("kind", convErr.Kind.String()).Debug("Failed to fetch rates from provider")
		return nil, convErr
	}

	rate, ok := table.Rate(to)
	if !ok {
		r.logger.WithFields(fields).Warnf("Exchange rate not found for %s in %d rates", to, len(table.Rates))
		return nil, entity.NewRateNotFoundError(to)
	}

	value, err := Round(rate, amount)
	if err != nil {
		r.logger.WithFields(fields).Debugf("Result of %s * %g is out of range", amount.String(), rate)
		return nil, fmt.Errorf("convert %s to %s: %w", from, to, err)
	}

	result := &entity.ConversionResult{
		From:   from,
		To:     to,
		Rate:   rate,
		Result: value,
	}

	r.logger.WithFields(fields).Infof("Converted %s %s at %.6f: %.2f %s", amount.String(), from, rate, result.Result, to)
	return result, nil
}

// Round multiplies rate by amount in decimal and rounds half away from zero to
// two places. Products beyond float64 range yield ErrResultOutOfRange.
func Round(rate float64, amount decimal.Decimal) (float64, error) {
	value, _ := decimal.NewFromFloat(rate).Mul(amount).Round(resultPlaces).Float64()
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrResultOutOfRange
	}
	return value, nil
}

func classifyUpstreamError(err error) *entity.ConversionError {
	var apiErr *exchangerate.APIError
	if errors.As(err, &apiErr) {
		return entity.NewUpstreamBusinessError(err)
	}
	return entity.NewUpstreamTransportError(err)
}
