package usecase

import (
	"context"

	"exchange-service/internal/entity"
)

type ExchangeUsecase interface {
	Convert(ctx context.Context, req entity.ConversionRequest) (*ConversionResponse, error)
	ListCurrencies() []CurrencyInfo
}
