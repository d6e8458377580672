package service

import (
	"context"

	"exchange-service/internal/entity"

	"github.com/shopspring/decimal"
)

type ConversionService interface {
	Convert(ctx context.Context, from, to string, amount decimal.Decimal) (*entity.ConversionResult, error)
}
