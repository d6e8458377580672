package exchangerate

import (
	"context"

	"exchange-service/internal/entity"
)

type RateProvider interface {
	FetchLatest(ctx context.Context, apiKey, base string) (*entity.RateTable, error)
}
