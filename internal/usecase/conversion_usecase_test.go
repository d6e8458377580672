package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"exchange-service/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockConversionService struct {
	mock.Mock
}

func (m *mockConversionService) Convert(ctx context.Context, from, to string, amount decimal.Decimal) (*entity.ConversionResult, error) {
	args := m.Called(ctx, from, to, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ConversionResult), args.Error(1)
}

func setupTestUsecase(codes ...string) (*ConversionUsecase, *mockConversionService) {
	svc := new(mockConversionService)
	logger, _ := test.NewNullLogger()
	return NewConversionUsecase(svc, codes, logger), svc
}

func amountEquals(want string) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString(want))
	})
}

func TestConvert_MissingParameters(t *testing.T) {
	tests := []struct {
		name string
		req  entity.ConversionRequest
	}{
		{"all missing", entity.ConversionRequest{}},
		{"only from", entity.ConversionRequest{From: "USD"}},
		{"missing to", entity.ConversionRequest{From: "USD", Amount: "10"}},
		{"missing amount", entity.ConversionRequest{From: "USD", To: "EUR"}},
		{"missing from", entity.ConversionRequest{To: "EUR", Amount: "10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, svc := setupTestUsecase()

			_, err := uc.Convert(context.Background(), tt.req)

			var convErr *entity.ConversionError
			require.True(t, errors.As(err, &convErr))
			assert.Equal(t, entity.KindValidation, convErr.Kind)
			assert.Equal(t, "Missing parameters", convErr.Message)
			svc.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestConvert_InvalidAmount(t *testing.T) {
	for _, amount := range []string{"abc", "10abc", "NaN", "1,5"} {
		t.Run(amount, func(t *testing.T) {
			uc, svc := setupTestUsecase()

			_, err := uc.Convert(context.Background(), entity.ConversionRequest{From: "USD", To: "EUR", Amount: amount})

			var convErr *entity.ConversionError
			require.True(t, errors.As(err, &convErr))
			assert.Equal(t, entity.KindInvalidAmount, convErr.Kind)
			assert.Equal(t, "Invalid amount", convErr.Message)
			svc.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestConvert_AmountOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{"overflows float64", "1e400"},
		{"huge exponent", "1e20000000"},
		{"long coefficient with exponent", "123456789e300"},
		{"tiny exponent", "1e-400"},
		{"too long", "1" + strings.Repeat("0", maxAmountLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, svc := setupTestUsecase()

			_, err := uc.Convert(context.Background(), entity.ConversionRequest{From: "USD", To: "EUR", Amount: tt.amount})

			var convErr *entity.ConversionError
			require.True(t, errors.As(err, &convErr))
			assert.Equal(t, entity.KindInvalidAmount, convErr.Kind)
			assert.Equal(t, "Invalid amount", convErr.Message)
			svc.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestParseAmount_WithinRange(t *testing.T) {
	for _, raw := range []string{"0", "-0.01", "12.75", "1e300", "1e-300", "0.000001"} {
		t.Run(raw, func(t *testing.T) {
			amount, err := parseAmount(raw)
			require.NoError(t, err)
			assert.True(t, amount.Equal(decimal.RequireFromString(raw)))
		})
	}
}

func TestConvert_Success(t *testing.T) {
	ctx := context.Background()
	uc, svc := setupTestUsecase()

	svc.On("Convert", ctx, "USD", "EUR", amountEquals("10")).
		Return(&entity.ConversionResult{From: "USD", To: "EUR", Rate: 0.9, Result: 9}, nil)

	resp, err := uc.Convert(ctx, entity.ConversionRequest{From: "USD", To: "EUR", Amount: "10"})
	require.NoError(t, err)
	assert.Equal(t, &ConversionResponse{Result: 9}, resp)

	svc.AssertExpectations(t)
}

func TestConvert_DecimalAmount(t *testing.T) {
	ctx := context.Background()
	uc, svc := setupTestUsecase()

	svc.On("Convert", ctx, "EUR", "JPY", amountEquals("12.75")).
		Return(&entity.ConversionResult{Result: 2040.13}, nil)

	resp, err := uc.Convert(ctx, entity.ConversionRequest{From: "EUR", To: "JPY", Amount: "12.75"})
	require.NoError(t, err)
	assert.Equal(t, 2040.13, resp.Result)

	svc.AssertExpectations(t)
}

func TestConvert_ServiceError(t *testing.T) {
	ctx := context.Background()
	uc, svc := setupTestUsecase()

	expectedErr := entity.NewRateNotFoundError("EUR")
	svc.On("Convert", ctx, "USD", "EUR", amountEquals("1")).Return(nil, expectedErr)

	_, err := uc.Convert(ctx, entity.ConversionRequest{From: "USD", To: "EUR", Amount: "1"})
	assert.Equal(t, expectedErr, err)

	svc.AssertExpectations(t)
}

func TestListCurrencies(t *testing.T) {
	uc, _ := setupTestUsecase("USD", "EUR", "JPY")

	list := uc.ListCurrencies()
	require.Len(t, list, 3)
	assert.Equal(t, CurrencyInfo{Code: "USD", Digits: 2}, list[0])
	assert.Equal(t, "EUR", list[1].Code)
	assert.Equal(t, CurrencyInfo{Code: "JPY", Digits: 0}, list[2])
}

func TestListCurrencies_ReturnsCopy(t *testing.T) {
	uc, _ := setupTestUsecase("USD")

	list := uc.ListCurrencies()
	list[0].Code = "XXX"

	assert.Equal(t, "USD", uc.ListCurrencies()[0].Code)
}

func TestListCurrencies_UnknownCodeKeepsDefaults(t *testing.T) {
	uc, _ := setupTestUsecase("ZZQ")

	list := uc.ListCurrencies()
	assert.Equal(t, []CurrencyInfo{{Code: "ZZQ", Digits: 2}}, list)
}
