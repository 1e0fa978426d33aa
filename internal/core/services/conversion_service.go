package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/finsight-app/finsight_backend/internal/core/ports"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
)

// conversionService converts amounts via the rate provider. Provider
// failures never surface as errors: the caller gets the original amount
// tagged with the source currency, a degraded but well-typed result.
type conversionService struct {
	BaseService
	provider ports.RateProvider
}

// NewConversionService creates a new conversion service.
func NewConversionService(provider ports.RateProvider) portssvc.ConversionSvc {
	return &conversionService{provider: provider}
}

var _ portssvc.ConversionSvc = (*conversionService)(nil)

// ConvertAmount converts a single amount between currencies.
// Identity pairs return the amount with no rate fields, preserving the
// distinction between "converted" and "never needed conversion".
func (s *conversionService) ConvertAmount(ctx context.Context, amount decimal.Decimal, from, to string) domain.CurrencyAmount {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	if from == to {
		return domain.CurrencyAmount{Amount: amount, Currency: to}
	}

	rate, err := s.provider.GetRate(ctx, from, to)
	if err != nil {
		s.LogWarn(ctx, "Rate unavailable, returning unconverted amount",
			slog.String("from", from),
			slog.String("to", to),
			slog.String("error", err.Error()))
		return domain.CurrencyAmount{Amount: amount, Currency: from}
	}

	converted := amount.Mul(rate.Rate)
	now := time.Now()
	return domain.CurrencyAmount{
		Amount:          amount,
		Currency:        to,
		ConvertedAmount: &converted,
		ExchangeRate:    &rate.Rate,
		LastUpdated:     &now,
	}
}

// ConvertMultipleAmounts converts each element to the target currency.
// Input order is preserved and a failure on one element does not abort the
// batch; the failed element simply stays unconverted.
func (s *conversionService) ConvertMultipleAmounts(ctx context.Context, amounts []domain.CurrencyAmount, to string) []domain.CurrencyAmount {
	results := make([]domain.CurrencyAmount, len(amounts))
	for i, a := range amounts {
		results[i] = s.ConvertAmount(ctx, a.Amount, a.Currency, to)
	}
	return results
}
